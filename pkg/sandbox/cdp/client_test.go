package cdp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDevtools is a minimal devtools endpoint: it feeds every received
// command to respond and writes back whatever messages it returns.
type fakeDevtools struct {
	t       *testing.T
	srv     *httptest.Server
	respond func(cmd map[string]interface{}) []map[string]interface{}

	mu       sync.Mutex
	received []map[string]interface{}
}

func newFakeDevtools(t *testing.T, respond func(cmd map[string]interface{}) []map[string]interface{}) *fakeDevtools {
	f := &fakeDevtools{t: t, respond: respond}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "")

		ctx := r.Context()
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			var cmd map[string]interface{}
			if err := json.Unmarshal(data, &cmd); err != nil {
				continue
			}
			f.mu.Lock()
			f.received = append(f.received, cmd)
			f.mu.Unlock()

			for _, reply := range f.respond(cmd) {
				raw, err := json.Marshal(reply)
				require.NoError(t, err)
				if err := conn.Write(ctx, websocket.MessageText, raw); err != nil {
					return
				}
			}
		}
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeDevtools) wsURL() string {
	return "ws" + strings.TrimPrefix(f.srv.URL, "http")
}

func (f *fakeDevtools) commands() []map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]interface{}, len(f.received))
	copy(out, f.received)
	return out
}

func echoResult(result map[string]interface{}) func(cmd map[string]interface{}) []map[string]interface{} {
	return func(cmd map[string]interface{}) []map[string]interface{} {
		return []map[string]interface{}{{
			"id":     cmd["id"],
			"result": result,
		}}
	}
}

func TestCallRoundtrip(t *testing.T) {
	fake := newFakeDevtools(t, echoResult(map[string]interface{}{"value": 42}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, fake.wsURL())
	require.NoError(t, err)
	defer client.Close()

	var out struct {
		Value int `json:"value"`
	}
	err = client.Call(ctx, "", "Browser.getVersion", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, 42, out.Value)

	cmds := fake.commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "Browser.getVersion", cmds[0]["method"])
}

func TestCallCarriesSessionID(t *testing.T) {
	fake := newFakeDevtools(t, echoResult(map[string]interface{}{}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, fake.wsURL())
	require.NoError(t, err)
	defer client.Close()

	sess := &Session{client: client, ID: "sess-1", TargetID: "target-1"}
	require.NoError(t, sess.Call(ctx, "Page.enable", nil, nil))

	cmds := fake.commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "sess-1", cmds[0]["sessionId"])
}

func TestCallProtocolError(t *testing.T) {
	fake := newFakeDevtools(t, func(cmd map[string]interface{}) []map[string]interface{} {
		return []map[string]interface{}{{
			"id": cmd["id"],
			"error": map[string]interface{}{
				"code":    -32000,
				"message": "No target with given id found",
			},
		}}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, fake.wsURL())
	require.NoError(t, err)
	defer client.Close()

	err = client.Call(ctx, "", "Target.attachToTarget", map[string]interface{}{"targetId": "gone"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No target with given id found")

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, -32000, protoErr.Code)
}

func TestEventDispatch(t *testing.T) {
	fake := newFakeDevtools(t, func(cmd map[string]interface{}) []map[string]interface{} {
		// Answer the command and follow up with an event.
		return []map[string]interface{}{
			{"id": cmd["id"], "result": map[string]interface{}{}},
			{
				"method":    "Page.screencastFrame",
				"sessionId": "sess-9",
				"params":    map[string]interface{}{"data": "ZnJhbWU=", "sessionId": 7},
			},
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, fake.wsURL())
	require.NoError(t, err)
	defer client.Close()

	type got struct {
		sessionID string
		params    json.RawMessage
	}
	events := make(chan got, 1)
	unsub := client.On("Page.screencastFrame", func(sessionID string, params json.RawMessage) {
		events <- got{sessionID: sessionID, params: params}
	})
	defer unsub()

	require.NoError(t, client.Call(ctx, "", "Page.startScreencast", nil, nil))

	select {
	case ev := <-events:
		assert.Equal(t, "sess-9", ev.sessionID)
		var frame ScreencastFrame
		require.NoError(t, json.Unmarshal(ev.params, &frame))
		assert.Equal(t, "ZnJhbWU=", frame.Data)
		assert.Equal(t, 7, frame.SessionID)
	case <-time.After(3 * time.Second):
		t.Fatal("event never dispatched")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	fake := newFakeDevtools(t, func(cmd map[string]interface{}) []map[string]interface{} {
		return []map[string]interface{}{
			{"id": cmd["id"], "result": map[string]interface{}{}},
			{"method": "Page.loadEventFired", "params": map[string]interface{}{}},
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, fake.wsURL())
	require.NoError(t, err)
	defer client.Close()

	events := make(chan struct{}, 4)
	unsub := client.On("Page.loadEventFired", func(string, json.RawMessage) {
		events <- struct{}{}
	})

	require.NoError(t, client.Call(ctx, "", "Page.enable", nil, nil))
	select {
	case <-events:
	case <-time.After(3 * time.Second):
		t.Fatal("expected first event")
	}

	unsub()
	require.NoError(t, client.Call(ctx, "", "Page.enable", nil, nil))

	select {
	case <-events:
		t.Fatal("event delivered after unsubscribe")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestCallAfterCloseFails(t *testing.T) {
	fake := newFakeDevtools(t, echoResult(map[string]interface{}{}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, fake.wsURL())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	err = client.Call(ctx, "", "Page.enable", nil, nil)
	assert.ErrorIs(t, err, ErrConnClosed)
}

func TestLookupKey(t *testing.T) {
	spec, ok := LookupKey("Enter")
	require.True(t, ok)
	assert.Equal(t, 13, spec.WindowsVirtualKeyCode)
	assert.Equal(t, "\r", spec.Text)

	spec, ok = LookupKey("a")
	require.True(t, ok)
	assert.Equal(t, "a", spec.Key)
	assert.Equal(t, "a", spec.Text)

	_, ok = LookupKey("NotARealKey")
	assert.False(t, ok)
}

package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/pkg/database"
	"github.com/dappsmith/conductor/pkg/services"
	testdb "github.com/dappsmith/conductor/test/database"
	"github.com/dappsmith/conductor/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	runID        string // events carry this as their owner id
	channel      string // run:<runID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)

	// The events table keys rows by owner id without a FK, so no run row
	// is needed; the publisher is exercised with a synthetic run id.
	runID := "run_evtintegration1"
	channel := RunChannel(runID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(context.Background()))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		runID:        runID,
		channel:      channel,
	}
}

// connectWS opens a WebSocket to the test server and returns the connection.
// The connection is automatically closed on test cleanup.
func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// decodeEventPayload unmarshals a stored event row's JSON payload.
func decodeEventPayload(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the given channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T, channel string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for the LISTEN to complete on the NotifyListener's dedicated
	// connection, polling instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish first event (run status)
	err := env.publisher.PublishRunStatus(ctx, env.runID, RunStatusPayload{
		Type:      EventTypeRunStatus,
		RunID:     env.runID,
		Status:    run.StatusRunning,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Publish second event (run step)
	err = env.publisher.PublishRunStep(ctx, env.runID, RunStepPayload{
		Type:      EventTypeRunStep,
		RunID:     env.runID,
		StepIndex: 1,
		StepName:  "Connect wallet",
		Source:    "spec",
		Status:    StepStatusPassed,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.runID, events[0].RunID)
	assert.Equal(t, env.channel, events[0].Channel)
	first := decodeEventPayload(t, events[0].Payload)
	assert.Equal(t, EventTypeRunStatus, first["type"])
	assert.Equal(t, "running", first["status"])

	second := decodeEventPayload(t, events[1].Payload)
	assert.Equal(t, EventTypeRunStep, second["type"])
	assert.Equal(t, "Connect wallet", second["step_name"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)

	// The transient global copy of run.status is NOTIFY-only — no rows
	// land on the global channel.
	globalEvents, err := env.eventService.GetEventsSince(ctx, GlobalRunsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, globalEvents)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish transient event (log line)
	err := env.publisher.PublishRunLog(ctx, env.runID, RunLogPayload{
		Type:      EventTypeRunLog,
		RunID:     env.runID,
		Stream:    "stdout",
		Line:      "[test] navigating to dApp",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Query DB — should have zero persisted events
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t, env.channel)

	// Publish a persistent event via EventPublisher
	err := env.publisher.PublishRunStatus(ctx, env.runID, RunStatusPayload{
		Type:      EventTypeRunStatus,
		RunID:     env.runID,
		Status:    run.StatusPassed,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Read from WebSocket — the event should arrive via pg_notify → listener → manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeRunStatus, msg["type"])
	assert.Equal(t, "passed", msg["status"])
	assert.Equal(t, env.runID, msg["run_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_GlobalRunsFeed(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Subscribe to the global runs feed, not the run's own channel
	conn := env.subscribeAndWait(t, GlobalRunsChannel)

	err := env.publisher.PublishRunStatus(ctx, env.runID, RunStatusPayload{
		Type:      EventTypeRunStatus,
		RunID:     env.runID,
		Status:    run.StatusRunning,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// The transient mirror arrives on the global channel
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeRunStatus, msg["type"])
	assert.Equal(t, env.runID, msg["run_id"])
	// The global copy is NOTIFY-only and never carries a db_event_id
	assert.Nil(t, msg["db_event_id"])
}

func TestIntegration_RunLifecycleOverWebSocket(t *testing.T) {
	// Verifies the full run event protocol a client observes:
	// 1. run.status running (persistent)
	// 2. run.progress at a phase boundary (persistent)
	// 3. run.log lines (transient)
	// 4. run.step outcome (persistent)
	// 5. run.status passed (persistent)
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t, env.channel)
	now := func() string { return time.Now().Format(time.RFC3339Nano) }

	// 1. Running
	require.NoError(t, env.publisher.PublishRunStatus(ctx, env.runID, RunStatusPayload{
		Type: EventTypeRunStatus, RunID: env.runID, Status: run.StatusRunning, Timestamp: now(),
	}))
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeRunStatus, msg["type"])
	assert.Equal(t, "running", msg["status"])

	// 2. Progress
	require.NoError(t, env.publisher.PublishRunProgress(ctx, env.runID, RunProgressPayload{
		Type: EventTypeRunProgress, RunID: env.runID, Progress: 20, Phase: "sandbox_ready", Timestamp: now(),
	}))
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeRunProgress, msg["type"])
	assert.Equal(t, float64(20), msg["progress"])

	// 3. Log lines (transient)
	lines := []string{"[chromium] started", "[test] STEP 1: Connect wallet", "[test] PASS"}
	for _, line := range lines {
		require.NoError(t, env.publisher.PublishRunLog(ctx, env.runID, RunLogPayload{
			Type: EventTypeRunLog, RunID: env.runID, Stream: "stdout", Line: line, Timestamp: now(),
		}))
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeRunLog, msg["type"])
		assert.Equal(t, line, msg["line"])
	}

	// 4. Step outcome
	require.NoError(t, env.publisher.PublishRunStep(ctx, env.runID, RunStepPayload{
		Type: EventTypeRunStep, RunID: env.runID, StepIndex: 1, StepName: "Connect wallet",
		Source: "spec", Status: StepStatusPassed, DurationMs: 900, Timestamp: now(),
	}))
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeRunStep, msg["type"])

	// 5. Terminal status
	require.NoError(t, env.publisher.PublishRunStatus(ctx, env.runID, RunStatusPayload{
		Type: EventTypeRunStatus, RunID: env.runID, Status: run.StatusPassed, Timestamp: now(),
	}))
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "passed", msg["status"])

	// Only the persistent events are in the DB; the 3 log lines are not.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 4, "only persistent events should be in DB")
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent step events
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishRunStep(ctx, env.runID, RunStepPayload{
			Type:      EventTypeRunStep,
			RunID:     env.runID,
			StepIndex: i,
			Status:    StepStatusPassed,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order
	for i := 1; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeRunStep, msg["type"])
		assert.Equal(t, float64(i), msg["step_index"])
	}

	// Explicit catchup from the first event's ID — should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, float64(i), msg["step_index"])
	}

	// No more messages — verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}

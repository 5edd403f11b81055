// Package cdp is a minimal Chrome DevTools Protocol client covering the
// domains the sandbox drives: Target, Page, Runtime, Input, Emulation.
// Transport is JSON-RPC over a single websocket to the browser endpoint;
// tab sessions multiplex over it via the sessionId field (flat mode).
package cdp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/coder/websocket"
)

// maxMessageSize accommodates base64 screenshots and screencast frames.
const maxMessageSize = 64 << 20

// eventQueueSize bounds buffered undispatched events. Screencast frames
// dominate; a stalled consumer drops frames rather than the connection.
const eventQueueSize = 256

// ErrConnClosed is returned by calls issued after the browser endpoint
// disconnected.
var ErrConnClosed = errors.New("cdp connection closed")

// ProtocolError is an error object returned by the browser for a command.
type ProtocolError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

func (e *ProtocolError) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("cdp: %s (%d): %s", e.Message, e.Code, e.Data)
	}
	return fmt.Sprintf("cdp: %s (%d)", e.Message, e.Code)
}

// message is the wire envelope for both directions.
type message struct {
	ID        int64           `json:"id,omitempty"`
	Method    string          `json:"method,omitempty"`
	Params    json.RawMessage `json:"params,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     *ProtocolError  `json:"error,omitempty"`
}

// EventHandler receives a protocol event. sessionID is empty for
// browser-level events.
type EventHandler func(sessionID string, params json.RawMessage)

type eventSub struct {
	id int64
	fn EventHandler
}

// Client is a connection to a browser's DevTools endpoint.
type Client struct {
	conn   *websocket.Conn
	nextID atomic.Int64
	subSeq atomic.Int64

	writeMu sync.Mutex

	mu       sync.Mutex
	pending  map[int64]chan *message
	handlers map[string][]eventSub

	events    chan *message
	closed    chan struct{}
	closeOnce sync.Once
}

// Dial connects to the browser's websocket debugger URL.
func Dial(ctx context.Context, wsURL string) (*Client, error) {
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial devtools endpoint: %w", err)
	}
	conn.SetReadLimit(maxMessageSize)

	c := &Client{
		conn:     conn,
		pending:  make(map[int64]chan *message),
		handlers: make(map[string][]eventSub),
		events:   make(chan *message, eventQueueSize),
		closed:   make(chan struct{}),
	}
	go c.readLoop()
	go c.dispatchLoop()
	return c, nil
}

// Close tears down the connection. Pending calls fail with ErrConnClosed.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.closed)
		_ = c.conn.Close(websocket.StatusNormalClosure, "")
		c.failPending()
	})
	return nil
}

// Call issues a protocol command and decodes its result into out (which
// may be nil). sessionID routes the command to a tab session; empty
// targets the browser itself.
func (c *Client) Call(ctx context.Context, sessionID, method string, params, out interface{}) error {
	select {
	case <-c.closed:
		return ErrConnClosed
	default:
	}

	id := c.nextID.Add(1)
	msg := message{ID: id, Method: method, SessionID: sessionID}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("failed to marshal %s params: %w", method, err)
		}
		msg.Params = raw
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal %s command: %w", method, err)
	}

	ch := make(chan *message, 1)
	c.mu.Lock()
	c.pending[id] = ch
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	c.writeMu.Lock()
	err = c.conn.Write(ctx, websocket.MessageText, data)
	c.writeMu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to send %s: %w", method, err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.closed:
		return ErrConnClosed
	case resp := <-ch:
		if resp.Error != nil {
			return fmt.Errorf("%s: %w", method, resp.Error)
		}
		if out != nil && len(resp.Result) > 0 {
			if err := json.Unmarshal(resp.Result, out); err != nil {
				return fmt.Errorf("failed to decode %s result: %w", method, err)
			}
		}
		return nil
	}
}

// On registers a handler for a protocol event. The returned function
// unsubscribes it.
func (c *Client) On(method string, fn EventHandler) func() {
	id := c.subSeq.Add(1)
	c.mu.Lock()
	c.handlers[method] = append(c.handlers[method], eventSub{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		subs := c.handlers[method]
		for i, s := range subs {
			if s.id == id {
				c.handlers[method] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Closed returns a channel closed when the connection is gone.
func (c *Client) Closed() <-chan struct{} {
	return c.closed
}

func (c *Client) readLoop() {
	for {
		_, data, err := c.conn.Read(context.Background())
		if err != nil {
			c.closeOnce.Do(func() {
				close(c.closed)
				c.failPending()
			})
			return
		}

		var msg message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Discarding undecodable devtools message", "error", err)
			continue
		}

		if msg.ID != 0 {
			c.mu.Lock()
			ch, ok := c.pending[msg.ID]
			c.mu.Unlock()
			if ok {
				ch <- &msg
			}
			continue
		}

		// Event. Dispatch on a separate goroutine-owned queue so a
		// handler issuing its own Call cannot stall the read loop.
		select {
		case c.events <- &msg:
		default:
			// Queue full; drop. Screencast consumers tolerate gaps.
		}
	}
}

func (c *Client) dispatchLoop() {
	for {
		select {
		case <-c.closed:
			return
		case msg := <-c.events:
			c.mu.Lock()
			subs := append([]eventSub(nil), c.handlers[msg.Method]...)
			c.mu.Unlock()
			for _, s := range subs {
				s.fn(msg.SessionID, msg.Params)
			}
		}
	}
}

func (c *Client) failPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, ch := range c.pending {
		select {
		case ch <- &message{ID: id, Error: &ProtocolError{Code: -1, Message: "connection closed"}}:
		default:
		}
	}
}

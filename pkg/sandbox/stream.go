package sandbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/dappsmith/conductor/pkg/sandbox/cdp"
)

// streamFrame is the wire format pushed to live-view subscribers. Data
// stays base64 as delivered by the browser.
type streamFrame struct {
	Type        string `json:"type"`
	Data        string `json:"data"`
	TimestampMs int64  `json:"timestampMs"`
}

// StreamRelay serves live screencast frames to websocket viewers on the
// sandbox's control port. The paired pixel port stays reserved for a
// display-level VNC server in headed deployments; allocating both keeps
// the two ranges in lockstep.
type StreamRelay struct {
	ports PortPair
	hub   *screencastHub

	srv *http.Server

	mu      sync.Mutex
	viewers map[*websocket.Conn]struct{}
	unsub   func()

	closeOnce sync.Once
	closeErr  error
}

func newStreamRelay(ports PortPair, hub *screencastHub) *StreamRelay {
	return &StreamRelay{
		ports:   ports,
		hub:     hub,
		viewers: make(map[*websocket.Conn]struct{}),
	}
}

// Ports returns the pair the relay was allocated.
func (r *StreamRelay) Ports() PortPair { return r.ports }

// Start binds the control port and begins relaying frames.
func (r *StreamRelay) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", r.ports.Control))
	if err != nil {
		return fmt.Errorf("failed to bind stream port %d: %w", r.ports.Control, err)
	}

	unsub, err := r.hub.subscribe(r.onFrame)
	if err != nil {
		_ = ln.Close()
		return err
	}
	r.unsub = unsub

	mux := http.NewServeMux()
	mux.HandleFunc("/", r.handleViewer)
	r.srv = &http.Server{Handler: mux}
	go func() {
		if err := r.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Warn("Stream relay server stopped", "port", r.ports.Control, "error", err)
		}
	}()

	slog.Info("Live stream relay started", "control_port", r.ports.Control, "pixel_port", r.ports.Pixel)
	return nil
}

func (r *StreamRelay) handleViewer(w http.ResponseWriter, req *http.Request) {
	conn, err := websocket.Accept(w, req, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Warn("Failed to accept stream viewer", "error", err)
		return
	}

	r.mu.Lock()
	r.viewers[conn] = struct{}{}
	count := len(r.viewers)
	r.mu.Unlock()
	slog.Debug("Stream viewer connected", "viewers", count)

	// Drain incoming messages purely to notice disconnects.
	for {
		if _, _, err := conn.Read(req.Context()); err != nil {
			break
		}
	}

	r.mu.Lock()
	delete(r.viewers, conn)
	r.mu.Unlock()
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

func (r *StreamRelay) onFrame(frame cdp.ScreencastFrame) {
	payload, err := json.Marshal(streamFrame{
		Type:        "frame",
		Data:        frame.Data,
		TimestampMs: int64(frame.Metadata.Timestamp * 1000),
	})
	if err != nil {
		return
	}

	r.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(r.viewers))
	for c := range r.viewers {
		conns = append(conns, c)
	}
	r.mu.Unlock()

	for _, c := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := c.Write(ctx, websocket.MessageText, payload)
		cancel()
		if err != nil {
			// A viewer that cannot keep up gets dropped rather than
			// backing up the relay.
			r.mu.Lock()
			delete(r.viewers, c)
			r.mu.Unlock()
			_ = c.Close(websocket.StatusPolicyViolation, "write timeout")
		}
	}
}

// Close stops the relay and disconnects all viewers.
func (r *StreamRelay) Close(ctx context.Context) error {
	r.closeOnce.Do(func() {
		if r.unsub != nil {
			r.unsub()
		}

		r.mu.Lock()
		conns := make([]*websocket.Conn, 0, len(r.viewers))
		for c := range r.viewers {
			conns = append(conns, c)
		}
		r.viewers = make(map[*websocket.Conn]struct{})
		r.mu.Unlock()
		for _, c := range conns {
			_ = c.Close(websocket.StatusGoingAway, "stream ended")
		}

		if r.srv != nil {
			r.closeErr = r.srv.Shutdown(ctx)
		}
	})
	return r.closeErr
}

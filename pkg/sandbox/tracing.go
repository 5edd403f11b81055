package sandbox

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/jpeg"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/sandbox/cdp"
)

// screencastHub owns the tab's single screencast stream and fans frames
// out to subscribers. The browser allows one screencast per session, so
// the tracer and the live stream relay share it; the stream starts with
// the first subscriber and stops with the last.
type screencastHub struct {
	sess *cdp.Session
	opts cdp.ScreencastOptions

	mu      sync.Mutex
	sinks   map[int64]func(cdp.ScreencastFrame)
	seq     int64
	running bool
	unsub   func()
}

func newScreencastHub(sess *cdp.Session, cfg *config.SandboxConfig) *screencastHub {
	return &screencastHub{
		sess: sess,
		opts: cdp.ScreencastOptions{
			Quality:       cfg.ScreencastQuality,
			MaxWidth:      cfg.ScreencastMaxWidth,
			MaxHeight:     cfg.ScreencastMaxHeight,
			EveryNthFrame: cfg.ScreencastEveryNth,
		},
		sinks: make(map[int64]func(cdp.ScreencastFrame)),
	}
}

// subscribe registers a frame sink and returns its unsubscribe func.
func (h *screencastHub) subscribe(fn func(cdp.ScreencastFrame)) (func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.running {
		if err := h.startLocked(); err != nil {
			return nil, err
		}
	}

	h.seq++
	id := h.seq
	h.sinks[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.sinks, id)
		if len(h.sinks) == 0 && h.running {
			h.stopLocked()
		}
	}, nil
}

func (h *screencastHub) startLocked() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h.unsub = h.sess.Client().On("Page.screencastFrame", func(sessionID string, params json.RawMessage) {
		if sessionID != h.sess.ID {
			return
		}
		var frame cdp.ScreencastFrame
		if err := json.Unmarshal(params, &frame); err != nil {
			return
		}

		ackCtx, ackCancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = h.sess.AckScreencastFrame(ackCtx, frame.SessionID)
		ackCancel()

		h.mu.Lock()
		sinks := make([]func(cdp.ScreencastFrame), 0, len(h.sinks))
		for _, s := range h.sinks {
			sinks = append(sinks, s)
		}
		h.mu.Unlock()
		for _, s := range sinks {
			s(frame)
		}
	})

	if err := h.sess.StartScreencast(ctx, h.opts); err != nil {
		h.unsub()
		h.unsub = nil
		return fmt.Errorf("failed to start screencast: %w", err)
	}
	h.running = true
	return nil
}

func (h *screencastHub) stopLocked() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = h.sess.StopScreencast(ctx)
	if h.unsub != nil {
		h.unsub()
		h.unsub = nil
	}
	h.running = false
}

// shutdown force-stops the stream regardless of subscribers.
func (h *screencastHub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sinks = make(map[int64]func(cdp.ScreencastFrame))
	if h.running {
		h.stopLocked()
	}
}

type frameEntry struct {
	data        []byte
	timestampMs int64
}

type domEntry struct {
	label string
	html  string
}

// Tracer records a run's visual history: JPEG screencast frames (the
// browser performs the encode, downscale, and frame thinning natively)
// plus on-demand DOM snapshots, packaged as a zip archive on Stop.
type Tracer struct {
	hub  *screencastHub
	sess *cdp.Session
	cfg  *config.SandboxConfig

	mu      sync.Mutex
	active  bool
	frames  []frameEntry
	doms    []domEntry
	startMs int64
	unsub   func()
}

func newTracer(hub *screencastHub, sess *cdp.Session, cfg *config.SandboxConfig) *Tracer {
	return &Tracer{hub: hub, sess: sess, cfg: cfg}
}

// Active reports whether a trace is being recorded.
func (t *Tracer) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Start begins collecting frames. Starting an active tracer is an error.
func (t *Tracer) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active {
		return fmt.Errorf("tracing already active")
	}

	unsub, err := t.hub.subscribe(t.onFrame)
	if err != nil {
		return err
	}
	t.unsub = unsub
	t.frames = nil
	t.doms = nil
	t.startMs = time.Now().UnixMilli()
	t.active = true
	return nil
}

func (t *Tracer) onFrame(frame cdp.ScreencastFrame) {
	raw, err := base64.StdEncoding.DecodeString(frame.Data)
	if err != nil {
		return
	}
	ts := int64(frame.Metadata.Timestamp * 1000)
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}
	t.mu.Lock()
	if t.active {
		t.frames = append(t.frames, frameEntry{data: raw, timestampMs: ts})
	}
	t.mu.Unlock()
}

// CaptureDOM snapshots the page's current markup under a label, for
// post-mortem inspection alongside the frames.
func (t *Tracer) CaptureDOM(ctx context.Context, label string) error {
	var html string
	err := t.sess.Evaluate(ctx, "document.documentElement.outerHTML", &html)
	if err != nil {
		return fmt.Errorf("failed to capture DOM snapshot: %w", err)
	}
	// Guard the archive against pathological documents.
	const maxDOMBytes = 2 << 20
	if len(html) > maxDOMBytes {
		html = html[:maxDOMBytes]
	}
	t.mu.Lock()
	if t.active {
		t.doms = append(t.doms, domEntry{label: label, html: html})
	}
	t.mu.Unlock()
	return nil
}

// screencastManifest indexes the frames of a trace archive.
type screencastManifest struct {
	FrameCount       int             `json:"frameCount"`
	Frames           []manifestFrame `json:"frames"`
	StartTimestampMs int64           `json:"startTimestampMs"`
	EndTimestampMs   int64           `json:"endTimestampMs"`
	Width            int             `json:"width"`
	Height           int             `json:"height"`
	Quality          int             `json:"quality"`
}

type manifestFrame struct {
	Index       int    `json:"index"`
	Filename    string `json:"filename"`
	TimestampMs int64  `json:"timestampMs"`
}

// Stop ends collection and returns the trace as zip bytes: frames named
// by content hash, a screencast manifest, and the DOM snapshots.
func (t *Tracer) Stop(ctx context.Context) ([]byte, error) {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return nil, fmt.Errorf("tracing not active")
	}
	t.active = false
	unsub := t.unsub
	t.unsub = nil
	frames := t.frames
	doms := t.doms
	startMs := t.startMs
	t.frames = nil
	t.doms = nil
	t.mu.Unlock()

	if unsub != nil {
		unsub()
	}

	return buildTraceArchive(frames, doms, startMs, time.Now().UnixMilli(), t.cfg.ScreencastQuality)
}

// abort stops collection and discards buffered data, for teardown paths
// where the archive is no longer wanted.
func (t *Tracer) abort() {
	t.mu.Lock()
	unsub := t.unsub
	t.unsub = nil
	t.active = false
	t.frames = nil
	t.doms = nil
	t.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

var domLabelSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func buildTraceArchive(frames []frameEntry, doms []domEntry, startMs, endMs int64, quality int) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	manifest := screencastManifest{
		FrameCount:       len(frames),
		Frames:           make([]manifestFrame, 0, len(frames)),
		StartTimestampMs: startMs,
		EndTimestampMs:   endMs,
		Quality:          quality,
	}

	written := make(map[string]bool)
	for i, f := range frames {
		name := fmt.Sprintf("%x.jpg", sha1.Sum(f.data))
		manifest.Frames = append(manifest.Frames, manifestFrame{
			Index:       i,
			Filename:    name,
			TimestampMs: f.timestampMs,
		})
		// Identical frames share one entry; the manifest still lists
		// every index.
		if written[name] {
			continue
		}
		written[name] = true
		w, err := zw.Create("frames/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to add trace frame: %w", err)
		}
		if _, err := w.Write(f.data); err != nil {
			return nil, fmt.Errorf("failed to write trace frame: %w", err)
		}
	}

	if len(frames) > 0 {
		if dims, err := jpeg.DecodeConfig(bytes.NewReader(frames[0].data)); err == nil {
			manifest.Width = dims.Width
			manifest.Height = dims.Height
		} else {
			slog.Warn("Could not decode screencast frame dimensions", "error", err)
		}
	}

	manifestJSON, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal screencast manifest: %w", err)
	}
	w, err := zw.Create("screencast-manifest.json")
	if err != nil {
		return nil, fmt.Errorf("failed to add screencast manifest: %w", err)
	}
	if _, err := w.Write(manifestJSON); err != nil {
		return nil, fmt.Errorf("failed to write screencast manifest: %w", err)
	}

	for i, d := range doms {
		label := domLabelSanitizer.ReplaceAllString(d.label, "-")
		if label == "" {
			label = "snapshot"
		}
		w, err := zw.Create(fmt.Sprintf("dom/%03d-%s.html", i, label))
		if err != nil {
			return nil, fmt.Errorf("failed to add DOM snapshot: %w", err)
		}
		if _, err := w.Write([]byte(d.html)); err != nil {
			return nil, fmt.Errorf("failed to write DOM snapshot: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize trace archive: %w", err)
	}
	return buf.Bytes(), nil
}

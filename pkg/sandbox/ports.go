package sandbox

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dappsmith/conductor/pkg/config"
)

// PortPair is the pixel/control port couple a streaming sandbox binds.
// The pixel port carries the raw display stream for an external VNC
// server; the control port serves the websocket relay. The two are
// paired by offset so a viewer can derive one from the other.
type PortPair struct {
	Pixel   int `json:"pixel"`
	Control int `json:"control"`
}

type portHolder struct {
	pid         int
	runID       string
	allocatedAt time.Time
}

// PortAllocator hands out port pairs from the configured ranges. One
// allocator is shared by every worker in the pod; the mutex is the
// arbiter between concurrently bootstrapping sandboxes.
type PortAllocator struct {
	mu           sync.Mutex
	pixelStart   int
	pixelEnd     int
	controlStart int
	maxAge       time.Duration
	held         map[int]portHolder

	pidAlive func(int) bool
	now      func() time.Time
}

// NewPortAllocator builds an allocator over the configured ranges.
func NewPortAllocator(cfg *config.SandboxConfig) *PortAllocator {
	return &PortAllocator{
		pixelStart:   cfg.PixelPortStart,
		pixelEnd:     cfg.PixelPortEnd,
		controlStart: cfg.ControlPortStart,
		maxAge:       cfg.PortMaxAge,
		held:         make(map[int]portHolder),
		pidAlive:     pidAlive,
		now:          time.Now,
	}
}

// controlFor derives the paired control port for a pixel port.
func (a *PortAllocator) controlFor(pixel int) int {
	return a.controlStart + (pixel - a.pixelStart)
}

// Allocate reserves the lowest free pair for the given owner process.
// When the pool is exhausted it first sweeps stale holders whose
// processes have died, then fails if nothing frees up.
func (a *PortAllocator) Allocate(pid int, runID string) (PortPair, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	pair, ok := a.takeLocked(pid, runID)
	if ok {
		return pair, nil
	}

	if freed := a.reclaimLocked(); freed > 0 {
		slog.Info("Reclaimed abandoned stream ports", "count", freed)
		if pair, ok := a.takeLocked(pid, runID); ok {
			return pair, nil
		}
	}

	return PortPair{}, fmt.Errorf("no stream ports available in range %d-%d", a.pixelStart, a.pixelEnd)
}

func (a *PortAllocator) takeLocked(pid int, runID string) (PortPair, bool) {
	for pixel := a.pixelStart; pixel <= a.pixelEnd; pixel++ {
		if _, taken := a.held[pixel]; taken {
			continue
		}
		a.held[pixel] = portHolder{pid: pid, runID: runID, allocatedAt: a.now()}
		return PortPair{Pixel: pixel, Control: a.controlFor(pixel)}, true
	}
	return PortPair{}, false
}

// Release frees a previously allocated pair. Releasing an unheld port
// is a no-op.
func (a *PortAllocator) Release(pair PortPair) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.held, pair.Pixel)
}

// Reclaim frees pairs whose holder process has died and whose
// allocation is older than the configured maximum age. Returns the
// number of pairs freed. The cleanup sweeper calls this periodically;
// Allocate also runs it on exhaustion.
func (a *PortAllocator) Reclaim() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reclaimLocked()
}

func (a *PortAllocator) reclaimLocked() int {
	freed := 0
	cutoff := a.now().Add(-a.maxAge)
	for pixel, h := range a.held {
		if h.allocatedAt.After(cutoff) {
			continue
		}
		if a.pidAlive(h.pid) {
			continue
		}
		slog.Warn("Stream port holder is gone, reclaiming",
			"pixel_port", pixel,
			"pid", h.pid,
			"run_id", h.runID,
			"held_for", a.now().Sub(h.allocatedAt).Round(time.Second))
		delete(a.held, pixel)
		freed++
	}
	return freed
}

// Occupancy reports held and total pair counts, for the system info
// endpoint.
func (a *PortAllocator) Occupancy() (held, total int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.held), a.pixelEnd - a.pixelStart + 1
}

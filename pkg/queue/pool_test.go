package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelRun(t *testing.T) {
	pool := &WorkerPool{
		activeRuns: make(map[string]context.CancelFunc),
	}

	// Register a run
	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterRun("run_1", cancel)

	// Cancel should succeed for a registered run
	assert.True(t, pool.CancelRun("run_1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for an unknown run
	assert.False(t, pool.CancelRun("unknown"))
}

func TestPoolUnregisterRun(t *testing.T) {
	pool := &WorkerPool{
		activeRuns: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterRun("run_1", cancel)

	// Should find it
	assert.True(t, pool.CancelRun("run_1"))

	// Unregister
	pool.UnregisterRun("run_1")

	// Should not find it anymore
	assert.False(t, pool.CancelRun("run_1"))
}

func TestPoolGetActiveRunIDs(t *testing.T) {
	pool := &WorkerPool{
		activeRuns: make(map[string]context.CancelFunc),
	}

	// Empty initially
	ids := pool.getActiveRunIDs()
	assert.Empty(t, ids)

	// Register runs
	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterRun("run_a", cancel1)
	pool.RegisterRun("suite_b", cancel2)

	ids = pool.getActiveRunIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "run_a")
	assert.Contains(t, ids, "suite_b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:     make(chan struct{}),
		activeRuns: make(map[string]context.CancelFunc),
	}

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}

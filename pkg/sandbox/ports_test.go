package sandbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/config"
)

func testAllocator() *PortAllocator {
	return NewPortAllocator(config.DefaultSandboxConfig())
}

func TestPortAllocatorPairing(t *testing.T) {
	alloc := testAllocator()

	first, err := alloc.Allocate(100, "run_a")
	require.NoError(t, err)
	assert.Equal(t, 5901, first.Pixel)
	assert.Equal(t, 6081, first.Control)

	second, err := alloc.Allocate(101, "run_b")
	require.NoError(t, err)
	assert.Equal(t, 5902, second.Pixel)
	assert.Equal(t, 6082, second.Control)

	// The pairing is positional across the two ranges.
	assert.Equal(t, second.Control-6081, second.Pixel-5901)
}

func TestPortAllocatorReleaseReuses(t *testing.T) {
	alloc := testAllocator()

	first, err := alloc.Allocate(100, "run_a")
	require.NoError(t, err)
	_, err = alloc.Allocate(101, "run_b")
	require.NoError(t, err)

	alloc.Release(first)

	third, err := alloc.Allocate(102, "run_c")
	require.NoError(t, err)
	assert.Equal(t, first.Pixel, third.Pixel, "released pair should be handed out again")
}

func TestPortAllocatorExhaustion(t *testing.T) {
	alloc := testAllocator()
	// Holders stay alive, so the exhaustion sweep must not free anything.
	alloc.pidAlive = func(int) bool { return true }

	for i := 0; i < 10; i++ {
		_, err := alloc.Allocate(200+i, "run")
		require.NoError(t, err)
	}

	_, err := alloc.Allocate(300, "run_overflow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no stream ports available")

	held, total := alloc.Occupancy()
	assert.Equal(t, 10, held)
	assert.Equal(t, 10, total)
}

func TestPortAllocatorReclaim(t *testing.T) {
	alloc := testAllocator()

	now := time.Now()
	alloc.now = func() time.Time { return now }
	deadPIDs := map[int]bool{100: true}
	alloc.pidAlive = func(pid int) bool { return !deadPIDs[pid] }

	deadOld, err := alloc.Allocate(100, "run_dead_old")
	require.NoError(t, err)
	aliveOld, err := alloc.Allocate(101, "run_alive_old")
	require.NoError(t, err)

	// Age the first two past the reclaim horizon, then allocate a
	// fresh pair for a dead holder.
	now = now.Add(61 * time.Minute)
	deadYoung, err := alloc.Allocate(102, "run_dead_young")
	require.NoError(t, err)
	deadPIDs[102] = true

	freed := alloc.Reclaim()
	assert.Equal(t, 1, freed, "only the old pair with a dead holder is reclaimable")

	held, _ := alloc.Occupancy()
	assert.Equal(t, 2, held)

	// The reclaimed pixel port is allocatable again.
	again, err := alloc.Allocate(103, "run_again")
	require.NoError(t, err)
	assert.Equal(t, deadOld.Pixel, again.Pixel)

	alloc.Release(aliveOld)
	alloc.Release(deadYoung)
}

func TestPortAllocatorExhaustionTriggersReclaim(t *testing.T) {
	alloc := testAllocator()

	now := time.Now()
	alloc.now = func() time.Time { return now }
	alloc.pidAlive = func(int) bool { return false }

	for i := 0; i < 10; i++ {
		_, err := alloc.Allocate(400+i, "run")
		require.NoError(t, err)
	}

	// All holders are dead and past max age: the next Allocate should
	// sweep and succeed rather than fail.
	now = now.Add(2 * time.Hour)
	pair, err := alloc.Allocate(500, "run_fresh")
	require.NoError(t, err)
	assert.Equal(t, 5901, pair.Pixel)
}

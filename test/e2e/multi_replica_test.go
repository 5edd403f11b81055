package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	testdb "github.com/dappsmith/conductor/test/database"
)

// TestRunsClaimExactlyOnceAcrossReplicas boots two full instances over
// one shared schema and checks FOR UPDATE SKIP LOCKED claiming: every
// job executes on exactly one replica, none twice, none lost.
func TestRunsClaimExactlyOnceAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	app1 := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("replica-1"),
		WithWorkerCount(2))
	app2 := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("replica-2"),
		WithWorkerCount(2))

	projectID := app1.CreateProject(t, "multi-replica")
	specID := app1.CreateReadySpec(t, projectID, "swap")

	// A little simulated work so claims interleave across pools.
	app1.Executor.SetDefault(RunScript{Delay: 100 * time.Millisecond})
	app2.Executor.SetDefault(RunScript{Delay: 100 * time.Millisecond})

	const n = 8
	runIDs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		runIDs = append(runIDs, app1.CreateRun(t, specID))
	}
	for _, id := range runIDs {
		app1.WaitForRunStatus(t, id, "passed", 30*time.Second)
	}

	seen := make(map[string]string, n)
	for _, jobID := range app1.Executor.ExecutedJobIDs() {
		seen[jobID] = "replica-1"
	}
	for _, jobID := range app2.Executor.ExecutedJobIDs() {
		prev, dup := seen[jobID]
		assert.False(t, dup, "job %s executed on both %s and replica-2", jobID, prev)
		seen[jobID] = "replica-2"
	}
	assert.Len(t, seen, n, "every job executes exactly once")
}

// TestReplicasShareEventStream publishes from one replica's executor
// and subscribes on the other: NOTIFY crosses connection pools.
func TestReplicasShareEventStream(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	// replica-1 executes; replica-2 only serves the websocket.
	app1 := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("stream-replica-1"),
		WithWorkerCount(1))
	app2 := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("stream-replica-2"),
		WithWorkerCount(0))

	projectID := app1.CreateProject(t, "cross-pod-events")
	specID := app1.CreateReadySpec(t, projectID, "swap")

	ws := mustSubscribeGlobal(t, app2)
	defer func() { _ = ws.Close() }()

	runID := app1.CreateRun(t, specID)
	app1.WaitForRunStatus(t, runID, "passed", terminalDeadline)

	_, err := ws.WaitForRunStatus(runID, "passed", 10*time.Second)
	assert.NoError(t, err, "terminal event should reach the other replica's subscribers")
}

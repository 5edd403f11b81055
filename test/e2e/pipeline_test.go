package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/pkg/events"
)

// TestRunLifecyclePasses drives a run through the full pipeline: API
// create → queue claim → scripted execution → terminal write, with
// both status transitions observed on the global websocket channel.
func TestRunLifecyclePasses(t *testing.T) {
	app := NewTestApp(t)
	projectID := app.CreateProject(t, "pipeline")
	specID := app.CreateReadySpec(t, projectID, "swap")

	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()
	require.NoError(t, ws.Subscribe(events.GlobalRunsChannel))
	_, err = ws.WaitForEventType("subscription.confirmed", 5*time.Second)
	require.NoError(t, err)

	runID := app.CreateRun(t, specID)

	final := app.WaitForRunStatus(t, runID, "passed", terminalDeadline)
	assert.Equal(t, float64(100), final["progress"])
	assert.NotEmpty(t, final["completed_at"])
	assert.Equal(t, specID, final["spec_id"])

	// The run list channel carries both lifecycle transitions.
	_, err = ws.WaitForRunStatus(runID, "running", 5*time.Second)
	require.NoError(t, err)
	_, err = ws.WaitForRunStatus(runID, "passed", 5*time.Second)
	require.NoError(t, err)
}

// TestRunFailurePersistsError checks that a failing run records its
// error message and that a late subscriber to the run's own channel
// still receives the terminal event via catch-up.
func TestRunFailurePersistsError(t *testing.T) {
	app := NewTestApp(t)
	projectID := app.CreateProject(t, "pipeline-failure")
	specID := app.CreateReadySpec(t, projectID, "swap")
	app.Executor.Script(specID, RunScript{
		Status:       run.StatusFailed,
		ErrorMessage: "locator '#swap' not found",
	})

	runID := app.CreateRun(t, specID)
	final := app.WaitForRunStatus(t, runID, "failed", terminalDeadline)
	assert.Equal(t, "locator '#swap' not found", final["error_message"])

	// Subscribe after the run finished: catch-up replays the
	// persisted run.status events.
	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()
	require.NoError(t, ws.Subscribe(events.RunChannel(runID)))

	evt, err := ws.WaitForRunStatus(runID, "failed", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "locator '#swap' not found", evt.Parsed["error_message"])
}

// TestRunsExecuteConcurrently floods one pool with more runs than
// workers and checks every run still reaches a terminal status.
func TestRunsExecuteConcurrently(t *testing.T) {
	app := NewTestApp(t, WithWorkerCount(3))
	projectID := app.CreateProject(t, "pipeline-burst")

	const n = 6
	runIDs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		specID := app.CreateReadySpec(t, projectID, fmtSpecName("burst", i))
		app.Executor.Script(specID, RunScript{Delay: 50 * time.Millisecond})
		runIDs = append(runIDs, app.CreateRun(t, specID))
	}

	for _, id := range runIDs {
		app.WaitForRunStatus(t, id, "passed", 30*time.Second)
	}
}

package e2e

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCancelRunningRun cancels a run mid-execution. The scripted
// executor blocks until the pool cancels the job context, then writes
// CANCELLED the way the real executor does.
func TestCancelRunningRun(t *testing.T) {
	app := NewTestApp(t)
	projectID := app.CreateProject(t, "cancel-running")
	specID := app.CreateReadySpec(t, projectID, "swap")
	app.Executor.Script(specID, RunScript{Block: true})

	runID := app.CreateRun(t, specID)
	app.WaitForRunStatus(t, runID, "running", terminalDeadline)

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/runs/"+runID+"/cancel", nil)
	require.Equal(t, http.StatusOK, status, "cancel run: %v", body)

	final := app.WaitForRunStatus(t, runID, "cancelled", terminalDeadline)
	assert.Equal(t, "cancelled", final["error_message"])
}

// TestCancelPendingRun cancels a run no worker ever claims (zero
// workers). The API finalizes it straight to CANCELLED.
func TestCancelPendingRun(t *testing.T) {
	app := NewTestApp(t, WithWorkerCount(0))
	projectID := app.CreateProject(t, "cancel-pending")
	specID := app.CreateReadySpec(t, projectID, "swap")

	runID := app.CreateRun(t, specID)
	assert.Equal(t, "pending", app.GetRun(t, runID)["status"])

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/runs/"+runID+"/cancel", nil)
	require.Equal(t, http.StatusOK, status, "cancel run: %v", body)

	assert.Equal(t, "cancelled", app.GetRun(t, runID)["status"])
	assert.Empty(t, app.Executor.ExecutedJobIDs(), "cancelled pending run must never execute")
}

// TestRunTimesOut lets the job deadline expire and expects TIMED_OUT,
// not a retry.
func TestRunTimesOut(t *testing.T) {
	app := NewTestApp(t, WithRunTimeout(1*time.Second))
	projectID := app.CreateProject(t, "timeout")
	specID := app.CreateReadySpec(t, projectID, "swap")
	app.Executor.Script(specID, RunScript{Block: true})

	runID := app.CreateRun(t, specID)

	final := app.WaitForRunStatus(t, runID, "timed_out", terminalDeadline)
	assert.True(t, strings.Contains(final["error_message"].(string), "timed out"))
	assert.Len(t, app.Executor.ExecutedJobIDs(), 1, "timed-out run must not be retried")
}

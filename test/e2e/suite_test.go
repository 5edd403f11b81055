package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/pkg/events"
)

// TestSuiteExecutesSpecsInOrder runs a three-spec suite where the
// middle spec fails: the suite finishes FAILED with correct counters
// and the child runs carry their suite order.
func TestSuiteExecutesSpecsInOrder(t *testing.T) {
	app := NewTestApp(t)
	projectID := app.CreateProject(t, "suite")

	specIDs := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		specIDs = append(specIDs, app.CreateReadySpec(t, projectID, fmtSpecName("suite-spec", i)))
	}
	app.Executor.Script(specIDs[1], RunScript{
		Status:       run.StatusFailed,
		ErrorMessage: "balance assertion failed",
	})

	suiteID := app.CreateSuiteRun(t, projectID, specIDs)

	final := app.WaitForSuiteStatus(t, suiteID, "failed", terminalDeadline)
	assert.Equal(t, float64(3), final["total_tests"])
	assert.Equal(t, float64(2), final["passed_tests"])
	assert.Equal(t, float64(1), final["failed_tests"])
	assert.Equal(t, "1 of 3 tests failed", final["error_message"])

	// Child runs in suite order, each with its own terminal status.
	body := app.GetSuiteRun(t, suiteID)
	edges, ok := body["edges"].(map[string]interface{})
	require.True(t, ok, "suite response should include edges: %v", body)
	children, ok := edges["runs"].([]interface{})
	require.True(t, ok, "suite should include child runs")
	require.Len(t, children, 3)

	wantStatus := []string{"passed", "failed", "passed"}
	for i, raw := range children {
		child := raw.(map[string]interface{})
		assert.Equal(t, float64(i), child["suite_index"], "children ordered by suite index")
		assert.Equal(t, wantStatus[i], child["status"])
		assert.Equal(t, specIDs[i], child["spec_id"])
	}

	// Late subscriber catches the terminal suite event.
	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()
	require.NoError(t, ws.Subscribe(events.SuiteChannel(suiteID)))
	_, err = ws.WaitForSuiteStatus(suiteID, "failed", 5*time.Second)
	require.NoError(t, err)
}

// TestCancelPendingSuite finalizes a never-claimed suite directly.
func TestCancelPendingSuite(t *testing.T) {
	app := NewTestApp(t, WithWorkerCount(0))
	projectID := app.CreateProject(t, "suite-cancel-pending")
	specID := app.CreateReadySpec(t, projectID, "swap")

	suiteID := app.CreateSuiteRun(t, projectID, []string{specID})

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/suite-runs/"+suiteID+"/cancel", nil)
	require.Equal(t, http.StatusOK, status, "cancel suite: %v", body)

	assert.Equal(t, "cancelled", app.GetSuiteRun(t, suiteID)["status"])
}

// TestCancelRunningSuite cancels between children: the first child's
// pass survives, the blocked child ends CANCELLED, and the suite
// records the partial tally.
func TestCancelRunningSuite(t *testing.T) {
	app := NewTestApp(t)
	projectID := app.CreateProject(t, "suite-cancel-running")

	first := app.CreateReadySpec(t, projectID, "suite-first")
	second := app.CreateReadySpec(t, projectID, "suite-second")
	app.Executor.Script(second, RunScript{Block: true})

	suiteID := app.CreateSuiteRun(t, projectID, []string{first, second})

	// Wait until the first child's pass is recorded, so the cancel
	// deterministically lands while the second child is blocked.
	require.Eventually(t, func() bool {
		return app.GetSuiteRun(t, suiteID)["passed_tests"] == float64(1)
	}, terminalDeadline, 50*time.Millisecond)

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/suite-runs/"+suiteID+"/cancel", nil)
	require.Equal(t, http.StatusOK, status, "cancel suite: %v", body)

	final := app.WaitForSuiteStatus(t, suiteID, "cancelled", terminalDeadline)
	assert.Equal(t, float64(1), final["passed_tests"])
	assert.Equal(t, float64(0), final["failed_tests"])
}

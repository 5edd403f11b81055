package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/events"
)

// doJSON issues a JSON request against the test server and decodes the
// response body into a generic map. A nil body sends no payload.
func (app *TestApp) doJSON(t *testing.T, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, app.BaseURL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var decoded map[string]interface{}
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	}
	return resp.StatusCode, decoded
}

// CreateProject creates a project through the API and returns its id.
func (app *TestApp) CreateProject(t *testing.T, name string) string {
	t.Helper()
	status, body := app.doJSON(t, http.MethodPost, "/api/v1/projects", map[string]interface{}{
		"name":     name,
		"dapp_url": "https://dapp.example.com",
	})
	require.Equal(t, http.StatusCreated, status, "create project: %v", body)
	return body["id"].(string)
}

// CreateReadySpec seeds recording and spec through the API and flips
// the spec to READY so runs can be created against it.
func (app *TestApp) CreateReadySpec(t *testing.T, projectID, name string) string {
	t.Helper()

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/recordings", map[string]interface{}{
		"project_id":     projectID,
		"name":           name,
		"recording_type": "flow",
		"url":            "https://dapp.example.com/swap",
		"actions": []map[string]interface{}{
			{"type": "click", "selector": "#swap"},
		},
	})
	require.Equal(t, http.StatusCreated, status, "create recording: %v", body)
	recordingID := body["id"].(string)

	status, body = app.doJSON(t, http.MethodPost, "/api/v1/specs", map[string]interface{}{
		"recording_id": recordingID,
		"code":         "test('" + name + "', async ({ page }) => {});",
		"status":       "ready",
	})
	require.Equal(t, http.StatusCreated, status, "create spec: %v", body)
	return body["id"].(string)
}

// CreateRun enqueues a run for the spec and returns the run id. The
// run is PENDING until a worker claims it.
func (app *TestApp) CreateRun(t *testing.T, specID string) string {
	t.Helper()
	status, body := app.doJSON(t, http.MethodPost, "/api/v1/runs", map[string]interface{}{
		"spec_id":        specID,
		"execution_mode": "HYBRID",
	})
	require.Equal(t, http.StatusCreated, status, "create run: %v", body)
	return body["id"].(string)
}

// CreateSuiteRun enqueues a suite over the given specs.
func (app *TestApp) CreateSuiteRun(t *testing.T, projectID string, specIDs []string) string {
	t.Helper()
	status, body := app.doJSON(t, http.MethodPost, "/api/v1/suite-runs", map[string]interface{}{
		"project_id": projectID,
		"spec_ids":   specIDs,
	})
	require.Equal(t, http.StatusCreated, status, "create suite run: %v", body)
	return body["id"].(string)
}

// GetRun fetches a run through the API.
func (app *TestApp) GetRun(t *testing.T, runID string) map[string]interface{} {
	t.Helper()
	status, body := app.doJSON(t, http.MethodGet, "/api/v1/runs/"+runID, nil)
	require.Equal(t, http.StatusOK, status, "get run: %v", body)
	return body
}

// GetSuiteRun fetches a suite run, child runs included.
func (app *TestApp) GetSuiteRun(t *testing.T, suiteRunID string) map[string]interface{} {
	t.Helper()
	status, body := app.doJSON(t, http.MethodGet, "/api/v1/suite-runs/"+suiteRunID, nil)
	require.Equal(t, http.StatusOK, status, "get suite run: %v", body)
	return body
}

// WaitForRunStatus polls the API until the run reaches the wanted
// status. Fails the test on timeout or when the run lands on a
// different terminal status.
func (app *TestApp) WaitForRunStatus(t *testing.T, runID, want string, timeout time.Duration) map[string]interface{} {
	t.Helper()
	return app.waitForStatus(t, "/api/v1/runs/"+runID, want, timeout)
}

// WaitForSuiteStatus polls the API until the suite run reaches the
// wanted status.
func (app *TestApp) WaitForSuiteStatus(t *testing.T, suiteRunID, want string, timeout time.Duration) map[string]interface{} {
	t.Helper()
	return app.waitForStatus(t, "/api/v1/suite-runs/"+suiteRunID, want, timeout)
}

func (app *TestApp) waitForStatus(t *testing.T, path, want string, timeout time.Duration) map[string]interface{} {
	t.Helper()

	deadline := time.Now().Add(timeout)
	var last string
	for time.Now().Before(deadline) {
		status, body := app.doJSON(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, status, "poll %s: %v", path, body)
		last, _ = body["status"].(string)
		if last == want {
			return body
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %s to reach %q (last status %q)", path, want, last)
	return nil
}

// mustSubscribeGlobal opens a websocket against the app and subscribes
// to the global runs channel, failing the test on any protocol error.
func mustSubscribeGlobal(t *testing.T, app *TestApp) *WSClient {
	t.Helper()
	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	require.NoError(t, ws.Subscribe(events.GlobalRunsChannel))
	_, err = ws.WaitForEventType("subscription.confirmed", 5*time.Second)
	require.NoError(t, err)
	return ws
}

// terminalDeadline is how long tests wait for a queued run to finish.
// Generous because the CI database can be slow to claim.
const terminalDeadline = 15 * time.Second

func fmtSpecName(prefix string, i int) string {
	return fmt.Sprintf("%s-%d", prefix, i)
}

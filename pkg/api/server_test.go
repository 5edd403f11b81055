package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent"
	entjob "github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/pkg/blob"
	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/generator"
	"github.com/dappsmith/conductor/pkg/queue"
	"github.com/dappsmith/conductor/pkg/services"
	testdb "github.com/dappsmith/conductor/test/database"
)

// apiFixture serves requests straight through the gin engine; no
// worker pool runs, so created runs stay PENDING.
type apiFixture struct {
	srv       *Server
	client    *ent.Client
	queue     *queue.Queue
	runs      *services.RunService
	artifacts *services.ArtifactService
	generator *generator.ScriptedGenerator
}

type fixtureOption func(*Deps)

func withAPIKey(key string) fixtureOption {
	return func(d *Deps) { d.APIKey = key }
}

func newAPIFixture(t *testing.T, opts ...fixtureOption) *apiFixture {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	store, err := blob.NewFSStore(t.TempDir())
	require.NoError(t, err)
	cipher, err := services.NewSeedCipher("api-test-wallet-kek")
	require.NoError(t, err)

	cfg := &config.Config{
		Defaults: config.DefaultDefaults(),
		Queue:    config.DefaultQueueConfig(),
	}
	runService := services.NewRunService(client, store, cfg.Defaults)
	artifactService := services.NewArtifactService(client, store)
	jobQueue := queue.NewQueue(client, cfg.Queue)
	gen := &generator.ScriptedGenerator{}

	deps := Deps{
		Config:         cfg,
		DB:             dbClient,
		Projects:       services.NewProjectService(client, cipher, store),
		Recordings:     services.NewRecordingService(client, store),
		Specs:          services.NewSpecService(client, store),
		Clarifications: services.NewClarificationService(client),
		Runs:           runService,
		Suites:         services.NewSuiteRunService(client),
		Artifacts:      artifactService,
		Queue:          jobQueue,
		Generator:      gen,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	return &apiFixture{
		srv:       NewServer(deps),
		client:    client,
		queue:     jobQueue,
		runs:      runService,
		artifacts: artifactService,
		generator: gen,
	}
}

// do runs one request through the engine and decodes the JSON body.
func (f *apiFixture) do(t *testing.T, method, path string, body interface{}, headers map[string]string) (int, map[string]interface{}) {
	t.Helper()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	f.srv.Engine().ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 && strings.Contains(w.Header().Get("Content-Type"), "json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w.Code, decoded
}

// seedSpec creates the project → recording → ready spec chain via the
// API and returns (projectID, specID).
func (f *apiFixture) seedSpec(t *testing.T) (string, string) {
	t.Helper()

	status, body := f.do(t, http.MethodPost, "/api/v1/projects", map[string]interface{}{
		"name":     "api test project",
		"dapp_url": "https://dapp.example.com",
	}, nil)
	require.Equal(t, http.StatusCreated, status, "%v", body)
	projectID := body["id"].(string)

	status, body = f.do(t, http.MethodPost, "/api/v1/recordings", map[string]interface{}{
		"project_id":     projectID,
		"name":           "swap flow",
		"recording_type": "flow",
		"actions":        []map[string]interface{}{{"type": "click", "selector": "#swap"}},
	}, nil)
	require.Equal(t, http.StatusCreated, status, "%v", body)

	status, body = f.do(t, http.MethodPost, "/api/v1/specs", map[string]interface{}{
		"recording_id": body["id"].(string),
		"code":         "test('swap', async ({ page }) => {});",
		"status":       "ready",
	}, nil)
	require.Equal(t, http.StatusCreated, status, "%v", body)
	return projectID, body["id"].(string)
}

// ────────────────────────────────────────────────────────────
// Runs
// ────────────────────────────────────────────────────────────

func TestCreateRunEnqueuesJob(t *testing.T) {
	ctx := context.Background()
	f := newAPIFixture(t)
	_, specID := f.seedSpec(t)

	status, body := f.do(t, http.MethodPost, "/api/v1/runs", map[string]interface{}{
		"spec_id":        specID,
		"execution_mode": "HYBRID",
	}, nil)
	require.Equal(t, http.StatusCreated, status, "%v", body)
	runID := body["id"].(string)
	assert.Equal(t, "pending", body["status"])

	j, err := f.client.Job.Query().Where(entjob.RunIDEQ(runID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entjob.KindExecuteHybrid, j.Kind)
	assert.Equal(t, entjob.StatusPending, j.Status)
}

func TestCreateRunRejectsDraftSpec(t *testing.T) {
	f := newAPIFixture(t)

	status, body := f.do(t, http.MethodPost, "/api/v1/projects", map[string]interface{}{
		"name": "draft project", "dapp_url": "https://dapp.example.com",
	}, nil)
	require.Equal(t, http.StatusCreated, status)
	projectID := body["id"].(string)

	status, body = f.do(t, http.MethodPost, "/api/v1/recordings", map[string]interface{}{
		"project_id": projectID, "name": "flow", "recording_type": "flow",
		"actions": []map[string]interface{}{{"type": "click"}},
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	status, body = f.do(t, http.MethodPost, "/api/v1/specs", map[string]interface{}{
		"recording_id": body["id"].(string),
		"code":         "test('x', async () => {});",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	status, _ = f.do(t, http.MethodPost, "/api/v1/runs", map[string]interface{}{
		"spec_id": body["id"].(string),
	}, nil)
	assert.Equal(t, http.StatusConflict, status, "draft specs are not runnable")
}

func TestCancelPendingRunFinalizes(t *testing.T) {
	ctx := context.Background()
	f := newAPIFixture(t)
	_, specID := f.seedSpec(t)

	status, body := f.do(t, http.MethodPost, "/api/v1/runs",
		map[string]interface{}{"spec_id": specID}, nil)
	require.Equal(t, http.StatusCreated, status)
	runID := body["id"].(string)

	status, body = f.do(t, http.MethodPost, "/api/v1/runs/"+runID+"/cancel", nil, nil)
	require.Equal(t, http.StatusOK, status, "%v", body)

	r, err := f.client.Run.Get(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, r.Status)

	j, err := f.client.Job.Query().Where(entjob.RunIDEQ(runID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusCancelled, j.Status)
}

func TestHealRunRequiresFailedStatus(t *testing.T) {
	ctx := context.Background()
	f := newAPIFixture(t)
	_, specID := f.seedSpec(t)

	r, err := f.client.Run.Create().
		SetID("run_heal_test").
		SetSpecID(specID).
		SetStatus(run.StatusPassed).
		Save(ctx)
	require.NoError(t, err)

	status, _ := f.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/heal", nil, nil)
	assert.Equal(t, http.StatusConflict, status, "only failed runs are healable")

	_, err = f.client.Run.UpdateOneID(r.ID).SetStatus(run.StatusFailed).Save(ctx)
	require.NoError(t, err)

	status, body := f.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/heal", nil, nil)
	require.Equal(t, http.StatusAccepted, status, "%v", body)

	n, err := f.client.Job.Query().Where(entjob.KindEQ(entjob.KindSelfHeal)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// ────────────────────────────────────────────────────────────
// Suites
// ────────────────────────────────────────────────────────────

func TestCreateSuiteRunEnqueuesJobWithSpecList(t *testing.T) {
	ctx := context.Background()
	f := newAPIFixture(t)
	projectID, specID := f.seedSpec(t)

	status, body := f.do(t, http.MethodPost, "/api/v1/suite-runs", map[string]interface{}{
		"project_id": projectID,
		"spec_ids":   []string{specID, specID},
	}, nil)
	require.Equal(t, http.StatusCreated, status, "%v", body)
	suiteID := body["id"].(string)
	assert.Equal(t, float64(2), body["total_tests"])

	j, err := f.client.Job.Query().Where(entjob.RunIDEQ(suiteID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entjob.KindExecuteSuite, j.Kind)
	ids, _ := j.Payload["spec_ids"].([]interface{})
	assert.Len(t, ids, 2)
}

func TestCreateSuiteRunRejectsForeignSpecs(t *testing.T) {
	f := newAPIFixture(t)
	projectID, _ := f.seedSpec(t)
	_, otherSpec := f.seedSpec(t)

	status, _ := f.do(t, http.MethodPost, "/api/v1/suite-runs", map[string]interface{}{
		"project_id": projectID,
		"spec_ids":   []string{otherSpec},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status, "specs must belong to the project")
}

// ────────────────────────────────────────────────────────────
// Generation
// ────────────────────────────────────────────────────────────

func TestGenerateSpecFromRecording(t *testing.T) {
	f := newAPIFixture(t)
	projectID, _ := f.seedSpec(t)

	status, body := f.do(t, http.MethodPost, "/api/v1/recordings", map[string]interface{}{
		"project_id":     projectID,
		"name":           "stake flow",
		"recording_type": "flow",
		"actions":        []map[string]interface{}{{"type": "click", "selector": "#stake"}},
	}, nil)
	require.Equal(t, http.StatusCreated, status)
	recordingID := body["id"].(string)

	f.generator.QueueAnalysis(&generator.Analysis{
		Summary: "stakes tokens",
		Steps:   []string{"open staking page", "confirm"},
	})
	f.generator.QueueOutput(&generator.Output{Code: "test('stake', async ({ page }) => {});"})

	status, body = f.do(t, http.MethodPost, "/api/v1/recordings/"+recordingID+"/generate", nil, nil)
	require.Equal(t, http.StatusCreated, status, "%v", body)

	sp := body["spec"].(map[string]interface{})
	assert.Equal(t, "needs_review", sp["status"], "question-free generation lands NEEDS_REVIEW")
	assert.Equal(t, "stakes tokens", body["summary"])
}

func TestGenerateSpecWithQuestionsStaysDraft(t *testing.T) {
	f := newAPIFixture(t)
	projectID, _ := f.seedSpec(t)

	status, body := f.do(t, http.MethodPost, "/api/v1/recordings", map[string]interface{}{
		"project_id":     projectID,
		"name":           "swap flow",
		"recording_type": "flow",
		"actions":        []map[string]interface{}{{"type": "click", "selector": "#swap"}},
	}, nil)
	require.Equal(t, http.StatusCreated, status)
	recordingID := body["id"].(string)

	f.generator.QueueAnalysis(&generator.Analysis{
		Summary:   "swaps tokens",
		Steps:     []string{"open swap page"},
		Questions: []string{"Which token pair?"},
	})
	f.generator.QueueOutput(&generator.Output{Code: "test('swap', async ({ page }) => {});"})

	status, body = f.do(t, http.MethodPost, "/api/v1/recordings/"+recordingID+"/generate", nil, nil)
	require.Equal(t, http.StatusCreated, status, "%v", body)

	sp := body["spec"].(map[string]interface{})
	assert.Equal(t, "draft", sp["status"], "open questions hold the spec in DRAFT")

	status, body = f.do(t, http.MethodGet, "/api/v1/specs/"+sp["id"].(string)+"/clarifications", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["clarifications"], 1)
}

// ────────────────────────────────────────────────────────────
// Artifacts
// ────────────────────────────────────────────────────────────

func TestArtifactDownloadStreamsBlob(t *testing.T) {
	ctx := context.Background()
	f := newAPIFixture(t)
	_, specID := f.seedSpec(t)

	r, err := f.client.Run.Create().
		SetID("run_artifact_test").
		SetSpecID(specID).
		SetStatus(run.StatusPassed).
		Save(ctx)
	require.NoError(t, err)

	a, err := f.artifacts.SaveArtifactBytes(ctx, r.ID, "log", "run.log", []byte("wallet connected\nswap confirmed\n"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artifacts/"+a.ID+"/download", nil)
	w := httptest.NewRecorder()
	f.srv.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wallet connected\nswap confirmed\n", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "run.log")
}

// ────────────────────────────────────────────────────────────
// System
// ────────────────────────────────────────────────────────────

func TestHealthEndpointsBypassAuth(t *testing.T) {
	f := newAPIFixture(t, withAPIKey("sekrit"))

	status, body := f.do(t, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = f.do(t, http.MethodGet, "/readyz", nil, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])
}

func TestAPIKeyGuardsVersionedRoutes(t *testing.T) {
	f := newAPIFixture(t, withAPIKey("sekrit"))

	status, _ := f.do(t, http.MethodGet, "/api/v1/runs", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = f.do(t, http.MethodGet, "/api/v1/runs", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = f.do(t, http.MethodGet, "/api/v1/runs", nil, map[string]string{"X-API-Key": "sekrit"})
	assert.Equal(t, http.StatusOK, status)
}

func TestSystemInfo(t *testing.T) {
	f := newAPIFixture(t)

	status, body := f.do(t, http.MethodGet, "/api/v1/system/info", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["version"])
}

package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/models"
)

func TestHTTPGenerator_Analyze(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq AnalyzeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(Analysis{
			Summary:   "Swap ETH for USDC on the demo dApp",
			Steps:     []string{"Connect the wallet", "Fill the swap form"},
			Questions: []string{"Which network should the swap use?"},
		})
	}))
	defer server.Close()

	g := NewHTTPGenerator(server.URL+"/", "secret-key")
	analysis, err := g.Analyze(context.Background(), AnalyzeRequest{
		RecordingID:   "rec-1",
		RecordingType: "flow",
		DappURL:       "https://app.example.test",
		Actions:       []map[string]interface{}{{"tool": "browser_click", "testid": "swap-btn"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "/analyze", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "rec-1", gotReq.RecordingID)
	assert.Equal(t, "flow", gotReq.RecordingType)
	require.Len(t, gotReq.Actions, 1)
	assert.Equal(t, "browser_click", gotReq.Actions[0]["tool"])

	assert.Equal(t, "Swap ETH for USDC on the demo dApp", analysis.Summary)
	assert.Len(t, analysis.Steps, 2)
	assert.Equal(t, []string{"Which network should the swap use?"}, analysis.Questions)
}

func TestHTTPGenerator_Generate(t *testing.T) {
	var gotReq GenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(Output{Code: "test('swap', async ({ page, wallet }) => {});"})
	}))
	defer server.Close()

	g := NewHTTPGenerator(server.URL, "")
	out, err := g.Generate(context.Background(), GenerateRequest{
		RecordingID: "rec-1",
		Answers:     []Answer{{Question: "Which network?", Answer: "Sepolia"}},
	})
	require.NoError(t, err)
	require.NoError(t, out.Validate())
	assert.Contains(t, out.Code, "test('swap'")
	require.Len(t, gotReq.Answers, 1)
	assert.Equal(t, "Sepolia", gotReq.Answers[0].Answer)
}

func TestHTTPGenerator_Regenerate(t *testing.T) {
	var gotBody regenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/regenerate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(Output{Code: "test('healed', async ({ page }) => {});"})
	}))
	defer server.Close()

	g := NewHTTPGenerator(server.URL, "key")
	out, err := g.Regenerate(context.Background(),
		FailureAnalysis{Class: models.FailureSelector, Hints: []string{"button renamed"}},
		models.FailureContext{RunID: "run-9", Error: "locator not found", PreviousCode: "old code"},
	)
	require.NoError(t, err)
	assert.Contains(t, out.Code, "healed")

	assert.Equal(t, models.FailureSelector, gotBody.Analysis.Class)
	assert.Equal(t, "run-9", gotBody.Failure.RunID)
	assert.Equal(t, "old code", gotBody.Failure.PreviousCode)
}

func TestHTTPGenerator_NoAuthHeaderWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(Analysis{Summary: "ok"})
	}))
	defer server.Close()

	g := NewHTTPGenerator(server.URL, "")
	_, err := g.Analyze(context.Background(), AnalyzeRequest{RecordingID: "rec-1"})
	require.NoError(t, err)
}

func TestHTTPGenerator_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	g := NewHTTPGenerator(server.URL, "key")
	_, err := g.Generate(context.Background(), GenerateRequest{RecordingID: "rec-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503")
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestHTTPGenerator_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	g := NewHTTPGenerator(server.URL, "key")
	_, err := g.Analyze(context.Background(), AnalyzeRequest{RecordingID: "rec-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode generator response")
}

package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dappsmith/conductor/pkg/models"
)

// Generation calls run a model on the far side, so the client waits
// much longer than an ordinary API call would.
const httpGeneratorTimeout = 120 * time.Second

// HTTPGenerator binds the Generator interface to a REST service.
type HTTPGenerator struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPGenerator creates a client for the generator service at
// baseURL. The API key is optional; when set it is sent as a bearer
// token.
func NewHTTPGenerator(baseURL, apiKey string) *HTTPGenerator {
	return &HTTPGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: httpGeneratorTimeout,
		},
	}
}

// Analyze sends a recording for analysis.
func (g *HTTPGenerator) Analyze(ctx context.Context, req AnalyzeRequest) (*Analysis, error) {
	var analysis Analysis
	if err := g.post(ctx, "/analyze", req, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// Generate asks for a test program.
func (g *HTTPGenerator) Generate(ctx context.Context, req GenerateRequest) (*Output, error) {
	var out Output
	if err := g.post(ctx, "/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Regenerate asks for a repaired program for a failed run.
func (g *HTTPGenerator) Regenerate(ctx context.Context, analysis FailureAnalysis, failure models.FailureContext) (*Output, error) {
	body := regenerateRequest{Analysis: analysis, Failure: failure}
	var out Output
	if err := g.post(ctx, "/regenerate", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type regenerateRequest struct {
	Analysis FailureAnalysis       `json:"analysis"`
	Failure  models.FailureContext `json:"failure"`
}

func (g *HTTPGenerator) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode generator request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	g.setAuthHeader(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("generator request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		head, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("generator returned HTTP %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(head)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode generator response: %w", err)
	}
	return nil
}

func (g *HTTPGenerator) setAuthHeader(req *http.Request) {
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}
}

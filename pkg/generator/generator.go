// Package generator defines the boundary to the external test-code
// generator. The platform never writes test programs itself: it hands
// recordings and failure context across this interface and stores
// whatever comes back as new spec versions.
package generator

import (
	"context"
	"errors"
	"strings"

	"github.com/dappsmith/conductor/pkg/models"
)

// AnalyzeRequest carries one recording to the generator for analysis.
type AnalyzeRequest struct {
	RecordingID   string                   `json:"recording_id"`
	RecordingType string                   `json:"recording_type"`
	DappURL       string                   `json:"dapp_url"`
	Actions       []map[string]interface{} `json:"actions"`
}

// Analysis is what the generator learned from a recording: a step plan
// and the questions it needs answered before writing code. Questions
// become pending clarifications on the draft spec.
type Analysis struct {
	Summary   string   `json:"summary"`
	Steps     []string `json:"steps"`
	Questions []string `json:"questions,omitempty"`
}

// Answer pairs a clarification question with its resolution.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Skipped  bool   `json:"skipped,omitempty"`
}

// GenerateRequest asks for a test program for an analyzed recording.
type GenerateRequest struct {
	RecordingID   string                   `json:"recording_id"`
	RecordingType string                   `json:"recording_type"`
	DappURL       string                   `json:"dapp_url"`
	Actions       []map[string]interface{} `json:"actions"`
	Answers       []Answer                 `json:"answers,omitempty"`
}

// FailureAnalysis is the self-heal classifier's reading of a failed
// run, sent alongside the raw failure context on regeneration.
type FailureAnalysis struct {
	Class string   `json:"class"`
	Hints []string `json:"hints,omitempty"`
}

// Output is generated program text.
type Output struct {
	Code string `json:"code"`
}

// ErrEmptyOutput marks a generator response that carried no program.
var ErrEmptyOutput = errors.New("generator returned no code")

// Validate rejects outputs the platform cannot store as a spec.
func (o *Output) Validate() error {
	if o == nil || strings.TrimSpace(o.Code) == "" {
		return ErrEmptyOutput
	}
	return nil
}

// Generator converts recordings into test programs and repairs failed
// ones. Implementations live outside this service; HTTPGenerator binds
// to one over REST and ScriptedGenerator cans responses for tests.
type Generator interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*Analysis, error)
	Generate(ctx context.Context, req GenerateRequest) (*Output, error)
	Regenerate(ctx context.Context, analysis FailureAnalysis, failure models.FailureContext) (*Output, error)
}

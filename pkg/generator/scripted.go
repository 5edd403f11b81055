package generator

import (
	"context"
	"fmt"
	"sync"

	"github.com/dappsmith/conductor/pkg/models"
)

// ScriptedGenerator plays back queued responses in order. It stands in
// for the real generator in tests and local development, and records
// every request it saw so callers can assert on them.
type ScriptedGenerator struct {
	mu sync.Mutex

	// Err, when set, is returned by every call instead of a response.
	Err error

	analyses []*Analysis
	outputs  []*Output

	AnalyzeRequests    []AnalyzeRequest
	GenerateRequests   []GenerateRequest
	RegenerateAnalyses []FailureAnalysis
	RegenerateFailures []models.FailureContext
}

// QueueAnalysis appends a canned Analyze response.
func (s *ScriptedGenerator) QueueAnalysis(a *Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses = append(s.analyses, a)
}

// QueueOutput appends a canned response shared by Generate and
// Regenerate, consumed in call order.
func (s *ScriptedGenerator) QueueOutput(o *Output) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputs = append(s.outputs, o)
}

func (s *ScriptedGenerator) Analyze(_ context.Context, req AnalyzeRequest) (*Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AnalyzeRequests = append(s.AnalyzeRequests, req)
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.analyses) == 0 {
		return nil, fmt.Errorf("scripted generator: no analysis queued")
	}
	a := s.analyses[0]
	s.analyses = s.analyses[1:]
	return a, nil
}

func (s *ScriptedGenerator) Generate(_ context.Context, req GenerateRequest) (*Output, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GenerateRequests = append(s.GenerateRequests, req)
	return s.nextOutputLocked()
}

func (s *ScriptedGenerator) Regenerate(_ context.Context, analysis FailureAnalysis, failure models.FailureContext) (*Output, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RegenerateAnalyses = append(s.RegenerateAnalyses, analysis)
	s.RegenerateFailures = append(s.RegenerateFailures, failure)
	return s.nextOutputLocked()
}

func (s *ScriptedGenerator) nextOutputLocked() (*Output, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.outputs) == 0 {
		return nil, fmt.Errorf("scripted generator: no output queued")
	}
	o := s.outputs[0]
	s.outputs = s.outputs[1:]
	return o, nil
}

// Package models contains request/response models and business domain types.
package models

import (
	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/run"
)

// Run status values as exposed by the API. The persisted enum uses
// lower_snake values; TIMEOUT maps to the stored "timed_out".
const (
	RunStatusPending   = "PENDING"
	RunStatusRunning   = "RUNNING"
	RunStatusPassed    = "PASSED"
	RunStatusFailed    = "FAILED"
	RunStatusCancelled = "CANCELLED"
	RunStatusTimeout   = "TIMEOUT"
)

// Execution modes.
const (
	ModeSpec   = "SPEC"
	ModeAgent  = "AGENT"
	ModeHybrid = "HYBRID"
)

// Streaming modes.
const (
	StreamingNone  = "NONE"
	StreamingVNC   = "VNC"
	StreamingVideo = "VIDEO"
)

// RunStatusToAPI maps the stored run status enum to the API casing.
func RunStatusToAPI(s run.Status) string {
	switch s {
	case run.StatusPending:
		return RunStatusPending
	case run.StatusRunning:
		return RunStatusRunning
	case run.StatusPassed:
		return RunStatusPassed
	case run.StatusFailed:
		return RunStatusFailed
	case run.StatusCancelled:
		return RunStatusCancelled
	case run.StatusTimedOut:
		return RunStatusTimeout
	default:
		return string(s)
	}
}

// RunStatusFromAPI maps an API status string to the stored enum.
func RunStatusFromAPI(s string) (run.Status, bool) {
	switch s {
	case RunStatusPending:
		return run.StatusPending, true
	case RunStatusRunning:
		return run.StatusRunning, true
	case RunStatusPassed:
		return run.StatusPassed, true
	case RunStatusFailed:
		return run.StatusFailed, true
	case RunStatusCancelled:
		return run.StatusCancelled, true
	case RunStatusTimeout:
		return run.StatusTimedOut, true
	default:
		return "", false
	}
}

// ModeToEnum maps an API execution mode to the stored enum.
func ModeToEnum(mode string) (run.ExecutionMode, bool) {
	switch mode {
	case ModeSpec:
		return run.ExecutionModeSpec, true
	case ModeAgent:
		return run.ExecutionModeAgent, true
	case ModeHybrid:
		return run.ExecutionModeHybrid, true
	default:
		return "", false
	}
}

// ModeToAPI maps the stored execution mode enum to the API casing.
func ModeToAPI(mode run.ExecutionMode) string {
	switch mode {
	case run.ExecutionModeSpec:
		return ModeSpec
	case run.ExecutionModeAgent:
		return ModeAgent
	case run.ExecutionModeHybrid:
		return ModeHybrid
	default:
		return string(mode)
	}
}

// StreamingToEnum maps an API streaming mode to the stored enum.
func StreamingToEnum(mode string) (run.StreamingMode, bool) {
	switch mode {
	case StreamingNone:
		return run.StreamingModeNone, true
	case StreamingVNC:
		return run.StreamingModeVnc, true
	case StreamingVideo:
		return run.StreamingModeVideo, true
	default:
		return "", false
	}
}

// CreateRunRequest contains fields for creating a run.
type CreateRunRequest struct {
	SpecID        string `json:"spec_id"`
	ExecutionMode string `json:"execution_mode"`
	StreamingMode string `json:"streaming_mode,omitempty"`
	IsAutoRetry   bool   `json:"is_auto_retry,omitempty"`
	SuiteRunID    string `json:"suite_run_id,omitempty"`
	SuiteIndex    *int   `json:"suite_index,omitempty"`
}

// CreateSuiteRunRequest contains fields for creating a suite run.
type CreateSuiteRunRequest struct {
	ProjectID string   `json:"project_id"`
	SpecIDs   []string `json:"spec_ids"`
}

// RunResponse wraps a Run with optional loaded edges.
type RunResponse struct {
	*ent.Run
}

// RunListFilters narrows run listing queries.
type RunListFilters struct {
	SpecID     string
	SuiteRunID string
	Status     string
	Mode       string
	Page       int
	PageSize   int
}

// AgentData is the JSON document persisted on Run.agent_data: the step
// timeline plus planner cost accounting.
type AgentData struct {
	Steps       []StepResult `json:"steps"`
	APICalls    int          `json:"api_calls"`
	Cost        CostSummary  `json:"cost"`
	TookOver    bool         `json:"took_over,omitempty"`
	PatchedStep []int        `json:"patched_steps,omitempty"`
}

// ToMap converts AgentData into the loosely typed form ent stores.
func (d AgentData) ToMap() map[string]interface{} {
	steps := make([]interface{}, 0, len(d.Steps))
	for _, s := range d.Steps {
		steps = append(steps, s.toMap())
	}
	m := map[string]interface{}{
		"steps":     steps,
		"api_calls": d.APICalls,
		"cost":      d.Cost.toMap(),
	}
	if d.TookOver {
		m["took_over"] = true
	}
	if len(d.PatchedStep) > 0 {
		patched := make([]interface{}, 0, len(d.PatchedStep))
		for _, n := range d.PatchedStep {
			patched = append(patched, n)
		}
		m["patched_steps"] = patched
	}
	return m
}

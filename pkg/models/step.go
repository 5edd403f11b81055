package models

// Step execution modes recorded on the timeline.
const (
	StepModeSpec  = "spec"
	StepModeAgent = "agent"
)

// Step outcomes.
const (
	StepStatusPassed  = "passed"
	StepStatusFailed  = "failed"
	StepStatusSkipped = "skipped"
)

// StepResult is one entry in a run's step timeline. Results are
// appended in step-number order.
type StepResult struct {
	Step        int    `json:"step"`
	Description string `json:"description,omitempty"`
	Mode        string `json:"mode"`
	Status      string `json:"status"`
	DurationMs  int    `json:"duration_ms"`
	Error       string `json:"error,omitempty"`
	Screenshot  string `json:"screenshot,omitempty"`
	AgentCalls  int    `json:"agent_calls,omitempty"`
}

func (s StepResult) toMap() map[string]interface{} {
	m := map[string]interface{}{
		"step":        s.Step,
		"mode":        s.Mode,
		"status":      s.Status,
		"duration_ms": s.DurationMs,
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if s.Error != "" {
		m["error"] = s.Error
	}
	if s.Screenshot != "" {
		m["screenshot"] = s.Screenshot
	}
	if s.AgentCalls > 0 {
		m["agent_calls"] = s.AgentCalls
	}
	return m
}

// SpecPatch replaces the body of one step in a stored spec. Step
// numbers refer to the spec the patch will be applied to; for runs
// executed with a connection prelude the hybrid executor remaps
// composite numbers before emitting the patch.
type SpecPatch struct {
	Step int    `json:"step"`
	Code string `json:"code"`
}

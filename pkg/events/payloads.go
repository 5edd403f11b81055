package events

import (
	"github.com/dappsmith/conductor/ent/artifact"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/suiterun"
)

// RunStatusPayload is the payload for run.status events.
// Published on every run lifecycle transition.
type RunStatusPayload struct {
	Type         string     `json:"type"`                   // always EventTypeRunStatus
	RunID        string     `json:"run_id"`                 // run id
	SpecID       string     `json:"spec_id,omitempty"`      // executed spec
	SuiteRunID   string     `json:"suite_run_id,omitempty"` // owning suite, if any
	Status       run.Status `json:"status"`                 // pending, running, passed, failed, cancelled, timed_out
	ErrorMessage string     `json:"error_message,omitempty"`
	Timestamp    string     `json:"timestamp"` // RFC3339Nano
}

// RunProgressPayload is the payload for run.progress events.
// Published at phase boundaries; progress is monotone per run.
type RunProgressPayload struct {
	Type      string `json:"type"`     // always EventTypeRunProgress
	RunID     string `json:"run_id"`   // run id
	Progress  int    `json:"progress"` // 0–100
	Phase     string `json:"phase"`    // claimed, sandbox_ready, executing, finalizing
	Timestamp string `json:"timestamp"`
}

// RunStepPayload is the payload for run.step events.
// Published after each step the executor completes, whichever engine ran it.
type RunStepPayload struct {
	Type       string `json:"type"`       // always EventTypeRunStep
	RunID      string `json:"run_id"`     // run id
	StepIndex  int    `json:"step_index"` // 1-based position in the program
	StepName   string `json:"step_name"`  // step header text
	Source     string `json:"source"`     // "spec" or "agent"
	Status     string `json:"status"`     // passed, failed, healed
	DurationMs int64  `json:"duration_ms,omitempty"`
	Error      string `json:"error,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// RunArtifactPayload is the payload for run.artifact events.
// Published once an artifact row is committed (bytes already in the blob store).
type RunArtifactPayload struct {
	Type         string                `json:"type"`          // always EventTypeRunArtifact
	RunID        string                `json:"run_id"`        // owning run
	ArtifactID   string                `json:"artifact_id"`   // artifact row id
	ArtifactType artifact.ArtifactType `json:"artifact_type"` // screenshot, video, trace, log
	Name         string                `json:"name"`          // filename
	SizeBytes    int64                 `json:"size_bytes"`
	Timestamp    string                `json:"timestamp"`
}

// RunLogPayload is the payload for run.log transient events.
// Published for each captured output line — high frequency, ephemeral,
// already masked.
type RunLogPayload struct {
	Type      string `json:"type"`   // always EventTypeRunLog
	RunID     string `json:"run_id"` // run id
	Stream    string `json:"stream"` // "stdout" or "stderr"
	Line      string `json:"line"`
	Timestamp string `json:"timestamp"`
}

// SuiteStatusPayload is the payload for suite.status events.
// Published on suite lifecycle transitions and after each child result.
type SuiteStatusPayload struct {
	Type         string          `json:"type"`         // always EventTypeSuiteStatus
	SuiteRunID   string          `json:"suite_run_id"` // suite run id
	Status       suiterun.Status `json:"status"`       // pending, running, passed, failed, cancelled, timed_out
	TotalTests   int             `json:"total_tests"`
	PassedTests  int             `json:"passed_tests"`
	FailedTests  int             `json:"failed_tests"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Timestamp    string          `json:"timestamp"`
}

// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Run Event Lifecycle
// ════════════════════════════════════════════════════════════════
//
// Persistent events are written to the events table and broadcast via
// NOTIFY inside the same transaction, so a subscriber that reconnects
// can catch up from its last-seen db_event_id without gaps:
//
//	run.status    — lifecycle transitions (pending → running → terminal)
//	run.progress  — phase-boundary progress (10, 20, 80, 100)
//	run.step      — per-step outcome as the executor walks the program
//	run.artifact  — an artifact row was committed for the run
//	suite.status  — suite lifecycle + pass/fail counters
//
// Transient events ride NOTIFY only — high-frequency, lost on
// disconnect, never part of catchup:
//
//	run.log       — live output lines from the sandboxed test process
//
// run.status and suite.status are additionally mirrored (transient) to
// the global "runs" channel so list pages update without subscribing
// to every run.
//
// ════════════════════════════════════════════════════════════════
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	EventTypeRunStatus   = "run.status"
	EventTypeRunProgress = "run.progress"
	EventTypeRunStep     = "run.step"
	EventTypeRunArtifact = "run.artifact"
	EventTypeSuiteStatus = "suite.status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Live log lines from the child test process — high-frequency, ephemeral.
	EventTypeRunLog = "run.log"
)

// Step outcome values (used in RunStepPayload.Status).
const (
	StepStatusPassed = "passed"
	StepStatusFailed = "failed"
	StepStatusHealed = "healed"
)

// GlobalRunsChannel is the channel for run-level status events.
// The run list page subscribes to this for real-time updates.
const GlobalRunsChannel = "runs"

// RunChannel returns the channel name for a specific run's events.
// Format: "run:{run_id}"
func RunChannel(runID string) string {
	return "run:" + runID
}

// SuiteChannel returns the channel name for a specific suite run's events.
// Format: "suite:{suite_run_id}"
func SuiteChannel(suiteRunID string) string {
	return "suite:" + suiteRunID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "run:run_abc123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}

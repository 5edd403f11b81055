package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent/run"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(RunStatusPayload{
			Type:   EventTypeRunStatus,
			RunID:  "run_abc123",
			Status: run.StatusRunning,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeRunStatus)
		assert.Contains(t, result, "run_abc123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(RunStatusPayload{
			Type:         EventTypeRunStatus,
			RunID:        "run_abc123",
			Status:       run.StatusFailed,
			ErrorMessage: strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(RunLogPayload{
			Type:  EventTypeRunLog,
			RunID: "run_1",
			Line:  "hello",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(RunStatusPayload{
			Type:         EventTypeRunStatus,
			RunID:        "run_789",
			SuiteRunID:   "suite_456",
			Status:       run.StatusFailed,
			ErrorMessage: strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeRunStatus)
		assert.Contains(t, result, "run_789")
		assert.Contains(t, result, "suite_456")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators). The 20-byte safety margin
		// accounts for JSON encoding variability: if new fields with non-zero
		// defaults are added to RunStatusPayload, the base overhead grows and
		// the margin prevents the test from flipping unexpectedly.
		base, _ := json.Marshal(RunStatusPayload{Type: "t"})
		msgSize := 7900 - len(base) - 20
		payload, _ := json.Marshal(RunStatusPayload{
			Type:         "t",
			ErrorMessage: strings.Repeat("b", msgSize),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(RunStepPayload{
			Type:      EventTypeRunStep,
			RunID:     "run_1",
			StepIndex: 3,
			StepName:  "Connect wallet",
			Status:    StepStatusPassed,
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "Connect wallet")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(RunStepPayload{
			Type:      EventTypeRunStep,
			RunID:     "run_789",
			StepIndex: 1,
			Error:     strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "run_789")
	})

	t.Run("truncated suite payload keeps suite_run_id", func(t *testing.T) {
		payload, _ := json.Marshal(SuiteStatusPayload{
			Type:         EventTypeSuiteStatus,
			SuiteRunID:   "suite_55",
			ErrorMessage: strings.Repeat("y", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":99`)
		assert.Contains(t, result, "suite_55")
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "run:run_abc", RunChannel("run_abc"))
	assert.Equal(t, "suite:suite_xyz", SuiteChannel("suite_xyz"))
	assert.Equal(t, "runs", GlobalRunsChannel)
}

func TestRunStatusPayload_JSON(t *testing.T) {
	payload := RunStatusPayload{
		Type:      EventTypeRunStatus,
		RunID:     "run_123",
		SpecID:    "spec_456",
		Status:    run.StatusPassed,
		Timestamp: "2026-08-25T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded RunStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeRunStatus, decoded.Type)
	assert.Equal(t, "run_123", decoded.RunID)
	assert.Equal(t, "spec_456", decoded.SpecID)
	assert.Equal(t, run.StatusPassed, decoded.Status)
	assert.Equal(t, "2026-08-25T12:00:00Z", decoded.Timestamp)

	// suite_run_id and error_message omitted when empty
	assert.NotContains(t, string(data), "suite_run_id")
	assert.NotContains(t, string(data), "error_message")
}

func TestRunStepPayload_JSON(t *testing.T) {
	payload := RunStepPayload{
		Type:       EventTypeRunStep,
		RunID:      "run_200",
		StepIndex:  2,
		StepName:   "Approve transaction",
		Source:     "agent",
		Status:     StepStatusHealed,
		DurationMs: 4100,
		Timestamp:  "2026-08-25T10:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded RunStepPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeRunStep, decoded.Type)
	assert.Equal(t, 2, decoded.StepIndex)
	assert.Equal(t, "Approve transaction", decoded.StepName)
	assert.Equal(t, "agent", decoded.Source)
	assert.Equal(t, StepStatusHealed, decoded.Status)
	assert.Equal(t, int64(4100), decoded.DurationMs)
}

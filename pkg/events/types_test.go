package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypes_Distinct(t *testing.T) {
	types := []string{
		EventTypeRunStatus,
		EventTypeRunProgress,
		EventTypeRunStep,
		EventTypeRunArtifact,
		EventTypeSuiteStatus,
		EventTypeRunLog,
	}

	seen := make(map[string]bool, len(types))
	for _, typ := range types {
		assert.NotEmpty(t, typ)
		assert.False(t, seen[typ], "duplicate event type %q", typ)
		seen[typ] = true
	}
}

func TestStepStatuses(t *testing.T) {
	assert.Equal(t, "passed", StepStatusPassed)
	assert.Equal(t, "failed", StepStatusFailed)
	assert.Equal(t, "healed", StepStatusHealed)
}

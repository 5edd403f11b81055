package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/models"
)

func TestOutputValidate(t *testing.T) {
	assert.NoError(t, (&Output{Code: "test('x', async ({ page }) => {});"}).Validate())

	assert.ErrorIs(t, (&Output{}).Validate(), ErrEmptyOutput)
	assert.ErrorIs(t, (&Output{Code: "  \n\t"}).Validate(), ErrEmptyOutput)
	var nilOut *Output
	assert.ErrorIs(t, nilOut.Validate(), ErrEmptyOutput)
}

func TestScriptedGenerator_PlaysBackInOrder(t *testing.T) {
	s := &ScriptedGenerator{}
	s.QueueAnalysis(&Analysis{Summary: "first"})
	s.QueueOutput(&Output{Code: "code-1"})
	s.QueueOutput(&Output{Code: "code-2"})

	a, err := s.Analyze(context.Background(), AnalyzeRequest{RecordingID: "rec-1"})
	require.NoError(t, err)
	assert.Equal(t, "first", a.Summary)

	out, err := s.Generate(context.Background(), GenerateRequest{RecordingID: "rec-1"})
	require.NoError(t, err)
	assert.Equal(t, "code-1", out.Code)

	// Regenerate consumes the same queue as Generate.
	out, err = s.Regenerate(context.Background(),
		FailureAnalysis{Class: models.FailureTimeout},
		models.FailureContext{RunID: "run-1"})
	require.NoError(t, err)
	assert.Equal(t, "code-2", out.Code)
}

func TestScriptedGenerator_RecordsRequests(t *testing.T) {
	s := &ScriptedGenerator{}
	s.QueueAnalysis(&Analysis{})
	s.QueueOutput(&Output{Code: "x"})

	_, err := s.Analyze(context.Background(), AnalyzeRequest{RecordingID: "rec-7", RecordingType: "connection"})
	require.NoError(t, err)
	_, err = s.Regenerate(context.Background(),
		FailureAnalysis{Class: models.FailureWallet, Hints: []string{"popup never shown"}},
		models.FailureContext{RunID: "run-3", FailureClass: models.FailureWallet})
	require.NoError(t, err)

	require.Len(t, s.AnalyzeRequests, 1)
	assert.Equal(t, "rec-7", s.AnalyzeRequests[0].RecordingID)
	require.Len(t, s.RegenerateAnalyses, 1)
	assert.Equal(t, []string{"popup never shown"}, s.RegenerateAnalyses[0].Hints)
	require.Len(t, s.RegenerateFailures, 1)
	assert.Equal(t, "run-3", s.RegenerateFailures[0].RunID)
}

func TestScriptedGenerator_EmptyQueueFails(t *testing.T) {
	s := &ScriptedGenerator{}

	_, err := s.Analyze(context.Background(), AnalyzeRequest{})
	assert.ErrorContains(t, err, "no analysis queued")

	_, err = s.Generate(context.Background(), GenerateRequest{})
	assert.ErrorContains(t, err, "no output queued")
}

func TestScriptedGenerator_ErrShortCircuits(t *testing.T) {
	s := &ScriptedGenerator{Err: assert.AnError}
	s.QueueOutput(&Output{Code: "never returned"})

	_, err := s.Generate(context.Background(), GenerateRequest{})
	assert.ErrorIs(t, err, assert.AnError)
}

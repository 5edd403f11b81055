package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/ent/suiterun"
	"github.com/dappsmith/conductor/pkg/models"
	testdb "github.com/dappsmith/conductor/test/database"
)

func TestSuiteRunService_CreateSuiteRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSuiteRunService(client.Client)
	ctx := context.Background()

	t.Run("creates pending suite preserving spec order", func(t *testing.T) {
		project := seedProject(ctx, t, client.Client)
		first := seedSpecIn(ctx, t, client.Client, project.ID, spec.StatusReady)
		second := seedSpecIn(ctx, t, client.Client, project.ID, spec.StatusReady)

		sr, err := service.CreateSuiteRun(ctx, models.CreateSuiteRunRequest{
			ProjectID: project.ID,
			SpecIDs:   []string{second.ID, first.ID},
		})
		require.NoError(t, err)
		assert.Equal(t, suiterun.StatusPending, sr.Status)
		assert.Equal(t, []string{second.ID, first.ID}, sr.SpecIds)
		assert.Equal(t, 2, sr.TotalTests)
		assert.Equal(t, 0, sr.PassedTests)
		assert.Equal(t, 0, sr.FailedTests)
	})

	t.Run("duplicate spec ids count as separate tests", func(t *testing.T) {
		project := seedProject(ctx, t, client.Client)
		sp := seedSpecIn(ctx, t, client.Client, project.ID, spec.StatusReady)

		sr, err := service.CreateSuiteRun(ctx, models.CreateSuiteRunRequest{
			ProjectID: project.ID,
			SpecIDs:   []string{sp.ID, sp.ID, sp.ID},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, sr.TotalTests)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateSuiteRun(ctx, models.CreateSuiteRunRequest{SpecIDs: []string{"spec_x"}})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.CreateSuiteRun(ctx, models.CreateSuiteRunRequest{ProjectID: "proj_x"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects specs from another project", func(t *testing.T) {
		project := seedProject(ctx, t, client.Client)
		foreign := seedSpec(ctx, t, client.Client, spec.StatusReady)

		_, err := service.CreateSuiteRun(ctx, models.CreateSuiteRunRequest{
			ProjectID: project.ID,
			SpecIDs:   []string{foreign.ID},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects draft specs", func(t *testing.T) {
		project := seedProject(ctx, t, client.Client)
		draft := seedSpecIn(ctx, t, client.Client, project.ID, spec.StatusDraft)

		_, err := service.CreateSuiteRun(ctx, models.CreateSuiteRunRequest{
			ProjectID: project.ID,
			SpecIDs:   []string{draft.ID},
		})
		assert.ErrorIs(t, err, ErrNotRunnable)
	})
}

func TestSuiteRunService_RecordChildResult(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSuiteRunService(client.Client)
	ctx := context.Background()

	sr := seedSuiteRun(ctx, t, client.Client, 3)

	require.NoError(t, service.RecordChildResult(ctx, sr.ID, true))
	require.NoError(t, service.RecordChildResult(ctx, sr.ID, false))
	require.NoError(t, service.RecordChildResult(ctx, sr.ID, true))

	got, err := service.GetSuiteRun(ctx, sr.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 2, got.PassedTests)
	assert.Equal(t, 1, got.FailedTests)
	assert.Equal(t, got.TotalTests, got.PassedTests+got.FailedTests)
}

func TestSuiteRunService_CompleteSuiteRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSuiteRunService(client.Client)
	ctx := context.Background()

	t.Run("first terminal writer wins", func(t *testing.T) {
		sr := seedSuiteRun(ctx, t, client.Client, 2)

		applied, err := service.CompleteSuiteRun(ctx, sr.ID, suiterun.StatusCancelled, "cancelled")
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = service.CompleteSuiteRun(ctx, sr.ID, suiterun.StatusPassed, "")
		require.NoError(t, err)
		assert.False(t, applied)

		got, err := service.GetSuiteRun(ctx, sr.ID, false)
		require.NoError(t, err)
		assert.Equal(t, suiterun.StatusCancelled, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "cancelled", *got.ErrorMessage)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("rejects non-terminal statuses", func(t *testing.T) {
		sr := seedSuiteRun(ctx, t, client.Client, 1)

		_, err := service.CompleteSuiteRun(ctx, sr.ID, suiterun.StatusRunning, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSuiteRunService_MarkRunning(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSuiteRunService(client.Client)
	ctx := context.Background()

	sr := seedSuiteRun(ctx, t, client.Client, 1)

	claimed, err := service.MarkRunning(ctx, sr.ID)
	require.NoError(t, err)
	assert.True(t, claimed)

	got, err := service.GetSuiteRun(ctx, sr.ID, false)
	require.NoError(t, err)
	assert.Equal(t, suiterun.StatusRunning, got.Status)
	assert.NotNil(t, got.StartedAt)

	// Once terminal, a stale claim is refused.
	_, err = service.CompleteSuiteRun(ctx, sr.ID, suiterun.StatusTimedOut, "suite time budget exhausted")
	require.NoError(t, err)

	claimed, err = service.MarkRunning(ctx, sr.ID)
	require.NoError(t, err)
	assert.False(t, claimed)
}

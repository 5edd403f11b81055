package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/models"
	testdb "github.com/dappsmith/conductor/test/database"
)

func TestRunService_CreateRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil, config.DefaultDefaults())
	ctx := context.Background()

	t.Run("creates pending run with configured defaults", func(t *testing.T) {
		sp := seedSpec(ctx, t, client.Client, spec.StatusReady)

		r, err := service.CreateRun(ctx, models.CreateRunRequest{SpecID: sp.ID})
		require.NoError(t, err)
		assert.Equal(t, sp.ID, r.SpecID)
		assert.Equal(t, run.StatusPending, r.Status)
		assert.Equal(t, run.ExecutionModeHybrid, r.ExecutionMode)
		assert.Equal(t, run.StreamingModeNone, r.StreamingMode)
		assert.Equal(t, 0, r.Progress)
		assert.Nil(t, r.CompletedAt)
	})

	t.Run("honors explicit execution mode", func(t *testing.T) {
		sp := seedSpec(ctx, t, client.Client, spec.StatusReady)

		r, err := service.CreateRun(ctx, models.CreateRunRequest{
			SpecID:        sp.ID,
			ExecutionMode: "AGENT",
		})
		require.NoError(t, err)
		assert.Equal(t, run.ExecutionModeAgent, r.ExecutionMode)
	})

	t.Run("validates required fields and modes", func(t *testing.T) {
		_, err := service.CreateRun(ctx, models.CreateRunRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		sp := seedSpec(ctx, t, client.Client, spec.StatusReady)
		_, err = service.CreateRun(ctx, models.CreateRunRequest{
			SpecID:        sp.ID,
			ExecutionMode: "TELEPATHY",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects draft specs", func(t *testing.T) {
		sp := seedSpec(ctx, t, client.Client, spec.StatusDraft)

		_, err := service.CreateRun(ctx, models.CreateRunRequest{SpecID: sp.ID})
		assert.ErrorIs(t, err, ErrNotRunnable)
	})

	t.Run("returns not found for missing spec", func(t *testing.T) {
		_, err := service.CreateRun(ctx, models.CreateRunRequest{SpecID: "spec_missing"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_MarkRunning(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil, nil)
	ctx := context.Background()

	t.Run("claims a pending run and stamps started_at once", func(t *testing.T) {
		r := seedRun(ctx, t, client.Client, run.StatusPending)

		claimed, err := service.MarkRunning(ctx, r.ID, "pod-1", "sandbox-1")
		require.NoError(t, err)
		assert.True(t, claimed)

		first, err := client.Run.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusRunning, first.Status)
		require.NotNil(t, first.StartedAt)

		// A retried claim passes through without resetting the clock.
		claimed, err = service.MarkRunning(ctx, r.ID, "pod-2", "sandbox-2")
		require.NoError(t, err)
		assert.True(t, claimed)

		second, err := client.Run.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, *first.StartedAt, *second.StartedAt)
	})

	t.Run("refuses terminal runs", func(t *testing.T) {
		r := seedRun(ctx, t, client.Client, run.StatusCancelled)

		claimed, err := service.MarkRunning(ctx, r.ID, "pod-1", "")
		require.NoError(t, err)
		assert.False(t, claimed)
	})
}

func TestRunService_CompleteRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil, nil)
	ctx := context.Background()

	t.Run("terminal write sets progress and completed_at together", func(t *testing.T) {
		r := seedRun(ctx, t, client.Client, run.StatusRunning)

		applied, err := service.CompleteRun(ctx, r.ID, run.StatusPassed, CompleteRunFields{
			Logs:       "all assertions held",
			DurationMs: 1234,
		})
		require.NoError(t, err)
		assert.True(t, applied)

		got, err := client.Run.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusPassed, got.Status)
		assert.Equal(t, 100, got.Progress)
		require.NotNil(t, got.CompletedAt)
		require.NotNil(t, got.DurationMs)
		assert.Equal(t, 1234, *got.DurationMs)
	})

	t.Run("first terminal writer wins", func(t *testing.T) {
		r := seedRun(ctx, t, client.Client, run.StatusRunning)

		applied, err := service.CompleteRun(ctx, r.ID, run.StatusCancelled, CompleteRunFields{
			ErrorMessage: "cancelled",
		})
		require.NoError(t, err)
		assert.True(t, applied)

		// A worker finishing late must not overwrite the cancellation.
		applied, err = service.CompleteRun(ctx, r.ID, run.StatusPassed, CompleteRunFields{})
		require.NoError(t, err)
		assert.False(t, applied)

		got, err := client.Run.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCancelled, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "cancelled", *got.ErrorMessage)
	})

	t.Run("rejects non-terminal statuses", func(t *testing.T) {
		r := seedRun(ctx, t, client.Client, run.StatusRunning)

		_, err := service.CompleteRun(ctx, r.ID, run.StatusRunning, CompleteRunFields{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestRunService_Cancellation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil, nil)
	ctx := context.Background()

	t.Run("request cancel sets the cooperative flag", func(t *testing.T) {
		r := seedRun(ctx, t, client.Client, run.StatusRunning)

		got, err := service.RequestCancel(ctx, r.ID)
		require.NoError(t, err)
		assert.True(t, got.CancelRequested)

		flagged, err := service.IsCancelRequested(ctx, r.ID)
		require.NoError(t, err)
		assert.True(t, flagged)
	})

	t.Run("request cancel on terminal run is a no-op", func(t *testing.T) {
		r := seedRun(ctx, t, client.Client, run.StatusPassed)

		got, err := service.RequestCancel(ctx, r.ID)
		require.NoError(t, err)
		assert.False(t, got.CancelRequested)
		assert.Equal(t, run.StatusPassed, got.Status)
	})

	t.Run("cancel pending finalizes a never-claimed run", func(t *testing.T) {
		r := seedRun(ctx, t, client.Client, run.StatusPending)

		applied, err := service.CancelPending(ctx, r.ID)
		require.NoError(t, err)
		assert.True(t, applied)

		got, err := client.Run.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCancelled, got.Status)
		assert.Equal(t, 100, got.Progress)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("cancel pending skips running runs", func(t *testing.T) {
		r := seedRun(ctx, t, client.Client, run.StatusRunning)

		applied, err := service.CancelPending(ctx, r.ID)
		require.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestRunService_SetProgress(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil, nil)
	ctx := context.Background()

	t.Run("updates active runs within bounds", func(t *testing.T) {
		r := seedRun(ctx, t, client.Client, run.StatusRunning)

		require.NoError(t, service.SetProgress(ctx, r.ID, 40))
		got, err := client.Run.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, 40, got.Progress)

		err = service.SetProgress(ctx, r.ID, 120)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("leaves terminal runs alone", func(t *testing.T) {
		r := seedRun(ctx, t, client.Client, run.StatusRunning)
		_, err := service.CompleteRun(ctx, r.ID, run.StatusFailed, CompleteRunFields{})
		require.NoError(t, err)

		require.NoError(t, service.SetProgress(ctx, r.ID, 10))
		got, err := client.Run.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, 100, got.Progress)
	})
}

func TestRunService_PurgeOldRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil, nil)
	ctx := context.Background()

	old := seedRun(ctx, t, client.Client, run.StatusPassed)
	_, err := client.Run.UpdateOneID(old.ID).
		SetCompletedAt(time.Now().AddDate(0, 0, -40)).
		Save(ctx)
	require.NoError(t, err)

	recent := seedRun(ctx, t, client.Client, run.StatusFailed)
	_, err = client.Run.UpdateOneID(recent.ID).
		SetCompletedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Active runs never age out, no matter how old the row is.
	stuck := seedRun(ctx, t, client.Client, run.StatusRunning)

	purged, err := service.PurgeOldRuns(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = service.GetRun(ctx, old.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetRun(ctx, recent.ID, false)
	assert.NoError(t, err)
	_, err = service.GetRun(ctx, stuck.ID, false)
	assert.NoError(t, err)
}

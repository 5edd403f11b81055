package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/pkg/blob"
	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/events"
	"github.com/dappsmith/conductor/pkg/services"
	testdb "github.com/dappsmith/conductor/test/database"
)

// recordingHealer captures Heal calls and plays back a scripted error.
type recordingHealer struct {
	calls []string
	err   error
}

func (h *recordingHealer) Heal(_ context.Context, runID string) error {
	h.calls = append(h.calls, runID)
	return h.err
}

func TestKindForMode(t *testing.T) {
	assert.Equal(t, job.KindExecute, KindForMode(run.ExecutionModeSpec))
	assert.Equal(t, job.KindExecuteHybrid, KindForMode(run.ExecutionModeHybrid))
	assert.Equal(t, job.KindExecuteAgent, KindForMode(run.ExecutionModeAgent))
}

func TestExecuteRejectsUnknownKind(t *testing.T) {
	e := NewRunExecutor(ExecutorDeps{})

	res := e.Execute(context.Background(), &ent.Job{ID: "j1", Kind: "demolish"})
	assert.Equal(t, job.StatusFailed, res.Status)
	assert.ErrorContains(t, res.Error, "unknown job kind")
}

// Payload validation fires before any collaborator is touched, so an
// empty dependency set is enough.
func TestExecuteRejectsMissingPayloadIDs(t *testing.T) {
	e := NewRunExecutor(ExecutorDeps{})

	tests := []struct {
		kind job.Kind
		want string
	}{
		{job.KindExecute, "no run_id"},
		{job.KindExecuteHybrid, "no run_id"},
		{job.KindExecuteAgent, "no run_id"},
		{job.KindExecuteSuite, "no suite_run_id"},
		{job.KindSelfHeal, "no run_id"},
	}
	for _, tc := range tests {
		res := e.Execute(context.Background(), &ent.Job{
			ID:      "j-" + string(tc.kind),
			Kind:    tc.kind,
			Payload: map[string]interface{}{},
		})
		assert.Equal(t, job.StatusFailed, res.Status, "kind %s", tc.kind)
		assert.ErrorContains(t, res.Error, tc.want, "kind %s", tc.kind)
	}
}

func TestExecuteSelfHealWithoutHealerCompletes(t *testing.T) {
	e := NewRunExecutor(ExecutorDeps{})

	res := e.Execute(context.Background(), &ent.Job{
		ID:      "j1",
		Kind:    job.KindSelfHeal,
		Payload: map[string]interface{}{"run_id": "run_x"},
	})
	assert.Equal(t, job.StatusCompleted, res.Status)
	assert.NoError(t, res.Error)
}

func TestExecuteSelfHealDelegatesToHealer(t *testing.T) {
	healer := &recordingHealer{}
	e := NewRunExecutor(ExecutorDeps{Healer: healer})

	res := e.Execute(context.Background(), &ent.Job{
		ID:      "j1",
		Kind:    job.KindSelfHeal,
		Payload: map[string]interface{}{"run_id": "run_x"},
	})
	assert.Equal(t, job.StatusCompleted, res.Status)
	assert.Equal(t, []string{"run_x"}, healer.calls)
}

func TestExecuteSelfHealErrorRetries(t *testing.T) {
	healer := &recordingHealer{err: errors.New("generator unreachable")}
	e := NewRunExecutor(ExecutorDeps{Healer: healer})

	res := e.Execute(context.Background(), &ent.Job{
		ID:      "j1",
		Kind:    job.KindSelfHeal,
		Payload: map[string]interface{}{"run_id": "run_x"},
	})
	assert.Equal(t, job.StatusFailed, res.Status)
	assert.ErrorContains(t, res.Error, "generator unreachable")
}

func TestExecuteSelfHealCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	healer := &recordingHealer{err: ctx.Err()}
	e := NewRunExecutor(ExecutorDeps{Healer: healer})

	res := e.Execute(ctx, &ent.Job{
		ID:      "j1",
		Kind:    job.KindSelfHeal,
		Payload: map[string]interface{}{"run_id": "run_x"},
	})
	assert.Equal(t, job.StatusCancelled, res.Status)
}

// newExecutorFixture builds a DB-backed executor with only the run
// service and publisher wired — enough for the claim-path tests that
// never reach the sandbox.
func newExecutorFixture(t *testing.T) (*RunExecutor, *ent.Client) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	store, err := blob.NewFSStore(t.TempDir())
	require.NoError(t, err)

	return NewRunExecutor(ExecutorDeps{
		Config:    &config.Config{Queue: intTestQueueConfig(), Defaults: config.DefaultDefaults()},
		Client:    dbClient.Client,
		Runs:      services.NewRunService(dbClient.Client, store, config.DefaultDefaults()),
		Publisher: events.NewEventPublisher(dbClient.DB()),
		PodID:     "executor-test",
	}), dbClient.Client
}

// A job whose run row was deleted between enqueue and claim completes
// without retrying — there is nothing left to execute.
func TestExecuteRunDeletedRunCompletes(t *testing.T) {
	e, _ := newExecutorFixture(t)

	res := e.Execute(context.Background(), &ent.Job{
		ID:      ulid.Make().String(),
		Kind:    job.KindExecuteHybrid,
		Payload: map[string]interface{}{"run_id": "run_gone"},
	})
	assert.Equal(t, job.StatusCompleted, res.Status)
	assert.NoError(t, res.Error)
}

// A retried job whose run already reached a terminal status (most
// often cancelled during the backoff) skips execution entirely.
func TestExecuteRunAlreadyTerminalCompletes(t *testing.T) {
	ctx := context.Background()
	e, client := newExecutorFixture(t)

	r := createTestRun(ctx, t, client, run.StatusCancelled)
	res := e.Execute(ctx, &ent.Job{
		ID:      ulid.Make().String(),
		Kind:    job.KindExecuteHybrid,
		Payload: map[string]interface{}{"run_id": r.ID},
	})
	assert.Equal(t, job.StatusCompleted, res.Status)

	got, err := client.Run.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, got.Status, "terminal status preserved")
}

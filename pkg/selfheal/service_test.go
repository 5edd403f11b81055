package selfheal

import (
	"context"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent"
	entjob "github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/pkg/blob"
	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/generator"
	"github.com/dappsmith/conductor/pkg/queue"
	"github.com/dappsmith/conductor/pkg/services"
	testdb "github.com/dappsmith/conductor/test/database"
)

type healFixture struct {
	client *ent.Client
	store  blob.Store
	gen    *generator.ScriptedGenerator
	svc    *Service
}

func newHealFixture(t *testing.T) *healFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	store, err := blob.NewFSStore(t.TempDir())
	require.NoError(t, err)

	gen := &generator.ScriptedGenerator{}
	runs := services.NewRunService(client, store, config.DefaultDefaults())
	specs := services.NewSpecService(client, store)
	recordings := services.NewRecordingService(client, store)
	artifacts := services.NewArtifactService(client, store)
	q := queue.NewQueue(client, config.DefaultQueueConfig())

	return &healFixture{
		client: client,
		store:  store,
		gen:    gen,
		svc: NewService(Deps{
			Runs:       runs,
			Specs:      specs,
			Recordings: recordings,
			Artifacts:  artifacts,
			Queue:      q,
			Generator:  gen,
		}),
	}
}

// seedFailedRun builds project → recording → spec → run with the run
// in the given status and the spec at the given attempt.
func (f *healFixture) seedFailedRun(ctx context.Context, t *testing.T, status run.Status, attempt int, errMsg string) (*ent.Spec, *ent.Run) {
	t.Helper()
	suffix := ulid.Make().String()

	project, err := f.client.Project.Create().
		SetID("proj_" + suffix).
		SetName("heal test project").
		SetDappURL("https://dapp.example.com").
		SetWalletAddress("0xabc").
		SetWalletSeedCipher("sealed").
		Save(ctx)
	require.NoError(t, err)

	rec, err := f.client.Recording.Create().
		SetID("rec_" + suffix).
		SetProjectID(project.ID).
		SetName("swap flow").
		SetRecordingType(recording.RecordingTypeFlow).
		SetURL("https://dapp.example.com/swap").
		SetActions([]map[string]interface{}{{"type": "click", "selector": "#swap"}}).
		Save(ctx)
	require.NoError(t, err)

	sp, err := f.client.Spec.Create().
		SetID("spec_" + suffix).
		SetRecordingID(rec.ID).
		SetCode("test('swap', async ({ page }) => { await page.click('#swap'); });").
		SetStatus(spec.StatusReady).
		SetAttempt(attempt).
		SetMaxAttempts(3).
		Save(ctx)
	require.NoError(t, err)

	r, err := f.client.Run.Create().
		SetID("run_" + suffix).
		SetSpecID(sp.ID).
		SetStatus(status).
		SetExecutionMode(run.ExecutionModeHybrid).
		SetErrorMessage(errMsg).
		SetLogs("step 1 started\n" + errMsg).
		Save(ctx)
	require.NoError(t, err)
	return sp, r
}

func TestHealRegeneratesAndQueuesRetry(t *testing.T) {
	ctx := context.Background()
	f := newHealFixture(t)
	sp, r := f.seedFailedRun(ctx, t, run.StatusFailed, 1,
		"Timeout 30000ms exceeded waiting for selector \"#swap\"")

	f.gen.QueueOutput(&generator.Output{
		Code: "test('swap', async ({ page }) => { await page.click('[data-testid=swap]'); });",
	})

	require.NoError(t, f.svc.Heal(ctx, r.ID))

	// A child spec linked through parent_spec_id, one version and one
	// attempt up.
	child, err := f.client.Spec.Query().
		Where(spec.ParentSpecID(sp.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, sp.Version+1, child.Version)
	assert.Equal(t, sp.Attempt+1, child.Attempt)
	assert.Equal(t, sp.MaxAttempts, child.MaxAttempts)
	assert.Equal(t, spec.StatusReady, child.Status)
	assert.Contains(t, child.Code, "data-testid=swap")
	assert.Equal(t, "selector", child.FailureContext["failure_class"])
	assert.Equal(t, r.ID, child.FailureContext["run_id"])

	// A pending auto-retry run on the child spec, same execution mode.
	retry, err := f.client.Run.Query().Where(run.SpecID(child.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, retry.Status)
	assert.Equal(t, run.ExecutionModeHybrid, retry.ExecutionMode)
	assert.True(t, retry.IsAutoRetry)

	// An execute-hybrid job pointing at the retry run.
	j, err := f.client.Job.Query().Where(entjob.RunID(retry.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entjob.KindExecuteHybrid, j.Kind)
	assert.Equal(t, entjob.StatusPending, j.Status)

	// The generator saw the failure snapshot.
	require.Len(t, f.gen.RegenerateFailures, 1)
	failure := f.gen.RegenerateFailures[0]
	assert.Equal(t, sp.Code, failure.PreviousCode)
	assert.Contains(t, failure.Error, "#swap")
	assert.Equal(t, "selector", failure.FailureClass)
	assert.Equal(t, "https://dapp.example.com/swap", failure.DappURL)
	require.Len(t, f.gen.RegenerateAnalyses, 1)
	assert.Equal(t, "selector", f.gen.RegenerateAnalyses[0].Class)
}

func TestHealSkipsNonFailedRun(t *testing.T) {
	ctx := context.Background()
	f := newHealFixture(t)
	sp, r := f.seedFailedRun(ctx, t, run.StatusPassed, 1, "")

	require.NoError(t, f.svc.Heal(ctx, r.ID))

	count, err := f.client.Spec.Query().Where(spec.ParentSpecID(sp.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, f.gen.RegenerateFailures)
}

func TestHealRespectsAttemptBudget(t *testing.T) {
	ctx := context.Background()
	f := newHealFixture(t)
	sp, r := f.seedFailedRun(ctx, t, run.StatusFailed, 3, "Timeout 30000ms exceeded")

	require.NoError(t, f.svc.Heal(ctx, r.ID))

	count, err := f.client.Spec.Query().Where(spec.ParentSpecID(sp.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, f.gen.RegenerateFailures)
}

func TestHealDiscardsEmptyOutput(t *testing.T) {
	ctx := context.Background()
	f := newHealFixture(t)
	sp, r := f.seedFailedRun(ctx, t, run.StatusFailed, 1, "Timeout 30000ms exceeded")

	f.gen.QueueOutput(&generator.Output{Code: "   "})

	// A rejected output settles the cycle without error and without
	// new records.
	require.NoError(t, f.svc.Heal(ctx, r.ID))

	count, err := f.client.Spec.Query().Where(spec.ParentSpecID(sp.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	jobs, err := f.client.Job.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, jobs)
}

func TestHealMissingRunIsSettled(t *testing.T) {
	ctx := context.Background()
	f := newHealFixture(t)

	require.NoError(t, f.svc.Heal(ctx, "run_"+ulid.Make().String()))
}

func TestHealTruncatesLogTail(t *testing.T) {
	ctx := context.Background()
	f := newHealFixture(t)
	_, r := f.seedFailedRun(ctx, t, run.StatusFailed, 1, "Timeout 30000ms exceeded")

	long := strings.Repeat("x", 10_000) + "\nfinal line"
	require.NoError(t, f.client.Run.UpdateOneID(r.ID).SetLogs(long).Exec(ctx))

	f.gen.QueueOutput(&generator.Output{Code: "test('t', async () => {});"})
	require.NoError(t, f.svc.Heal(ctx, r.ID))

	require.Len(t, f.gen.RegenerateFailures, 1)
	logs := f.gen.RegenerateFailures[0].Logs
	assert.LessOrEqual(t, len(logs), logsTail)
	assert.True(t, strings.HasSuffix(logs, "final line"))
}

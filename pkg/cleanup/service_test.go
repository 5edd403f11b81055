package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

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
	"github.com/dappsmith/conductor/pkg/queue"
	"github.com/dappsmith/conductor/pkg/services"
	testdb "github.com/dappsmith/conductor/test/database"
)

type sweepFixture struct {
	client  *ent.Client
	staging string
	svc     *Service
}

func newSweepFixture(t *testing.T) *sweepFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	store, err := blob.NewFSStore(t.TempDir())
	require.NoError(t, err)
	staging := t.TempDir()

	retention := &config.RetentionConfig{
		RunRetentionDays: 7,
		EventMaxAge:      time.Hour,
		SweepSchedule:    "*/10 * * * *",
		StagingMaxAge:    time.Hour,
	}
	queueCfg := config.DefaultQueueConfig()
	queueCfg.RemoveOnComplete = 2
	queueCfg.RemoveOnFail = 2

	cipher, err := services.NewSeedCipher("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	return &sweepFixture{
		client:  client,
		staging: staging,
		svc: NewService(Deps{
			Retention: retention,
			Storage:   &config.StorageConfig{ArtifactsBasePath: staging},
			Runs:      services.NewRunService(client, store, config.DefaultDefaults()),
			Events:    services.NewEventService(client),
			Projects:  services.NewProjectService(client, cipher, store),
			Queue:     queue.NewQueue(client, queueCfg),
		}),
	}
}

// seedRun builds project → recording → spec → run with the given status
// and completion time.
func (f *sweepFixture) seedRun(ctx context.Context, t *testing.T, status run.Status, completedAt *time.Time) *ent.Run {
	t.Helper()
	suffix := ulid.Make().String()

	project, err := f.client.Project.Create().
		SetID("proj_" + suffix).
		SetName("sweep test project").
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
		SetCode("test('swap', async ({ page }) => {});").
		SetStatus(spec.StatusReady).
		Save(ctx)
	require.NoError(t, err)

	create := f.client.Run.Create().
		SetID("run_" + suffix).
		SetSpecID(sp.ID).
		SetStatus(status).
		SetExecutionMode(run.ExecutionModeHybrid)
	if completedAt != nil {
		create.SetCompletedAt(*completedAt)
	}
	r, err := create.Save(ctx)
	require.NoError(t, err)
	return r
}

func timePtr(t time.Time) *time.Time { return &t }

func TestSweepPurgesOldTerminalRuns(t *testing.T) {
	ctx := context.Background()
	f := newSweepFixture(t)

	old := f.seedRun(ctx, t, run.StatusPassed, timePtr(time.Now().AddDate(0, 0, -30)))
	recent := f.seedRun(ctx, t, run.StatusFailed, timePtr(time.Now().Add(-time.Hour)))
	active := f.seedRun(ctx, t, run.StatusRunning, nil)

	f.svc.Sweep()

	_, err := f.client.Run.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err), "aged-out terminal run should be purged")

	_, err = f.client.Run.Get(ctx, recent.ID)
	assert.NoError(t, err, "recent run should survive")

	_, err = f.client.Run.Get(ctx, active.ID)
	assert.NoError(t, err, "active run should survive regardless of age")
}

func TestSweepTrimsOldEvents(t *testing.T) {
	ctx := context.Background()
	f := newSweepFixture(t)

	oldEvent, err := f.client.Event.Create().
		SetChannel("runs").
		SetPayload(`{"type":"run.status"}`).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	freshEvent, err := f.client.Event.Create().
		SetChannel("runs").
		SetPayload(`{"type":"run.status"}`).
		Save(ctx)
	require.NoError(t, err)

	f.svc.Sweep()

	_, err = f.client.Event.Get(ctx, oldEvent.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = f.client.Event.Get(ctx, freshEvent.ID)
	assert.NoError(t, err)
}

func TestSweepTrimsFinishedJobsPerKind(t *testing.T) {
	ctx := context.Background()
	f := newSweepFixture(t)

	// Five completed execute jobs; RemoveOnComplete keeps the newest two.
	for i := 0; i < 5; i++ {
		_, err := f.client.Job.Create().
			SetID(ulid.Make().String()).
			SetKind(entjob.KindExecute).
			SetPayload(map[string]interface{}{}).
			SetStatus(entjob.StatusCompleted).
			SetCompletedAt(time.Now().Add(-time.Duration(5-i) * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}
	// A pending job is never trimmed.
	pending, err := f.client.Job.Create().
		SetID(ulid.Make().String()).
		SetKind(entjob.KindExecute).
		SetPayload(map[string]interface{}{}).
		Save(ctx)
	require.NoError(t, err)

	f.svc.Sweep()

	completed, err := f.client.Job.Query().
		Where(entjob.StatusEQ(entjob.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, completed)

	_, err = f.client.Job.Get(ctx, pending.ID)
	assert.NoError(t, err)
}

func TestSweepRemovesStaleStagingDirs(t *testing.T) {
	f := newSweepFixture(t)

	stale := filepath.Join(f.staging, "run_stale")
	require.NoError(t, os.MkdirAll(stale, 0o755))
	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, past, past))

	fresh := filepath.Join(f.staging, "run_fresh")
	require.NoError(t, os.MkdirAll(fresh, 0o755))

	f.svc.Sweep()

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale staging dir should be removed")
	_, err = os.Stat(fresh)
	assert.NoError(t, err, "fresh staging dir should survive")
}

func TestSweepPurgesSoftDeletedProjects(t *testing.T) {
	ctx := context.Background()
	f := newSweepFixture(t)

	suffix := ulid.Make().String()
	project, err := f.client.Project.Create().
		SetID("proj_" + suffix).
		SetName("doomed project").
		SetDappURL("https://dapp.example.com").
		SetWalletAddress("0xabc").
		SetWalletSeedCipher("sealed").
		SetDeletedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	f.svc.Sweep()

	_, err = f.client.Project.Get(ctx, project.ID)
	assert.True(t, ent.IsNotFound(err))
}

func TestStartRejectsBadSchedule(t *testing.T) {
	f := newSweepFixture(t)
	f.svc.deps.Retention.SweepSchedule = "every ten minutes"

	require.Error(t, f.svc.Start())
}

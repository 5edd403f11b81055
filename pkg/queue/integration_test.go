package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/suiterun"
	"github.com/dappsmith/conductor/pkg/config"
	testdb "github.com/dappsmith/conductor/test/database"
)

// createTestJob inserts a pending job directly, bypassing Enqueue.
func createTestJob(ctx context.Context, t *testing.T, client *ent.Client, kind job.Kind, payload map[string]interface{}) *ent.Job {
	t.Helper()
	if payload == nil {
		payload = map[string]interface{}{}
	}
	builder := client.Job.Create().
		SetID(ulid.Make().String()).
		SetKind(kind).
		SetPayload(payload).
		SetStatus(job.StatusPending).
		SetNextAttemptAt(time.Now())
	if ownerID := ownerIDFromPayload(payload); ownerID != "" {
		builder = builder.SetRunID(ownerID)
	}
	j, err := builder.Save(ctx)
	require.NoError(t, err)
	return j
}

// createTestRun builds the project → recording → spec → run chain and
// returns the run.
func createTestRun(ctx context.Context, t *testing.T, client *ent.Client, status run.Status) *ent.Run {
	t.Helper()
	suffix := ulid.Make().String()

	project, err := client.Project.Create().
		SetID("proj_" + suffix).
		SetName("queue test project").
		SetDappURL("https://dapp.example.com").
		SetWalletAddress("0xabc").
		SetWalletSeedCipher("sealed").
		Save(ctx)
	require.NoError(t, err)

	rec, err := client.Recording.Create().
		SetID("rec_" + suffix).
		SetProjectID(project.ID).
		SetName("swap flow").
		SetRecordingType(recording.RecordingTypeFlow).
		SetActions([]map[string]interface{}{{"type": "click", "selector": "#swap"}}).
		Save(ctx)
	require.NoError(t, err)

	spec, err := client.Spec.Create().
		SetID("spec_" + suffix).
		SetRecordingID(rec.ID).
		SetCode("async function main() {}").
		Save(ctx)
	require.NoError(t, err)

	r, err := client.Run.Create().
		SetID("run_" + suffix).
		SetSpecID(spec.ID).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return r
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		Concurrency:             2,
		MaxConcurrentRuns:       10,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      0,
		LockDuration:            30 * time.Second,
		LockRenewInterval:       10 * time.Second,
		ClaimRatePerMinute:      0, // unlimited; the limiter has its own unit test
		DefaultMaxAttempts:      3,
		RetryBackoffBase:        50 * time.Millisecond,
		RunTimeout:              30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		CancelPollInterval:      100 * time.Millisecond,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a pending job.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	created := createTestJob(ctx, t, client, job.KindExecute, map[string]interface{}{"run_id": "run_claim"})

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending job")
	assert.Equal(t, created.ID, claimed.ID)
	assert.Equal(t, job.StatusRunning, claimed.Status)
	assert.Equal(t, 1, claimed.Attempt, "claim consumes one attempt")
	require.NotNil(t, claimed.LockedBy)
	assert.Equal(t, "test-pod", *claimed.LockedBy)
	require.NotNil(t, claimed.LockExpiresAt)
	assert.True(t, claimed.LockExpiresAt.After(time.Now()), "lease should extend into the future")
	require.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should return ErrNoJobsAvailable
	claimed2, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
	assert.Nil(t, claimed2, "no more pending jobs should be available")
}

// TestConcurrentClaimsDistinctJobs tests that concurrent workers claim different jobs.
func TestConcurrentClaimsDistinctJobs(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	jobIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		j := createTestJob(ctx, t, client, job.KindExecute, nil)
		jobIDs[j.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil)
			j, err := w.claimNextJob(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			if j != nil {
				mu.Lock()
				claimed = append(claimed, j.ID)
				mu.Unlock()
			} else {
				errCh <- fmt.Errorf("worker-%d got nil job without error", workerID)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 jobs should be claimed, each by exactly one worker (no duplicates)
	assert.Len(t, claimed, 5, "all 5 jobs should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "job %s claimed by multiple workers", id)
		seen[id] = struct{}{}
	}

	for _, id := range claimed {
		_, ok := jobIDs[id]
		assert.True(t, ok, "claimed job %s was not in original set", id)
	}
}

// TestEnqueueDefaultsAndOwner tests Enqueue's defaulting and run_id denormalization.
func TestEnqueueDefaultsAndOwner(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	q := NewQueue(client, intTestQueueConfig())

	j, err := q.Enqueue(ctx, job.KindExecute, map[string]interface{}{"run_id": "run_enq"}, nil)
	require.NoError(t, err)
	assert.Equal(t, job.KindExecute, j.Kind)
	assert.Equal(t, job.StatusPending, j.Status)
	assert.Equal(t, 0, j.Attempt)
	assert.Equal(t, 3, j.MaxAttempts, "default claim budget comes from config")
	require.NotNil(t, j.RunID)
	assert.Equal(t, "run_enq", *j.RunID)

	// Per-enqueue attempts override
	j2, err := q.Enqueue(ctx, job.KindSelfHeal, map[string]interface{}{"run_id": "run_enq2"}, &EnqueueOptions{Attempts: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, j2.MaxAttempts)

	// Suite jobs denormalize suite_run_id
	j3, err := q.Enqueue(ctx, job.KindExecuteSuite, map[string]interface{}{"suite_run_id": "suite_enq"}, nil)
	require.NoError(t, err)
	require.NotNil(t, j3.RunID)
	assert.Equal(t, "suite_enq", *j3.RunID)

	// No owner in the payload leaves the column unset
	j4, err := q.Enqueue(ctx, job.KindExecute, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, j4.RunID)
}

// TestEnqueueDelayPostponesClaim tests that a delayed job is invisible until due.
func TestEnqueueDelayPostponesClaim(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	cfg := intTestQueueConfig()
	q := NewQueue(client, cfg)

	_, err := q.Enqueue(ctx, job.KindExecute, nil, &EnqueueOptions{Delay: 400 * time.Millisecond})
	require.NoError(t, err)

	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil)

	// Immediately after enqueue the job is not yet due.
	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable, "delayed job should not be claimable yet")

	var claimed *ent.Job
	awaitCondition(t, 3*time.Second, 25*time.Millisecond,
		"waiting for the delayed job to become claimable",
		func() bool {
			j, err := w.claimNextJob(ctx)
			if errors.Is(err, ErrNoJobsAvailable) {
				return false
			}
			require.NoError(t, err)
			claimed = j
			return true
		})
	assert.Equal(t, 1, claimed.Attempt)
}

// TestCancelPendingJob tests that a cancelled pending job is finished outright and never claimed.
func TestCancelPendingJob(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	cfg := intTestQueueConfig()
	q := NewQueue(client, cfg)
	j := createTestJob(ctx, t, client, job.KindExecute, nil)

	finished, err := q.Cancel(ctx, j.ID)
	require.NoError(t, err)
	assert.True(t, finished, "pending job should be finished outright")

	updated, err := client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, updated.Status)
	assert.True(t, updated.CancelRequested)
	require.NotNil(t, updated.CompletedAt)

	// The claim query must never see it again.
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil)
	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

// TestCancelRunningJobSetsFlag tests that cancelling a running job only flags it.
func TestCancelRunningJobSetsFlag(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	cfg := intTestQueueConfig()
	q := NewQueue(client, cfg)
	createTestJob(ctx, t, client, job.KindExecute, nil)

	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil)
	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)

	finished, err := q.Cancel(ctx, claimed.ID)
	require.NoError(t, err)
	assert.False(t, finished, "running job is finished by its worker, not by Cancel")

	updated, err := client.Job.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, updated.Status, "status stays running until the handler observes the flag")
	assert.True(t, updated.CancelRequested)
	assert.Nil(t, updated.CompletedAt)
}

// TestCancelByRunID tests cancelling every live job bound to a run.
func TestCancelByRunID(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	cfg := intTestQueueConfig()
	q := NewQueue(client, cfg)

	payload := map[string]interface{}{"run_id": "run_cbr"}
	createTestJob(ctx, t, client, job.KindExecute, payload)
	running := createTestJob(ctx, t, client, job.KindSelfHeal, payload)
	unrelated := createTestJob(ctx, t, client, job.KindExecute, map[string]interface{}{"run_id": "run_other"})

	// Move one of the bound jobs to running.
	_, err := client.Job.UpdateOneID(running.ID).
		SetStatus(job.StatusRunning).
		SetLockedBy("test-pod").
		SetLockExpiresAt(time.Now().Add(time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	finished, err := q.CancelByRunID(ctx, "run_cbr")
	require.NoError(t, err)
	assert.Equal(t, 1, finished, "one pending job should be finished outright")

	flagged, err := client.Job.Get(ctx, running.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, flagged.Status)
	assert.True(t, flagged.CancelRequested)

	// Unrelated runs are untouched.
	other, err := client.Job.Get(ctx, unrelated.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, other.Status)
	assert.False(t, other.CancelRequested)
}

// TestOrphanRequeuePreservesAttempt tests that an expired lease requeues the
// job without consuming another attempt.
func TestOrphanRequeuePreservesAttempt(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Simulate a crash: running job whose lease expired long ago.
	j := createTestJob(ctx, t, client, job.KindExecute, nil)
	staleBeat := time.Now().Add(-10 * time.Minute)
	_, err := client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusRunning).
		SetAttempt(1).
		SetLockedBy("crashed-pod").
		SetLockExpiresAt(time.Now().Add(-time.Minute)).
		SetLastHeartbeatAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: intTestQueueConfig(),
	}

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	updated, err := client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, updated.Status)
	assert.Equal(t, 1, updated.Attempt, "requeue must not consume an attempt; the claim already did")
	assert.Nil(t, updated.LockedBy)
	assert.Nil(t, updated.LockExpiresAt)
	require.NotNil(t, updated.LastError)
	assert.Contains(t, *updated.LastError, "Orphaned")
	assert.Contains(t, *updated.LastError, "crashed-pod")
	assert.False(t, updated.NextAttemptAt.After(time.Now()), "requeued job should be immediately claimable")

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()

	// A healthy lease is left alone.
	healthy := createTestJob(ctx, t, client, job.KindExecute, nil)
	_, err = client.Job.UpdateOneID(healthy.ID).
		SetStatus(job.StatusRunning).
		SetAttempt(1).
		SetLockedBy("live-pod").
		SetLockExpiresAt(time.Now().Add(time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))
	alive, err := client.Job.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, alive.Status)
}

// TestOrphanExhaustedTimesOutRun tests that an orphan with no attempts left
// fails the job and times out its run.
func TestOrphanExhaustedTimesOutRun(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	r := createTestRun(ctx, t, client, run.StatusRunning)

	j := createTestJob(ctx, t, client, job.KindExecute, map[string]interface{}{"run_id": r.ID})
	_, err := client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusRunning).
		SetAttempt(3). // claim budget spent
		SetLockedBy("crashed-pod").
		SetLockExpiresAt(time.Now().Add(-time.Minute)).
		SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: intTestQueueConfig(),
	}
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	updated, err := client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, updated.Status)
	require.NotNil(t, updated.CompletedAt)

	// Nothing will finish the run anymore, so the sweep did.
	deadRun, err := client.Run.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusTimedOut, deadRun.Status)
	assert.Equal(t, 100, deadRun.Progress)
	require.NotNil(t, deadRun.CompletedAt)
	require.NotNil(t, deadRun.ErrorMessage)
	assert.Contains(t, *deadRun.ErrorMessage, "Orphaned")
}

// TestOrphanExhaustedTimesOutSuiteRun tests owner finalization for suite jobs.
func TestOrphanExhaustedTimesOutSuiteRun(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	suffix := ulid.Make().String()
	project, err := client.Project.Create().
		SetID("proj_" + suffix).
		SetName("suite orphan project").
		SetDappURL("https://dapp.example.com").
		SetWalletAddress("0xabc").
		SetWalletSeedCipher("sealed").
		Save(ctx)
	require.NoError(t, err)

	sr, err := client.SuiteRun.Create().
		SetID("suite_" + suffix).
		SetProjectID(project.ID).
		SetSpecIds([]string{"spec_a", "spec_b"}).
		SetStatus(suiterun.StatusRunning).
		SetTotalTests(2).
		Save(ctx)
	require.NoError(t, err)

	j := createTestJob(ctx, t, client, job.KindExecuteSuite, map[string]interface{}{"suite_run_id": sr.ID})
	_, err = client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusRunning).
		SetAttempt(3).
		SetLockedBy("crashed-pod").
		SetLockExpiresAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: intTestQueueConfig(),
	}
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	deadSuite, err := client.SuiteRun.Get(ctx, sr.ID)
	require.NoError(t, err)
	assert.Equal(t, suiterun.StatusTimedOut, deadSuite.Status)
	require.NotNil(t, deadSuite.CompletedAt)
	require.NotNil(t, deadSuite.ErrorMessage)
	assert.Contains(t, *deadSuite.ErrorMessage, "Orphaned")
}

// TestStartupOrphanCleanup tests the one-time startup recovery of this pod's jobs.
func TestStartupOrphanCleanup(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	podID := "startup-test-pod"

	// Attempts remain: requeued even though the lease is still fresh —
	// the process that held it is gone.
	retryable := createTestJob(ctx, t, client, job.KindExecute, nil)
	_, err := client.Job.UpdateOneID(retryable.ID).
		SetStatus(job.StatusRunning).
		SetAttempt(1).
		SetLockedBy(podID).
		SetLockExpiresAt(time.Now().Add(5 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	// Claim budget spent: fails and finalizes its run.
	r := createTestRun(ctx, t, client, run.StatusRunning)
	exhausted := createTestJob(ctx, t, client, job.KindExecute, map[string]interface{}{"run_id": r.ID})
	_, err = client.Job.UpdateOneID(exhausted.ID).
		SetStatus(job.StatusRunning).
		SetAttempt(3).
		SetLockedBy(podID).
		SetLockExpiresAt(time.Now().Add(5 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	// Another pod's job must not be touched.
	other := createTestJob(ctx, t, client, job.KindExecute, nil)
	_, err = client.Job.UpdateOneID(other.ID).
		SetStatus(job.StatusRunning).
		SetAttempt(1).
		SetLockedBy("other-pod").
		SetLockExpiresAt(time.Now().Add(5 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client, podID, nil))

	requeued, err := client.Job.Get(ctx, retryable.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, requeued.Status)
	assert.Equal(t, 1, requeued.Attempt)
	assert.Nil(t, requeued.LockedBy)

	failed, err := client.Job.Get(ctx, exhausted.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, failed.Status)
	require.NotNil(t, failed.LastError)
	assert.Contains(t, *failed.LastError, "restarted")

	deadRun, err := client.Run.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusTimedOut, deadRun.Status)

	untouched, err := client.Job.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, untouched.Status, "other pod's job should be untouched")
}

// mockExecutor counts executions and tracks which jobs were processed.
type mockExecutor struct {
	processed  atomic.Int64
	jobs       sync.Map // string → struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, j *ent.Job) *ExecutionResult {
	m.processed.Add(1)
	if j != nil {
		m.jobs.Store(j.ID, struct{}{})
	}

	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	// If releaseCh is set, block until it's closed (for deterministic tests)
	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
			// Released, continue
		case <-ctx.Done():
			return &ExecutionResult{Status: job.StatusCancelled, Error: ctx.Err()}
		}
	} else {
		// Default behavior: simulate short processing
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{Status: job.StatusCancelled, Error: ctx.Err()}
		}
	}

	return &ExecutionResult{Status: job.StatusCompleted}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createTestJob(ctx, t, client, job.KindExecute, nil)
	}

	cfg := intTestQueueConfig()
	executor := &mockExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for jobs to be processed",
		func() bool { return executor.processed.Load() >= 3 })

	// Completion is written after Execute returns; wait for the rows.
	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for terminal status writes",
		func() bool {
			n, err := client.Job.Query().
				Where(job.StatusEQ(job.StatusCompleted)).
				Count(ctx)
			require.NoError(t, err)
			return n == 3
		})

	pool.Stop()

	jobs, err := client.Job.Query().
		Where(job.StatusEQ(job.StatusCompleted)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3, "all 3 jobs should be completed")
	for _, j := range jobs {
		assert.Equal(t, 100, j.Progress, "completed jobs report full progress")
		assert.Equal(t, 1, j.Attempt)
		assert.Nil(t, j.LockExpiresAt, "lease is cleared on completion")
		require.NotNil(t, j.CompletedAt)
	}

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 0, health.QueueDepth)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createTestJob(ctx, t, client, job.KindExecute, nil)
	}

	// Workers match MaxConcurrentRuns to avoid startup races.
	cfg := intTestQueueConfig()
	cfg.Concurrency = 2
	cfg.MaxConcurrentRuns = 2
	cfg.OrphanDetectionInterval = 1 * time.Hour // keep the sweep out of this test

	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait until exactly MaxConcurrentRuns jobs are in progress
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for jobs in progress",
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentRuns) })

	// Give the system a moment to stabilize
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, int64(cfg.MaxConcurrentRuns), executor.inProgress.Load(),
		"should have exactly MaxConcurrentRuns in progress")

	dbRunning, err := client.Job.Query().
		Where(job.StatusEQ(job.StatusRunning)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentRuns, dbRunning, "DB should show MaxConcurrentRuns running")

	// Release executions to complete
	close(releaseCh)

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for first batch to complete",
		func() bool { return executor.inProgress.Load() == 0 })

	// Workers should now claim the remaining jobs
	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for all jobs to be processed",
		func() bool { return executor.processed.Load() >= 5 })

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for terminal status writes",
		func() bool {
			n, err := client.Job.Query().
				Where(job.StatusEQ(job.StatusCompleted)).
				Count(ctx)
			require.NoError(t, err)
			return n == 5
		})

	pool.Stop()
}

// TestRetryBackoffOnFailedResult tests the claim → fail → backoff → reclaim cycle.
func TestRetryBackoffOnFailedResult(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	cfg := intTestQueueConfig()
	cfg.RetryBackoffBase = 200 * time.Millisecond

	createTestJob(ctx, t, client, job.KindExecute, nil)
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil)

	// Attempt 1: infrastructure failure reschedules with backoff.
	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, claimed.Attempt)

	err = w.finalizeJob(ctx, claimed, &ExecutionResult{
		Status: job.StatusFailed,
		Error:  errors.New("sandbox bootstrap failed"),
	})
	require.NoError(t, err)

	rescheduled, err := client.Job.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, rescheduled.Status)
	assert.Equal(t, 1, rescheduled.Attempt)
	assert.Nil(t, rescheduled.LockedBy)
	require.NotNil(t, rescheduled.LastError)
	assert.Contains(t, *rescheduled.LastError, "sandbox bootstrap failed")

	// Backoff holds the job out of the claim query until due.
	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable, "retry must respect the backoff delay")

	var second *ent.Job
	awaitCondition(t, 3*time.Second, 25*time.Millisecond,
		"waiting for the retry to become claimable",
		func() bool {
			j, err := w.claimNextJob(ctx)
			if errors.Is(err, ErrNoJobsAvailable) {
				return false
			}
			require.NoError(t, err)
			second = j
			return true
		})
	require.Equal(t, 2, second.Attempt)

	// Attempt 2 fails too; attempt 3 is the last.
	err = w.finalizeJob(ctx, second, &ExecutionResult{
		Status: job.StatusFailed,
		Error:  errors.New("sandbox bootstrap failed"),
	})
	require.NoError(t, err)

	var third *ent.Job
	awaitCondition(t, 3*time.Second, 25*time.Millisecond,
		"waiting for the final attempt to become claimable",
		func() bool {
			j, err := w.claimNextJob(ctx)
			if errors.Is(err, ErrNoJobsAvailable) {
				return false
			}
			require.NoError(t, err)
			third = j
			return true
		})
	require.Equal(t, 3, third.Attempt)

	// Budget spent: the failure is terminal.
	err = w.finalizeJob(ctx, third, &ExecutionResult{
		Status: job.StatusFailed,
		Error:  errors.New("sandbox bootstrap failed"),
	})
	require.NoError(t, err)

	dead, err := client.Job.Get(ctx, third.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, dead.Status)
	require.NotNil(t, dead.CompletedAt)

	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable, "failed jobs are never claimed again")
}

// TestLeaseRenewalExtendsLock tests that a long-running handler keeps its lease fresh.
func TestLeaseRenewalExtendsLock(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	j := createTestJob(ctx, t, client, job.KindExecute, nil)

	cfg := intTestQueueConfig()
	cfg.Concurrency = 1
	cfg.LockRenewInterval = 100 * time.Millisecond

	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for job to be claimed",
		func() bool {
			row, err := client.Job.Get(ctx, j.ID)
			require.NoError(t, err)
			return row.Status == job.StatusRunning && row.LastHeartbeatAt != nil
		})

	before, err := client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	require.NotNil(t, before.LockExpiresAt)
	require.NotNil(t, before.LastHeartbeatAt)
	initialBeat := *before.LastHeartbeatAt
	initialLease := *before.LockExpiresAt

	// Wait for at least one renewal.
	time.Sleep(300 * time.Millisecond)

	after, err := client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	require.NotNil(t, after.LastHeartbeatAt)
	require.NotNil(t, after.LockExpiresAt)
	assert.True(t, after.LastHeartbeatAt.After(initialBeat), "heartbeat should advance while the handler runs")
	assert.True(t, after.LockExpiresAt.After(initialLease), "lease should be extended")

	close(releaseCh)
	pool.Stop()
}

// nilExecutor returns a nil *ExecutionResult for testing the nil-guard.
type nilExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.Job) *ExecutionResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult from
// JobExecutor.Execute does not panic and is translated into the correct
// terminal status.
func TestNilExecutionResultGuard(t *testing.T) {
	t.Run("nil result without context error marks job failed", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		j := createTestJob(ctx, t, client, job.KindExecute, nil)
		// Single attempt so the synthesized failure is terminal.
		_, err := client.Job.UpdateOneID(j.ID).SetMaxAttempts(1).Save(ctx)
		require.NoError(t, err)

		cfg := intTestQueueConfig()
		cfg.Concurrency = 1

		executor := &nilExecutor{blockUntilCtxDone: false}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for job to reach terminal status",
			func() bool {
				row, err := client.Job.Get(ctx, j.ID)
				require.NoError(t, err)
				return row.Status == job.StatusFailed
			})

		pool.Stop()

		updated, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, updated.Status)
		require.NotNil(t, updated.LastError)
		assert.Contains(t, *updated.LastError, "executor returned nil result")
	})

	t.Run("nil result with deadline exceeded records the timeout", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		j := createTestJob(ctx, t, client, job.KindExecute, nil)
		_, err := client.Job.UpdateOneID(j.ID).SetMaxAttempts(1).Save(ctx)
		require.NoError(t, err)

		cfg := intTestQueueConfig()
		cfg.Concurrency = 1
		cfg.RunTimeout = 200 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for job to reach terminal status",
			func() bool {
				row, err := client.Job.Get(ctx, j.ID)
				require.NoError(t, err)
				return row.Status == job.StatusFailed
			})

		pool.Stop()

		updated, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, updated.Status)
		require.NotNil(t, updated.LastError)
		assert.Contains(t, *updated.LastError, "timed out")
		assert.Contains(t, *updated.LastError, "200ms")
	})

	t.Run("nil result with cancellation marks job cancelled", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		j := createTestJob(ctx, t, client, job.KindExecute, nil)

		cfg := intTestQueueConfig()
		cfg.Concurrency = 1

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for job to be claimed",
			func() bool {
				row, err := client.Job.Get(ctx, j.ID)
				require.NoError(t, err)
				return row.Status == job.StatusRunning
			})

		// No run in the payload, so the job is registered under its own id.
		cancelled := pool.CancelRun(j.ID)
		require.True(t, cancelled, "CancelRun should find the active job")

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for job to reach terminal status",
			func() bool {
				row, err := client.Job.Get(ctx, j.ID)
				require.NoError(t, err)
				return row.Status == job.StatusCancelled
			})

		pool.Stop()

		updated, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, updated.Status)
		assert.Equal(t, 1, updated.Attempt, "cancelled jobs are never retried")
	})
}

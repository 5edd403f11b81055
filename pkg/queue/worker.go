package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor JobExecutor
	pool     RunRegistry
	limiter  *claimLimiter
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for cancel registration.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor, pool RunRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		limiter:      newClaimLimiter(cfg.ClaimRatePerMinute),
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) ||
					errors.Is(err, ErrAtCapacity) ||
					errors.Is(err, ErrClaimRateLimited) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by Concurrency and mitigated by poll jitter).
	activeCount, err := w.client.Job.Query().
		Where(job.StatusEQ(job.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Per-worker claim budget
	if !w.limiter.allow(time.Now()) {
		return ErrClaimRateLimited
	}

	// 3. Claim next job
	j, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", j.ID, "kind", j.Kind, "attempt", j.Attempt, "worker_id", w.id)
	log.Info("Job claimed")

	w.setStatus(WorkerStatusWorking, j.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 4. Job context bounded by the run timeout
	jobCtx, cancelJob := context.WithTimeout(ctx, w.jobTimeout(j))
	defer cancelJob()

	// 5. Register cancel function for API-triggered cancellation
	ownerID := jobOwnerID(j)
	w.pool.RegisterRun(ownerID, cancelJob)
	defer w.pool.UnregisterRun(ownerID)

	// 6. Renew the lock lease while the handler runs
	renewCtx, stopRenewal := context.WithCancel(context.Background())
	defer stopRenewal()
	go w.runLeaseRenewal(renewCtx, j.ID, cancelJob)

	// 7. Execute
	result := w.executor.Execute(jobCtx, j)

	// 7a. Nil-guard: synthesize a safe result if the executor returned nil
	if result == nil {
		switch {
		case errors.Is(jobCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: job.StatusCancelled,
				Error:  context.Canceled,
			}
		case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: job.StatusFailed,
				Error:  fmt.Errorf("job handler timed out after %v", w.jobTimeout(j)),
			}
		default:
			result = &ExecutionResult{
				Status: job.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 8. Stop renewing before the terminal write
	stopRenewal()

	// 9. Write the job's terminal status (background context — jobCtx may be cancelled)
	if err := w.finalizeJob(context.Background(), j, result); err != nil {
		log.Error("Failed to finalize job", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete", "status", result.Status)
	return nil
}

// claimNextJob atomically claims the oldest due job using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Job ids are ULIDs, so ordering by id is FIFO with delays honored
	// through next_attempt_at.
	j, err := tx.Job.Query().
		Where(
			job.StatusEQ(job.StatusPending),
			job.NextAttemptAtLTE(time.Now()),
		).
		Order(ent.Asc(job.FieldID)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	// Claim: consume an attempt and take the lock lease.
	now := time.Now()
	j, err = j.Update().
		SetStatus(job.StatusRunning).
		AddAttempt(1).
		SetLockedBy(w.podID).
		SetLockExpiresAt(now.Add(w.config.LockDuration)).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return j, nil
}

// runLeaseRenewal periodically extends the lock lease and heartbeat.
// If the lease cannot be renewed because another pod took the job over
// (orphan requeue after a long DB outage), the handler is cancelled so
// two workers never drive the same run.
func (w *Worker) runLeaseRenewal(ctx context.Context, jobID string, cancelJob context.CancelFunc) {
	ticker := time.NewTicker(w.config.LockRenewInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.client.Job.Update().
				Where(
					job.IDEQ(jobID),
					job.StatusEQ(job.StatusRunning),
					job.LockedByEQ(w.podID),
				).
				SetLockExpiresAt(time.Now().Add(w.config.LockDuration)).
				SetLastHeartbeatAt(time.Now()).
				Save(ctx)
			if err != nil {
				slog.Warn("Lease renewal failed", "job_id", jobID, "error", err)
				continue
			}
			if count == 0 {
				slog.Error("Lock lease lost, aborting handler", "job_id", jobID, "pod_id", w.podID)
				cancelJob()
				return
			}
		}
	}
}

// finalizeJob writes the job's terminal status, or reschedules it with
// exponential backoff when attempts remain. All writes are guarded on
// (running, locked by this pod) so an orphan requeue that already took
// the job away is never overwritten.
func (w *Worker) finalizeJob(ctx context.Context, j *ent.Job, result *ExecutionResult) error {
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	switch result.Status {
	case job.StatusCompleted:
		_, err := w.client.Job.Update().
			Where(job.IDEQ(j.ID), job.StatusEQ(job.StatusRunning), job.LockedByEQ(w.podID)).
			SetStatus(job.StatusCompleted).
			SetProgress(100).
			SetCompletedAt(time.Now()).
			ClearLockExpiresAt().
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to complete job: %w", err)
		}
		return nil

	case job.StatusCancelled:
		update := w.client.Job.Update().
			Where(job.IDEQ(j.ID), job.StatusEQ(job.StatusRunning), job.LockedByEQ(w.podID)).
			SetStatus(job.StatusCancelled).
			SetCompletedAt(time.Now()).
			ClearLockExpiresAt()
		if result.Error != nil {
			update = update.SetLastError(result.Error.Error())
		}
		if _, err := update.Save(writeCtx); err != nil {
			return fmt.Errorf("failed to cancel job: %w", err)
		}
		return nil

	case job.StatusFailed:
		errMsg := "handler failed"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}

		if j.Attempt < j.MaxAttempts {
			delay := backoffDelay(w.config.RetryBackoffBase, j.Attempt)
			count, err := w.client.Job.Update().
				Where(job.IDEQ(j.ID), job.StatusEQ(job.StatusRunning), job.LockedByEQ(w.podID)).
				SetStatus(job.StatusPending).
				SetNextAttemptAt(time.Now().Add(delay)).
				SetLastError(errMsg).
				ClearLockedBy().
				ClearLockExpiresAt().
				Save(writeCtx)
			if err != nil {
				return fmt.Errorf("failed to reschedule job: %w", err)
			}
			if count > 0 {
				slog.Info("Job retry scheduled",
					"job_id", j.ID,
					"attempt", j.Attempt,
					"max_attempts", j.MaxAttempts,
					"delay", delay,
					"error", errMsg)
			}
			return nil
		}

		_, err := w.client.Job.Update().
			Where(job.IDEQ(j.ID), job.StatusEQ(job.StatusRunning), job.LockedByEQ(w.podID)).
			SetStatus(job.StatusFailed).
			SetCompletedAt(time.Now()).
			SetLastError(errMsg).
			ClearLockExpiresAt().
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to fail job: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("executor returned non-terminal job status %q", result.Status)
	}
}

// jobTimeout bounds one handler invocation. Suite jobs run their
// children serially, so their budget scales with the suite size.
func (w *Worker) jobTimeout(j *ent.Job) time.Duration {
	if j.Kind != job.KindExecuteSuite {
		return w.config.RunTimeout
	}
	n := suiteSpecCount(j.Payload)
	if n < 1 {
		n = 1
	}
	return w.config.RunTimeout * time.Duration(n+1)
}

// suiteSpecCount reads the spec list length out of an execute-suite
// payload. The slice element type differs between freshly built
// payloads ([]string) and ones reloaded from the database ([]interface{}).
func suiteSpecCount(payload map[string]interface{}) int {
	switch ids := payload["spec_ids"].(type) {
	case []string:
		return len(ids)
	case []interface{}:
		return len(ids)
	default:
		return 0
	}
}

// jobOwnerID is the cancel-registry key: the linked run (or suite run)
// when present, else the job itself.
func jobOwnerID(j *ent.Job) string {
	if j.RunID != nil && *j.RunID != "" {
		return *j.RunID
	}
	return j.ID
}

// backoffDelay computes base * 2^(attempt-1).
func backoffDelay(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > 20 {
		attempt = 20 // avoid shift overflow; nothing retries this often
	}
	return base << (attempt - 1)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}

// claimLimiter is a sliding-window counter bounding how many jobs one
// worker may claim per minute.
type claimLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	claims []time.Time
}

func newClaimLimiter(limit int) *claimLimiter {
	return &claimLimiter{limit: limit, window: time.Minute}
}

// allow records a claim if the window has room.
func (l *claimLimiter) allow(now time.Time) bool {
	if l.limit <= 0 {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	kept := l.claims[:0]
	for _, t := range l.claims {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.claims = kept

	if len(l.claims) >= l.limit {
		return false
	}
	l.claims = append(l.claims, now)
	return true
}

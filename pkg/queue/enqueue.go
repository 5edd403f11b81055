package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/pkg/config"
)

// Queue persists and cancels jobs. Workers consume them through the
// pool; producers (API handlers, the suite executor, self-heal) only
// ever touch this type.
type Queue struct {
	client *ent.Client
	config *config.QueueConfig
}

// NewQueue creates a new Queue.
func NewQueue(client *ent.Client, cfg *config.QueueConfig) *Queue {
	if cfg == nil {
		cfg = config.DefaultQueueConfig()
	}
	return &Queue{client: client, config: cfg}
}

// EnqueueOptions tune a single enqueue. Zero values fall back to the
// configured defaults. Retention (how many finished jobs per kind are
// kept) is a queue-wide setting, not per-job.
type EnqueueOptions struct {
	// Attempts is the claim budget; default config DefaultMaxAttempts.
	Attempts int

	// Delay postpones the first claim.
	Delay time.Duration
}

// Enqueue persists a job and returns immediately. Job ids are ULIDs so
// claim order follows creation order. The payload's "run_id" (or
// "suite_run_id" for execute-suite jobs) is denormalized into the
// run_id column for cancel lookups.
func (q *Queue) Enqueue(ctx context.Context, kind job.Kind, payload map[string]interface{}, opts *EnqueueOptions) (*ent.Job, error) {
	if payload == nil {
		payload = map[string]interface{}{}
	}

	maxAttempts := q.config.DefaultMaxAttempts
	var delay time.Duration
	if opts != nil {
		if opts.Attempts > 0 {
			maxAttempts = opts.Attempts
		}
		if opts.Delay > 0 {
			delay = opts.Delay
		}
	}

	// Critical write: survive the submitter hanging up.
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := q.client.Job.Create().
		SetID(ulid.Make().String()).
		SetKind(kind).
		SetPayload(payload).
		SetStatus(job.StatusPending).
		SetMaxAttempts(maxAttempts).
		SetNextAttemptAt(time.Now().Add(delay))
	if ownerID := ownerIDFromPayload(payload); ownerID != "" {
		builder = builder.SetRunID(ownerID)
	}

	j, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue %s job: %w", kind, err)
	}

	slog.Info("Job enqueued",
		"job_id", j.ID,
		"kind", j.Kind,
		"max_attempts", j.MaxAttempts,
		"delay", delay)
	return j, nil
}

// Cancel marks a job cancelled. Pending jobs transition directly and
// are never claimed; running jobs get the cancel flag, which the
// handler's poller observes within one poll interval. Cancelled jobs
// never retry. Returns true if the job was pending and is now finished.
func (q *Queue) Cancel(ctx context.Context, jobID string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Pending → cancelled, so the claim query can never see it again.
	count, err := q.client.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(job.StatusPending)).
		SetStatus(job.StatusCancelled).
		SetCancelRequested(true).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to cancel pending job: %w", err)
	}
	if count > 0 {
		return true, nil
	}

	// Running → flag only; the owning worker finishes the transition.
	_, err = q.client.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(job.StatusRunning)).
		SetCancelRequested(true).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to flag running job for cancel: %w", err)
	}
	return false, nil
}

// CancelByRunID cancels every live job bound to a run (or suite run).
// Returns how many pending jobs were finished outright.
func (q *Queue) CancelByRunID(ctx context.Context, runID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	finished, err := q.client.Job.Update().
		Where(job.RunIDEQ(runID), job.StatusEQ(job.StatusPending)).
		SetStatus(job.StatusCancelled).
		SetCancelRequested(true).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel pending jobs for run %s: %w", runID, err)
	}

	_, err = q.client.Job.Update().
		Where(job.RunIDEQ(runID), job.StatusEQ(job.StatusRunning)).
		SetCancelRequested(true).
		Save(writeCtx)
	if err != nil {
		return finished, fmt.Errorf("failed to flag running jobs for run %s: %w", runID, err)
	}
	return finished, nil
}

// GetJob fetches a job row.
func (q *Queue) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := q.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("job %s not found: %w", jobID, err)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// KindForMode maps a run's execution mode to the job kind that executes
// it. Callers creating retry or API-initiated runs use this so the
// dispatch in the executor stays the single source of mode semantics.
func KindForMode(mode run.ExecutionMode) job.Kind {
	switch mode {
	case run.ExecutionModeAgent:
		return job.KindExecuteAgent
	case run.ExecutionModeHybrid:
		return job.KindExecuteHybrid
	default:
		return job.KindExecute
	}
}

// ownerIDFromPayload extracts the denormalized cancel-lookup key.
// Suite jobs carry suite_run_id; everything else carries run_id.
func ownerIDFromPayload(payload map[string]interface{}) string {
	if id, ok := payload["run_id"].(string); ok && id != "" {
		return id
	}
	if id, ok := payload["suite_run_id"].(string); ok && id != "" {
		return id
	}
	return ""
}

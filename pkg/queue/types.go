// Package queue provides the durable job queue and worker pool.
//
// Jobs are rows in the jobs table. Workers claim pending jobs with
// FOR UPDATE SKIP LOCKED, hold a renewable lock lease while a handler
// runs, and write the job's terminal status when it returns. The orphan
// detector requeues jobs whose lease expired without renewal.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/job"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrClaimRateLimited indicates this worker spent its per-minute claim budget.
	ErrClaimRateLimited = errors.New("claim rate limited")
)

// JobExecutor is the interface for job processing.
//
// The executor owns the ENTIRE run lifecycle internally:
//   - Transitions the run to RUNNING (skipping execution if the run is
//     already terminal, e.g. a retried job whose run was cancelled)
//   - Dispatches by job kind, reports progress at phase boundaries,
//     and publishes run events
//   - Writes the run's terminal status together with job progress=100
//     in one transaction
//
// The worker only handles: claiming, lease renewal, the job's terminal
// status, and retry scheduling.
type JobExecutor interface {
	Execute(ctx context.Context, j *ent.Job) *ExecutionResult
}

// ExecutionResult is lightweight — just the job's terminal state.
// Run rows, step timelines, and artifacts were already written by the
// executor during processing.
//
// Status semantics:
//   - completed: the handler finished; the linked run reached a
//     terminal status (which may be FAILED — a failing test is still a
//     successfully processed job)
//   - failed: an infrastructure error; the worker retries with backoff
//     while attempts remain
//   - cancelled: cancellation was observed; never retried
type ExecutionResult struct {
	Status job.Status
	Error  error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	QueueDepthByKind map[string]int `json:"queue_depth_by_kind,omitempty"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}

package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/suiterun"
	"github.com/dappsmith/conductor/pkg/events"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for jobs whose lock lease
// expired. All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running jobs with expired leases and
// requeues them (attempt preserved — the claim already consumed one),
// or fails them when the claim budget is spent.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	now := time.Now()

	orphans, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.LockExpiresAtNotNil(),
			job.LockExpiresAtLT(now),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, j := range orphans {
		if err := recoverOrphanedJob(ctx, p.client, p.publisher, j, now, orphanReason(j)); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", j.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

func orphanReason(j *ent.Job) string {
	podID := "unknown"
	if j.LockedBy != nil {
		podID = *j.LockedBy
	}
	lastHeartbeat := "unknown"
	if j.LastHeartbeatAt != nil {
		lastHeartbeat = j.LastHeartbeatAt.Format(time.RFC3339)
	}
	return fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)
}

// recoverOrphanedJob requeues a single expired job, or fails it when no
// attempts remain. The requeue is guarded on the lease still being
// expired so a live renewal racing the scan wins.
func recoverOrphanedJob(ctx context.Context, client *ent.Client, publisher *events.EventPublisher, j *ent.Job, threshold time.Time, reason string) error {
	log := slog.With("job_id", j.ID, "kind", j.Kind, "attempt", j.Attempt)

	if j.Attempt < j.MaxAttempts {
		count, err := client.Job.Update().
			Where(
				job.IDEQ(j.ID),
				job.StatusEQ(job.StatusRunning),
				job.LockExpiresAtLT(threshold),
			).
			SetStatus(job.StatusPending).
			SetNextAttemptAt(time.Now()).
			SetLastError(reason).
			ClearLockedBy().
			ClearLockExpiresAt().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to requeue orphaned job: %w", err)
		}
		if count > 0 {
			log.Warn("Orphaned job requeued", "reason", reason)
		}
		return nil
	}

	count, err := client.Job.Update().
		Where(
			job.IDEQ(j.ID),
			job.StatusEQ(job.StatusRunning),
			job.LockExpiresAtLT(threshold),
		).
		SetStatus(job.StatusFailed).
		SetCompletedAt(time.Now()).
		SetLastError(reason).
		ClearLockExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail orphaned job: %w", err)
	}
	if count == 0 {
		return nil
	}

	log.Warn("Orphaned job failed, claim budget spent", "reason", reason)

	// The handler died with it, so nothing else will finish the run.
	if j.RunID != nil && *j.RunID != "" {
		finalizeOrphanedOwner(ctx, client, publisher, *j.RunID, reason)
	}
	return nil
}

// finalizeOrphanedOwner writes TIMEOUT on the run (or suite run) a dead
// job can no longer finish. Guarded: an already-terminal owner keeps
// its earlier outcome.
func finalizeOrphanedOwner(ctx context.Context, client *ent.Client, publisher *events.EventPublisher, ownerID, reason string) {
	now := time.Now()

	if strings.HasPrefix(ownerID, "suite_") {
		count, err := client.SuiteRun.Update().
			Where(suiterun.IDEQ(ownerID), suiterun.StatusIn(suiterun.StatusPending, suiterun.StatusRunning)).
			SetStatus(suiterun.StatusTimedOut).
			SetCompletedAt(now).
			SetErrorMessage(reason).
			Save(ctx)
		if err != nil {
			slog.Error("Failed to time out orphaned suite run", "suite_run_id", ownerID, "error", err)
			return
		}
		if count == 0 || publisher == nil {
			return
		}
		sr, err := client.SuiteRun.Get(ctx, ownerID)
		if err != nil {
			return
		}
		if err := publisher.PublishSuiteStatus(ctx, ownerID, events.SuiteStatusPayload{
			Type:         events.EventTypeSuiteStatus,
			SuiteRunID:   ownerID,
			Status:       suiterun.StatusTimedOut,
			TotalTests:   sr.TotalTests,
			PassedTests:  sr.PassedTests,
			FailedTests:  sr.FailedTests,
			ErrorMessage: reason,
			Timestamp:    now.Format(time.RFC3339Nano),
		}); err != nil {
			slog.Warn("Failed to publish orphaned suite status", "suite_run_id", ownerID, "error", err)
		}
		return
	}

	count, err := client.Run.Update().
		Where(run.IDEQ(ownerID), run.StatusIn(run.StatusPending, run.StatusRunning)).
		SetStatus(run.StatusTimedOut).
		SetProgress(100).
		SetCompletedAt(now).
		SetErrorMessage(reason).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to time out orphaned run", "run_id", ownerID, "error", err)
		return
	}
	if count == 0 || publisher == nil {
		return
	}
	r, err := client.Run.Get(ctx, ownerID)
	if err != nil {
		return
	}
	payload := events.RunStatusPayload{
		Type:         events.EventTypeRunStatus,
		RunID:        ownerID,
		SpecID:       r.SpecID,
		Status:       run.StatusTimedOut,
		ErrorMessage: reason,
		Timestamp:    now.Format(time.RFC3339Nano),
	}
	if r.SuiteRunID != nil {
		payload.SuiteRunID = *r.SuiteRunID
	}
	if err := publisher.PublishRunStatus(ctx, ownerID, payload); err != nil {
		slog.Warn("Failed to publish orphaned run status", "run_id", ownerID, "error", err)
	}
}

// CleanupStartupOrphans recovers jobs this pod held when it previously
// crashed. Jobs with attempts remaining go back to pending for any
// worker to pick up; exhausted ones fail and their runs time out.
// Called once during startup, before the worker pool begins processing.
// publisher may be nil.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string, publisher *events.EventPublisher) error {
	orphans, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.LockedByEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	reason := fmt.Sprintf("Orphaned: pod %s restarted while job was running", podID)
	// A far-future threshold makes the guarded updates match every job
	// this pod held, renewed lease or not — the old process is gone.
	threshold := time.Now().Add(24 * time.Hour)
	for _, j := range orphans {
		if err := recoverOrphanedJob(ctx, client, publisher, j, threshold, reason); err != nil {
			slog.Error("Failed to recover startup orphan",
				"job_id", j.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", j.ID, "kind", j.Kind)
	}

	return nil
}

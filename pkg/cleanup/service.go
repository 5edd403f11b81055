// Package cleanup enforces the retention policy on a cron schedule.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/queue"
	"github.com/dappsmith/conductor/pkg/sandbox"
	"github.com/dappsmith/conductor/pkg/services"
)

// Soft-deleted projects become unrecoverable after this grace period.
const projectPurgeAge = 24 * time.Hour

// Deps wires the sweep's collaborators. Supervisor may be nil (API-only
// pods have no stream ports to reclaim).
type Deps struct {
	Retention  *config.RetentionConfig
	Storage    *config.StorageConfig
	Runs       *services.RunService
	Events     *services.EventService
	Projects   *services.ProjectService
	Queue      *queue.Queue
	Supervisor *sandbox.Supervisor
}

// Service runs periodic retention sweeps: old terminal runs and their
// blobs, event rows past their TTL, finished jobs beyond the per-kind
// bound, soft-deleted projects, stale staging directories, and stream
// ports whose holder died.
//
// Every task is idempotent and safe to run from multiple pods.
type Service struct {
	deps   Deps
	cron   *cron.Cron
	logger *slog.Logger
}

// NewService creates a new cleanup service.
func NewService(deps Deps) *Service {
	return &Service{
		deps:   deps,
		logger: slog.Default().With("component", "cleanup"),
	}
}

// Start schedules the sweep per the configured cron expression.
func (s *Service) Start() error {
	if s.cron != nil {
		return nil
	}
	c := cron.New()
	if _, err := c.AddFunc(s.deps.Retention.SweepSchedule, s.Sweep); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.deps.Retention.SweepSchedule, err)
	}
	c.Start()
	s.cron = c

	s.logger.Info("Cleanup service started",
		"schedule", s.deps.Retention.SweepSchedule,
		"run_retention_days", s.deps.Retention.RunRetentionDays,
		"event_max_age", s.deps.Retention.EventMaxAge)
	return nil
}

// Stop halts the schedule and waits for an in-flight sweep to finish.
func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("Cleanup service stopped")
}

// Sweep runs one full retention pass. Tasks are independent: a failing
// task logs and the rest still run.
func (s *Service) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	s.purgeOldRuns(ctx)
	s.trimEvents(ctx)
	s.trimJobs(ctx)
	s.purgeProjects(ctx)
	s.sweepStaging()
	s.reclaimPorts()
}

func (s *Service) purgeOldRuns(ctx context.Context) {
	count, err := s.deps.Runs.PurgeOldRuns(ctx, s.deps.Retention.RunRetentionDays)
	if err != nil {
		s.logger.Error("Retention: run purge failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: purged old runs", "count", count)
	}
}

func (s *Service) trimEvents(ctx context.Context) {
	count, err := s.deps.Events.CleanupOldEvents(ctx, s.deps.Retention.EventMaxAge)
	if err != nil {
		s.logger.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: cleaned up old events", "count", count)
	}
}

func (s *Service) trimJobs(ctx context.Context) {
	count, err := s.deps.Queue.TrimFinished(ctx)
	if err != nil {
		s.logger.Error("Retention: job trim failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: trimmed finished jobs", "count", count)
	}
}

func (s *Service) purgeProjects(ctx context.Context) {
	count, err := s.deps.Projects.PurgeDeletedProjects(ctx, projectPurgeAge)
	if err != nil {
		s.logger.Error("Retention: project purge failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: purged soft-deleted projects", "count", count)
	}
}

// sweepStaging removes per-run staging directories nothing has written
// to within StagingMaxAge. Active runs keep their directory fresh, so
// only crash leftovers age out.
func (s *Service) sweepStaging() {
	base := s.deps.Storage.ArtifactsBasePath
	entries, err := os.ReadDir(base)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("Retention: staging sweep failed", "path", base, "error", err)
		}
		return
	}

	cutoff := time.Now().Add(-s.deps.Retention.StagingMaxAge)
	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(base, entry.Name())); err != nil {
			s.logger.Warn("Retention: failed to remove staging directory",
				"dir", entry.Name(), "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.logger.Info("Retention: removed stale staging directories", "count", removed)
	}
}

func (s *Service) reclaimPorts() {
	if s.deps.Supervisor == nil {
		return
	}
	s.deps.Supervisor.Ports().Reclaim()
}

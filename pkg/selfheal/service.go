// Package selfheal regenerates failed specs. When a run ends FAILED
// and its spec still has attempt budget, the service snapshots the
// failure (code, error, log tail, screenshots), classifies it, asks the
// generator for a repaired version, and queues a retry run on the new
// spec. Each regeneration is a new Spec row linked through
// parent_spec_id, so the heal history of a test is its spec lineage.
package selfheal

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/pkg/generator"
	"github.com/dappsmith/conductor/pkg/models"
	"github.com/dappsmith/conductor/pkg/queue"
	"github.com/dappsmith/conductor/pkg/services"
)

const (
	// logsTail bounds how much log text rides along to the generator.
	logsTail = 3000

	// maxScreenshots caps the screenshot artifacts attached to the
	// failure context, newest first.
	maxScreenshots = 5
)

// Deps bundles what the service needs.
type Deps struct {
	Runs       *services.RunService
	Specs      *services.SpecService
	Recordings *services.RecordingService
	Artifacts  *services.ArtifactService
	Queue      *queue.Queue
	Generator  generator.Generator
}

// Service is the self-heal regenerator. It implements queue.Healer.
type Service struct {
	runs       *services.RunService
	specs      *services.SpecService
	recordings *services.RecordingService
	artifacts  *services.ArtifactService
	queue      *queue.Queue
	generator  generator.Generator
}

// NewService creates the regenerator.
func NewService(deps Deps) *Service {
	return &Service{
		runs:       deps.Runs,
		specs:      deps.Specs,
		recordings: deps.Recordings,
		artifacts:  deps.Artifacts,
		queue:      deps.Queue,
		generator:  deps.Generator,
	}
}

// Heal regenerates the spec behind a failed run and queues a retry.
// Returning nil means the cycle is settled, including the cases where
// nothing should happen (run not FAILED, attempt budget exhausted,
// generator output rejected). An error means the job should retry.
func (s *Service) Heal(ctx context.Context, runID string) error {
	log := slog.With("run_id", runID)

	r, err := s.runs.GetRun(ctx, runID, false)
	if err != nil {
		if err == services.ErrNotFound {
			log.Warn("Run no longer exists, nothing to heal")
			return nil
		}
		return fmt.Errorf("failed to load run: %w", err)
	}
	if r.Status != run.StatusFailed {
		log.Info("Run is not FAILED, skipping self-heal", "status", r.Status)
		return nil
	}

	sp, err := s.specs.GetSpec(ctx, r.SpecID)
	if err != nil {
		if err == services.ErrNotFound {
			log.Warn("Spec no longer exists, nothing to heal", "spec_id", r.SpecID)
			return nil
		}
		return fmt.Errorf("failed to load spec: %w", err)
	}
	if sp.Attempt >= sp.MaxAttempts {
		log.Info("Spec attempt budget exhausted, not healing",
			"spec_id", sp.ID, "attempt", sp.Attempt, "max_attempts", sp.MaxAttempts)
		return nil
	}

	failure := s.collect(ctx, r, sp)
	analysis := generator.FailureAnalysis{
		Class: failure.FailureClass,
		Hints: matchedHints(failure.Error + "\n" + failure.Logs),
	}
	log.Info("Regenerating failed spec",
		"spec_id", sp.ID, "version", sp.Version, "class", failure.FailureClass)

	out, err := s.generator.Regenerate(ctx, analysis, failure)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("generator regenerate failed: %w", err)
	}
	if verr := out.Validate(); verr != nil {
		// A rejected output is a settled outcome: the reason is logged
		// and the failed spec keeps its remaining attempts.
		log.Warn("Discarding regenerated spec", "spec_id", sp.ID, "reason", verr)
		return nil
	}

	child, err := s.specs.CreateHealedSpec(ctx, sp, out.Code, failure)
	if err != nil {
		return fmt.Errorf("failed to store healed spec: %w", err)
	}

	retry, err := s.runs.CreateRun(ctx, models.CreateRunRequest{
		SpecID:        child.ID,
		ExecutionMode: models.ModeToAPI(r.ExecutionMode),
		IsAutoRetry:   true,
	})
	if err != nil {
		return fmt.Errorf("failed to create retry run: %w", err)
	}
	if _, err := s.queue.Enqueue(ctx, queue.KindForMode(r.ExecutionMode),
		map[string]interface{}{"run_id": retry.ID}, nil); err != nil {
		return fmt.Errorf("failed to enqueue retry run: %w", err)
	}

	log.Info("Queued self-heal retry",
		"spec_id", child.ID, "version", child.Version, "attempt", child.Attempt,
		"retry_run_id", retry.ID)
	return nil
}

// collect snapshots the failure for the generator and for the healed
// spec's failure_context column. Everything beyond code and error is
// best effort.
func (s *Service) collect(ctx context.Context, r *ent.Run, sp *ent.Spec) models.FailureContext {
	failure := models.FailureContext{
		RunID:        r.ID,
		PreviousCode: sp.Code,
	}
	if r.ErrorMessage != nil {
		failure.Error = *r.ErrorMessage
	}
	if r.Logs != nil {
		failure.Logs = tail(*r.Logs, logsTail)
	}
	failure.FailureClass = Classify(failure.Error + "\n" + failure.Logs)

	if rec, err := s.recordings.GetRecording(ctx, sp.RecordingID); err == nil {
		failure.DappURL = rec.URL
	} else {
		slog.Warn("Failed to resolve recording for failure context",
			"spec_id", sp.ID, "error", err)
	}
	failure.Screenshots = s.latestScreenshots(ctx, r.ID)
	return failure
}

// latestScreenshots returns up to maxScreenshots of the run's newest
// screenshot artifacts, base64-encoded.
func (s *Service) latestScreenshots(ctx context.Context, runID string) []string {
	arts, err := s.artifacts.ListArtifacts(ctx, runID, "screenshot")
	if err != nil {
		slog.Warn("Failed to list screenshots for failure context", "run_id", runID, "error", err)
		return nil
	}
	if len(arts) > maxScreenshots {
		arts = arts[len(arts)-maxScreenshots:]
	}

	shots := make([]string, 0, len(arts))
	for _, a := range arts {
		_, rc, err := s.artifacts.OpenArtifact(ctx, a.ID)
		if err != nil {
			slog.Warn("Failed to open screenshot artifact", "artifact_id", a.ID, "error", err)
			continue
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			slog.Warn("Failed to read screenshot artifact", "artifact_id", a.ID, "error", err)
			continue
		}
		shots = append(shots, base64.StdEncoding.EncodeToString(data))
	}
	return shots
}

// tail keeps the last n bytes of s, cutting at the boundary.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

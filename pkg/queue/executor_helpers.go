package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/suiterun"
	"github.com/dappsmith/conductor/pkg/events"
	"github.com/dappsmith/conductor/pkg/models"
	"github.com/dappsmith/conductor/pkg/runner"
	"github.com/dappsmith/conductor/pkg/sandbox"
	"github.com/dappsmith/conductor/pkg/services"
)

// publishTimeout bounds one best-effort event publish.
const publishTimeout = 5 * time.Second

// runSession bundles the per-run callbacks a sandbox execution hands
// to the hybrid executor or the agent loop: step events and screenshot
// sinks that land in the artifact store.
type runSession struct {
	e     *RunExecutor
	runID string
	sb    *sandbox.Sandbox
	seq   atomic.Int64
}

func newRunSession(e *RunExecutor, runID string, sb *sandbox.Sandbox) *runSession {
	return &runSession{e: e, runID: runID, sb: sb}
}

// onStep publishes one finished step. Agent-recovered passes surface
// as "healed" so the dashboard can distinguish them from scripted
// passes.
func (s *runSession) onStep(sr models.StepResult) {
	status := sr.Status
	if sr.Mode == models.StepModeAgent && sr.Status == models.StepStatusPassed {
		status = "healed"
	}
	publishRunStep(s.e.publisher, s.runID, events.RunStepPayload{
		StepIndex:  sr.Step,
		StepName:   sr.Description,
		Source:     sr.Mode,
		Status:     status,
		DurationMs: int64(sr.DurationMs),
		Error:      sr.Error,
	})
}

// stepScreenshot captures the page at a step boundary and stores it as
// a screenshot artifact. Best effort: a capture failure returns "".
func (s *runSession) stepScreenshot(ctx context.Context, step int) string {
	png, err := s.sb.Page().Screenshot(ctx)
	if err != nil {
		slog.Warn("Step screenshot failed", "run_id", s.runID, "step", step, "error", err)
		return ""
	}
	name := fmt.Sprintf("step-%02d.png", step)
	if !s.e.saveScreenshot(s.runID, name, png) {
		return ""
	}
	return name
}

// agentScreenshot is the toolset's on-demand capture sink.
func (s *runSession) agentScreenshot(_ context.Context, png []byte) (string, error) {
	name := fmt.Sprintf("agent-%03d.png", s.seq.Add(1))
	if !s.e.saveScreenshot(s.runID, name, png) {
		return "", fmt.Errorf("failed to store screenshot %s", name)
	}
	return name, nil
}

// saveScreenshot stores one capture and announces the artifact.
func (e *RunExecutor) saveScreenshot(runID, name string, png []byte) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	a, err := e.artifacts.SaveArtifactBytes(ctx, runID, "screenshot", name, png)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return true
		}
		slog.Warn("Failed to store screenshot", "run_id", runID, "name", name, "error", err)
		return false
	}
	publishRunArtifact(e.publisher, runID, a)
	return true
}

// uploadLogArtifact persists the captured output as a log artifact.
// Runs before any other artifact row so the store never references
// logs that do not exist.
func (e *RunExecutor) uploadLogArtifact(runID, logs string) {
	if logs == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	a, err := e.artifacts.SaveArtifactBytes(ctx, runID, "log", "run.log", []byte(logs))
	if err != nil {
		if !errors.Is(err, services.ErrAlreadyExists) {
			slog.Warn("Failed to store run log", "run_id", runID, "error", err)
		}
		return
	}
	publishRunArtifact(e.publisher, runID, a)
}

// uploadSweptArtifacts uploads what the artifact sweep found in the
// run's working directory. Each upload writes the blob before the row;
// a failed upload skips the row entirely.
func (e *RunExecutor) uploadSweptArtifacts(runID string, arts []runner.Artifact) {
	for _, art := range arts {
		f, err := os.Open(art.Path)
		if err != nil {
			slog.Warn("Failed to open swept artifact", "run_id", runID, "path", art.Path, "error", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		a, err := e.artifacts.SaveArtifact(ctx, runID, art.Type, art.Name, f, art.SizeBytes)
		cancel()
		_ = f.Close()
		if err != nil {
			if !errors.Is(err, services.ErrAlreadyExists) {
				slog.Warn("Failed to upload artifact", "run_id", runID, "name", art.Name, "error", err)
			}
			continue
		}
		publishRunArtifact(e.publisher, runID, a)
	}
}

// uploadTrace seals the tracer's archive and stores it. Runs during
// teardown, so it works on its own clock.
func (e *RunExecutor) uploadTrace(runID string, sb *sandbox.Sandbox) {
	if !sb.Tracing().Active() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data, err := sb.Tracing().Stop(ctx)
	if err != nil {
		slog.Warn("Failed to stop tracing", "run_id", runID, "error", err)
		return
	}
	if len(data) == 0 {
		return
	}
	a, err := e.artifacts.SaveArtifactBytes(ctx, runID, "trace", "trace.zip", data)
	if err != nil {
		if !errors.Is(err, services.ErrAlreadyExists) {
			slog.Warn("Failed to store trace archive", "run_id", runID, "error", err)
		}
		return
	}
	publishRunArtifact(e.publisher, runID, a)
}

// reportProgress writes a phase boundary to the run row, the job row,
// and the event feed. All three are best effort; the run's progress
// reaches 100 authoritatively with the terminal write.
func (e *RunExecutor) reportProgress(jobID, runID string, progress int, phase string) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if progress < progressFinalizing {
		if err := e.runs.SetProgress(ctx, runID, progress); err != nil {
			slog.Warn("Failed to set run progress", "run_id", runID, "error", err)
		}
	}
	if _, err := e.client.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(job.StatusRunning)).
		SetProgress(progress).
		Save(ctx); err != nil {
		slog.Warn("Failed to set job progress", "job_id", jobID, "error", err)
	}
	publishRunProgress(e.publisher, runID, progress, phase)
}

// ────────────────────────────────────────────────────────────
// Event publishing — always context.Background(): events about a
// cancelled run must still go out.
// ────────────────────────────────────────────────────────────

func publishRunStatus(pub *events.EventPublisher, r *ent.Run, status run.Status, errMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	payload := events.RunStatusPayload{
		Type:         events.EventTypeRunStatus,
		RunID:        r.ID,
		SpecID:       r.SpecID,
		Status:       status,
		ErrorMessage: errMsg,
		Timestamp:    eventTimestamp(),
	}
	if r.SuiteRunID != nil {
		payload.SuiteRunID = *r.SuiteRunID
	}
	if err := pub.PublishRunStatus(ctx, r.ID, payload); err != nil {
		slog.Warn("Failed to publish run status", "run_id", r.ID, "status", status, "error", err)
	}
}

func publishRunProgress(pub *events.EventPublisher, runID string, progress int, phase string) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err := pub.PublishRunProgress(ctx, runID, events.RunProgressPayload{
		Type:      events.EventTypeRunProgress,
		RunID:     runID,
		Progress:  progress,
		Phase:     phase,
		Timestamp: eventTimestamp(),
	})
	if err != nil {
		slog.Warn("Failed to publish run progress", "run_id", runID, "error", err)
	}
}

func publishRunStep(pub *events.EventPublisher, runID string, payload events.RunStepPayload) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	payload.Type = events.EventTypeRunStep
	payload.RunID = runID
	payload.Timestamp = eventTimestamp()
	if err := pub.PublishRunStep(ctx, runID, payload); err != nil {
		slog.Warn("Failed to publish run step", "run_id", runID, "step", payload.StepIndex, "error", err)
	}
}

func publishRunArtifact(pub *events.EventPublisher, runID string, a *ent.Artifact) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err := pub.PublishRunArtifact(ctx, runID, events.RunArtifactPayload{
		Type:         events.EventTypeRunArtifact,
		RunID:        runID,
		ArtifactID:   a.ID,
		ArtifactType: a.ArtifactType,
		Name:         a.Name,
		SizeBytes:    a.SizeBytes,
		Timestamp:    eventTimestamp(),
	})
	if err != nil {
		slog.Warn("Failed to publish artifact event", "run_id", runID, "artifact_id", a.ID, "error", err)
	}
}

func publishSuiteStatus(pub *events.EventPublisher, sr *ent.SuiteRun, status suiterun.Status, passed, failed int, errMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err := pub.PublishSuiteStatus(ctx, sr.ID, events.SuiteStatusPayload{
		Type:         events.EventTypeSuiteStatus,
		SuiteRunID:   sr.ID,
		Status:       status,
		TotalTests:   sr.TotalTests,
		PassedTests:  passed,
		FailedTests:  failed,
		ErrorMessage: errMsg,
		Timestamp:    eventTimestamp(),
	})
	if err != nil {
		slog.Warn("Failed to publish suite status", "suite_run_id", sr.ID, "status", status, "error", err)
	}
}

func eventTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

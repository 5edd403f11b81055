package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/events"
	"github.com/dappsmith/conductor/pkg/masking"
	"github.com/dappsmith/conductor/pkg/notify"
	"github.com/dappsmith/conductor/pkg/runner"
	"github.com/dappsmith/conductor/pkg/sandbox"
	"github.com/dappsmith/conductor/pkg/services"
)

// Progress milestones reported at phase boundaries. The terminal write
// commits 100 together with the run status.
const (
	progressClaimed      = 10
	progressSandboxReady = 20
	progressExecuting    = 80
	progressFinalizing   = 100
)

// Phase names carried on run.progress events.
const (
	phaseClaimed      = "claimed"
	phaseSandboxReady = "sandbox_ready"
	phaseExecuting    = "executing"
	phaseFinalizing   = "finalizing"
)

// Healer repairs a failed run's spec and enqueues the retry. Implemented
// by selfheal.Service; nil disables the self-heal kind.
type Healer interface {
	Heal(ctx context.Context, runID string) error
}

// ExecutorDeps wires the run executor's collaborators.
type ExecutorDeps struct {
	Config     *config.Config
	Client     *ent.Client
	Queue      *Queue
	Runs       *services.RunService
	Specs      *services.SpecService
	Suites     *services.SuiteRunService
	Projects   *services.ProjectService
	Artifacts  *services.ArtifactService
	Publisher  *events.EventPublisher
	Supervisor *sandbox.Supervisor
	Runner     *runner.Runner
	Masker     *masking.Service

	// Healer may be nil; self-heal jobs then complete with a warning.
	Healer Healer

	// Notifier may be nil; failure notifications are then skipped.
	Notifier *notify.Service

	PodID string
}

// RunExecutor is the production JobExecutor. It owns the whole run
// lifecycle: the RUNNING transition, sandbox or child-process
// execution, patch write-back, artifact upload, the terminal status,
// and the self-heal follow-up.
type RunExecutor struct {
	cfg        *config.Config
	client     *ent.Client
	queue      *Queue
	runs       *services.RunService
	specs      *services.SpecService
	suites     *services.SuiteRunService
	projects   *services.ProjectService
	artifacts  *services.ArtifactService
	publisher  *events.EventPublisher
	supervisor *sandbox.Supervisor
	runner     *runner.Runner
	masker     *masking.Service
	healer     Healer
	notifier   *notify.Service
	podID      string
}

// NewRunExecutor creates the executor.
func NewRunExecutor(deps ExecutorDeps) *RunExecutor {
	return &RunExecutor{
		cfg:        deps.Config,
		client:     deps.Client,
		queue:      deps.Queue,
		runs:       deps.Runs,
		specs:      deps.Specs,
		suites:     deps.Suites,
		projects:   deps.Projects,
		artifacts:  deps.Artifacts,
		publisher:  deps.Publisher,
		supervisor: deps.Supervisor,
		runner:     deps.Runner,
		masker:     deps.Masker,
		healer:     deps.Healer,
		notifier:   deps.Notifier,
		podID:      deps.PodID,
	}
}

// Execute dispatches by job kind. See ExecutionResult for the job
// status semantics: a FAILED or TIMEOUT run still completes its job.
func (e *RunExecutor) Execute(ctx context.Context, j *ent.Job) *ExecutionResult {
	switch j.Kind {
	case job.KindExecute, job.KindExecuteHybrid, job.KindExecuteAgent:
		return e.executeRun(ctx, j)
	case job.KindExecuteSuite:
		return e.executeSuite(ctx, j)
	case job.KindSelfHeal:
		return e.executeSelfHeal(ctx, j)
	default:
		return &ExecutionResult{
			Status: job.StatusFailed,
			Error:  fmt.Errorf("unknown job kind %q", j.Kind),
		}
	}
}

// ────────────────────────────────────────────────────────────
// executeRun — execute / execute-hybrid / execute-agent
// ────────────────────────────────────────────────────────────

func (e *RunExecutor) executeRun(ctx context.Context, j *ent.Job) *ExecutionResult {
	runID, _ := j.Payload["run_id"].(string)
	if runID == "" {
		return &ExecutionResult{
			Status: job.StatusFailed,
			Error:  fmt.Errorf("%s job %s has no run_id in payload", j.Kind, j.ID),
		}
	}
	log := slog.With("run_id", runID, "job_id", j.ID, "kind", j.Kind)

	r, err := e.runs.GetRun(ctx, runID, false)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// Run row deleted between enqueue and claim; nothing to do.
			log.Warn("Run no longer exists, completing job")
			return &ExecutionResult{Status: job.StatusCompleted}
		}
		return &ExecutionResult{Status: job.StatusFailed, Error: err}
	}

	claimed, err := e.runs.MarkRunning(ctx, runID, e.podID, "")
	if err != nil {
		return &ExecutionResult{Status: job.StatusFailed, Error: err}
	}
	if !claimed {
		// Retried job whose run already reached a terminal status
		// (most often cancelled while the job waited for its backoff).
		log.Info("Run already terminal, skipping execution")
		return &ExecutionResult{Status: job.StatusCompleted}
	}

	publishRunStatus(e.publisher, r, run.StatusRunning, "")
	e.reportProgress(j.ID, runID, progressClaimed, phaseClaimed)

	// Cooperative cancellation: a poller flips the run context when the
	// record store shows cancel_requested.
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	stopWatch := e.watchRunCancel(runCtx, runID, cancelRun)
	defer stopWatch()

	out := e.process(runCtx, j, r)

	// Cancellation and timeout override whatever the handler reported.
	if res := e.mapInterruption(ctx, runCtx, r, out); res != nil {
		return res
	}

	if out.infraErr != nil {
		// Infrastructure fault: the job retries with backoff. Only when
		// the retry budget is spent does the run itself go FAILED, so a
		// transient fault never burns the spec's self-heal attempts.
		if j.Attempt >= j.MaxAttempts {
			e.finishRun(r, run.StatusFailed, services.CompleteRunFields{
				ErrorMessage: out.infraErr.Error(),
			})
		}
		return &ExecutionResult{Status: job.StatusFailed, Error: out.infraErr}
	}

	e.reportProgress(j.ID, runID, progressFinalizing, phaseFinalizing)
	applied := e.finishRun(r, out.status, out.fields)
	if applied && out.status == run.StatusPassed {
		e.recordPass(out.spec, out.recording)
	}
	if applied && out.status == run.StatusFailed && e.healEligible(out) {
		e.enqueueSelfHeal(runID)
	}

	log.Info("Run finished", "status", out.status, "took_over", out.tookOver)
	return &ExecutionResult{Status: job.StatusCompleted}
}

// runOutcome is what a mode handler hands back to executeRun.
type runOutcome struct {
	status run.Status
	fields services.CompleteRunFields

	spec      *ent.Spec
	recording *ent.Recording

	// tookOver means hybrid patches repaired the spec already.
	tookOver bool

	// noHeal marks failures regeneration cannot fix: sandbox bootstrap
	// faults and fatal-class spec errors.
	noHeal bool

	// infraErr routes the job onto the retry path; the run stays
	// RUNNING until either a retry succeeds or attempts run out.
	infraErr error
}

// process resolves the run's inputs and dispatches to the mode handler.
func (e *RunExecutor) process(ctx context.Context, j *ent.Job, r *ent.Run) *runOutcome {
	sp, err := e.specs.ResolveForRun(ctx, r.SpecID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrNotRunnable) {
			return &runOutcome{
				status: run.StatusFailed,
				fields: services.CompleteRunFields{ErrorMessage: fmt.Sprintf("spec %s is not runnable: %v", r.SpecID, err)},
				noHeal: true,
			}
		}
		return &runOutcome{infraErr: err}
	}

	in, err := e.resolveInputs(ctx, sp)
	if err != nil {
		return &runOutcome{infraErr: err}
	}

	switch r.ExecutionMode {
	case run.ExecutionModeSpec:
		return e.runSpecMode(ctx, j, r, sp, in)
	case run.ExecutionModeHybrid:
		return e.runSessionMode(ctx, j, r, sp, in, true)
	case run.ExecutionModeAgent:
		return e.runSessionMode(ctx, j, r, sp, in, false)
	default:
		return &runOutcome{infraErr: fmt.Errorf("unknown execution mode %q", r.ExecutionMode)}
	}
}

// runInputs are the resolved execution ingredients shared by all modes.
type runInputs struct {
	project   *ent.Project
	recording *ent.Recording
	seed      string

	// code is the program to execute: the spec itself, or a composite
	// with the project's connection prelude for flow recordings.
	code string

	// preludeSteps is the connection prelude's step count, for mapping
	// composite step numbers back onto the flow spec.
	preludeSteps int
}

// resolveInputs walks spec → recording → project, unseals the wallet
// seed, and assembles the program text. A flow recording whose project
// carries a live connection pointer runs as a composite; a stale
// pointer was already cleared by ResolveConnectionSpec and the flow
// runs standalone.
func (e *RunExecutor) resolveInputs(ctx context.Context, sp *ent.Spec) (*runInputs, error) {
	proj, err := e.specs.ProjectForSpec(ctx, sp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project for spec %s: %w", sp.ID, err)
	}
	rec, err := e.client.Recording.Query().
		Where(recording.HasSpecsWith(spec.IDEQ(sp.ID))).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recording for spec %s: %w", sp.ID, err)
	}
	seed, err := e.projects.UnsealSeed(ctx, proj.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal wallet seed: %w", err)
	}

	in := &runInputs{project: proj, recording: rec, seed: seed, code: sp.Code}
	if rec.RecordingType == recording.RecordingTypeFlow {
		conn, err := e.projects.ResolveConnectionSpec(ctx, proj)
		if err != nil {
			return nil, err
		}
		if conn != nil {
			in.code = runner.BuildComposite(conn.Code, sp.Code)
			in.preludeSteps = countSteps(conn.Code)
		}
	}
	return in, nil
}

// mapInterruption turns a cancelled or deadline-exceeded handler into
// the right terminal pair. CANCELLED wins over everything; a timeout
// writes TIMED_OUT but still completes the job — re-running a spent
// time budget buys nothing.
func (e *RunExecutor) mapInterruption(ctx, runCtx context.Context, r *ent.Run, out *runOutcome) *ExecutionResult {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		fields := services.CompleteRunFields{
			ErrorMessage: fmt.Sprintf("run timed out after %s", e.cfg.Queue.RunTimeout),
		}
		if out != nil {
			fields = mergeTimeline(fields, out.fields)
		}
		e.finishRun(r, run.StatusTimedOut, fields)
		return &ExecutionResult{Status: job.StatusCompleted}

	case runCtx.Err() != nil:
		// Either an API cancel (poller or pool registry) or a lost lock
		// lease; both end the run as CANCELLED without retry.
		fields := services.CompleteRunFields{ErrorMessage: "cancelled"}
		if out != nil {
			fields = mergeTimeline(fields, out.fields)
		}
		e.finishRun(r, run.StatusCancelled, fields)
		return &ExecutionResult{Status: job.StatusCancelled, Error: context.Canceled}
	}
	return nil
}

// mergeTimeline keeps whatever partial timeline and logs the handler
// accumulated before the interruption.
func mergeTimeline(base, partial services.CompleteRunFields) services.CompleteRunFields {
	base.Logs = partial.Logs
	base.DurationMs = partial.DurationMs
	base.AgentData = partial.AgentData
	base.StreamState = partial.StreamState
	return base
}

// finishRun writes the terminal status (progress 100 inside) and
// publishes the transition. Returns whether this writer won; a false
// means an earlier terminal write (usually CANCELLED) is preserved.
func (e *RunExecutor) finishRun(r *ent.Run, status run.Status, fields services.CompleteRunFields) bool {
	writeCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	applied, err := e.runs.CompleteRun(writeCtx, r.ID, status, fields)
	if err != nil {
		slog.Error("Failed to write terminal run status", "run_id", r.ID, "status", status, "error", err)
		return false
	}
	if !applied {
		slog.Info("Run already terminal, preserving earlier outcome", "run_id", r.ID, "attempted", status)
		return false
	}
	publishRunStatus(e.publisher, r, status, fields.ErrorMessage)
	e.notifier.NotifyRunFinished(writeCtx, notify.RunFinishedInput{
		RunID:        r.ID,
		SpecID:       r.SpecID,
		Status:       string(status),
		ErrorMessage: fields.ErrorMessage,
		IsAutoRetry:  r.IsAutoRetry,
	})
	return true
}

// recordPass applies the side effects of a PASSED run: the spec is
// promoted to tested, and a passing connection run becomes the
// project's connection prelude unless one is already set.
func (e *RunExecutor) recordPass(sp *ent.Spec, rec *ent.Recording) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.specs.MarkTested(ctx, sp.ID); err != nil {
		slog.Warn("Failed to mark spec tested", "spec_id", sp.ID, "error", err)
	}
	if rec.RecordingType == recording.RecordingTypeConnection {
		set, err := e.projects.MaybeSetConnectionSpec(ctx, rec.ProjectID, sp.ID)
		if err != nil {
			slog.Warn("Failed to set project connection spec", "project_id", rec.ProjectID, "error", err)
		} else if set {
			slog.Info("Project connection spec set", "project_id", rec.ProjectID, "spec_id", sp.ID)
		}
	}
}

// healEligible gates the self-heal follow-up: FAILED runs only, never
// after a hybrid takeover (the patches already repaired the spec),
// never for bootstrap or fatal-class failures, and only while the spec
// lineage has attempts left.
func (e *RunExecutor) healEligible(out *runOutcome) bool {
	if e.healer == nil || out.tookOver || out.noHeal || out.spec == nil {
		return false
	}
	return out.spec.Attempt < out.spec.MaxAttempts
}

func (e *RunExecutor) enqueueSelfHeal(runID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := e.queue.Enqueue(ctx, job.KindSelfHeal, map[string]interface{}{"run_id": runID}, nil); err != nil {
		slog.Error("Failed to enqueue self-heal job", "run_id", runID, "error", err)
		return
	}
	slog.Info("Self-heal enqueued", "run_id", runID)
}

// ────────────────────────────────────────────────────────────
// executeSelfHeal — self-heal
// ────────────────────────────────────────────────────────────

func (e *RunExecutor) executeSelfHeal(ctx context.Context, j *ent.Job) *ExecutionResult {
	runID, _ := j.Payload["run_id"].(string)
	if runID == "" {
		return &ExecutionResult{
			Status: job.StatusFailed,
			Error:  fmt.Errorf("self-heal job %s has no run_id in payload", j.ID),
		}
	}
	if e.healer == nil {
		slog.Warn("Self-heal requested but no healer is configured", "run_id", runID)
		return &ExecutionResult{Status: job.StatusCompleted}
	}

	if err := e.healer.Heal(ctx, runID); err != nil {
		if ctx.Err() != nil {
			return &ExecutionResult{Status: job.StatusCancelled, Error: ctx.Err()}
		}
		return &ExecutionResult{Status: job.StatusFailed, Error: err}
	}
	return &ExecutionResult{Status: job.StatusCompleted}
}

// watchRunCancel polls the run's cancel flag and cancels the handler
// context when it is set. The returned stop function ends the poller.
func (e *RunExecutor) watchRunCancel(ctx context.Context, runID string, cancel context.CancelFunc) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(e.cfg.Queue.CancelPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				requested, err := e.runs.IsCancelRequested(ctx, runID)
				if err != nil {
					slog.Warn("Cancel poll failed", "run_id", runID, "error", err)
					continue
				}
				if requested {
					slog.Info("Cancel requested, aborting handler", "run_id", runID)
					cancel()
					return
				}
			}
		}
	}()
	var stopOnce sync.Once
	return func() { stopOnce.Do(func() { close(done) }) }
}

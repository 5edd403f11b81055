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
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/suiterun"
	"github.com/dappsmith/conductor/pkg/hybrid"
	"github.com/dappsmith/conductor/pkg/models"
	"github.com/dappsmith/conductor/pkg/sandbox"
	"github.com/dappsmith/conductor/pkg/services"
)

// ────────────────────────────────────────────────────────────
// executeSuite — execute-suite
// ────────────────────────────────────────────────────────────

// executeSuite runs a suite's specs serially through one shared
// sandbox. Children execute fully scripted (no agent fallback, no
// patches); a failing child records its result and the suite moves on.
func (e *RunExecutor) executeSuite(ctx context.Context, j *ent.Job) *ExecutionResult {
	suiteID, _ := j.Payload["suite_run_id"].(string)
	if suiteID == "" {
		return &ExecutionResult{
			Status: job.StatusFailed,
			Error:  fmt.Errorf("execute-suite job %s has no suite_run_id in payload", j.ID),
		}
	}
	log := slog.With("suite_run_id", suiteID, "job_id", j.ID)

	sr, err := e.suites.GetSuiteRun(ctx, suiteID, false)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Warn("Suite run no longer exists, completing job")
			return &ExecutionResult{Status: job.StatusCompleted}
		}
		return &ExecutionResult{Status: job.StatusFailed, Error: err}
	}

	claimed, err := e.suites.MarkRunning(ctx, suiteID)
	if err != nil {
		return &ExecutionResult{Status: job.StatusFailed, Error: err}
	}
	if !claimed {
		log.Info("Suite run already terminal, skipping execution")
		return &ExecutionResult{Status: job.StatusCompleted}
	}
	publishSuiteStatus(e.publisher, sr, suiterun.StatusRunning, 0, 0, "")
	e.setJobProgress(j.ID, progressClaimed)

	// Suite cancellation rides the job's cancel flag; the suite run has
	// no per-child pollers.
	suiteCtx, cancelSuite := context.WithCancel(ctx)
	defer cancelSuite()
	stopWatch := e.watchJobCancel(suiteCtx, j.ID, cancelSuite)
	defer stopWatch()

	project, err := e.projects.GetProject(ctx, sr.ProjectID)
	if err != nil {
		return &ExecutionResult{Status: job.StatusFailed, Error: err}
	}
	seed, err := e.projects.UnsealSeed(ctx, project.ID)
	if err != nil {
		return &ExecutionResult{Status: job.StatusFailed, Error: err}
	}

	// One bootstrap for the whole suite. A suite that cannot get a
	// sandbox fails as a unit with the bootstrap diagnostic.
	sb, err := e.supervisor.Open(suiteCtx, sandbox.OpenOptions{
		RunID:         suiteID,
		DappURL:       project.DappURL,
		SeedPhrase:    seed,
		WalletAddress: project.WalletAddress,
	})
	if err != nil {
		if res := e.finishSuiteInterrupted(ctx, suiteCtx, sr, 0, 0); res != nil {
			return res
		}
		var be *sandbox.BootstrapError
		if errors.As(err, &be) {
			e.finishSuite(sr, suiterun.StatusFailed, 0, 0, err.Error())
			return &ExecutionResult{Status: job.StatusCompleted}
		}
		return &ExecutionResult{Status: job.StatusFailed, Error: err}
	}
	defer func() {
		if cerr := sb.Close(); cerr != nil {
			log.Warn("Sandbox teardown failed", "error", cerr)
		}
	}()
	e.setJobProgress(j.ID, progressSandboxReady)

	engine := hybrid.NewEngine(sb.Page(), sb.Wallet())
	passed, failed := 0, 0
	for i, specID := range sr.SpecIds {
		if suiteCtx.Err() != nil {
			break
		}
		ok := e.runSuiteChild(suiteCtx, sr, i, specID, engine, sb)
		if suiteCtx.Err() != nil {
			break
		}
		if rerr := e.suites.RecordChildResult(context.Background(), suiteID, ok); rerr != nil {
			log.Warn("Failed to record child result", "spec_id", specID, "error", rerr)
		}
		if ok {
			passed++
		} else {
			failed++
		}
		publishSuiteStatus(e.publisher, sr, suiterun.StatusRunning, passed, failed, "")
	}

	if res := e.finishSuiteInterrupted(ctx, suiteCtx, sr, passed, failed); res != nil {
		return res
	}

	e.setJobProgress(j.ID, progressExecuting)
	status := suiterun.StatusPassed
	errMsg := ""
	if failed > 0 {
		status = suiterun.StatusFailed
		errMsg = fmt.Sprintf("%d of %d tests failed", failed, sr.TotalTests)
	}
	e.finishSuite(sr, status, passed, failed, errMsg)
	log.Info("Suite finished", "status", status, "passed", passed, "failed", failed)
	return &ExecutionResult{Status: job.StatusCompleted}
}

// runSuiteChild executes one suite member as its own run row. Returns
// whether the child passed.
func (e *RunExecutor) runSuiteChild(ctx context.Context, sr *ent.SuiteRun, index int, specID string, engine *hybrid.Engine, sb *sandbox.Sandbox) bool {
	log := slog.With("suite_run_id", sr.ID, "spec_id", specID, "suite_index", index)

	idx := index
	r, err := e.runs.CreateRun(ctx, models.CreateRunRequest{
		SpecID:        specID,
		ExecutionMode: models.ModeHybrid,
		SuiteRunID:    sr.ID,
		SuiteIndex:    &idx,
	})
	if err != nil {
		log.Error("Failed to create suite child run", "error", err)
		return false
	}
	if _, err := e.runs.MarkRunning(ctx, r.ID, e.podID, ""); err != nil {
		log.Error("Failed to mark child run running", "error", err)
		return false
	}
	publishRunStatus(e.publisher, r, run.StatusRunning, "")

	sp, err := e.specs.ResolveForRun(ctx, specID)
	if err != nil {
		e.finishRun(r, run.StatusFailed, services.CompleteRunFields{
			ErrorMessage: fmt.Sprintf("spec %s is not runnable: %v", specID, err),
		})
		return false
	}
	in, err := e.resolveInputs(ctx, sp)
	if err != nil {
		e.finishRun(r, run.StatusFailed, services.CompleteRunFields{ErrorMessage: err.Error()})
		return false
	}

	// Fresh start on the shared tab: each child begins at its dApp URL.
	if in.recording.URL != "" {
		if nerr := sb.Page().Navigate(ctx, in.recording.URL); nerr != nil && ctx.Err() == nil {
			e.finishRun(r, run.StatusFailed, services.CompleteRunFields{
				ErrorMessage: fmt.Sprintf("failed to open dApp: %v", nerr),
			})
			return false
		}
	}

	session := newRunSession(e, r.ID, sb)
	hx := hybrid.NewExecutor(hybrid.Options{
		Engine:     engine,
		DappURL:    in.recording.URL,
		OnStep:     session.onStep,
		Screenshot: session.stepScreenshot,
	})
	started := time.Now()
	res, rerr := hx.Run(ctx, in.code)

	fields := services.CompleteRunFields{
		ErrorMessage: res.Error,
		DurationMs:   int(time.Since(started).Milliseconds()),
		AgentData:    models.AgentData{Steps: res.Steps}.ToMap(),
	}
	if rerr != nil {
		status := run.StatusCancelled
		fields.ErrorMessage = "cancelled"
		if errors.Is(rerr, context.DeadlineExceeded) {
			status = run.StatusTimedOut
			fields.ErrorMessage = "suite time budget exhausted"
		}
		e.finishRun(r, status, fields)
		return false
	}

	if res.Passed {
		e.finishRun(r, run.StatusPassed, fields)
		e.recordPass(sp, in.recording)
		return true
	}
	e.finishRun(r, run.StatusFailed, fields)
	return false
}

// finishSuiteInterrupted resolves a cancelled or timed-out suite job.
// Nil means the suite ran to its own conclusion.
func (e *RunExecutor) finishSuiteInterrupted(ctx, suiteCtx context.Context, sr *ent.SuiteRun, passed, failed int) *ExecutionResult {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		e.finishSuite(sr, suiterun.StatusTimedOut, passed, failed,
			"suite time budget exhausted")
		return &ExecutionResult{Status: job.StatusCompleted}
	case suiteCtx.Err() != nil:
		e.finishSuite(sr, suiterun.StatusCancelled, passed, failed, "cancelled")
		return &ExecutionResult{Status: job.StatusCancelled, Error: context.Canceled}
	}
	return nil
}

// finishSuite writes the suite's terminal status and publishes it.
// Guarded like run terminals: an earlier writer wins.
func (e *RunExecutor) finishSuite(sr *ent.SuiteRun, status suiterun.Status, passed, failed int, errMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	applied, err := e.suites.CompleteSuiteRun(ctx, sr.ID, status, errMsg)
	if err != nil {
		slog.Error("Failed to write terminal suite status", "suite_run_id", sr.ID, "status", status, "error", err)
		return
	}
	if !applied {
		slog.Info("Suite run already terminal, preserving earlier outcome", "suite_run_id", sr.ID, "attempted", status)
		return
	}
	publishSuiteStatus(e.publisher, sr, status, passed, failed, errMsg)
}

// setJobProgress mirrors phase boundaries onto the job row for queue
// introspection. Suite runs have no single run row to carry progress.
func (e *RunExecutor) setJobProgress(jobID string, progress int) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if _, err := e.client.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(job.StatusRunning)).
		SetProgress(progress).
		Save(ctx); err != nil {
		slog.Warn("Failed to set job progress", "job_id", jobID, "error", err)
	}
}

// watchJobCancel polls the job's cancel flag. Suite cancellation is
// requested against the suite id (CancelByRunID), which flags this job.
func (e *RunExecutor) watchJobCancel(ctx context.Context, jobID string, cancel context.CancelFunc) func() {
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
				j, err := e.client.Job.Get(ctx, jobID)
				if err != nil {
					slog.Warn("Cancel poll failed", "job_id", jobID, "error", err)
					continue
				}
				if j.CancelRequested {
					slog.Info("Cancel requested, aborting suite handler", "job_id", jobID)
					cancel()
					return
				}
			}
		}
	}()
	var stopOnce sync.Once
	return func() { stopOnce.Do(func() { close(done) }) }
}

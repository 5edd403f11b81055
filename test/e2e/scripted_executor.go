package e2e

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/suiterun"
	"github.com/dappsmith/conductor/pkg/events"
	"github.com/dappsmith/conductor/pkg/models"
	"github.com/dappsmith/conductor/pkg/queue"
	"github.com/dappsmith/conductor/pkg/services"
)

// RunScript describes how the scripted executor should play one spec.
type RunScript struct {
	// Status is the terminal status to write. Zero value means PASSED.
	Status run.Status

	// ErrorMessage is persisted alongside a FAILED outcome.
	ErrorMessage string

	// Delay simulates execution time before the terminal write.
	Delay time.Duration

	// Block holds the run until the job context is cancelled — by an
	// API cancel or the job timeout. Used for cancellation tests.
	Block bool
}

// ScriptedRunExecutor is a queue.JobExecutor that plays back scripted
// outcomes instead of driving a browser sandbox. Everything around it
// is real: the queue claims jobs, the services write run records, and
// events flow through PostgreSQL NOTIFY to websocket subscribers. Only
// the sandbox-and-spec layer is replaced.
//
// Scripts are keyed by spec id (known before any run exists); specs
// without a script use the default, which passes.
type ScriptedRunExecutor struct {
	podID     string
	runs      *services.RunService
	suites    *services.SuiteRunService
	publisher *events.EventPublisher

	mu       sync.Mutex
	bySpec   map[string]RunScript
	fallback RunScript
	jobIDs   []string
}

// NewScriptedRunExecutor creates an executor whose default script
// passes every run instantly.
func NewScriptedRunExecutor(podID string, runs *services.RunService, suites *services.SuiteRunService, publisher *events.EventPublisher) *ScriptedRunExecutor {
	return &ScriptedRunExecutor{
		podID:     podID,
		runs:      runs,
		suites:    suites,
		publisher: publisher,
		bySpec:    make(map[string]RunScript),
		fallback:  RunScript{Status: run.StatusPassed},
	}
}

// Script sets the outcome for runs of the given spec.
func (x *ScriptedRunExecutor) Script(specID string, s RunScript) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.bySpec[specID] = s
}

// SetDefault replaces the fallback script for unscripted specs.
func (x *ScriptedRunExecutor) SetDefault(s RunScript) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.fallback = s
}

// ExecutedJobIDs returns the ids of every job this executor processed,
// in claim order. Multi-replica tests use it to check exactly-once
// claiming across pools.
func (x *ScriptedRunExecutor) ExecutedJobIDs() []string {
	x.mu.Lock()
	defer x.mu.Unlock()
	out := make([]string, len(x.jobIDs))
	copy(out, x.jobIDs)
	return out
}

func (x *ScriptedRunExecutor) scriptFor(specID string) RunScript {
	x.mu.Lock()
	defer x.mu.Unlock()
	s, ok := x.bySpec[specID]
	if !ok {
		s = x.fallback
	}
	if s.Status == "" {
		s.Status = run.StatusPassed
	}
	return s
}

// Execute implements queue.JobExecutor.
func (x *ScriptedRunExecutor) Execute(ctx context.Context, j *ent.Job) *queue.ExecutionResult {
	x.mu.Lock()
	x.jobIDs = append(x.jobIDs, j.ID)
	x.mu.Unlock()

	switch j.Kind {
	case job.KindExecuteSuite:
		return x.executeSuite(ctx, j)
	case job.KindSelfHeal:
		// Regeneration is out of scope for the scripted pipeline.
		return &queue.ExecutionResult{Status: job.StatusCompleted}
	default:
		return x.executeRun(ctx, j)
	}
}

func (x *ScriptedRunExecutor) executeRun(ctx context.Context, j *ent.Job) *queue.ExecutionResult {
	runID, _ := j.Payload["run_id"].(string)
	if runID == "" {
		return &queue.ExecutionResult{
			Status: job.StatusFailed,
			Error:  fmt.Errorf("%s job %s has no run_id in payload", j.Kind, j.ID),
		}
	}

	r, err := x.runs.GetRun(ctx, runID, false)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return &queue.ExecutionResult{Status: job.StatusCompleted}
		}
		return &queue.ExecutionResult{Status: job.StatusFailed, Error: err}
	}
	claimed, err := x.runs.MarkRunning(ctx, runID, x.podID, "")
	if err != nil {
		return &queue.ExecutionResult{Status: job.StatusFailed, Error: err}
	}
	if !claimed {
		return &queue.ExecutionResult{Status: job.StatusCompleted}
	}
	x.publishStatus(r, run.StatusRunning, "")

	script := x.scriptFor(r.SpecID)
	if err := x.play(ctx, script); err != nil {
		return x.finishInterrupted(ctx, r)
	}

	x.finishRun(r, script.Status, script.ErrorMessage)
	return &queue.ExecutionResult{Status: job.StatusCompleted}
}

// play waits out the script's delay or block, returning the context
// error when the run is interrupted instead.
func (x *ScriptedRunExecutor) play(ctx context.Context, s RunScript) error {
	if s.Block {
		<-ctx.Done()
		return ctx.Err()
	}
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

// finishInterrupted mirrors the real executor's interruption mapping:
// a deadline writes TIMED_OUT and completes the job, anything else
// writes CANCELLED without retry.
func (x *ScriptedRunExecutor) finishInterrupted(ctx context.Context, r *ent.Run) *queue.ExecutionResult {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		x.finishRun(r, run.StatusTimedOut, "run timed out")
		return &queue.ExecutionResult{Status: job.StatusCompleted}
	}
	x.finishRun(r, run.StatusCancelled, "cancelled")
	return &queue.ExecutionResult{Status: job.StatusCancelled, Error: context.Canceled}
}

// finishRun writes the terminal status on a background context so a
// cancelled job context cannot lose the write.
func (x *ScriptedRunExecutor) finishRun(r *ent.Run, status run.Status, errMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	applied, err := x.runs.CompleteRun(ctx, r.ID, status, services.CompleteRunFields{
		ErrorMessage: errMsg,
	})
	if err != nil || !applied {
		return
	}
	x.publishStatus(r, status, errMsg)
}

func (x *ScriptedRunExecutor) publishStatus(r *ent.Run, status run.Status, errMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload := events.RunStatusPayload{
		Type:         events.EventTypeRunStatus,
		RunID:        r.ID,
		SpecID:       r.SpecID,
		Status:       status,
		ErrorMessage: errMsg,
		Timestamp:    time.Now().UTC().Format(time.RFC3339Nano),
	}
	if r.SuiteRunID != nil {
		payload.SuiteRunID = *r.SuiteRunID
	}
	_ = x.publisher.PublishRunStatus(ctx, r.ID, payload)
}

// ────────────────────────────────────────────────────────────
// Suites
// ────────────────────────────────────────────────────────────

func (x *ScriptedRunExecutor) executeSuite(ctx context.Context, j *ent.Job) *queue.ExecutionResult {
	suiteID, _ := j.Payload["suite_run_id"].(string)
	if suiteID == "" {
		return &queue.ExecutionResult{
			Status: job.StatusFailed,
			Error:  fmt.Errorf("execute-suite job %s has no suite_run_id in payload", j.ID),
		}
	}

	sr, err := x.suites.GetSuiteRun(ctx, suiteID, false)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return &queue.ExecutionResult{Status: job.StatusCompleted}
		}
		return &queue.ExecutionResult{Status: job.StatusFailed, Error: err}
	}
	claimed, err := x.suites.MarkRunning(ctx, suiteID)
	if err != nil {
		return &queue.ExecutionResult{Status: job.StatusFailed, Error: err}
	}
	if !claimed {
		return &queue.ExecutionResult{Status: job.StatusCompleted}
	}
	x.publishSuite(sr, suiterun.StatusRunning, 0, 0, "")

	passed, failed := 0, 0
	for i, specID := range sr.SpecIds {
		if ctx.Err() != nil {
			break
		}
		ok := x.runSuiteChild(ctx, sr, i, specID)
		if ctx.Err() != nil {
			break
		}
		_ = x.suites.RecordChildResult(context.Background(), suiteID, ok)
		if ok {
			passed++
		} else {
			failed++
		}
		x.publishSuite(sr, suiterun.StatusRunning, passed, failed, "")
	}

	if ctx.Err() != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			x.finishSuite(sr, suiterun.StatusTimedOut, passed, failed, "suite time budget exhausted")
			return &queue.ExecutionResult{Status: job.StatusCompleted}
		}
		x.finishSuite(sr, suiterun.StatusCancelled, passed, failed, "cancelled")
		return &queue.ExecutionResult{Status: job.StatusCancelled, Error: context.Canceled}
	}

	status := suiterun.StatusPassed
	errMsg := ""
	if failed > 0 {
		status = suiterun.StatusFailed
		errMsg = fmt.Sprintf("%d of %d tests failed", failed, sr.TotalTests)
	}
	x.finishSuite(sr, status, passed, failed, errMsg)
	return &queue.ExecutionResult{Status: job.StatusCompleted}
}

func (x *ScriptedRunExecutor) runSuiteChild(ctx context.Context, sr *ent.SuiteRun, index int, specID string) bool {
	idx := index
	r, err := x.runs.CreateRun(ctx, models.CreateRunRequest{
		SpecID:        specID,
		ExecutionMode: models.ModeHybrid,
		SuiteRunID:    sr.ID,
		SuiteIndex:    &idx,
	})
	if err != nil {
		return false
	}
	if _, err := x.runs.MarkRunning(ctx, r.ID, x.podID, ""); err != nil {
		return false
	}
	x.publishStatus(r, run.StatusRunning, "")

	script := x.scriptFor(specID)
	if err := x.play(ctx, script); err != nil {
		x.finishRun(r, run.StatusCancelled, "cancelled")
		return false
	}
	x.finishRun(r, script.Status, script.ErrorMessage)
	return script.Status == run.StatusPassed
}

func (x *ScriptedRunExecutor) finishSuite(sr *ent.SuiteRun, status suiterun.Status, passed, failed int, errMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	applied, err := x.suites.CompleteSuiteRun(ctx, sr.ID, status, errMsg)
	if err != nil || !applied {
		return
	}
	x.publishSuite(sr, status, passed, failed, errMsg)
}

func (x *ScriptedRunExecutor) publishSuite(sr *ent.SuiteRun, status suiterun.Status, passed, failed int, errMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_ = x.publisher.PublishSuiteStatus(ctx, sr.ID, events.SuiteStatusPayload{
		Type:         events.EventTypeSuiteStatus,
		SuiteRunID:   sr.ID,
		Status:       status,
		TotalTests:   sr.TotalTests,
		PassedTests:  passed,
		FailedTests:  failed,
		ErrorMessage: errMsg,
		Timestamp:    time.Now().UTC().Format(time.RFC3339Nano),
	})
}

package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/pkg/agent"
	"github.com/dappsmith/conductor/pkg/hybrid"
	"github.com/dappsmith/conductor/pkg/models"
	"github.com/dappsmith/conductor/pkg/runner"
	"github.com/dappsmith/conductor/pkg/sandbox"
	"github.com/dappsmith/conductor/pkg/services"
)

// ────────────────────────────────────────────────────────────
// SPEC mode — deterministic child process
// ────────────────────────────────────────────────────────────

func (e *RunExecutor) runSpecMode(ctx context.Context, j *ent.Job, r *ent.Run, sp *ent.Spec, in *runInputs) *runOutcome {
	out := &runOutcome{spec: sp, recording: in.recording}
	workDir := filepath.Join(e.cfg.Storage.ArtifactsBasePath, r.ID)

	// The child owns its browser, so staging the program is all the
	// setup this mode needs.
	e.reportProgress(j.ID, r.ID, progressSandboxReady, phaseSandboxReady)
	e.reportProgress(j.ID, r.ID, progressExecuting, phaseExecuting)

	headless := e.cfg.Sandbox.Headless() && r.StreamingMode != run.StreamingModeVnc
	res, err := e.runner.Execute(ctx, runner.Request{
		RunID:       r.ID,
		ProgramText: in.code,
		SeedPhrase:  in.seed,
		Headless:    headless,
		WorkDir:     workDir,
	})
	if err != nil {
		if ctx.Err() != nil {
			return out
		}
		out.infraErr = err
		return out
	}

	// Logs go into the blob store before any artifact row exists.
	e.uploadLogArtifact(r.ID, res.Logs)
	e.uploadSweptArtifacts(r.ID, res.Artifacts)
	if err := os.RemoveAll(workDir); err != nil {
		slog.Warn("Failed to remove staging directory", "run_id", r.ID, "error", err)
	}

	out.fields = services.CompleteRunFields{
		ErrorMessage: res.Error,
		Logs:         res.Logs,
		DurationMs:   int(res.DurationMs),
	}
	switch {
	case res.TimedOut:
		out.status = run.StatusTimedOut
	case res.Passed:
		out.status = run.StatusPassed
	default:
		out.status = run.StatusFailed
		if _, fatal := hybrid.FatalClass(res.Error); fatal {
			// Code bugs and dead deployments fail fast; regenerating
			// the spec cannot fix either.
			out.noHeal = true
		}
	}
	return out
}

// ────────────────────────────────────────────────────────────
// HYBRID / AGENT mode — supervised sandbox session
// ────────────────────────────────────────────────────────────

// runSessionMode drives one sandbox-backed execution. withRecovery
// selects the hybrid step walker; without it the full agent loop runs
// the program.
func (e *RunExecutor) runSessionMode(ctx context.Context, j *ent.Job, r *ent.Run, sp *ent.Spec, in *runInputs, withRecovery bool) *runOutcome {
	out := &runOutcome{spec: sp, recording: in.recording}

	streaming := r.StreamingMode == run.StreamingModeVnc
	sb, err := e.supervisor.Open(ctx, sandbox.OpenOptions{
		RunID:         r.ID,
		DappURL:       in.recording.URL,
		SeedPhrase:    in.seed,
		WalletAddress: in.project.WalletAddress,
		Streaming:     streaming,
	})
	if err != nil {
		if ctx.Err() != nil {
			return out
		}
		var be *sandbox.BootstrapError
		if errors.As(err, &be) {
			out.status = run.StatusFailed
			out.fields = services.CompleteRunFields{ErrorMessage: err.Error()}
			out.noHeal = true
			return out
		}
		out.infraErr = err
		return out
	}
	defer func() {
		if cerr := sb.Close(); cerr != nil {
			slog.Warn("Sandbox teardown failed", "run_id", r.ID, "error", cerr)
		}
	}()

	e.reportProgress(j.ID, r.ID, progressSandboxReady, phaseSandboxReady)
	e.persistStreamState(r.ID, sb)

	if terr := sb.Tracing().Start(ctx); terr != nil {
		slog.Warn("Failed to start tracing", "run_id", r.ID, "error", terr)
	}
	defer e.uploadTrace(r.ID, sb)

	session := newRunSession(e, r.ID, sb)

	provider, err := e.cfg.Planner.Providers.Get(e.cfg.Planner.AgentProvider)
	if err != nil {
		out.infraErr = fmt.Errorf("agent planner provider: %w", err)
		return out
	}
	planner, err := agent.NewAnthropicPlanner(provider)
	if err != nil {
		out.infraErr = fmt.Errorf("failed to build planner: %w", err)
		return out
	}
	cost := agent.NewCostTracker(e.cfg.Planner.Providers)
	tools := agent.NewToolset(sb.Page(), sb.Wallet(), e.masker, session.agentScreenshot)
	engine := hybrid.NewEngine(sb.Page(), sb.Wallet())

	e.reportProgress(j.ID, r.ID, progressExecuting, phaseExecuting)
	started := time.Now()

	if withRecovery {
		recovery := agent.NewStepRecovery(agent.RecoveryOptions{
			Planner: planner,
			Tools:   tools,
			Cost:    cost,
		})
		hx := hybrid.NewExecutor(hybrid.Options{
			Engine:     engine,
			Recovery:   recovery,
			DappURL:    in.recording.URL,
			OnStep:     session.onStep,
			Screenshot: session.stepScreenshot,
		})
		res, rerr := hx.Run(ctx, in.code)
		patched := e.writeBackPatches(sp, in, res)
		out.fields = services.CompleteRunFields{
			ErrorMessage: res.Error,
			DurationMs:   int(time.Since(started).Milliseconds()),
			AgentData: models.AgentData{
				Steps:       res.Steps,
				APICalls:    res.Calls,
				Cost:        cost.Summary(),
				TookOver:    res.TookOver,
				PatchedStep: patched,
			}.ToMap(),
		}
		out.tookOver = res.TookOver
		if rerr != nil {
			return out
		}
		if res.Passed {
			out.status = run.StatusPassed
		} else {
			out.status = run.StatusFailed
			if res.Fatal != "" {
				out.noHeal = true
			}
		}
		return out
	}

	goals := stepGoals(in.code, engine)
	budget := agent.NewCallBudget(e.cfg.Planner.MaxAPICalls, e.cfg.Planner.MaxCallsPerStep)
	loop := agent.NewLoop(agent.LoopOptions{
		Planner:    planner,
		Tools:      tools,
		Budget:     budget,
		Cost:       cost,
		OnStep:     session.onStep,
		Screenshot: session.stepScreenshot,
	})
	outcome, rerr := loop.Run(ctx, goals)
	out.fields = services.CompleteRunFields{
		ErrorMessage: outcome.Error,
		DurationMs:   int(time.Since(started).Milliseconds()),
		AgentData: models.AgentData{
			Steps:    outcome.Steps,
			APICalls: outcome.APICalls,
			Cost:     outcome.Cost,
		}.ToMap(),
	}
	if rerr != nil {
		return out
	}
	if outcome.Passed {
		out.status = run.StatusPassed
	} else {
		out.status = run.StatusFailed
	}
	return out
}

// writeBackPatches remaps composite step numbers onto the flow spec
// and applies the surviving patches against the version this run
// resolved. A concurrent editor wins: the patches are dropped with a
// warning rather than clobbering newer code.
func (e *RunExecutor) writeBackPatches(sp *ent.Spec, in *runInputs, res *hybrid.Result) []int {
	patches := hybrid.RemapPatches(res.Patches, in.preludeSteps)
	if len(patches) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := e.specs.ApplyPatches(ctx, sp.ID, sp.Version, patches); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			slog.Warn("Spec changed during the run, discarding patches",
				"spec_id", sp.ID, "base_version", sp.Version, "patches", len(patches))
		} else {
			slog.Error("Failed to apply spec patches", "spec_id", sp.ID, "error", err)
		}
		return nil
	}

	steps := make([]int, 0, len(patches))
	for _, p := range patches {
		steps = append(steps, p.Step)
	}
	slog.Info("Spec patched from agent takeover", "spec_id", sp.ID, "steps", steps)
	return steps
}

// stepGoals compiles the program into agent loop goals. Navigation-only
// bodies become scripted closures that bypass the planner.
func stepGoals(code string, engine *hybrid.Engine) []agent.StepGoal {
	body := code
	if open, end, ok := runner.TestBodyBounds(code); ok {
		body = code[open+1 : end]
	}
	steps := hybrid.ParseSteps(body)
	goals := make([]agent.StepGoal, 0, len(steps))
	for _, s := range steps {
		goal := agent.StepGoal{
			Number:      s.Number,
			Description: s.Description,
			Code:        s.Body,
		}
		if fn, ok := engine.Scripted(s.Body); ok {
			goal.Scripted = fn
		}
		goals = append(goals, goal)
	}
	return goals
}

// countSteps parses the step count of a spec program; a program with
// no step markers is one step.
func countSteps(code string) int {
	body := code
	if open, end, ok := runner.TestBodyBounds(code); ok {
		body = code[open+1 : end]
	}
	return len(hybrid.ParseSteps(body))
}

// persistStreamState records the allocated live-view ports so the API
// can route stream viewers, and so a restart can reconstruct them.
func (e *RunExecutor) persistStreamState(runID string, sb *sandbox.Sandbox) {
	ports, ok := sb.StreamPorts()
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	state := map[string]interface{}{
		"pixel_port":   ports.Pixel,
		"control_port": ports.Control,
	}
	if err := e.runs.SaveStreamState(ctx, runID, state); err != nil {
		slog.Warn("Failed to persist stream state", "run_id", runID, "error", err)
	}
}

// Package hybrid executes generated dApp specs. Step bodies run
// through a deterministic statement engine first; when a step fails
// for a reason the script cannot anticipate, a single-step agent takes
// over, and successful takeovers are written back as spec patches so
// the next run is scripted again. Failures matching the fatal patterns
// abort the run outright.
package hybrid

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dappsmith/conductor/pkg/agent"
	"github.com/dappsmith/conductor/pkg/models"
	"github.com/dappsmith/conductor/pkg/runner"
)

// Recovery is the single-step agent surface the executor engages when
// a step fails. *agent.StepRecovery satisfies it.
type Recovery interface {
	ClearBlockers(ctx context.Context) (*agent.StepOutcome, error)
	Run(ctx context.Context, task agent.StepTask) (*agent.StepOutcome, error)
}

// Options wires one hybrid execution.
type Options struct {
	Engine *Engine
	// Recovery may be nil: suite runs execute their children fully
	// scripted, with no agent fallback.
	Recovery Recovery
	DappURL  string
	// OnStep observes each finished step, for live progress events.
	OnStep func(models.StepResult)
	// Screenshot captures a per-step screenshot and returns its staged
	// artifact path.
	Screenshot func(ctx context.Context, step int) string
}

// Result sums up one hybrid execution.
type Result struct {
	Passed  bool
	Steps   []models.StepResult
	Patches []models.SpecPatch
	// TookOver is set when at least one patch was emitted. A run the
	// agent took over is repaired by its patches, never self-healed.
	TookOver bool
	// Fatal carries the failure class when the run aborted on an error
	// recovery cannot fix.
	Fatal string
	// Calls is the planner spend across all recovery phases.
	Calls int
	Error string
}

// Executor walks a spec program step by step.
type Executor struct {
	engine     *Engine
	recovery   Recovery
	dappURL    string
	onStep     func(models.StepResult)
	screenshot func(ctx context.Context, step int) string
}

func NewExecutor(opts Options) *Executor {
	return &Executor{
		engine:     opts.Engine,
		recovery:   opts.Recovery,
		dappURL:    opts.DappURL,
		onStep:     opts.OnStep,
		screenshot: opts.Screenshot,
	}
}

// Run executes the spec program. The returned error is non-nil only
// for context cancellation; scripted failures land in the result.
func (x *Executor) Run(ctx context.Context, code string) (*Result, error) {
	body := code
	if open, end, ok := runner.TestBodyBounds(code); ok {
		body = code[open+1 : end]
	}
	steps := ParseSteps(body)
	res := &Result{}
	completed := make([]string, 0, len(steps))

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		started := time.Now()
		err := x.engine.RunStep(ctx, step.Body)
		if cerr := ctx.Err(); cerr != nil {
			return res, cerr
		}
		if err == nil {
			sr := stepResult(step, models.StepModeSpec, models.StepStatusPassed, started)
			sr.Screenshot = x.capture(ctx, step.Number)
			x.finishStep(res, sr)
			completed = append(completed, stepLabel(step))
			continue
		}

		if class, fatal := FatalClass(err.Error()); fatal {
			res.Fatal = class
			sr := stepResult(step, models.StepModeSpec, models.StepStatusFailed, started)
			sr.Error = err.Error()
			sr.Screenshot = x.capture(ctx, step.Number)
			x.finishStep(res, sr)
			res.Error = fmt.Sprintf("step %d: %v", step.Number, err)
			x.skipRemaining(res, steps[i+1:])
			break
		}

		if x.recovery == nil {
			sr := stepResult(step, models.StepModeSpec, models.StepStatusFailed, started)
			sr.Error = err.Error()
			sr.Screenshot = x.capture(ctx, step.Number)
			x.finishStep(res, sr)
			res.Error = fmt.Sprintf("step %d: %v", step.Number, err)
			x.skipRemaining(res, steps[i+1:])
			break
		}

		sr, patch := x.recover(ctx, step, err, completed, upcomingLabels(steps[i+1:]), started)
		if cerr := ctx.Err(); cerr != nil {
			return res, cerr
		}
		res.Calls += sr.AgentCalls
		if patch != nil {
			res.Patches = append(res.Patches, *patch)
		}
		x.finishStep(res, sr)
		if sr.Status == models.StepStatusFailed {
			res.Error = fmt.Sprintf("step %d: %s", step.Number, sr.Error)
			x.skipRemaining(res, steps[i+1:])
			break
		}
		completed = append(completed, stepLabel(step))
	}

	res.TookOver = len(res.Patches) > 0
	res.Passed = res.Error == "" && res.Fatal == ""
	return res, nil
}

// recover runs the three phases for one failed step: clear overlay
// blockers without touching the step itself, retry the original body,
// then hand the whole step to the agent. The returned patch is nil
// when nothing needs writing back to the spec.
func (x *Executor) recover(ctx context.Context, step Step, failure error, completed, upcoming []string, started time.Time) (models.StepResult, *models.SpecPatch) {
	calls := 0
	var blockers []agent.Action
	p1, _ := x.recovery.ClearBlockers(ctx)
	if p1 != nil {
		calls += p1.Calls
		if p1.Completed {
			blockers = p1.Actions
		}
	}
	if ctx.Err() != nil {
		sr := stepResult(step, models.StepModeAgent, models.StepStatusFailed, started)
		sr.Error, sr.AgentCalls = failure.Error(), calls
		return sr, nil
	}

	if rerr := x.engine.RunStep(ctx, step.Body); rerr == nil {
		sr := stepResult(step, models.StepModeAgent, models.StepStatusPassed, started)
		sr.AgentCalls = calls
		sr.Screenshot = x.capture(ctx, step.Number)
		if len(blockers) == 0 {
			// Pure flake: the retry passed without agent help, so
			// there is nothing to write back.
			return sr, nil
		}
		patch := &models.SpecPatch{
			Step: step.Number,
			Code: TranslateActions(blockers) + "\n" + strings.Trim(step.Body, "\n"),
		}
		return sr, patch
	}
	if ctx.Err() != nil {
		sr := stepResult(step, models.StepModeAgent, models.StepStatusFailed, started)
		sr.Error, sr.AgentCalls = failure.Error(), calls
		return sr, nil
	}

	task := agent.StepTask{
		Goal:       stepGoal(step),
		DappURL:    x.dappURL,
		FailedCode: strings.TrimSpace(step.Body),
		Error:      failure.Error(),
		Completed:  completed,
		Upcoming:   upcoming,
	}
	p3, _ := x.recovery.Run(ctx, task)
	if p3 != nil {
		calls += p3.Calls
	}
	if p3 == nil || !p3.Completed {
		reason := failure.Error()
		if p3 != nil && p3.Reason != "" {
			reason = fmt.Sprintf("%s (agent: %s)", reason, p3.Reason)
		}
		sr := stepResult(step, models.StepModeAgent, models.StepStatusFailed, started)
		sr.Error, sr.AgentCalls = reason, calls
		return sr, nil
	}

	actions := append(blockers, p3.Actions...)
	if len(actions) == 0 {
		// The agent confirmed the step's work was already done, most
		// often by a takeover of an earlier step.
		sr := stepResult(step, models.StepModeAgent, models.StepStatusSkipped, started)
		sr.AgentCalls = calls
		return sr, nil
	}
	sr := stepResult(step, models.StepModeAgent, models.StepStatusPassed, started)
	sr.AgentCalls = calls
	sr.Screenshot = x.capture(ctx, step.Number)
	return sr, &models.SpecPatch{Step: step.Number, Code: TranslateActions(actions)}
}

func (x *Executor) finishStep(res *Result, sr models.StepResult) {
	res.Steps = append(res.Steps, sr)
	if x.onStep != nil {
		x.onStep(sr)
	}
}

func (x *Executor) skipRemaining(res *Result, rest []Step) {
	for _, s := range rest {
		x.finishStep(res, models.StepResult{
			Step:        s.Number,
			Description: s.Description,
			Mode:        models.StepModeSpec,
			Status:      models.StepStatusSkipped,
		})
	}
}

func (x *Executor) capture(ctx context.Context, step int) string {
	if x.screenshot == nil {
		return ""
	}
	return x.screenshot(ctx, step)
}

func stepResult(step Step, mode, status string, started time.Time) models.StepResult {
	return models.StepResult{
		Step:        step.Number,
		Description: step.Description,
		Mode:        mode,
		Status:      status,
		DurationMs:  int(time.Since(started).Milliseconds()),
	}
}

func stepLabel(s Step) string {
	if s.Description == "" {
		return fmt.Sprintf("Step %d", s.Number)
	}
	return fmt.Sprintf("Step %d: %s", s.Number, s.Description)
}

func stepGoal(s Step) string {
	if s.Description == "" {
		return fmt.Sprintf("Complete step %d of the test", s.Number)
	}
	return s.Description
}

func upcomingLabels(rest []Step) []string {
	labels := make([]string, 0, len(rest))
	for _, s := range rest {
		labels = append(labels, stepLabel(s))
	}
	return labels
}

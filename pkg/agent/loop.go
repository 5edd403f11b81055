package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dappsmith/conductor/pkg/models"
)

// plannerRetryLimit bounds consecutive rate-limit retries of one call.
const plannerRetryLimit = 5

// plannerRetryDelay is the sleep between rate-limited retries.
const plannerRetryDelay = 5 * time.Second

// ScriptedFunc executes a purely scripted step deterministically.
type ScriptedFunc func(ctx context.Context) error

// StepGoal is one step the loop must accomplish. When Scripted is set
// the step bypasses the planner entirely and records mode "spec".
type StepGoal struct {
	Number      int
	Description string
	Code        string
	Scripted    ScriptedFunc
}

// RunOutcome is the result of a full agent run.
type RunOutcome struct {
	Passed   bool
	Steps    []models.StepResult
	APICalls int
	Cost     models.CostSummary
	Error    string
}

// LoopOptions wires the loop collaborators.
type LoopOptions struct {
	Planner Planner
	Tools   *Toolset
	Budget  *CallBudget
	Cost    *CostTracker

	// OnStep is invoked after each step result is recorded. Optional.
	OnStep func(models.StepResult)

	// Screenshot stores a step-boundary capture and returns the stored
	// name, or "". Optional.
	Screenshot func(ctx context.Context, step int) string

	// RetryDelay overrides the rate-limit sleep. Zero means the 5 s
	// default; tests shorten it.
	RetryDelay time.Duration
}

// Loop executes a run of steps by conversing with the planner. Each
// step gets a fresh conversation seeded with the step goal and a recap
// of completed steps; budgets span the whole run.
type Loop struct {
	planner    Planner
	tools      *Toolset
	budget     *CallBudget
	cost       *CostTracker
	onStep     func(models.StepResult)
	screenshot func(ctx context.Context, step int) string
	retryDelay time.Duration
}

// NewLoop builds a loop. Planner, Tools, and Budget are required; a
// nil Cost tracker disables pricing.
func NewLoop(opts LoopOptions) *Loop {
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = plannerRetryDelay
	}
	cost := opts.Cost
	if cost == nil {
		cost = NewCostTracker(nil)
	}
	return &Loop{
		planner:    opts.Planner,
		tools:      opts.Tools,
		budget:     opts.Budget,
		cost:       cost,
		onStep:     opts.OnStep,
		screenshot: opts.Screenshot,
		retryDelay: delay,
	}
}

// Run drives the steps in order. The error return is reserved for
// context cancellation; every other failure is expressed in the
// outcome so the caller can persist a FAILED run with its timeline.
func (l *Loop) Run(ctx context.Context, steps []StepGoal) (*RunOutcome, error) {
	out := &RunOutcome{}
	var completed []string

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		l.budget.ResetStep()
		started := time.Now()

		var result models.StepResult
		var verdict *testVerdict
		if step.Scripted != nil {
			result = l.runScripted(ctx, step, started)
		} else {
			result, verdict = l.runPlanned(ctx, step, completed, started)
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}

		if result.Status == models.StepStatusPassed && l.screenshot != nil {
			result.Screenshot = l.screenshot(ctx, step.Number)
		}
		l.recordStep(out, result)

		if verdict != nil {
			l.finishEarly(out, steps[i+1:], verdict)
			break
		}
		if result.Status == models.StepStatusFailed {
			if out.Error == "" {
				out.Error = fmt.Sprintf("step %d failed: %s", result.Step, result.Error)
			}
			l.failRemaining(out, steps[i+1:], result.Error)
			break
		}
		completed = append(completed, fmt.Sprintf("Step %d: %s", step.Number, step.Description))
	}

	out.APICalls = l.budget.TotalUsed()
	out.Cost = l.cost.Summary()
	if out.Error == "" {
		out.Passed = allPassed(out.Steps)
	}
	return out, nil
}

// testVerdict is an explicit test_complete emitted by the planner.
type testVerdict struct {
	passed bool
	reason string
}

func (l *Loop) runScripted(ctx context.Context, step StepGoal, started time.Time) models.StepResult {
	result := models.StepResult{
		Step:        step.Number,
		Description: step.Description,
		Mode:        models.StepModeSpec,
		Status:      models.StepStatusPassed,
	}
	if err := step.Scripted(ctx); err != nil {
		result.Status = models.StepStatusFailed
		result.Error = err.Error()
	}
	result.DurationMs = int(time.Since(started).Milliseconds())
	return result
}

func (l *Loop) runPlanned(ctx context.Context, step StepGoal, completed []string, started time.Time) (models.StepResult, *testVerdict) {
	result := models.StepResult{
		Step:        step.Number,
		Description: step.Description,
		Mode:        models.StepModeAgent,
	}
	conversation := []Message{TextMessage(RoleUser, stepGoalMessage(step, completed))}

	var verdict *testVerdict
	status, failure := l.converse(ctx, loopSystemPrompt, &conversation, func(v testVerdict) {
		verdict = &v
	})
	result.Status = status
	result.Error = failure
	result.AgentCalls = l.budget.StepUsed()
	result.DurationMs = int(time.Since(started).Milliseconds())
	return result, verdict
}

// converse runs one planner conversation to a step conclusion. The
// returned status is passed/failed; onVerdict fires when the planner
// ends the whole test instead of the step.
func (l *Loop) converse(ctx context.Context, system string, conversation *[]Message, onVerdict func(testVerdict)) (string, string) {
	for {
		if err := ctx.Err(); err != nil {
			return models.StepStatusFailed, "cancelled"
		}
		if err := l.budget.Spend(); err != nil {
			return models.StepStatusFailed, err.Error()
		}
		resp, err := completeWithRetry(ctx, l.planner, l.retryDelay, &PlannerRequest{
			System:   system,
			Tools:    Catalog(),
			Messages: *conversation,
		})
		if err != nil {
			return models.StepStatusFailed, fmt.Sprintf("planner error: %v", err)
		}
		l.cost.Record(resp.Model, resp.Usage)
		*conversation = append(*conversation, assistantMessage(resp))

		if len(resp.ToolCalls) == 0 {
			// A text-only turn does not conclude the step; nudge once
			// per turn and let the budget bound the conversation.
			*conversation = append(*conversation, TextMessage(RoleUser,
				"Continue with the step. Call step_complete or step_failed when you are done."))
			continue
		}

		var results []Block
		for _, call := range resp.ToolCalls {
			if IsControl(call.Name) {
				switch call.Name {
				case ToolStepComplete:
					return models.StepStatusPassed, ""
				case ToolStepFailed:
					return models.StepStatusFailed, call.StringArg("reason")
				case ToolTestComplete:
					v := testVerdict{passed: call.StringArg("status") == "passed", reason: call.StringArg("reason")}
					if onVerdict != nil {
						onVerdict(v)
					}
					if v.passed {
						return models.StepStatusPassed, ""
					}
					return models.StepStatusFailed, v.reason
				}
			}
			res := l.tools.Execute(ctx, call)
			results = append(results, ToolResultBlock(call.ID, res.Content, res.IsError))
		}
		*conversation = append(*conversation, Message{Role: RoleUser, Blocks: results})
	}
}

// completeWithRetry absorbs rate-limit responses with a short sleep;
// only the successful call consumed the budget slot already spent.
func completeWithRetry(ctx context.Context, planner Planner, delay time.Duration, req *PlannerRequest) (*PlannerResponse, error) {
	for attempt := 0; ; attempt++ {
		resp, err := planner.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !errors.Is(err, ErrRateLimited) || attempt >= plannerRetryLimit {
			return nil, err
		}
		slog.Warn("Planner rate limited, backing off", "attempt", attempt+1)
		if serr := sleepCtx(ctx, delay); serr != nil {
			return nil, serr
		}
	}
}

func (l *Loop) recordStep(out *RunOutcome, result models.StepResult) {
	out.Steps = append(out.Steps, result)
	if l.onStep != nil {
		l.onStep(result)
	}
}

// failRemaining marks the steps after an aborting failure. Run-budget
// exhaustion fails them; an ordinary step failure skips them.
func (l *Loop) failRemaining(out *RunOutcome, rest []StepGoal, cause string) {
	status := models.StepStatusSkipped
	if l.budget.RunExhausted() {
		status = models.StepStatusFailed
	}
	for _, step := range rest {
		l.recordStep(out, models.StepResult{
			Step:        step.Number,
			Description: step.Description,
			Mode:        models.StepModeAgent,
			Status:      status,
			Error:       cause,
		})
	}
}

// finishEarly resolves a test_complete verdict: remaining steps are
// skipped and the run takes the planner's verdict.
func (l *Loop) finishEarly(out *RunOutcome, rest []StepGoal, v *testVerdict) {
	for _, step := range rest {
		l.recordStep(out, models.StepResult{
			Step:        step.Number,
			Description: step.Description,
			Mode:        models.StepModeAgent,
			Status:      models.StepStatusSkipped,
		})
	}
	out.Passed = v.passed
	if !v.passed && out.Error == "" {
		out.Error = v.reason
		if out.Error == "" {
			out.Error = "test marked failed by agent"
		}
	}
}

func assistantMessage(resp *PlannerResponse) Message {
	var blocks []Block
	if resp.Text != "" {
		blocks = append(blocks, Block{Kind: BlockText, Text: resp.Text})
	}
	for _, call := range resp.ToolCalls {
		blocks = append(blocks, Block{
			Kind:      BlockToolUse,
			ToolID:    call.ID,
			ToolName:  call.Name,
			ToolInput: call.Input,
		})
	}
	return Message{Role: RoleAssistant, Blocks: blocks}
}

func allPassed(steps []models.StepResult) bool {
	for _, s := range steps {
		if s.Status == models.StepStatusFailed {
			return false
		}
	}
	return len(steps) > 0
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/dappsmith/conductor/pkg/config"
)

// StepTask describes one failed scripted step for the recovery agent.
type StepTask struct {
	// Goal is the step description the agent must accomplish.
	Goal string
	// DappURL is the application under test.
	DappURL string
	// FailedCode is the scripted body that failed, when one exists.
	FailedCode string
	// Error is the failure that triggered recovery.
	Error string
	// Completed and Upcoming give the surrounding step descriptions so
	// the agent can recognize work the page has already absorbed.
	Completed []string
	Upcoming  []string
}

// StepOutcome reports one recovery conversation.
type StepOutcome struct {
	Completed bool
	// Reason explains a failed outcome.
	Reason string
	// Calls is the number of planner calls consumed.
	Calls int
	// Actions are the successful state-changing tool calls in order,
	// for writing back into the spec.
	Actions []Action
}

// RecoveryOptions wires the single-step agent.
type RecoveryOptions struct {
	Planner Planner
	Tools   *Toolset
	Cost    *CostTracker

	// RetryDelay overrides the rate-limit sleep. Zero means the 5 s
	// default; tests shorten it.
	RetryDelay time.Duration
}

// StepRecovery runs a single-step agent conversation against a live
// mid-test sandbox session. Each invocation gets its own call budget
// capped at config.SingleStepCallCap; cost accrues to the shared
// tracker so the run total stays accurate.
type StepRecovery struct {
	planner    Planner
	tools      *Toolset
	cost       *CostTracker
	retryDelay time.Duration
}

// NewStepRecovery builds a recovery agent. Planner and Tools are
// required; a nil Cost tracker disables pricing.
func NewStepRecovery(opts RecoveryOptions) *StepRecovery {
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = plannerRetryDelay
	}
	cost := opts.Cost
	if cost == nil {
		cost = NewCostTracker(nil)
	}
	return &StepRecovery{
		planner:    opts.Planner,
		tools:      opts.Tools,
		cost:       cost,
		retryDelay: delay,
	}
}

// ClearBlockers asks the agent to make the page actionable without
// performing the step. Dismissals land in the outcome's actions so
// they can be written into the spec ahead of the retried step.
func (r *StepRecovery) ClearBlockers(ctx context.Context) (*StepOutcome, error) {
	return r.run(ctx, clearBlockersGoal)
}

// Run hands the whole step to the agent.
func (r *StepRecovery) Run(ctx context.Context, task StepTask) (*StepOutcome, error) {
	return r.run(ctx, recoveryOpening(task))
}

// run drives one conversation to a step_complete/step_failed verdict.
// The error return is reserved for context cancellation; the outcome
// carries actions and call counts even on a failed conversation.
func (r *StepRecovery) run(ctx context.Context, opening string) (*StepOutcome, error) {
	budget := NewCallBudget(config.SingleStepCallCap, config.SingleStepCallCap)
	r.tools.ResetActions()

	completed, reason, err := r.converse(ctx, budget, opening)
	out := &StepOutcome{
		Completed: completed,
		Reason:    reason,
		Calls:     budget.TotalUsed(),
		Actions:   r.tools.Actions(),
	}
	return out, err
}

func (r *StepRecovery) converse(ctx context.Context, budget *CallBudget, opening string) (bool, string, error) {
	conversation := []Message{TextMessage(RoleUser, opening)}
	for {
		if err := ctx.Err(); err != nil {
			return false, "cancelled", err
		}
		if err := budget.Spend(); err != nil {
			return false, err.Error(), nil
		}
		resp, err := completeWithRetry(ctx, r.planner, r.retryDelay, &PlannerRequest{
			System:   recoverySystemPrompt,
			Tools:    recoveryCatalog(),
			Messages: conversation,
		})
		if err != nil {
			return false, fmt.Sprintf("planner error: %v", err), nil
		}
		r.cost.Record(resp.Model, resp.Usage)
		conversation = append(conversation, assistantMessage(resp))

		if len(resp.ToolCalls) == 0 {
			conversation = append(conversation, TextMessage(RoleUser,
				"Continue with the goal. Call step_complete or step_failed when you are done."))
			continue
		}

		var results []Block
		for _, call := range resp.ToolCalls {
			switch call.Name {
			case ToolStepComplete:
				return true, "", nil
			case ToolStepFailed:
				return false, call.StringArg("reason"), nil
			}
			res := r.tools.Execute(ctx, call)
			results = append(results, ToolResultBlock(call.ID, res.Content, res.IsError))
		}
		conversation = append(conversation, Message{Role: RoleUser, Blocks: results})
	}
}

// recoveryCatalog is the full toolset minus test_complete: the
// recovery agent owns one step, never the run verdict.
func recoveryCatalog() []ToolDefinition {
	defs := Catalog()
	out := make([]ToolDefinition, 0, len(defs))
	for _, d := range defs {
		if d.Name != ToolTestComplete {
			out = append(out, d)
		}
	}
	return out
}

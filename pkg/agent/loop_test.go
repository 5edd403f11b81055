package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/models"
)

func newTestLoop(planner *scriptPlanner, budget *CallBudget) (*Loop, *fakePage) {
	tools, page, _ := newTestToolset()
	loop := NewLoop(LoopOptions{
		Planner:    planner,
		Tools:      tools,
		Budget:     budget,
		RetryDelay: time.Millisecond,
	})
	return loop, page
}

func TestLoop_AllStepsPass(t *testing.T) {
	planner := (&scriptPlanner{}).
		queue(stepCompleteResp()).
		queue(toolResp(ToolClick, map[string]interface{}{"selector": "#swap"})).
		queue(stepCompleteResp())
	loop, page := newTestLoop(planner, NewCallBudget(40, 10))

	out, err := loop.Run(context.Background(), []StepGoal{
		{Number: 1, Description: "Open the dApp"},
		{Number: 2, Description: "Start a swap"},
	})
	require.NoError(t, err)

	assert.True(t, out.Passed)
	assert.Equal(t, 3, out.APICalls)
	require.Len(t, out.Steps, 2)
	for _, s := range out.Steps {
		assert.Equal(t, models.StepStatusPassed, s.Status)
		assert.Equal(t, models.StepModeAgent, s.Mode)
	}
	assert.Equal(t, 1, out.Steps[0].AgentCalls)
	assert.Equal(t, 2, out.Steps[1].AgentCalls)
	assert.Len(t, page.clicks, 1)
}

func TestLoop_FreshConversationPerStep(t *testing.T) {
	planner := (&scriptPlanner{}).
		queue(stepCompleteResp()).
		queue(stepCompleteResp())
	loop, _ := newTestLoop(planner, NewCallBudget(40, 10))

	_, err := loop.Run(context.Background(), []StepGoal{
		{Number: 1, Description: "Open the dApp"},
		{Number: 2, Description: "Connect the wallet"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, planner.calls())

	// Step 2 starts over with a single user message carrying the goal
	// and a recap of step 1, not step 1's transcript.
	second := planner.request(1)
	require.Len(t, second.Messages, 1)
	opening := second.Messages[0].Blocks[0].Text
	assert.Contains(t, opening, "Step 2: Connect the wallet")
	assert.Contains(t, opening, "Already completed")
	assert.Contains(t, opening, "Step 1: Open the dApp")
}

func TestLoop_ScriptedStepBypassesPlanner(t *testing.T) {
	planner := &scriptPlanner{}
	loop, _ := newTestLoop(planner, NewCallBudget(40, 10))

	ran := false
	out, err := loop.Run(context.Background(), []StepGoal{
		{Number: 1, Description: "Navigate", Scripted: func(context.Context) error {
			ran = true
			return nil
		}},
	})
	require.NoError(t, err)

	assert.True(t, ran)
	assert.Zero(t, planner.calls())
	assert.Zero(t, out.APICalls)
	require.Len(t, out.Steps, 1)
	assert.Equal(t, models.StepModeSpec, out.Steps[0].Mode)
	assert.Equal(t, models.StepStatusPassed, out.Steps[0].Status)
	assert.True(t, out.Passed)
}

func TestLoop_ScriptedFailureSkipsRemaining(t *testing.T) {
	planner := &scriptPlanner{}
	loop, _ := newTestLoop(planner, NewCallBudget(40, 10))

	out, err := loop.Run(context.Background(), []StepGoal{
		{Number: 1, Description: "ok", Scripted: func(context.Context) error { return nil }},
		{Number: 2, Description: "boom", Scripted: func(context.Context) error { return errors.New("element not found") }},
		{Number: 3, Description: "never runs"},
	})
	require.NoError(t, err)

	require.Len(t, out.Steps, 3)
	assert.Equal(t, models.StepStatusPassed, out.Steps[0].Status)
	assert.Equal(t, models.StepStatusFailed, out.Steps[1].Status)
	assert.Equal(t, models.StepStatusSkipped, out.Steps[2].Status)
	assert.False(t, out.Passed)
	assert.Equal(t, "step 2 failed: element not found", out.Error)
	assert.Zero(t, planner.calls())
}

func TestLoop_StepFailedVerdict(t *testing.T) {
	planner := (&scriptPlanner{}).queue(stepFailedResp("button never rendered"))
	loop, _ := newTestLoop(planner, NewCallBudget(40, 10))

	out, err := loop.Run(context.Background(), []StepGoal{
		{Number: 1, Description: "Click swap"},
		{Number: 2, Description: "Confirm"},
	})
	require.NoError(t, err)

	require.Len(t, out.Steps, 2)
	assert.Equal(t, models.StepStatusFailed, out.Steps[0].Status)
	assert.Equal(t, "button never rendered", out.Steps[0].Error)
	assert.Equal(t, models.StepStatusSkipped, out.Steps[1].Status)
	assert.False(t, out.Passed)
}

func TestLoop_RunBudgetExhaustionFailsRemaining(t *testing.T) {
	planner := (&scriptPlanner{}).queue(stepCompleteResp())
	loop, _ := newTestLoop(planner, NewCallBudget(1, 10))

	out, err := loop.Run(context.Background(), []StepGoal{
		{Number: 1, Description: "first"},
		{Number: 2, Description: "second"},
		{Number: 3, Description: "third"},
	})
	require.NoError(t, err)

	require.Len(t, out.Steps, 3)
	assert.Equal(t, models.StepStatusPassed, out.Steps[0].Status)
	// The run cap failing mid-run fails the rest instead of skipping:
	// nothing can ever execute them.
	assert.Equal(t, models.StepStatusFailed, out.Steps[1].Status)
	assert.Equal(t, models.StepStatusFailed, out.Steps[2].Status)
	assert.Contains(t, out.Steps[1].Error, "budget exhausted")
	assert.False(t, out.Passed)
	assert.Equal(t, 1, planner.calls())
}

func TestLoop_StepBudgetExhaustionFailsOnlyThatStep(t *testing.T) {
	planner := (&scriptPlanner{}).
		queue(toolResp(ToolClick, map[string]interface{}{"selector": "#a"})).
		queue(toolResp(ToolClick, map[string]interface{}{"selector": "#b"}))
	loop, _ := newTestLoop(planner, NewCallBudget(40, 2))

	out, err := loop.Run(context.Background(), []StepGoal{
		{Number: 1, Description: "stuck step"},
		{Number: 2, Description: "after"},
	})
	require.NoError(t, err)

	require.Len(t, out.Steps, 2)
	assert.Equal(t, models.StepStatusFailed, out.Steps[0].Status)
	assert.Contains(t, out.Steps[0].Error, "step planner-call budget")
	assert.Equal(t, 2, out.Steps[0].AgentCalls)
	assert.Equal(t, models.StepStatusSkipped, out.Steps[1].Status)
	assert.Equal(t, 2, planner.calls())
}

func TestLoop_TestCompletePassedEndsRunEarly(t *testing.T) {
	planner := (&scriptPlanner{}).
		queue(stepCompleteResp()).
		queue(testCompleteResp("passed", ""))
	loop, _ := newTestLoop(planner, NewCallBudget(40, 10))

	out, err := loop.Run(context.Background(), []StepGoal{
		{Number: 1, Description: "first"},
		{Number: 2, Description: "second"},
		{Number: 3, Description: "third"},
	})
	require.NoError(t, err)

	require.Len(t, out.Steps, 3)
	assert.Equal(t, models.StepStatusPassed, out.Steps[1].Status)
	assert.Equal(t, models.StepStatusSkipped, out.Steps[2].Status)
	assert.True(t, out.Passed)
}

func TestLoop_TestCompleteFailedCarriesReason(t *testing.T) {
	planner := (&scriptPlanner{}).queue(testCompleteResp("failed", "balance never updated"))
	loop, _ := newTestLoop(planner, NewCallBudget(40, 10))

	out, err := loop.Run(context.Background(), []StepGoal{
		{Number: 1, Description: "first"},
		{Number: 2, Description: "second"},
	})
	require.NoError(t, err)

	assert.False(t, out.Passed)
	assert.Equal(t, "balance never updated", out.Error)
	assert.Equal(t, models.StepStatusFailed, out.Steps[0].Status)
	assert.Equal(t, models.StepStatusSkipped, out.Steps[1].Status)
}

func TestLoop_RateLimitRetriesWithoutSpendingBudget(t *testing.T) {
	planner := (&scriptPlanner{}).
		fail(ErrRateLimited).
		fail(ErrRateLimited).
		queue(stepCompleteResp())
	loop, _ := newTestLoop(planner, NewCallBudget(1, 1))

	out, err := loop.Run(context.Background(), []StepGoal{{Number: 1, Description: "only"}})
	require.NoError(t, err)

	assert.True(t, out.Passed)
	assert.Equal(t, 3, planner.calls())
	assert.Equal(t, 1, out.APICalls, "retries share the slot of the call they retry")
}

func TestLoop_PersistentRateLimitFailsStep(t *testing.T) {
	planner := &scriptPlanner{}
	for i := 0; i <= plannerRetryLimit; i++ {
		planner.fail(ErrRateLimited)
	}
	loop, _ := newTestLoop(planner, NewCallBudget(40, 10))

	out, err := loop.Run(context.Background(), []StepGoal{{Number: 1, Description: "only"}})
	require.NoError(t, err)

	assert.False(t, out.Passed)
	require.Len(t, out.Steps, 1)
	assert.Equal(t, models.StepStatusFailed, out.Steps[0].Status)
	assert.Contains(t, out.Steps[0].Error, "planner error")
	assert.Equal(t, plannerRetryLimit+1, planner.calls())
}

func TestLoop_TextOnlyTurnGetsNudged(t *testing.T) {
	planner := (&scriptPlanner{}).
		queue(textResp("Let me think about this.")).
		queue(stepCompleteResp())
	loop, _ := newTestLoop(planner, NewCallBudget(40, 10))

	out, err := loop.Run(context.Background(), []StepGoal{{Number: 1, Description: "only"}})
	require.NoError(t, err)
	assert.True(t, out.Passed)

	require.Equal(t, 2, planner.calls())
	second := planner.request(1)
	last := second.Messages[len(second.Messages)-1]
	assert.Equal(t, RoleUser, last.Role)
	assert.Contains(t, last.Blocks[0].Text, "Continue with the step")
}

func TestLoop_ToolResultsFlowBack(t *testing.T) {
	planner := (&scriptPlanner{}).
		queue(toolResp(ToolSnapshot, nil)).
		queue(stepCompleteResp())
	loop, _ := newTestLoop(planner, NewCallBudget(40, 10))

	out, err := loop.Run(context.Background(), []StepGoal{{Number: 1, Description: "look around"}})
	require.NoError(t, err)
	assert.True(t, out.Passed)

	second := planner.request(1)
	last := second.Messages[len(second.Messages)-1]
	require.Equal(t, RoleUser, last.Role)
	require.Len(t, last.Blocks, 1)
	assert.Equal(t, BlockToolResult, last.Blocks[0].Kind)
	assert.Equal(t, "tu_"+ToolSnapshot, last.Blocks[0].ToolUseID)
	assert.Contains(t, last.Blocks[0].Content, `button "Connect Wallet"`)
	assert.False(t, last.Blocks[0].IsError)
}

func TestLoop_ScreenshotStoredOnPass(t *testing.T) {
	planner := (&scriptPlanner{}).queue(stepCompleteResp())
	tools, _, _ := newTestToolset()
	loop := NewLoop(LoopOptions{
		Planner: planner,
		Tools:   tools,
		Budget:  NewCallBudget(40, 10),
		Screenshot: func(_ context.Context, step int) string {
			return "step-1.png"
		},
	})

	out, err := loop.Run(context.Background(), []StepGoal{{Number: 1, Description: "only"}})
	require.NoError(t, err)
	assert.Equal(t, "step-1.png", out.Steps[0].Screenshot)
}

func TestLoop_OnStepCallback(t *testing.T) {
	planner := (&scriptPlanner{}).queue(stepCompleteResp()).queue(stepFailedResp("nope"))
	tools, _, _ := newTestToolset()
	var seen []int
	loop := NewLoop(LoopOptions{
		Planner: planner,
		Tools:   tools,
		Budget:  NewCallBudget(40, 10),
		OnStep:  func(s models.StepResult) { seen = append(seen, s.Step) },
	})

	_, err := loop.Run(context.Background(), []StepGoal{
		{Number: 1, Description: "a"},
		{Number: 2, Description: "b"},
		{Number: 3, Description: "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen, "skipped steps are reported too")
}

func TestLoop_CancelledContext(t *testing.T) {
	planner := (&scriptPlanner{}).queue(stepCompleteResp())
	loop, _ := newTestLoop(planner, NewCallBudget(40, 10))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loop.Run(ctx, []StepGoal{{Number: 1, Description: "only"}})
	assert.ErrorIs(t, err, context.Canceled)
}

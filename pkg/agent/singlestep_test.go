package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/config"
)

func newTestRecovery(planner *scriptPlanner) (*StepRecovery, *Toolset, *fakePage) {
	tools, page, _ := newTestToolset()
	rec := NewStepRecovery(RecoveryOptions{
		Planner:    planner,
		Tools:      tools,
		RetryDelay: time.Millisecond,
	})
	return rec, tools, page
}

func TestStepRecovery_ClearBlockersRecordsDismissals(t *testing.T) {
	planner := (&scriptPlanner{}).
		queue(toolResp(ToolSnapshot, nil)).
		queue(toolResp(ToolClick, map[string]interface{}{"ref": "e4"})).
		queue(stepCompleteResp())
	rec, _, page := newTestRecovery(planner)

	out, err := rec.ClearBlockers(context.Background())
	require.NoError(t, err)

	assert.True(t, out.Completed)
	assert.Equal(t, 3, out.Calls)
	require.Len(t, out.Actions, 1)
	assert.Equal(t, ToolClick, out.Actions[0].Tool)
	assert.Equal(t, "button", out.Actions[0].Locator.Role)
	assert.Equal(t, "Accept cookies", out.Actions[0].Locator.Name)
	assert.Len(t, page.clicks, 1)

	opening := planner.request(0).Messages[0].Blocks[0].Text
	assert.Contains(t, opening, "Do not perform the test step itself")
}

func TestStepRecovery_RunCarriesStepContext(t *testing.T) {
	planner := (&scriptPlanner{}).queue(stepCompleteResp())
	rec, _, _ := newTestRecovery(planner)

	out, err := rec.Run(context.Background(), StepTask{
		Goal:       "Approve the connection request",
		DappURL:    "https://dapp.test/",
		FailedCode: `await wallet.approve();`,
		Error:      "timeout waiting for popup",
		Completed:  []string{"Open the dApp"},
		Upcoming:   []string{"Verify the balance"},
	})
	require.NoError(t, err)
	assert.True(t, out.Completed)

	req := planner.request(0)
	assert.Equal(t, recoverySystemPrompt, req.System)
	opening := req.Messages[0].Blocks[0].Text
	assert.Contains(t, opening, "Approve the connection request")
	assert.Contains(t, opening, "https://dapp.test/")
	assert.Contains(t, opening, "await wallet.approve();")
	assert.Contains(t, opening, "timeout waiting for popup")
	assert.Contains(t, opening, "Open the dApp")
	assert.Contains(t, opening, "Verify the balance")
}

func TestStepRecovery_DoesNotOfferTestComplete(t *testing.T) {
	planner := (&scriptPlanner{}).queue(stepCompleteResp())
	rec, _, _ := newTestRecovery(planner)

	_, err := rec.Run(context.Background(), StepTask{Goal: "anything"})
	require.NoError(t, err)

	for _, def := range planner.request(0).Tools {
		assert.NotEqual(t, ToolTestComplete, def.Name)
	}
	assert.Len(t, planner.request(0).Tools, len(Catalog())-1)
}

func TestStepRecovery_StepFailedVerdict(t *testing.T) {
	planner := (&scriptPlanner{}).queue(stepFailedResp("the form is gone"))
	rec, _, _ := newTestRecovery(planner)

	out, err := rec.Run(context.Background(), StepTask{Goal: "Submit the form"})
	require.NoError(t, err)

	assert.False(t, out.Completed)
	assert.Equal(t, "the form is gone", out.Reason)
	assert.Equal(t, 1, out.Calls)
}

func TestStepRecovery_BudgetCapStopsConversation(t *testing.T) {
	planner := &scriptPlanner{}
	for i := 0; i < config.SingleStepCallCap; i++ {
		planner.queue(toolResp(ToolScroll, map[string]interface{}{"dy": float64(200)}))
	}
	rec, _, _ := newTestRecovery(planner)

	out, err := rec.Run(context.Background(), StepTask{Goal: "Find the button"})
	require.NoError(t, err)

	assert.False(t, out.Completed)
	assert.Contains(t, out.Reason, "budget exhausted")
	assert.Equal(t, config.SingleStepCallCap, out.Calls)
	assert.Equal(t, config.SingleStepCallCap, planner.calls())
}

func TestStepRecovery_EachInvocationRecordsItsOwnActions(t *testing.T) {
	planner := (&scriptPlanner{}).
		queue(toolResp(ToolSnapshot, nil)).
		queue(toolResp(ToolClick, map[string]interface{}{"ref": "e4"})).
		queue(stepCompleteResp()).
		queue(toolResp(ToolSnapshot, nil)).
		queue(toolResp(ToolClick, map[string]interface{}{"ref": "e2"})).
		queue(stepCompleteResp())
	rec, _, _ := newTestRecovery(planner)

	first, err := rec.ClearBlockers(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Actions, 1)
	assert.Equal(t, "Accept cookies", first.Actions[0].Locator.Name)

	second, err := rec.Run(context.Background(), StepTask{Goal: "Connect"})
	require.NoError(t, err)
	require.Len(t, second.Actions, 1)
	assert.Equal(t, "connect-wallet", second.Actions[0].Locator.TestID)
}

func TestStepRecovery_TextOnlyTurnGetsNudged(t *testing.T) {
	planner := (&scriptPlanner{}).
		queue(textResp("Considering the page.")).
		queue(stepCompleteResp())
	rec, _, _ := newTestRecovery(planner)

	out, err := rec.Run(context.Background(), StepTask{Goal: "anything"})
	require.NoError(t, err)
	assert.True(t, out.Completed)

	second := planner.request(1)
	last := second.Messages[len(second.Messages)-1]
	assert.Contains(t, last.Blocks[0].Text, "Continue with the goal")
}

func TestStepRecovery_CancelledContext(t *testing.T) {
	planner := (&scriptPlanner{}).queue(stepCompleteResp())
	rec, _, _ := newTestRecovery(planner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := rec.Run(ctx, StepTask{Goal: "anything"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, out.Completed)
}

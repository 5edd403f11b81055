package hybrid

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/agent"
	"github.com/dappsmith/conductor/pkg/models"
)

type fakeRecovery struct {
	clearOutcomes []*agent.StepOutcome
	runOutcomes   []*agent.StepOutcome
	clearCalls    int
	runCalls      int
	tasks         []agent.StepTask
}

func (f *fakeRecovery) ClearBlockers(context.Context) (*agent.StepOutcome, error) {
	out := &agent.StepOutcome{Completed: true}
	if f.clearCalls < len(f.clearOutcomes) {
		out = f.clearOutcomes[f.clearCalls]
	}
	f.clearCalls++
	return out, nil
}

func (f *fakeRecovery) Run(_ context.Context, task agent.StepTask) (*agent.StepOutcome, error) {
	f.tasks = append(f.tasks, task)
	out := &agent.StepOutcome{Completed: false, Reason: "gave up"}
	if f.runCalls < len(f.runOutcomes) {
		out = f.runOutcomes[f.runCalls]
	}
	f.runCalls++
	return out, nil
}

func swapProgram(step2 string) string {
	return "test('swap flow', async ({ page, wallet }) => {\n" +
		"  // ==========\n" +
		"  // STEP 1: Open the dApp\n" +
		"  // ==========\n" +
		"  await page.goto('https://app.example.test/swap');\n" +
		"\n" +
		"  // ==========\n" +
		"  // STEP 2: Click the swap button\n" +
		"  // ==========\n" +
		"  " + step2 + "\n" +
		"\n" +
		"  // ==========\n" +
		"  // STEP 3: Verify the page\n" +
		"  // ==========\n" +
		"  await expect(page.url()).toContain('/swap');\n" +
		"});\n"
}

type executorHarness struct {
	exec   *Executor
	page   *enginePage
	wallet *engineWallet
	rec    *fakeRecovery
	seen   []models.StepResult
}

func newExecutorHarness(rec Recovery) *executorHarness {
	engine, page, wallet := newTestEngine()
	h := &executorHarness{page: page, wallet: wallet}
	if fr, ok := rec.(*fakeRecovery); ok {
		h.rec = fr
	}
	h.exec = NewExecutor(Options{
		Engine:   engine,
		Recovery: rec,
		DappURL:  "https://app.example.test",
		OnStep:   func(sr models.StepResult) { h.seen = append(h.seen, sr) },
		Screenshot: func(_ context.Context, step int) string {
			return fmt.Sprintf("steps/step-%d.png", step)
		},
	})
	return h
}

func TestExecutor_AllScripted(t *testing.T) {
	h := newExecutorHarness(&fakeRecovery{})
	res, err := h.exec.Run(context.Background(), swapProgram("await page.getByTestId('swap-btn').click();"))
	require.NoError(t, err)

	assert.True(t, res.Passed)
	assert.Empty(t, res.Patches)
	assert.False(t, res.TookOver)
	assert.Zero(t, res.Calls)
	assert.Zero(t, h.rec.clearCalls)
	require.Len(t, res.Steps, 3)
	for i, sr := range res.Steps {
		assert.Equal(t, i+1, sr.Step)
		assert.Equal(t, models.StepModeSpec, sr.Mode)
		assert.Equal(t, models.StepStatusPassed, sr.Status)
		assert.Equal(t, fmt.Sprintf("steps/step-%d.png", i+1), sr.Screenshot)
	}
	assert.Equal(t, "Open the dApp", res.Steps[0].Description)
}

func TestExecutor_BlockerDismissalPatchesOriginalStep(t *testing.T) {
	rec := &fakeRecovery{clearOutcomes: []*agent.StepOutcome{{
		Completed: true,
		Calls:     2,
		Actions: []agent.Action{{
			Tool:    agent.ToolClick,
			Locator: agent.Locator{Role: "button", Name: "Accept cookies"},
		}},
	}}}
	h := newExecutorHarness(rec)
	h.page.failClicks = 1

	res, err := h.exec.Run(context.Background(), swapProgram("await page.getByTestId('swap-btn').click();"))
	require.NoError(t, err)

	assert.True(t, res.Passed)
	assert.True(t, res.TookOver)
	assert.Equal(t, 2, res.Calls)
	assert.Equal(t, 1, rec.clearCalls)
	assert.Zero(t, rec.runCalls, "retry succeeded, full takeover never engaged")

	require.Len(t, res.Patches, 1)
	patch := res.Patches[0]
	assert.Equal(t, 2, patch.Step)
	assert.Contains(t, patch.Code, "await page.getByRole('button', { name: 'Accept cookies' }).click();")
	assert.Contains(t, patch.Code, "await page.getByTestId('swap-btn').click();")
	assert.Less(t,
		strings.Index(patch.Code, "Accept cookies"),
		strings.Index(patch.Code, "swap-btn"),
		"dismissal precedes the original statement")

	step2 := res.Steps[1]
	assert.Equal(t, models.StepModeAgent, step2.Mode)
	assert.Equal(t, models.StepStatusPassed, step2.Status)
	assert.Equal(t, 2, step2.AgentCalls)
}

func TestExecutor_PureFlakePatchesNothing(t *testing.T) {
	rec := &fakeRecovery{clearOutcomes: []*agent.StepOutcome{{Completed: true, Calls: 1}}}
	h := newExecutorHarness(rec)
	h.page.failClicks = 1

	res, err := h.exec.Run(context.Background(), swapProgram("await page.getByTestId('swap-btn').click();"))
	require.NoError(t, err)

	assert.True(t, res.Passed)
	assert.Empty(t, res.Patches)
	assert.False(t, res.TookOver)
	assert.Equal(t, models.StepModeAgent, res.Steps[1].Mode)
	assert.Equal(t, models.StepStatusPassed, res.Steps[1].Status)
}

func TestExecutor_TakeoverEmitsActionOnlyPatch(t *testing.T) {
	rec := &fakeRecovery{
		clearOutcomes: []*agent.StepOutcome{{Completed: true, Calls: 1}},
		runOutcomes: []*agent.StepOutcome{{
			Completed: true,
			Calls:     4,
			Actions: []agent.Action{
				{Tool: agent.ToolClick, Locator: agent.Locator{Role: "button", Name: "Swap"}},
				{Tool: agent.ToolWalletConfirmTx},
			},
		}},
	}
	h := newExecutorHarness(rec)
	h.page.failClicks = 2 // first run and the phase-two retry both fail

	res, err := h.exec.Run(context.Background(), swapProgram("await page.getByTestId('swap-btn').click();"))
	require.NoError(t, err)

	assert.True(t, res.Passed)
	assert.True(t, res.TookOver)
	assert.Equal(t, 5, res.Calls)

	require.Len(t, res.Patches, 1)
	patch := res.Patches[0]
	assert.Equal(t, 2, patch.Step)
	assert.Contains(t, patch.Code, "await page.getByRole('button', { name: 'Swap' }).click();")
	assert.Contains(t, patch.Code, "await wallet.confirmTransaction();")
	assert.NotContains(t, patch.Code, "swap-btn", "takeover patches carry agent actions, not the failed code")

	require.Len(t, rec.tasks, 1)
	task := rec.tasks[0]
	assert.Equal(t, "Click the swap button", task.Goal)
	assert.Equal(t, "https://app.example.test", task.DappURL)
	assert.Contains(t, task.FailedCode, "swap-btn")
	assert.Contains(t, task.Error, "not attached")
	assert.Equal(t, []string{"Step 1: Open the dApp"}, task.Completed)
	assert.Equal(t, []string{"Step 3: Verify the page"}, task.Upcoming)

	step2 := res.Steps[1]
	assert.Equal(t, models.StepModeAgent, step2.Mode)
	assert.Equal(t, models.StepStatusPassed, step2.Status)
	assert.Equal(t, 5, step2.AgentCalls)
}

func TestExecutor_AlreadySatisfiedStepIsSkipped(t *testing.T) {
	rec := &fakeRecovery{
		clearOutcomes: []*agent.StepOutcome{{Completed: true}},
		runOutcomes:   []*agent.StepOutcome{{Completed: true, Calls: 2}},
	}
	h := newExecutorHarness(rec)
	h.page.failClicks = 2

	res, err := h.exec.Run(context.Background(), swapProgram("await page.getByTestId('swap-btn').click();"))
	require.NoError(t, err)

	assert.True(t, res.Passed)
	assert.Empty(t, res.Patches)
	assert.False(t, res.TookOver)

	step2 := res.Steps[1]
	assert.Equal(t, models.StepStatusSkipped, step2.Status)
	assert.Equal(t, models.StepModeAgent, step2.Mode)
	assert.Empty(t, step2.Screenshot)

	// The run continued past the skipped step.
	assert.Equal(t, models.StepStatusPassed, res.Steps[2].Status)
}

func TestExecutor_RecoveryFailureSkipsRemaining(t *testing.T) {
	rec := &fakeRecovery{
		clearOutcomes: []*agent.StepOutcome{{Completed: true}},
		runOutcomes:   []*agent.StepOutcome{{Completed: false, Reason: "button never appeared", Calls: 9}},
	}
	h := newExecutorHarness(rec)
	h.page.failClicks = 2

	res, err := h.exec.Run(context.Background(), swapProgram("await page.getByTestId('swap-btn').click();"))
	require.NoError(t, err)

	assert.False(t, res.Passed)
	assert.Contains(t, res.Error, "step 2")
	assert.Contains(t, res.Error, "agent: button never appeared")

	require.Len(t, res.Steps, 3)
	assert.Equal(t, models.StepStatusFailed, res.Steps[1].Status)
	assert.Equal(t, 9, res.Steps[1].AgentCalls)
	assert.Equal(t, models.StepStatusSkipped, res.Steps[2].Status)
	assert.False(t, res.TookOver)
}

func TestExecutor_CodeBugAbortsWithoutRecovery(t *testing.T) {
	rec := &fakeRecovery{}
	h := newExecutorHarness(rec)

	res, err := h.exec.Run(context.Background(), swapProgram("await metamask.approve();"))
	require.NoError(t, err)

	assert.False(t, res.Passed)
	assert.Equal(t, FatalCodeBug, res.Fatal)
	assert.Contains(t, res.Error, "ReferenceError: metamask is not defined")
	assert.Zero(t, rec.clearCalls, "fatal failures never engage the agent")
	assert.Zero(t, rec.runCalls)
	assert.Empty(t, res.Patches)

	require.Len(t, res.Steps, 3)
	assert.Equal(t, models.StepStatusPassed, res.Steps[0].Status)
	assert.Equal(t, models.StepStatusFailed, res.Steps[1].Status)
	assert.Equal(t, models.StepModeSpec, res.Steps[1].Mode)
	assert.Equal(t, models.StepStatusSkipped, res.Steps[2].Status)
}

func TestExecutor_NetworkErrorAbortsWithoutRecovery(t *testing.T) {
	rec := &fakeRecovery{}
	h := newExecutorHarness(rec)
	h.page.navErr = errors.New("net::ERR_NAME_NOT_RESOLVED at https://app.example.test/swap")

	res, err := h.exec.Run(context.Background(), swapProgram("await page.getByTestId('swap-btn').click();"))
	require.NoError(t, err)

	assert.False(t, res.Passed)
	assert.Equal(t, FatalNetwork, res.Fatal)
	assert.Zero(t, rec.clearCalls)
	require.Len(t, res.Steps, 3)
	assert.Equal(t, models.StepStatusFailed, res.Steps[0].Status)
	// The failed step still gets its screenshot for debugging.
	assert.Equal(t, "steps/step-1.png", res.Steps[0].Screenshot)
	assert.Equal(t, models.StepStatusSkipped, res.Steps[1].Status)
	assert.Equal(t, models.StepStatusSkipped, res.Steps[2].Status)
}

func TestExecutor_NilRecoveryFailsFast(t *testing.T) {
	h := newExecutorHarness(nil)
	h.page.failClicks = 1

	res, err := h.exec.Run(context.Background(), swapProgram("await page.getByTestId('swap-btn').click();"))
	require.NoError(t, err)

	assert.False(t, res.Passed)
	assert.Contains(t, res.Error, "step 2")
	assert.Equal(t, models.StepModeSpec, res.Steps[1].Mode)
	assert.Equal(t, models.StepStatusFailed, res.Steps[1].Status)
	assert.Equal(t, models.StepStatusSkipped, res.Steps[2].Status)
}

func TestExecutor_OnStepObservesEveryResult(t *testing.T) {
	h := newExecutorHarness(&fakeRecovery{})
	_, err := h.exec.Run(context.Background(), swapProgram("await metamask.approve();"))
	require.NoError(t, err)

	require.Len(t, h.seen, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{h.seen[0].Step, h.seen[1].Step, h.seen[2].Step})
	assert.Equal(t, models.StepStatusSkipped, h.seen[2].Status)
}

func TestExecutor_BareBodyWithoutWrapper(t *testing.T) {
	h := newExecutorHarness(&fakeRecovery{})
	res, err := h.exec.Run(context.Background(), "await page.goto('https://x.test');")
	require.NoError(t, err)
	assert.True(t, res.Passed)
	require.Len(t, res.Steps, 1)
	assert.Equal(t, 1, res.Steps[0].Step)
}

func TestExecutor_Cancelled(t *testing.T) {
	h := newExecutorHarness(&fakeRecovery{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.exec.Run(ctx, swapProgram("await page.getByTestId('swap-btn').click();"))
	require.ErrorIs(t, err, context.Canceled)
}

package agent

import (
	"fmt"
	"strings"
)

// loopSystemPrompt drives full-run agent execution. It is stable for
// the life of a run so providers can cache it.
const loopSystemPrompt = `You are a browser automation agent testing a decentralized application. You drive a real Chromium session with a wallet extension installed and unlocked; its account is pre-funded on test networks.

Work one step at a time. Each user message gives you the current step's goal; accomplish exactly that goal, then call step_complete. If the goal proves unreachable, call step_failed with the reason. Never work ahead of the current step.

Conventions:
- Call browser_snapshot before acting on a page you have not seen, and again after anything changes the page. Element refs expire on the next snapshot.
- Prefer snapshot refs over CSS selectors.
- Wallet-first rule: after any action that can trigger a wallet interaction (connect buttons, swaps, network prompts), handle the wallet popup with the wallet_* tools before touching the page again.
- Wallet popups can lag behind the page. If none appeared, wait one or two seconds and retry the wallet tool once before concluding there is none.
- Keep waits short; prefer re-snapshotting over long pauses.`

// recoverySystemPrompt drives the single-step agent the hybrid
// executor invokes after a scripted step fails.
const recoverySystemPrompt = `You are a browser automation agent recovering a single failed step of a scripted dApp test. The browser session is live and mid-test; earlier steps already ran.

Accomplish only the goal you are given, then call step_complete. If the goal proves unreachable, call step_failed with the reason. Important: if the step's target no longer exists but the page state already matches the next step's precondition, the step's work is done - call step_complete.

Conventions:
- Call browser_snapshot first; the page state after a failure rarely matches what the script expected.
- Prefer snapshot refs over CSS selectors.
- Handle wallet popups with the wallet_* tools before touching the page again.
- Your successful actions are recorded and written back into the test script, so act economically: no exploratory clicks on state-changing controls.`

// clearBlockersGoal is the phase-1 recovery task: make the page
// actionable without performing the step.
const clearBlockersGoal = "Dismiss anything blocking interaction with the page: cookie banners, modals, overlays, toasts. Do not perform the test step itself. Call step_complete once the page is clear, or immediately if nothing blocks it."

// stepGoalMessage opens one step of a full agent run.
func stepGoalMessage(step StepGoal, completed []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Step %d: %s\n", step.Number, step.Description)
	if len(completed) > 0 {
		b.WriteString("\nAlready completed:\n")
		for _, c := range completed {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}
	if step.Code != "" {
		b.WriteString("\nScripted reference for this step (may be stale):\n")
		b.WriteString(step.Code)
		b.WriteString("\n")
	}
	return b.String()
}

// recoveryOpening assembles the single-step agent's opening message:
// goal, dApp URL, the failed code, the error, and the surrounding step
// context.
func recoveryOpening(task StepTask) string {
	var b strings.Builder
	b.WriteString("Goal: ")
	b.WriteString(task.Goal)
	b.WriteString("\n")
	if task.DappURL != "" {
		fmt.Fprintf(&b, "dApp URL: %s\n", task.DappURL)
	}
	if task.FailedCode != "" {
		b.WriteString("\nFailed step code:\n")
		b.WriteString(task.FailedCode)
		b.WriteString("\n")
	}
	if task.Error != "" {
		fmt.Fprintf(&b, "\nFailure: %s\n", task.Error)
	}
	if len(task.Completed) > 0 {
		b.WriteString("\nSteps already completed:\n")
		for _, c := range task.Completed {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}
	if len(task.Upcoming) > 0 {
		b.WriteString("\nUpcoming steps (do not perform these):\n")
		for _, u := range task.Upcoming {
			fmt.Fprintf(&b, "- %s\n", u)
		}
	}
	return b.String()
}

package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dappsmith/conductor/pkg/masking"
	"github.com/dappsmith/conductor/pkg/sandbox"
)

// Tool names. The planner addresses tools by these exact strings and
// the patch translator keys its state-changing filter on them.
const (
	ToolSnapshot              = "browser_snapshot"
	ToolClick                 = "browser_click"
	ToolType                  = "browser_type"
	ToolPressKey              = "browser_press_key"
	ToolSelect                = "browser_select"
	ToolNavigate              = "browser_navigate"
	ToolScroll                = "browser_scroll"
	ToolWait                  = "browser_wait"
	ToolGoBack                = "browser_go_back"
	ToolEvaluate              = "browser_evaluate"
	ToolScreenshot            = "browser_screenshot"
	ToolAssertWalletConnected = "assert_wallet_connected"

	ToolWalletApprove       = "wallet_approve"
	ToolWalletSign          = "wallet_sign"
	ToolWalletConfirmTx     = "wallet_confirm_transaction"
	ToolWalletSwitchNetwork = "wallet_switch_network"
	ToolWalletReject        = "wallet_reject"
	ToolWalletHandleSIWE    = "wallet_handle_siwe_popup"

	ToolStepComplete = "step_complete"
	ToolStepFailed   = "step_failed"
	ToolTestComplete = "test_complete"
)

// stateChanging lists the tools whose calls belong in a spec patch.
// Read-only and diagnostic tools never translate into code.
var stateChanging = map[string]bool{
	ToolClick:               true,
	ToolType:                true,
	ToolPressKey:            true,
	ToolSelect:              true,
	ToolWalletApprove:       true,
	ToolWalletConfirmTx:     true,
	ToolWalletSwitchNetwork: true,
}

// IsStateChanging reports whether the named tool mutates page or
// wallet state in a way a patched spec must replay.
func IsStateChanging(name string) bool { return stateChanging[name] }

// IsControl reports whether the named tool ends a step or the run.
// Control tools are interpreted by the loop, never dispatched.
func IsControl(name string) bool {
	return name == ToolStepComplete || name == ToolStepFailed || name == ToolTestComplete
}

// PageDriver is the page surface the browser tools drive.
// *sandbox.Page satisfies it.
type PageDriver interface {
	Navigate(ctx context.Context, url string) error
	GoBack(ctx context.Context) error
	Click(ctx context.Context, target sandbox.Target) error
	Type(ctx context.Context, target sandbox.Target, text string) error
	PressKey(ctx context.Context, key string) error
	SelectOption(ctx context.Context, target sandbox.Target, value string) error
	Scroll(ctx context.Context, dx, dy int) error
	Evaluate(ctx context.Context, expression string) (interface{}, error)
	Screenshot(ctx context.Context) ([]byte, error)
	Snapshot(ctx context.Context) (string, error)
	URL(ctx context.Context) (string, error)
}

// WalletDriver is the wallet surface. All popup drivers follow the
// race-safe protocol and report handled-or-not instead of failing.
// *sandbox.Wallet satisfies it.
type WalletDriver interface {
	Approve(ctx context.Context) (bool, error)
	Sign(ctx context.Context) (bool, error)
	ConfirmTransaction(ctx context.Context) (bool, error)
	SwitchNetwork(ctx context.Context, name string) (bool, error)
	Reject(ctx context.Context) (bool, error)
	HandleSIWEPopup(ctx context.Context) (bool, error)
	GetAddress() string
}

// ScreenshotFunc stores an on-demand screenshot and returns the stored
// name for the tool result.
type ScreenshotFunc func(ctx context.Context, png []byte) (string, error)

// ToolResult is the outcome of one executed tool call, reported back
// to the planner as a tool_result block.
type ToolResult struct {
	Content string
	IsError bool
}

// Locator is the durable address of the element an action touched,
// captured from the snapshot the ref came from. Patch translation
// prefers TestID, then Role+Name, then the raw selector.
type Locator struct {
	TestID   string
	Role     string
	Name     string
	Selector string
}

// Action is one successfully executed state-changing tool call,
// recorded so a recovery can be translated back into spec code.
type Action struct {
	Tool    string
	Input   map[string]interface{}
	Locator Locator
}

// Toolset executes browser and wallet tool calls against one sandbox.
// It remembers the refs of the most recent snapshot and records the
// state-changing actions it performed.
type Toolset struct {
	page    PageDriver
	wallet  WalletDriver
	masker  *masking.Service
	screens ScreenshotFunc

	dispatch map[string]func(ctx context.Context, call ToolCall) (string, error)

	mu      sync.Mutex
	refs    map[string]OutlineNode
	actions []Action
}

// NewToolset wires its drivers. The masker may be nil in tests; the
// screenshot sink may be nil when captures are discarded.
func NewToolset(page PageDriver, wallet WalletDriver, masker *masking.Service, screens ScreenshotFunc) *Toolset {
	t := &Toolset{
		page:    page,
		wallet:  wallet,
		masker:  masker,
		screens: screens,
		refs:    make(map[string]OutlineNode),
	}
	t.dispatch = map[string]func(context.Context, ToolCall) (string, error){
		ToolSnapshot:              t.snapshot,
		ToolClick:                 t.click,
		ToolType:                  t.typeText,
		ToolPressKey:              t.pressKey,
		ToolSelect:                t.selectOption,
		ToolNavigate:              t.navigate,
		ToolScroll:                t.scroll,
		ToolWait:                  t.wait,
		ToolGoBack:                t.goBack,
		ToolEvaluate:              t.evaluate,
		ToolScreenshot:            t.screenshot,
		ToolAssertWalletConnected: t.assertWalletConnected,
		ToolWalletApprove:         t.walletApprove,
		ToolWalletSign:            t.walletSign,
		ToolWalletConfirmTx:       t.walletConfirmTx,
		ToolWalletSwitchNetwork:   t.walletSwitchNetwork,
		ToolWalletReject:          t.walletReject,
		ToolWalletHandleSIWE:      t.walletHandleSIWE,
	}
	return t
}

// Execute dispatches one tool call. Failures become error results for
// the planner, never Go errors; all content passes through masking
// before it can reach the model context.
func (t *Toolset) Execute(ctx context.Context, call ToolCall) ToolResult {
	fn, ok := t.dispatch[call.Name]
	if !ok {
		return ToolResult{Content: fmt.Sprintf("unknown tool %q", call.Name), IsError: true}
	}
	content, err := fn(ctx, call)
	isError := false
	if err != nil {
		content = err.Error()
		isError = true
	}
	if t.masker != nil {
		content = t.masker.MaskToolResult(content)
	}
	return ToolResult{Content: content, IsError: isError}
}

// Actions returns the state-changing actions executed since the last
// reset, in execution order.
func (t *Toolset) Actions() []Action {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Action, len(t.actions))
	copy(out, t.actions)
	return out
}

// ResetActions clears the recorded actions. Recovery phases record
// independently.
func (t *Toolset) ResetActions() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.actions = nil
}

// WalletConnected checks whether the dApp page reports a connected
// provider account. Used by the assert tool and by deterministic
// short-circuits.
func (t *Toolset) WalletConnected(ctx context.Context) (bool, string, error) {
	res, err := t.page.Evaluate(ctx, walletConnectedExpr)
	if err != nil {
		return false, "", err
	}
	s, _ := res.(string)
	if addr, ok := strings.CutPrefix(s, "connected:"); ok {
		return true, addr, nil
	}
	return false, "", nil
}

const walletConnectedExpr = `(() => {
  const eth = window.ethereum;
  if (!eth) return 'no-provider';
  const acct = eth.selectedAddress || (Array.isArray(eth.accounts) && eth.accounts[0]);
  return acct ? ('connected:' + acct) : 'disconnected';
})()`

func (t *Toolset) record(tool string, call ToolCall, loc Locator) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.actions = append(t.actions, Action{Tool: tool, Input: call.Input, Locator: loc})
}

// target resolves the ref/selector arguments of a call. A ref that is
// not in the latest snapshot fails so the planner re-snapshots.
func (t *Toolset) target(call ToolCall) (sandbox.Target, Locator, error) {
	ref := call.StringArg("ref")
	sel := call.StringArg("selector")
	if ref == "" && sel == "" {
		return sandbox.Target{}, Locator{}, errors.New("either ref or selector is required")
	}
	loc := Locator{Selector: sel}
	if ref != "" {
		t.mu.Lock()
		node, ok := t.refs[ref]
		t.mu.Unlock()
		if !ok {
			return sandbox.Target{}, Locator{}, fmt.Errorf("ref %s is not in the latest snapshot; call %s again", ref, ToolSnapshot)
		}
		loc.Role, loc.Name, loc.TestID = node.Role, node.Name, node.TestID
	}
	return sandbox.Target{Ref: ref, Selector: sel}, loc, nil
}

func (t *Toolset) snapshot(ctx context.Context, _ ToolCall) (string, error) {
	outline, err := t.page.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("snapshot failed: %w", err)
	}
	refs := make(map[string]OutlineNode)
	for _, node := range ParseOutline(outline) {
		refs[node.Ref] = node
	}
	t.mu.Lock()
	t.refs = refs
	t.mu.Unlock()
	return truncate(outline, 20000), nil
}

func (t *Toolset) click(ctx context.Context, call ToolCall) (string, error) {
	target, loc, err := t.target(call)
	if err != nil {
		return "", err
	}
	if err := t.page.Click(ctx, target); err != nil {
		return "", fmt.Errorf("click failed: %w", err)
	}
	t.record(ToolClick, call, loc)
	return "clicked", nil
}

func (t *Toolset) typeText(ctx context.Context, call ToolCall) (string, error) {
	text := call.StringArg("text")
	if text == "" {
		return "", errors.New("text is required")
	}
	target, loc, err := t.target(call)
	if err != nil {
		return "", err
	}
	if err := t.page.Type(ctx, target, text); err != nil {
		return "", fmt.Errorf("type failed: %w", err)
	}
	if call.BoolArg("submit") {
		if err := t.page.PressKey(ctx, "Enter"); err != nil {
			return "", fmt.Errorf("submit after type failed: %w", err)
		}
	}
	t.record(ToolType, call, loc)
	return "typed", nil
}

func (t *Toolset) pressKey(ctx context.Context, call ToolCall) (string, error) {
	key := call.StringArg("key")
	if key == "" {
		return "", errors.New("key is required")
	}
	if err := t.page.PressKey(ctx, key); err != nil {
		return "", fmt.Errorf("press key failed: %w", err)
	}
	t.record(ToolPressKey, call, Locator{})
	return "pressed " + key, nil
}

func (t *Toolset) selectOption(ctx context.Context, call ToolCall) (string, error) {
	value := call.StringArg("value")
	if value == "" {
		return "", errors.New("value is required")
	}
	target, loc, err := t.target(call)
	if err != nil {
		return "", err
	}
	if err := t.page.SelectOption(ctx, target, value); err != nil {
		return "", fmt.Errorf("select failed: %w", err)
	}
	t.record(ToolSelect, call, loc)
	return "selected " + value, nil
}

func (t *Toolset) navigate(ctx context.Context, call ToolCall) (string, error) {
	url := call.StringArg("url")
	if url == "" {
		return "", errors.New("url is required")
	}
	if err := t.page.Navigate(ctx, url); err != nil {
		return "", fmt.Errorf("navigation failed: %w", err)
	}
	return "navigated to " + url, nil
}

func (t *Toolset) scroll(ctx context.Context, call ToolCall) (string, error) {
	dx, dy := call.IntArg("dx"), call.IntArg("dy")
	if dx == 0 && dy == 0 {
		dy = 600
	}
	if err := t.page.Scroll(ctx, dx, dy); err != nil {
		return "", fmt.Errorf("scroll failed: %w", err)
	}
	return fmt.Sprintf("scrolled by (%d, %d)", dx, dy), nil
}

func (t *Toolset) wait(ctx context.Context, call ToolCall) (string, error) {
	secs := call.IntArg("seconds")
	if secs <= 0 {
		secs = 1
	}
	if secs > 30 {
		secs = 30
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(time.Duration(secs) * time.Second):
	}
	return fmt.Sprintf("waited %ds", secs), nil
}

func (t *Toolset) goBack(ctx context.Context, _ ToolCall) (string, error) {
	if err := t.page.GoBack(ctx); err != nil {
		return "", fmt.Errorf("go back failed: %w", err)
	}
	return "went back", nil
}

func (t *Toolset) evaluate(ctx context.Context, call ToolCall) (string, error) {
	expr := call.StringArg("expression")
	if expr == "" {
		return "", errors.New("expression is required")
	}
	res, err := t.page.Evaluate(ctx, expr)
	if err != nil {
		return "", fmt.Errorf("evaluate failed: %w", err)
	}
	encoded, err := json.Marshal(res)
	if err != nil {
		return fmt.Sprintf("%v", res), nil
	}
	return truncate(string(encoded), 8000), nil
}

func (t *Toolset) screenshot(ctx context.Context, _ ToolCall) (string, error) {
	png, err := t.page.Screenshot(ctx)
	if err != nil {
		return "", fmt.Errorf("screenshot failed: %w", err)
	}
	if t.screens == nil {
		return "screenshot captured (not stored)", nil
	}
	name, err := t.screens(ctx, png)
	if err != nil {
		return "", fmt.Errorf("screenshot could not be stored: %w", err)
	}
	return "screenshot captured: " + name, nil
}

func (t *Toolset) assertWalletConnected(ctx context.Context, _ ToolCall) (string, error) {
	connected, addr, err := t.WalletConnected(ctx)
	if err != nil {
		return "", fmt.Errorf("wallet check failed: %w", err)
	}
	if !connected {
		return "", errors.New("wallet is not connected")
	}
	return "wallet connected: " + addr, nil
}

func (t *Toolset) walletApprove(ctx context.Context, call ToolCall) (string, error) {
	return t.walletOp(ctx, call, ToolWalletApprove, "connection approval", t.wallet.Approve)
}

func (t *Toolset) walletSign(ctx context.Context, call ToolCall) (string, error) {
	return t.walletOp(ctx, call, ToolWalletSign, "signature", t.wallet.Sign)
}

func (t *Toolset) walletConfirmTx(ctx context.Context, call ToolCall) (string, error) {
	return t.walletOp(ctx, call, ToolWalletConfirmTx, "transaction confirmation", t.wallet.ConfirmTransaction)
}

func (t *Toolset) walletSwitchNetwork(ctx context.Context, call ToolCall) (string, error) {
	network := call.StringArg("network")
	if network == "" {
		return "", errors.New("network is required")
	}
	handled, err := t.wallet.SwitchNetwork(ctx, network)
	if err != nil {
		return "", fmt.Errorf("network switch failed: %w", err)
	}
	if !handled {
		return "no network switch popup appeared; nothing to confirm", nil
	}
	t.record(ToolWalletSwitchNetwork, call, Locator{})
	return "switched network to " + network, nil
}

func (t *Toolset) walletReject(ctx context.Context, call ToolCall) (string, error) {
	return t.walletOp(ctx, call, ToolWalletReject, "rejection", t.wallet.Reject)
}

func (t *Toolset) walletHandleSIWE(ctx context.Context, call ToolCall) (string, error) {
	return t.walletOp(ctx, call, ToolWalletHandleSIWE, "sign-in request", t.wallet.HandleSIWEPopup)
}

// walletOp runs one race-safe popup driver. Handled-or-not is reported
// as content, never as an error: a missing popup is a legitimate state
// the planner must reason about.
func (t *Toolset) walletOp(ctx context.Context, call ToolCall, tool, what string, op func(context.Context) (bool, error)) (string, error) {
	handled, err := op(ctx)
	if err != nil {
		return "", fmt.Errorf("wallet %s failed: %w", what, err)
	}
	if !handled {
		return fmt.Sprintf("no wallet popup appeared for %s", what), nil
	}
	if IsStateChanging(tool) {
		t.record(tool, call, Locator{})
	}
	return fmt.Sprintf("wallet %s handled", what), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n... (truncated)"
}

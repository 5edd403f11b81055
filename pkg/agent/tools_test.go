package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/masking"
)

func call(name string, input map[string]interface{}) ToolCall {
	return ToolCall{ID: "tu_" + name, Name: name, Input: input}
}

func TestToolset_SnapshotRegistersRefs(t *testing.T) {
	tools, _, _ := newTestToolset()
	ctx := context.Background()

	res := tools.Execute(ctx, call(ToolSnapshot, nil))
	require.False(t, res.IsError)
	assert.Contains(t, res.Content, "[ref=e2]")

	res = tools.Execute(ctx, call(ToolClick, map[string]interface{}{"ref": "e2"}))
	require.False(t, res.IsError, res.Content)

	actions := tools.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, ToolClick, actions[0].Tool)
	assert.Equal(t, "connect-wallet", actions[0].Locator.TestID)
	assert.Equal(t, "button", actions[0].Locator.Role)
	assert.Equal(t, "Connect Wallet", actions[0].Locator.Name)
}

func TestToolset_StaleRefTellsPlannerToResnapshot(t *testing.T) {
	tools, _, _ := newTestToolset()

	res := tools.Execute(context.Background(), call(ToolClick, map[string]interface{}{"ref": "e9"}))
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "not in the latest snapshot")
	assert.Contains(t, res.Content, ToolSnapshot)
	assert.Empty(t, tools.Actions(), "failed calls are never recorded")
}

func TestToolset_ClickRequiresTarget(t *testing.T) {
	tools, _, _ := newTestToolset()

	res := tools.Execute(context.Background(), call(ToolClick, nil))
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "ref or selector")
}

func TestToolset_SelectorBypassesRefRegistry(t *testing.T) {
	tools, page, _ := newTestToolset()

	res := tools.Execute(context.Background(), call(ToolClick, map[string]interface{}{"selector": "#swap"}))
	require.False(t, res.IsError)
	require.Len(t, page.clicks, 1)
	assert.Equal(t, "#swap", page.clicks[0].Selector)

	actions := tools.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, "#swap", actions[0].Locator.Selector)
	assert.Empty(t, actions[0].Locator.TestID)
}

func TestToolset_TypeWithSubmitPressesEnter(t *testing.T) {
	tools, page, _ := newTestToolset()

	res := tools.Execute(context.Background(), call(ToolType, map[string]interface{}{
		"selector": "#amount",
		"text":     "0.5",
		"submit":   true,
	}))
	require.False(t, res.IsError)
	assert.Equal(t, []string{"0.5"}, page.typed)
	assert.Equal(t, []string{"Enter"}, page.keys)
	assert.Len(t, tools.Actions(), 1, "type-with-submit is one recorded action")
}

func TestToolset_DriverErrorBecomesErrorResult(t *testing.T) {
	tools, page, _ := newTestToolset()
	page.failWith = errors.New("net::ERR_CONNECTION_REFUSED")

	res := tools.Execute(context.Background(), call(ToolNavigate, map[string]interface{}{"url": "https://dapp.test/"}))
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "net::ERR_CONNECTION_REFUSED")
	assert.Empty(t, tools.Actions())
}

func TestToolset_NavigationIsNotRecorded(t *testing.T) {
	tools, _, _ := newTestToolset()

	res := tools.Execute(context.Background(), call(ToolNavigate, map[string]interface{}{"url": "https://dapp.test/pool"}))
	require.False(t, res.IsError)
	assert.Empty(t, tools.Actions(), "navigation is not in the state-changing set")
}

func TestToolset_WalletApproveRecordedWhenHandled(t *testing.T) {
	tools, _, wallet := newTestToolset()

	res := tools.Execute(context.Background(), call(ToolWalletApprove, nil))
	require.False(t, res.IsError)
	assert.Contains(t, res.Content, "handled")
	assert.Equal(t, 1, wallet.approves)

	actions := tools.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, ToolWalletApprove, actions[0].Tool)
}

func TestToolset_WalletNoPopupIsNotAnError(t *testing.T) {
	tools, _, wallet := newTestToolset()
	wallet.handled = false

	res := tools.Execute(context.Background(), call(ToolWalletApprove, nil))
	assert.False(t, res.IsError, "a missing popup is a state, not a failure")
	assert.Contains(t, res.Content, "no wallet popup")
	assert.Empty(t, tools.Actions(), "unhandled popups are never recorded")
}

func TestToolset_WalletRejectNotRecorded(t *testing.T) {
	tools, _, _ := newTestToolset()

	res := tools.Execute(context.Background(), call(ToolWalletReject, nil))
	require.False(t, res.IsError)
	assert.Empty(t, tools.Actions(), "reject does not change dApp state")
}

func TestToolset_WalletSwitchNetworkRequiresName(t *testing.T) {
	tools, _, wallet := newTestToolset()

	res := tools.Execute(context.Background(), call(ToolWalletSwitchNetwork, nil))
	assert.True(t, res.IsError)

	res = tools.Execute(context.Background(), call(ToolWalletSwitchNetwork, map[string]interface{}{"network": "sepolia"}))
	require.False(t, res.IsError)
	assert.Equal(t, []string{"sepolia"}, wallet.networks)
	require.Len(t, tools.Actions(), 1)
	assert.Equal(t, "sepolia", tools.Actions()[0].Input["network"])
}

func TestToolset_AssertWalletConnected(t *testing.T) {
	tools, page, _ := newTestToolset()

	page.evalFn = func(string) (interface{}, error) { return "disconnected", nil }
	res := tools.Execute(context.Background(), call(ToolAssertWalletConnected, nil))
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "not connected")

	page.evalFn = func(string) (interface{}, error) { return "connected:0xf39F", nil }
	res = tools.Execute(context.Background(), call(ToolAssertWalletConnected, nil))
	require.False(t, res.IsError)
	assert.Contains(t, res.Content, "0xf39F")
}

func TestToolset_WalletConnectedHelper(t *testing.T) {
	tools, page, _ := newTestToolset()
	page.evalFn = func(string) (interface{}, error) { return "connected:0xabc", nil }

	ok, addr, err := tools.WalletConnected(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0xabc", addr)

	page.evalFn = func(string) (interface{}, error) { return "no-provider", nil }
	ok, addr, err = tools.WalletConnected(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, addr)
}

func TestToolset_EvaluateEncodesResult(t *testing.T) {
	tools, page, _ := newTestToolset()
	page.evalFn = func(expr string) (interface{}, error) {
		return map[string]interface{}{"balance": "1.5 ETH"}, nil
	}

	res := tools.Execute(context.Background(), call(ToolEvaluate, map[string]interface{}{"expression": "getBalance()"}))
	require.False(t, res.IsError)
	assert.JSONEq(t, `{"balance":"1.5 ETH"}`, res.Content)
}

func TestToolset_ScreenshotUsesSink(t *testing.T) {
	page := newFakePage()
	wallet := &fakeWallet{handled: true}
	tools := NewToolset(page, wallet, nil, func(_ context.Context, png []byte) (string, error) {
		return "shot-7.png", nil
	})

	res := tools.Execute(context.Background(), call(ToolScreenshot, nil))
	require.False(t, res.IsError)
	assert.Contains(t, res.Content, "shot-7.png")
	assert.Equal(t, 1, page.shots)
}

func TestToolset_UnknownToolIsErrorResult(t *testing.T) {
	tools, _, _ := newTestToolset()

	res := tools.Execute(context.Background(), call("browser_teleport", nil))
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "browser_teleport")
}

func TestToolset_ResultsPassThroughMasking(t *testing.T) {
	page := newFakePage()
	seed := "abandon ability able about above absent absorb abstract absurd abuse access accident"
	page.evalFn = func(string) (interface{}, error) { return "mnemonic: " + seed, nil }
	masker := masking.NewService(&config.LogMaskingDefaults{Enabled: true, PatternGroup: "wallet"})
	tools := NewToolset(page, &fakeWallet{}, masker, nil)

	res := tools.Execute(context.Background(), call(ToolEvaluate, map[string]interface{}{"expression": "leak()"}))
	require.False(t, res.IsError)
	assert.NotContains(t, res.Content, seed)
}

func TestIsStateChanging(t *testing.T) {
	for _, name := range []string{ToolClick, ToolType, ToolPressKey, ToolSelect, ToolWalletApprove, ToolWalletConfirmTx, ToolWalletSwitchNetwork} {
		assert.True(t, IsStateChanging(name), name)
	}
	for _, name := range []string{ToolSnapshot, ToolNavigate, ToolScroll, ToolWait, ToolEvaluate, ToolScreenshot, ToolWalletSign, ToolWalletReject, ToolWalletHandleSIWE, ToolStepComplete} {
		assert.False(t, IsStateChanging(name), name)
	}
}

func TestCatalog_CoversDispatchAndControls(t *testing.T) {
	tools, _, _ := newTestToolset()

	defs := Catalog()
	byName := make(map[string]ToolDefinition, len(defs))
	for _, d := range defs {
		require.NotEmpty(t, d.Name)
		require.NotEmpty(t, d.Description, d.Name)
		require.NotNil(t, d.InputSchema, d.Name)
		byName[d.Name] = d
	}

	for name := range tools.dispatch {
		_, ok := byName[name]
		assert.True(t, ok, "dispatchable tool %s missing from catalog", name)
	}
	for _, name := range []string{ToolStepComplete, ToolStepFailed, ToolTestComplete} {
		_, ok := byName[name]
		assert.True(t, ok, "control tool %s missing from catalog", name)
	}
}

package hybrid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/agent"
)

func TestTranslateActions_Statements(t *testing.T) {
	actions := []agent.Action{
		{Tool: agent.ToolClick, Locator: agent.Locator{TestID: "connect-wallet"}},
		{Tool: agent.ToolClick, Locator: agent.Locator{Role: "button", Name: "Accept cookies"}},
		{Tool: agent.ToolType, Input: map[string]interface{}{"text": "1.5"}, Locator: agent.Locator{TestID: "amount"}},
		{Tool: agent.ToolSelect, Input: map[string]interface{}{"value": "USDC"}, Locator: agent.Locator{Selector: "#token"}},
		{Tool: agent.ToolPressKey, Input: map[string]interface{}{"key": "Escape"}},
		{Tool: agent.ToolWalletApprove},
		{Tool: agent.ToolWalletConfirmTx},
		{Tool: agent.ToolWalletSwitchNetwork, Input: map[string]interface{}{"network": "Sepolia"}},
	}
	out := TranslateActions(actions)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "  await page.getByTestId('connect-wallet').click();", lines[0])
	assert.Equal(t, "  await page.getByRole('button', { name: 'Accept cookies' }).click();", lines[1])
	assert.Equal(t, "  await page.getByTestId('amount').fill('1.5');", lines[2])
	assert.Equal(t, "  await page.locator('#token').selectOption('USDC');", lines[3])
	assert.Equal(t, "  await page.keyboard.press('Escape');", lines[4])
	assert.Equal(t, "  await wallet.approve();", lines[5])
	assert.Equal(t, "  await wallet.confirmTransaction();", lines[6])
	assert.Equal(t, "  await wallet.switchNetwork('Sepolia');", lines[7])
}

func TestTranslateActions_TypeWithSubmit(t *testing.T) {
	out := TranslateActions([]agent.Action{{
		Tool:    agent.ToolType,
		Input:   map[string]interface{}{"text": "vitalik.eth", "submit": true},
		Locator: agent.Locator{Role: "searchbox", Name: "Search"},
	}})
	require.Equal(t,
		"  await page.getByRole('searchbox', { name: 'Search' }).fill('vitalik.eth');\n"+
			"  await page.keyboard.press('Enter');",
		out)
}

// Every translated statement must compile back through the statement
// engine, or a patched spec would fail its next run.
func TestTranslateActions_RoundTrip(t *testing.T) {
	actions := []agent.Action{
		{Tool: agent.ToolClick, Locator: agent.Locator{TestID: "swap"}},
		{Tool: agent.ToolClick, Locator: agent.Locator{Role: "button", Name: "Buy 'ETH'"}},
		{Tool: agent.ToolType, Input: map[string]interface{}{"text": "1.5", "submit": true}, Locator: agent.Locator{TestID: "amount"}},
		{Tool: agent.ToolSelect, Input: map[string]interface{}{"value": "USDC"}, Locator: agent.Locator{Selector: "#token > select"}},
		{Tool: agent.ToolPressKey, Input: map[string]interface{}{"key": "Enter"}},
		{Tool: agent.ToolWalletApprove},
		{Tool: agent.ToolWalletConfirmTx},
		{Tool: agent.ToolWalletSwitchNetwork, Input: map[string]interface{}{"network": "Sepolia"}},
	}
	for _, line := range strings.Split(TranslateActions(actions), "\n") {
		stmt, err := CompileStatement(strings.TrimSpace(line))
		require.NoError(t, err, line)
		assert.NotEqual(t, Statement{}, stmt, line)
	}
}

func TestTranslateActions_DropsUntranslatableTools(t *testing.T) {
	out := TranslateActions([]agent.Action{
		{Tool: "browser_scroll", Input: map[string]interface{}{"dy": float64(400)}},
		{Tool: agent.ToolClick, Locator: agent.Locator{TestID: "go"}},
	})
	assert.Equal(t, "  await page.getByTestId('go').click();", out)
}

func TestJsQuote(t *testing.T) {
	assert.Equal(t, `'plain'`, jsQuote("plain"))
	assert.Equal(t, `'Buy \'ETH\''`, jsQuote("Buy 'ETH'"))
	assert.Equal(t, `'a\\b'`, jsQuote(`a\b`))

	got, ok := jsUnquote(jsQuote("Buy 'ETH' \\ now"))
	require.True(t, ok)
	assert.Equal(t, "Buy 'ETH' \\ now", got)
}

package hybrid

import (
	"fmt"
	"strings"

	"github.com/dappsmith/conductor/pkg/agent"
)

// TranslateActions renders recorded agent actions as spec statements,
// one per line, indented for splicing into a step body. Every emitted
// line compiles back through CompileStatement.
func TranslateActions(actions []agent.Action) string {
	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		if stmt := translateAction(a); stmt != "" {
			lines = append(lines, "  "+stmt)
		}
	}
	return strings.Join(lines, "\n")
}

func translateAction(a agent.Action) string {
	switch a.Tool {
	case agent.ToolClick:
		return fmt.Sprintf("await page.%s.click();", locatorExpr(a.Locator))
	case agent.ToolType:
		stmt := fmt.Sprintf("await page.%s.fill(%s);", locatorExpr(a.Locator), jsQuote(stringInput(a, "text")))
		if boolInput(a, "submit") {
			stmt += "\n  await page.keyboard.press('Enter');"
		}
		return stmt
	case agent.ToolPressKey:
		return fmt.Sprintf("await page.keyboard.press(%s);", jsQuote(stringInput(a, "key")))
	case agent.ToolSelect:
		return fmt.Sprintf("await page.%s.selectOption(%s);", locatorExpr(a.Locator), jsQuote(stringInput(a, "value")))
	case agent.ToolWalletApprove:
		return "await wallet.approve();"
	case agent.ToolWalletConfirmTx:
		return "await wallet.confirmTransaction();"
	case agent.ToolWalletSwitchNetwork:
		return fmt.Sprintf("await wallet.switchNetwork(%s);", jsQuote(stringInput(a, "network")))
	}
	return ""
}

// locatorExpr picks the most durable address the action carries:
// testid, then role plus accessible name, then the raw selector.
func locatorExpr(l agent.Locator) string {
	switch {
	case l.TestID != "":
		return fmt.Sprintf("getByTestId(%s)", jsQuote(l.TestID))
	case l.Role != "" && l.Name != "":
		return fmt.Sprintf("getByRole(%s, { name: %s })", jsQuote(l.Role), jsQuote(l.Name))
	case l.Role != "":
		return fmt.Sprintf("getByRole(%s)", jsQuote(l.Role))
	default:
		return fmt.Sprintf("locator(%s)", jsQuote(l.Selector))
	}
}

// jsQuote encodes s as a single-quoted JavaScript string literal.
func jsQuote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func stringInput(a agent.Action, key string) string {
	v, _ := a.Input[key].(string)
	return v
}

func boolInput(a agent.Action, key string) bool {
	v, _ := a.Input[key].(bool)
	return v
}

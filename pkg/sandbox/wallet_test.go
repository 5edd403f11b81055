package sandbox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The popup drivers are exercised end-to-end against a real extension in
// deployment smoke tests; here we pin the tier ordering and the shape of
// the generated matcher script.

func TestButtonMatcherTierOrder(t *testing.T) {
	expr := approveMatcher.clickExpr()

	iTestID := strings.Index(expr, `"confirm-btn"`)
	iText := strings.Index(expr, `"connect"`)
	iStructural := strings.Index(expr, `"button.btn-primary"`)

	require.GreaterOrEqual(t, iTestID, 0)
	require.GreaterOrEqual(t, iText, 0)
	require.GreaterOrEqual(t, iStructural, 0)

	assert.Less(t, iTestID, iText, "testid anchors are tried before text matching")
	assert.Less(t, iText, iStructural, "text matching is tried before structural fallbacks")
}

func TestButtonMatcherExprShape(t *testing.T) {
	expr := rejectMatcher.clickExpr()

	assert.Contains(t, expr, "data-testid")
	assert.Contains(t, expr, `"reject"`)
	assert.Contains(t, expr, "el.click()")
	assert.Contains(t, expr, "return null")
	// Disabled controls never count as handled.
	assert.Contains(t, expr, "el.disabled")
}

func TestButtonMatcherTextsLowercased(t *testing.T) {
	m := buttonMatcher{
		name:  "case-test",
		texts: []string{"Switch Network", "APPROVE"},
	}
	expr := m.clickExpr()
	assert.Contains(t, expr, `"switch network"`)
	assert.Contains(t, expr, `"approve"`)
	assert.NotContains(t, expr, `"Switch Network"`)
}

func TestWalletMatchersCoverOperations(t *testing.T) {
	// Each operation needs at least one entry per tier so degraded
	// extension builds still resolve something.
	for _, m := range []buttonMatcher{
		approveMatcher, signMatcher, confirmTxMatcher,
		switchNetworkMatcher, addNetworkMatcher, rejectMatcher,
	} {
		assert.NotEmpty(t, m.testIDs, "%s needs testid anchors", m.name)
		assert.NotEmpty(t, m.texts, "%s needs text candidates", m.name)
		assert.NotEmpty(t, m.structural, "%s needs a structural fallback", m.name)
	}
}

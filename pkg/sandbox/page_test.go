package sandbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSString(t *testing.T) {
	assert.Equal(t, `"plain"`, jsString("plain"))
	assert.Equal(t, `"he said \"hi\""`, jsString(`he said "hi"`))
	assert.Equal(t, `"line\nbreak"`, jsString("line\nbreak"))
	// Closing script tags must not break out of the expression context.
	assert.NotContains(t, jsString("</script>"), "</script>")
}

func TestTargetLookupExpr(t *testing.T) {
	byRef := Target{Ref: "e5"}
	assert.Equal(t, `(window.__agentRefs || {})["e5"]`, byRef.lookupExpr())
	assert.Equal(t, "ref=e5", byRef.String())

	bySelector := Target{Selector: `[data-testid="connect"]`}
	assert.Equal(t, `document.querySelector("[data-testid=\"connect\"]")`, bySelector.lookupExpr())
	assert.Equal(t, `[data-testid="connect"]`, bySelector.String())
}

func TestIsExtensionURL(t *testing.T) {
	assert.True(t, isExtensionURL("chrome-extension://abcdef/home.html"))
	assert.True(t, isExtensionURL("moz-extension://abcdef/popup.html"))
	assert.False(t, isExtensionURL("https://app.example.com"))
	assert.False(t, isExtensionURL("about:blank"))
}

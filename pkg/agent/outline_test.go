package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutline(t *testing.T) {
	outline := `- generic [ref=e1]
  - banner
    - heading "Uniswap" [ref=e2]
  - button "Connect Wallet" [ref=e3] [testid=connect-wallet]
  - textbox "Amount" [ref=e4] [value=0.5]
  - checkbox "I agree" [ref=e5] [checked]
  - text "just context, no ref"`

	nodes := ParseOutline(outline)
	require.Len(t, nodes, 5, "ref-less lines are skipped")

	byRef := make(map[string]OutlineNode, len(nodes))
	for _, n := range nodes {
		byRef[n.Ref] = n
	}

	assert.Equal(t, "generic", byRef["e1"].Role)
	assert.Empty(t, byRef["e1"].Name)

	assert.Equal(t, "heading", byRef["e2"].Role)
	assert.Equal(t, "Uniswap", byRef["e2"].Name)

	connect := byRef["e3"]
	assert.Equal(t, "button", connect.Role)
	assert.Equal(t, "Connect Wallet", connect.Name)
	assert.Equal(t, "connect-wallet", connect.TestID)

	assert.Equal(t, "textbox", byRef["e4"].Role)
	assert.Empty(t, byRef["e4"].TestID)
}

func TestParseOutline_Empty(t *testing.T) {
	assert.Empty(t, ParseOutline(""))
	assert.Empty(t, ParseOutline("- text without any refs"))
}

func TestParseOutline_QuotedLabelWithBrackets(t *testing.T) {
	nodes := ParseOutline(`- button "Add [max]" [ref=e1]`)
	require.Len(t, nodes, 1)
	assert.Equal(t, "Add [max]", nodes[0].Name)
	assert.Equal(t, "e1", nodes[0].Ref)
}

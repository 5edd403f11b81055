package hybrid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoStepBody = `
  // ==========================================
  // STEP 1: Open the swap page
  // ==========================================
  await page.goto('https://app.example.test/swap');

  // ==========================================
  // STEP 2: Enter the amount
  // ==========================================
  await page.getByTestId('amount').fill('1.5');
`

func TestParseSteps_MarkedBody(t *testing.T) {
	steps := ParseSteps(twoStepBody)
	require.Len(t, steps, 2)

	assert.Equal(t, 1, steps[0].Number)
	assert.Equal(t, "Open the swap page", steps[0].Description)
	assert.Contains(t, steps[0].Body, "page.goto('https://app.example.test/swap')")
	assert.NotContains(t, steps[0].Body, "STEP 2")

	assert.Equal(t, 2, steps[1].Number)
	assert.Equal(t, "Enter the amount", steps[1].Description)
	assert.Contains(t, steps[1].Body, "fill('1.5')")
}

func TestParseSteps_FenceVariants(t *testing.T) {
	body := "// ═══════════\n" +
		"// step 3: Confirm in wallet\n" +
		"// ═══════════\n" +
		"await wallet.confirmTransaction();\n"
	steps := ParseSteps(body)
	require.Len(t, steps, 1)
	assert.Equal(t, 3, steps[0].Number)
	assert.Equal(t, "Confirm in wallet", steps[0].Description)
	assert.Contains(t, steps[0].Body, "wallet.confirmTransaction()")
}

func TestParseSteps_NoClosingFence(t *testing.T) {
	body := "// ====\n// STEP 1: Go\nawait page.goto('x');\n"
	steps := ParseSteps(body)
	require.Len(t, steps, 1)
	assert.Equal(t, "Go", steps[0].Description)
	assert.Equal(t, "await page.goto('x');\n", steps[0].Body)
}

func TestParseSteps_NoMarkersIsSingleStep(t *testing.T) {
	body := "await page.goto('https://x.test');\nawait page.getByTestId('go').click();\n"
	steps := ParseSteps(body)
	require.Len(t, steps, 1)
	assert.Equal(t, 1, steps[0].Number)
	assert.Empty(t, steps[0].Description)
	assert.Equal(t, body, steps[0].Body)
}

func TestParseSteps_CRLF(t *testing.T) {
	body := "// ======\r\n// STEP 1: Windows line endings\r\n// ======\r\nawait page.goto('x');\r\n"
	steps := ParseSteps(body)
	require.Len(t, steps, 1)
	assert.Equal(t, "Windows line endings", steps[0].Description)
}

func TestReserialize_RoundTrip(t *testing.T) {
	steps := ParseSteps(twoStepBody)
	again := ParseSteps(Reserialize(steps))
	assert.Equal(t, steps, again)
}

func TestReserialize_SyntheticSingleStep(t *testing.T) {
	body := "await page.goto('x');\n"
	steps := ParseSteps(body)
	assert.Equal(t, body, Reserialize(steps))
	assert.Equal(t, steps, ParseSteps(Reserialize(steps)))
}

func TestStepRegions_BoundedByTestBody(t *testing.T) {
	code := "test('swap', async ({ page, wallet }) => {" + twoStepBody + "});\n"
	regions := stepRegions(code)
	require.Len(t, regions, 2)
	for _, r := range regions {
		// Regions never reach into the wrapper.
		assert.NotContains(t, code[r.start:r.end], "test(")
		assert.NotContains(t, code[r.start:r.end], "});")
	}
	assert.Contains(t, code[regions[0].start:regions[0].end], "page.goto")
	assert.Contains(t, code[regions[1].start:regions[1].end], "fill('1.5')")
}

func TestStepRegions_PlainBodyWithoutMarkers(t *testing.T) {
	code := "await page.goto('x');"
	regions := stepRegions(code)
	require.Len(t, regions, 1)
	assert.Equal(t, 1, regions[0].number)
	assert.Equal(t, 0, regions[0].start)
	assert.Equal(t, len(code), regions[0].end)
}

func TestParseSteps_DescriptionTrimmed(t *testing.T) {
	body := "// ====\n// STEP 7:   spaced out   \n// ====\nawait page.goto('x');\n"
	steps := ParseSteps(body)
	require.Len(t, steps, 1)
	assert.Equal(t, 7, steps[0].Number)
	assert.Equal(t, "spaced out", steps[0].Description)
	assert.False(t, strings.HasPrefix(steps[0].Body, "//"))
}

package hybrid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/models"
	"github.com/dappsmith/conductor/pkg/runner"
)

func patchProgram() string {
	return "test('swap flow', async ({ page, wallet }) => {\n" +
		"  // ==========\n" +
		"  // STEP 1: Open the dApp\n" +
		"  // ==========\n" +
		"  await page.goto('https://app.example.test/swap');\n" +
		"\n" +
		"  // ==========\n" +
		"  // STEP 2: Start the swap\n" +
		"  // ==========\n" +
		"  await page.getByTestId('swap-btn').click();\n" +
		"\n" +
		"  // ==========\n" +
		"  // STEP 3: Confirm\n" +
		"  // ==========\n" +
		"  await wallet.confirmTransaction();\n" +
		"});\n"
}

func TestApplyPatches_ReplacesTargetStepOnly(t *testing.T) {
	patched, err := ApplyPatches(patchProgram(), []models.SpecPatch{{
		Step: 2,
		Code: "  await page.getByRole('button', { name: 'Accept cookies' }).click();\n  await page.getByTestId('swap-btn').click();",
	}})
	require.NoError(t, err)

	assert.Contains(t, patched, "Accept cookies")
	assert.Contains(t, patched, "await page.goto('https://app.example.test/swap');")
	assert.Contains(t, patched, "await wallet.confirmTransaction();")
	assert.Contains(t, patched, "// STEP 2: Start the swap")
	assert.Contains(t, patched, "test('swap flow'")
	assert.True(t, strings.HasSuffix(patched, "});\n"))

	// Still parses into the same three steps.
	open, end, ok := runner.TestBodyBounds(patched)
	require.True(t, ok)
	steps := ParseSteps(patched[open+1 : end])
	require.Len(t, steps, 3)
	assert.Contains(t, steps[1].Body, "Accept cookies")
	assert.Contains(t, steps[1].Body, "swap-btn")
}

func TestApplyPatches_MultipleStepsBottomUp(t *testing.T) {
	patched, err := ApplyPatches(patchProgram(), []models.SpecPatch{
		{Step: 1, Code: "  await page.goto('https://app.example.test/pool');"},
		{Step: 3, Code: "  await wallet.approve();"},
	})
	require.NoError(t, err)
	assert.Contains(t, patched, "/pool")
	assert.NotContains(t, patched, "/swap'")
	assert.Contains(t, patched, "wallet.approve();")
	assert.NotContains(t, patched, "confirmTransaction")
	assert.Contains(t, patched, "swap-btn")
}

func TestApplyPatches_UnknownStep(t *testing.T) {
	_, err := ApplyPatches(patchProgram(), []models.SpecPatch{{Step: 9, Code: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 9")
}

func TestApplyPatches_DuplicateStep(t *testing.T) {
	_, err := ApplyPatches(patchProgram(), []models.SpecPatch{
		{Step: 2, Code: "a"},
		{Step: 2, Code: "b"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate patch")
}

func TestApplyPatches_NoPatchesIsIdentity(t *testing.T) {
	code := patchProgram()
	patched, err := ApplyPatches(code, nil)
	require.NoError(t, err)
	assert.Equal(t, code, patched)
}

func TestApplyPatches_BareBodyWithoutWrapper(t *testing.T) {
	body := strings.TrimPrefix(patchProgram(), "test('swap flow', async ({ page, wallet }) => {\n")
	body = strings.TrimSuffix(body, "});\n")
	patched, err := ApplyPatches(body, []models.SpecPatch{{Step: 3, Code: "  await wallet.approve();"}})
	require.NoError(t, err)
	assert.Contains(t, patched, "wallet.approve();")
	assert.NotContains(t, patched, "confirmTransaction")
}

func TestRemapPatches(t *testing.T) {
	patches := []models.SpecPatch{
		{Step: 2, Code: "prelude"},
		{Step: 3, Code: "first flow step"},
		{Step: 5, Code: "third flow step"},
	}
	out := RemapPatches(patches, 2)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Step)
	assert.Equal(t, "first flow step", out[0].Code)
	assert.Equal(t, 3, out[1].Step)
}

func TestRemapPatches_NoPrelude(t *testing.T) {
	patches := []models.SpecPatch{{Step: 1, Code: "x"}}
	assert.Equal(t, patches, RemapPatches(patches, 0))
}

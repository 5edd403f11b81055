package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flowProgram = `import { test, expect } from '@playwright/test';

test('Swap tokens', async ({ page }) => {
  // =====================
  // STEP 1: Open the swap page
  // =====================
  await page.goto('https://app.example.test/swap');
  await expect(page.getByText('Swap')).toBeVisible();
});
`

const connectionProgram = `import { test } from '@playwright/test';

test('Connect wallet', async ({ page }) => {
  await page.goto('https://app.example.test');
  await page.getByRole('button', { name: 'Connect' }).click();
  await wallet.approve();
});
`

func body(t *testing.T, src string) string {
	t.Helper()
	open, end, ok := TestBodyBounds(src)
	require.True(t, ok)
	require.Equal(t, byte('{'), src[open])
	require.Equal(t, byte('}'), src[end])
	return src[open+1 : end]
}

func TestTestBodyBounds_ArrowWithDestructuredParams(t *testing.T) {
	got := body(t, flowProgram)
	assert.Contains(t, got, "page.goto")
	assert.Contains(t, got, "toBeVisible")
	assert.NotContains(t, got, "import")
	assert.NotContains(t, got, "Swap tokens")
}

func TestTestBodyBounds_FunctionCallback(t *testing.T) {
	src := `it('legacy', function () { await run(); });`
	assert.Equal(t, " await run(); ", body(t, src))
}

func TestTestBodyBounds_SingleParamArrow(t *testing.T) {
	src := `test('bare', async page => {
  await page.reload();
});`
	assert.Contains(t, body(t, src), "page.reload")
}

func TestTestBodyBounds_OptionsObjectArgument(t *testing.T) {
	src := `test('tagged', { tag: '@wallet' }, async ({ page }) => {
  await page.click('#go');
});`
	got := body(t, src)
	assert.Contains(t, got, "page.click")
	assert.NotContains(t, got, "tag")
}

func TestTestBodyBounds_DescribeWrapper(t *testing.T) {
	src := `test.describe('swap suite', () => {
  test('inner case', async ({ page }) => {
    await page.goto('https://x.test');
  });
});`
	got := body(t, src)
	assert.Contains(t, got, "page.goto")
	assert.NotContains(t, got, "inner case")
}

func TestTestBodyBounds_BracesInStringsAndComments(t *testing.T) {
	src := `test('tricky', async ({ page }) => {
  const sel = '{unbalanced';
  // stray } brace in a comment
  /* and { another } here */
  await page.click(sel);
});`
	got := body(t, src)
	assert.Contains(t, got, "page.click(sel)")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(got), "page.click(sel);"))
}

func TestTestBodyBounds_NoDeclaration(t *testing.T) {
	_, _, ok := TestBodyBounds("const limit = compute(1);")
	assert.False(t, ok)

	_, _, ok = TestBodyBounds("")
	assert.False(t, ok)
}

func TestTestBodyBounds_UnbalancedBody(t *testing.T) {
	_, _, ok := TestBodyBounds("test('broken', async ({ page }) => {\n  await page.goto('x');\n")
	assert.False(t, ok)
}

func TestBuildComposite_InjectsPreludeAndRetitles(t *testing.T) {
	composite := BuildComposite(connectionProgram, flowProgram)

	assert.Contains(t, composite, "'Connection + Flow'")
	assert.NotContains(t, composite, "Swap tokens")
	assert.Contains(t, composite, preludeMarker)
	assert.Contains(t, composite, flowMarker)

	// Single program: only the flow's import survives.
	assert.Equal(t, 1, strings.Count(composite, "import {"))

	// Prelude actions run before flow actions.
	assert.Less(t,
		strings.Index(composite, "wallet.approve"),
		strings.Index(composite, "page.goto('https://app.example.test/swap')"))

	// Flow step headers survive untouched.
	assert.Contains(t, composite, "STEP 1: Open the swap page")

	// The merged body is still balanced and holds both halves.
	got := body(t, composite)
	assert.Contains(t, got, "wallet.approve")
	assert.Contains(t, got, "toBeVisible")
}

func TestBuildComposite_FallbackConcatenation(t *testing.T) {
	prelude := "await wallet.connect();\n"
	composite := BuildComposite(prelude, flowProgram)

	assert.True(t, strings.HasPrefix(composite, "await wallet.connect();"))
	assert.Contains(t, composite, "Swap tokens")
}

func TestBuildComposite_EmptyPrelude(t *testing.T) {
	empty := "test('noop', async ({ page }) => {});"
	assert.Equal(t, flowProgram, BuildComposite(empty, flowProgram))
}

func TestRetitleTest(t *testing.T) {
	assert.Equal(t,
		`test("Connection + Flow", async () => {});`,
		retitleTest(`test("Old name", async () => {});`, CompositeTitle))

	// Escaped quotes inside the original title are consumed with it.
	assert.Equal(t,
		`test('Connection + Flow', cb);`,
		retitleTest(`test('don\'t stop', cb);`, CompositeTitle))

	// No quoted title: source unchanged.
	src := `test(identifier, cb);`
	assert.Equal(t, src, retitleTest(src, CompositeTitle))
}

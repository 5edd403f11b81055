package hybrid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileStatement_Verbs(t *testing.T) {
	cases := []struct {
		name string
		src  string
		verb Verb
		arg  string
	}{
		{"goto", "await page.goto('https://x.test/swap');", VerbGoto, "https://x.test/swap"},
		{"goBack", "await page.goBack();", VerbGoBack, ""},
		{"keyboard press", "await page.keyboard.press('Escape');", VerbKeyboardPress, "Escape"},
		{"click", "await page.getByTestId('swap').click();", VerbClick, ""},
		{"fill", "await page.getByTestId('amount').fill('1.5');", VerbFill, "1.5"},
		{"type is fill", "await page.getByLabel('Amount').type('2');", VerbFill, "2"},
		{"press", "await page.getByTestId('amount').press('Enter');", VerbPress, "Enter"},
		{"select", "await page.getByTestId('token').selectOption('USDC');", VerbSelect, "USDC"},
		{"wallet approve", "await wallet.approve();", VerbWalletApprove, ""},
		{"wallet sign", "await wallet.sign();", VerbWalletSign, ""},
		{"wallet confirm", "await wallet.confirmTransaction();", VerbWalletConfirmTx, ""},
		{"wallet reject", "await wallet.reject();", VerbWalletReject, ""},
		{"wallet siwe", "await wallet.handleSIWEPopup();", VerbWalletSIWE, ""},
		{"wallet switch", "await wallet.switchNetwork('Sepolia');", VerbWalletSwitchNetwork, "Sepolia"},
		{"expect visible", "await expect(page.getByText('Success')).toBeVisible();", VerbExpectVisible, ""},
		{"expect text", "await expect(page.getByTestId('balance')).toContainText('1.5');", VerbExpectText, "1.5"},
		{"expect url", "expect(page.url()).toContain('/swap');", VerbExpectURL, "/swap"},
		{"expect toHaveURL", "await expect(page).toHaveURL('/pool');", VerbExpectURL, "/pool"},
		{"no await", "page.goto('x');", VerbGoto, "x"},
		{"no semicolon", "await page.goBack()", VerbGoBack, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stmt, err := CompileStatement(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.verb, stmt.Verb)
			assert.Equal(t, tc.arg, stmt.Arg)
		})
	}
}

func TestCompileStatement_WaitForTimeout(t *testing.T) {
	stmt, err := CompileStatement("await page.waitForTimeout(2000);")
	require.NoError(t, err)
	assert.Equal(t, VerbWait, stmt.Verb)
	assert.Equal(t, 2000, stmt.Ms)
}

func TestCompileStatement_Targets(t *testing.T) {
	stmt, err := CompileStatement("await page.getByRole('button', { name: 'Connect Wallet' }).click();")
	require.NoError(t, err)
	require.NotNil(t, stmt.Target)
	assert.Equal(t, TargetRole, stmt.Target.Kind)
	assert.Equal(t, "button", stmt.Target.Role)
	assert.Equal(t, "Connect Wallet", stmt.Target.Name)

	stmt, err = CompileStatement(`await page.getByRole("link").click();`)
	require.NoError(t, err)
	assert.Equal(t, "link", stmt.Target.Role)
	assert.Empty(t, stmt.Target.Name)

	stmt, err = CompileStatement("await page.getByText('Transaction confirmed').click();")
	require.NoError(t, err)
	assert.Equal(t, TargetText, stmt.Target.Kind)
	assert.Equal(t, "Transaction confirmed", stmt.Target.Text)

	stmt, err = CompileStatement("await page.locator('#app .swap-form').click();")
	require.NoError(t, err)
	assert.Equal(t, TargetCSS, stmt.Target.Kind)
	assert.Equal(t, "#app .swap-form", stmt.Target.CSS)

	stmt, err = CompileStatement("await page.getByPlaceholder('0.0').fill('1');")
	require.NoError(t, err)
	assert.Equal(t, TargetCSS, stmt.Target.Kind)
	assert.Equal(t, `[placeholder="0.0"]`, stmt.Target.CSS)
}

func TestCompileStatement_EscapedQuotesInRoleName(t *testing.T) {
	stmt, err := CompileStatement(`await page.getByRole('button', { name: 'Buy \'ETH\'' }).click();`)
	require.NoError(t, err)
	assert.Equal(t, "Buy 'ETH'", stmt.Target.Name)
}

func TestCompileStatement_ReferenceError(t *testing.T) {
	_, err := CompileStatement("await metamask.approve();")
	require.Error(t, err)
	assert.Equal(t, "ReferenceError: metamask is not defined", err.Error())
	assert.False(t, errors.Is(err, ErrUnsupported))

	_, err = CompileStatement("pag.goto('x');")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ReferenceError: pag is not defined")
}

func TestCompileStatement_TypeError(t *testing.T) {
	_, err := CompileStatement("await page.clck('#x');")
	require.Error(t, err)
	assert.Equal(t, "TypeError: page.clck is not a function", err.Error())

	_, err = CompileStatement("await wallet.pay();")
	require.Error(t, err)
	assert.Equal(t, "TypeError: wallet.pay is not a function", err.Error())
}

func TestCompileStatement_UnsupportedStaysNonFatal(t *testing.T) {
	srcs := []string{
		"const x = 1;",
		"console.log('hi');",
		"await page.evaluate(() => window.scrollTo(0, 0));",
		"await page.hover('#menu');",
		"await expect(page.getByText('x')).not.toBeVisible();",
		"if (ready) { await page.goto('x'); }",
		"await page.getByTestId('list').hover();",
	}
	for _, src := range srcs {
		_, err := CompileStatement(src)
		require.Error(t, err, src)
		assert.ErrorIs(t, err, ErrUnsupported, src)
		_, fatal := FatalClass(err.Error())
		assert.False(t, fatal, src)
	}
}

func TestSplitStatements_Basics(t *testing.T) {
	body := `
  await page.goto('https://x.test');
  // a comment; with a semicolon
  await page.getByRole('button', { name: 'Swap' }).click();
  await expect(page.getByText('Done; really')).toBeVisible()
`
	stmts := SplitStatements(body)
	require.Len(t, stmts, 3)
	assert.Equal(t, "await page.goto('https://x.test')", stmts[0])
	assert.Contains(t, stmts[1], "name: 'Swap'")
	assert.Contains(t, stmts[2], "Done; really")
}

func TestSplitStatements_NestedAndMultiline(t *testing.T) {
	body := "await page.evaluate(() => {\n  doThing();\n  doOther();\n});\nawait page.goBack();"
	stmts := SplitStatements(body)
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "doOther()")
	assert.Equal(t, "await page.goBack()", stmts[1])
}

func TestSplitStatements_Empty(t *testing.T) {
	assert.Empty(t, SplitStatements(""))
	assert.Empty(t, SplitStatements("\n  \n// only a comment\n"))
}

func TestFatalClass(t *testing.T) {
	cases := []struct {
		text  string
		class string
		fatal bool
	}{
		{"ReferenceError: metamask is not defined", FatalCodeBug, true},
		{"TypeError: page.clck is not a function", FatalCodeBug, true},
		{"SyntaxError: unexpected token", FatalCodeBug, true},
		{"Error: Cannot find module 'helpers'", FatalCodeBug, true},
		{"page.goto: net::ERR_NAME_NOT_RESOLVED", FatalNetwork, true},
		{"connect ECONNREFUSED 127.0.0.1:3000", FatalNetwork, true},
		{"getaddrinfo ENOTFOUND app.example.test", FatalNetwork, true},
		{"request failed: ETIMEDOUT", FatalNetwork, true},
		{"timeout after 10s: element not visible", "", false},
		{"no wallet popup appeared for approve", "", false},
	}
	for _, tc := range cases {
		class, fatal := FatalClass(tc.text)
		assert.Equal(t, tc.fatal, fatal, tc.text)
		assert.Equal(t, tc.class, class, tc.text)
	}
}

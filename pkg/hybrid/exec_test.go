package hybrid

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/sandbox"
)

type enginePage struct {
	url        string
	outline    string
	texts      map[string]string
	navErr     error
	failClicks int

	navs       []string
	clicks     []sandbox.Target
	fills      []string
	keys       []string
	selections []string
	backs      int
	snaps      int
}

func (p *enginePage) Navigate(_ context.Context, url string) error {
	if p.navErr != nil {
		return p.navErr
	}
	p.navs = append(p.navs, url)
	p.url = url
	return nil
}

func (p *enginePage) GoBack(context.Context) error { p.backs++; return nil }

func (p *enginePage) URL(context.Context) (string, error) { return p.url, nil }

func (p *enginePage) Click(_ context.Context, target sandbox.Target) error {
	if p.failClicks > 0 {
		p.failClicks--
		return errors.New("element is not attached to the DOM")
	}
	p.clicks = append(p.clicks, target)
	return nil
}

func (p *enginePage) Type(_ context.Context, _ sandbox.Target, text string) error {
	p.fills = append(p.fills, text)
	return nil
}

func (p *enginePage) PressKey(_ context.Context, key string) error {
	p.keys = append(p.keys, key)
	return nil
}

func (p *enginePage) SelectOption(_ context.Context, _ sandbox.Target, value string) error {
	p.selections = append(p.selections, value)
	return nil
}

func (p *enginePage) Snapshot(context.Context) (string, error) {
	p.snaps++
	return p.outline, nil
}

func (p *enginePage) Text(_ context.Context, target sandbox.Target) (string, error) {
	if s, ok := p.texts[target.Ref]; ok {
		return s, nil
	}
	if s, ok := p.texts[target.Selector]; ok {
		return s, nil
	}
	return "", nil
}

func (p *enginePage) WaitVisible(_ context.Context, target sandbox.Target, _ time.Duration) error {
	if _, ok := p.texts[target.Selector]; ok {
		return nil
	}
	return fmt.Errorf("timed out waiting for %s to become visible", target)
}

type engineWallet struct {
	handled bool
	err     error

	approves, signs, confirms, rejects, siwes int
	networks                                  []string
}

func (w *engineWallet) Approve(context.Context) (bool, error) {
	w.approves++
	return w.handled, w.err
}

func (w *engineWallet) Sign(context.Context) (bool, error) {
	w.signs++
	return w.handled, w.err
}

func (w *engineWallet) ConfirmTransaction(context.Context) (bool, error) {
	w.confirms++
	return w.handled, w.err
}

func (w *engineWallet) SwitchNetwork(_ context.Context, name string) (bool, error) {
	w.networks = append(w.networks, name)
	return w.handled, w.err
}

func (w *engineWallet) Reject(context.Context) (bool, error) {
	w.rejects++
	return w.handled, w.err
}

func (w *engineWallet) HandleSIWEPopup(context.Context) (bool, error) {
	w.siwes++
	return w.handled, w.err
}

func newTestEngine() (*Engine, *enginePage, *engineWallet) {
	page := &enginePage{texts: map[string]string{}}
	wallet := &engineWallet{handled: true}
	engine := NewEngine(page, wallet)
	engine.timeout = 50 * time.Millisecond
	return engine, page, wallet
}

func TestEngine_ScriptedStatements(t *testing.T) {
	engine, page, wallet := newTestEngine()
	body := `
  await page.goto('https://app.example.test/swap');
  await page.getByTestId('amount').fill('1.5');
  await page.keyboard.press('Escape');
  await page.getByTestId('token').selectOption('USDC');
  await wallet.confirmTransaction();
  await page.goBack();
`
	require.NoError(t, engine.RunStep(context.Background(), body))
	assert.Equal(t, []string{"https://app.example.test/swap"}, page.navs)
	assert.Equal(t, []string{"1.5"}, page.fills)
	assert.Equal(t, []string{"Escape"}, page.keys)
	assert.Equal(t, []string{"USDC"}, page.selections)
	assert.Equal(t, 1, wallet.confirms)
	assert.Equal(t, 1, page.backs)
}

func TestEngine_TestIDBecomesSelector(t *testing.T) {
	engine, page, _ := newTestEngine()
	require.NoError(t, engine.RunStep(context.Background(), "await page.getByTestId('swap-btn').click();"))
	require.Len(t, page.clicks, 1)
	assert.Equal(t, `[data-testid="swap-btn"]`, page.clicks[0].Selector)
	assert.Zero(t, page.snaps)
}

func TestEngine_RoleResolvesThroughSnapshot(t *testing.T) {
	engine, page, _ := newTestEngine()
	page.outline = `- heading "Swap" [ref=e1]
- button "Connect Wallet" [ref=e2]
- textbox "Amount" [ref=e3]`
	body := "await page.getByRole('button', { name: 'Connect Wallet' }).click();"
	require.NoError(t, engine.RunStep(context.Background(), body))
	require.Len(t, page.clicks, 1)
	assert.Equal(t, "e2", page.clicks[0].Ref)
	assert.Positive(t, page.snaps)
}

func TestEngine_TextTargetMatchesByContent(t *testing.T) {
	engine, page, _ := newTestEngine()
	page.outline = `- link "View transaction history" [ref=e7]`
	require.NoError(t, engine.RunStep(context.Background(), "await page.getByText('transaction history').click();"))
	require.Len(t, page.clicks, 1)
	assert.Equal(t, "e7", page.clicks[0].Ref)
}

func TestEngine_RoleNotFound(t *testing.T) {
	engine, page, _ := newTestEngine()
	page.outline = `- heading "Swap" [ref=e1]`
	err := engine.RunStep(context.Background(), "await page.getByRole('button', { name: 'Missing' }).click();")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no matching element")
	assert.Contains(t, err.Error(), "timeout")
	assert.Contains(t, err.Error(), `getByRole("button", { name: "Missing" })`)
}

func TestEngine_PressFocusesThenSendsKey(t *testing.T) {
	engine, page, _ := newTestEngine()
	require.NoError(t, engine.RunStep(context.Background(), "await page.getByTestId('amount').press('Enter');"))
	assert.Len(t, page.clicks, 1)
	assert.Equal(t, []string{"Enter"}, page.keys)
}

func TestEngine_WalletPopupMissing(t *testing.T) {
	engine, _, wallet := newTestEngine()
	wallet.handled = false
	err := engine.RunStep(context.Background(), "await wallet.approve();")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no wallet popup appeared for approve")
	_, fatal := FatalClass(err.Error())
	assert.False(t, fatal)
}

func TestEngine_WalletFailure(t *testing.T) {
	engine, _, wallet := newTestEngine()
	wallet.err = errors.New("extension crashed")
	err := engine.RunStep(context.Background(), "await wallet.sign();")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet sign failed")
}

func TestEngine_SwitchNetworkPassesName(t *testing.T) {
	engine, _, wallet := newTestEngine()
	require.NoError(t, engine.RunStep(context.Background(), "await wallet.switchNetwork('Sepolia');"))
	assert.Equal(t, []string{"Sepolia"}, wallet.networks)
}

func TestEngine_ExpectText(t *testing.T) {
	engine, page, _ := newTestEngine()
	page.texts[`[data-testid="balance"]`] = "Balance: 1.5 ETH"
	require.NoError(t, engine.RunStep(context.Background(),
		"await expect(page.getByTestId('balance')).toContainText('1.5');"))

	err := engine.RunStep(context.Background(),
		"await expect(page.getByTestId('balance')).toContainText('9.9');")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `to contain "9.9"`)
	assert.Contains(t, err.Error(), "Balance: 1.5 ETH")
}

func TestEngine_ExpectURL(t *testing.T) {
	engine, page, _ := newTestEngine()
	page.url = "https://app.example.test/swap?from=ETH"
	require.NoError(t, engine.RunStep(context.Background(), "await expect(page.url()).toContain('/swap');"))

	err := engine.RunStep(context.Background(), "await expect(page.url()).toContain('/pool');")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `expected url to contain "/pool"`)
}

func TestEngine_ExpectVisibleBySelector(t *testing.T) {
	engine, page, _ := newTestEngine()
	page.texts["#status"] = "ready"
	require.NoError(t, engine.RunStep(context.Background(), "await expect(page.locator('#status')).toBeVisible();"))

	err := engine.RunStep(context.Background(), "await expect(page.locator('#missing')).toBeVisible();")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out waiting")
}

func TestEngine_ExpectVisibleByRole(t *testing.T) {
	engine, page, _ := newTestEngine()
	page.outline = `- alert "Transaction confirmed" [ref=e4]`
	require.NoError(t, engine.RunStep(context.Background(),
		"await expect(page.getByRole('alert')).toBeVisible();"))
	assert.Empty(t, page.clicks)
}

func TestEngine_CompileErrorsSurfaceUnwrapped(t *testing.T) {
	engine, _, _ := newTestEngine()
	err := engine.RunStep(context.Background(), "await metamask.approve();")
	require.Error(t, err)
	assert.Equal(t, "ReferenceError: metamask is not defined", err.Error())
	class, fatal := FatalClass(err.Error())
	assert.True(t, fatal)
	assert.Equal(t, FatalCodeBug, class)
}

func TestEngine_RuntimeErrorsNameTheStatement(t *testing.T) {
	engine, page, _ := newTestEngine()
	page.failClicks = 1
	err := engine.RunStep(context.Background(), "await page.getByTestId('swap-btn').click();")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page.getByTestId('swap-btn').click()")
	assert.Contains(t, err.Error(), "not attached")
}

func TestEngine_StripsInlineAnnotations(t *testing.T) {
	engine, page, _ := newTestEngine()
	require.NoError(t, engine.RunStep(context.Background(),
		"await page.getByTestId('amount').fill('1.5' as string);"))
	assert.Equal(t, []string{"1.5"}, page.fills)
}

func TestEngine_Scripted(t *testing.T) {
	engine, page, _ := newTestEngine()

	fn, ok := engine.Scripted("await page.goto('https://x.test');\nawait page.waitForTimeout(1);\nawait expect(page.url()).toContain('x.test');")
	require.True(t, ok)
	require.NoError(t, fn(context.Background()))
	assert.Equal(t, []string{"https://x.test"}, page.navs)

	_, ok = engine.Scripted("await page.getByTestId('swap').click();")
	assert.False(t, ok)

	_, ok = engine.Scripted("")
	assert.False(t, ok)

	_, ok = engine.Scripted("await metamask.approve();")
	assert.False(t, ok)
}

func TestEngine_ScriptedReportsFailure(t *testing.T) {
	engine, page, _ := newTestEngine()
	page.navErr = errors.New("net::ERR_NAME_NOT_RESOLVED")
	fn, ok := engine.Scripted("await page.goto('https://down.test');")
	require.True(t, ok)
	err := fn(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "net::ERR_NAME_NOT_RESOLVED")
	assert.Contains(t, err.Error(), "page.goto('https://down.test')")
}

package sandbox

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dappsmith/conductor/pkg/sandbox/cdp"
)

// Onboarding drives the extension's first-run import flow. Unlike the
// popup operations this is fatal on failure: a sandbox without a seeded
// wallet identity is useless, so errors here abort the bootstrap
// attempt.

var (
	importWalletMatcher = buttonMatcher{
		name:       "onboarding-import",
		testIDs:    []string{"onboarding-import-wallet"},
		texts:      []string{"import an existing wallet", "import wallet", "import existing"},
		structural: []string{"button.btn-primary"},
	}
	confirmSeedMatcher = buttonMatcher{
		name:       "onboarding-confirm-seed",
		testIDs:    []string{"import-srp-confirm"},
		texts:      []string{"confirm secret recovery phrase", "confirm"},
		structural: []string{"button.btn-primary"},
	}
	createPasswordMatcher = buttonMatcher{
		name:       "onboarding-create-password",
		testIDs:    []string{"create-password-import", "create-password-wallet"},
		texts:      []string{"import my wallet", "create wallet", "import"},
		structural: []string{"button.btn-primary"},
	}
	onboardingDoneMatcher = buttonMatcher{
		name:       "onboarding-done",
		testIDs:    []string{"onboarding-complete-done", "pin-extension-next", "pin-extension-done"},
		texts:      []string{"got it", "next", "done", "all done"},
		structural: []string{"button.btn-primary"},
	}
	termsMatcher = buttonMatcher{
		name:       "onboarding-terms",
		testIDs:    []string{"onboarding-terms-checkbox"},
		texts:      []string{},
		structural: []string{"input[type=\"checkbox\"]"},
	}
	metricsDeclineMatcher = buttonMatcher{
		name:       "onboarding-metrics",
		testIDs:    []string{"metametrics-no-thanks"},
		texts:      []string{"no thanks", "i agree"},
		structural: []string{},
	}
)

// onboardWallet imports seedPhrase into the extension through its
// onboarding UI and finishes with a throwaway profile password.
func onboardWallet(ctx context.Context, btx *BrowserContext, seedPhrase, password string) error {
	sess, err := openOnboardingPage(ctx, btx)
	if err != nil {
		return err
	}

	if err := awaitDocumentReady(ctx, sess, 10*time.Second); err != nil {
		return fmt.Errorf("onboarding page never loaded: %w", err)
	}

	// Optional consent gates vary between extension versions.
	_, _ = clickTiered(ctx, sess, termsMatcher, 2*time.Second)

	if ok, err := clickTiered(ctx, sess, importWalletMatcher, 10*time.Second); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("onboarding import button not found")
	}

	_, _ = clickTiered(ctx, sess, metricsDeclineMatcher, 3*time.Second)

	if err := fillSeedPhrase(ctx, sess, seedPhrase); err != nil {
		return err
	}
	if ok, err := clickTiered(ctx, sess, confirmSeedMatcher, 5*time.Second); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("seed confirmation button not found")
	}

	if err := fillPasswords(ctx, sess, password); err != nil {
		return err
	}
	if ok, err := clickTiered(ctx, sess, createPasswordMatcher, 5*time.Second); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("password confirmation button not found")
	}

	// Completion screens: click through whatever sequence shows up.
	for i := 0; i < 3; i++ {
		if ok, _ := clickTiered(ctx, sess, onboardingDoneMatcher, 5*time.Second); !ok {
			break
		}
	}

	_ = btx.CloseTab(ctx, sess)
	return nil
}

// openOnboardingPage reuses the tab the extension opened at first run,
// falling back to opening its home page directly.
func openOnboardingPage(ctx context.Context, btx *BrowserContext) (*cdp.Session, error) {
	origin, err := awaitExtensionOrigin(ctx, btx, 10*time.Second)
	if err != nil {
		return nil, err
	}

	tabs, err := btx.Tabs(ctx)
	if err == nil {
		for _, tab := range tabs {
			if strings.HasPrefix(tab.URL, origin) {
				if sess, err := btx.Attach(ctx, tab.TargetID); err == nil {
					return sess, nil
				}
			}
		}
	}
	return btx.OpenTab(ctx, origin+"/home.html")
}

// awaitExtensionOrigin polls until the extension has registered a
// target; its service worker can lag the browser by a moment.
func awaitExtensionOrigin(ctx context.Context, btx *BrowserContext, timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)
	for {
		origin, err := btx.ExtensionOrigin(ctx)
		if err == nil {
			return origin, nil
		}
		if isConnectionLost(err) || ctx.Err() != nil {
			return "", err
		}
		if time.Now().After(deadline) {
			return "", fmt.Errorf("wallet extension never came up: %w", err)
		}
		btx.origins.Invalidate()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(250 * time.Millisecond):
		}
	}
}

// clickTiered polls the matcher until a tier hits or the timeout runs
// out. Used by onboarding where controls render asynchronously.
func clickTiered(ctx context.Context, sess *cdp.Session, m buttonMatcher, timeout time.Duration) (bool, error) {
	expr := m.clickExpr()
	deadline := time.Now().Add(timeout)
	for {
		var tier *string
		err := sess.Evaluate(ctx, expr, &tier)
		if err != nil && (isConnectionLost(err) || ctx.Err() != nil) {
			return false, err
		}
		if err == nil && tier != nil {
			return true, nil
		}
		if time.Now().After(deadline) {
			return false, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
}

// fillSeedPhrase enters the recovery phrase, handling both per-word
// input grids and single-textarea layouts. Values are set through the
// native setter so React-controlled inputs observe the change.
func fillSeedPhrase(ctx context.Context, sess *cdp.Session, seedPhrase string) error {
	words := strings.Fields(seedPhrase)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = jsString(w)
	}

	expr := fmt.Sprintf(`(() => {
  const words = [%s];
  const setValue = (el, v) => {
    const proto = el.tagName === 'TEXTAREA' ? window.HTMLTextAreaElement.prototype : window.HTMLInputElement.prototype;
    Object.getOwnPropertyDescriptor(proto, 'value').set.call(el, v);
    el.dispatchEvent(new Event('input', {bubbles: true}));
    el.dispatchEvent(new Event('change', {bubbles: true}));
  };
  const wordInputs = document.querySelectorAll('[data-testid^="import-srp__srp-word-"]');
  if (wordInputs.length >= words.length) {
    for (let i = 0; i < words.length; i++) setValue(wordInputs[i], words[i]);
    return 'words';
  }
  const area = document.querySelector('textarea');
  if (area) { setValue(area, words.join(' ')); return 'textarea'; }
  return null;
})()`, strings.Join(quoted, ", "))

	deadline := time.Now().Add(10 * time.Second)
	for {
		var layout *string
		err := sess.Evaluate(ctx, expr, &layout)
		if err != nil && (isConnectionLost(err) || ctx.Err() != nil) {
			return err
		}
		if err == nil && layout != nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("seed phrase inputs not found")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
}

// fillPasswords sets every password field to the profile password and
// ticks any unchecked consent checkbox on the form.
func fillPasswords(ctx context.Context, sess *cdp.Session, password string) error {
	expr := fmt.Sprintf(`(() => {
  const setValue = (el, v) => {
    Object.getOwnPropertyDescriptor(window.HTMLInputElement.prototype, 'value').set.call(el, v);
    el.dispatchEvent(new Event('input', {bubbles: true}));
    el.dispatchEvent(new Event('change', {bubbles: true}));
  };
  const fields = document.querySelectorAll('input[type="password"]');
  if (fields.length === 0) return false;
  for (const el of fields) setValue(el, %s);
  for (const box of document.querySelectorAll('input[type="checkbox"]')) {
    if (!box.checked) box.click();
  }
  return true;
})()`, jsString(password))

	deadline := time.Now().Add(10 * time.Second)
	for {
		var filled bool
		err := sess.Evaluate(ctx, expr, &filled)
		if err != nil && (isConnectionLost(err) || ctx.Err() != nil) {
			return err
		}
		if err == nil && filled {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("password inputs not found")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
}

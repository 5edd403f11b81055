package sandbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/sandbox/cdp"
)

const (
	// dependentPopupPolls bounds how many times a follow-up popup (a
	// SIWE signature after connect, say) is polled for before giving up.
	dependentPopupPolls    = 3
	dependentPopupInterval = 2 * time.Second

	notificationPath = "/notification.html"
)

// buttonMatcher describes how to find a popup's action button, in
// decreasing order of reliability: testid anchors, then role+text, then
// structural selectors as a last resort.
type buttonMatcher struct {
	name       string
	testIDs    []string
	texts      []string
	structural []string
}

var (
	approveMatcher = buttonMatcher{
		name:       "approve",
		testIDs:    []string{"confirm-btn", "page-container-footer-next", "confirm-footer-button"},
		texts:      []string{"connect", "approve", "next", "confirm"},
		structural: []string{"button.btn-primary", ".page-container__footer button:last-of-type"},
	}
	signMatcher = buttonMatcher{
		name:       "sign",
		testIDs:    []string{"confirm-footer-button", "page-container-footer-next", "signature-sign-button"},
		texts:      []string{"sign", "confirm"},
		structural: []string{"button.btn-primary", ".signature-request-footer button:last-of-type"},
	}
	confirmTxMatcher = buttonMatcher{
		name:       "confirm-transaction",
		testIDs:    []string{"confirm-footer-button", "page-container-footer-next"},
		texts:      []string{"confirm", "submit"},
		structural: []string{"button.btn-primary", ".confirm-page-container-footer button:last-of-type"},
	}
	switchNetworkMatcher = buttonMatcher{
		name:       "switch-network",
		testIDs:    []string{"confirmation-submit-button", "page-container-footer-next"},
		texts:      []string{"switch network", "approve", "switch"},
		structural: []string{"button.btn-primary"},
	}
	addNetworkMatcher = buttonMatcher{
		name:       "add-network",
		testIDs:    []string{"confirmation-submit-button", "page-container-footer-next"},
		texts:      []string{"approve", "add network", "add"},
		structural: []string{"button.btn-primary"},
	}
	rejectMatcher = buttonMatcher{
		name:       "reject",
		testIDs:    []string{"page-container-footer-cancel", "cancel-btn", "confirm-footer-cancel-button"},
		texts:      []string{"reject", "cancel", "deny"},
		structural: []string{"button.btn-secondary", ".page-container__footer button:first-of-type"},
	}
)

// clickExpr builds a JS expression that tries the matcher's tiers in
// order, clicks the first hit, and reports which tier matched.
func (m buttonMatcher) clickExpr() string {
	var b strings.Builder
	b.WriteString("(() => {\n")

	b.WriteString("  for (const id of [")
	for i, id := range m.testIDs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(jsString(id))
	}
	b.WriteString("]) {\n")
	b.WriteString("    const el = document.querySelector('[data-testid=\"' + id + '\"]');\n")
	b.WriteString("    if (el && !el.disabled) { el.click(); return 'testid:' + id; }\n")
	b.WriteString("  }\n")

	b.WriteString("  const texts = [")
	for i, t := range m.texts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(jsString(strings.ToLower(t)))
	}
	b.WriteString("];\n")
	b.WriteString(`  for (const el of document.querySelectorAll('button, [role="button"], input[type="submit"]')) {
    if (el.disabled) continue;
    const label = ((el.textContent || el.value) || '').trim().toLowerCase();
    if (!label) continue;
    for (const want of texts) {
      if (label === want || label.includes(want)) { el.click(); return 'text:' + want; }
    }
  }
`)

	b.WriteString("  for (const sel of [")
	for i, sel := range m.structural {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(jsString(sel))
	}
	b.WriteString("]) {\n")
	b.WriteString("    const el = document.querySelector(sel);\n")
	b.WriteString("    if (el && !el.disabled) { el.click(); return 'structural:' + sel; }\n")
	b.WriteString("  }\n")
	b.WriteString("  return null;\n})()")
	return b.String()
}

// Wallet drives the extension's approval popups. Every operation is
// race-safe against the popup's unpredictable arrival:
//
//  1. drive an already-open notification page;
//  2. else wait briefly for the extension to open one itself;
//  3. else open the notification URL manually and drive that.
//
// Operations report handled-or-not; the error return is reserved for a
// dead browser connection, never for "no popup showed up".
type Wallet struct {
	btx     *BrowserContext
	cfg     *config.SandboxConfig
	address string
}

func newWallet(btx *BrowserContext, cfg *config.SandboxConfig, address string) *Wallet {
	return &Wallet{btx: btx, cfg: cfg, address: address}
}

// GetAddress returns the wallet's account address.
func (w *Wallet) GetAddress() string { return w.address }

// Approve accepts a pending connect request.
func (w *Wallet) Approve(ctx context.Context) (bool, error) {
	return w.handlePopup(ctx, approveMatcher)
}

// Sign accepts a pending signature request.
func (w *Wallet) Sign(ctx context.Context) (bool, error) {
	return w.handlePopup(ctx, signMatcher)
}

// ConfirmTransaction accepts a pending transaction.
func (w *Wallet) ConfirmTransaction(ctx context.Context) (bool, error) {
	return w.handlePopup(ctx, confirmTxMatcher)
}

// SwitchNetwork approves a pending network-switch request.
func (w *Wallet) SwitchNetwork(ctx context.Context, name string) (bool, error) {
	handled, err := w.handlePopup(ctx, switchNetworkMatcher)
	if err == nil && !handled {
		slog.Debug("No network switch popup to approve", "network", name)
	}
	return handled, err
}

// AddNetwork approves a pending add-network request.
func (w *Wallet) AddNetwork(ctx context.Context) (bool, error) {
	return w.handlePopup(ctx, addNetworkMatcher)
}

// Reject dismisses whatever request is pending.
func (w *Wallet) Reject(ctx context.Context) (bool, error) {
	return w.handlePopup(ctx, rejectMatcher)
}

// HandleSIWEPopup waits for the signature popup that some dApps open
// right after a connect approval and signs it. Polls a bounded number
// of times; absence is not a failure.
func (w *Wallet) HandleSIWEPopup(ctx context.Context) (bool, error) {
	for i := 0; i < dependentPopupPolls; i++ {
		if sess, ok := w.btx.FindWalletPopup(ctx); ok {
			return w.drive(ctx, sess, signMatcher)
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(dependentPopupInterval):
		}
	}
	return false, nil
}

func (w *Wallet) handlePopup(ctx context.Context, m buttonMatcher) (bool, error) {
	if sess, ok := w.btx.FindWalletPopup(ctx); ok {
		return w.drive(ctx, sess, m)
	}

	if sess, ok := w.awaitPopup(ctx, w.cfg.ActionTimeout); ok {
		return w.drive(ctx, sess, m)
	}

	sess, err := w.openNotificationPage(ctx)
	if err != nil {
		if isConnectionLost(err) || ctx.Err() != nil {
			return false, err
		}
		slog.Debug("Could not open wallet notification page", "operation", m.name, "error", err)
		return false, nil
	}
	return w.drive(ctx, sess, m)
}

// awaitPopup polls for a notification page the extension opens on its
// own.
func (w *Wallet) awaitPopup(ctx context.Context, timeout time.Duration) (*cdp.Session, bool) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if sess, ok := w.btx.FindWalletPopup(ctx); ok {
			return sess, true
		}
		select {
		case <-ctx.Done():
			return nil, false
		case <-time.After(200 * time.Millisecond):
		}
	}
	return nil, false
}

// openNotificationPage opens the extension's notification URL manually,
// for requests whose popup was lost or suppressed.
func (w *Wallet) openNotificationPage(ctx context.Context) (*cdp.Session, error) {
	origin, err := w.btx.ExtensionOrigin(ctx)
	if err != nil {
		return nil, err
	}
	return w.btx.OpenTab(ctx, origin+notificationPath)
}

// drive waits for the popup document to settle, clicks through the
// matcher tiers, and lets the popup close itself (closing it manually
// when it lingers).
func (w *Wallet) drive(ctx context.Context, sess *cdp.Session, m buttonMatcher) (bool, error) {
	if err := awaitDocumentReady(ctx, sess, w.cfg.ActionTimeout); err != nil {
		if isConnectionLost(err) || ctx.Err() != nil {
			return false, err
		}
		return false, nil
	}

	var tier *string
	if err := sess.Evaluate(ctx, m.clickExpr(), &tier); err != nil {
		if isConnectionLost(err) || ctx.Err() != nil {
			return false, err
		}
		slog.Debug("Wallet popup interaction failed", "operation", m.name, "error", err)
		return false, nil
	}
	if tier == nil {
		slog.Debug("No matching control in wallet popup", "operation", m.name)
		// Leave a manually opened notification page in place; a retry
		// will find and reuse it.
		return false, nil
	}

	slog.Debug("Wallet popup handled", "operation", m.name, "matched", *tier)
	w.awaitPopupGone(ctx, sess)
	return true, nil
}

// awaitPopupGone gives the popup a moment to close after the click,
// then closes it explicitly.
func (w *Wallet) awaitPopupGone(ctx context.Context, sess *cdp.Session) {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		tabs, err := w.btx.Tabs(ctx)
		if err != nil {
			return
		}
		open := false
		for _, tab := range tabs {
			if tab.TargetID == sess.TargetID {
				open = true
				break
			}
		}
		if !open {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(200 * time.Millisecond):
		}
	}
	_ = w.btx.CloseTab(ctx, sess)
}

// awaitDocumentReady polls the session until its document finished
// loading.
func awaitDocumentReady(ctx context.Context, sess *cdp.Session, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		var state string
		err := sess.Evaluate(ctx, "document.readyState", &state)
		if err == nil && (state == "complete" || state == "interactive") {
			return nil
		}
		if err != nil && isConnectionLost(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("popup document never settled: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func isConnectionLost(err error) bool {
	return errors.Is(err, cdp.ErrConnClosed)
}

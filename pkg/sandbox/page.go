package sandbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/sandbox/cdp"
)

// Target addresses an element either by an opaque ref from the latest
// snapshot or by a CSS selector. Exactly one side is set.
type Target struct {
	Ref      string
	Selector string
}

func (t Target) String() string {
	if t.Ref != "" {
		return "ref=" + t.Ref
	}
	return t.Selector
}

func (t Target) lookupExpr() string {
	if t.Ref != "" {
		return refLookupExpr(t.Ref)
	}
	return selectorLookupExpr(t.Selector)
}

// jsString encodes s as a JavaScript string literal.
func jsString(s string) string {
	raw, _ := json.Marshal(s)
	return string(raw)
}

// Page drives a single browser tab. Each action gets its own timeout
// derived from the sandbox config; navigation uses the longer budget.
type Page struct {
	sess *cdp.Session
	cfg  *config.SandboxConfig
}

func newPage(sess *cdp.Session, cfg *config.SandboxConfig) *Page {
	return &Page{sess: sess, cfg: cfg}
}

// Session exposes the underlying CDP session for tracing and streaming.
func (p *Page) Session() *cdp.Session { return p.sess }

func (p *Page) actionCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.cfg.ActionTimeout)
}

// URL returns the tab's current location.
func (p *Page) URL(ctx context.Context) (string, error) {
	ctx, cancel := p.actionCtx(ctx)
	defer cancel()
	var href string
	if err := p.sess.Evaluate(ctx, "location.href", &href); err != nil {
		return "", err
	}
	return href, nil
}

// Navigate drives the tab to url and waits for the document to load.
func (p *Page) Navigate(ctx context.Context, url string) error {
	navCtx, cancel := context.WithTimeout(ctx, p.cfg.NavigationTimeout)
	defer cancel()
	if err := p.sess.Navigate(navCtx, url); err != nil {
		return err
	}
	return p.awaitLoad(navCtx)
}

// GoBack navigates one history entry back.
func (p *Page) GoBack(ctx context.Context) error {
	navCtx, cancel := context.WithTimeout(ctx, p.cfg.NavigationTimeout)
	defer cancel()
	if err := p.sess.HistoryBack(navCtx); err != nil {
		return err
	}
	return p.awaitLoad(navCtx)
}

// awaitLoad polls document.readyState until the page finished loading.
func (p *Page) awaitLoad(ctx context.Context) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		var state string
		if err := p.sess.Evaluate(ctx, "document.readyState", &state); err == nil && state == "complete" {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out waiting for page load: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// elementCenter scrolls the target into view and returns its viewport
// center.
func (p *Page) elementCenter(ctx context.Context, target Target) (x, y float64, err error) {
	expr := fmt.Sprintf(`(() => {
  const el = %s;
  if (!el) return null;
  el.scrollIntoView({block: 'center', inline: 'center'});
  const r = el.getBoundingClientRect();
  return {x: r.x + r.width / 2, y: r.y + r.height / 2};
})()`, target.lookupExpr())

	var center *struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := p.sess.Evaluate(ctx, expr, &center); err != nil {
		return 0, 0, err
	}
	if center == nil {
		return 0, 0, fmt.Errorf("element not found: %s", target)
	}
	return center.X, center.Y, nil
}

// Click dispatches a real mouse click on the target element.
func (p *Page) Click(ctx context.Context, target Target) error {
	ctx, cancel := p.actionCtx(ctx)
	defer cancel()
	x, y, err := p.elementCenter(ctx, target)
	if err != nil {
		return err
	}
	if err := p.sess.DispatchMouseClick(ctx, x, y); err != nil {
		return fmt.Errorf("failed to click %s: %w", target, err)
	}
	return nil
}

// Type focuses the target, selects its current content, and inserts
// text in its place.
func (p *Page) Type(ctx context.Context, target Target, text string) error {
	ctx, cancel := p.actionCtx(ctx)
	defer cancel()
	expr := fmt.Sprintf(`(() => {
  const el = %s;
  if (!el) return false;
  el.focus();
  if (typeof el.select === 'function') el.select();
  return true;
})()`, target.lookupExpr())

	var focused bool
	if err := p.sess.Evaluate(ctx, expr, &focused); err != nil {
		return err
	}
	if !focused {
		return fmt.Errorf("element not found: %s", target)
	}
	if err := p.sess.InsertText(ctx, text); err != nil {
		return fmt.Errorf("failed to type into %s: %w", target, err)
	}
	return nil
}

// PressKey synthesizes a key press on the focused element.
func (p *Page) PressKey(ctx context.Context, key string) error {
	spec, ok := cdp.LookupKey(key)
	if !ok {
		return fmt.Errorf("unsupported key %q", key)
	}
	ctx, cancel := p.actionCtx(ctx)
	defer cancel()
	return p.sess.DispatchKey(ctx, spec)
}

// SelectOption picks a <select> option by value or visible label and
// fires the change events frameworks listen for.
func (p *Page) SelectOption(ctx context.Context, target Target, value string) error {
	ctx, cancel := p.actionCtx(ctx)
	defer cancel()
	expr := fmt.Sprintf(`(() => {
  const el = %s;
  if (!el) return 'missing';
  const want = %s;
  for (const opt of el.options || []) {
    if (opt.value === want || opt.label.trim() === want || opt.textContent.trim() === want) {
      el.value = opt.value;
      el.dispatchEvent(new Event('input', {bubbles: true}));
      el.dispatchEvent(new Event('change', {bubbles: true}));
      return 'ok';
    }
  }
  return 'nooption';
})()`, target.lookupExpr(), jsString(value))

	var outcome string
	if err := p.sess.Evaluate(ctx, expr, &outcome); err != nil {
		return err
	}
	switch outcome {
	case "ok":
		return nil
	case "missing":
		return fmt.Errorf("element not found: %s", target)
	default:
		return fmt.Errorf("no option %q in %s", value, target)
	}
}

// Scroll moves the window by the given deltas.
func (p *Page) Scroll(ctx context.Context, dx, dy int) error {
	ctx, cancel := p.actionCtx(ctx)
	defer cancel()
	expr := fmt.Sprintf("window.scrollBy(%d, %d)", dx, dy)
	return p.sess.Evaluate(ctx, expr, nil)
}

// Evaluate runs an arbitrary expression and returns its JSON value.
func (p *Page) Evaluate(ctx context.Context, expression string) (interface{}, error) {
	ctx, cancel := p.actionCtx(ctx)
	defer cancel()
	var out interface{}
	if err := p.sess.Evaluate(ctx, expression, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Screenshot captures the viewport as PNG bytes.
func (p *Page) Screenshot(ctx context.Context) ([]byte, error) {
	ctx, cancel := p.actionCtx(ctx)
	defer cancel()
	return p.sess.CaptureScreenshot(ctx)
}

// Snapshot rebuilds the element outline and ref registry.
func (p *Page) Snapshot(ctx context.Context) (string, error) {
	ctx, cancel := p.actionCtx(ctx)
	defer cancel()
	var outline string
	if err := p.sess.Evaluate(ctx, snapshotScript, &outline); err != nil {
		return "", fmt.Errorf("failed to snapshot page: %w", err)
	}
	return outline, nil
}

// Text returns the trimmed text content of the target element.
func (p *Page) Text(ctx context.Context, target Target) (string, error) {
	ctx, cancel := p.actionCtx(ctx)
	defer cancel()
	expr := fmt.Sprintf(`(() => {
  const el = %s;
  if (!el) return null;
  return (el.value !== undefined && el.tagName !== 'BUTTON' ? String(el.value) : el.textContent || '').trim();
})()`, target.lookupExpr())

	var text *string
	if err := p.sess.Evaluate(ctx, expr, &text); err != nil {
		return "", err
	}
	if text == nil {
		return "", fmt.Errorf("element not found: %s", target)
	}
	return *text, nil
}

// IsVisible reports whether the target exists and occupies layout space.
func (p *Page) IsVisible(ctx context.Context, target Target) (bool, error) {
	ctx, cancel := p.actionCtx(ctx)
	defer cancel()
	return p.isVisibleOnce(ctx, target)
}

func (p *Page) isVisibleOnce(ctx context.Context, target Target) (bool, error) {
	expr := fmt.Sprintf(`(() => {
  const el = %s;
  if (!el) return false;
  const r = el.getBoundingClientRect();
  if (r.width === 0 && r.height === 0) return false;
  const s = window.getComputedStyle(el);
  return s.visibility !== 'hidden' && s.display !== 'none';
})()`, target.lookupExpr())

	var visible bool
	if err := p.sess.Evaluate(ctx, expr, &visible); err != nil {
		return false, err
	}
	return visible, nil
}

// WaitVisible polls until the target is visible or the timeout elapses.
// A zero timeout uses the configured action timeout.
func (p *Page) WaitVisible(ctx context.Context, target Target, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = p.cfg.ActionTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		visible, err := p.isVisibleOnce(ctx, target)
		if err == nil && visible {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out waiting for %s to become visible", target)
		case <-ticker.C:
		}
	}
}

package sandbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/dappsmith/conductor/pkg/sandbox/cdp"
)

// TabScreenshot is one open tab's viewport capture.
type TabScreenshot struct {
	URL   string
	Title string
	PNG   []byte
}

// BrowserContext exposes the browser's open tabs: enumeration,
// cross-tab screenshots, and manual popup management for the wallet
// driver.
type BrowserContext struct {
	client          *cdp.Client
	origins         *originCache
	primaryTargetID string
}

func newBrowserContext(client *cdp.Client, primaryTargetID string) *BrowserContext {
	return &BrowserContext{
		client:          client,
		origins:         &originCache{},
		primaryTargetID: primaryTargetID,
	}
}

// Tabs lists open page targets, extension pages included.
func (c *BrowserContext) Tabs(ctx context.Context) ([]cdp.TargetInfo, error) {
	targets, err := c.client.GetTargets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tabs: %w", err)
	}
	var tabs []cdp.TargetInfo
	for _, t := range targets {
		if t.Type == "page" {
			tabs = append(tabs, t)
		}
	}
	return tabs, nil
}

// ExtensionOrigin resolves the wallet extension's origin.
func (c *BrowserContext) ExtensionOrigin(ctx context.Context) (string, error) {
	return c.origins.Get(ctx, c.client)
}

// Attach opens a CDP session on the given tab.
func (c *BrowserContext) Attach(ctx context.Context, targetID string) (*cdp.Session, error) {
	return c.client.AttachToTarget(ctx, targetID)
}

// Screenshots captures every open non-extension tab. Wallet pages hold
// secrets (seed confirmation screens among them) and never leave the
// sandbox.
func (c *BrowserContext) Screenshots(ctx context.Context) ([]TabScreenshot, error) {
	tabs, err := c.Tabs(ctx)
	if err != nil {
		return nil, err
	}
	var shots []TabScreenshot
	for _, tab := range tabs {
		if isExtensionURL(tab.URL) || tab.URL == "about:blank" {
			continue
		}
		sess, err := c.Attach(ctx, tab.TargetID)
		if err != nil {
			continue
		}
		png, err := sess.CaptureScreenshot(ctx)
		if err != nil {
			continue
		}
		shots = append(shots, TabScreenshot{URL: tab.URL, Title: tab.Title, PNG: png})
	}
	return shots, nil
}

// FindWalletPopup scans open tabs for the wallet's notification page and
// returns an attached session for it.
func (c *BrowserContext) FindWalletPopup(ctx context.Context) (*cdp.Session, bool) {
	origin, err := c.ExtensionOrigin(ctx)
	if err != nil {
		return nil, false
	}
	tabs, err := c.Tabs(ctx)
	if err != nil {
		return nil, false
	}
	for _, tab := range tabs {
		if !strings.HasPrefix(tab.URL, origin) {
			continue
		}
		if !strings.Contains(tab.URL, "notification") && !strings.Contains(tab.URL, "popup") {
			continue
		}
		sess, err := c.Attach(ctx, tab.TargetID)
		if err != nil {
			continue
		}
		return sess, true
	}
	return nil, false
}

// OpenTab creates a new tab at url and attaches to it.
func (c *BrowserContext) OpenTab(ctx context.Context, url string) (*cdp.Session, error) {
	targetID, err := c.client.CreateTarget(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open tab %s: %w", url, err)
	}
	return c.Attach(ctx, targetID)
}

// CloseTab closes the tab behind a session.
func (c *BrowserContext) CloseTab(ctx context.Context, sess *cdp.Session) error {
	return c.client.CloseTarget(ctx, sess.TargetID)
}

// CloseSecondaryTabs closes every page tab except the primary dApp tab.
// Teardown uses it so the browser exits cleanly.
func (c *BrowserContext) CloseSecondaryTabs(ctx context.Context) {
	tabs, err := c.Tabs(ctx)
	if err != nil {
		return
	}
	for _, tab := range tabs {
		if tab.TargetID == c.primaryTargetID {
			continue
		}
		_ = c.client.CloseTarget(ctx, tab.TargetID)
	}
}

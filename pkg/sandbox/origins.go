package sandbox

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dappsmith/conductor/pkg/sandbox/cdp"
)

// originCacheTTL bounds how long a resolved extension origin is trusted.
// The origin is stable for a browser's lifetime, but extension targets
// can appear late during bootstrap, so a short TTL keeps a premature
// miss from sticking.
const originCacheTTL = 5 * time.Minute

// originCache resolves and memoizes the wallet extension's
// chrome-extension:// origin. Expiry is checked lazily on Get, no
// background goroutine.
type originCache struct {
	mu        sync.Mutex
	origin    string
	fetchedAt time.Time
}

// Get returns the extension origin, resolving it from the browser's
// target list on miss or expiry.
func (c *originCache) Get(ctx context.Context, client *cdp.Client) (string, error) {
	c.mu.Lock()
	if c.origin != "" && time.Since(c.fetchedAt) <= originCacheTTL {
		origin := c.origin
		c.mu.Unlock()
		return origin, nil
	}
	c.mu.Unlock()

	targets, err := client.GetTargets(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list targets for extension origin: %w", err)
	}
	for _, t := range targets {
		if !strings.HasPrefix(t.URL, "chrome-extension://") {
			continue
		}
		u, err := url.Parse(t.URL)
		if err != nil {
			continue
		}
		origin := "chrome-extension://" + u.Host
		c.mu.Lock()
		c.origin = origin
		c.fetchedAt = time.Now()
		c.mu.Unlock()
		return origin, nil
	}
	return "", fmt.Errorf("no extension target found")
}

// Invalidate drops the cached origin.
func (c *originCache) Invalidate() {
	c.mu.Lock()
	c.origin = ""
	c.mu.Unlock()
}

// isExtensionURL reports whether a URL belongs to any browser extension.
func isExtensionURL(rawURL string) bool {
	return strings.HasPrefix(rawURL, "chrome-extension://") ||
		strings.HasPrefix(rawURL, "moz-extension://")
}

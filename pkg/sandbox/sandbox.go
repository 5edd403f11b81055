// Package sandbox boots isolated browser sessions with a preloaded
// wallet identity and exposes the page, wallet, tab, and tracing
// surfaces that test execution drives. One sandbox belongs to exactly
// one run; teardown is guaranteed within a bounded budget.
package sandbox

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/sandbox/cdp"
)

// BootstrapError wraps a bootstrap failure after all attempts were
// exhausted. Callers treat it as an infrastructure fault: the run fails
// with a diagnostic but is not a candidate for spec regeneration.
type BootstrapError struct {
	Attempts int
	Err      error
}

func (e *BootstrapError) Error() string {
	return fmt.Sprintf("sandbox bootstrap failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *BootstrapError) Unwrap() error { return e.Err }

// OpenOptions parameterize one sandbox session.
type OpenOptions struct {
	RunID         string
	DappURL       string
	SeedPhrase    string
	WalletAddress string
	Streaming     bool
}

// Supervisor bootstraps sandboxes. One instance is shared by all
// workers in the pod; it owns the stream port allocator.
type Supervisor struct {
	cfg   *config.SandboxConfig
	ports *PortAllocator
}

func NewSupervisor(cfg *config.SandboxConfig) *Supervisor {
	return &Supervisor{cfg: cfg, ports: NewPortAllocator(cfg)}
}

// Ports exposes the allocator for cleanup sweeps and the system info
// endpoint.
func (s *Supervisor) Ports() *PortAllocator { return s.ports }

// Open bootstraps a sandbox, retrying with backoff. Residual browser
// processes from previous attempts or crashed workers are force-killed
// before each attempt so profile locks and debug ports are free.
func (s *Supervisor) Open(ctx context.Context, opts OpenOptions) (*Sandbox, error) {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.BootstrapAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, &BootstrapError{Attempts: attempt - 1, Err: lastErr}
			case <-time.After(s.cfg.BootstrapBackoff):
			}
		}

		killResidualBrowsers(s.cfg.ProfileBaseDir)

		attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.BootstrapAttemptTimeout)
		sb, err := s.bootstrapOnce(attemptCtx, opts)
		cancel()
		if err == nil {
			slog.Info("Sandbox ready",
				"run_id", opts.RunID,
				"attempt", attempt,
				"headless", s.cfg.Headless() && !opts.Streaming,
				"streaming", opts.Streaming)
			return sb, nil
		}

		lastErr = err
		slog.Warn("Sandbox bootstrap attempt failed",
			"run_id", opts.RunID,
			"attempt", attempt,
			"error", err)

		if ctx.Err() != nil {
			return nil, &BootstrapError{Attempts: attempt, Err: lastErr}
		}
	}
	return nil, &BootstrapError{Attempts: s.cfg.BootstrapAttempts, Err: lastErr}
}

func (s *Supervisor) bootstrapOnce(ctx context.Context, opts OpenOptions) (sb *Sandbox, err error) {
	profileDir := filepath.Join(s.cfg.ProfileBaseDir,
		"profile-"+opts.RunID+"-"+strconv.FormatInt(time.Now().UnixNano(), 36))

	// Streaming needs a real window on the X display.
	headed := !s.cfg.Headless() || opts.Streaming

	browser, err := launchBrowser(ctx, s.cfg, profileDir, headed)
	if err != nil {
		_ = os.RemoveAll(profileDir)
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = browser.terminate(2 * time.Second)
			_ = os.RemoveAll(profileDir)
		}
	}()

	client, err := cdp.Dial(ctx, browser.wsURL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = client.Close()
		}
	}()

	btx := newBrowserContext(client, "")

	if err = onboardWallet(ctx, btx, opts.SeedPhrase, profilePassword()); err != nil {
		return nil, fmt.Errorf("wallet onboarding failed: %w", err)
	}

	sess, err := s.openPrimaryTab(ctx, client)
	if err != nil {
		return nil, err
	}
	btx.primaryTargetID = sess.TargetID

	page := newPage(sess, s.cfg)
	if opts.DappURL != "" {
		if err = page.Navigate(ctx, opts.DappURL); err != nil {
			return nil, fmt.Errorf("failed to open dApp: %w", err)
		}
	}

	hub := newScreencastHub(sess, s.cfg)
	sb = &Sandbox{
		cfg:       s.cfg,
		allocator: s.ports,
		client:    client,
		browser:   browser,
		btx:       btx,
		page:      page,
		wallet:    newWallet(btx, s.cfg, opts.WalletAddress),
		hub:       hub,
		tracer:    newTracer(hub, sess, s.cfg),
	}

	if opts.Streaming {
		pair, err := s.ports.Allocate(browser.pid, opts.RunID)
		if err != nil {
			return nil, err
		}
		relay := newStreamRelay(pair, hub)
		if err := relay.Start(); err != nil {
			s.ports.Release(pair)
			return nil, err
		}
		sb.relay = relay
	}

	return sb, nil
}

// openPrimaryTab reuses the browser's initial blank tab or creates one,
// enables the domains the page driver needs, and pins the viewport.
func (s *Supervisor) openPrimaryTab(ctx context.Context, client *cdp.Client) (*cdp.Session, error) {
	targets, err := client.GetTargets(ctx)
	if err != nil {
		return nil, err
	}

	targetID := ""
	for _, t := range targets {
		if t.Type == "page" && !isExtensionURL(t.URL) {
			targetID = t.TargetID
			break
		}
	}
	if targetID == "" {
		targetID, err = client.CreateTarget(ctx, "about:blank")
		if err != nil {
			return nil, fmt.Errorf("failed to create primary tab: %w", err)
		}
	}

	sess, err := client.AttachToTarget(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to attach to primary tab: %w", err)
	}
	if err := sess.EnablePage(ctx); err != nil {
		return nil, err
	}
	if err := sess.EnableRuntime(ctx); err != nil {
		return nil, err
	}
	if err := sess.SetViewport(ctx, s.cfg.ScreencastMaxWidth, s.cfg.ScreencastMaxHeight); err != nil {
		return nil, err
	}
	return sess, nil
}

// profilePassword returns a throwaway password for the profile's wallet
// vault. It is never persisted; the profile dies with the sandbox.
func profilePassword() string {
	raw := make([]byte, 16)
	_, _ = rand.Read(raw)
	return "sbx-" + hex.EncodeToString(raw)
}

// Sandbox is a live browser session owned by a single run.
type Sandbox struct {
	cfg       *config.SandboxConfig
	allocator *PortAllocator
	client    *cdp.Client
	browser   *browserProcess
	btx       *BrowserContext
	page      *Page
	wallet    *Wallet
	hub       *screencastHub
	tracer    *Tracer
	relay     *StreamRelay

	closeOnce sync.Once
	closeErr  error
}

// Page is the primary dApp tab.
func (sb *Sandbox) Page() *Page { return sb.page }

// Wallet drives the extension's approval popups.
func (sb *Sandbox) Wallet() *Wallet { return sb.wallet }

// Context exposes the browser's open tabs.
func (sb *Sandbox) Context() *BrowserContext { return sb.btx }

// Tracing records the run's visual history.
func (sb *Sandbox) Tracing() *Tracer { return sb.tracer }

// StreamPorts returns the live-view ports when streaming was requested.
func (sb *Sandbox) StreamPorts() (PortPair, bool) {
	if sb.relay == nil {
		return PortPair{}, false
	}
	return sb.relay.Ports(), true
}

// Healthy reports whether the browser process is still running and the
// devtools connection is open.
func (sb *Sandbox) Healthy() bool {
	if sb.browser.exited() {
		return false
	}
	select {
	case <-sb.client.Closed():
		return false
	default:
		return true
	}
}

// Close tears the sandbox down: tracing, screencast, stream relay,
// secondary tabs, browser tree, ports, profile directory. Runs on its
// own clock so a cancelled run still gets a full teardown; the first
// error is kept, the rest are logged. Idempotent.
func (sb *Sandbox) Close() error {
	sb.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sb.cfg.TeardownTimeout)
		defer cancel()

		keep := func(err error) {
			if err != nil {
				if sb.closeErr == nil {
					sb.closeErr = err
				} else {
					slog.Warn("Additional teardown failure", "error", err)
				}
			}
		}

		sb.tracer.abort()
		sb.hub.shutdown()

		if sb.relay != nil {
			keep(sb.relay.Close(ctx))
			sb.allocator.Release(sb.relay.Ports())
		}

		sb.btx.CloseSecondaryTabs(ctx)
		keep(sb.client.Close())

		grace := sb.cfg.TeardownTimeout / 3
		keep(sb.browser.terminate(grace))

		if err := os.RemoveAll(sb.browser.profileDir); err != nil {
			keep(fmt.Errorf("failed to remove profile directory: %w", err))
		}
	})
	return sb.closeErr
}

package hybrid

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dappsmith/conductor/pkg/agent"
	"github.com/dappsmith/conductor/pkg/sandbox"
)

// Page is the browser surface the statement engine drives.
// *sandbox.Page satisfies it.
type Page interface {
	Navigate(ctx context.Context, url string) error
	GoBack(ctx context.Context) error
	URL(ctx context.Context) (string, error)
	Click(ctx context.Context, target sandbox.Target) error
	Type(ctx context.Context, target sandbox.Target, text string) error
	PressKey(ctx context.Context, key string) error
	SelectOption(ctx context.Context, target sandbox.Target, value string) error
	Snapshot(ctx context.Context) (string, error)
	Text(ctx context.Context, target sandbox.Target) (string, error)
	WaitVisible(ctx context.Context, target sandbox.Target, timeout time.Duration) error
}

// Wallet drives the extension popups. *sandbox.Wallet satisfies it.
type Wallet interface {
	Approve(ctx context.Context) (bool, error)
	Sign(ctx context.Context) (bool, error)
	ConfirmTransaction(ctx context.Context) (bool, error)
	SwitchNetwork(ctx context.Context, name string) (bool, error)
	Reject(ctx context.Context) (bool, error)
	HandleSIWEPopup(ctx context.Context) (bool, error)
}

const (
	defaultLocatorTimeout = 10 * time.Second
	locatorPollInterval   = 250 * time.Millisecond
	maxScriptedWait       = 30 * time.Second
)

// Engine evaluates compiled statements against one sandbox tab.
type Engine struct {
	page    Page
	wallet  Wallet
	timeout time.Duration
}

func NewEngine(page Page, wallet Wallet) *Engine {
	return &Engine{page: page, wallet: wallet, timeout: defaultLocatorTimeout}
}

// RunStep strips, splits and executes one step body. The first failing
// statement ends the step; compile errors come back unwrapped so their
// text can be matched against the fatal patterns.
func (e *Engine) RunStep(ctx context.Context, body string) error {
	for _, src := range SplitStatements(StripTypes(body)) {
		stmt, err := CompileStatement(src)
		if err != nil {
			return err
		}
		if err := e.run(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", firstLine(stmt.Src, 80), err)
		}
	}
	return nil
}

// Scripted compiles a body made purely of navigation statements into a
// closure that runs without planner involvement. ok is false when any
// statement needs the page contents or the wallet.
func (e *Engine) Scripted(body string) (agent.ScriptedFunc, bool) {
	srcs := SplitStatements(StripTypes(body))
	if len(srcs) == 0 {
		return nil, false
	}
	stmts := make([]Statement, 0, len(srcs))
	for _, src := range srcs {
		stmt, err := CompileStatement(src)
		if err != nil {
			return nil, false
		}
		switch stmt.Verb {
		case VerbGoto, VerbGoBack, VerbWait, VerbExpectURL:
		default:
			return nil, false
		}
		stmts = append(stmts, stmt)
	}
	return func(ctx context.Context) error {
		for _, stmt := range stmts {
			if err := e.run(ctx, stmt); err != nil {
				return fmt.Errorf("%s: %w", firstLine(stmt.Src, 80), err)
			}
		}
		return nil
	}, true
}

func (e *Engine) run(ctx context.Context, stmt Statement) error {
	switch stmt.Verb {
	case VerbGoto:
		return e.page.Navigate(ctx, stmt.Arg)
	case VerbGoBack:
		return e.page.GoBack(ctx)
	case VerbWait:
		return sleep(ctx, time.Duration(stmt.Ms)*time.Millisecond)
	case VerbKeyboardPress:
		return e.page.PressKey(ctx, stmt.Arg)
	case VerbClick:
		target, err := e.resolve(ctx, stmt.Target)
		if err != nil {
			return err
		}
		return e.page.Click(ctx, target)
	case VerbFill:
		target, err := e.resolve(ctx, stmt.Target)
		if err != nil {
			return err
		}
		return e.page.Type(ctx, target, stmt.Arg)
	case VerbPress:
		// Focus the element with a click, then send the key.
		target, err := e.resolve(ctx, stmt.Target)
		if err != nil {
			return err
		}
		if err := e.page.Click(ctx, target); err != nil {
			return err
		}
		return e.page.PressKey(ctx, stmt.Arg)
	case VerbSelect:
		target, err := e.resolve(ctx, stmt.Target)
		if err != nil {
			return err
		}
		return e.page.SelectOption(ctx, target, stmt.Arg)
	case VerbExpectVisible:
		return e.expectVisible(ctx, stmt.Target)
	case VerbExpectText:
		return e.expectText(ctx, stmt.Target, stmt.Arg)
	case VerbExpectURL:
		return e.expectURL(ctx, stmt.Arg)
	case VerbWalletApprove, VerbWalletSign, VerbWalletConfirmTx,
		VerbWalletSwitchNetwork, VerbWalletReject, VerbWalletSIWE:
		return e.walletOp(ctx, stmt)
	}
	return unsupported(stmt.Src)
}

// resolve maps a compiled target onto a sandbox target. Role and text
// targets poll the snapshot outline until a node matches, mirroring
// the auto-waiting of the source driver; testid and css targets pass
// through as selectors.
func (e *Engine) resolve(ctx context.Context, t *Target) (sandbox.Target, error) {
	switch t.Kind {
	case TargetTestID:
		return sandbox.Target{Selector: fmt.Sprintf(`[data-testid=%q]`, t.TestID)}, nil
	case TargetCSS:
		return sandbox.Target{Selector: t.CSS}, nil
	}
	var found sandbox.Target
	err := e.poll(ctx, func(ctx context.Context) (bool, error) {
		outline, err := e.page.Snapshot(ctx)
		if err != nil {
			return false, err
		}
		for _, node := range agent.ParseOutline(outline) {
			if matches(node, t) {
				found = sandbox.Target{Ref: node.Ref}
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		return sandbox.Target{}, fmt.Errorf("locator %s: no matching element in the page snapshot: %w", t, err)
	}
	return found, nil
}

func matches(node agent.OutlineNode, t *Target) bool {
	switch t.Kind {
	case TargetRole:
		if !strings.EqualFold(node.Role, t.Role) {
			return false
		}
		return t.Name == "" || strings.EqualFold(strings.TrimSpace(node.Name), t.Name)
	case TargetText:
		name := strings.TrimSpace(node.Name)
		return name != "" && containsFold(name, t.Text)
	}
	return false
}

func (e *Engine) expectVisible(ctx context.Context, t *Target) error {
	target, err := e.resolve(ctx, t)
	if err != nil {
		return err
	}
	if target.Ref != "" {
		// Presence in the snapshot outline implies visibility.
		return nil
	}
	return e.page.WaitVisible(ctx, target, e.timeout)
}

func (e *Engine) expectText(ctx context.Context, t *Target, want string) error {
	var got string
	err := e.poll(ctx, func(ctx context.Context) (bool, error) {
		target, err := e.resolve(ctx, t)
		if err != nil {
			return false, err
		}
		text, err := e.page.Text(ctx, target)
		if err != nil {
			return false, err
		}
		got = text
		return containsFold(text, want), nil
	})
	if err != nil {
		return fmt.Errorf("expected %s to contain %q, got %q: %w", t, want, firstLine(got, 120), err)
	}
	return nil
}

func (e *Engine) expectURL(ctx context.Context, want string) error {
	var got string
	err := e.poll(ctx, func(ctx context.Context) (bool, error) {
		url, err := e.page.URL(ctx)
		if err != nil {
			return false, err
		}
		got = url
		return strings.Contains(url, want), nil
	})
	if err != nil {
		return fmt.Errorf("expected url to contain %q, got %q: %w", want, got, err)
	}
	return nil
}

// walletOp drives one popup. A popup that never appears fails the
// statement: the spec declared an interaction the dApp did not raise.
func (e *Engine) walletOp(ctx context.Context, stmt Statement) error {
	var (
		name    string
		handled bool
		err     error
	)
	switch stmt.Verb {
	case VerbWalletApprove:
		name = "approve"
		handled, err = e.wallet.Approve(ctx)
	case VerbWalletSign:
		name = "sign"
		handled, err = e.wallet.Sign(ctx)
	case VerbWalletConfirmTx:
		name = "confirmTransaction"
		handled, err = e.wallet.ConfirmTransaction(ctx)
	case VerbWalletSwitchNetwork:
		name = "switchNetwork"
		handled, err = e.wallet.SwitchNetwork(ctx, stmt.Arg)
	case VerbWalletReject:
		name = "reject"
		handled, err = e.wallet.Reject(ctx)
	case VerbWalletSIWE:
		name = "handleSIWEPopup"
		handled, err = e.wallet.HandleSIWEPopup(ctx)
	}
	if err != nil {
		return fmt.Errorf("wallet %s failed: %w", name, err)
	}
	if !handled {
		return fmt.Errorf("no wallet popup appeared for %s", name)
	}
	return nil
}

// poll retries fn every locatorPollInterval until it reports done or
// the locator timeout lapses. The timeout error wraps fn's last error
// when one was seen.
func (e *Engine) poll(ctx context.Context, fn func(context.Context) (bool, error)) error {
	deadline := time.Now().Add(e.timeout)
	var last error
	for {
		done, err := fn(ctx)
		if done && err == nil {
			return nil
		}
		if err != nil {
			last = err
		}
		if time.Now().After(deadline) {
			if last != nil {
				return fmt.Errorf("timeout after %s: %w", e.timeout, last)
			}
			return fmt.Errorf("timeout after %s", e.timeout)
		}
		if err := sleep(ctx, locatorPollInterval); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d > maxScriptedWait {
		d = maxScriptedWait
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

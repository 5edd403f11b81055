package sandbox

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/dappsmith/conductor/pkg/config"
)

// devtoolsPortFile is written by the browser when launched with
// --remote-debugging-port=0: first line is the chosen port, second line
// the browser target's websocket path.
const devtoolsPortFile = "DevToolsActivePort"

// browserProcess is a launched browser plus the handles needed to
// supervise and tear it down.
type browserProcess struct {
	cmd        *exec.Cmd
	pid        int
	profileDir string
	wsURL      string

	done    chan struct{}
	exitErr error

	terminateOnce sync.Once
	terminateErr  error
}

// launchBrowser starts a browser instance with an isolated profile and
// the wallet extension loaded, then waits for its DevTools endpoint to
// come up. The process gets its own group so teardown can signal the
// whole tree. headed overrides the config for streaming runs, which
// need a real window on the X display.
func launchBrowser(ctx context.Context, cfg *config.SandboxConfig, profileDir string, headed bool) (*browserProcess, error) {
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile directory: %w", err)
	}

	args := []string{
		"--user-data-dir=" + profileDir,
		"--remote-debugging-port=0",
		"--load-extension=" + cfg.WalletExtensionPath,
		"--disable-extensions-except=" + cfg.WalletExtensionPath,
		"--no-first-run",
		"--no-default-browser-check",
		"--disable-background-networking",
		"--disable-component-update",
		"--disable-default-apps",
		"--disable-sync",
		"--disable-popup-blocking",
		"--window-size=1280,720",
	}
	if !headed {
		// The new headless mode is required: the old one cannot load
		// extensions.
		args = append(args, "--headless=new", "--disable-gpu")
	}
	args = append(args, "about:blank")

	cmd := exec.Command(cfg.ChromiumPath, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Env = os.Environ()
	if headed && cfg.Display != "" {
		cmd.Env = append(cmd.Env, "DISPLAY="+cfg.Display)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start browser %s: %w", cfg.ChromiumPath, err)
	}

	p := &browserProcess{
		cmd:        cmd,
		pid:        cmd.Process.Pid,
		profileDir: profileDir,
		done:       make(chan struct{}),
	}
	go func() {
		p.exitErr = cmd.Wait()
		close(p.done)
	}()

	wsURL, err := p.awaitDevtoolsEndpoint(ctx)
	if err != nil {
		_ = p.terminate(2 * time.Second)
		return nil, err
	}
	p.wsURL = wsURL
	return p, nil
}

// awaitDevtoolsEndpoint polls for the DevToolsActivePort file and
// assembles the browser websocket URL from it. An early process exit
// aborts the wait with the exit error.
func (p *browserProcess) awaitDevtoolsEndpoint(ctx context.Context) (string, error) {
	portPath := filepath.Join(p.profileDir, devtoolsPortFile)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("timed out waiting for devtools endpoint: %w", ctx.Err())
		case <-p.done:
			return "", fmt.Errorf("browser exited before devtools endpoint came up: %v", p.exitErr)
		case <-ticker.C:
		}

		raw, err := os.ReadFile(portPath)
		if err != nil {
			continue
		}
		lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
		if len(lines) < 2 {
			continue
		}
		port, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil || port == 0 {
			continue
		}
		path := strings.TrimSpace(lines[1])
		if !strings.HasPrefix(path, "/") {
			continue
		}
		return fmt.Sprintf("ws://127.0.0.1:%d%s", port, path), nil
	}
}

// terminate stops the browser's process group: SIGTERM, a grace period,
// then SIGKILL. Idempotent.
func (p *browserProcess) terminate(grace time.Duration) error {
	p.terminateOnce.Do(func() {
		if err := signalGroup(p.pid, syscall.SIGTERM); err != nil {
			p.terminateErr = err
		}

		select {
		case <-p.done:
			return
		case <-time.After(grace):
		}

		if err := signalGroup(p.pid, syscall.SIGKILL); err != nil && p.terminateErr == nil {
			p.terminateErr = err
		}
		select {
		case <-p.done:
		case <-time.After(2 * time.Second):
			if p.terminateErr == nil {
				p.terminateErr = fmt.Errorf("browser pid %d did not exit after SIGKILL", p.pid)
			}
		}
	})
	return p.terminateErr
}

// exited reports whether the browser process has already terminated.
func (p *browserProcess) exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

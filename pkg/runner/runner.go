package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/masking"
)

const (
	// reportFilename is where the child's test framework writes its
	// JSON report, exported as JSON_REPORT_PATH.
	reportFilename = "report.json"

	// maxLineBytes bounds a single scanned output line.
	maxLineBytes = 1 << 20

	// maxLogBytes caps accumulated child output. Runs are time-bounded
	// but a looping test can still flood the log store.
	maxLogBytes = 4 << 20

	logTruncatedMarker = "... [output truncated]"
)

// errorLineRe picks the line reported as the failure reason: the first
// output line mentioning an error.
var errorLineRe = regexp.MustCompile(`Error:`)

// Request describes one deterministic program execution.
type Request struct {
	RunID       string
	ProgramText string

	// SeedPhrase is exported to the child as SEED_PHRASE and masked
	// out of every captured output line.
	SeedPhrase string

	Headless bool

	// TimeoutMs bounds the child; zero means the configured default.
	TimeoutMs int

	// WorkDir is the per-run staging directory. The program is staged
	// here, the child runs with it as cwd, and the artifact sweep
	// walks it afterwards.
	WorkDir string
}

// Result is the outcome of one program execution.
type Result struct {
	Passed     bool
	DurationMs int64
	Logs       string
	Error      string
	Artifacts  []Artifact
	TimedOut   bool
	ExitCode   int
}

// specReport is the JSON report shape test frameworks may write to
// JSON_REPORT_PATH. All fields are optional; exit code stays
// authoritative for pass/fail.
type specReport struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Runner stages test programs and supervises their execution.
type Runner struct {
	cfg     *config.RunnerConfig
	sandbox *config.SandboxConfig
	storage *config.StorageConfig
	masker  *masking.Service
}

// NewRunner creates a runner. The sandbox section supplies the X
// display for headed children; the storage section supplies artifact
// sweep ignore globs.
func NewRunner(cfg *config.RunnerConfig, sandbox *config.SandboxConfig, storage *config.StorageConfig, masker *masking.Service) *Runner {
	return &Runner{
		cfg:     cfg,
		sandbox: sandbox,
		storage: storage,
		masker:  masker,
	}
}

// Execute stages the program, runs it as a child process group, and
// collects output, report, and artifacts. A failing test is a normal
// Result, not an error; the error return is for staging and spawn
// failures only.
func (r *Runner) Execute(ctx context.Context, req Request) (*Result, error) {
	log := slog.With("run_id", req.RunID)

	if err := os.MkdirAll(req.WorkDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create work dir: %w", err)
	}

	specPath := filepath.Join(req.WorkDir, r.cfg.SpecFilename)
	if err := os.WriteFile(specPath, []byte(req.ProgramText), 0o644); err != nil {
		return nil, fmt.Errorf("failed to stage program: %w", err)
	}

	timeout := r.cfg.DefaultTimeout
	if req.TimeoutMs > 0 {
		timeout = time.Duration(req.TimeoutMs) * time.Millisecond
	}
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(append([]string{}, r.cfg.Args...), specPath)
	cmd := exec.Command(r.cfg.Command, args...)
	cmd.Dir = req.WorkDir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Env = append(os.Environ(),
		"DISPLAY="+r.sandbox.Display,
		"HEADLESS="+strconv.FormatBool(req.Headless),
		"SEED_PHRASE="+req.SeedPhrase,
		"JSON_REPORT_PATH="+filepath.Join(req.WorkDir, reportFilename),
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", r.cfg.Command, err)
	}
	pgid := cmd.Process.Pid
	log.Info("Spec program started", "command", r.cfg.Command, "pid", pgid, "timeout", timeout)

	collector := newLogCollector(r.masker, req.SeedPhrase)
	var wg sync.WaitGroup
	wg.Add(2)
	go r.streamPipe(&wg, stdout, collector)
	go r.streamPipe(&wg, stderr, collector)

	// Kill the whole process group on timeout or cancellation so
	// grandchildren (node, browsers) release the output pipes.
	reaped := make(chan struct{})
	go func() {
		select {
		case <-execCtx.Done():
			_ = signalGroup(pgid, syscall.SIGTERM)
			select {
			case <-time.After(r.cfg.KillGrace):
				_ = signalGroup(pgid, syscall.SIGKILL)
			case <-reaped:
			}
		case <-reaped:
		}
	}()

	wg.Wait()
	waitErr := cmd.Wait()
	close(reaped)

	res := &Result{
		DurationMs: time.Since(start).Milliseconds(),
		Logs:       collector.String(),
		TimedOut:   errors.Is(execCtx.Err(), context.DeadlineExceeded),
	}

	switch {
	case waitErr == nil:
		res.Passed = true
	default:
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
		}
		res.Error = collector.ErrorLine()
	}

	if res.TimedOut {
		res.Passed = false
		if res.Error == "" {
			res.Error = fmt.Sprintf("timed out after %s", timeout)
		}
	}

	r.applyReport(req, res)

	artifacts, err := SweepArtifacts(req.WorkDir, r.storage.IgnoreGlobs)
	if err != nil {
		log.Warn("Artifact sweep failed", "error", err)
	}
	res.Artifacts = artifacts

	log.Info("Spec program finished",
		"passed", res.Passed,
		"exit_code", res.ExitCode,
		"duration_ms", res.DurationMs,
		"timed_out", res.TimedOut,
		"artifacts", len(res.Artifacts))

	return res, nil
}

// applyReport refines the result with the child's JSON report when one
// was written. The exit code remains authoritative for pass/fail; the
// report only supplies an error message when log scanning found none.
func (r *Runner) applyReport(req Request, res *Result) {
	data, err := os.ReadFile(filepath.Join(req.WorkDir, reportFilename))
	if err != nil {
		return
	}
	var rep specReport
	if err := json.Unmarshal(data, &rep); err != nil {
		slog.Warn("Ignoring malformed spec report", "run_id", req.RunID, "error", err)
		return
	}
	if rep.Status != "" && (rep.Status == "passed") != res.Passed {
		slog.Warn("Spec report status disagrees with exit code",
			"run_id", req.RunID, "report_status", rep.Status, "passed", res.Passed)
	}
	if !res.Passed && res.Error == "" && rep.Error != "" {
		res.Error = r.masker.MaskLiterals(r.masker.MaskLogs(rep.Error), []string{req.SeedPhrase})
	}
}

func (r *Runner) streamPipe(wg *sync.WaitGroup, pipe io.Reader, collector *logCollector) {
	defer wg.Done()
	scanner := bufio.NewScanner(pipe)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		collector.Append(scanner.Text())
	}
}

// logCollector accumulates masked output lines from both pipes and
// remembers the first error line.
type logCollector struct {
	masker *masking.Service
	seed   string

	mu        sync.Mutex
	buf       strings.Builder
	errLine   string
	truncated bool
}

func newLogCollector(masker *masking.Service, seed string) *logCollector {
	return &logCollector{masker: masker, seed: seed}
}

func (c *logCollector) Append(line string) {
	masked := c.masker.MaskLiterals(c.masker.MaskLogs(line), []string{c.seed})

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.errLine == "" && errorLineRe.MatchString(masked) {
		c.errLine = strings.TrimSpace(masked)
	}

	if c.truncated {
		return
	}
	if c.buf.Len()+len(masked)+1 > maxLogBytes {
		c.buf.WriteString(logTruncatedMarker)
		c.buf.WriteString("\n")
		c.truncated = true
		return
	}
	c.buf.WriteString(masked)
	c.buf.WriteString("\n")
}

func (c *logCollector) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

func (c *logCollector) ErrorLine() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errLine
}

// signalGroup delivers sig to the child's whole process group.
func signalGroup(pgid int, sig syscall.Signal) error {
	if err := syscall.Kill(-pgid, sig); err != nil && !errors.Is(err, syscall.ESRCH) {
		return err
	}
	return nil
}

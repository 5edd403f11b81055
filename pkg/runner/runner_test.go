package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/masking"
)

// testRunner builds a runner that executes staged programs with sh,
// so test programs are plain shell scripts.
func testRunner(t *testing.T, cfg *config.RunnerConfig) *Runner {
	t.Helper()
	if cfg == nil {
		cfg = &config.RunnerConfig{
			Command:        "sh",
			SpecFilename:   "spec.test.sh",
			DefaultTimeout: 10 * time.Second,
			KillGrace:      200 * time.Millisecond,
		}
	}
	masker := masking.NewService(&config.LogMaskingDefaults{Enabled: true, PatternGroup: "wallet"})
	return NewRunner(cfg,
		&config.SandboxConfig{Display: ":99"},
		&config.StorageConfig{IgnoreGlobs: []string{"**/chrome-profile/**"}},
		masker)
}

func TestExecute_PassingProgram(t *testing.T) {
	r := testRunner(t, nil)
	workDir := t.TempDir()

	program := "echo 'starting swap'\necho 'swap complete'\nexit 0\n"
	res, err := r.Execute(context.Background(), Request{
		RunID:       "run_pass",
		ProgramText: program,
		Headless:    true,
		WorkDir:     workDir,
	})
	require.NoError(t, err)

	assert.True(t, res.Passed)
	assert.Equal(t, 0, res.ExitCode)
	assert.False(t, res.TimedOut)
	assert.Empty(t, res.Error)
	assert.Contains(t, res.Logs, "starting swap")
	assert.Contains(t, res.Logs, "swap complete")
	assert.GreaterOrEqual(t, res.DurationMs, int64(0))

	staged, err := os.ReadFile(filepath.Join(workDir, "spec.test.sh"))
	require.NoError(t, err)
	assert.Equal(t, program, string(staged))
}

func TestExecute_FailureExtractsFirstErrorLine(t *testing.T) {
	r := testRunner(t, nil)

	res, err := r.Execute(context.Background(), Request{
		RunID: "run_fail",
		ProgramText: "echo 'before failure'\n" +
			"echo 'ReferenceError: pag is not defined'\n" +
			"echo 'Error: later line must not win'\n" +
			"exit 1\n",
		WorkDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.False(t, res.Passed)
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, "ReferenceError: pag is not defined", res.Error)
	assert.Contains(t, res.Logs, "before failure")
}

func TestExecute_Timeout(t *testing.T) {
	r := testRunner(t, &config.RunnerConfig{
		Command:        "sh",
		SpecFilename:   "spec.test.sh",
		DefaultTimeout: 10 * time.Second,
		KillGrace:      100 * time.Millisecond,
	})

	start := time.Now()
	res, err := r.Execute(context.Background(), Request{
		RunID:       "run_timeout",
		ProgramText: "echo 'still alive'\nsleep 30\n",
		TimeoutMs:   300,
		WorkDir:     t.TempDir(),
	})
	require.NoError(t, err)

	assert.True(t, res.TimedOut)
	assert.False(t, res.Passed)
	assert.Contains(t, res.Error, "timed out")
	assert.Contains(t, res.Logs, "still alive")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestExecute_ChildEnvironment(t *testing.T) {
	r := testRunner(t, nil)
	workDir := t.TempDir()

	res, err := r.Execute(context.Background(), Request{
		RunID:       "run_env",
		ProgramText: "echo \"display=$DISPLAY headless=$HEADLESS\"\necho \"report=$JSON_REPORT_PATH\"\nexit 0\n",
		Headless:    false,
		WorkDir:     workDir,
	})
	require.NoError(t, err)

	assert.Contains(t, res.Logs, "display=:99 headless=false")
	assert.Contains(t, res.Logs, "report="+filepath.Join(workDir, "report.json"))
}

func TestExecute_MasksSeedPhrase(t *testing.T) {
	r := testRunner(t, nil)
	seed := "correct horse battery staple"

	res, err := r.Execute(context.Background(), Request{
		RunID:       "run_mask",
		ProgramText: "echo \"seed is: $SEED_PHRASE\"\nexit 0\n",
		SeedPhrase:  seed,
		WorkDir:     t.TempDir(),
	})
	require.NoError(t, err)

	assert.NotContains(t, res.Logs, seed)
	assert.Contains(t, res.Logs, "__MASKED_SECRET__")
}

func TestExecute_ReportSuppliesErrorWhenLogsSilent(t *testing.T) {
	r := testRunner(t, nil)

	res, err := r.Execute(context.Background(), Request{
		RunID: "run_report",
		ProgramText: `printf '{"status":"failed","error":"Custom failure detail"}' > "$JSON_REPORT_PATH"
exit 1
`,
		WorkDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.False(t, res.Passed)
	assert.Equal(t, "Custom failure detail", res.Error)
}

func TestExecute_SweepsWorkDirArtifacts(t *testing.T) {
	r := testRunner(t, nil)

	res, err := r.Execute(context.Background(), Request{
		RunID: "run_sweep",
		ProgramText: `printf 'png-bytes' > shot.png
mkdir -p chrome-profile
printf 'png-bytes' > chrome-profile/leak.png
exit 0
`,
		WorkDir: t.TempDir(),
	})
	require.NoError(t, err)

	names := make(map[string]string)
	for _, a := range res.Artifacts {
		names[a.Name] = a.Type
	}
	assert.Equal(t, "screenshot", names["shot.png"])
	assert.NotContains(t, names, "leak.png")
	assert.NotContains(t, names, "spec.test.sh")
}

func TestExecute_StartFailure(t *testing.T) {
	r := testRunner(t, &config.RunnerConfig{
		Command:        "/nonexistent/interpreter",
		SpecFilename:   "spec.test.sh",
		DefaultTimeout: time.Second,
		KillGrace:      100 * time.Millisecond,
	})

	_, err := r.Execute(context.Background(), Request{
		RunID:       "run_spawn",
		ProgramText: "exit 0\n",
		WorkDir:     t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start")
}

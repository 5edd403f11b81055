package sandbox

import (
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPidAlive(t *testing.T) {
	assert.True(t, pidAlive(os.Getpid()))
	assert.False(t, pidAlive(0))
	assert.False(t, pidAlive(-1))

	// A reaped child no longer counts as alive.
	cmd := exec.Command("true")
	require.NoError(t, cmd.Run())
	assert.False(t, pidAlive(cmd.Process.Pid))
}

func TestSignalGroupVanishedProcess(t *testing.T) {
	cmd := exec.Command("true")
	require.NoError(t, cmd.Run())

	// Signalling a process that is already gone is not an error.
	assert.NoError(t, signalGroup(cmd.Process.Pid, syscall.SIGTERM))
}

func TestResidualBrowserPIDs(t *testing.T) {
	base := t.TempDir()

	// No process references this profile base yet.
	assert.NotContains(t, residualBrowserPIDs(base), os.Getpid())

	// Park a process whose cmdline carries the profile-dir marker, in
	// its own group so killing it cannot touch the test process.
	marker := "--user-data-dir=" + filepath.Join(base, "profile-left-behind")
	cmd := exec.Command("sh", "-c", "sleep 300", "sandbox-residual", marker)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	require.NoError(t, cmd.Start())
	pid := cmd.Process.Pid
	go func() { _ = cmd.Wait() }()
	defer func() { _ = signalGroup(pid, syscall.SIGKILL) }()

	require.Eventually(t, func() bool {
		for _, p := range residualBrowserPIDs(base) {
			if p == pid {
				return true
			}
		}
		return false
	}, 2*time.Second, 50*time.Millisecond, "spawned process should show up in the proc scan")
}

func TestKillResidualBrowsers(t *testing.T) {
	base := t.TempDir()

	marker := "--user-data-dir=" + filepath.Join(base, "profile-crashed")
	cmd := exec.Command("sh", "-c", "sleep 300", "sandbox-residual", marker)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	require.NoError(t, cmd.Start())
	pid := cmd.Process.Pid
	go func() { _ = cmd.Wait() }()
	defer func() { _ = signalGroup(pid, syscall.SIGKILL) }()

	require.Eventually(t, func() bool {
		return len(residualBrowserPIDs(base)) > 0
	}, 2*time.Second, 50*time.Millisecond)

	killed := killResidualBrowsers(base)
	assert.GreaterOrEqual(t, killed, 1)

	assert.Eventually(t, func() bool {
		return !pidAlive(pid)
	}, 5*time.Second, 100*time.Millisecond, "residual process should be gone after the kill")
}

func TestKillResidualBrowsersNothingToDo(t *testing.T) {
	assert.Equal(t, 0, killResidualBrowsers(t.TempDir()))
}

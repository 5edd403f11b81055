package sandbox

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// residualKillGrace is how long terminated residual browsers get to exit
// before escalation to SIGKILL.
const residualKillGrace = 2 * time.Second

// pidAlive reports whether a process exists. EPERM means it exists but
// belongs to another user.
func pidAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	if err == nil {
		return true
	}
	return errors.Is(err, syscall.EPERM)
}

// signalGroup sends sig to the process group of pid, falling back to the
// process itself when it has no distinct group. A vanished process is
// not an error.
func signalGroup(pid int, sig syscall.Signal) error {
	pgid, err := syscall.Getpgid(pid)
	if err != nil {
		if errors.Is(err, syscall.ESRCH) {
			return nil
		}
		return fmt.Errorf("failed to resolve process group of %d: %w", pid, err)
	}
	target := pid
	if pgid > 0 {
		target = -pgid
	}
	if err := syscall.Kill(target, sig); err != nil && !errors.Is(err, syscall.ESRCH) {
		return fmt.Errorf("failed to signal %d: %w", target, err)
	}
	return nil
}

// residualBrowserPIDs scans the process table for browser processes
// whose command line references a profile directory under baseDir.
// Child renderer processes inherit the flag, so matching on it catches
// the whole tree even when group signalling misses a detached child.
func residualBrowserPIDs(baseDir string) []int {
	marker := "--user-data-dir=" + baseDir
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil
	}

	var pids []int
	self := os.Getpid()
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid == self {
			continue
		}
		cmdline, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "cmdline"))
		if err != nil {
			continue
		}
		// cmdline is NUL-separated; flatten before matching because the
		// marker never spans argument boundaries.
		flat := string(bytes.ReplaceAll(cmdline, []byte{0}, []byte{' '}))
		if strings.Contains(flat, marker) {
			pids = append(pids, pid)
		}
	}
	return pids
}

// killResidualBrowsers terminates browser processes left behind by a
// previous bootstrap attempt or a crashed worker, identified by profile
// directories under baseDir. SIGTERM first, SIGKILL for anything still
// alive after the grace period. Returns the number of processes
// signalled.
func killResidualBrowsers(baseDir string) int {
	pids := residualBrowserPIDs(baseDir)
	if len(pids) == 0 {
		return 0
	}

	slog.Warn("Terminating residual browser processes", "count", len(pids), "profile_base", baseDir)
	for _, pid := range pids {
		if err := signalGroup(pid, syscall.SIGTERM); err != nil {
			slog.Warn("Failed to terminate residual browser", "pid", pid, "error", err)
		}
	}

	deadline := time.Now().Add(residualKillGrace)
	for time.Now().Before(deadline) {
		if !anyAlive(pids) {
			return len(pids)
		}
		time.Sleep(100 * time.Millisecond)
	}

	for _, pid := range pids {
		if pidAlive(pid) {
			if err := signalGroup(pid, syscall.SIGKILL); err != nil {
				slog.Warn("Failed to kill residual browser", "pid", pid, "error", err)
			}
		}
	}
	return len(pids)
}

func anyAlive(pids []int) bool {
	for _, pid := range pids {
		if pidAlive(pid) {
			return true
		}
	}
	return false
}

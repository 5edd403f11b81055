package config

import "time"

// RunnerConfig controls how deterministic test programs are executed
// as child processes.
type RunnerConfig struct {
	// Command and Args form the interpreter invocation. The staged
	// program file path is appended as the final argument.
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`

	// SpecFilename is the name the program text is staged under in
	// the run's working directory. Test frameworks key off the
	// extension, so it must match what Command expects.
	SpecFilename string `yaml:"spec_filename"`

	// DefaultTimeout bounds child execution when the submission
	// carries no timeout of its own.
	DefaultTimeout time.Duration `yaml:"default_timeout"`

	// KillGrace is how long the child process group gets between
	// SIGTERM and SIGKILL on timeout or cancellation.
	KillGrace time.Duration `yaml:"kill_grace"`
}

// DefaultRunnerConfig returns the built-in runner defaults.
func DefaultRunnerConfig() *RunnerConfig {
	return &RunnerConfig{
		Command:        "npx",
		Args:           []string{"--yes", "tsx"},
		SpecFilename:   "spec.test.ts",
		DefaultTimeout: 5 * time.Minute,
		KillGrace:      5 * time.Second,
	}
}

package config

// Defaults contains system-wide default configurations.
// These values are used when specific components don't specify their own values.
type Defaults struct {
	// Execution mode for runs submitted without one
	ExecutionMode string `yaml:"execution_mode,omitempty"`

	// Streaming mode for runs submitted without one
	StreamingMode string `yaml:"streaming_mode,omitempty"`

	// Self-heal attempt budget for new specs
	SpecMaxAttempts int `yaml:"spec_max_attempts,omitempty"`

	// Log masking configuration
	LogMasking *LogMaskingDefaults `yaml:"log_masking,omitempty"`
}

// LogMaskingDefaults holds secret masking settings.
// Applied system-wide to captured logs and events before persistence.
type LogMaskingDefaults struct {
	Enabled      bool   `yaml:"enabled"`
	PatternGroup string `yaml:"pattern_group"`
}

// DefaultDefaults returns the built-in system defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		ExecutionMode:   "HYBRID",
		StreamingMode:   "NONE",
		SpecMaxAttempts: 3,
		LogMasking: &LogMaskingDefaults{
			Enabled:      true,
			PatternGroup: "wallet",
		},
	}
}

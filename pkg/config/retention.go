package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// RunRetentionDays is how many days to keep terminal runs before
	// soft-deleting their projects' history is out of scope; runs are
	// hard-deleted together with artifacts past this age.
	RunRetentionDays int `yaml:"run_retention_days"`

	// EventMaxAge is the maximum age of Event rows before deletion.
	EventMaxAge time.Duration `yaml:"event_max_age"`

	// SweepSchedule is a cron expression for the cleanup pass
	// (job trim, event trim, stale staging dirs, dead port holders).
	SweepSchedule string `yaml:"sweep_schedule"`

	// StagingMaxAge is how old a local artifact staging directory may
	// get before the sweep removes it.
	StagingMaxAge time.Duration `yaml:"staging_max_age"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RunRetentionDays: 90,
		EventMaxAge:      1 * time.Hour,
		SweepSchedule:    "*/10 * * * *",
		StagingMaxAge:    24 * time.Hour,
	}
}

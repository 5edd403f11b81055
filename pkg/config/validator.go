package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"
)

// Valid enum values for run submission defaults. The API exposes the
// same uppercase spellings.
var (
	validExecutionModes = map[string]bool{"SPEC": true, "AGENT": true, "HYBRID": true}
	validStreamingModes = map[string]bool{"NONE": true, "VNC": true, "VIDEO": true}
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: defaults, queue, sandbox, runner, planner,
	// storage, retention, notifications. Planner runs after defaults so
	// provider lookups see the merged registry.

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateSandbox(); err != nil {
		return fmt.Errorf("sandbox validation failed: %w", err)
	}

	if err := v.validateRunner(); err != nil {
		return fmt.Errorf("runner validation failed: %w", err)
	}

	if err := v.validatePlanner(); err != nil {
		return fmt.Errorf("planner validation failed: %w", err)
	}

	if err := v.validateStorage(); err != nil {
		return fmt.Errorf("storage validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	if err := v.validateNotifications(); err != nil {
		return fmt.Errorf("notifications validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults
	if d == nil {
		return NewValidationError("defaults", "defaults", "", fmt.Errorf("section required"))
	}

	if !validExecutionModes[d.ExecutionMode] {
		return NewValidationError("defaults", "defaults", "execution_mode", fmt.Errorf("invalid mode: %s (expected SPEC, AGENT, or HYBRID)", d.ExecutionMode))
	}

	if !validStreamingModes[d.StreamingMode] {
		return NewValidationError("defaults", "defaults", "streaming_mode", fmt.Errorf("invalid mode: %s (expected NONE, VNC, or VIDEO)", d.StreamingMode))
	}

	if d.SpecMaxAttempts < 1 {
		return NewValidationError("defaults", "defaults", "spec_max_attempts", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q == nil {
		return NewValidationError("queue", "queue", "", fmt.Errorf("section required"))
	}

	if q.Concurrency < 1 {
		return NewValidationError("queue", "queue", "concurrency", fmt.Errorf("must be at least 1"))
	}

	if q.MaxConcurrentRuns < 1 {
		return NewValidationError("queue", "queue", "max_concurrent_runs", fmt.Errorf("must be at least 1"))
	}

	if q.PollInterval <= 0 {
		return NewValidationError("queue", "queue", "poll_interval", fmt.Errorf("must be positive"))
	}

	// A lease shorter than the renewal interval can never be renewed in
	// time, so every long job would be orphan-requeued mid-flight.
	if q.LockDuration <= q.LockRenewInterval {
		return NewValidationError("queue", "queue", "lock_duration_ms", fmt.Errorf("must exceed lock_renew_ms (%s)", q.LockRenewInterval))
	}

	if q.ClaimRatePerMinute < 1 {
		return NewValidationError("queue", "queue", "claim_rate_per_minute", fmt.Errorf("must be at least 1"))
	}

	if q.DefaultMaxAttempts < 1 {
		return NewValidationError("queue", "queue", "default_max_attempts", fmt.Errorf("must be at least 1"))
	}

	if q.RetryBackoffBase <= 0 {
		return NewValidationError("queue", "queue", "retry_backoff_base", fmt.Errorf("must be positive"))
	}

	if q.RunTimeout <= 0 {
		return NewValidationError("queue", "queue", "run_timeout", fmt.Errorf("must be positive"))
	}

	if q.CancelPollInterval <= 0 {
		return NewValidationError("queue", "queue", "cancel_poll_interval", fmt.Errorf("must be positive"))
	}

	if q.RemoveOnComplete < 0 {
		return NewValidationError("queue", "queue", "remove_on_complete", fmt.Errorf("must not be negative"))
	}

	if q.RemoveOnFail < 0 {
		return NewValidationError("queue", "queue", "remove_on_fail", fmt.Errorf("must not be negative"))
	}

	return nil
}

func (v *ConfigValidator) validateSandbox() error {
	s := v.cfg.Sandbox
	if s == nil {
		return NewValidationError("sandbox", "sandbox", "", fmt.Errorf("section required"))
	}

	if s.BootstrapAttempts < 1 {
		return NewValidationError("sandbox", "sandbox", "bootstrap_attempts", fmt.Errorf("must be at least 1"))
	}

	if s.BootstrapAttemptTimeout <= 0 {
		return NewValidationError("sandbox", "sandbox", "bootstrap_attempt_timeout", fmt.Errorf("must be positive"))
	}

	if s.TeardownTimeout <= 0 {
		return NewValidationError("sandbox", "sandbox", "teardown_timeout", fmt.Errorf("must be positive"))
	}

	if s.ActionTimeout <= 0 {
		return NewValidationError("sandbox", "sandbox", "action_timeout", fmt.Errorf("must be positive"))
	}

	if s.NavigationTimeout <= 0 {
		return NewValidationError("sandbox", "sandbox", "navigation_timeout", fmt.Errorf("must be positive"))
	}

	if s.ScreencastQuality < 1 || s.ScreencastQuality > 100 {
		return NewValidationError("sandbox", "sandbox", "screencast_quality", fmt.Errorf("must be between 1 and 100"))
	}

	if s.ScreencastEveryNth < 1 {
		return NewValidationError("sandbox", "sandbox", "screencast_every_nth", fmt.Errorf("must be at least 1"))
	}

	if s.ProfileBaseDir == "" {
		return NewValidationError("sandbox", "sandbox", "profile_base_dir", fmt.Errorf("directory required"))
	}

	// Port pools: both non-empty, and the control pool must mirror the
	// pixel pool because ports are paired by offset.
	if s.PixelPortEnd < s.PixelPortStart {
		return NewValidationError("sandbox", "sandbox", "pixel_port_end", fmt.Errorf("must not precede pixel_port_start"))
	}

	if s.ControlPortEnd < s.ControlPortStart {
		return NewValidationError("sandbox", "sandbox", "control_port_end", fmt.Errorf("must not precede control_port_start"))
	}

	pixelPool := s.PixelPortEnd - s.PixelPortStart
	controlPool := s.ControlPortEnd - s.ControlPortStart
	if pixelPool != controlPool {
		return NewValidationError("sandbox", "sandbox", "control_port_end", fmt.Errorf("control pool size %d does not match pixel pool size %d", controlPool+1, pixelPool+1))
	}

	if s.PortMaxAge <= 0 {
		return NewValidationError("sandbox", "sandbox", "port_max_age", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateRunner() error {
	r := v.cfg.Runner
	if r == nil {
		return NewValidationError("runner", "runner", "", fmt.Errorf("section required"))
	}

	if r.Command == "" {
		return NewValidationError("runner", "runner", "command", fmt.Errorf("command required"))
	}

	if r.SpecFilename == "" {
		return NewValidationError("runner", "runner", "spec_filename", fmt.Errorf("filename required"))
	}

	if filepath.Base(r.SpecFilename) != r.SpecFilename {
		return NewValidationError("runner", "runner", "spec_filename", fmt.Errorf("must be a bare filename, not a path: %s", r.SpecFilename))
	}

	if r.DefaultTimeout <= 0 {
		return NewValidationError("runner", "runner", "default_timeout", fmt.Errorf("must be positive"))
	}

	if r.KillGrace <= 0 {
		return NewValidationError("runner", "runner", "kill_grace", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validatePlanner() error {
	p := v.cfg.Planner
	if p == nil {
		return NewValidationError("planner", "planner", "", fmt.Errorf("section required"))
	}

	if p.MaxAPICalls < 1 {
		return NewValidationError("planner", "planner", "max_api_calls", fmt.Errorf("must be at least 1"))
	}

	if p.MaxCallsPerStep < 1 {
		return NewValidationError("planner", "planner", "max_calls_per_step", fmt.Errorf("must be at least 1"))
	}

	if !p.Providers.Has(p.AgentProvider) {
		return NewValidationError("planner", "planner", "agent_provider", fmt.Errorf("provider '%s' not found", p.AgentProvider))
	}

	if !p.Providers.Has(p.SelfHealProvider) {
		return NewValidationError("planner", "planner", "self_heal_provider", fmt.Errorf("provider '%s' not found", p.SelfHealProvider))
	}

	for name, provider := range p.Providers.GetAll() {
		// Validate model is not empty
		if provider.Model == "" {
			return NewValidationError("planner_provider", name, "model", fmt.Errorf("model required"))
		}

		if provider.MaxTokens < 0 {
			return NewValidationError("planner_provider", name, "max_tokens", fmt.Errorf("must not be negative"))
		}

		// Validate API key environment variable is set, but only for
		// providers actually selected. Unused builtins may sit in the
		// registry without credentials.
		if name != p.AgentProvider && name != p.SelfHealProvider {
			continue
		}
		if provider.APIKeyEnv != "" {
			if value := os.Getenv(provider.APIKeyEnv); value == "" {
				return NewValidationError("planner_provider", name, "api_key_env", fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateStorage() error {
	s := v.cfg.Storage
	if s == nil {
		return NewValidationError("storage", "storage", "", fmt.Errorf("section required"))
	}

	switch s.Backend {
	case "s3":
		if s.S3Bucket == "" {
			return NewValidationError("storage", "storage", "s3_bucket", fmt.Errorf("bucket required for s3 backend"))
		}
		if s.S3Region == "" {
			return NewValidationError("storage", "storage", "s3_region", fmt.Errorf("region required for s3 backend"))
		}
	case "fs":
		if s.FSRoot == "" {
			return NewValidationError("storage", "storage", "fs_root", fmt.Errorf("root directory required for fs backend"))
		}
	default:
		return NewValidationError("storage", "storage", "backend", fmt.Errorf("invalid backend: %s (expected s3 or fs)", s.Backend))
	}

	if s.ArtifactsBasePath == "" {
		return NewValidationError("storage", "storage", "artifacts_base_path", fmt.Errorf("directory required"))
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r == nil {
		return NewValidationError("retention", "retention", "", fmt.Errorf("section required"))
	}

	if r.RunRetentionDays < 1 {
		return NewValidationError("retention", "retention", "run_retention_days", fmt.Errorf("must be at least 1"))
	}

	if r.EventMaxAge <= 0 {
		return NewValidationError("retention", "retention", "event_max_age", fmt.Errorf("must be positive"))
	}

	if r.StagingMaxAge <= 0 {
		return NewValidationError("retention", "retention", "staging_max_age", fmt.Errorf("must be positive"))
	}

	if _, err := cron.ParseStandard(r.SweepSchedule); err != nil {
		return NewValidationError("retention", "retention", "sweep_schedule", fmt.Errorf("invalid cron expression: %v", err))
	}

	return nil
}

func (v *ConfigValidator) validateNotifications() error {
	n := v.cfg.Notifications
	if n == nil || n.Slack == nil || !n.Slack.Enabled {
		return nil
	}

	if n.Slack.WebhookURLEnv == "" {
		return NewValidationError("notifications", "slack", "webhook_url_env", fmt.Errorf("environment variable name required when enabled"))
	}

	if value := os.Getenv(n.Slack.WebhookURLEnv); value == "" {
		return NewValidationError("notifications", "slack", "webhook_url_env", fmt.Errorf("environment variable %s is not set", n.Slack.WebhookURLEnv))
	}

	return nil
}

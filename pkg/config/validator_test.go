package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig returns a fully valid configuration for mutation in
// table tests.
func validTestConfig() *Config {
	storage := DefaultStorageConfig()
	storage.S3Bucket = "conductor-artifacts"
	return &Config{
		Defaults:      DefaultDefaults(),
		Queue:         DefaultQueueConfig(),
		Sandbox:       DefaultSandboxConfig(),
		Runner:        DefaultRunnerConfig(),
		Planner:       DefaultPlannerConfig(),
		Storage:       storage,
		Retention:     DefaultRetentionConfig(),
		Notifications: DefaultNotificationsConfig(),
	}
}

func TestValidateAll(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg := validTestConfig()
	validator := NewValidator(cfg)
	assert.NoError(t, validator.ValidateAll())
}

func TestValidateDefaults(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Defaults)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			mutate:  func(d *Defaults) {},
			wantErr: false,
		},
		{
			name:    "invalid execution mode",
			mutate:  func(d *Defaults) { d.ExecutionMode = "YOLO" },
			wantErr: true,
			errMsg:  "invalid mode: YOLO",
		},
		{
			name:    "lowercase execution mode rejected",
			mutate:  func(d *Defaults) { d.ExecutionMode = "hybrid" },
			wantErr: true,
			errMsg:  "invalid mode",
		},
		{
			name:    "invalid streaming mode",
			mutate:  func(d *Defaults) { d.StreamingMode = "RTMP" },
			wantErr: true,
			errMsg:  "invalid mode: RTMP",
		},
		{
			name:    "zero spec max attempts",
			mutate:  func(d *Defaults) { d.SpecMaxAttempts = 0 },
			wantErr: true,
			errMsg:  "must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Defaults)

			validator := NewValidator(cfg)
			err := validator.validateDefaults()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateQueue(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QueueConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid queue",
			mutate:  func(q *QueueConfig) {},
			wantErr: false,
		},
		{
			name:    "zero concurrency",
			mutate:  func(q *QueueConfig) { q.Concurrency = 0 },
			wantErr: true,
			errMsg:  "concurrency",
		},
		{
			name: "lease shorter than renewal",
			mutate: func(q *QueueConfig) {
				q.LockDuration = 30 * time.Second
				q.LockRenewInterval = 60 * time.Second
			},
			wantErr: true,
			errMsg:  "must exceed lock_renew_ms",
		},
		{
			name:    "lease equal to renewal",
			mutate:  func(q *QueueConfig) { q.LockDuration = q.LockRenewInterval },
			wantErr: true,
			errMsg:  "must exceed lock_renew_ms",
		},
		{
			name:    "zero claim rate",
			mutate:  func(q *QueueConfig) { q.ClaimRatePerMinute = 0 },
			wantErr: true,
			errMsg:  "claim_rate_per_minute",
		},
		{
			name:    "negative remove on complete",
			mutate:  func(q *QueueConfig) { q.RemoveOnComplete = -1 },
			wantErr: true,
			errMsg:  "remove_on_complete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Queue)

			validator := NewValidator(cfg)
			err := validator.validateQueue()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSandbox(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SandboxConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid sandbox",
			mutate:  func(s *SandboxConfig) {},
			wantErr: false,
		},
		{
			name:    "zero bootstrap attempts",
			mutate:  func(s *SandboxConfig) { s.BootstrapAttempts = 0 },
			wantErr: true,
			errMsg:  "bootstrap_attempts",
		},
		{
			name:    "quality above 100",
			mutate:  func(s *SandboxConfig) { s.ScreencastQuality = 101 },
			wantErr: true,
			errMsg:  "between 1 and 100",
		},
		{
			name:    "inverted pixel pool",
			mutate:  func(s *SandboxConfig) { s.PixelPortEnd = s.PixelPortStart - 1 },
			wantErr: true,
			errMsg:  "pixel_port_end",
		},
		{
			name:    "mismatched pool sizes",
			mutate:  func(s *SandboxConfig) { s.ControlPortEnd = s.ControlPortStart + 2 },
			wantErr: true,
			errMsg:  "does not match pixel pool size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Sandbox)

			validator := NewValidator(cfg)
			err := validator.validateSandbox()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePlanner(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	tests := []struct {
		name    string
		mutate  func(*PlannerConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid planner",
			mutate:  func(p *PlannerConfig) {},
			wantErr: false,
		},
		{
			name:    "unknown agent provider",
			mutate:  func(p *PlannerConfig) { p.AgentProvider = "nonexistent" },
			wantErr: true,
			errMsg:  "provider 'nonexistent' not found",
		},
		{
			name:    "unknown self heal provider",
			mutate:  func(p *PlannerConfig) { p.SelfHealProvider = "nonexistent" },
			wantErr: true,
			errMsg:  "provider 'nonexistent' not found",
		},
		{
			name:    "zero api call budget",
			mutate:  func(p *PlannerConfig) { p.MaxAPICalls = 0 },
			wantErr: true,
			errMsg:  "max_api_calls",
		},
		{
			name: "provider without model",
			mutate: func(p *PlannerConfig) {
				p.Providers = NewProviderRegistry(map[string]*ProviderConfig{
					"broken": {APIKeyEnv: "ANTHROPIC_API_KEY"},
				})
				p.AgentProvider = "broken"
				p.SelfHealProvider = "broken"
			},
			wantErr: true,
			errMsg:  "model required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Planner)

			validator := NewValidator(cfg)
			err := validator.validatePlanner()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePlannerMissingAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg := validTestConfig()
	validator := NewValidator(cfg)
	err := validator.validatePlanner()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY is not set")
}

func TestValidatePlannerSkipsUnselectedProviderKeys(t *testing.T) {
	// Only the selected provider's key is required; an unused builtin
	// with a missing key must not fail validation.
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg := validTestConfig()
	providers := cfg.Planner.Providers.GetAll()
	providers["unused"] = &ProviderConfig{Model: "other-model", APIKeyEnv: "UNSET_PROVIDER_KEY"}
	cfg.Planner.Providers = NewProviderRegistry(providers)

	validator := NewValidator(cfg)
	assert.NoError(t, validator.validatePlanner())
}

func TestValidateStorage(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StorageConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid s3 storage",
			mutate:  func(s *StorageConfig) {},
			wantErr: false,
		},
		{
			name: "valid fs storage",
			mutate: func(s *StorageConfig) {
				s.Backend = "fs"
				s.FSRoot = "/var/lib/conductor/blobs"
			},
			wantErr: false,
		},
		{
			name:    "unknown backend",
			mutate:  func(s *StorageConfig) { s.Backend = "gcs" },
			wantErr: true,
			errMsg:  "invalid backend: gcs",
		},
		{
			name:    "s3 without bucket",
			mutate:  func(s *StorageConfig) { s.S3Bucket = "" },
			wantErr: true,
			errMsg:  "bucket required",
		},
		{
			name:    "fs without root",
			mutate:  func(s *StorageConfig) { s.Backend = "fs"; s.FSRoot = "" },
			wantErr: true,
			errMsg:  "root directory required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Storage)

			validator := NewValidator(cfg)
			err := validator.validateStorage()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRetention(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RetentionConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid retention",
			mutate:  func(r *RetentionConfig) {},
			wantErr: false,
		},
		{
			name:    "invalid cron expression",
			mutate:  func(r *RetentionConfig) { r.SweepSchedule = "every ten minutes" },
			wantErr: true,
			errMsg:  "invalid cron expression",
		},
		{
			name:    "zero event max age",
			mutate:  func(r *RetentionConfig) { r.EventMaxAge = 0 },
			wantErr: true,
			errMsg:  "event_max_age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Retention)

			validator := NewValidator(cfg)
			err := validator.validateRetention()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNotifications(t *testing.T) {
	t.Run("disabled slack skips env check", func(t *testing.T) {
		cfg := validTestConfig()
		validator := NewValidator(cfg)
		assert.NoError(t, validator.validateNotifications())
	})

	t.Run("enabled slack requires webhook env", func(t *testing.T) {
		t.Setenv("SLACK_WEBHOOK_URL", "")

		cfg := validTestConfig()
		cfg.Notifications.Slack.Enabled = true

		validator := NewValidator(cfg)
		err := validator.validateNotifications()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SLACK_WEBHOOK_URL is not set")
	})

	t.Run("enabled slack with webhook set", func(t *testing.T) {
		t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/T0/B0/x")

		cfg := validTestConfig()
		cfg.Notifications.Slack.Enabled = true

		validator := NewValidator(cfg)
		assert.NoError(t, validator.validateNotifications())
	})
}

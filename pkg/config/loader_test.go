package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConductorYAML writes conductor.yaml into a temp config dir.
func writeConductorYAML(t *testing.T, content string) string {
	t.Helper()
	configDir := t.TempDir()
	err := os.WriteFile(filepath.Join(configDir, "conductor.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	return configDir
}

func TestInitialize(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	configDir := writeConductorYAML(t, `
system:
  dashboard_url: "https://conductor.example.com"
  allowed_ws_origins:
    - "https://conductor.example.com"

queue:
  concurrency: 2
  max_concurrent_runs: 8

storage:
  backend: fs
  fs_root: /tmp/conductor-blobs
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// User values override defaults
	assert.Equal(t, 2, cfg.Queue.Concurrency)
	assert.Equal(t, 8, cfg.Queue.MaxConcurrentRuns)
	assert.Equal(t, "fs", cfg.Storage.Backend)
	assert.Equal(t, "https://conductor.example.com", cfg.DashboardURL)

	// Unset values keep built-in defaults
	assert.Equal(t, 300*time.Second, cfg.Queue.LockDuration)
	assert.Equal(t, "HYBRID", cfg.Defaults.ExecutionMode)
	assert.Equal(t, 3, cfg.Sandbox.ScreencastEveryNth)

	// Builtin planner providers are registered
	assert.True(t, cfg.Planner.Providers.Has("anthropic-sonnet"))
	assert.True(t, cfg.Planner.Providers.Has("anthropic-haiku"))

	stats := cfg.Stats()
	assert.GreaterOrEqual(t, stats.PlannerProviders, 2)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := writeConductorYAML(t, `queue: [not: a: mapping`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	configDir := writeConductorYAML(t, `
defaults:
  execution_mode: "TURBO"

storage:
  backend: fs
  fs_root: /tmp/conductor-blobs
`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "TURBO")
}

func TestInitializeCustomProvider(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("CUSTOM_PLANNER_KEY", "custom-key")

	configDir := writeConductorYAML(t, `
planner:
  agent_provider: "lab-model"
  max_api_calls: 60
  providers:
    lab-model:
      model: "claude-sonnet-4-5"
      api_key_env: "CUSTOM_PLANNER_KEY"
      max_tokens: 4096
      pricing:
        input_per_mtok: 3.0
        output_per_mtok: 15.0

storage:
  backend: fs
  fs_root: /tmp/conductor-blobs
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	assert.Equal(t, "lab-model", cfg.Planner.AgentProvider)
	assert.Equal(t, 60, cfg.Planner.MaxAPICalls)
	// Self-heal provider keeps the default when not overridden
	assert.Equal(t, "anthropic-sonnet", cfg.Planner.SelfHealProvider)

	provider, err := cfg.Planner.Providers.Get("lab-model")
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-5", provider.Model)
	assert.Equal(t, 4096, provider.MaxTokens)
	require.NotNil(t, provider.Pricing)
	assert.InDelta(t, 3.0, provider.Pricing.InputPerMTok, 0.001)

	// Builtins remain alongside user-defined providers
	assert.True(t, cfg.Planner.Providers.Has("anthropic-haiku"))
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("CONDUCTOR_BUCKET", "conductor-ci-artifacts")

	configDir := writeConductorYAML(t, `
storage:
  backend: s3
  s3_bucket: "{{.CONDUCTOR_BUCKET}}"
  s3_region: "us-west-2"
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	assert.Equal(t, "conductor-ci-artifacts", cfg.Storage.S3Bucket)
	assert.Equal(t, "us-west-2", cfg.Storage.S3Region)
}

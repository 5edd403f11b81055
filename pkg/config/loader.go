package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConductorYAMLConfig represents the complete conductor.yaml file structure
type ConductorYAMLConfig struct {
	System        *SystemYAMLConfig    `yaml:"system"`
	Defaults      *Defaults            `yaml:"defaults"`
	Queue         *QueueConfig         `yaml:"queue"`
	Sandbox       *SandboxConfig       `yaml:"sandbox"`
	Runner        *RunnerConfig        `yaml:"runner"`
	Planner       *PlannerYAMLConfig   `yaml:"planner"`
	Storage       *StorageConfig       `yaml:"storage"`
	Retention     *RetentionConfig     `yaml:"retention"`
	Notifications *NotificationsConfig `yaml:"notifications"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL     string   `yaml:"dashboard_url"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// PlannerYAMLConfig is the YAML shape of the planner section; the
// providers map is merged over the builtins into the registry.
type PlannerYAMLConfig struct {
	AgentProvider    string                     `yaml:"agent_provider"`
	SelfHealProvider string                     `yaml:"self_heal_provider"`
	MaxAPICalls      int                        `yaml:"max_api_calls"`
	MaxCallsPerStep  int                        `yaml:"max_calls_per_step"`
	Providers        map[string]*ProviderConfig `yaml:"providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load conductor.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Build the provider registry
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"planner_providers", stats.PlannerProviders)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	yamlConfig, err := loader.loadConductorYAML()
	if err != nil {
		return nil, NewLoadError("conductor.yaml", err)
	}

	// Resolve every section: start with defaults, then merge user config
	// on top to preserve unset defaults.
	defaults := DefaultDefaults()
	if yamlConfig.Defaults != nil {
		if err := mergo.Merge(defaults, yamlConfig.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	queueConfig := DefaultQueueConfig()
	if yamlConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, yamlConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	sandboxConfig := DefaultSandboxConfig()
	if yamlConfig.Sandbox != nil {
		if err := mergo.Merge(sandboxConfig, yamlConfig.Sandbox, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge sandbox config: %w", err)
		}
	}

	runnerConfig := DefaultRunnerConfig()
	if yamlConfig.Runner != nil {
		if err := mergo.Merge(runnerConfig, yamlConfig.Runner, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge runner config: %w", err)
		}
	}

	storageConfig := DefaultStorageConfig()
	if yamlConfig.Storage != nil {
		if err := mergo.Merge(storageConfig, yamlConfig.Storage, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge storage config: %w", err)
		}
	}

	retentionConfig := DefaultRetentionConfig()
	if yamlConfig.Retention != nil {
		if err := mergo.Merge(retentionConfig, yamlConfig.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	notificationsConfig := DefaultNotificationsConfig()
	if yamlConfig.Notifications != nil {
		if err := mergo.Merge(notificationsConfig, yamlConfig.Notifications, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge notifications config: %w", err)
		}
	}

	plannerConfig := resolvePlannerConfig(yamlConfig.Planner)

	dashboardURL := ""
	var allowedWSOrigins []string
	if yamlConfig.System != nil {
		dashboardURL = yamlConfig.System.DashboardURL
		allowedWSOrigins = yamlConfig.System.AllowedWSOrigins
	}

	return &Config{
		configDir:        configDir,
		Defaults:         defaults,
		Queue:            queueConfig,
		Sandbox:          sandboxConfig,
		Runner:           runnerConfig,
		Planner:          plannerConfig,
		Storage:          storageConfig,
		Retention:        retentionConfig,
		Notifications:    notificationsConfig,
		DashboardURL:     dashboardURL,
		AllowedWSOrigins: allowedWSOrigins,
	}, nil
}

// resolvePlannerConfig merges the YAML planner section over the builtin
// defaults; user-defined providers override builtins by name.
func resolvePlannerConfig(yamlPlanner *PlannerYAMLConfig) *PlannerConfig {
	cfg := DefaultPlannerConfig()
	if yamlPlanner == nil {
		return cfg
	}
	if yamlPlanner.AgentProvider != "" {
		cfg.AgentProvider = yamlPlanner.AgentProvider
	}
	if yamlPlanner.SelfHealProvider != "" {
		cfg.SelfHealProvider = yamlPlanner.SelfHealProvider
	}
	if yamlPlanner.MaxAPICalls > 0 {
		cfg.MaxAPICalls = yamlPlanner.MaxAPICalls
	}
	if yamlPlanner.MaxCallsPerStep > 0 {
		cfg.MaxCallsPerStep = yamlPlanner.MaxCallsPerStep
	}
	if len(yamlPlanner.Providers) > 0 {
		merged := builtinProviders()
		for name, p := range yamlPlanner.Providers {
			merged[name] = p
		}
		cfg.Providers = NewProviderRegistry(merged)
	}
	return cfg
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadConductorYAML() (*ConductorYAMLConfig, error) {
	var config ConductorYAMLConfig

	if err := l.loadYAML("conductor.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

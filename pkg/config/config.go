package config

// Config is the umbrella configuration object that encapsulates
// all sections, registries, and defaults.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Sandbox (browser + wallet) configuration
	Sandbox *SandboxConfig

	// Deterministic test program execution
	Runner *RunnerConfig

	// Planner models, budgets, and pricing
	Planner *PlannerConfig

	// Blob store and artifact staging
	Storage *StorageConfig

	// Retention and cleanup schedules
	Retention *RetentionConfig

	// Failure notifications
	Notifications *NotificationsConfig

	// Dashboard base URL used in notifications and API payloads
	DashboardURL string

	// Origins allowed to open websocket event streams
	AllowedWSOrigins []string
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats contains statistics about loaded configuration
type Stats struct {
	PlannerProviders int
}

// Stats returns counts of loaded configuration components.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Planner != nil {
		s.PlannerProviders = c.Planner.Providers.Len()
	}
	return s
}

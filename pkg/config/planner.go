package config

import (
	"fmt"
	"sync"
)

// ProviderConfig defines one planner provider (model + credentials +
// pricing used by the cost tracker).
type ProviderConfig struct {
	// Model id sent to the planner API (required)
	Model string `yaml:"model"`

	// Environment variable name holding the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL
	BaseURL string `yaml:"base_url,omitempty"`

	// MaxTokens per planner response
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// Pricing per million tokens, used for run cost estimates
	Pricing *ProviderPricing `yaml:"pricing,omitempty"`
}

// ProviderPricing holds USD prices per million tokens.
type ProviderPricing struct {
	InputPerMTok      float64 `yaml:"input_per_mtok"`
	OutputPerMTok     float64 `yaml:"output_per_mtok"`
	CacheReadPerMTok  float64 `yaml:"cache_read_per_mtok"`
	CacheWritePerMTok float64 `yaml:"cache_write_per_mtok"`
}

// PlannerConfig selects providers per purpose and carries call budgets.
type PlannerConfig struct {
	// Provider names per purpose
	AgentProvider    string `yaml:"agent_provider"`
	SelfHealProvider string `yaml:"self_heal_provider"`

	// Per-run hard cap of planner calls; exhaustion aborts the run with
	// all remaining steps failed.
	MaxAPICalls int `yaml:"max_api_calls"`

	// Per-step hard cap; exhaustion fails that step only.
	MaxCallsPerStep int `yaml:"max_calls_per_step"`

	// Registry of named providers
	Providers *ProviderRegistry `yaml:"-"`
}

// SingleStepCallCap is the fixed planner-call budget of the hybrid
// executor's single-step recovery agent.
const SingleStepCallCap = 15

// DefaultPlannerConfig returns planner defaults wired to the builtin
// providers.
func DefaultPlannerConfig() *PlannerConfig {
	return &PlannerConfig{
		AgentProvider:    "anthropic-sonnet",
		SelfHealProvider: "anthropic-sonnet",
		MaxAPICalls:      40,
		MaxCallsPerStep:  10,
		Providers:        NewProviderRegistry(builtinProviders()),
	}
}

// builtinProviders are usable out of the box with only an API key set.
func builtinProviders() map[string]*ProviderConfig {
	return map[string]*ProviderConfig{
		"anthropic-sonnet": {
			Model:     "claude-sonnet-4-5",
			APIKeyEnv: "ANTHROPIC_API_KEY",
			MaxTokens: 8192,
			Pricing: &ProviderPricing{
				InputPerMTok:      3.0,
				OutputPerMTok:     15.0,
				CacheReadPerMTok:  0.3,
				CacheWritePerMTok: 3.75,
			},
		},
		"anthropic-haiku": {
			Model:     "claude-haiku-4-5",
			APIKeyEnv: "ANTHROPIC_API_KEY",
			MaxTokens: 8192,
			Pricing: &ProviderPricing{
				InputPerMTok:      1.0,
				OutputPerMTok:     5.0,
				CacheReadPerMTok:  0.1,
				CacheWritePerMTok: 1.25,
			},
		},
	}
}

// ProviderRegistry stores planner provider configurations in memory with thread-safe access
type ProviderRegistry struct {
	providers map[string]*ProviderConfig
	mu        sync.RWMutex
}

// NewProviderRegistry creates a new provider registry
func NewProviderRegistry(providers map[string]*ProviderConfig) *ProviderRegistry {
	// Copy to detach from the caller's map
	copied := make(map[string]*ProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &ProviderRegistry{
		providers: copied,
	}
}

// Get retrieves a provider configuration by name (thread-safe)
func (r *ProviderRegistry) Get(name string) (*ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return provider, nil
}

// GetAll returns all provider configurations (thread-safe, returns copy)
func (r *ProviderRegistry) GetAll() map[string]*ProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if a provider exists in the registry (thread-safe)
func (r *ProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of providers in the registry (thread-safe)
func (r *ProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

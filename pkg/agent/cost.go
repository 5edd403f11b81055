package agent

import (
	"sync"

	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/models"
)

// CostTracker tallies planner token usage per model and prices it with
// the provider registry. Safe for concurrent use; a suite run shares
// one tracker across its children.
type CostTracker struct {
	mu      sync.Mutex
	byModel map[string]models.TokenUsage
	pricing map[string]*config.ProviderPricing // keyed by model id
}

// NewCostTracker indexes pricing by model id from the registry. A nil
// registry yields a tracker that counts tokens but estimates $0.
func NewCostTracker(registry *config.ProviderRegistry) *CostTracker {
	pricing := make(map[string]*config.ProviderPricing)
	if registry != nil {
		for _, p := range registry.GetAll() {
			if p.Pricing != nil {
				pricing[p.Model] = p.Pricing
			}
		}
	}
	return &CostTracker{byModel: make(map[string]models.TokenUsage), pricing: pricing}
}

// Record adds one response's usage under the given model.
func (t *CostTracker) Record(model string, usage models.TokenUsage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	u := t.byModel[model]
	u.Add(usage)
	t.byModel[model] = u
}

// Summary prices the accumulated usage.
func (t *CostTracker) Summary() models.CostSummary {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := models.CostSummary{ByModel: make(map[string]models.TokenUsage, len(t.byModel))}
	for model, u := range t.byModel {
		out.ByModel[model] = u
		p := t.pricing[model]
		if p == nil {
			continue
		}
		out.EstimatedUSD += float64(u.InputTokens)/1e6*p.InputPerMTok +
			float64(u.OutputTokens)/1e6*p.OutputPerMTok +
			float64(u.CacheReadTokens)/1e6*p.CacheReadPerMTok +
			float64(u.CacheCreationTokens)/1e6*p.CacheWritePerMTok
	}
	return out
}

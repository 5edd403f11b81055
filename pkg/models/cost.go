package models

// TokenUsage accumulates planner token counts for one model.
type TokenUsage struct {
	InputTokens         int `json:"input_tokens"`
	OutputTokens        int `json:"output_tokens"`
	CacheReadTokens     int `json:"cache_read_input_tokens"`
	CacheCreationTokens int `json:"cache_creation_input_tokens"`
}

// Add accumulates another usage sample.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.CacheReadTokens += other.CacheReadTokens
	u.CacheCreationTokens += other.CacheCreationTokens
}

// CostSummary is the per-model usage and estimated spend for a run.
type CostSummary struct {
	ByModel      map[string]TokenUsage `json:"by_model"`
	EstimatedUSD float64               `json:"estimated_usd"`
}

func (c CostSummary) toMap() map[string]interface{} {
	byModel := make(map[string]interface{}, len(c.ByModel))
	for model, u := range c.ByModel {
		byModel[model] = map[string]interface{}{
			"input_tokens":                u.InputTokens,
			"output_tokens":               u.OutputTokens,
			"cache_read_input_tokens":     u.CacheReadTokens,
			"cache_creation_input_tokens": u.CacheCreationTokens,
		}
	}
	return map[string]interface{}{
		"by_model":      byModel,
		"estimated_usd": c.EstimatedUSD,
	}
}

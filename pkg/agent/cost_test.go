package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/models"
)

func TestCostTracker_PricesByModel(t *testing.T) {
	tracker := NewCostTracker(config.DefaultPlannerConfig().Providers)

	tracker.Record("claude-sonnet-4-5", models.TokenUsage{InputTokens: 1_000_000, OutputTokens: 100_000})
	tracker.Record("claude-sonnet-4-5", models.TokenUsage{CacheReadTokens: 2_000_000})

	sum := tracker.Summary()
	require.Contains(t, sum.ByModel, "claude-sonnet-4-5")
	usage := sum.ByModel["claude-sonnet-4-5"]
	assert.Equal(t, 1_000_000, usage.InputTokens)
	assert.Equal(t, 100_000, usage.OutputTokens)
	assert.Equal(t, 2_000_000, usage.CacheReadTokens)

	// 1M input at $3 + 100k output at $15/M + 2M cache reads at $0.30/M.
	assert.InDelta(t, 3.0+1.5+0.6, sum.EstimatedUSD, 1e-9)
}

func TestCostTracker_UnknownModelCountsTokensOnly(t *testing.T) {
	tracker := NewCostTracker(config.DefaultPlannerConfig().Providers)

	tracker.Record("some-other-model", models.TokenUsage{InputTokens: 500})

	sum := tracker.Summary()
	assert.Equal(t, 500, sum.ByModel["some-other-model"].InputTokens)
	assert.Zero(t, sum.EstimatedUSD)
}

func TestCostTracker_NilRegistry(t *testing.T) {
	tracker := NewCostTracker(nil)
	tracker.Record("claude-sonnet-4-5", models.TokenUsage{InputTokens: 10, OutputTokens: 10})

	sum := tracker.Summary()
	assert.Zero(t, sum.EstimatedUSD)
	assert.Equal(t, 10, sum.ByModel["claude-sonnet-4-5"].InputTokens)
}

package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallBudget_RunCapCheckedBeforeStepCap(t *testing.T) {
	b := NewCallBudget(2, 10)

	require.NoError(t, b.Spend())
	require.NoError(t, b.Spend())
	assert.ErrorIs(t, b.Spend(), ErrRunBudgetExhausted)
	assert.Equal(t, 2, b.TotalUsed(), "a refused spend consumes nothing")
	assert.True(t, b.RunExhausted())
}

func TestCallBudget_StepCapResets(t *testing.T) {
	b := NewCallBudget(10, 2)

	require.NoError(t, b.Spend())
	require.NoError(t, b.Spend())
	assert.ErrorIs(t, b.Spend(), ErrStepBudgetExhausted)
	assert.Equal(t, 2, b.StepUsed())

	b.ResetStep()
	assert.Zero(t, b.StepUsed())
	require.NoError(t, b.Spend())
	assert.Equal(t, 3, b.TotalUsed(), "run total survives step resets")
	assert.False(t, b.RunExhausted())
}

func TestCallBudget_DefaultsForNonPositiveCaps(t *testing.T) {
	b := NewCallBudget(0, -1)

	for i := 0; i < 10; i++ {
		require.NoError(t, b.Spend())
	}
	assert.ErrorIs(t, b.Spend(), ErrStepBudgetExhausted)

	b.ResetStep()
	for i := 0; i < 30; i++ {
		require.NoError(t, b.Spend())
		if (i+1)%10 == 0 {
			b.ResetStep()
		}
	}
	assert.ErrorIs(t, b.Spend(), ErrRunBudgetExhausted)
	assert.Equal(t, 40, b.TotalUsed())
}

package agent

// CallBudget enforces the planner-call caps: a per-run hard cap and a
// per-step cap that resets at step boundaries. Only completed planner
// calls consume slots; rate-limited retries do not.
type CallBudget struct {
	maxTotal   int
	maxPerStep int
	total      int
	step       int
}

// NewCallBudget builds a budget. Non-positive caps fall back to the
// planner defaults.
func NewCallBudget(maxTotal, maxPerStep int) *CallBudget {
	if maxTotal <= 0 {
		maxTotal = 40
	}
	if maxPerStep <= 0 {
		maxPerStep = 10
	}
	return &CallBudget{maxTotal: maxTotal, maxPerStep: maxPerStep}
}

// ResetStep opens a new step window.
func (b *CallBudget) ResetStep() { b.step = 0 }

// Spend consumes one slot, or reports which cap would be exceeded. A
// refused spend consumes nothing.
func (b *CallBudget) Spend() error {
	if b.total >= b.maxTotal {
		return ErrRunBudgetExhausted
	}
	if b.step >= b.maxPerStep {
		return ErrStepBudgetExhausted
	}
	b.total++
	b.step++
	return nil
}

// TotalUsed returns planner calls consumed across the run.
func (b *CallBudget) TotalUsed() int { return b.total }

// RunExhausted reports whether the run cap is fully spent.
func (b *CallBudget) RunExhausted() bool { return b.total >= b.maxTotal }

// StepUsed returns planner calls consumed by the current step.
func (b *CallBudget) StepUsed() int { return b.step }

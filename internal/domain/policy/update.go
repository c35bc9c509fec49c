package policy

import "github.com/aeliyag/reinforcedLearning/internal/ports"

// Feedback is an observed outcome of a prior decision. Reward is +1 for a
// correct response, 0 for partial or skipped, -1 for incorrect.
type Feedback struct {
	StateKey     string
	Action       Action
	Reward       float64
	NextStateKey string
}

// Apply folds the feedback into the table with the single-step tabular
// Q-learning update new = old + alpha*(reward + gamma*nextMax - old),
// creating the row lazily, and returns the stored value. An unseen StateKey
// is an all-zero row, not an error.
func (e *Engine) Apply(table ports.ValueTable, fb Feedback) float64 {
	old := table.Get(fb.StateKey, fb.Action.String())
	nextMax := rowMax(table[fb.NextStateKey])
	val := old + e.params.Alpha*(fb.Reward+e.params.Gamma*nextMax-old)
	table.Set(fb.StateKey, fb.Action.String(), val)
	return val
}

func rowMax(row map[string]float64) float64 {
	max := 0.0
	first := true
	for _, v := range row {
		if first || v > max {
			max, first = v, false
		}
	}
	return max
}

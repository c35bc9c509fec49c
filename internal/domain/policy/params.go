package policy

// Params are the tunables of the learning policy.
type Params struct {
	// Alpha is the learning rate of the temporal-difference update.
	Alpha float64
	// Gamma discounts the best known value of the next state.
	Gamma float64
	// Epsilon is the exploration probability of the selector.
	Epsilon float64
	// PracticingThreshold is the mastery level at which the cold-start
	// heuristic prefers advancing over remediation.
	PracticingThreshold int
	// MinRecentForReview is the minimum number of distinct unmastered
	// recent symbols before the heuristic recommends a review.
	MinRecentForReview int
}

// DefaultParams returns the tuning the engine ships with.
func DefaultParams() Params {
	return Params{
		Alpha:               0.5,
		Gamma:               0.9,
		Epsilon:             0.15,
		PracticingThreshold: 1,
		MinRecentForReview:  2,
	}
}

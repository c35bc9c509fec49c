package policy

import "github.com/aeliyag/reinforcedLearning/internal/domain/curriculum"

// pickTrouble selects the symbol the learner most needs remediation on.
// Candidates are the mapped symbols at level 0, or at level 1 if no level-0
// symbol exists. The current symbol is never a candidate. Among candidates
// the nearest by alphabetic distance wins, ties going to the lower alphabetic
// position. Returns false when no candidate exists.
func pickTrouble(m curriculum.MasteryMap, current curriculum.Symbol) (curriculum.Symbol, bool) {
	best, found := curriculum.Symbol(0), false
	for _, want := range []curriculum.Level{curriculum.LevelUnseen, curriculum.LevelPracticing} {
		for _, s := range curriculum.All() {
			lvl, ok := m[s]
			if !ok || lvl != want || s == current {
				continue
			}
			if !found || curriculum.Distance(s, current) < curriculum.Distance(best, current) {
				best, found = s, true
			}
		}
		if found {
			return best, true
		}
	}
	return 0, false
}

// heuristic is the deterministic cold-start decision tree, consulted when the
// value table carries no signal for the current state. First match wins.
func (e *Engine) heuristic(in DecideInput) Action {
	switch {
	case in.Level >= curriculum.LevelMastered:
		return ActionMoveNext
	case int(in.Level) >= e.params.PracticingThreshold:
		return ActionMoveNext
	}
	if _, ok := pickTrouble(in.Mastery, in.Current); ok {
		return ActionJumpTrouble
	}
	if e.distinctUnmasteredRecent(in) >= e.params.MinRecentForReview {
		return ActionReviewRecent
	}
	return ActionPracticeCurrent
}

func (e *Engine) distinctUnmasteredRecent(in DecideInput) int {
	seen := make(map[curriculum.Symbol]struct{}, len(in.Recent))
	for _, s := range in.Recent {
		if in.Mastery.Mastered(s) {
			continue
		}
		seen[s] = struct{}{}
	}
	return len(seen)
}

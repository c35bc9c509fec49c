package policy

import "github.com/aeliyag/reinforcedLearning/internal/domain/curriculum"

// resolve turns an abstract action into a concrete recommendation. The match
// is exhaustive; a review request over a history with no reviewable symbols
// degrades to advancing, as an explicit transition.
func (e *Engine) resolve(action Action, key string, in DecideInput) Decision {
	d := Decision{Action: action, StateKey: key}

	switch action {
	case ActionPracticeCurrent:
		d.Target = in.Current

	case ActionMoveNext:
		d.Target = curriculum.NextUnmastered(in.Current, in.Mastery)

	case ActionJumpTrouble:
		if t, ok := pickTrouble(in.Mastery, in.Current); ok {
			d.Target = t
		} else {
			d.Target = in.Current
		}

	case ActionReviewRecent:
		list := reviewList(in.Recent, in.Mastery)
		if len(list) == 0 {
			d.Action = ActionMoveNext
			d.Target = curriculum.NextUnmastered(in.Current, in.Mastery)
			break
		}
		d.List = list
		d.Target = list[0]
	}

	// Mastered symbols are never recommended while an unmastered one exists.
	if in.Mastery.Mastered(d.Target) {
		d.Target = curriculum.NextUnmastered(in.Current, in.Mastery)
	}
	return d
}

// reviewList collects up to 3 distinct unmastered symbols from the history,
// most recent first.
func reviewList(recent []curriculum.Symbol, m curriculum.MasteryMap) []curriculum.Symbol {
	var out []curriculum.Symbol
	seen := make(map[curriculum.Symbol]struct{}, 3)
	for i := len(recent) - 1; i >= 0 && len(out) < 3; i-- {
		s := recent[i]
		if m.Mastered(s) {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

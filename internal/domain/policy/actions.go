// Package policy implements the tabular Q-learning recommendation engine: it
// scores the four pedagogical actions per learner state, picks one
// epsilon-greedily with a heuristic cold start, resolves the action to a
// concrete target symbol, and folds observed rewards back into the table.
package policy

import "fmt"

// Action is one of the four pedagogical moves the engine can recommend.
type Action int

const (
	// ActionPracticeCurrent keeps the learner on the current symbol.
	ActionPracticeCurrent Action = iota
	// ActionMoveNext advances to the next unmastered symbol.
	ActionMoveNext
	// ActionJumpTrouble jumps to the weakest nearby symbol.
	ActionJumpTrouble
	// ActionReviewRecent replays recently seen unmastered symbols.
	ActionReviewRecent

	actionCount
)

var actionNames = [actionCount]string{
	"practice_current",
	"move_next",
	"jump_trouble",
	"review_recent",
}

// Actions returns all actions in declaration order. Greedy ties resolve to
// the earliest action in this order, so it is part of the engine's contract.
func Actions() []Action {
	return []Action{ActionPracticeCurrent, ActionMoveNext, ActionJumpTrouble, ActionReviewRecent}
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction parses the wire name of an action.
func ParseAction(s string) (Action, error) {
	for i, name := range actionNames {
		if s == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

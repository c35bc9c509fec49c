package app

import (
	"fmt"

	"github.com/aeliyag/reinforcedLearning/internal/adapters/socket"
	"github.com/aeliyag/reinforcedLearning/internal/domain/curriculum"
	"github.com/aeliyag/reinforcedLearning/internal/domain/policy"
	"github.com/aeliyag/reinforcedLearning/internal/ports"
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ports.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// parseDecideParams validates the wire request and converts it to engine
// input. Missing mastery_level defaults to the map's entry for the current
// letter; map and history default to empty.
func parseDecideParams(p socket.DecideParams) (policy.DecideInput, error) {
	var in policy.DecideInput

	if p.CurrentLetter == "" {
		return in, invalid("current_letter is required")
	}
	current, err := curriculum.ParseSymbol(p.CurrentLetter)
	if err != nil {
		return in, invalid("current_letter: %v", err)
	}

	mastery := make(curriculum.MasteryMap, len(p.MasteryMap))
	for letter, level := range p.MasteryMap {
		s, err := curriculum.ParseSymbol(letter)
		if err != nil {
			return in, invalid("mastery_map: %v", err)
		}
		lvl, err := curriculum.ParseLevel(level)
		if err != nil {
			return in, invalid("mastery_map[%s]: %v", letter, err)
		}
		mastery[s] = lvl
	}

	var level curriculum.Level
	if p.MasteryLevel != nil {
		level, err = curriculum.ParseLevel(*p.MasteryLevel)
		if err != nil {
			return in, invalid("mastery_level: %v", err)
		}
	} else {
		level = mastery.Level(current)
	}

	recent := make([]curriculum.Symbol, 0, len(p.RecentHistory))
	for _, letter := range p.RecentHistory {
		s, err := curriculum.ParseSymbol(letter)
		if err != nil {
			return in, invalid("recent_history: %v", err)
		}
		recent = append(recent, s)
	}

	return policy.DecideInput{
		Current: current,
		Level:   level,
		Mastery: mastery,
		Recent:  recent,
	}, nil
}

// parseFeedbackParams validates the wire feedback. Every field is required.
func parseFeedbackParams(p socket.FeedbackParams) (policy.Feedback, error) {
	var fb policy.Feedback

	if p.StateKey == "" {
		return fb, invalid("state_key is required")
	}
	if _, _, err := policy.ParseStateKey(p.StateKey); err != nil {
		return fb, invalid("state_key: %v", err)
	}

	action, err := policy.ParseAction(p.Action)
	if err != nil {
		return fb, invalid("action: %v", err)
	}

	if p.Reward == nil {
		return fb, invalid("reward is required")
	}

	if p.NextState == nil {
		return fb, invalid("next_state is required")
	}
	nextSym, err := curriculum.ParseSymbol(p.NextState.Letter)
	if err != nil {
		return fb, invalid("next_state.letter: %v", err)
	}
	if p.NextState.MasteryLevel == nil {
		return fb, invalid("next_state.mastery_level is required")
	}
	nextLvl, err := curriculum.ParseLevel(*p.NextState.MasteryLevel)
	if err != nil {
		return fb, invalid("next_state.mastery_level: %v", err)
	}

	return policy.Feedback{
		StateKey:     p.StateKey,
		Action:       action,
		Reward:       *p.Reward,
		NextStateKey: policy.StateKey(nextSym, nextLvl),
	}, nil
}

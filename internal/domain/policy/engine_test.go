package policy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeliyag/reinforcedLearning/internal/domain/curriculum"
	"github.com/aeliyag/reinforcedLearning/internal/ports"
)

// greedyEngine disables exploration so selection is fully deterministic.
func greedyEngine() *Engine {
	p := DefaultParams()
	p.Epsilon = 0
	return NewEngineWithRand(p, rand.New(rand.NewSource(1)))
}

func TestStateKeyRoundTrip(t *testing.T) {
	// Every (symbol, level) pair must map to a distinct key and decode back.
	seen := make(map[string]bool)
	for _, s := range curriculum.All() {
		for lvl := curriculum.LevelUnseen; lvl <= curriculum.LevelMastered; lvl++ {
			key := StateKey(s, lvl)
			assert.False(t, seen[key], "duplicate key %s", key)
			seen[key] = true

			gotS, gotLvl, err := ParseStateKey(key)
			require.NoError(t, err)
			assert.Equal(t, s, gotS)
			assert.Equal(t, lvl, gotLvl)
		}
	}
	assert.Len(t, seen, 26*3)
}

func TestParseStateKeyRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "C", "C:", ":1", "C:3", "C:-1", "CC:1", "C:x", "c1"} {
		_, _, err := ParseStateKey(bad)
		assert.Error(t, err, "key %q", bad)
	}
}

func TestHeuristicOrder(t *testing.T) {
	e := greedyEngine()
	table := ports.ValueTable{}

	// A mastered current is substituted before selection; the substitute is
	// unseen with nothing else going on, so the learner practices it.
	d := e.Decide(table, DecideInput{
		Current: 'C', Level: curriculum.LevelMastered,
		Mastery: curriculum.MasteryMap{'C': curriculum.LevelMastered},
	})
	assert.Equal(t, ActionPracticeCurrent, d.Action)
	assert.Equal(t, curriculum.Symbol('D'), d.Target)
	assert.Equal(t, "D:0", d.StateKey)

	// With every symbol mastered the substitute is still mastered, and the
	// heuristic advances.
	all := curriculum.MasteryMap{}
	for _, s := range curriculum.All() {
		all[s] = curriculum.LevelMastered
	}
	d = e.Decide(table, DecideInput{Current: 'C', Level: curriculum.LevelMastered, Mastery: all})
	assert.Equal(t, ActionMoveNext, d.Action)
	assert.Equal(t, "D:2", d.StateKey)

	// Practicing level prefers progression over remediation.
	d = e.Decide(table, DecideInput{
		Current: 'C', Level: curriculum.LevelPracticing,
		Mastery: curriculum.MasteryMap{'A': curriculum.LevelUnseen},
	})
	assert.Equal(t, ActionMoveNext, d.Action)

	// An unseen trouble symbol wins over review.
	d = e.Decide(table, DecideInput{
		Current: 'C', Level: curriculum.LevelUnseen,
		Mastery: curriculum.MasteryMap{'A': curriculum.LevelUnseen},
		Recent:  []curriculum.Symbol{'D', 'E'},
	})
	assert.Equal(t, ActionJumpTrouble, d.Action)
	assert.Equal(t, curriculum.Symbol('A'), d.Target)

	// No trouble, two distinct unmastered recents: review.
	d = e.Decide(table, DecideInput{
		Current: 'C', Level: curriculum.LevelUnseen,
		Recent:  []curriculum.Symbol{'D', 'E'},
	})
	assert.Equal(t, ActionReviewRecent, d.Action)
	assert.Equal(t, []curriculum.Symbol{'E', 'D'}, d.List)
	assert.Equal(t, curriculum.Symbol('E'), d.Target)

	// Nothing else applies: practice in place.
	d = e.Decide(table, DecideInput{Current: 'C', Level: curriculum.LevelUnseen})
	assert.Equal(t, ActionPracticeCurrent, d.Action)
	assert.Equal(t, curriculum.Symbol('C'), d.Target)
}

func TestDecideTroubleNearest(t *testing.T) {
	// Scenario: current C at level 0 with A and B both unseen. B is nearer
	// (distance 1 vs 2), so remediation targets B.
	e := greedyEngine()
	d := e.Decide(ports.ValueTable{}, DecideInput{
		Current: 'C', Level: curriculum.LevelUnseen,
		Mastery: curriculum.MasteryMap{'A': curriculum.LevelUnseen, 'B': curriculum.LevelUnseen},
	})
	assert.Equal(t, ActionJumpTrouble, d.Action)
	assert.Equal(t, curriculum.Symbol('B'), d.Target)
	assert.Equal(t, "C:0", d.StateKey)
}

func TestDecideTroubleTieBreaksLow(t *testing.T) {
	// B and D are equidistant from C; the lower alphabetic position wins.
	e := greedyEngine()
	d := e.Decide(ports.ValueTable{}, DecideInput{
		Current: 'C', Level: curriculum.LevelUnseen,
		Mastery: curriculum.MasteryMap{'B': curriculum.LevelUnseen, 'D': curriculum.LevelUnseen},
	})
	assert.Equal(t, ActionJumpTrouble, d.Action)
	assert.Equal(t, curriculum.Symbol('B'), d.Target)
}

func TestDecideTroubleSkipsCurrent(t *testing.T) {
	// The current symbol never nominates itself for remediation, even when
	// it is the only level-0 entry; the search moves on to level 1.
	e := greedyEngine()
	d := e.Decide(ports.ValueTable{}, DecideInput{
		Current: 'C', Level: curriculum.LevelUnseen,
		Mastery: curriculum.MasteryMap{'C': curriculum.LevelUnseen, 'D': curriculum.LevelPracticing},
	})
	assert.Equal(t, ActionJumpTrouble, d.Action)
	assert.Equal(t, curriculum.Symbol('D'), d.Target)
}

func TestDecideMasteredZWrapsToA(t *testing.T) {
	// Scenario: Z is mastered, so the decision re-keys on the next
	// unmastered symbol, wrapping past the end of the alphabet to A.
	e := greedyEngine()
	d := e.Decide(ports.ValueTable{}, DecideInput{
		Current: 'Z', Level: curriculum.LevelMastered,
		Mastery: curriculum.MasteryMap{'Z': curriculum.LevelMastered},
	})
	assert.NotEqual(t, curriculum.Symbol('Z'), d.Target)
	assert.Equal(t, "A:0", d.StateKey)
}

func TestDecideGreedyDeterministic(t *testing.T) {
	e := greedyEngine()
	table := ports.ValueTable{
		"C:0": {"jump_trouble": 0.7, "move_next": 0.4},
	}
	in := DecideInput{
		Current: 'C', Level: curriculum.LevelUnseen,
		Mastery: curriculum.MasteryMap{'A': curriculum.LevelUnseen},
	}
	first := e.Decide(table, in)
	second := e.Decide(table, in)
	assert.Equal(t, ActionJumpTrouble, first.Action)
	assert.Equal(t, first, second)
}

func TestDecideGreedyTieBreaksDeclarationOrder(t *testing.T) {
	// Equal values resolve to the earliest action in declaration order.
	e := greedyEngine()
	table := ports.ValueTable{
		"C:0": {"move_next": 0.5, "review_recent": 0.5},
	}
	d := e.Decide(table, DecideInput{Current: 'C', Level: curriculum.LevelUnseen})
	assert.Equal(t, ActionMoveNext, d.Action)
}

func TestDecideReviewDegradesToMoveNext(t *testing.T) {
	// A learned preference for review over a history with nothing left to
	// review becomes an advance, visible in the returned action.
	e := greedyEngine()
	table := ports.ValueTable{
		"C:0": {"review_recent": 1.0},
	}
	m := curriculum.MasteryMap{'D': curriculum.LevelMastered}
	d := e.Decide(table, DecideInput{
		Current: 'C', Level: curriculum.LevelUnseen,
		Mastery: m,
		Recent:  []curriculum.Symbol{'D', 'D'},
	})
	assert.Equal(t, ActionMoveNext, d.Action)
	assert.Equal(t, curriculum.NextUnmastered('C', m), d.Target)
	assert.Empty(t, d.List)
}

func TestDecideReviewSkipsMasteredAndDuplicates(t *testing.T) {
	e := greedyEngine()
	table := ports.ValueTable{
		"C:0": {"review_recent": 1.0},
	}
	d := e.Decide(table, DecideInput{
		Current: 'C', Level: curriculum.LevelUnseen,
		Mastery: curriculum.MasteryMap{'E': curriculum.LevelMastered},
		Recent:  []curriculum.Symbol{'A', 'B', 'B', 'E', 'D'},
	})
	assert.Equal(t, ActionReviewRecent, d.Action)
	assert.Equal(t, []curriculum.Symbol{'D', 'B', 'A'}, d.List)
	assert.Equal(t, curriculum.Symbol('D'), d.Target)
}

func TestDecideNeverTargetsMastered(t *testing.T) {
	// Post-processing: even a learned practice_current preference cannot
	// recommend a symbol the caller already mastered.
	e := greedyEngine()
	table := ports.ValueTable{
		"D:1": {"practice_current": 1.0},
	}
	m := curriculum.MasteryMap{'C': curriculum.LevelMastered, 'D': curriculum.LevelPracticing}
	d := e.Decide(table, DecideInput{Current: 'C', Level: curriculum.LevelMastered, Mastery: m})
	assert.False(t, m.Mastered(d.Target))
}

func TestExplorationStaysInActionSet(t *testing.T) {
	p := DefaultParams()
	p.Epsilon = 1 // always explore
	e := NewEngineWithRand(p, rand.New(rand.NewSource(42)))
	for i := 0; i < 50; i++ {
		d := e.Decide(ports.ValueTable{}, DecideInput{Current: 'C', Level: curriculum.LevelUnseen})
		_, err := ParseAction(d.Action.String())
		require.NoError(t, err)
	}
}

func TestApplyUpdateRule(t *testing.T) {
	e := greedyEngine()

	// Fresh row, reward +1: 0 + 0.5*(1 + 0.9*0 - 0) = 0.5.
	table := ports.ValueTable{}
	got := e.Apply(table, Feedback{
		StateKey: "C:0", Action: ActionPracticeCurrent, Reward: 1, NextStateKey: "C:1",
	})
	assert.InDelta(t, 0.5, got, 1e-9)
	assert.InDelta(t, 0.5, table.Get("C:0", "practice_current"), 1e-9)

	// old=0.5, nextMax=1.0, reward=-1: 0.5 + 0.5*(-1 + 0.9 - 0.5) = 0.2.
	table["C:1"] = map[string]float64{"move_next": 1.0}
	got = e.Apply(table, Feedback{
		StateKey: "C:0", Action: ActionPracticeCurrent, Reward: -1, NextStateKey: "C:1",
	})
	assert.InDelta(t, 0.2, got, 1e-9)
}

func TestApplyUnseenNextState(t *testing.T) {
	e := greedyEngine()
	table := ports.ValueTable{}
	got := e.Apply(table, Feedback{
		StateKey: "A:0", Action: ActionMoveNext, Reward: 0, NextStateKey: "B:0",
	})
	assert.Zero(t, got)
	// The row exists now even though the stored value is zero.
	_, ok := table["A:0"]
	assert.True(t, ok)
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseAction("skip_ahead")
	assert.Error(t, err)
}

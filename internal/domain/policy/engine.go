package policy

import (
	"math/rand"
	"time"

	"github.com/aeliyag/reinforcedLearning/internal/domain/curriculum"
	"github.com/aeliyag/reinforcedLearning/internal/ports"
)

// Engine is the decision core. It is stateless apart from its tuning and its
// exploration source: every call receives the value table and the learner's
// situation from the caller and returns a result without retaining either.
type Engine struct {
	params Params
	rng    *rand.Rand
}

// NewEngine builds an engine with a time-seeded exploration source.
func NewEngine(p Params) *Engine {
	return NewEngineWithRand(p, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEngineWithRand builds an engine with an injected exploration source,
// which tests use to make selection reproducible.
func NewEngineWithRand(p Params, rng *rand.Rand) *Engine {
	return &Engine{params: p, rng: rng}
}

// Params returns the engine's tuning.
func (e *Engine) Params() Params {
	return e.params
}

// DecideInput is the learner's situation at decision time. Mastery and Recent
// may be nil, meaning nothing mastered and nothing recently seen.
type DecideInput struct {
	Current curriculum.Symbol
	Level   curriculum.Level
	Mastery curriculum.MasteryMap
	Recent  []curriculum.Symbol
}

// Decision is a concrete recommendation. List is non-empty only for
// ActionReviewRecent. StateKey identifies the table row the decision was made
// from and must be echoed back with feedback.
type Decision struct {
	Action   Action
	Target   curriculum.Symbol
	List     []curriculum.Symbol
	StateKey string
}

// Decide picks the next pedagogical action for the learner and resolves it to
// a concrete target. The table is read, never written.
func (e *Engine) Decide(table ports.ValueTable, in DecideInput) Decision {
	// Never key a decision on an already-mastered symbol: advance to the
	// next unmastered one and re-read its level before building the key.
	if in.Level >= curriculum.LevelMastered || in.Mastery.Mastered(in.Current) {
		in.Current = curriculum.NextUnmastered(in.Current, in.Mastery)
		in.Level = in.Mastery.Level(in.Current)
	}
	key := StateKey(in.Current, in.Level)

	action := e.selectAction(table[key], in)
	return e.resolve(action, key, in)
}

// selectAction is epsilon-greedy over the state's learned row. An unlearned
// row exploits the cold-start heuristic instead of the (empty) table, so the
// engine stays pedagogically sane before any feedback has arrived.
func (e *Engine) selectAction(row map[string]float64, in DecideInput) Action {
	if e.params.Epsilon > 0 && e.rng.Float64() < e.params.Epsilon {
		return Action(e.rng.Intn(int(actionCount)))
	}
	if len(row) == 0 {
		return e.heuristic(in)
	}
	best, bestVal := ActionPracticeCurrent, 0.0
	first := true
	for _, a := range Actions() {
		v, ok := row[a.String()]
		if !ok {
			v = 0
		}
		if first || v > bestVal {
			best, bestVal, first = a, v, false
		}
	}
	return best
}

// Package curriculum models the fixed 26-letter learning sequence and the
// learner's per-letter mastery. The engine never stores mastery — the caller
// supplies a MasteryMap on every request and absent entries mean unseen.
package curriculum

import (
	"fmt"
	"strings"
)

// Count is the number of symbols in the curriculum.
const Count = 26

// Symbol is one of the 26 uppercase letters 'A'..'Z'.
type Symbol byte

// Level is the learner's grasp of a symbol.
type Level int

const (
	LevelUnseen     Level = 0
	LevelPracticing Level = 1
	LevelMastered   Level = 2
)

// ParseLevel validates an integer mastery level.
func ParseLevel(n int) (Level, error) {
	if n < 0 || n > 2 {
		return 0, fmt.Errorf("mastery level out of range: %d", n)
	}
	return Level(n), nil
}

// ParseSymbol parses a one-letter string into a Symbol. Lowercase input is
// accepted and normalized.
func ParseSymbol(s string) (Symbol, error) {
	u := strings.ToUpper(s)
	if len(u) != 1 || u[0] < 'A' || u[0] > 'Z' {
		return 0, fmt.Errorf("unknown symbol %q", s)
	}
	return Symbol(u[0]), nil
}

// String returns the symbol as a one-letter string.
func (s Symbol) String() string {
	return string(rune(s))
}

// Index returns the alphabetic position, 0 for 'A' through 25 for 'Z'.
func (s Symbol) Index() int {
	return int(s - 'A')
}

// Successor returns the circular successor ('Z' wraps to 'A').
func (s Symbol) Successor() Symbol {
	return Symbol('A' + byte((s.Index()+1)%Count))
}

// Distance is the absolute difference of alphabetic positions. Not circular —
// it is a tie-break metric, not a traversal metric.
func Distance(a, b Symbol) int {
	d := a.Index() - b.Index()
	if d < 0 {
		d = -d
	}
	return d
}

// All returns the symbols in alphabetic order.
func All() []Symbol {
	out := make([]Symbol, Count)
	for i := range out {
		out[i] = Symbol('A' + byte(i))
	}
	return out
}

// MasteryMap maps symbols to mastery levels. Absent entries are LevelUnseen.
type MasteryMap map[Symbol]Level

// Level returns the mastery level for s, defaulting to LevelUnseen.
func (m MasteryMap) Level(s Symbol) Level {
	return m[s]
}

// Mastered reports whether s is at LevelMastered.
func (m MasteryMap) Mastered(s Symbol) bool {
	return m[s] >= LevelMastered
}

// NextUnmastered scans forward circularly from s (distance 1..Count, wrapping)
// and returns the first symbol whose mastery is below LevelMastered. If every
// symbol is mastered there is no unmastered fallback, so the immediate
// circular successor of s is returned.
func NextUnmastered(s Symbol, m MasteryMap) Symbol {
	cand := s
	for i := 0; i < Count; i++ {
		cand = cand.Successor()
		if !m.Mastered(cand) {
			return cand
		}
	}
	return s.Successor()
}

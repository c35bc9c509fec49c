package policy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aeliyag/reinforcedLearning/internal/domain/curriculum"
)

// StateKey renders the canonical "<symbol>:<level>" row identifier, for
// example "C:1". Every table row is addressed by such a key.
func StateKey(s curriculum.Symbol, lvl curriculum.Level) string {
	return s.String() + ":" + strconv.Itoa(int(lvl))
}

// ParseStateKey is the inverse of StateKey.
func ParseStateKey(key string) (curriculum.Symbol, curriculum.Level, error) {
	sym, lvlPart, ok := strings.Cut(key, ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed state key %q", key)
	}
	s, err := curriculum.ParseSymbol(sym)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed state key %q: %w", key, err)
	}
	n, err := strconv.Atoi(lvlPart)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed state key %q: %w", key, err)
	}
	lvl, err := curriculum.ParseLevel(n)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed state key %q: %w", key, err)
	}
	return s, lvl, nil
}

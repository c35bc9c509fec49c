// Package memory provides an in-memory ports.Storage, used by tests that
// exercise the engine and transports without touching disk.
package memory

import (
	"sync"

	"github.com/aeliyag/reinforcedLearning/internal/ports"
)

// Store implements ports.Storage in process memory.
// The zero value is not usable; call NewStore.
type Store struct {
	mu    sync.Mutex
	table ports.ValueTable

	// FailSaves and FailLoads make the corresponding operation return
	// FailErr, for exercising storage-unavailable paths.
	FailSaves bool
	FailLoads bool
	FailErr   error
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// SaveTable replaces the stored table with a deep copy of the argument.
func (s *Store) SaveTable(table ports.ValueTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSaves {
		return s.failure()
	}
	s.table = clone(table)
	return nil
}

// LoadTable returns a deep copy of the stored table, or nil, nil if nothing
// was ever saved.
func (s *Store) LoadTable() (ports.ValueTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailLoads {
		return nil, s.failure()
	}
	if s.table == nil {
		return nil, nil
	}
	return clone(s.table), nil
}

// DeleteTable discards the stored table.
func (s *Store) DeleteTable() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = nil
	return nil
}

func (s *Store) failure() error {
	if s.FailErr != nil {
		return s.FailErr
	}
	return ports.ErrStoreUnavailable
}

func clone(t ports.ValueTable) ports.ValueTable {
	out := make(ports.ValueTable, len(t))
	for key, row := range t {
		cp := make(map[string]float64, len(row))
		for a, v := range row {
			cp[a] = v
		}
		out[key] = cp
	}
	return out
}

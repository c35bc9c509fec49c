// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import "errors"

// Error sentinels for the service error taxonomy. Transport adapters map
// ErrInvalidInput to a client error (HTTP 400) and ErrStoreUnavailable to a
// service-unavailable condition (HTTP 503).
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValueTable holds the learned action-quality estimates, keyed by state key
// ("<letter>:<level>") and then by action tag. Entries are created lazily on
// first update; an absent state or action means "value 0.0, unlearned".
//
// This is the only persisted, mutable state in the system. It is loaded in
// full before each decision or update and written back in full after each
// update.
type ValueTable map[string]map[string]float64

// Get returns the learned value for (stateKey, action), defaulting to 0.0.
func (t ValueTable) Get(stateKey, action string) float64 {
	return t[stateKey][action]
}

// Set stores a value, creating the intermediate map as needed.
func (t ValueTable) Set(stateKey, action string, value float64) {
	row := t[stateKey]
	if row == nil {
		row = make(map[string]float64)
		t[stateKey] = row
	}
	row[action] = value
}

// Storage persists the value table to durable storage.
// Writes are full-document and transactional: a crash mid-write must not
// corrupt previously committed data. Single-writer; the app serializes
// load→mutate→store behind one mutex.
type Storage interface {
	// SaveTable persists the full value table, overwriting any prior table.
	SaveTable(table ValueTable) error

	// LoadTable retrieves the value table.
	// Returns nil, nil if no table has been saved yet (fresh learner).
	LoadTable() (ValueTable, error)

	// DeleteTable removes all persisted data.
	// Idempotent: deleting a nonexistent table is not an error.
	DeleteTable() error
}

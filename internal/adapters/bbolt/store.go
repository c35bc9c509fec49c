// Package bbolt implements the ports.Storage interface using bbolt (embedded
// B+ tree). The whole value table lives under one key in the "learner" bucket
// as a JSON document wrapped in a versioned envelope. Writes are
// transactional — a crash mid-write cannot corrupt previously committed data.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aeliyag/reinforcedLearning/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// schemaVersion is bumped when the persisted envelope changes shape.
const schemaVersion = 1

var (
	bucketLearner = []byte("learner")
	keyTable      = []byte("qtable")
)

// envelope is the on-disk form of the value table.
type envelope struct {
	Version int              `json:"version"`
	States  ports.ValueTable `json:"states"`
}

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTable persists the full value table, replacing whatever was stored.
func (s *Store) SaveTable(table ports.ValueTable) error {
	if table == nil {
		return fmt.Errorf("nil value table")
	}

	data, err := json.Marshal(envelope{Version: schemaVersion, States: table})
	if err != nil {
		return fmt.Errorf("marshal value table: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		lb, err := tx.CreateBucketIfNotExists(bucketLearner)
		if err != nil {
			return err
		}
		return lb.Put(keyTable, data)
	})
}

// LoadTable retrieves the full value table.
// Returns nil, nil if nothing was ever stored (fresh database).
func (s *Store) LoadTable() (ports.ValueTable, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		lb := tx.Bucket(bucketLearner)
		if lb == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := lb.Get(keyTable); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal value table: %w", err)
	}
	if env.Version > schemaVersion {
		return nil, fmt.Errorf("value table schema version %d is newer than supported %d", env.Version, schemaVersion)
	}
	if env.States == nil {
		env.States = ports.ValueTable{}
	}
	return env.States, nil
}

// DeleteTable removes the stored value table.
// Idempotent: deleting a table that was never stored is not an error.
func (s *Store) DeleteTable() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketLearner); err == bolt.ErrBucketNotFound {
			return nil // idempotent
		} else {
			return err
		}
	})
}

package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeliyag/reinforcedLearning/internal/ports"
)

func TestRoundTripIsolation(t *testing.T) {
	s := NewStore()

	table := ports.ValueTable{"C:0": {"move_next": 0.5}}
	require.NoError(t, s.SaveTable(table))

	// Mutating the caller's copy must not reach the store.
	table.Set("C:0", "move_next", 99)

	got, err := s.LoadTable()
	require.NoError(t, err)
	assert.Equal(t, 0.5, got.Get("C:0", "move_next"))

	// And mutating a loaded copy must not either.
	got.Set("C:0", "move_next", -1)
	again, err := s.LoadTable()
	require.NoError(t, err)
	assert.Equal(t, 0.5, again.Get("C:0", "move_next"))
}

func TestFreshAndDeleted(t *testing.T) {
	s := NewStore()

	got, err := s.LoadTable()
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.SaveTable(ports.ValueTable{"A:0": {"move_next": 1}}))
	require.NoError(t, s.DeleteTable())

	got, err = s.LoadTable()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInjectedFailures(t *testing.T) {
	s := NewStore()
	s.FailLoads = true
	_, err := s.LoadTable()
	assert.ErrorIs(t, err, ports.ErrStoreUnavailable)

	s.FailLoads = false
	s.FailSaves = true
	err = s.SaveTable(ports.ValueTable{})
	assert.ErrorIs(t, err, ports.ErrStoreUnavailable)
}

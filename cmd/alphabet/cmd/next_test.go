package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeliyag/reinforcedLearning/internal/adapters/socket"
)

// stubQueries is a canned daemon backend recording the params it receives.
type stubQueries struct {
	lastDecide socket.DecideParams
}

func (q *stubQueries) Decide(p socket.DecideParams) (socket.DecideResult, error) {
	q.lastDecide = p
	return socket.DecideResult{
		Action:   "practice_current",
		Target:   socket.Target{Letter: "C"},
		StateKey: "C:0",
	}, nil
}

func (q *stubQueries) Feedback(p socket.FeedbackParams) (socket.FeedbackResult, error) {
	return socket.FeedbackResult{OK: true}, nil
}

func (q *stubQueries) Stats() (socket.StatsResult, error) { return socket.StatsResult{}, nil }
func (q *stubQueries) Health() socket.HealthResult        { return socket.HealthResult{Status: "ok"} }
func (q *stubQueries) Wipe() error                        { return nil }

// startStubDaemon serves the socket protocol for a temp data dir and points
// the CLI at it.
func startStubDaemon(t *testing.T) *stubQueries {
	t.Helper()
	dir := t.TempDir()
	q := &stubQueries{}
	srv := socket.NewServer(socket.SocketPath(dir), q)
	require.NoError(t, srv.Start())
	t.Cleanup(func() { _ = srv.Stop() })

	dataDirFlag = dir
	t.Cleanup(func() { dataDirFlag = "" })
	return q
}

func TestNextOmittedLevelStaysAbsent(t *testing.T) {
	// Without --level the wire request carries no mastery_level, so the
	// daemon falls back to the mastery map's entry for the letter.
	q := startStubDaemon(t)

	rootCmd.SetArgs([]string{"next", "C"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "C", q.lastDecide.CurrentLetter)
	assert.Nil(t, q.lastDecide.MasteryLevel)

	rootCmd.SetArgs([]string{"next", "C", "--level", "1"})
	require.NoError(t, rootCmd.Execute())
	require.NotNil(t, q.lastDecide.MasteryLevel)
	assert.Equal(t, 1, *q.lastDecide.MasteryLevel)
}

package socket

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQueries is a canned AppQueries for protocol-level tests.
type stubQueries struct {
	decideResult   DecideResult
	decideErr      error
	feedbackResult FeedbackResult
	feedbackErr    error
	wiped          bool

	lastDecide   DecideParams
	lastFeedback FeedbackParams
}

func (q *stubQueries) Decide(p DecideParams) (DecideResult, error) {
	q.lastDecide = p
	return q.decideResult, q.decideErr
}

func (q *stubQueries) Feedback(p FeedbackParams) (FeedbackResult, error) {
	q.lastFeedback = p
	return q.feedbackResult, q.feedbackErr
}

func (q *stubQueries) Stats() (StatsResult, error) {
	return StatsResult{StateCount: 2, EntryCount: 3}, nil
}

func (q *stubQueries) Health() HealthResult {
	return HealthResult{Status: "ok", Service: "alphabet-rl"}
}

func (q *stubQueries) Wipe() error {
	q.wiped = true
	return nil
}

func startTestServer(t *testing.T, queries AppQueries) (*Server, *Client) {
	t.Helper()
	sockPath := filepath.Join(t.TempDir(), "test.sock")
	srv := NewServer(sockPath, queries)
	require.NoError(t, srv.Start())
	t.Cleanup(func() { _ = srv.Stop() })
	return srv, NewClient(sockPath)
}

func TestDecideRoundTrip(t *testing.T) {
	q := &stubQueries{
		decideResult: DecideResult{
			Action:   "jump_trouble",
			Target:   Target{Letter: "B", List: []string{}},
			StateKey: "C:0",
		},
	}
	_, client := startTestServer(t, q)

	level := 0
	result, err := client.Decide(DecideParams{
		CurrentLetter: "C",
		MasteryLevel:  &level,
		MasteryMap:    map[string]int{"A": 0, "B": 0},
	})
	require.NoError(t, err)
	assert.Equal(t, "jump_trouble", result.Action)
	assert.Equal(t, "B", result.Target.Letter)
	assert.Equal(t, "C:0", result.StateKey)

	// Params survive the wire intact.
	assert.Equal(t, "C", q.lastDecide.CurrentLetter)
	require.NotNil(t, q.lastDecide.MasteryLevel)
	assert.Equal(t, 0, *q.lastDecide.MasteryLevel)
	assert.Equal(t, map[string]int{"A": 0, "B": 0}, q.lastDecide.MasteryMap)
}

func TestFeedbackRoundTrip(t *testing.T) {
	q := &stubQueries{feedbackResult: FeedbackResult{OK: true, Value: 0.5}}
	_, client := startTestServer(t, q)

	reward := 1.0
	level := 1
	result, err := client.Feedback(FeedbackParams{
		StateKey:  "C:0",
		Action:    "practice_current",
		Reward:    &reward,
		NextState: &NextState{Letter: "C", MasteryLevel: &level},
	})
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, 0.5, result.Value)

	require.NotNil(t, q.lastFeedback.Reward)
	assert.Equal(t, 1.0, *q.lastFeedback.Reward)
}

func TestServerErrorsReachClient(t *testing.T) {
	q := &stubQueries{decideErr: errors.New("invalid input: current_letter is required")}
	_, client := startTestServer(t, q)

	_, err := client.Decide(DecideParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "current_letter")
}

func TestStatsHealthWipe(t *testing.T) {
	q := &stubQueries{}
	_, client := startTestServer(t, q)

	stats, err := client.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.StateCount)

	health, err := client.Health()
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "alphabet-rl", health.Service)

	require.NoError(t, client.Wipe())
	assert.True(t, q.wiped)
}

func TestUnknownMethod(t *testing.T) {
	_, client := startTestServer(t, &stubQueries{})

	_, err := client.call(Request{ID: "1", Method: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown method")
}

func TestShutdownClosesChannel(t *testing.T) {
	srv, client := startTestServer(t, &stubQueries{})

	require.NoError(t, client.Shutdown())

	select {
	case <-srv.ShutdownCh():
	default:
		t.Fatal("shutdown channel not closed")
	}
}

func TestStaleSocketRemoved(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "stale.sock")

	srv1 := NewServer(sockPath, &stubQueries{})
	require.NoError(t, srv1.Start())
	require.NoError(t, srv1.Stop())

	// The socket file is gone; binding again must succeed.
	srv2 := NewServer(sockPath, &stubQueries{})
	require.NoError(t, srv2.Start())
	defer srv2.Stop()

	assert.True(t, NewClient(sockPath).Ping())
}

func TestSocketPathDeterministic(t *testing.T) {
	a := SocketPath("/some/data/dir")
	b := SocketPath("/some/data/dir")
	c := SocketPath("/other/dir")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

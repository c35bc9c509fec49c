// Package socket implements a JSON-over-Unix-socket protocol for the alphabet
// daemon. The protocol uses newline-delimited JSON: each message is one JSON
// object + \n. The request/result types here are also the HTTP API's wire
// format, so both transports speak identical JSON.
package socket

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
)

// SocketPath returns the Unix socket path for a given data directory.
// Format: /tmp/alphabet-{first12hex}.sock
func SocketPath(dataDir string) string {
	abs, err := filepath.Abs(dataDir)
	if err != nil {
		abs = dataDir
	}
	h := sha256.Sum256([]byte(abs))
	return fmt.Sprintf("/tmp/alphabet-%x.sock", h[:6])
}

// Method names for the protocol.
const (
	MethodDecide   = "decide"
	MethodFeedback = "feedback"
	MethodStats    = "stats"
	MethodHealth   = "health"
	MethodWipe     = "wipe"
	MethodShutdown = "shutdown"
)

// Request is the wire format for client-to-server messages.
type Request struct {
	ID     string      `json:"id"`
	Method string      `json:"method"`
	Params interface{} `json:"params,omitempty"`
}

// Response is the wire format for server-to-client messages.
type Response struct {
	ID     string      `json:"id"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// DecideParams asks for the next recommendation. Only current_letter is
// required; mastery_level defaults to the map's entry for the letter, and the
// map and history default to empty.
type DecideParams struct {
	CurrentLetter string         `json:"current_letter"`
	MasteryLevel  *int           `json:"mastery_level,omitempty"`
	MasteryMap    map[string]int `json:"mastery_map,omitempty"`
	RecentHistory []string       `json:"recent_history,omitempty"`
}

// DecideResult is the recommendation. StateKey must be echoed back with the
// eventual feedback.
type DecideResult struct {
	Action   string `json:"action"`
	Target   Target `json:"target"`
	StateKey string `json:"state_key"`
}

// Target is the concrete recommendation payload. List is non-empty only for
// review_recent.
type Target struct {
	Letter string   `json:"letter"`
	List   []string `json:"list"`
}

// FeedbackParams reports the observed outcome of a prior decision.
// Reward is +1 correct, 0 partial/skip, -1 incorrect.
type FeedbackParams struct {
	StateKey  string     `json:"state_key"`
	Action    string     `json:"action"`
	Reward    *float64   `json:"reward"`
	NextState *NextState `json:"next_state"`
}

// NextState is the learner's state after acting on the recommendation.
type NextState struct {
	Letter       string `json:"letter"`
	MasteryLevel *int   `json:"mastery_level"`
}

// FeedbackResult acknowledges a processed feedback. Value is the learned
// value now stored for the (state, action) pair.
type FeedbackResult struct {
	OK    bool    `json:"ok"`
	Value float64 `json:"value"`
}

// StatsResult summarizes the learned table and daemon counters.
type StatsResult struct {
	StateCount    int         `json:"state_count"`
	EntryCount    int         `json:"entry_count"`
	DecisionCount uint64      `json:"decision_count"`
	FeedbackCount uint64      `json:"feedback_count"`
	TopStates     []StateInfo `json:"top_states,omitempty"`
	Uptime        string      `json:"uptime"`
}

// StateInfo is one learned table row in a stats response.
type StateInfo struct {
	StateKey   string  `json:"state_key"`
	BestAction string  `json:"best_action"`
	BestValue  float64 `json:"best_value"`
}

// HealthResult is the result of a health request.
type HealthResult struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	StateCount int    `json:"state_count"`
	Uptime     string `json:"uptime"`
}

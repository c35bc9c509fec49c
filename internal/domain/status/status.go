// Package status generates status data for the alphabet daemon.
//
// The daemon writes a JSON status file after every decision and feedback.
// Tutoring front-ends read this file to show learning progress without
// talking to the daemon.
package status

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/aeliyag/reinforcedLearning/internal/ports"
)

// StatusFile is the filename within the .alphabet directory where status JSON
// is written.
const StatusFile = "status.json"

// StatusData is the JSON payload the daemon writes.
type StatusData struct {
	Decisions uint64   `json:"decisions"`
	Feedbacks uint64   `json:"feedbacks"`
	States    int      `json:"states"`
	TopStates []string `json:"top_states"`
}

// Generate produces a StatusData from the current table and counters.
func Generate(table ports.ValueTable, decisions, feedbacks uint64) *StatusData {
	return &StatusData{
		Decisions: decisions,
		Feedbacks: feedbacks,
		States:    len(table),
		TopStates: topStates(table, 3),
	}
}

// WriteJSON writes the status data as JSON to a file.
func WriteJSON(path string, data *StatusData) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// topStates returns the N state keys with the highest learned value,
// descending, ties broken by key.
func topStates(table ports.ValueTable, n int) []string {
	if len(table) == 0 {
		return nil
	}

	type sv struct {
		key string
		val float64
	}

	var states []sv
	for key, row := range table {
		best := 0.0
		first := true
		for _, v := range row {
			if first || v > best {
				best, first = v, false
			}
		}
		if !first {
			states = append(states, sv{key, best})
		}
	}

	sort.Slice(states, func(i, j int) bool {
		if states[i].val != states[j].val {
			return states[i].val > states[j].val
		}
		return states[i].key < states[j].key
	})

	limit := n
	if limit > len(states) {
		limit = len(states)
	}

	result := make([]string, limit)
	for i := 0; i < limit; i++ {
		result[i] = states[i].key
	}
	return result
}

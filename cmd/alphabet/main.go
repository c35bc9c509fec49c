// alphabet is a reinforcement-learning recommendation daemon for alphabet
// tutoring. Single binary: the daemon learns from feedback, the other
// subcommands talk to it over its Unix socket.
package main

import (
	"os"

	"github.com/aeliyag/reinforcedLearning/cmd/alphabet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aeliyag/reinforcedLearning/internal/adapters/socket"
)

var (
	nextLevel   int
	nextMastery []string
	nextRecent  []string
)

var nextCmd = &cobra.Command{
	Use:   "next <letter>",
	Short: "Ask for the next recommended activity",
	Args:  cobra.ExactArgs(1),
	RunE:  runNext,
}

func init() {
	nextCmd.Flags().IntVarP(&nextLevel, "level", "l", 0, "mastery level of the current letter (0-2)")
	nextCmd.Flags().StringSliceVarP(&nextMastery, "mastery", "m", nil, "mastery entries, e.g. A=2,B=1")
	nextCmd.Flags().StringSliceVarP(&nextRecent, "recent", "r", nil, "recently seen letters, oldest first")
}

func runNext(cmd *cobra.Command, args []string) error {
	client := socket.NewClient(socket.SocketPath(dataDir()))
	if !client.Ping() {
		return fmt.Errorf("daemon is not running (try: alphabet daemon start)")
	}

	mastery, err := parseMasteryFlag(nextMastery)
	if err != nil {
		return err
	}

	params := socket.DecideParams{
		CurrentLetter: args[0],
		MasteryMap:    mastery,
		RecentHistory: nextRecent,
	}
	// An omitted --level defers to the daemon, which falls back to the
	// mastery map's entry for the letter.
	if cmd.Flags().Changed("level") {
		params.MasteryLevel = &nextLevel
	}
	result, err := client.Decide(params)
	if err != nil {
		return err
	}

	fmt.Print(formatDecision(result))
	return nil
}

// parseMasteryFlag turns "A=2,B=1" entries into a mastery map.
func parseMasteryFlag(entries []string) (map[string]int, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	m := make(map[string]int, len(entries))
	for _, entry := range entries {
		letter, levelStr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("mastery entry %q: want LETTER=LEVEL", entry)
		}
		level, err := strconv.Atoi(levelStr)
		if err != nil {
			return nil, fmt.Errorf("mastery entry %q: %w", entry, err)
		}
		m[letter] = level
	}
	return m, nil
}

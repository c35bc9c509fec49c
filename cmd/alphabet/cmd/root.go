package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "alphabet",
	Short: "Pedagogical recommendation engine for alphabet practice",
	Long:  "Recommends the next letter activity for a learner and improves from feedback.",
}

var dataDirFlag string

// dataDir returns the daemon's data directory (.alphabet under cwd by
// default, overridable with --data-dir).
func dataDir() string {
	if dataDirFlag != "" {
		return dataDirFlag
	}
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return filepath.Join(dir, ".alphabet")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default ./.alphabet)")

	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(wipeCmd)
}

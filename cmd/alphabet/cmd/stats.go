package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aeliyag/reinforcedLearning/internal/adapters/socket"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the learned table summary",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	client := socket.NewClient(socket.SocketPath(dataDir()))
	if !client.Ping() {
		fmt.Println("daemon is not running")
		return nil
	}

	stats, err := client.Stats()
	if err != nil {
		return err
	}

	fmt.Print(formatStats(stats))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aeliyag/reinforcedLearning/internal/adapters/socket"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check daemon status",
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	client := socket.NewClient(socket.SocketPath(dataDir()))

	if !client.Ping() {
		fmt.Println("alphabet daemon is not running")
		return nil
	}

	health, err := client.Health()
	if err != nil {
		return err
	}

	fmt.Print(formatHealth(health))
	return nil
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aeliyag/reinforcedLearning/internal/adapters/bbolt"
	"github.com/aeliyag/reinforcedLearning/internal/adapters/socket"
	"github.com/aeliyag/reinforcedLearning/internal/app"
	"github.com/aeliyag/reinforcedLearning/internal/config"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete the learned table",
	Long:  "Deletes all learned state-action values. Works with or without a running daemon.",
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeForce, "force", false, "skip confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	dir := dataDir()

	if !wipeForce {
		fmt.Print("delete all learned values? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("cancelled")
			return nil
		}
	}

	// If the daemon is running, wipe through it so its counters reset too.
	client := socket.NewClient(socket.SocketPath(dir))
	if client.Ping() {
		if err := client.Wipe(); err != nil {
			return err
		}
		fmt.Println("learned table wiped (daemon)")
		return nil
	}

	cfg, err := config.Load(filepath.Join(dir, app.ConfigFile))
	if err != nil {
		return err
	}
	dbPath := cfg.Server.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(dir, "alphabet.db")
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("nothing to wipe")
		return nil
	}

	store, err := bbolt.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if err := store.DeleteTable(); err != nil {
		return err
	}

	fmt.Println("learned table wiped")
	return nil
}

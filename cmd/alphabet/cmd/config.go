package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aeliyag/reinforcedLearning/internal/app"
	"github.com/aeliyag/reinforcedLearning/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := filepath.Join(dataDir(), app.ConfigFile)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("# %s\n%s", path, out)
	return nil
}

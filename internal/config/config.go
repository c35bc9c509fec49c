// Package config loads and validates the daemon's YAML configuration.
// The file lives at .alphabet/config.yaml under the data directory; a missing
// file means defaults. The daemon re-reads it on change, so edits apply
// without a restart.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aeliyag/reinforcedLearning/internal/domain/policy"
)

// Config is the full daemon configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig tunes the learning policy.
type EngineConfig struct {
	Alpha               float64 `yaml:"alpha"`
	Gamma               float64 `yaml:"gamma"`
	Epsilon             float64 `yaml:"epsilon"`
	PracticingThreshold int     `yaml:"practicing_threshold"`
	MinRecentForReview  int     `yaml:"min_recent_for_review"`
}

// ServerConfig tunes the daemon's listeners and storage.
type ServerConfig struct {
	// HTTPPort is the preferred HTTP port. 0 means derive one from the
	// data directory path.
	HTTPPort int `yaml:"http_port"`
	// DBPath overrides the bbolt file location. Empty means
	// <data-dir>/alphabet.db.
	DBPath string `yaml:"db_path"`
}

// LoggingConfig tunes log output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `yaml:"level"`
	// Pretty switches from JSON lines to human-readable console output.
	Pretty bool `yaml:"pretty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	p := policy.DefaultParams()
	return Config{
		Engine: EngineConfig{
			Alpha:               p.Alpha,
			Gamma:               p.Gamma,
			Epsilon:             p.Epsilon,
			PracticingThreshold: p.PracticingThreshold,
			MinRecentForReview:  p.MinRecentForReview,
		},
		Logging: LoggingConfig{Level: "info", Pretty: true},
	}
}

// Load reads the config file at path, filling unset fields from defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the tunables are in range.
func (c Config) Validate() error {
	e := c.Engine
	if e.Alpha <= 0 || e.Alpha > 1 {
		return fmt.Errorf("engine.alpha must be in (0, 1], got %v", e.Alpha)
	}
	if e.Gamma < 0 || e.Gamma >= 1 {
		return fmt.Errorf("engine.gamma must be in [0, 1), got %v", e.Gamma)
	}
	if e.Epsilon < 0 || e.Epsilon > 1 {
		return fmt.Errorf("engine.epsilon must be in [0, 1], got %v", e.Epsilon)
	}
	if e.PracticingThreshold < 0 || e.PracticingThreshold > 2 {
		return fmt.Errorf("engine.practicing_threshold must be in [0, 2], got %d", e.PracticingThreshold)
	}
	if e.MinRecentForReview < 1 {
		return fmt.Errorf("engine.min_recent_for_review must be at least 1, got %d", e.MinRecentForReview)
	}
	if c.Server.HTTPPort < 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be a valid port, got %d", c.Server.HTTPPort)
	}
	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	return nil
}

// EngineParams converts the engine section to policy tuning.
func (c Config) EngineParams() policy.Params {
	return policy.Params{
		Alpha:               c.Engine.Alpha,
		Gamma:               c.Engine.Gamma,
		Epsilon:             c.Engine.Epsilon,
		PracticingThreshold: c.Engine.PracticingThreshold,
		MinRecentForReview:  c.Engine.MinRecentForReview,
	}
}

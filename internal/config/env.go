package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// RunConfig holds CLI defaults. Flags override whatever the environment sets.
type RunConfig struct {
	Roster   string `env:"ARENA_ROSTER"`
	Seed     int64  `env:"ARENA_SEED" envDefault:"12345"`
	Runs     int    `env:"ARENA_RUNS" envDefault:"1"`
	Workers  int    `env:"ARENA_WORKERS" envDefault:"8"`
	Out      string `env:"ARENA_OUT" envDefault:"out.json"`
	LogLevel string `env:"ARENA_LOG_LEVEL" envDefault:"info"`
	Events   bool   `env:"ARENA_EVENTS" envDefault:"true"`
}

// LoadRunConfig loads RunConfig from environment variables.
func LoadRunConfig() (RunConfig, error) {
	var cfg RunConfig
	if err := env.Parse(&cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

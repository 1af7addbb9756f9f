// Package config loads the game settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// MinPlayers is the smallest table: a Monarch and one other hero.
const MinPlayers = 2

type Config struct {
	// Seed drives every random draw of a run.
	Seed int64 `env:"HEROES_SEED" envDefault:"0"`
	// Players counts the seats, Monarch included.
	Players int `env:"HEROES_PLAYERS" envDefault:"4"`
	// Monarch forces the Monarch character by name; empty picks at random.
	Monarch  string `env:"HEROES_MONARCH"`
	LogLevel string `env:"HEROES_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Players < MinPlayers {
		return fmt.Errorf("need at least %d players, got %d", MinPlayers, c.Players)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

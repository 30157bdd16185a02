// Package config provides YAML-based board loading and environment
// settings for the ladders CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Settings are process-wide defaults read from the environment.
// Command-line flags override them.
type Settings struct {
	DBPath   string   `env:"LADDERS_DB" envDefault:"~/.ladders/history.db"`
	Seed     int64    `env:"LADDERS_SEED" envDefault:"0"` // 0 = random based on time
	LogLevel string   `env:"LADDERS_LOG_LEVEL" envDefault:"info"`
	Players  []string `env:"LADDERS_PLAYERS" envSeparator:"," envDefault:"Player 1,Player 2"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("config: parse env: %w", err)
	}
	s.Players = trimNames(s.Players)
	return s, nil
}

// ParsePlayers splits a comma-separated list of player names.
func ParsePlayers(list string) []string {
	return trimNames(strings.Split(list, ","))
}

func trimNames(names []string) []string {
	result := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			result = append(result, n)
		}
	}
	return result
}

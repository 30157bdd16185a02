// ladders plays snakes and ladders in the terminal.
//
// Usage:
//
//	ladders play              - Play a game in the terminal UI
//	ladders simulate          - Play automated games and tally winners
//	ladders boards            - List available boards
//	ladders history           - Show recent games and the leaderboard
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.ladders/history.db)
//	--log-level <lvl>   - debug, info, warn or error
//
// Defaults come from LADDERS_DB, LADDERS_SEED, LADDERS_LOG_LEVEL and
// LADDERS_PLAYERS when the flag is not given.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakes-ladders/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	settings config.Settings
	logger   *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladders",
	Short: "Snakes and ladders in your terminal",
	Long: `ladders is a turn engine for snakes and ladders with a terminal front end.

Available commands:
  play      - Play a game interactively
  simulate  - Run automated games
  boards    - Show available boards
  history   - View finished games and the leaderboard

Examples:
  ladders play --players Ann,Ben
  ladders play --board quick --seed 42
  ladders simulate --games 1000
  ladders history`,
	PersistentPreRunE: loadSettings,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default ~/.ladders/history.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadSettings merges environment settings with explicitly set flags.
func loadSettings(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		s.Seed = flagSeed
	}
	if flags.Changed("db") {
		s.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		s.LogLevel = flagLogLevel
	}
	settings = s

	logger, err = newLogger(s.LogLevel)
	return err
}

func newLogger(level string) (*log.Logger, error) {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ladders",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l.SetLevel(lvl)
	return l, nil
}

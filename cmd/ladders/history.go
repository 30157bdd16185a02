package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakes-ladders/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished games and the leaderboard",
	Long: `Display the most recent finished games and wins per player.

Examples:
  ladders history
  ladders history --limit 25
  ladders history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded games")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagHistoryClear {
		if err := store.ClearHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(out, "History cleared.")
		return
	}

	if err := printHistory(out, store, flagHistoryLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printHistory writes the most recent games followed by the leaderboard.
func printHistory(out io.Writer, store *storage.Store, limit int) error {
	games, err := store.RecentGames(limit)
	if err != nil {
		return fmt.Errorf("cannot retrieve games: %w", err)
	}

	fmt.Fprintln(out, "Recent games")
	fmt.Fprintln(out)

	if len(games) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'ladders play' to record the first one!")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-10s  %-12s  %-5s  %s\n", "Date", "Board", "Winner", "Rolls", "Players")
	fmt.Fprintf(out, "  %-16s  %-10s  %-12s  %-5s  %s\n", "----", "-----", "------", "-----", "-------")
	for _, g := range games {
		names := make([]string, len(g.Players))
		for i, p := range g.Players {
			names[i] = p.Name
		}
		fmt.Fprintf(out, "  %-16s  %-10s  %-12s  %-5d  %s\n",
			g.FinishedAt.Format("2006-01-02 15:04"), g.Board, g.Winner, g.Rolls, strings.Join(names, ", "))
	}

	tallies, err := store.Leaderboard(10)
	if err != nil {
		return fmt.Errorf("cannot retrieve leaderboard: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Leaderboard")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-4s  %-16s  %-5s  %s\n", "Rank", "Player", "Wins", "Games")
	fmt.Fprintf(out, "  %-4s  %-16s  %-5s  %s\n", "----", "------", "----", "-----")
	for i, w := range tallies {
		fmt.Fprintf(out, "  %-4d  %-16s  %-5d  %d\n", i+1, w.Name, w.Wins, w.Games)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakes-ladders/internal/engine"
	"github.com/vovakirdan/snakes-ladders/internal/session"
	"github.com/vovakirdan/snakes-ladders/internal/storage"
)

var (
	simFlags  tableFlags
	simGames  int
	simRecord bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play automated games",
	Long: `Play a number of games without input and report how often each seat won.

Game i uses seed+i, so a run with a fixed --seed is reproducible.
Results are not recorded unless --record is given.

Examples:
  ladders simulate --games 1000
  ladders simulate --games 50 --players A,B,C,D --seed 7
  ladders simulate --board quick --record`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simGames, "games", 100, "Number of games to play")
	simulateCmd.Flags().StringVar(&simFlags.players, "players", "", "Comma-separated player names")
	simulateCmd.Flags().StringVar(&simFlags.board, "board", "", "Board preset (see 'ladders boards')")
	simulateCmd.Flags().StringVar(&simFlags.config, "config", "", "Path to custom board YAML")
	simulateCmd.Flags().BoolVar(&simRecord, "record", false, "Record every game in the history database")
}

// simStats accumulates results across games. Wins are kept per seat so
// players sharing a name are counted separately.
type simStats struct {
	seats      []string
	wins       []int
	totalRolls int
	longest    int
	shortest   int
}

func newSimStats(seats []string) simStats {
	return simStats{seats: seats, wins: make([]int, len(seats))}
}

func (st *simStats) add(rolls, winner int) {
	st.wins[winner]++
	st.totalRolls += rolls
	if rolls > st.longest {
		st.longest = rolls
	}
	if st.shortest == 0 || rolls < st.shortest {
		st.shortest = rolls
	}
}

func runSimulate(cmd *cobra.Command, args []string) {
	if simGames <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --games must be positive")
		os.Exit(1)
	}

	store := openStore(!simRecord)
	if store != nil {
		defer store.Close()
	}

	base := settings.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	specs := simFlags.playerSpecs()
	seats := make([]string, len(specs))
	for i, p := range specs {
		seats[i] = p.Name
	}

	stats := newSimStats(seats)
	for i := range simGames {
		rolls, winner, err := simulateOne(base+int64(i), store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: game %d: %v\n", i+1, err)
			os.Exit(1)
		}
		stats.add(rolls, winner)
	}

	printSimStats(cmd.OutOrStdout(), base, stats)
}

// simulateOne plays a single game to the end and returns its length and
// the winning seat.
func simulateOne(seed int64, store *storage.Store) (int, int, error) {
	sess, err := simFlags.newSession(seed, store)
	if err != nil {
		return 0, engine.NoWinner, err
	}

	rolls := 0
	for {
		state, _, err := sess.Roll()
		if err != nil && !errors.Is(err, session.ErrRecordFailed) {
			return rolls, engine.NoWinner, err
		}
		rolls++
		if state.Finished() {
			return rolls, state.Winner, err
		}
	}
}

func printSimStats(out io.Writer, seed int64, stats simStats) {
	games := 0
	order := make([]int, len(stats.wins))
	for seat, n := range stats.wins {
		order[seat] = seat
		games += n
	}
	sort.SliceStable(order, func(i, j int) bool {
		return stats.wins[order[i]] > stats.wins[order[j]]
	})

	fmt.Fprintf(out, "Simulated %d games (seed %d)\n\n", games, seed)
	fmt.Fprintf(out, "  %-4s  %-16s  %-6s  %s\n", "Seat", "Player", "Wins", "Share")
	fmt.Fprintf(out, "  %-4s  %-16s  %-6s  %s\n", "----", "------", "----", "-----")
	for _, seat := range order {
		n := stats.wins[seat]
		share := 0.0
		if games > 0 {
			share = 100 * float64(n) / float64(games)
		}
		fmt.Fprintf(out, "  %-4d  %-16s  %-6d  %5.1f%%\n", seat+1, stats.seats[seat], n, share)
	}

	if games == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Rolls per game: avg %.1f, min %d, max %d\n",
		float64(stats.totalRolls)/float64(games), stats.shortest, stats.longest)
}

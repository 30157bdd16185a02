package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakes-ladders/internal/engine"
	"github.com/vovakirdan/snakes-ladders/internal/platform/tui"
	"github.com/vovakirdan/snakes-ladders/internal/session"
)

var (
	playFlags     tableFlags
	playNoHistory bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snakes and ladders.

Controls:
  Space/Enter  - Roll the die for the current player
  R            - New game (after a win)
  Q/Ctrl+C     - Quit

When stdin is not a terminal the game rolls automatically until someone wins.

Examples:
  ladders play
  ladders play --players Ann,Ben,Cat
  ladders play --board quick
  ladders play --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playFlags.players, "players", "", "Comma-separated player names")
	playCmd.Flags().StringVar(&playFlags.board, "board", "", "Board preset (see 'ladders boards')")
	playCmd.Flags().StringVar(&playFlags.config, "config", "", "Path to custom board YAML")
	playCmd.Flags().BoolVar(&playNoHistory, "no-history", false, "Do not record the result")
}

func runPlay(cmd *cobra.Command, args []string) {
	store := openStore(playNoHistory)
	if store != nil {
		defer store.Close()
	}

	sess, err := playFlags.newSession(settings.Seed, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	if term.IsTerminal(int(os.Stdin.Fd())) {
		err = tui.Run(sess)
	} else {
		err = playAuto(sess, out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playAuto rolls until the game ends.
func playAuto(sess *session.Session, out io.Writer) error {
	for !sess.State().Finished() {
		if err := rollOnce(sess, out); err != nil {
			return err
		}
	}
	return nil
}

// rollOnce rolls and prints the outcome. A rejected roll is reported and
// play continues; only recording failures are returned.
func rollOnce(sess *session.Session, out io.Writer) error {
	state, events, err := sess.Roll()
	switch {
	case errors.Is(err, engine.ErrIllegalOperation):
		fmt.Fprintln(out, "The game is over. Restart to play again.")
		return nil
	case errors.Is(err, session.ErrRecordFailed):
		printEvents(out, events)
		printStatus(out, state)
		return err
	case err != nil:
		return err
	}

	printEvents(out, events)
	printStatus(out, state)
	return nil
}

// Package engine resolves turns of a snakes and ladders game.
//
// A Game owns the authoritative state and changes it only through Roll and
// Restart. It performs no I/O and holds no locks: callers that share a Game
// between goroutines must serialize access themselves.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/snakes-ladders/internal/board"
	"github.com/vovakirdan/snakes-ladders/internal/dice"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrIllegalOperation     = errors.New("illegal operation")
)

// MinPlayers is the smallest table a game can start with.
const MinPlayers = 2

// PlayerSpec identifies a player at game start.
// Color is carried for the presentation layer and never read by the engine.
type PlayerSpec struct {
	Name  string
	Color string
}

// Players builds specs from bare names.
func Players(names ...string) []PlayerSpec {
	specs := make([]PlayerSpec, len(names))
	for i, n := range names {
		specs[i] = PlayerSpec{Name: n}
	}
	return specs
}

// Game is a single game in progress.
type Game struct {
	board *board.Board
	dice  dice.Source
	specs []PlayerSpec
	state State
}

// NewGame validates the table and board and returns a game in the
// AwaitingRoll state with every player off the board.
// All validation failures wrap ErrInvalidConfiguration.
func NewGame(players []PlayerSpec, cfg board.Config, src dice.Source) (*Game, error) {
	if len(players) < MinPlayers {
		return nil, fmt.Errorf("%w: need at least %d players, got %d",
			ErrInvalidConfiguration, MinPlayers, len(players))
	}
	for i, p := range players {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: player %d has no name", ErrInvalidConfiguration, i+1)
		}
	}
	if src == nil {
		return nil, fmt.Errorf("%w: no dice source", ErrInvalidConfiguration)
	}

	b, err := board.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	g := &Game{
		board: b,
		dice:  src,
		specs: append([]PlayerSpec(nil), players...),
	}
	g.state = initialState(g.specs)
	return g, nil
}

// Board returns the board the game is played on.
func (g *Game) Board() *board.Board {
	return g.board
}

// State returns a copy of the current state.
func (g *Game) State() State {
	return g.state.clone()
}

// Roll draws one face from the dice source and resolves the active
// player's move. The state changes in a single step: either the whole
// resolution is applied or nothing is. A finished game returns
// ErrIllegalOperation; a face outside the die's range returns
// ErrInvalidConfiguration.
func (g *Game) Roll() (State, []Event, error) {
	if g.state.Status == StatusFinished {
		return g.State(), nil, fmt.Errorf("%w: game already finished", ErrIllegalOperation)
	}

	face := g.dice.Roll()
	if face < 1 || face > g.board.DieFaces() {
		return g.State(), nil, fmt.Errorf("%w: dice source returned %d, want 1..%d",
			ErrInvalidConfiguration, face, g.board.DieFaces())
	}
	next := g.state.clone()
	events := resolve(&next, g.board, face)
	g.state = next

	return g.State(), events, nil
}

// Restart reinitializes the game with the same players, exactly as
// NewGame left it. The dice source is not rewound.
func (g *Game) Restart() State {
	g.state = initialState(g.specs)
	return g.State()
}

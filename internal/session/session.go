// Package session drives one engine.Game on behalf of a presentation layer.
// It serializes Roll and Restart, logs what happened, and hands finished
// games to a Recorder.
package session

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snakes-ladders/internal/board"
	"github.com/vovakirdan/snakes-ladders/internal/engine"
)

// ErrRecordFailed is returned by Roll when the game finished but the
// result could not be recorded. The roll itself was applied.
var ErrRecordFailed = errors.New("session: cannot record result")

// Result summarizes a finished game.
type Result struct {
	ID     string
	Board  string
	Seed   int64
	Winner string
	// WinnerSeat indexes Players. Names need not be unique.
	WinnerSeat int
	Rolls      int
	Players    []engine.Player
}

// Recorder persists finished games. storage.Store implements it.
type Recorder interface {
	SaveResult(r Result) error
}

// Options configures a Session. All fields are optional.
type Options struct {
	// Board is the preset or file name reported in results.
	Board string

	// Seed is reported in results so a game can be replayed.
	Seed int64

	Logger   *log.Logger
	Recorder Recorder
}

// Session owns a game and guards it with a mutex.
type Session struct {
	mu       sync.Mutex
	game     *engine.Game
	id       string
	rolls    int
	board    string
	seed     int64
	logger   *log.Logger
	recorder Recorder
}

// New wraps game in a session.
func New(game *engine.Game, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	name := opts.Board
	if name == "" {
		name = "custom"
	}

	s := &Session{
		game:     game,
		id:       uuid.NewString(),
		board:    name,
		seed:     opts.Seed,
		logger:   logger,
		recorder: opts.Recorder,
	}
	s.logger.Debug("game created", "game", s.id, "board", s.board, "players", len(game.State().Players))
	return s
}

// ID returns the identifier of the current game. Restart assigns a new one.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// State returns a copy of the game state.
func (s *Session) State() engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State()
}

// Board returns the board being played.
func (s *Session) Board() *board.Board {
	return s.game.Board()
}

// Roll resolves one roll for the active player.
func (s *Session) Roll() (engine.State, []engine.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, events, err := s.game.Roll()
	if err != nil {
		s.logger.Warn("roll rejected", "game", s.id, "error", err)
		return state, events, err
	}
	s.rolls++

	for _, ev := range events {
		s.logEvent(ev)
	}

	if state.Finished() {
		if err := s.record(state); err != nil {
			s.logger.Error("cannot record result", "game", s.id, "error", err)
			return state, events, fmt.Errorf("%w: %w", ErrRecordFailed, err)
		}
	}
	return state, events, nil
}

// Restart resets the game and starts a new game ID.
func (s *Session) Restart() engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.id
	s.id = uuid.NewString()
	s.rolls = 0
	state := s.game.Restart()
	s.logger.Info("game restarted", "previous", prev, "game", s.id)
	return state
}

func (s *Session) logEvent(ev engine.Event) {
	switch e := ev.(type) {
	case engine.Moved:
		s.logger.Debug("moved", "game", s.id, "player", e.Name, "roll", e.Roll, "from", e.From, "to", e.To)
	case engine.Landed:
		s.logger.Info(e.Kind.String(), "game", s.id, "player", e.Name, "from", e.From, "to", e.To)
	case engine.BonusRoll:
		s.logger.Debug("bonus roll", "game", s.id, "player", e.Name)
	case engine.Won:
		s.logger.Info("game won", "game", s.id, "player", e.Name, "moves", e.Moves, "rolls", s.rolls)
	}
}

func (s *Session) record(state engine.State) error {
	if s.recorder == nil {
		return nil
	}
	winner, _ := state.WinnerPlayer()
	return s.recorder.SaveResult(Result{
		ID:         s.id,
		Board:      s.board,
		Seed:       s.seed,
		Winner:     winner.Name,
		WinnerSeat: state.Winner,
		Rolls:      s.rolls,
		Players:    state.Players,
	})
}

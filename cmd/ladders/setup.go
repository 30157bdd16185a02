package main

import (
	"fmt"

	"github.com/vovakirdan/snakes-ladders/internal/board"
	"github.com/vovakirdan/snakes-ladders/internal/config"
	"github.com/vovakirdan/snakes-ladders/internal/dice"
	"github.com/vovakirdan/snakes-ladders/internal/engine"
	"github.com/vovakirdan/snakes-ladders/internal/session"
	"github.com/vovakirdan/snakes-ladders/internal/storage"
)

// playerColors follows seating order and wraps for large tables.
var playerColors = []string{"red", "blue", "green", "yellow", "orange", "purple"}

// tableFlags are shared by play and simulate.
type tableFlags struct {
	players string
	board   string
	config  string
}

func (f *tableFlags) playerSpecs() []engine.PlayerSpec {
	names := settings.Players
	if f.players != "" {
		names = config.ParsePlayers(f.players)
	}
	specs := make([]engine.PlayerSpec, len(names))
	for i, n := range names {
		specs[i] = engine.PlayerSpec{Name: n, Color: playerColors[i%len(playerColors)]}
	}
	return specs
}

// newSession builds a game on the selected board with a die seeded from
// seed and wraps it in a session that records to store, if any.
func (f *tableFlags) newSession(seed int64, store *storage.Store) (*session.Session, error) {
	cfg, name, err := config.LoadPreset(f.board, f.config)
	if err != nil {
		return nil, err
	}

	faces := cfg.DieFaces
	if faces < 1 {
		faces = board.DefaultDieFaces
	}
	die := dice.NewDie(faces, seed)

	game, err := engine.NewGame(f.playerSpecs(), cfg, die)
	if err != nil {
		return nil, fmt.Errorf("cannot start game: %w", err)
	}

	opts := session.Options{
		Board:  name,
		Seed:   die.Seed(),
		Logger: logger,
	}
	if store != nil {
		opts.Recorder = store
	}
	return session.New(game, opts), nil
}

// openStore opens the history database unless disabled.
// A failure is logged and play continues without history.
func openStore(disabled bool) *storage.Store {
	if disabled {
		return nil
	}
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", settings.DBPath, "error", err)
		return nil
	}
	return store
}

// Package board describes the static track of a snakes and ladders game:
// the goal cell, the die, and the table of cells that redirect a player.
// A Board is immutable once built and safe to share between games.
package board

import (
	"fmt"
	"sort"
)

// Kind tells which way a modifier moves a player.
type Kind int

const (
	Ladder Kind = iota + 1 // forward jump
	Snake                  // backward jump
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Ladder:
		return "ladder"
	case Snake:
		return "snake"
	default:
		return "unknown"
	}
}

// Modifier relocates a player that lands on From to To.
type Modifier struct {
	Kind Kind
	From int
	To   int
}

// Config is the raw description of a board before validation.
type Config struct {
	Goal     int         `yaml:"goal"`
	DieFaces int         `yaml:"die_faces"`
	Ladders  map[int]int `yaml:"ladders"`
	Snakes   map[int]int `yaml:"snakes"`
}

// Board is a validated, read-only modifier table.
type Board struct {
	goal      int
	faces     int
	modifiers map[int]Modifier
}

const (
	DefaultGoal     = 100
	DefaultDieFaces = 6
)

// New validates cfg and builds a Board from it.
// Zero Goal and DieFaces fall back to the defaults.
func New(cfg Config) (*Board, error) {
	if cfg.Goal == 0 {
		cfg.Goal = DefaultGoal
	}
	if cfg.DieFaces == 0 {
		cfg.DieFaces = DefaultDieFaces
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	b := &Board{
		goal:      cfg.Goal,
		faces:     cfg.DieFaces,
		modifiers: make(map[int]Modifier, len(cfg.Ladders)+len(cfg.Snakes)),
	}
	for from, to := range cfg.Ladders {
		b.modifiers[from] = Modifier{Kind: Ladder, From: from, To: to}
	}
	for from, to := range cfg.Snakes {
		b.modifiers[from] = Modifier{Kind: Snake, From: from, To: to}
	}
	return b, nil
}

// MustNew is like New but panics on an invalid config.
// Intended for literal presets.
func MustNew(cfg Config) *Board {
	b, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("board: %v", err))
	}
	return b
}

// Goal returns the terminal cell.
func (b *Board) Goal() int {
	return b.goal
}

// DieFaces returns the highest face of the die. Rolling it grants a bonus roll.
func (b *Board) DieFaces() int {
	return b.faces
}

// ModifierAt returns the modifier whose source is cell, if any.
func (b *Board) ModifierAt(cell int) (Modifier, bool) {
	m, ok := b.modifiers[cell]
	return m, ok
}

// Modifiers returns every modifier ordered by source cell.
func (b *Board) Modifiers() []Modifier {
	result := make([]Modifier, 0, len(b.modifiers))
	for _, m := range b.modifiers {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].From < result[j].From
	})
	return result
}

// Config returns a copy of the configuration this board was built from.
func (b *Board) Config() Config {
	cfg := Config{
		Goal:     b.goal,
		DieFaces: b.faces,
		Ladders:  make(map[int]int),
		Snakes:   make(map[int]int),
	}
	for _, m := range b.modifiers {
		if m.Kind == Ladder {
			cfg.Ladders[m.From] = m.To
		} else {
			cfg.Snakes[m.From] = m.To
		}
	}
	return cfg
}

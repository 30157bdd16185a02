package engine

import "github.com/vovakirdan/snakes-ladders/internal/board"

// Event reports something that happened while resolving a roll.
// Roll returns events in the order they occurred.
type Event interface {
	event()
}

// Moved is emitted for every accepted roll. To is the cell reached by the
// die alone, clamped to the goal.
type Moved struct {
	Player int
	Name   string
	Roll   int
	From   int
	To     int
}

func (Moved) event() {}

// Landed is emitted when the cell reached by the die is a modifier source.
type Landed struct {
	Player int
	Name   string
	Kind   board.Kind
	From   int
	To     int
}

func (Landed) event() {}

// BonusRoll is emitted when the player rolled the die's highest face and
// keeps the turn.
type BonusRoll struct {
	Player int
	Name   string
}

func (BonusRoll) event() {}

// Won is emitted when a player reaches the goal. It is always the last event.
type Won struct {
	Player int
	Name   string
	Moves  int
}

func (Won) event() {}

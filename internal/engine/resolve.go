package engine

import (
	"fmt"

	"github.com/vovakirdan/snakes-ladders/internal/board"
)

// resolve applies one die face to s for the current player.
//
// Reaching or passing the goal wins immediately with no modifier lookup.
// Otherwise at most one modifier applies: the destination of a snake or
// ladder is never looked up again in the same turn.
func resolve(s *State, b *board.Board, face int) []Event {
	idx := s.Current
	p := &s.Players[idx]
	from := p.Position
	goal := b.Goal()

	s.LastRoll = face
	p.Moves++

	candidate := from + face
	if candidate >= goal {
		p.Position = goal
		s.appendLog(fmt.Sprintf("%s rolled %d: %d -> %d", p.Name, face, from, goal))
		return []Event{
			Moved{Player: idx, Name: p.Name, Roll: face, From: from, To: goal},
			s.finish(idx),
		}
	}

	p.Position = candidate
	events := []Event{
		Moved{Player: idx, Name: p.Name, Roll: face, From: from, To: candidate},
	}
	entry := fmt.Sprintf("%s rolled %d: %d -> %d", p.Name, face, from, candidate)

	if m, ok := b.ModifierAt(candidate); ok {
		p.Position = m.To
		events = append(events, Landed{Player: idx, Name: p.Name, Kind: m.Kind, From: m.From, To: m.To})
		entry += fmt.Sprintf(", %s to %d", m.Kind, m.To)
	}
	s.appendLog(entry)

	// A ladder may end on the goal.
	if p.Position >= goal {
		return append(events, s.finish(idx))
	}

	if face == b.DieFaces() {
		return append(events, BonusRoll{Player: idx, Name: p.Name})
	}
	s.Current = (idx + 1) % len(s.Players)
	return events
}

// finish marks player idx as the winner.
func (s *State) finish(idx int) Event {
	s.Status = StatusFinished
	s.Winner = idx
	p := s.Players[idx]
	return Won{Player: idx, Name: p.Name, Moves: p.Moves}
}

package dice

import "fmt"

// Scripted replays a fixed sequence of faces.
// It panics when the sequence runs out so a test never rolls silently past
// what it scripted.
type Scripted struct {
	faces []int
	next  int
}

// NewScripted returns a source that yields faces in order.
// Panics if any face is outside [1, maxFace].
func NewScripted(maxFace int, faces ...int) *Scripted {
	for i, f := range faces {
		if f < 1 || f > maxFace {
			panic(fmt.Sprintf("dice: scripted face %d at index %d outside [1, %d]", f, i, maxFace))
		}
	}
	return &Scripted{faces: append([]int(nil), faces...)}
}

// Roll returns the next scripted face.
func (s *Scripted) Roll() int {
	if s.next >= len(s.faces) {
		panic(fmt.Sprintf("dice: scripted sequence exhausted after %d rolls", len(s.faces)))
	}
	f := s.faces[s.next]
	s.next++
	return f
}

// Remaining returns how many faces are left.
func (s *Scripted) Remaining() int {
	return len(s.faces) - s.next
}

package board

import (
	"fmt"
	"sort"
)

// ValidationError describes why a board config was rejected.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that cfg describes a playable board:
//   - goal and die faces are large enough
//   - every source and destination lies on the track
//   - ladders go up and snakes go down
//   - no cell is the source of both a ladder and a snake
func Validate(cfg Config) error {
	if cfg.Goal < 2 {
		return ValidationError{
			Code:    "INVALID_GOAL",
			Message: fmt.Sprintf("goal %d must be at least 2", cfg.Goal),
		}
	}
	if cfg.DieFaces < 2 {
		return ValidationError{
			Code:    "INVALID_DIE",
			Message: fmt.Sprintf("die needs at least 2 faces, got %d", cfg.DieFaces),
		}
	}

	if err := validateTable(cfg.Goal, Ladder, cfg.Ladders); err != nil {
		return err
	}
	if err := validateTable(cfg.Goal, Snake, cfg.Snakes); err != nil {
		return err
	}

	for _, from := range sortedKeys(cfg.Ladders) {
		if _, ok := cfg.Snakes[from]; ok {
			return ValidationError{
				Code:    "OVERLAPPING_MODIFIER",
				Message: fmt.Sprintf("cell %d is both a ladder and a snake", from),
			}
		}
	}

	return nil
}

// validateTable checks one modifier table. Sources are in [1, goal) since
// landing on the goal ends the game before any lookup.
func validateTable(goal int, kind Kind, table map[int]int) error {
	for _, from := range sortedKeys(table) {
		to := table[from]
		if from < 1 || from >= goal {
			return ValidationError{
				Code:    "OUT_OF_RANGE",
				Message: fmt.Sprintf("%s source %d outside [1, %d)", kind, from, goal),
			}
		}
		if to < 1 || to > goal {
			return ValidationError{
				Code:    "OUT_OF_RANGE",
				Message: fmt.Sprintf("%s %d->%d destination outside [1, %d]", kind, from, to, goal),
			}
		}
		if kind == Ladder && to <= from {
			return ValidationError{
				Code:    "WRONG_DIRECTION",
				Message: fmt.Sprintf("ladder %d->%d does not go up", from, to),
			}
		}
		if kind == Snake && to >= from {
			return ValidationError{
				Code:    "WRONG_DIRECTION",
				Message: fmt.Sprintf("snake %d->%d does not go down", from, to),
			}
		}
	}
	return nil
}

// sortedKeys gives deterministic iteration so the same config always
// reports the same first error.
func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

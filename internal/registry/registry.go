// Package registry holds the named board presets offered by the CLI.
// The config package registers the embedded presets at init time.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/snakes-ladders/internal/board"
)

// ErrUnknownBoard is returned by Create for a name nobody registered.
var ErrUnknownBoard = errors.New("registry: unknown board")

// BoardInfo names a preset for listings.
type BoardInfo struct {
	ID    string
	Title string
}

// Factory builds a preset's configuration. It is called on every Create,
// so each caller owns the maps it gets back.
type Factory func() board.Config

type preset struct {
	info  BoardInfo
	build Factory
}

var (
	mu      sync.RWMutex
	presets = make(map[string]preset)
)

// Register makes a preset available under id. Registering the same id
// twice is a programming error and panics.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := presets[id]; dup {
		panic(fmt.Sprintf("registry: board %q registered twice", id))
	}
	presets[id] = preset{info: BoardInfo{ID: id, Title: title}, build: f}
}

// List returns every preset ordered by ID.
func List() []BoardInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]BoardInfo, 0, len(presets))
	for _, p := range presets {
		infos = append(infos, p.info)
	}
	slices.SortFunc(infos, func(a, b BoardInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds a fresh configuration for the preset id.
func Create(id string) (board.Config, error) {
	mu.RLock()
	p, ok := presets[id]
	mu.RUnlock()

	if !ok {
		return board.Config{}, fmt.Errorf("%w %q (see 'ladders boards')", ErrUnknownBoard, id)
	}
	return p.build(), nil
}

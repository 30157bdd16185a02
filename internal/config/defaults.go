package config

import (
	_ "embed"

	"github.com/vovakirdan/snakes-ladders/internal/board"
	"github.com/vovakirdan/snakes-ladders/internal/registry"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/quick.yaml
var defaultQuickYAML []byte

// DefaultPreset is the board used when none is named.
const DefaultPreset = "classic"

func init() {
	registry.Register("classic", "Classic 100", func() board.Config {
		return embeddedOr(defaultClassicYAML, board.ClassicConfig())
	})
	registry.Register("quick", "Quick 30", func() board.Config {
		return embeddedOr(defaultQuickYAML, board.Config{Goal: 30, DieFaces: board.DefaultDieFaces})
	})
}

// GetDefaultYAML returns the embedded YAML for a preset.
func GetDefaultYAML(preset string) []byte {
	switch preset {
	case "classic":
		return defaultClassicYAML
	case "quick":
		return defaultQuickYAML
	default:
		return nil
	}
}

func embeddedOr(data []byte, fallback board.Config) board.Config {
	cfg, err := parseBoard(data)
	if err != nil {
		return fallback // Fallback to hardcoded if embed fails
	}
	return cfg
}

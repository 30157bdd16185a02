package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snakes-ladders/internal/board"
	"github.com/vovakirdan/snakes-ladders/internal/registry"
)

// LoadBoard loads a board configuration.
// Search order: customPath -> ~/.ladders/board.yaml -> ./configs/board.yaml -> classic preset
//
// Only an explicit customPath reports read or parse errors; the implicit
// locations fall through to the next one. The result is not validated here:
// engine.NewGame does that.
func LoadBoard(customPath string) (board.Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return board.Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseBoard(data)
		if err != nil {
			return board.Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("board.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBoard(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/board.yaml"); err == nil {
		if cfg, err := parseBoard(data); err == nil {
			return cfg, nil
		}
	}

	return registry.Create(DefaultPreset)
}

// LoadPreset returns a named board from the registry, or loads customPath
// when it is set. The returned name identifies the board in game history.
func LoadPreset(preset, customPath string) (board.Config, string, error) {
	if customPath != "" {
		cfg, err := LoadBoard(customPath)
		return cfg, filepath.Base(customPath), err
	}
	if preset == "" {
		cfg, err := LoadBoard("")
		return cfg, DefaultPreset, err
	}
	cfg, err := registry.Create(preset)
	return cfg, preset, err
}

func parseBoard(data []byte) (board.Config, error) {
	var cfg board.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return board.Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ladders", filename)
}

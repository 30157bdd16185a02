package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snakes-ladders/internal/board"
	"github.com/vovakirdan/snakes-ladders/internal/registry"
)

func TestEmbeddedClassicMatchesReference(t *testing.T) {
	cfg, err := parseBoard(GetDefaultYAML("classic"))
	require.NoError(t, err)
	assert.Equal(t, board.ClassicConfig(), cfg)
}

func TestPresetsRegisteredAndValid(t *testing.T) {
	for _, id := range []string{"classic", "quick"} {
		cfg, err := registry.Create(id)
		require.NoError(t, err, id)
		_, err = board.New(cfg)
		assert.NoError(t, err, "preset %s should validate", id)
	}
}

func TestLoadBoardCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	data := []byte("goal: 20\ndie_faces: 4\nladders:\n  2: 9\nsnakes:\n  15: 3\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadBoard(path)
	require.NoError(t, err)

	assert.Equal(t, board.Config{
		Goal:     20,
		DieFaces: 4,
		Ladders:  map[int]int{2: 9},
		Snakes:   map[int]int{15: 3},
	}, cfg)
}

func TestLoadBoardCustomPathErrors(t *testing.T) {
	_, err := LoadBoard(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("goal: [1, 2"), 0o644))
	_, err = LoadBoard(bad)
	assert.Error(t, err)
}

func TestLoadBoardSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	// Nothing on disk: classic preset.
	cfg, err := LoadBoard("")
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Goal)

	// Local configs directory.
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "board.yaml"), []byte("goal: 40\n"), 0o644))
	cfg, err = LoadBoard("")
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Goal)

	// User directory wins over local.
	userDir := filepath.Join(home, ".ladders")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "board.yaml"), []byte("goal: 50\n"), 0o644))
	cfg, err = LoadBoard("")
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Goal)
}

func TestLoadPreset(t *testing.T) {
	cfg, name, err := LoadPreset("quick", "")
	require.NoError(t, err)
	assert.Equal(t, "quick", name)
	assert.Equal(t, 30, cfg.Goal)

	_, _, err = LoadPreset("nope", "")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte("goal: 12\n"), 0o644))
	cfg, name, err = LoadPreset("quick", path)
	require.NoError(t, err)
	assert.Equal(t, "tiny.yaml", name)
	assert.Equal(t, 12, cfg.Goal)
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("LADDERS_DB", "/tmp/x.db")
	t.Setenv("LADDERS_SEED", "42")
	t.Setenv("LADDERS_LOG_LEVEL", "debug")
	t.Setenv("LADDERS_PLAYERS", "Ann, Ben ,,Cat")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/x.db", s.DBPath)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, []string{"Ann", "Ben", "Cat"}, s.Players)
}

func TestLoadSettingsDefaults(t *testing.T) {
	for _, k := range []string{"LADDERS_DB", "LADDERS_SEED", "LADDERS_LOG_LEVEL", "LADDERS_PLAYERS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "~/.ladders/history.db", s.DBPath)
	assert.Zero(t, s.Seed)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, []string{"Player 1", "Player 2"}, s.Players)
}

func TestLoadSettingsBadSeed(t *testing.T) {
	t.Setenv("LADDERS_SEED", "not-a-number")
	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestParsePlayers(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParsePlayers(" a , b ,"))
	assert.Empty(t, ParsePlayers(""))
}

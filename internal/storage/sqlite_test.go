package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snakes-ladders/internal/engine"
	"github.com/vovakirdan/snakes-ladders/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func record(id, winner string, names ...string) GameRecord {
	rec := GameRecord{GameID: id, Board: "classic", Winner: winner, WinnerSeat: -1, Rolls: 10}
	for i, n := range names {
		pos := 50
		if n == winner && rec.WinnerSeat < 0 {
			pos = 100
			rec.WinnerSeat = i
		}
		rec.Players = append(rec.Players, PlayerRecord{Seat: i, Name: n, Position: pos, Moves: 5})
	}
	return rec
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created in nested directory")
}

func TestStoreSaveAndGet(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveGame(record("g1", "Alice", "Alice", "Bob"))
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := store.GameByID("g1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "classic", got.Board)
	assert.Equal(t, "Alice", got.Winner)
	assert.Equal(t, 0, got.WinnerSeat)
	assert.Equal(t, 10, got.Rolls)
	require.Len(t, got.Players, 2)
	assert.Equal(t, PlayerRecord{Seat: 0, Name: "Alice", Position: 100, Moves: 5}, got.Players[0])
	assert.Equal(t, "Bob", got.Players[1].Name)
	assert.False(t, got.FinishedAt.IsZero())
}

func TestStoreGameByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.GameByID("nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreDuplicateGameID(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveGame(record("g1", "Alice", "Alice", "Bob"))
	require.NoError(t, err)
	_, err = store.SaveGame(record("g1", "Bob", "Alice", "Bob"))
	assert.Error(t, err)

	n, err := store.GameCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStoreRecentGamesLimit(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"g1", "g2", "g3", "g4", "g5"} {
		_, err := store.SaveGame(record(id, "Alice", "Alice", "Bob"))
		require.NoError(t, err)
	}

	games, err := store.RecentGames(3)
	require.NoError(t, err)
	require.Len(t, games, 3)

	// Same timestamp resolution, so newest by row id.
	assert.Equal(t, "g5", games[0].GameID)
	assert.Equal(t, "g4", games[1].GameID)
	assert.Len(t, games[0].Players, 2)
}

func TestStoreLeaderboard(t *testing.T) {
	store := openTestStore(t)

	games := []GameRecord{
		record("g1", "Alice", "Alice", "Bob"),
		record("g2", "Alice", "Alice", "Bob"),
		record("g3", "Bob", "Alice", "Bob", "Carol"),
	}
	for _, g := range games {
		_, err := store.SaveGame(g)
		require.NoError(t, err)
	}

	board, err := store.Leaderboard(10)
	require.NoError(t, err)

	assert.Equal(t, []WinTally{
		{Name: "Alice", Wins: 2, Games: 3},
		{Name: "Bob", Wins: 1, Games: 3},
		{Name: "Carol", Wins: 0, Games: 1},
	}, board)
}

func TestStoreClearHistory(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveGame(record("g1", "Alice", "Alice", "Bob"))
	require.NoError(t, err)

	require.NoError(t, store.ClearHistory())

	n, err := store.GameCount()
	require.NoError(t, err)
	assert.Zero(t, n)

	board, err := store.Leaderboard(10)
	require.NoError(t, err)
	assert.Empty(t, board)

	var players int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM game_players").Scan(&players))
	assert.Zero(t, players)
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	err := store.SaveResult(session.Result{
		ID:         "abc",
		Board:      "quick",
		Seed:       7,
		Winner:     "Bob",
		WinnerSeat: 1,
		Rolls:      12,
		Players: []engine.Player{
			{Name: "Alice", Position: 17, Moves: 6},
			{Name: "Bob", Position: 30, Moves: 6},
		},
	})
	require.NoError(t, err)

	got, err := store.GameByID("abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.Seed)
	assert.Equal(t, "Bob", got.Winner)
	assert.Equal(t, 1, got.WinnerSeat)
	assert.Equal(t, 1, got.Players[1].Seat)
	assert.Equal(t, 30, got.Players[1].Position)
}

func TestStoreLeaderboardSharedName(t *testing.T) {
	store := openTestStore(t)

	err := store.SaveResult(session.Result{
		ID:         "twins",
		Board:      "classic",
		Winner:     "Ann",
		WinnerSeat: 0,
		Rolls:      40,
		Players: []engine.Player{
			{Name: "Ann", Position: 100, Moves: 20},
			{Name: "Ann", Position: 40, Moves: 20},
		},
	})
	require.NoError(t, err)

	board, err := store.Leaderboard(10)
	require.NoError(t, err)
	assert.Equal(t, []WinTally{{Name: "Ann", Wins: 1, Games: 2}}, board)
}

func TestStoreUpgradesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE games (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL UNIQUE,
		board TEXT NOT NULL,
		seed INTEGER NOT NULL DEFAULT 0,
		winner TEXT NOT NULL,
		rolls INTEGER NOT NULL DEFAULT 0,
		finished_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO games (game_id, board, winner) VALUES ('old', 'classic', 'Ann')")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.GameByID("old")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, -1, got.WinnerSeat)

	_, err = store.SaveGame(record("new", "Bob", "Ann", "Bob"))
	require.NoError(t, err)
}

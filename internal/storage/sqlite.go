// Package storage provides SQLite-based history of finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only summaries of completed games are stored. A game in progress is
// never written, so nothing here can resume one.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/snakes-ladders/internal/session"
)

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID         int64
	GameID     string
	Board      string
	Seed       int64
	Winner     string
	WinnerSeat int
	Rolls      int
	Players    []PlayerRecord
	FinishedAt time.Time
}

// PlayerRecord is a player's final standing in a game.
type PlayerRecord struct {
	Seat     int
	Name     string
	Position int
	Moves    int
}

// WinTally aggregates results per player name.
type WinTally struct {
	Name  string
	Wins  int
	Games int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			board TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL,
			winner_seat INTEGER NOT NULL DEFAULT -1,
			rolls INTEGER NOT NULL DEFAULT 0,
			finished_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_finished ON games(finished_at DESC);

		CREATE TABLE IF NOT EXISTS game_players (
			game_id TEXT NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
			seat INTEGER NOT NULL,
			name TEXT NOT NULL,
			position INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			PRIMARY KEY (game_id, seat)
		);
		CREATE INDEX IF NOT EXISTS idx_game_players_name ON game_players(name);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return s.addWinnerSeat()
}

// addWinnerSeat upgrades databases created before winners were tracked by seat.
func (s *Store) addWinnerSeat() error {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM pragma_table_info('games') WHERE name = 'winner_seat'",
	).Scan(&n)
	if err != nil || n > 0 {
		return err
	}
	_, err = s.db.Exec("ALTER TABLE games ADD COLUMN winner_seat INTEGER NOT NULL DEFAULT -1")
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a finished game and its players in one transaction.
// Returns the row ID of the game.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO games (game_id, board, seed, winner, winner_seat, rolls) VALUES (?, ?, ?, ?, ?, ?)",
		rec.GameID, rec.Board, rec.Seed, rec.Winner, rec.WinnerSeat, rec.Rolls,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	for _, p := range rec.Players {
		if _, err := tx.Exec(
			"INSERT INTO game_players (game_id, seat, name, position, moves) VALUES (?, ?, ?, ?, ?)",
			rec.GameID, p.Seat, p.Name, p.Position, p.Moves,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save player %q: %w", p.Name, err)
		}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit game: %w", err)
	}
	return id, nil
}

// RecentGames returns the most recently finished games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, board, seed, winner, winner_seat, rolls, finished_at
		 FROM games
		 ORDER BY finished_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var rec GameRecord
		var finishedAt any
		if err := rows.Scan(&rec.ID, &rec.GameID, &rec.Board, &rec.Seed,
			&rec.Winner, &rec.WinnerSeat, &rec.Rolls, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.FinishedAt = parseTime(finishedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for i := range records {
		players, err := s.players(records[i].GameID)
		if err != nil {
			return nil, err
		}
		records[i].Players = players
	}

	return records, nil
}

// GameByID retrieves a game by its game ID.
// Returns nil, nil if no such game exists.
func (s *Store) GameByID(gameID string) (*GameRecord, error) {
	var rec GameRecord
	var finishedAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, board, seed, winner, winner_seat, rolls, finished_at
		 FROM games
		 WHERE game_id = ?`,
		gameID,
	).Scan(&rec.ID, &rec.GameID, &rec.Board, &rec.Seed, &rec.Winner, &rec.WinnerSeat, &rec.Rolls, &finishedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	rec.FinishedAt = parseTime(finishedAt)

	rec.Players, err = s.players(gameID)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) players(gameID string) ([]PlayerRecord, error) {
	rows, err := s.db.Query(
		`SELECT seat, name, position, moves
		 FROM game_players
		 WHERE game_id = ?
		 ORDER BY seat`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var players []PlayerRecord
	for rows.Next() {
		var p PlayerRecord
		if err := rows.Scan(&p.Seat, &p.Name, &p.Position, &p.Moves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return players, nil
}

// Leaderboard returns players ordered by wins, then by games played.
// Seats sharing a name are tallied together, but a game credits only
// the winning seat.
func (s *Store) Leaderboard(limit int) ([]WinTally, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT p.name,
		        SUM(CASE WHEN g.winner_seat = p.seat THEN 1 ELSE 0 END) AS wins,
		        COUNT(*) AS games
		 FROM game_players p
		 JOIN games g ON g.game_id = p.game_id
		 GROUP BY p.name
		 ORDER BY wins DESC, games DESC, p.name
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var tallies []WinTally
	for rows.Next() {
		var w WinTally
		if err := rows.Scan(&w.Name, &w.Wins, &w.Games); err != nil {
			return nil, fmt.Errorf("storage: cannot scan tally: %w", err)
		}
		tallies = append(tallies, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return tallies, nil
}

// GameCount returns the number of recorded games.
func (s *Store) GameCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM games").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count games: %w", err)
	}
	return n, nil
}

// ClearHistory deletes every recorded game in one transaction.
func (s *Store) ClearHistory() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM game_players"); err != nil {
		return fmt.Errorf("storage: cannot clear players: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// SaveResult implements session.Recorder.
func (s *Store) SaveResult(r session.Result) error {
	rec := GameRecord{
		GameID:     r.ID,
		Board:      r.Board,
		Seed:       r.Seed,
		Winner:     r.Winner,
		WinnerSeat: r.WinnerSeat,
		Rolls:      r.Rolls,
	}
	for i, p := range r.Players {
		rec.Players = append(rec.Players, PlayerRecord{
			Seat:     i,
			Name:     p.Name,
			Position: p.Position,
			Moves:    p.Moves,
		})
	}
	_, err := s.SaveGame(rec)
	return err
}

// Ensure Store implements session.Recorder
var _ session.Recorder = (*Store)(nil)

// parseTime handles both time.Time and the string form SQLite returns
// for CURRENT_TIMESTAMP.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Package storage provides SQLite-based persistence for Simon scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID        string
	SessionID string
	Score     int
	Sequence  string // Comma-separated color names
	Preset    string
	Seed      int64
	Player    string
	StartedAt time.Time
	EndedAt   time.Time
}

// Stats contains aggregated statistics over all recorded games.
type Stats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			sequence TEXT NOT NULL DEFAULT '',
			preset TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			started_at DATETIME NOT NULL,
			ended_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(score DESC);
		CREATE INDEX IF NOT EXISTS idx_games_ended ON games(ended_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HighScore returns the persisted high score, or 0 if none was saved.
func (s *Store) HighScore() (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_score WHERE id = 1").Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SaveHighScore stores score if it beats the persisted one.
// Returns whether the stored value changed.
func (s *Store) SaveHighScore(score int) (bool, error) {
	result, err := s.db.Exec(
		`INSERT INTO high_score (id, score, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > high_score.score`,
		score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save high score: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read affected rows: %w", err)
	}
	return n > 0, nil
}

// SaveGame records a finished game. An ID is generated if the record has none.
// Returns the record ID.
func (s *Store) SaveGame(rec GameRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.EndedAt.IsZero() {
		rec.EndedAt = time.Now()
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = rec.EndedAt
	}

	_, err := s.db.Exec(
		`INSERT INTO games (id, session_id, score, sequence, preset, seed, player, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.SessionID,
		rec.Score,
		rec.Sequence,
		rec.Preset,
		rec.Seed,
		rec.Player,
		rec.StartedAt.UTC().Format(sqliteTime),
		rec.EndedAt.UTC().Format(sqliteTime),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}
	return rec.ID, nil
}

// TopGames retrieves the best N games ordered by score, newest first on ties.
func (s *Store) TopGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryGames(
		`SELECT id, session_id, score, sequence, preset, seed, player, started_at, ended_at
		 FROM games
		 ORDER BY score DESC, ended_at DESC
		 LIMIT ?`,
		limit,
	)
}

// RecentGames retrieves the last N finished games.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryGames(
		`SELECT id, session_id, score, sequence, preset, seed, player, started_at, ended_at
		 FROM games
		 ORDER BY ended_at DESC
		 LIMIT ?`,
		limit,
	)
}

// GameByID retrieves a single game, or nil if it does not exist.
func (s *Store) GameByID(id string) (*GameRecord, error) {
	games, err := s.queryGames(
		`SELECT id, session_id, score, sequence, preset, seed, player, started_at, ended_at
		 FROM games
		 WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}

func (s *Store) queryGames(query string, args ...any) ([]GameRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		var startedAt, endedAt any
		if err := rows.Scan(
			&g.ID,
			&g.SessionID,
			&g.Score,
			&g.Sequence,
			&g.Preset,
			&g.Seed,
			&g.Player,
			&startedAt,
			&endedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.StartedAt = parseTime(startedAt)
		g.EndedAt = parseTime(endedAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// GetStats retrieves aggregated statistics over all games.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(ended_at)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	// The record table can hold a score from a game that was never logged
	high, err := s.HighScore()
	if err != nil {
		return nil, err
	}
	if high > stats.HighScore {
		stats.HighScore = high
	}

	return stats, nil
}

// Reset deletes every game and the high score.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM games; DELETE FROM high_score;"); err != nil {
		return fmt.Errorf("storage: cannot reset scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string values returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

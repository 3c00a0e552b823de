// Package storage provides persistence for the game: a SQLite-backed
// leaderboard and file/memory-backed run saves. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LeaderboardSize is how many entries the leaderboard retains. Entries
// below the cutoff are pruned on every submission.
const LeaderboardSize = 10

// Store manages the SQLite database connection for the leaderboard.
type Store struct {
	db *sql.DB
}

// LeaderboardEntry is a single placed run.
type LeaderboardEntry struct {
	ID              int64
	Name            string
	Mode            string // "campaign" or "endless"
	HighestRound    int
	Kills           int
	TimeSurvivedSec int
	CreatedAt       time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS leaderboard (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			mode TEXT NOT NULL,
			highest_round INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			time_survived INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_rank ON leaderboard(highest_round DESC, kills DESC);
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

// Submit records a finished run and returns its rank on the board,
// 1-based. A rank of 0 means the run did not place: the board was full
// of better entries and the new row was pruned.
func (s *Store) Submit(entry LeaderboardEntry) (int, error) {
	result, err := s.db.Exec(
		`INSERT INTO leaderboard (name, mode, highest_round, kills, time_survived)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.Name, entry.Mode, entry.HighestRound, entry.Kills, entry.TimeSurvivedSec,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot submit score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	// Drop everything below the cutoff. Equal round+kill entries keep
	// their insertion order, so an older run outranks a matching new one.
	_, err = s.db.Exec(
		`DELETE FROM leaderboard WHERE id NOT IN (
			SELECT id FROM leaderboard
			ORDER BY highest_round DESC, kills DESC, id ASC
			LIMIT ?
		)`,
		LeaderboardSize,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune leaderboard: %w", err)
	}

	entries, err := s.Top()
	if err != nil {
		return 0, err
	}
	for i, e := range entries {
		if e.ID == id {
			return i + 1, nil
		}
	}
	return 0, nil
}

// Top retrieves the leaderboard, best run first.
func (s *Store) Top() ([]LeaderboardEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, mode, highest_round, kills, time_survived, created_at
		 FROM leaderboard
		 ORDER BY highest_round DESC, kills DESC, id ASC
		 LIMIT ?`,
		LeaderboardSize,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Mode, &e.HighestRound, &e.Kills, &e.TimeSurvivedSec, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestRound returns the highest round any placed run reached.
// Returns 0 if the board is empty.
func (s *Store) BestRound() (int, error) {
	var round sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(highest_round) FROM leaderboard").Scan(&round)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best round: %w", err)
	}

	if !round.Valid {
		return 0, nil
	}

	return int(round.Int64), nil
}

// Clear deletes every leaderboard entry.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM leaderboard")
	if err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}
	return nil
}

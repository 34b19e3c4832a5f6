// Package storage persists game results. The best completion time lives
// in a one-line text file (BestTimeFile); the history of completed games
// lives in SQLite (Store), using the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// Result is one completed game.
type Result struct {
	ID          int64
	SessionID   string
	ElapsedSecs int
	Moves       int
	Theme       string
	NewRecord   bool
	CreatedAt   time.Time
}

// Stats contains aggregated statistics over all completed games.
type Stats struct {
	GamesCount  int
	FastestSecs int
	AvgSecs     float64
	AvgMoves    float64
	Records     int
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			elapsed_secs INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			theme TEXT NOT NULL DEFAULT '',
			new_record INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_elapsed ON results(elapsed_secs ASC);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
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

// SaveResult records a completed game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (session_id, elapsed_secs, moves, theme, new_record)
		 VALUES (?, ?, ?, ?, ?)`,
		r.SessionID, r.ElapsedSecs, r.Moves, r.Theme, r.NewRecord,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// FastestResults retrieves the N fastest completed games.
func (s *Store) FastestResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT id, session_id, elapsed_secs, moves, theme, new_record, created_at
		 FROM results
		 ORDER BY elapsed_secs ASC, moves ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentResults retrieves the N most recently completed games.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT id, session_id, elapsed_secs, moves, theme, new_record, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.ElapsedSecs, &r.Moves, &r.Theme, &r.NewRecord, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// FastestTime returns the fastest recorded completion time.
// ok is false if no games have been recorded.
func (s *Store) FastestTime() (secs int, ok bool, err error) {
	var fastest sql.NullInt64
	err = s.db.QueryRow("SELECT MIN(elapsed_secs) FROM results").Scan(&fastest)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query fastest time: %w", err)
	}

	if !fastest.Valid {
		return 0, false, nil
	}
	return int(fastest.Int64), true, nil
}

// GetStats retrieves aggregated statistics over all completed games.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(elapsed_secs), 0), COALESCE(AVG(elapsed_secs), 0),
		        COALESCE(AVG(moves), 0), COALESCE(SUM(new_record), 0)
		 FROM results`,
	).Scan(&stats.GamesCount, &stats.FastestSecs, &stats.AvgSecs, &stats.AvgMoves, &stats.Records)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM results ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearResults deletes the whole history.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string DATETIME values.
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

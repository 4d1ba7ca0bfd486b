// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID        int64
	Mode      string // Difficulty preset the game was played on
	Score     int
	Level     int
	Lines     int
	Elapsed   int // Seconds played
	CreatedAt time.Time
}

// ModeStats contains aggregated statistics for one mode.
type ModeStats struct {
	Mode        string
	GamesCount  int
	HighScore   int
	AvgScore    float64
	TotalLines  int
	BestLevel   int
	LongestSecs int
	LastPlayed  time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			lines INTEGER NOT NULL DEFAULT 0,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_mode ON results(mode);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(mode, score DESC);
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

// SaveResult records a finished game and returns its ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Mode == "" {
		return 0, errors.New("storage: result has no mode")
	}

	res, err := s.db.Exec(
		"INSERT INTO results (mode, score, level, lines, elapsed_secs) VALUES (?, ?, ?, ?, ?)",
		r.Mode, r.Score, r.Level, r.Lines, r.Elapsed,
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

// TopScores retrieves the top N results for the given mode, best first.
// Equal scores keep the order they were achieved in.
func (s *Store) TopScores(mode string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, level, lines, elapsed_secs, created_at
		 FROM results
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Mode, &r.Score, &r.Level, &r.Lines, &r.Elapsed, &createdAt); err != nil {
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

// HighScore returns the highest score for the given mode.
// Returns 0 if no results exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all results for the given mode.
func (s *Store) ClearScores(mode string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a mode. A mode with no
// results yields zero counts.
func (s *Store) Stats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(lines), 0), COALESCE(MAX(level), 0), COALESCE(MAX(elapsed_secs), 0),
		        MAX(created_at)
		 FROM results WHERE mode = ?`,
		mode,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore,
		&stats.TotalLines, &stats.BestLevel, &stats.LongestSecs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// Modes lists every mode that has at least one result, alphabetically.
func (s *Store) Modes() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT mode FROM results ORDER BY mode")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query modes: %w", err)
	}
	defer rows.Close()

	var modes []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("storage: cannot scan mode: %w", err)
		}
		modes = append(modes, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return modes, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Package storage provides SQLite-based persistence for watch sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// SessionEntry represents a single recorded watch session.
type SessionEntry struct {
	ID           int64
	SceneID      string
	Seconds      int    // Wall-clock duration of the session
	Frames       uint64 // Simulation frames advanced
	DriftChanges int    // Wind-change events fired during the session
	CreatedAt    time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			seconds INTEGER NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			drift_changes INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_scene_id ON sessions(scene_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(scene_id, created_at DESC);
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

// SaveSession records a finished watch session for the given scene.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sceneID string, seconds int, frames uint64, driftChanges int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (scene_id, seconds, frames, drift_changes) VALUES (?, ?, ?, ?)",
		sceneID, seconds, frames, driftChanges,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent N sessions for the given scene.
// Results are ordered newest first.
func (s *Store) RecentSessions(sceneID string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scene_id, seconds, frames, drift_changes, created_at
		 FROM sessions
		 WHERE scene_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SceneID, &e.Seconds, &e.Frames, &e.DriftChanges, &createdAt); err != nil {
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

// TotalSeconds returns the accumulated watch time for the given scene.
// Returns 0 if no sessions exist.
func (s *Store) TotalSeconds(sceneID string) (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(
		"SELECT SUM(seconds) FROM sessions WHERE scene_id = ?",
		sceneID,
	).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query total watch time: %w", err)
	}

	if !total.Valid {
		return 0, nil
	}

	return int(total.Int64), nil
}

// LongestSession returns the longest recorded session duration for the given
// scene, in seconds. Returns 0 if no sessions exist.
func (s *Store) LongestSession(sceneID string) (int, error) {
	var longest sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(seconds) FROM sessions WHERE scene_id = ?",
		sceneID,
	).Scan(&longest)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest session: %w", err)
	}

	if !longest.Valid {
		return 0, nil
	}

	return int(longest.Int64), nil
}

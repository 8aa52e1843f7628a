package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the quiz history database.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps in-memory databases shared between calls.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS quiz_sessions (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		ended_at TEXT NOT NULL,
		total INTEGER NOT NULL,
		correct INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS answer_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		word TEXT NOT NULL,
		answer TEXT NOT NULL,
		correct INTEGER NOT NULL,
		level INTEGER NOT NULL,
		experience INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_answer_events_word ON answer_events(word);
	CREATE INDEX IF NOT EXISTS idx_answer_events_session ON answer_events(session_id);
	CREATE INDEX IF NOT EXISTS idx_quiz_sessions_ended ON quiz_sessions(ended_at);
	`
	_, err := db.Exec(schema)
	return err
}

// DefaultDBPath resolves the history database path:
// $XDG_DATA_HOME/vocamaster/history.db, falling back to
// ~/.local/share/vocamaster/history.db.
func DefaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "vocamaster", "history.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

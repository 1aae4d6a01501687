// Package store provides SQLite persistence for past investigation runs.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ewetherby/dragnet/internal/report"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Entry is one row of investigation history.
type Entry struct {
	ID         string
	Name       string
	Mode       string
	Confidence float64
	CreatedAt  time.Time
}

// Open creates a Store at the given database path, creating tables as
// needed. Uses WAL mode for file-based databases.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS investigations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		mode TEXT NOT NULL,
		confidence REAL NOT NULL,
		report TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_investigations_created ON investigations(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_investigations_name ON investigations(name);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveReport persists one finished investigation. Saving the same report
// ID twice is ignored.
func (s *Store) SaveReport(r *report.Report) error {
	data, err := report.Encode(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(
		`INSERT OR IGNORE INTO investigations (id, name, mode, confidence, report, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Metadata.Mode, r.ConfidenceScore, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert investigation: %w", err)
	}
	return nil
}

// List returns the most recent history entries, newest first.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, name, mode, confidence, created_at
		 FROM investigations ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query investigations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Mode, &e.Confidence, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan investigation: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get loads one persisted report by ID.
func (s *Store) Get(id string) (*report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data string
	err := s.db.QueryRow(`SELECT report FROM investigations WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("investigation %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query investigation: %w", err)
	}
	return report.Decode([]byte(data))
}

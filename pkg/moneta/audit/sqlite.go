package audit

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists resolution records to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite audit store.
// The path should be a file path (e.g., "./audit.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS resolutions (
			id TEXT NOT NULL PRIMARY KEY,
			owner TEXT NOT NULL,
			path TEXT NOT NULL,
			precision INTEGER NOT NULL,
			mode TEXT NOT NULL,
			reason TEXT NOT NULL,
			timestamp TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_resolutions_owner
		ON resolutions(owner)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Append implements Store.
func (s *SQLiteStore) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO resolutions (id, owner, path, precision, mode, reason, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Owner, rec.Path, rec.Precision, rec.Mode, rec.Reason,
		rec.Timestamp.UTC().Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

// List implements Store.
func (s *SQLiteStore) List(owner string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT id, path, precision, mode, reason, timestamp
		FROM resolutions
		WHERE owner = ?
		ORDER BY rowid
	`, owner)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var rec Record
		var timestamp string
		if err := rows.Scan(&rec.ID, &rec.Path, &rec.Precision, &rec.Mode, &rec.Reason, &timestamp); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Owner = owner
		rec.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return recs, nil
}

// Purge implements Store.
func (s *SQLiteStore) Purge(owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		DELETE FROM resolutions WHERE owner = ?
	`, owner)
	if err != nil {
		return fmt.Errorf("purge records: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}

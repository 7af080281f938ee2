package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	_ "modernc.org/sqlite"
)

// SQLite stores the snapshot as the single row of a table inside a SQLite
// database file. The blob stays as opaque as it is on a flat file; the table
// schema exists only to hold it. Useful when callers already keep other
// tables in the same database file.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens the database at path, creating file and snapshot table
// when absent.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshot (id INTEGER PRIMARY KEY CHECK (id = 1), data BLOB NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Load implements Backend. An empty table reports fs.ErrNotExist, the same
// signal a missing file gives.
func (s *SQLite) Load() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM snapshot WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no snapshot row: %w", fs.ErrNotExist)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save implements Backend.
func (s *SQLite) Save(data []byte) error {
	_, err := s.db.Exec(`INSERT INTO snapshot (id, data) VALUES (1, ?) ON CONFLICT (id) DO UPDATE SET data = excluded.data`, data)
	return err
}

// Close implements Backend.
func (s *SQLite) Close() error { return s.db.Close() }

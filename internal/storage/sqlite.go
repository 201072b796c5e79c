package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/atomicstack/devmenu/internal/property"
)

const slotsSchema = `CREATE TABLE IF NOT EXISTS slots (
	slot INTEGER PRIMARY KEY,
	data BLOB NOT NULL
)`

// SQLite stores slots as rows of a single table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path. Use ":memory:" for a
// private in-memory database.
func OpenSQLite(path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// a :memory: database exists per connection
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(slotsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Read(slot property.Slot, width int) ([]byte, error) {
	if slot == property.NoPersist {
		return nil, nil
	}
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM slots WHERE slot = ?`, int(slot)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sqlite slot %d: %w", slot, property.ErrUnset)
	}
	if err != nil {
		return nil, err
	}
	if len(data) > width {
		data = data[:width]
	}
	return data, nil
}

func (s *SQLite) Write(slot property.Slot, data []byte) error {
	if slot == property.NoPersist {
		return nil
	}
	_, err := s.db.Exec(`INSERT INTO slots (slot, data) VALUES (?, ?)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data`, int(slot), data)
	return err
}

// Slots returns the number of stored slots.
func (s *SQLite) Slots() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM slots`).Scan(&n)
	return n, err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

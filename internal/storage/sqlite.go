// Package storage persists player preferences in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Preference keys.
const (
	KeyStartLevel = "start_level"
	KeyTickRate   = "tick_rate"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Entry is a single stored preference.
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Preferences are the typed settings remembered between runs.
// Zero means unset.
type Preferences struct {
	StartLevel int
	TickRate   int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

const upsertSQL = `INSERT INTO preferences (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// SetPreference stores a single value, replacing any previous one.
func (s *Store) SetPreference(key, value string) error {
	if _, err := s.db.Exec(upsertSQL, key, value); err != nil {
		return fmt.Errorf("storage: cannot save preference %s: %w", key, err)
	}
	return nil
}

// Preference returns the stored value for key. ok is false when unset.
func (s *Store) Preference(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot query preference %s: %w", key, err)
	}
	return value, true, nil
}

// LoadPreferences reads the typed preferences. Missing or malformed values
// are left at zero.
func (s *Store) LoadPreferences() (Preferences, error) {
	var p Preferences
	for key, dst := range map[string]*int{
		KeyStartLevel: &p.StartLevel,
		KeyTickRate:   &p.TickRate,
	} {
		v, ok, err := s.Preference(key)
		if err != nil {
			return Preferences{}, err
		}
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
	return p, nil
}

// SavePreferences writes every non-zero field in one transaction.
func (s *Store) SavePreferences(p Preferences) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	values := []struct {
		key string
		val int
	}{
		{KeyStartLevel, p.StartLevel},
		{KeyTickRate, p.TickRate},
	}
	for _, v := range values {
		if v.val == 0 {
			continue
		}
		if _, err := tx.Exec(upsertSQL, v.key, strconv.Itoa(v.val)); err != nil {
			return fmt.Errorf("storage: cannot save preference %s: %w", v.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit preferences: %w", err)
	}
	return nil
}

// AllPreferences returns every stored entry ordered by key.
func (s *Store) AllPreferences() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT key, value, updated_at FROM preferences ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query preferences: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var updatedAt any
		if err := rows.Scan(&e.Key, &e.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// The driver may hand back either a time.Time or the raw text
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearPreferences deletes every stored preference.
func (s *Store) ClearPreferences() error {
	if _, err := s.db.Exec("DELETE FROM preferences"); err != nil {
		return fmt.Errorf("storage: cannot clear preferences: %w", err)
	}
	return nil
}

package sqlite

import (
	"database/sql"

	"taskvault/internal/errors"
	"taskvault/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Storage defines the interface for durable local storage. State is saved
// as a single opaque blob under a fixed key, the local-storage model: one
// writer, read back in full on startup.
type Storage interface {
	// Load returns the blob stored under key. The second return value is
	// false if no blob exists.
	Load(key string) ([]byte, bool, error)

	// Save stores the blob under key, replacing any previous value.
	Save(key string, value []byte) error

	// Delete removes the blob stored under key. Deleting a missing key is
	// not an error.
	Delete(key string) error

	// Close releases the underlying database.
	Close() error
}

// SQLiteStorage implements the Storage interface
type SQLiteStorage struct {
	db *sql.DB
}

// New creates a new SQLite storage instance
func New(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Load retrieves the blob stored under the given key
func (s *SQLiteStorage) Load(key string) ([]byte, bool, error) {
	query := `SELECT value FROM store_state WHERE key = ?`

	var value []byte
	err := s.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.NewStorageError("load state", err)
	}
	return value, true, nil
}

// Save stores the blob under the given key, replacing any previous value
func (s *SQLiteStorage) Save(key string, value []byte) error {
	query := `
	INSERT INTO store_state (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := s.db.Exec(query, key, value); err != nil {
		return errors.NewStorageError("save state", err)
	}
	return nil
}

// Delete removes the blob stored under the given key
func (s *SQLiteStorage) Delete(key string) error {
	query := `DELETE FROM store_state WHERE key = ?`

	if _, err := s.db.Exec(query, key); err != nil {
		return errors.NewStorageError("delete state", err)
	}
	return nil
}

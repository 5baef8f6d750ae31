package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// storageKey is the fixed name of the persisted session record.
const storageKey = "auth-storage"

// InitDatabase opens the client's local sqlite database and makes sure the
// key/value state table exists.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS client_state (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("state table init error: %w", err)
	}

	return db, nil
}

// SQLiteStorage persists the session snapshot as a single JSON record in
// the local key/value table.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

func (r *SQLiteStorage) Save(ctx context.Context, snap Snapshot) error {
	value, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode session snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO client_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, storageKey, value)
	if err != nil {
		return fmt.Errorf("failed to save session snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteStorage) Load(ctx context.Context) (Snapshot, bool, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM client_state WHERE key = ?`, storageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to load session snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(value, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to decode session snapshot: %w", err)
	}
	return snap, true, nil
}

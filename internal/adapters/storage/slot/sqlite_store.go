package slot

import (
	"context"
	"database/sql"
	"time"

	"rilliex/internal/adapters/storage"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db       storage.SQLDB
	maxBytes int
}

// NewSQLiteStore creates a slot store with the default size ceiling.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db, maxBytes: DefaultMaxValueBytes}
}

// NewSQLiteStoreWithLimit creates a slot store with a custom size ceiling.
// PRE: maxBytes > 0
func NewSQLiteStoreWithLimit(db storage.SQLDB, maxBytes int) *SQLiteStore {
	return &SQLiteStore{db: db, maxBytes: maxBytes}
}

// Get returns the slot value and whether the slot exists.
// PRE: key is non-empty
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM slot WHERE key = ?", key)
	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put writes the slot value, replacing any previous value.
// PRE: key is non-empty
// POST: slot holds value, or ErrQuotaExceeded and the slot is unchanged
func (s *SQLiteStore) Put(ctx context.Context, key, value string) error {
	if len(value) > s.maxBytes {
		return ErrQuotaExceeded
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO slot (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at",
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes the slot.
// POST: slot with given key is removed; absent key is a no-op
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM slot WHERE key = ?", key)
	return err
}

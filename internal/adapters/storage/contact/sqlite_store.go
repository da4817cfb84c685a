package contact

import (
	"context"
	"time"

	"rilliex/internal/adapters/storage"
	domain "rilliex/internal/domain/contact"
)

// Store persists contact messages.
type Store interface {
	Save(ctx context.Context, msg domain.Message) error
	List(ctx context.Context) ([]domain.Message, error)
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new contact message store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a contact Message.
// PRE: msg has been validated
// POST: Message is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, msg domain.Message) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO contact_message (id, name, email, body, received_at) VALUES (?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET name=excluded.name, email=excluded.email, body=excluded.body, received_at=excluded.received_at",
		msg.ID, msg.Name, msg.Email, msg.Body, msg.ReceivedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// List retrieves all contact messages, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, email, body, received_at FROM contact_message ORDER BY received_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Message
	for rows.Next() {
		var msg domain.Message
		var receivedAt string
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Body, &receivedAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, receivedAt); err == nil {
			msg.ReceivedAt = t
		}
		results = append(results, msg)
	}
	return results, rows.Err()
}

package message

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL message repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, m *Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, order_id, sender_id, content)
		VALUES ($1, $2, $3, $4)`,
		m.ID, m.OrderID, m.SenderID, m.Content)
	return err
}

func (r *postgresRepo) ListByOrder(ctx context.Context, orderID string) ([]*Message, error) {
	parsedID, err := uuid.Parse(orderID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, sender_id, content, created_at
		FROM messages WHERE order_id = $1 ORDER BY created_at ASC`, parsedID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		m := &Message{}
		if err := rows.Scan(&m.ID, &m.OrderID, &m.SenderID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

package message

import "context"

// Repository defines data access for order messages.
type Repository interface {
	Create(ctx context.Context, m *Message) error
	ListByOrder(ctx context.Context, orderID string) ([]*Message, error)
}

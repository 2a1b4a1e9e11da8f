package review

import "context"

// Repository defines data access for order reviews.
type Repository interface {
	Create(ctx context.Context, r *Review) error
	ListByOrder(ctx context.Context, orderID string) ([]*Review, error)
}

package report

import (
	"context"
	"time"
)

// Repository defines data access for sales reports.
type Repository interface {
	// OrdersInRange returns the order rows whose created_at falls inside
	// [start, end], with material names resolved.
	OrdersInRange(ctx context.Context, start, end time.Time) ([]OrderRow, error)

	// Insert persists a generated snapshot.
	Insert(ctx context.Context, r *SalesReport) error

	// List returns saved reports newest-first.
	List(ctx context.Context) ([]*SalesReport, error)
}

package audit

import "context"

// Repository defines data access for audit log entries.
type Repository interface {
	// Insert appends one entry. Entries are never updated or removed.
	Insert(ctx context.Context, e *Entry) error

	// Query returns matching entries newest-first along with the total count
	// of rows matching the filter regardless of limit/offset.
	Query(ctx context.Context, f Filter) ([]*Entry, int, error)
}

package catalog

import "context"

// Repository defines the interface for material data storage.
type Repository interface {
	Create(ctx context.Context, m *Material) error
	GetByID(ctx context.Context, id string) (*Material, error)
	List(ctx context.Context, availableOnly bool) ([]*Material, error)
	Update(ctx context.Context, m *Material) error
}

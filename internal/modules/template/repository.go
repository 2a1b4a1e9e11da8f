package template

import "context"

// Repository defines the interface for template data storage.
type Repository interface {
	Create(ctx context.Context, t *Template) error
	GetByID(ctx context.Context, id string) (*Template, error)
	List(ctx context.Context, category string, activeOnly bool) ([]*Template, error)
}

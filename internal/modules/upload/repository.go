package upload

import "context"

// Repository defines data access for uploaded file records.
type Repository interface {
	Create(ctx context.Context, f *UploadedFile) error
}

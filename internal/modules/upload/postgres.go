package upload

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL uploaded-files repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, f *UploadedFile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO uploaded_files (id, file_name, file_url, size_bytes)
		VALUES ($1, $2, $3, $4)`,
		f.ID, f.FileName, f.FileURL, f.SizeBytes)
	return err
}

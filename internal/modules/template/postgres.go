package template

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL template repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, t *Template) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO templates (id, name, category, description, image_url, price_modifier, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Name, t.Category, t.Description, t.ImageURL, t.PriceModifier, t.IsActive)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Template, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return scanTemplate(r.db.QueryRowContext(ctx, `
		SELECT id, name, category, description, image_url, price_modifier, is_active, created_at, updated_at
		FROM templates WHERE id = $1`, parsedID))
}

func (r *postgresRepo) List(ctx context.Context, category string, activeOnly bool) ([]*Template, error) {
	query := `
		SELECT id, name, category, description, image_url, price_modifier, is_active, created_at, updated_at
		FROM templates WHERE 1=1`
	args := []interface{}{}
	if category != "" {
		args = append(args, category)
		query += ` AND category = $1`
	}
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*Template
	for rows.Next() {
		t := &Template{}
		var category, description, imageURL sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &category, &description, &imageURL,
			&t.PriceModifier, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Category = category.String
		t.Description = description.String
		t.ImageURL = imageURL.String
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func scanTemplate(row *sql.Row) (*Template, error) {
	t := &Template{}
	var category, description, imageURL sql.NullString
	err := row.Scan(&t.ID, &t.Name, &category, &description, &imageURL,
		&t.PriceModifier, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Category = category.String
	t.Description = description.String
	t.ImageURL = imageURL.String
	return t, nil
}

package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL material repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, m *Material) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO materials (id, name, description, price_per_sqm, available)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.Name, m.Description, m.PricePerSqm, m.Available)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Material, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	m := &Material{}
	var description sql.NullString
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price_per_sqm, available, created_at, updated_at
		FROM materials WHERE id = $1`, parsedID).Scan(
		&m.ID, &m.Name, &description, &m.PricePerSqm, &m.Available, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Description = description.String
	return m, nil
}

func (r *postgresRepo) List(ctx context.Context, availableOnly bool) ([]*Material, error) {
	query := `
		SELECT id, name, description, price_per_sqm, available, created_at, updated_at
		FROM materials`
	if availableOnly {
		query += ` WHERE available = true`
	}
	query += ` ORDER BY price_per_sqm ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []*Material
	for rows.Next() {
		m := &Material{}
		var description sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &description, &m.PricePerSqm,
			&m.Available, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		m.Description = description.String
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, m *Material) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE materials
		SET name = $1, description = $2, price_per_sqm = $3, available = $4, updated_at = $5
		WHERE id = $6`,
		m.Name, m.Description, m.PricePerSqm, m.Available, time.Now(), m.ID)
	return err
}

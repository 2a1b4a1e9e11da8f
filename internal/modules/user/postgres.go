package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, role, phone, address, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Role, u.Phone, u.Address, u.IsActive)
	return err
}

func (r *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password_hash, name, role, phone, address, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, email, password_hash, name, role, phone, address, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return scanUser(r.db.QueryRowContext(ctx, query, parsedID))
}

func (r *postgresRepository) ListByRole(ctx context.Context, role Role) ([]*User, error) {
	query := `
		SELECT id, email, password_hash, name, role, phone, address, is_active, created_at, updated_at
		FROM users
		WHERE role = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u := &User{}
		var phone, address sql.NullString
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
			&phone, &address, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		u.Phone = phone.String
		u.Address = address.String
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row *sql.Row) (*User, error) {
	u := &User{}
	var phone, address sql.NullString
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
		&phone, &address, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Phone = phone.String
	u.Address = address.String
	return u, nil
}

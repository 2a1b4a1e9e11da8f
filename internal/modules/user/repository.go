package user

import "context"

// Repository defines data access for users.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListByRole(ctx context.Context, role Role) ([]*User, error)
}

package user

import "context"

// Service defines the interface for user-related business logic.
type Service interface {
	RegisterUser(ctx context.Context, req RegisterRequest) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListCustomers(ctx context.Context) ([]*User, error)
}

// RegisterRequest holds the fields collected at registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

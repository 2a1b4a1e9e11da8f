package user

import (
	"time"

	"github.com/google/uuid"
)

// Role determines which parts of the back office a user can reach.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return Role(raw), true
	}
	return "", false
}

// User represents an account in the system. Role is fixed at registration;
// there is no promotion flow.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

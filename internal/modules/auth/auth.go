package auth

import (
	"context"
	"time"

	"github.com/georgemunganga/tarpa-backend/internal/modules/user"
)

// Session is an issued credential returned to the client.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login verifies credentials and issues a session. A wrong email and a
	// wrong password produce the same error so neither field is revealed.
	Login(ctx context.Context, email, password string) (*Session, *user.User, error)

	// Register creates a customer account and issues a session for it.
	Register(ctx context.Context, req user.RegisterRequest) (*Session, *user.User, error)

	// GetSession resolves a bearer token to its user.
	GetSession(ctx context.Context, token string) (*user.User, error)

	// Logout invalidates a token. Stateless backends treat this as a no-op.
	Logout(ctx context.Context, token string) error
}

// TokenBackend abstracts how session tokens are minted and resolved. The
// managed-auth variant is stateless JWT; the custom variant keeps opaque
// tokens in a session store with a bounded lifetime.
type TokenBackend interface {
	Issue(ctx context.Context, u *user.User) (*Session, error)
	Resolve(ctx context.Context, token string) (userID string, err error)
	Revoke(ctx context.Context, token string) error
}

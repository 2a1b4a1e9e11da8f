package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgemunganga/tarpa-backend/internal/modules/user"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is deliberately generic: it never reveals whether the
// email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidToken covers unknown, expired, and revoked tokens alike.
var ErrInvalidToken = errors.New("invalid or expired token")

type service struct {
	users  user.Service
	tokens TokenBackend
}

// NewService creates a new auth service on top of a token backend.
func NewService(users user.Service, tokens TokenBackend) Service {
	return &service{users: users, tokens: tokens}
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, *user.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := s.tokens.Issue(ctx, u)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue session: %w", err)
	}
	return sess, u, nil
}

func (s *service) Register(ctx context.Context, req user.RegisterRequest) (*Session, *user.User, error) {
	u, err := s.users.RegisterUser(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	sess, err := s.tokens.Issue(ctx, u)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue session: %w", err)
	}
	return sess, u, nil
}

func (s *service) GetSession(ctx context.Context, token string) (*user.User, error) {
	userID, err := s.tokens.Resolve(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	u, err := s.users.GetUser(ctx, userID)
	if err != nil || u == nil || !u.IsActive {
		return nil, ErrInvalidToken
	}
	return u, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/georgemunganga/tarpa-backend/internal/modules/user"
)

// postgresSessions keeps opaque bearer tokens in a user_sessions table with a
// bounded lifetime, matching the custom-backend auth variant.
type postgresSessions struct {
	db  *sql.DB
	ttl time.Duration
}

// NewPostgresSessions creates a database-backed session store.
func NewPostgresSessions(db *sql.DB, ttl time.Duration) TokenBackend {
	return &postgresSessions{db: db, ttl: ttl}
}

func (s *postgresSessions) Issue(ctx context.Context, u *user.User) (*Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(s.ttl)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user_sessions (user_id, session_token, expires_at, is_active)
		VALUES ($1, $2, $3, true)`,
		u.ID, token, expiresAt)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Resolve looks up an active, unexpired session by token.
func (s *postgresSessions) Resolve(ctx context.Context, token string) (string, error) {
	var userID string
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id FROM user_sessions
		WHERE session_token = $1 AND expires_at > NOW() AND is_active = true`,
		token).Scan(&userID)
	if err != nil {
		return "", ErrInvalidToken
	}
	return userID, nil
}

func (s *postgresSessions) Revoke(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE user_sessions SET is_active = false WHERE session_token = $1`, token)
	return err
}

// newToken returns 32 random bytes hex-encoded, the same shape the original
// sessions table stored.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

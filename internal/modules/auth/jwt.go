package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/georgemunganga/tarpa-backend/internal/modules/user"
)

// jwtBackend mints stateless HS256 tokens, mirroring the managed-auth
// variant: the token itself carries identity and expiry, so there is nothing
// server-side to revoke.
type jwtBackend struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTBackend creates a stateless token backend.
func NewJWTBackend(secret string, ttl time.Duration) TokenBackend {
	return &jwtBackend{secret: []byte(secret), ttl: ttl}
}

func (b *jwtBackend) Issue(ctx context.Context, u *user.User) (*Session, error) {
	expiresAt := time.Now().Add(b.ttl)
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		ExpiresAt: expiresAt.Unix(),
		IssuedAt:  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(b.secret)
	if err != nil {
		return nil, err
	}
	return &Session{Token: signed, ExpiresAt: expiresAt}, nil
}

func (b *jwtBackend) Resolve(ctx context.Context, tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return b.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Revoke is a no-op: the token expires on its own and the client discards
// its copy, matching the managed-auth logout behaviour.
func (b *jwtBackend) Revoke(ctx context.Context, token string) error {
	return nil
}

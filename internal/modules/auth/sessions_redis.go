package auth

import (
	"context"
	"time"

	"github.com/georgemunganga/tarpa-backend/internal/modules/user"
	"github.com/go-redis/redis/v8"
)

// redisSessions stores opaque tokens in Redis and lets key TTL handle expiry.
type redisSessions struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisSessions creates a Redis-backed session store.
func NewRedisSessions(rdb *redis.Client, ttl time.Duration) TokenBackend {
	return &redisSessions{rdb: rdb, ttl: ttl}
}

func (s *redisSessions) Issue(ctx context.Context, u *user.User) (*Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(s.ttl)

	if err := s.rdb.Set(ctx, sessionKey(token), u.ID.String(), s.ttl).Err(); err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *redisSessions) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		// redis.Nil and transport errors alike resolve to an invalid session
		return "", ErrInvalidToken
	}
	return userID, nil
}

func (s *redisSessions) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}

func sessionKey(token string) string { return "session:" + token }

package audit

import (
	"context"
	"net"
	"net/http"

	"github.com/google/uuid"
)

// Actor identifies who performed a mutation, plus the request fingerprint
// the original backend captured alongside it.
type Actor struct {
	UserID    *uuid.UUID
	Name      string
	Email     string
	IPAddress string
	UserAgent string
}

type contextKey string

const actorContextKey contextKey = "audit.actor"

// WithActor stores the acting identity in the context for later recording.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, a)
}

// ActorFromContext retrieves the acting identity, if any.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorContextKey).(Actor)
	return a, ok
}

// RequestFingerprint extracts the client IP and user agent from a request.
func RequestFingerprint(r *http.Request) (ip, userAgent string) {
	ip = r.Header.Get("X-Forwarded-For")
	if ip == "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		ip = host
	}
	return ip, r.UserAgent()
}

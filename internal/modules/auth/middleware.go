package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/georgemunganga/tarpa-backend/internal/modules/audit"
	"github.com/georgemunganga/tarpa-backend/internal/modules/user"
)

type contextKey string

const userContextKey contextKey = "auth.user"

// CurrentUser returns the authenticated user placed in the context by
// RequireAuth.
func CurrentUser(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userContextKey).(*user.User)
	return u, ok
}

// Middleware guards routes with bearer-token authentication.
type Middleware struct {
	service Service
}

func NewMiddleware(service Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth rejects requests without a valid bearer token. A missing header
// and a bad token get distinct messages so clients can tell them apart.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respond(w, http.StatusUnauthorized, map[string]string{"error": "authorization token required"})
			return
		}
		u, err := m.service.GetSession(r.Context(), token)
		if err != nil {
			respond(w, http.StatusUnauthorized, map[string]string{"error": ErrInvalidToken.Error()})
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, u)

		// Stamp the acting identity for the audit trail.
		ip, userAgent := audit.RequestFingerprint(r)
		ctx = audit.WithActor(ctx, audit.Actor{
			UserID:    &u.ID,
			Name:      u.Name,
			Email:     u.Email,
			IPAddress: ip,
			UserAgent: userAgent,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole allows only the listed roles through. Must be mounted inside
// RequireAuth.
func (m *Middleware) RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	allowed := make(map[user.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r.Context())
			if !ok || !allowed[u.Role] {
				respond(w, http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission gates a route on the role capability map instead of a
// hardcoded role list.
func (m *Middleware) RequirePermission(p user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r.Context())
			if !ok || !user.Permissions(u.Role).Has(p) {
				respond(w, http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/georgemunganga/tarpa-backend/internal/modules/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareFixture(t *testing.T) (*Middleware, *stubUsers, Service) {
	t.Helper()
	users := newStubUsers()
	svc := NewService(users, NewJWTBackend("test-secret", time.Hour))
	return NewMiddleware(svc), users, svc
}

func okHandler() (http.Handler, *bool) {
	reached := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}), &reached
}

func TestRequireAuthMissingHeader(t *testing.T) {
	mw, _, _ := newMiddlewareFixture(t)
	next, reached := okHandler()

	rec := httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authorization token required")
	assert.False(t, *reached)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	mw, _, _ := newMiddlewareFixture(t)
	next, reached := okHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrInvalidToken.Error())
	assert.False(t, *reached)
}

func TestRequireAuthPlacesUserInContext(t *testing.T) {
	mw, users, svc := newMiddlewareFixture(t)
	u := seedUser(t, users, "ana@example.com", "s3cret-pw", true)
	sess, _, err := svc.Login(context.Background(), "ana@example.com", "s3cret-pw")
	require.NoError(t, err)

	var seen *user.User
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = CurrentUser(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	rec := httptest.NewRecorder()
	mw.RequireAuth(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, u.ID, seen.ID)
}

func TestRequirePermissionGatesByRole(t *testing.T) {
	mw, users, svc := newMiddlewareFixture(t)

	customer := seedUser(t, users, "customer@example.com", "s3cret-pw", true)
	customer.Role = user.RoleCustomer
	admin := seedUser(t, users, "admin@example.com", "s3cret-pw", true)
	admin.Role = user.RoleAdmin

	gated := mw.RequireAuth(mw.RequirePermission(user.PermViewAuditLog)(func() http.Handler {
		h, _ := okHandler()
		return h
	}()))

	for _, tc := range []struct {
		email string
		want  int
	}{
		{"customer@example.com", http.StatusForbidden},
		{"admin@example.com", http.StatusOK},
	} {
		sess, _, err := svc.Login(context.Background(), tc.email, "s3cret-pw")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+sess.Token)
		rec := httptest.NewRecorder()
		gated.ServeHTTP(rec, req)

		assert.Equal(t, tc.want, rec.Code, tc.email)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc123", "abc123", true},
		{"bearer abc123", "abc123", true},
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc123", "", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		token, ok := bearerToken(req)
		assert.Equal(t, tc.ok, ok, tc.header)
		assert.Equal(t, tc.token, token, tc.header)
	}
}

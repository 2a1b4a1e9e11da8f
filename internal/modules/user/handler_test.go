package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCustomerOnlyServesCustomerAccounts(t *testing.T) {
	repo := newMemoryRepo()
	customer := &User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana Cruz", Role: RoleCustomer, IsActive: true}
	staff := &User{ID: uuid.New(), Email: "staff@example.com", Name: "Back Office", Role: RoleStaff, IsActive: true}
	admin := &User{ID: uuid.New(), Email: "admin@example.com", Name: "Owner", Role: RoleAdmin, IsActive: true}
	for _, u := range []*User{customer, staff, admin} {
		require.NoError(t, repo.CreateUser(context.Background(), u))
	}

	router := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(router)

	cases := []struct {
		name string
		id   string
		want int
	}{
		{"customer", customer.ID.String(), http.StatusOK},
		{"staff", staff.ID.String(), http.StatusNotFound},
		{"admin", admin.ID.String(), http.StatusNotFound},
		{"unknown id", uuid.New().String(), http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers/"+tc.id, nil))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

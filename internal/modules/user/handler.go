package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes user HTTP endpoints. Registration itself lives in the auth
// module so it can issue a session in the same response.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the back-office customer listing. The caller is
// expected to wrap these routes with auth middleware requiring staff/admin.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/customers", h.listCustomers)
	r.Get("/api/v1/customers/{id}", h.getCustomer)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to list customers"})
		return
	}
	respond(w, http.StatusOK, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u, err := h.service.GetUser(r.Context(), id)
	// staff and admin accounts are not customers; give them the same 404 as
	// an unknown id
	if err != nil || u.Role != RoleCustomer {
		respond(w, http.StatusNotFound, map[string]string{"error": "customer not found"})
		return
	}
	respond(w, http.StatusOK, u)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

package review

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/georgemunganga/tarpa-backend/internal/modules/auth"
	"github.com/georgemunganga/tarpa-backend/internal/modules/order"
	"github.com/georgemunganga/tarpa-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
)

// Handler exposes per-order reviews. It is mounted inside the authenticated
// /api/v1/orders route group.
type Handler struct {
	service Service
	orders  order.Service
}

func NewHandler(service Service, orders order.Service) *Handler {
	return &Handler{service: service, orders: orders}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/{id}/reviews", h.postReview) // POST /api/v1/orders/{id}/reviews
	r.Get("/{id}/reviews", h.listReviews) // GET  /api/v1/orders/{id}/reviews
}

func (h *Handler) postReview(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "authorization token required"})
		return
	}
	var req PostReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rev, err := h.service.Post(r.Context(), chi.URLParam(r, "id"), u.ID, req)
	if err != nil {
		code := http.StatusInternalServerError
		msg := err.Error()
		if strings.Contains(msg, "not found") {
			code = http.StatusNotFound
		} else if strings.Contains(msg, "already been reviewed") || strings.Contains(msg, "completed orders") {
			code = http.StatusUnprocessableEntity
		} else if strings.Contains(msg, "must be") || strings.Contains(msg, "at most") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": msg})
		return
	}
	respond(w, http.StatusCreated, rev)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "authorization token required"})
		return
	}
	o, err := h.orders.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil || (!user.Permissions(u.Role).Has(user.PermViewAllOrders) && o.CustomerID != u.ID) {
		respond(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	reviews, err := h.service.ListByOrder(r.Context(), o.ID.String())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to list reviews"})
		return
	}
	if reviews == nil {
		reviews = []*Review{}
	}
	respond(w, http.StatusOK, reviews)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

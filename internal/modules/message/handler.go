package message

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/georgemunganga/tarpa-backend/internal/modules/auth"
	"github.com/georgemunganga/tarpa-backend/internal/modules/order"
	"github.com/georgemunganga/tarpa-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
)

// Handler exposes per-order message threads. It is mounted inside the
// authenticated /api/v1/orders route group.
type Handler struct {
	service Service
	orders  order.Service
}

func NewHandler(service Service, orders order.Service) *Handler {
	return &Handler{service: service, orders: orders}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/{id}/messages", h.postMessage) // POST /api/v1/orders/{id}/messages
	r.Get("/{id}/messages", h.listMessages) // GET  /api/v1/orders/{id}/messages
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	o, u, ok := h.loadThread(w, r)
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	m, err := h.service.Post(r.Context(), o.ID, u.ID, req.Content)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, m)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	o, _, ok := h.loadThread(w, r)
	if !ok {
		return
	}
	messages, err := h.service.ListByOrder(r.Context(), o.ID.String())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to list messages"})
		return
	}
	if messages == nil {
		messages = []*Message{}
	}
	respond(w, http.StatusOK, messages)
}

// loadThread resolves the order and enforces the same visibility rule as the
// order endpoints: customers only reach threads on their own orders.
func (h *Handler) loadThread(w http.ResponseWriter, r *http.Request) (*order.Order, *user.User, bool) {
	u, ok := auth.CurrentUser(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "authorization token required"})
		return nil, nil, false
	}
	o, err := h.orders.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil || (!user.Permissions(u.Role).Has(user.PermViewAllOrders) && o.CustomerID != u.ID) {
		respond(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return nil, nil, false
	}
	return o, u, true
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

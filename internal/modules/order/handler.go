package order

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/georgemunganga/tarpa-backend/internal/modules/auth"
	"github.com/georgemunganga/tarpa-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterRoutes mounts the order endpoints on an already-authenticated
// router (the caller applies RequireAuth to the whole group).
func (h *Handler) RegisterRoutes(r chi.Router, mw *auth.Middleware) {
	r.Post("/", h.placeOrder)                     // POST   /api/v1/orders
	r.Get("/mine", h.listMyOrders)                // GET    /api/v1/orders/mine
	r.Get("/{id}", h.getOrder)                    // GET    /api/v1/orders/{id}
	r.Get("/number/{number}", h.getOrderByNumber) // GET    /api/v1/orders/number/{number}
	r.Delete("/{id}", h.cancelOrder)              // DELETE /api/v1/orders/{id}

	r.Group(func(r chi.Router) {
		r.Use(mw.RequirePermission(user.PermViewAllOrders))
		r.Get("/", h.listOrders) // GET /api/v1/orders?status=pending
	})
	r.Group(func(r chi.Router) {
		r.Use(mw.RequirePermission(user.PermUpdateOrderStatus))
		r.Patch("/{id}/status", h.updateStatus) // PATCH /api/v1/orders/{id}/status
	})
	r.Group(func(r chi.Router) {
		r.Use(mw.RequirePermission(user.PermMarkPaid))
		r.Patch("/{id}/payment", h.markPaid) // PATCH /api/v1/orders/{id}/payment
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "authorization token required"})
		return
	}
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.PlaceOrder(r.Context(), u.ID, req)
	if err != nil {
		code := http.StatusInternalServerError
		msg := err.Error()
		if strings.Contains(msg, "unavailable") {
			code = http.StatusUnprocessableEntity
		} else if strings.Contains(msg, "required") || strings.Contains(msg, "invalid") ||
			strings.Contains(msg, "must be") || strings.Contains(msg, "not found") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": msg})
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.loadVisibleOrder(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) getOrderByNumber(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	o, err := h.service.GetOrderByNumber(r.Context(), number)
	if err != nil || !visibleTo(r, o) {
		respond(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	orders, err := h.service.ListOrders(r.Context(), status)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid status") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	if orders == nil {
		orders = []*Order{}
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) listMyOrders(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "authorization token required"})
		return
	}
	orders, err := h.service.ListCustomerOrders(r.Context(), u.ID.String())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to list orders"})
		return
	}
	if orders == nil {
		orders = []*Order{}
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.UpdateStatus(r.Context(), id, req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "cannot transition") {
			code = http.StatusUnprocessableEntity
		} else if strings.Contains(err.Error(), "invalid status") {
			code = http.StatusBadRequest
		} else if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.MarkPaid(r.Context(), id, req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid") || strings.Contains(err.Error(), "required") {
			code = http.StatusBadRequest
		} else if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.loadVisibleOrder(w, r)
	if !ok {
		return
	}
	if err := h.service.CancelOrder(r.Context(), o.ID.String()); err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "can be cancelled") {
			code = http.StatusUnprocessableEntity
		} else if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "order cancelled"})
}

// loadVisibleOrder fetches the order from the URL and enforces ownership:
// customers only ever see their own orders, and get the same 404 as a
// nonexistent id so order ids are not probeable.
func (h *Handler) loadVisibleOrder(w http.ResponseWriter, r *http.Request) (*Order, bool) {
	id := chi.URLParam(r, "id")
	o, err := h.service.GetOrder(r.Context(), id)
	if err != nil || !visibleTo(r, o) {
		respond(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return nil, false
	}
	return o, true
}

func visibleTo(r *http.Request, o *Order) bool {
	u, ok := auth.CurrentUser(r.Context())
	if !ok || o == nil {
		return false
	}
	if user.Permissions(u.Role).Has(user.PermViewAllOrders) {
		return true
	}
	return o.CustomerID == u.ID
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

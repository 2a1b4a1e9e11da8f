package report

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/georgemunganga/tarpa-backend/internal/modules/auth"
	"github.com/go-chi/chi/v5"
)

// Handler exposes sales report HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterRoutes mounts the report endpoints. The caller wraps them with
// report-permission middleware.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/v1/reports", h.generate) // POST /api/v1/reports
	r.Get("/api/v1/reports", h.list)      // GET  /api/v1/reports
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var generated *SalesReport
	var err error
	if u, ok := auth.CurrentUser(r.Context()); ok {
		generated, err = h.service.Generate(r.Context(), &u.ID, req)
	} else {
		generated, err = h.service.Generate(r.Context(), nil, req)
	}
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid") || strings.Contains(err.Error(), "must not be") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, generated)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	reports, err := h.service.List(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to list reports"})
		return
	}
	if reports == nil {
		reports = []*SalesReport{}
	}
	respond(w, http.StatusOK, reports)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

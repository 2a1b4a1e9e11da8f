package template

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes template gallery HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/api/v1/templates", h.listTemplates)    // GET /api/v1/templates?category=&active=true
	r.Get("/api/v1/templates/{id}", h.getTemplate) // GET /api/v1/templates/{id}
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/api/v1/templates", h.createTemplate)
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	activeOnly := r.URL.Query().Get("active") == "true"
	templates, err := h.service.ListTemplates(r.Context(), category, activeOnly)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to list templates"})
		return
	}
	respond(w, http.StatusOK, templates)
}

func (h *Handler) getTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, err := h.service.GetTemplate(r.Context(), id)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	respond(w, http.StatusOK, t)
}

func (h *Handler) createTemplate(w http.ResponseWriter, r *http.Request) {
	var req CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	t, err := h.service.CreateTemplate(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "cannot be") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, t)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

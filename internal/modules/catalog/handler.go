package catalog

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes material HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterPublicRoutes mounts the read-only catalog used by the ordering flow.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/api/v1/materials", h.listMaterials)     // GET /api/v1/materials?available=true
	r.Get("/api/v1/materials/{id}", h.getMaterial)  // GET /api/v1/materials/{id}
}

// RegisterAdminRoutes mounts catalog mutations. The caller wraps these with
// admin-gating middleware.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/api/v1/materials", h.createMaterial)
	r.Put("/api/v1/materials/{id}", h.updateMaterial)
}

func (h *Handler) listMaterials(w http.ResponseWriter, r *http.Request) {
	availableOnly := r.URL.Query().Get("available") == "true"
	materials, err := h.service.ListMaterials(r.Context(), availableOnly)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to list materials"})
		return
	}
	respond(w, http.StatusOK, materials)
}

func (h *Handler) getMaterial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := h.service.GetMaterial(r.Context(), id)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "material not found"})
		return
	}
	respond(w, http.StatusOK, m)
}

func (h *Handler) createMaterial(w http.ResponseWriter, r *http.Request) {
	var req MaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	m, err := h.service.CreateMaterial(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "must be") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, m)
}

func (h *Handler) updateMaterial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req MaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	m, err := h.service.UpdateMaterial(r.Context(), id, req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "must be") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, m)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

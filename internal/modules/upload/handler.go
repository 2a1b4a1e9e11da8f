package upload

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the design-file upload endpoint plus static serving of
// stored files.
type Handler struct {
	service  Service
	dir      string
	maxBytes int64
}

func NewHandler(service Service, dir string, maxBytes int64) *Handler {
	return &Handler{service: service, dir: dir, maxBytes: maxBytes}
}

// RegisterRoutes mounts the upload endpoint. The caller wraps it with
// RequireAuth.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/v1/uploads", h.uploadFile) // POST /api/v1/uploads (multipart, field "file")
}

// RegisterStaticRoutes serves stored files. Mounted without auth, matching
// the original's publicly reachable uploads directory.
func (h *Handler) RegisterStaticRoutes(r chi.Router) {
	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.dir)))
	r.Get("/uploads/*", fs.ServeHTTP)
}

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+1024*1024)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "no file uploaded"})
		return
	}
	defer file.Close()

	stored, err := h.service.Store(r.Context(), header.Filename, header.Size, file)
	if err != nil {
		code := http.StatusInternalServerError
		msg := err.Error()
		if strings.Contains(msg, "allowed") || strings.Contains(msg, "limit") {
			code = http.StatusBadRequest
		} else {
			msg = "upload failed"
		}
		respond(w, code, map[string]string{"error": msg})
		return
	}
	respond(w, http.StatusCreated, map[string]interface{}{
		"success":   true,
		"file_url":  stored.FileURL,
		"file_name": stored.FileName,
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

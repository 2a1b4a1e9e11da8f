package audit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the audit log viewer endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterRoutes mounts the audit query. The caller wraps it with
// admin-gating middleware.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/audit/logs", h.getLogs) // GET /api/v1/audit/logs?user_name=&action=&table_name=&start_date=&end_date=
}

func (h *Handler) getLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := Filter{
		UserName:  q.Get("user_name"),
		Action:    q.Get("action"),
		TableName: q.Get("table_name"),
	}
	if v := q.Get("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respond(w, http.StatusBadRequest, map[string]string{"error": "invalid start_date, expected YYYY-MM-DD"})
			return
		}
		f.StartDate = t
	}
	if v := q.Get("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respond(w, http.StatusBadRequest, map[string]string{"error": "invalid end_date, expected YYYY-MM-DD"})
			return
		}
		// inclusive end of day
		f.EndDate = t.Add(24*time.Hour - time.Nanosecond)
	}
	if v := q.Get("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		f.Offset, _ = strconv.Atoi(v)
	}

	entries, total, err := h.service.Query(r.Context(), f)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to query audit logs"})
		return
	}
	if entries == nil {
		entries = []*Entry{}
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"logs":    entries,
		"total":   total,
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

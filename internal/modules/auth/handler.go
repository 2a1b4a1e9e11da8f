package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/georgemunganga/tarpa-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
)

// Handler exposes auth HTTP endpoints.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", h.login)       // POST /api/v1/auth/login
		r.Post("/register", h.register) // POST /api/v1/auth/register
		r.Get("/session", h.session)    // GET  /api/v1/auth/session
		r.Post("/logout", h.logout)     // POST /api/v1/auth/logout
	})
}

// authResponse mirrors the wire shape the storefront client expects.
type authResponse struct {
	Success   bool       `json:"success"`
	User      *user.User `json:"user"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "email and password are required"})
		return
	}

	sess, u, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond(w, http.StatusUnauthorized, map[string]string{"error": ErrInvalidCredentials.Error()})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": "login failed"})
		return
	}
	respond(w, http.StatusOK, authResponse{Success: true, User: u, Token: sess.Token, ExpiresAt: sess.ExpiresAt})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	sess, u, err := h.service.Register(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		msg := err.Error()
		if strings.Contains(msg, "required") || strings.Contains(msg, "must be") || strings.Contains(msg, "already registered") {
			code = http.StatusBadRequest
		} else {
			msg = "registration failed"
		}
		respond(w, code, map[string]string{"error": msg})
		return
	}
	respond(w, http.StatusCreated, authResponse{Success: true, User: u, Token: sess.Token, ExpiresAt: sess.ExpiresAt})
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "authorization token required"})
		return
	}
	u, err := h.service.GetSession(r.Context(), token)
	if err != nil {
		respond(w, http.StatusUnauthorized, map[string]string{"error": ErrInvalidToken.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"success": true, "user": u})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "authorization token required"})
		return
	}
	if err := h.service.Logout(r.Context(), token); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "logout failed"})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"success": true, "message": "logged out"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

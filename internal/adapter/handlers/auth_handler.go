package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"ridehub/internal/domain/models"
	"ridehub/internal/domain/services"
)

type AuthHandler struct {
	authService services.AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService services.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// SetupRoutes registers the public auth endpoints.
func (h *AuthHandler) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /auth/logout", h.Logout)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	resp, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("login failed", "email", req.Email, "err", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.SignOut(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

// Profile is wired behind the auth middleware.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.Profile(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

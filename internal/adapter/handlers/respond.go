package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ridehub/internal/domain/models"
)

// RoleGuard gates a route group to the given roles. The auth middleware's
// RequireRole satisfies it; it must run inside a token-validating wrapper.
type RoleGuard func(roles ...models.Role) func(http.Handler) http.Handler

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps the domain error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *models.ValidationError
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrNotAuthenticated):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

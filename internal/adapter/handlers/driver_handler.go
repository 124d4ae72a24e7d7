package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"ridehub/internal/domain/models"
	"ridehub/internal/domain/services"
)

type DriverHandler struct {
	driverService services.DriverService
	logger        *slog.Logger
}

func NewDriverHandler(driverService services.DriverService, logger *slog.Logger) *DriverHandler {
	return &DriverHandler{driverService: driverService, logger: logger}
}

// SetupRoutes registers the driver endpoints. Status and location updates are
// the driver's own actions; admin keeps them for the console.
func (h *DriverHandler) SetupRoutes(mux *http.ServeMux, guard RoleGuard) {
	mux.HandleFunc("GET /drivers", h.List)

	driverOps := guard(models.RoleDriver, models.RoleAdmin)
	mux.Handle("POST /drivers/{id}/status", driverOps(http.HandlerFunc(h.SetStatus)))
	mux.Handle("POST /drivers/{id}/location", driverOps(http.HandlerFunc(h.SetLocation)))
}

func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.driverService.FetchDrivers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drivers)
}

type driverStatusRequest struct {
	IsOnline bool `json:"is_online"`
}

func (h *DriverHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req driverStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.driverService.SetOnline(r.Context(), r.PathValue("id"), req.IsOnline); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_online": req.IsOnline})
}

func (h *DriverHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var loc models.Location
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.driverService.UpdateLocation(r.Context(), r.PathValue("id"), loc); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

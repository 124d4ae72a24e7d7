package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"ridehub/internal/common/middleware"
	"ridehub/internal/domain/models"
	"ridehub/internal/domain/services"
)

type FleetHandler struct {
	vehicleService services.VehicleService
	logger         *slog.Logger
}

func NewFleetHandler(vehicleService services.VehicleService, logger *slog.Logger) *FleetHandler {
	return &FleetHandler{vehicleService: vehicleService, logger: logger}
}

// SetupRoutes registers the fleet endpoints. Reads stay open to any
// authenticated role (the booking map needs nearby vehicles); mutations are
// fleet management and require owner or admin.
func (h *FleetHandler) SetupRoutes(mux *http.ServeMux, guard RoleGuard) {
	mux.HandleFunc("GET /vehicles", h.List)
	mux.HandleFunc("GET /vehicles/nearby", h.Nearby)

	fleetOps := guard(models.RoleOwner, models.RoleAdmin)
	mux.Handle("POST /vehicles", fleetOps(http.HandlerFunc(h.Add)))
	mux.Handle("PATCH /vehicles/{id}/availability", fleetOps(http.HandlerFunc(h.SetAvailability)))
	mux.Handle("PATCH /vehicles/{id}/location", fleetOps(http.HandlerFunc(h.SetLocation)))
	mux.Handle("DELETE /vehicles/{id}", fleetOps(http.HandlerFunc(h.Remove)))
}

// List returns the fleet. Owners only ever see their own vehicles; admins may
// scope by owner_id or see everything.
func (h *FleetHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if role, _ := middleware.RoleFromContext(r.Context()); role == models.RoleOwner {
		if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
			ownerID = userID
		}
	}

	vehicles, err := h.vehicleService.FetchVehicles(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *FleetHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}

	vehicles, err := h.vehicleService.FetchNearbyVehicles(r.Context(), lat, lng)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *FleetHandler) Add(w http.ResponseWriter, r *http.Request) {
	var draft models.VehicleDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if role, _ := middleware.RoleFromContext(r.Context()); role == models.RoleOwner {
		if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
			draft.OwnerID = userID
		}
	}

	vehicle, err := h.vehicleService.AddVehicle(r.Context(), draft)
	if err != nil {
		h.logger.Warn("add vehicle failed", "err", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

type availabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

// SetAvailability is a local patch; an unknown id reports updated=false
// rather than an error.
func (h *FleetHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated := h.vehicleService.SetAvailability(r.PathValue("id"), req.IsAvailable)
	writeJSON(w, http.StatusOK, map[string]bool{"updated": updated})
}

func (h *FleetHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var loc models.Location
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated := h.vehicleService.SetLocation(r.PathValue("id"), loc)
	writeJSON(w, http.StatusOK, map[string]bool{"updated": updated})
}

func (h *FleetHandler) Remove(w http.ResponseWriter, r *http.Request) {
	removed := h.vehicleService.RemoveVehicle(r.PathValue("id"))
	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"ridehub/internal/common/middleware"
	"ridehub/internal/domain/models"
	"ridehub/internal/domain/services"
)

type TripHandler struct {
	tripService services.TripService
	logger      *slog.Logger
}

func NewTripHandler(tripService services.TripService, logger *slog.Logger) *TripHandler {
	return &TripHandler{tripService: tripService, logger: logger}
}

// SetupRoutes registers the trip endpoints on a mux already wrapped by the
// auth middleware. Lifecycle mutations belong to the driver workflow and the
// admin console; cancellation stays open so a customer can abandon their own
// request.
func (h *TripHandler) SetupRoutes(mux *http.ServeMux, guard RoleGuard) {
	mux.HandleFunc("GET /trips", h.List)
	mux.HandleFunc("POST /trips", h.Request)
	mux.HandleFunc("POST /trips/{id}/cancel", h.Cancel)

	driverOps := guard(models.RoleDriver, models.RoleAdmin)
	mux.Handle("POST /trips/{id}/assign", driverOps(http.HandlerFunc(h.Assign)))
	mux.Handle("POST /trips/{id}/start", driverOps(http.HandlerFunc(h.Start)))
	mux.Handle("POST /trips/{id}/complete", driverOps(http.HandlerFunc(h.Complete)))
}

// List returns the trips scoped to the authenticated user.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	trips, err := h.tripService.FetchTrips(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

func (h *TripHandler) Request(w http.ResponseWriter, r *http.Request) {
	var draft models.TripDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The customer books for themselves; the id never comes from the body.
	if role, _ := middleware.RoleFromContext(r.Context()); role == models.RoleCustomer {
		if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
			draft.CustomerID = userID
		}
	}

	trip, err := h.tripService.RequestTrip(r.Context(), draft)
	if err != nil {
		h.logger.Warn("trip request failed", "err", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

type assignRequest struct {
	DriverID  string `json:"driver_id"`
	VehicleID string `json:"vehicle_id"`
}

func (h *TripHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DriverID == "" {
		writeError(w, http.StatusBadRequest, "driver_id is required")
		return
	}

	trip, err := h.tripService.AssignDriver(r.Context(), r.PathValue("id"), req.DriverID, req.VehicleID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (h *TripHandler) Start(w http.ResponseWriter, r *http.Request) {
	trip, err := h.tripService.StartTrip(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (h *TripHandler) Complete(w http.ResponseWriter, r *http.Request) {
	trip, err := h.tripService.CompleteTrip(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (h *TripHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	trip, err := h.tripService.CancelTrip(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

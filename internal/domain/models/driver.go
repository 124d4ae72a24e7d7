package models

import "time"

type Driver struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	VehicleID     string    `json:"vehicle_id"`
	IsOnline      bool      `json:"is_online"`
	Rating        float64   `json:"rating"`
	Location      *Location `json:"location,omitempty"`
	CurrentTripID string    `json:"current_trip_id,omitempty"`
}

// Live feed messages pushed to dashboard subscribers.

type DriverLocationMessage struct {
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

type DriverStatusMessage struct {
	DriverID  string    `json:"driver_id"`
	IsOnline  bool      `json:"is_online"`
	Timestamp time.Time `json:"timestamp"`
}

type TripStatusMessage struct {
	TripID    string     `json:"trip_id"`
	Status    TripStatus `json:"status"`
	DriverID  string     `json:"driver_id,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

const (
	MessageTypeDriverLocation = "driver_location"
	MessageTypeDriverStatus   = "driver_status"
	MessageTypeTripStatus     = "trip_status"
)

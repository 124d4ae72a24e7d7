package models

import "time"

type TripStatus string
type Tier string

const (
	TripRequested  TripStatus = "requested"
	TripAssigned   TripStatus = "assigned"
	TripInProgress TripStatus = "in_progress"
	TripCompleted  TripStatus = "completed"
	TripCancelled  TripStatus = "cancelled"

	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

type PaymentMethod string
type PaymentStatus string

const (
	PayCash   PaymentMethod = "cash"
	PayCard   PaymentMethod = "card"
	PayWallet PaymentMethod = "wallet"

	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// Zero reports whether the location carries no coordinates at all.
func (l Location) Zero() bool {
	return l.Lat == 0 && l.Lng == 0 && l.Address == ""
}

type Trip struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	DriverID      string        `json:"driver_id,omitempty"`
	VehicleID     string        `json:"vehicle_id,omitempty"`
	Status        TripStatus    `json:"status"`
	Tier          Tier          `json:"tier"`
	Pickup        Location      `json:"pickup"`
	Dropoff       Location      `json:"dropoff"`
	Fare          float64       `json:"fare"`
	DistanceKm    float64       `json:"distance_km"`
	DurationMin   int           `json:"duration_min"`
	RequestTime   time.Time     `json:"request_time"`
	PickupTime    *time.Time    `json:"pickup_time,omitempty"`
	DropoffTime   *time.Time    `json:"dropoff_time,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// TripDraft is what the booking widget submits when requesting a ride.
type TripDraft struct {
	CustomerID    string        `json:"customer_id"`
	Tier          Tier          `json:"tier"`
	Pickup        Location      `json:"pickup"`
	Dropoff       Location      `json:"dropoff"`
	DistanceKm    float64       `json:"distance_km"`
	DurationMin   int           `json:"duration_min"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

func (d *TripDraft) Validate() error {
	if d.CustomerID == "" {
		return &ValidationError{Field: "customer_id", Reason: "required"}
	}
	if d.Pickup.Zero() {
		return &ValidationError{Field: "pickup", Reason: "required"}
	}
	if d.Dropoff.Zero() {
		return &ValidationError{Field: "dropoff", Reason: "required"}
	}
	if d.Tier != TierStandard && d.Tier != TierPremium {
		return &ValidationError{Field: "tier", Reason: "must be standard or premium"}
	}
	return nil
}

// transitionRank orders the monotonic part of the trip lifecycle.
// Cancelled sits outside the order and is handled separately.
func transitionRank(s TripStatus) int {
	switch s {
	case TripRequested:
		return 0
	case TripAssigned:
		return 1
	case TripInProgress:
		return 2
	case TripCompleted:
		return 3
	}
	return -1
}

// CanTransition reports whether a trip may move from one status to the next.
// Forward moves must advance exactly one step; cancellation is allowed from
// any state that is not yet completed.
func CanTransition(from, to TripStatus) bool {
	if to == TripCancelled {
		return from != TripCompleted && from != TripCancelled
	}
	fr, tr := transitionRank(from), transitionRank(to)
	if fr < 0 || tr < 0 {
		return false
	}
	return tr == fr+1
}

// BaseFare is the tier's base price before the mocked surcharge.
func BaseFare(t Tier) float64 {
	if t == TierPremium {
		return 18
	}
	return 10
}

package services

import (
	"context"
	"log/slog"
	"time"

	"ridehub/internal/domain/models"
	"ridehub/internal/store"
)

type TripGateway interface {
	ListTrips(ctx context.Context, userID string) ([]models.Trip, error)
	CreateTrip(ctx context.Context, draft models.TripDraft) (models.Trip, error)
}

type TripService interface {
	FetchTrips(ctx context.Context, userID string) ([]models.Trip, error)
	RequestTrip(ctx context.Context, draft models.TripDraft) (*models.Trip, error)
	AssignDriver(ctx context.Context, tripID, driverID, vehicleID string) (*models.Trip, error)
	StartTrip(ctx context.Context, tripID string) (*models.Trip, error)
	CompleteTrip(ctx context.Context, tripID string) (*models.Trip, error)
	CancelTrip(ctx context.Context, tripID string) (*models.Trip, error)
}

type tripService struct {
	gw        TripGateway
	store     *store.Store
	publisher EventPublisher
	feed      LiveFeed
	logger    *slog.Logger
}

func NewTripService(gw TripGateway, st *store.Store, pub EventPublisher, feed LiveFeed, logger *slog.Logger) TripService {
	return &tripService{gw: gw, store: st, publisher: pub, feed: feed, logger: logger}
}

// FetchTrips loads the trips visible to the given user: those where they are
// the customer or the assigned driver. A concurrent fetch is not fenced; the
// later settlement overwrites the collection.
func (s *tripService) FetchTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	s.store.Trips.Begin()

	trips, err := s.gw.ListTrips(ctx, userID)
	if err != nil {
		err = models.WrapAction("fetch trips", err)
		s.store.Trips.Fail(err)
		return nil, err
	}

	s.store.Trips.CommitList(trips)
	return trips, nil
}

// RequestTrip validates the draft, asks the backend to synthesize the trip
// and commits it as the active trip. The fare is always at least the tier's
// base fare.
func (s *tripService) RequestTrip(ctx context.Context, draft models.TripDraft) (*models.Trip, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	s.store.Trips.Begin()
	trip, err := s.gw.CreateTrip(ctx, draft)
	if err != nil {
		err = models.WrapAction("request trip", err)
		s.store.Trips.Fail(err)
		return nil, err
	}

	s.store.Trips.CommitCreated(trip)
	s.announce(ctx, trip)
	s.logger.Info("trip requested", "trip_id", trip.ID, "tier", trip.Tier, "fare", trip.Fare)
	return &trip, nil
}

// AssignDriver moves a requested trip to assigned and pins the driver and
// vehicle identifiers. Those ids are never set before this point.
func (s *tripService) AssignDriver(ctx context.Context, tripID, driverID, vehicleID string) (*models.Trip, error) {
	trip, err := s.transition(tripID, models.TripAssigned, func(t *models.Trip) {
		t.DriverID = driverID
		t.VehicleID = vehicleID
	})
	if err != nil {
		return nil, err
	}
	s.store.Drivers.SetCurrentTrip(driverID, tripID)
	s.announce(ctx, *trip)
	return trip, nil
}

func (s *tripService) StartTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	now := time.Now()
	trip, err := s.transition(tripID, models.TripInProgress, func(t *models.Trip) {
		t.PickupTime = &now
	})
	if err != nil {
		return nil, err
	}
	s.announce(ctx, *trip)
	return trip, nil
}

func (s *tripService) CompleteTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	now := time.Now()
	trip, err := s.transition(tripID, models.TripCompleted, func(t *models.Trip) {
		t.DropoffTime = &now
		t.PaymentStatus = models.PaymentCompleted
	})
	if err != nil {
		return nil, err
	}
	if trip.DriverID != "" {
		s.store.Drivers.SetCurrentTrip(trip.DriverID, "")
	}
	s.clearActive(trip.ID)
	s.announce(ctx, *trip)
	return trip, nil
}

// CancelTrip is reachable from any state short of completed.
func (s *tripService) CancelTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	trip, err := s.transition(tripID, models.TripCancelled, nil)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != "" {
		s.store.Drivers.SetCurrentTrip(trip.DriverID, "")
	}
	s.clearActive(trip.ID)
	s.announce(ctx, *trip)
	return trip, nil
}

// clearActive drops the active-trip pointer once that trip reaches a terminal
// state, so the booking flow stops tracking it.
func (s *tripService) clearActive(tripID string) {
	if active, ok := s.store.Trips.Active(); ok && active.ID == tripID {
		s.store.Trips.ClearActive()
	}
}

// transition enforces the monotonic lifecycle order before patching the store.
func (s *tripService) transition(tripID string, to models.TripStatus, patch func(*models.Trip)) (*models.Trip, error) {
	current, ok := s.store.Trips.Get(tripID)
	if !ok {
		return nil, models.ErrNotFound
	}
	if !models.CanTransition(current.Status, to) {
		return nil, models.ErrInvalidTransition
	}

	s.store.Trips.Patch(tripID, func(t *models.Trip) {
		t.Status = to
		if patch != nil {
			patch(t)
		}
	})

	updated, _ := s.store.Trips.Get(tripID)
	return &updated, nil
}

func (s *tripService) announce(ctx context.Context, trip models.Trip) {
	if err := s.publisher.PublishTripStatus(ctx, trip); err != nil {
		s.logger.Warn("failed to publish trip status", "trip_id", trip.ID, "err", err)
	}
	s.feed.PushTripStatus(models.TripStatusMessage{
		TripID:    trip.ID,
		Status:    trip.Status,
		DriverID:  trip.DriverID,
		Timestamp: time.Now(),
	})
}

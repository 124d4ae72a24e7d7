package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridehub/internal/domain/models"
	"ridehub/internal/store"
)

func newTripService(t *testing.T) (TripService, *store.Store, *recordFeed) {
	t.Helper()
	gw, st, logger := newTestStack(t)
	feed := &recordFeed{}
	return NewTripService(gw, st, NoopPublisher{}, feed, logger), st, feed
}

func standardDraft() models.TripDraft {
	return models.TripDraft{
		CustomerID: "1",
		Tier:       models.TierStandard,
		Pickup:     models.Location{Lat: 40.7128, Lng: -74.0060, Address: "123 Broadway"},
		Dropoff:    models.Location{Lat: 40.7484, Lng: -73.9857, Address: "350 Fifth Avenue"},
	}
}

func TestFetchTripsScopesToUser(t *testing.T) {
	svc, st, _ := newTripService(t)

	// The demo driver sees only the trip they were assigned to.
	trips, err := svc.FetchTrips(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "2", trips[0].DriverID)
	assert.Equal(t, models.TripCompleted, trips[0].Status)
	assert.Equal(t, store.StatusSucceeded, st.Trips.Status())

	// The demo customer sees both seeded trips.
	trips, err = svc.FetchTrips(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, trips, 2)
	for _, tr := range trips {
		assert.Equal(t, "1", tr.CustomerID)
	}
}

func TestRequestTrip(t *testing.T) {
	svc, st, feed := newTripService(t)

	trip, err := svc.RequestTrip(context.Background(), standardDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, models.TripRequested, trip.Status)
	assert.Empty(t, trip.DriverID)
	assert.Empty(t, trip.VehicleID)
	assert.Equal(t, models.PaymentPending, trip.PaymentStatus)
	assert.Equal(t, models.PayCash, trip.PaymentMethod)

	// Standard fare is base 10 plus a surcharge below 20.
	assert.GreaterOrEqual(t, trip.Fare, 10.0)
	assert.Less(t, trip.Fare, 30.0)

	active, ok := st.Trips.Active()
	require.True(t, ok)
	assert.Equal(t, trip.ID, active.ID)

	require.Len(t, feed.trips, 1)
	assert.Equal(t, models.TripRequested, feed.trips[0].Status)
}

func TestRequestTripUniqueIDs(t *testing.T) {
	svc, _, _ := newTripService(t)

	first, err := svc.RequestTrip(context.Background(), standardDraft())
	require.NoError(t, err)
	second, err := svc.RequestTrip(context.Background(), standardDraft())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRequestTripPremiumFare(t *testing.T) {
	svc, _, _ := newTripService(t)

	draft := standardDraft()
	draft.Tier = models.TierPremium
	trip, err := svc.RequestTrip(context.Background(), draft)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, trip.Fare, 18.0)
	assert.Less(t, trip.Fare, 38.0)
}

func TestRequestTripValidation(t *testing.T) {
	svc, st, _ := newTripService(t)

	tests := []struct {
		name   string
		mutate func(*models.TripDraft)
		field  string
	}{
		{"missing customer", func(d *models.TripDraft) { d.CustomerID = "" }, "customer_id"},
		{"missing pickup", func(d *models.TripDraft) { d.Pickup = models.Location{} }, "pickup"},
		{"missing dropoff", func(d *models.TripDraft) { d.Dropoff = models.Location{} }, "dropoff"},
		{"bad tier", func(d *models.TripDraft) { d.Tier = "luxury" }, "tier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := standardDraft()
			tt.mutate(&draft)

			_, err := svc.RequestTrip(context.Background(), draft)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	// A rejected draft never touches the slice.
	assert.Equal(t, store.StatusIdle, st.Trips.Status())
}

func TestTripLifecycle(t *testing.T) {
	svc, st, _ := newTripService(t)
	st.Drivers.CommitList([]models.Driver{{ID: "1", UserID: "2"}})

	trip, err := svc.RequestTrip(context.Background(), standardDraft())
	require.NoError(t, err)

	assigned, err := svc.AssignDriver(context.Background(), trip.ID, "1", "1")
	require.NoError(t, err)
	assert.Equal(t, models.TripAssigned, assigned.Status)
	assert.Equal(t, "1", assigned.DriverID)
	assert.Equal(t, "1", assigned.VehicleID)

	driver, ok := st.Drivers.Get("1")
	require.True(t, ok)
	assert.Equal(t, trip.ID, driver.CurrentTripID)

	started, err := svc.StartTrip(context.Background(), trip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TripInProgress, started.Status)
	assert.NotNil(t, started.PickupTime)

	completed, err := svc.CompleteTrip(context.Background(), trip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TripCompleted, completed.Status)
	assert.NotNil(t, completed.DropoffTime)
	assert.Equal(t, models.PaymentCompleted, completed.PaymentStatus)

	driver, _ = st.Drivers.Get("1")
	assert.Empty(t, driver.CurrentTripID)

	// The booking flow stops tracking a finished trip.
	_, active := st.Trips.Active()
	assert.False(t, active)
}

func TestTripTransitionsAreMonotonic(t *testing.T) {
	svc, _, _ := newTripService(t)

	trip, err := svc.RequestTrip(context.Background(), standardDraft())
	require.NoError(t, err)

	// Requested may not skip straight to in-progress or completed.
	_, err = svc.StartTrip(context.Background(), trip.ID)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	_, err = svc.CompleteTrip(context.Background(), trip.ID)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	_, err = svc.AssignDriver(context.Background(), trip.ID, "1", "1")
	require.NoError(t, err)

	// No going back.
	_, err = svc.AssignDriver(context.Background(), trip.ID, "2", "2")
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestCancelTrip(t *testing.T) {
	svc, st, _ := newTripService(t)

	trip, err := svc.RequestTrip(context.Background(), standardDraft())
	require.NoError(t, err)

	cancelled, err := svc.CancelTrip(context.Background(), trip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TripCancelled, cancelled.Status)

	_, active := st.Trips.Active()
	assert.False(t, active)

	// Cancelled is terminal.
	_, err = svc.CancelTrip(context.Background(), trip.ID)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestCancelCompletedTripRejected(t *testing.T) {
	svc, _, _ := newTripService(t)

	// The seeded history includes a completed trip.
	_, err := svc.FetchTrips(context.Background(), "1")
	require.NoError(t, err)

	_, err = svc.CancelTrip(context.Background(), "1")
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestTransitionUnknownTrip(t *testing.T) {
	svc, _, _ := newTripService(t)

	_, err := svc.AssignDriver(context.Background(), "missing", "1", "1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

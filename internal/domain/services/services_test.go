package services

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"ridehub/internal/adapter/gateway"
	"ridehub/internal/domain/models"
	"ridehub/internal/store"
)

// newTestStack wires a zero-latency backend so nothing sleeps in tests.
func newTestStack(t *testing.T) (*gateway.Gateway, *store.Store, *slog.Logger) {
	t.Helper()
	return gateway.New(0), store.New(), slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordFeed captures everything pushed to the live feed.
type recordFeed struct {
	mu        sync.Mutex
	locations []models.DriverLocationMessage
	statuses  []models.DriverStatusMessage
	trips     []models.TripStatusMessage
}

func (f *recordFeed) PushDriverLocation(msg models.DriverLocationMessage) {
	f.mu.Lock()
	f.locations = append(f.locations, msg)
	f.mu.Unlock()
}

func (f *recordFeed) PushDriverStatus(msg models.DriverStatusMessage) {
	f.mu.Lock()
	f.statuses = append(f.statuses, msg)
	f.mu.Unlock()
}

func (f *recordFeed) PushTripStatus(msg models.TripStatusMessage) {
	f.mu.Lock()
	f.trips = append(f.trips, msg)
	f.mu.Unlock()
}

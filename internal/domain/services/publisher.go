package services

import (
	"context"

	"ridehub/internal/domain/models"
)

// EventPublisher is the outbound messaging port. The RabbitMQ adapter
// implements it when a broker is configured; otherwise the no-op below keeps
// the mocked core self-contained.
type EventPublisher interface {
	PublishTripStatus(ctx context.Context, trip models.Trip) error
	PublishDriverStatus(ctx context.Context, driverID string, online bool) error
	PublishDriverLocation(ctx context.Context, driverID string, loc models.Location) error
}

// LiveFeed pushes settled updates to connected dashboard clients.
type LiveFeed interface {
	PushDriverLocation(msg models.DriverLocationMessage)
	PushDriverStatus(msg models.DriverStatusMessage)
	PushTripStatus(msg models.TripStatusMessage)
}

type NoopPublisher struct{}

func (NoopPublisher) PublishTripStatus(context.Context, models.Trip) error { return nil }
func (NoopPublisher) PublishDriverStatus(context.Context, string, bool) error {
	return nil
}
func (NoopPublisher) PublishDriverLocation(context.Context, string, models.Location) error {
	return nil
}

type NoopFeed struct{}

func (NoopFeed) PushDriverLocation(models.DriverLocationMessage) {}
func (NoopFeed) PushDriverStatus(models.DriverStatusMessage)     {}
func (NoopFeed) PushTripStatus(models.TripStatusMessage)         {}

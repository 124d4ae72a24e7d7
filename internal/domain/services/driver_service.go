package services

import (
	"context"
	"log/slog"
	"time"

	"ridehub/internal/domain/models"
	"ridehub/internal/store"
)

type DriverGateway interface {
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	UpdateDriverStatus(ctx context.Context, driverID string, online bool) error
	UpdateDriverLocation(ctx context.Context, driverID string, loc models.Location) error
}

type DriverService interface {
	FetchDrivers(ctx context.Context) ([]models.Driver, error)
	SetOnline(ctx context.Context, driverID string, online bool) error
	UpdateLocation(ctx context.Context, driverID string, loc models.Location) error
}

type driverService struct {
	gw        DriverGateway
	store     *store.Store
	publisher EventPublisher
	feed      LiveFeed
	logger    *slog.Logger
}

func NewDriverService(gw DriverGateway, st *store.Store, pub EventPublisher, feed LiveFeed, logger *slog.Logger) DriverService {
	return &driverService{gw: gw, store: st, publisher: pub, feed: feed, logger: logger}
}

func (s *driverService) FetchDrivers(ctx context.Context) ([]models.Driver, error) {
	s.store.Drivers.Begin()

	drivers, err := s.gw.ListDrivers(ctx)
	if err != nil {
		err = models.WrapAction("fetch drivers", err)
		s.store.Drivers.Fail(err)
		return nil, err
	}

	s.store.Drivers.CommitList(drivers)
	return drivers, nil
}

// SetOnline settles the online/offline action and patches the collection.
// An unknown driver id leaves the collection untouched.
func (s *driverService) SetOnline(ctx context.Context, driverID string, online bool) error {
	if err := s.gw.UpdateDriverStatus(ctx, driverID, online); err != nil {
		return models.WrapAction("update driver status", err)
	}

	s.store.Drivers.SetOnline(driverID, online)

	if err := s.publisher.PublishDriverStatus(ctx, driverID, online); err != nil {
		s.logger.Warn("failed to publish driver status", "driver_id", driverID, "err", err)
	}
	s.feed.PushDriverStatus(models.DriverStatusMessage{
		DriverID:  driverID,
		IsOnline:  online,
		Timestamp: time.Now(),
	})
	return nil
}

func (s *driverService) UpdateLocation(ctx context.Context, driverID string, loc models.Location) error {
	if err := s.gw.UpdateDriverLocation(ctx, driverID, loc); err != nil {
		return models.WrapAction("update driver location", err)
	}

	s.store.Drivers.SetLocation(driverID, loc)

	if err := s.publisher.PublishDriverLocation(ctx, driverID, loc); err != nil {
		s.logger.Warn("failed to publish driver location", "driver_id", driverID, "err", err)
	}
	s.feed.PushDriverLocation(models.DriverLocationMessage{
		DriverID:  driverID,
		Location:  loc,
		Timestamp: time.Now(),
	})
	return nil
}

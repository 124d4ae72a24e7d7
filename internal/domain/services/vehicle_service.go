package services

import (
	"context"
	"log/slog"

	"ridehub/internal/domain/models"
	"ridehub/internal/store"
)

type VehicleGateway interface {
	ListVehicles(ctx context.Context, ownerID string) ([]models.Vehicle, error)
	ListNearbyVehicles(ctx context.Context, lat, lng float64) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, draft models.VehicleDraft) (models.Vehicle, error)
}

type VehicleService interface {
	FetchVehicles(ctx context.Context, ownerID string) ([]models.Vehicle, error)
	FetchNearbyVehicles(ctx context.Context, lat, lng float64) ([]models.Vehicle, error)
	AddVehicle(ctx context.Context, draft models.VehicleDraft) (*models.Vehicle, error)
	SetAvailability(id string, available bool) bool
	SetLocation(id string, loc models.Location) bool
	RemoveVehicle(id string) bool
}

type vehicleService struct {
	gw     VehicleGateway
	store  *store.Store
	logger *slog.Logger
}

func NewVehicleService(gw VehicleGateway, st *store.Store, logger *slog.Logger) VehicleService {
	return &vehicleService{gw: gw, store: st, logger: logger}
}

// FetchVehicles loads the fleet, scoped to an owner when one is given.
func (s *vehicleService) FetchVehicles(ctx context.Context, ownerID string) ([]models.Vehicle, error) {
	s.store.Vehicles.Begin()

	vehicles, err := s.gw.ListVehicles(ctx, ownerID)
	if err != nil {
		err = models.WrapAction("fetch vehicles", err)
		s.store.Vehicles.Fail(err)
		return nil, err
	}

	s.store.Vehicles.CommitList(vehicles)
	return vehicles, nil
}

func (s *vehicleService) FetchNearbyVehicles(ctx context.Context, lat, lng float64) ([]models.Vehicle, error) {
	vehicles, err := s.gw.ListNearbyVehicles(ctx, lat, lng)
	if err != nil {
		return nil, models.WrapAction("fetch nearby vehicles", err)
	}
	s.store.Vehicles.CommitNearby(vehicles)
	return vehicles, nil
}

func (s *vehicleService) AddVehicle(ctx context.Context, draft models.VehicleDraft) (*models.Vehicle, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	s.store.Vehicles.Begin()
	vehicle, err := s.gw.CreateVehicle(ctx, draft)
	if err != nil {
		err = models.WrapAction("add vehicle", err)
		s.store.Vehicles.Fail(err)
		return nil, err
	}

	s.store.Vehicles.CommitAdded(vehicle)
	s.logger.Info("vehicle added", "vehicle_id", vehicle.ID, "owner_id", vehicle.OwnerID)
	return &vehicle, nil
}

// SetAvailability is a synchronous local patch: no remote round-trip, and an
// unknown id is a silent no-op.
func (s *vehicleService) SetAvailability(id string, available bool) bool {
	return s.store.Vehicles.SetAvailability(id, available)
}

func (s *vehicleService) SetLocation(id string, loc models.Location) bool {
	return s.store.Vehicles.SetLocation(id, loc)
}

func (s *vehicleService) RemoveVehicle(id string) bool {
	return s.store.Vehicles.Remove(id)
}

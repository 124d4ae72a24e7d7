// Package gateway is the mock remote boundary: every call looks up fixture
// data after an artificial delay. A real deployment swaps this for network
// calls with the same pending/settled contract; tests construct it with zero
// latency so nothing depends on real timing.
package gateway

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"ridehub/internal/domain/models"
)

const surchargeBound = 20 // fare surcharge is in [0, surchargeBound)

type Gateway struct {
	latency time.Duration

	mu       sync.Mutex
	rnd      *rand.Rand
	users    []fixtureUser
	trips    []models.Trip
	vehicles []models.Vehicle
	drivers  []models.Driver
}

func New(latency time.Duration) *Gateway {
	return &Gateway{
		latency:  latency,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		users:    fixtureUsers(),
		trips:    fixtureTrips(),
		vehicles: fixtureVehicles(),
		drivers:  fixtureDrivers(),
	}
}

// wait simulates the remote round-trip, honoring cancellation.
func (g *Gateway) wait(ctx context.Context) error {
	if g.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Authenticate matches email and credential against the fixed identity table.
func (g *Gateway) Authenticate(ctx context.Context, email, password string) (models.Identity, error) {
	if err := g.wait(ctx); err != nil {
		return models.Identity{}, err
	}
	hashed := hashPassword(password)
	for _, u := range g.users {
		if u.identity.Email == email && u.passwordHash == hashed {
			return u.identity, nil
		}
	}
	return models.Identity{}, models.ErrInvalidCredentials
}

// ListTrips returns the trips where the given user is the customer or the
// driver.
func (g *Gateway) ListTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []models.Trip
	for _, t := range g.trips {
		if t.CustomerID == userID || t.DriverID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

// CreateTrip synthesizes a new trip from a validated draft: fresh identifier,
// requested status and a fare of the tier base plus a random surcharge.
func (g *Gateway) CreateTrip(ctx context.Context, draft models.TripDraft) (models.Trip, error) {
	if err := g.wait(ctx); err != nil {
		return models.Trip{}, err
	}

	g.mu.Lock()
	surcharge := float64(g.rnd.Intn(surchargeBound))
	g.mu.Unlock()

	method := draft.PaymentMethod
	if method == "" {
		method = models.PayCash
	}

	trip := models.Trip{
		ID:            uuid.NewString(),
		CustomerID:    draft.CustomerID,
		Status:        models.TripRequested,
		Tier:          draft.Tier,
		Pickup:        draft.Pickup,
		Dropoff:       draft.Dropoff,
		Fare:          models.BaseFare(draft.Tier) + surcharge,
		DistanceKm:    draft.DistanceKm,
		DurationMin:   draft.DurationMin,
		RequestTime:   time.Now(),
		PaymentMethod: method,
		PaymentStatus: models.PaymentPending,
	}

	g.mu.Lock()
	g.trips = append(g.trips, trip)
	g.mu.Unlock()
	return trip, nil
}

// ListVehicles returns the fleet, optionally scoped to one owner.
func (g *Gateway) ListVehicles(ctx context.Context, ownerID string) ([]models.Vehicle, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if ownerID == "" {
		out := make([]models.Vehicle, len(g.vehicles))
		copy(out, g.vehicles)
		return out, nil
	}
	var out []models.Vehicle
	for _, v := range g.vehicles {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

// ListNearbyVehicles returns available vehicles within a coarse bounding box
// of the given point. Not a real distance calculation; fixture logic only.
func (g *Gateway) ListNearbyVehicles(ctx context.Context, lat, lng float64) ([]models.Vehicle, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []models.Vehicle
	for _, v := range g.vehicles {
		if !v.IsAvailable || v.Location == nil {
			continue
		}
		if math.Abs(v.Location.Lat-lat) < 0.1 && math.Abs(v.Location.Lng-lng) < 0.1 {
			out = append(out, v)
		}
	}
	return out, nil
}

// CreateVehicle registers a vehicle from a validated fleet-management draft.
func (g *Gateway) CreateVehicle(ctx context.Context, draft models.VehicleDraft) (models.Vehicle, error) {
	if err := g.wait(ctx); err != nil {
		return models.Vehicle{}, err
	}
	v := models.Vehicle{
		ID:             uuid.NewString(),
		OwnerID:        draft.OwnerID,
		Tier:           draft.Tier,
		Make:           draft.Make,
		Model:          draft.Model,
		Year:           draft.Year,
		LicensePlate:   draft.LicensePlate,
		Color:          draft.Color,
		IsCompanyOwned: draft.IsCompanyOwned,
		IsAvailable:    true,
	}
	g.mu.Lock()
	g.vehicles = append(g.vehicles, v)
	g.mu.Unlock()
	return v, nil
}

func (g *Gateway) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.Driver, len(g.drivers))
	copy(out, g.drivers)
	return out, nil
}

// UpdateDriverStatus settles the driver online/offline action. The fixture
// record is updated so a later refetch agrees with the patched store.
func (g *Gateway) UpdateDriverStatus(ctx context.Context, driverID string, online bool) error {
	if err := g.wait(ctx); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.drivers {
		if g.drivers[i].ID == driverID {
			g.drivers[i].IsOnline = online
			break
		}
	}
	return nil
}

func (g *Gateway) UpdateDriverLocation(ctx context.Context, driverID string, loc models.Location) error {
	if err := g.wait(ctx); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.drivers {
		if g.drivers[i].ID == driverID {
			l := loc
			g.drivers[i].Location = &l
			break
		}
	}
	return nil
}

// SignOut always succeeds; there is nothing to tear down on the fixture side
// beyond the round-trip itself.
func (g *Gateway) SignOut(ctx context.Context) error {
	return g.wait(ctx)
}

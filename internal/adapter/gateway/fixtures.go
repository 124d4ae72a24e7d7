package gateway

import (
	"time"

	"ridehub/internal/domain/models"
)

// Demo accounts. Every account signs in with the same fixed credential.
const demoPassword = "password"

type fixtureUser struct {
	identity     models.Identity
	passwordHash string
}

func fixtureUsers() []fixtureUser {
	hash := hashPassword(demoPassword)
	ids := []models.Identity{
		{ID: "1", Name: "John Customer", Email: "customer@example.com", Phone: "123-456-7890", Role: models.RoleCustomer},
		{ID: "2", Name: "Dave Driver", Email: "driver@example.com", Phone: "123-456-7891", Role: models.RoleDriver},
		{ID: "3", Name: "Oliver Owner", Email: "owner@example.com", Phone: "123-456-7892", Role: models.RoleOwner},
		{ID: "4", Name: "Alice Admin", Email: "admin@example.com", Phone: "123-456-7893", Role: models.RoleAdmin},
	}
	users := make([]fixtureUser, 0, len(ids))
	for _, id := range ids {
		users = append(users, fixtureUser{identity: id, passwordHash: hash})
	}
	return users
}

func fixtureTrips() []models.Trip {
	pickupAt := time.Date(2025, 1, 15, 10, 35, 0, 0, time.Local)
	dropoffAt := time.Date(2025, 1, 15, 10, 50, 0, 0, time.Local)
	return []models.Trip{
		{
			ID:            "1",
			CustomerID:    "1",
			DriverID:      "2",
			VehicleID:     "1",
			Status:        models.TripCompleted,
			Tier:          models.TierStandard,
			Pickup:        models.Location{Lat: 40.7128, Lng: -74.0060, Address: "123 Broadway, New York, NY"},
			Dropoff:       models.Location{Lat: 40.7484, Lng: -73.9857, Address: "350 Fifth Avenue, New York, NY"},
			Fare:          25.50,
			DistanceKm:    3.7,
			DurationMin:   15,
			RequestTime:   time.Date(2025, 1, 15, 10, 30, 0, 0, time.Local),
			PickupTime:    &pickupAt,
			DropoffTime:   &dropoffAt,
			PaymentMethod: models.PayCard,
			PaymentStatus: models.PaymentCompleted,
		},
		{
			ID:            "2",
			CustomerID:    "1",
			Status:        models.TripRequested,
			Tier:          models.TierPremium,
			Pickup:        models.Location{Lat: 40.7484, Lng: -73.9857, Address: "350 Fifth Avenue, New York, NY"},
			Dropoff:       models.Location{Lat: 40.7580, Lng: -73.9855, Address: "45 Rockefeller Plaza, New York, NY"},
			Fare:          35.00,
			DistanceKm:    2.5,
			DurationMin:   10,
			RequestTime:   time.Now(),
			PaymentMethod: models.PayCash,
			PaymentStatus: models.PaymentPending,
		},
	}
}

func fixtureVehicles() []models.Vehicle {
	return []models.Vehicle{
		{
			ID: "1", OwnerID: "3", Tier: models.TierStandard,
			Make: "Toyota", Model: "Camry", Year: 2023,
			LicensePlate: "ABC123", Color: "Silver",
			IsCompanyOwned: true, IsAvailable: true,
			Location: &models.Location{Lat: 40.7138, Lng: -74.0070},
		},
		{
			ID: "2", OwnerID: "3", Tier: models.TierPremium,
			Make: "Mercedes", Model: "E-Class", Year: 2024,
			LicensePlate: "XYZ789", Color: "Black",
			IsCompanyOwned: true, IsAvailable: true,
			Location: &models.Location{Lat: 40.7150, Lng: -74.0080},
		},
		{
			ID: "3", OwnerID: "5", Tier: models.TierStandard,
			Make: "Honda", Model: "Accord", Year: 2022,
			LicensePlate: "DEF456", Color: "White",
			IsCompanyOwned: false, IsAvailable: true,
			Location: &models.Location{Lat: 40.7160, Lng: -74.0050},
		},
	}
}

func fixtureDrivers() []models.Driver {
	return []models.Driver{
		{ID: "1", UserID: "2", VehicleID: "1", IsOnline: true, Rating: 4.8, Location: &models.Location{Lat: 40.7138, Lng: -74.0070}},
		{ID: "2", UserID: "5", VehicleID: "2", IsOnline: true, Rating: 4.9, Location: &models.Location{Lat: 40.7150, Lng: -74.0080}},
		{ID: "3", UserID: "6", VehicleID: "3", IsOnline: false, Rating: 4.7, Location: &models.Location{Lat: 40.7160, Lng: -74.0050}},
	}
}

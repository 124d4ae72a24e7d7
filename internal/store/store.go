// Package store holds the dashboard state: one slice per domain collection,
// each carrying the request status of its latest action. The container is
// constructed explicitly and passed by reference; nothing here is a process
// singleton, so tests build and throw away stores freely.
//
// Concurrent fetches of the same kind are intentionally not fenced: each one
// flips the slice to loading and the later settlement overwrites the earlier
// one's commit. Last write wins on both the status flag and the collection.
package store

type Store struct {
	Auth     *AuthState
	Trips    *TripsState
	Vehicles *VehiclesState
	Drivers  *DriversState
}

func New() *Store {
	return &Store{
		Auth:     newAuthState(),
		Trips:    newTripsState(),
		Vehicles: newVehiclesState(),
		Drivers:  newDriversState(),
	}
}

// Reset returns every slice to its initial empty state. Used on sign-out and
// in test teardown.
func (s *Store) Reset() {
	s.Auth.reset()
	s.Trips.reset()
	s.Vehicles.reset()
	s.Drivers.reset()
}

package store

import (
	"sync"

	"ridehub/internal/domain/models"
)

// TripsState holds the trip collection plus the active trip the booking flow
// is tracking. Trips are never deleted, only appended and patched; consumers
// filter what they need.
type TripsState struct {
	mu     sync.RWMutex
	trips  []models.Trip
	active *models.Trip
	status Status
	errMsg string
}

func newTripsState() *TripsState {
	return &TripsState{status: StatusIdle}
}

func (t *TripsState) Begin() {
	t.mu.Lock()
	t.status = StatusLoading
	t.errMsg = ""
	t.mu.Unlock()
}

func (t *TripsState) Fail(err error) {
	t.mu.Lock()
	t.status = StatusFailed
	t.errMsg = err.Error()
	t.mu.Unlock()
}

// CommitList replaces the collection with a settled fetch result.
func (t *TripsState) CommitList(trips []models.Trip) {
	t.mu.Lock()
	t.trips = trips
	t.status = StatusSucceeded
	t.mu.Unlock()
}

// CommitCreated appends a newly requested trip and marks it active.
func (t *TripsState) CommitCreated(trip models.Trip) {
	t.mu.Lock()
	t.trips = append(t.trips, trip)
	c := trip
	t.active = &c
	t.status = StatusSucceeded
	t.mu.Unlock()
}

// Patch applies fn to the trip with the given id. Unknown ids are a silent
// no-op; the boolean tells the caller whether anything changed.
func (t *TripsState) Patch(id string, fn func(*models.Trip)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.trips {
		if t.trips[i].ID == id {
			fn(&t.trips[i])
			if t.active != nil && t.active.ID == id {
				c := t.trips[i]
				t.active = &c
			}
			return true
		}
	}
	return false
}

func (t *TripsState) Get(id string) (models.Trip, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, trip := range t.trips {
		if trip.ID == id {
			return trip, true
		}
	}
	return models.Trip{}, false
}

// List returns a copy of the collection.
func (t *TripsState) List() []models.Trip {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]models.Trip, len(t.trips))
	copy(out, t.trips)
	return out
}

func (t *TripsState) Active() (models.Trip, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.active == nil {
		return models.Trip{}, false
	}
	return *t.active, true
}

func (t *TripsState) ClearActive() {
	t.mu.Lock()
	t.active = nil
	t.mu.Unlock()
}

func (t *TripsState) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

func (t *TripsState) Err() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.errMsg
}

func (t *TripsState) reset() {
	t.mu.Lock()
	t.trips = nil
	t.active = nil
	t.status = StatusIdle
	t.errMsg = ""
	t.mu.Unlock()
}

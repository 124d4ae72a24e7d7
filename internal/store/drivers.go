package store

import (
	"sync"

	"ridehub/internal/domain/models"
)

type DriversState struct {
	mu      sync.RWMutex
	drivers []models.Driver
	status  Status
	errMsg  string
}

func newDriversState() *DriversState {
	return &DriversState{status: StatusIdle}
}

func (d *DriversState) Begin() {
	d.mu.Lock()
	d.status = StatusLoading
	d.errMsg = ""
	d.mu.Unlock()
}

func (d *DriversState) Fail(err error) {
	d.mu.Lock()
	d.status = StatusFailed
	d.errMsg = err.Error()
	d.mu.Unlock()
}

func (d *DriversState) CommitList(drivers []models.Driver) {
	d.mu.Lock()
	d.drivers = drivers
	d.status = StatusSucceeded
	d.mu.Unlock()
}

// SetOnline flips the online flag. Unknown ids are a silent no-op.
func (d *DriversState) SetOnline(id string, online bool) bool {
	return d.patch(id, func(dr *models.Driver) {
		dr.IsOnline = online
	})
}

func (d *DriversState) SetLocation(id string, loc models.Location) bool {
	return d.patch(id, func(dr *models.Driver) {
		l := loc
		dr.Location = &l
	})
}

func (d *DriversState) SetCurrentTrip(id, tripID string) bool {
	return d.patch(id, func(dr *models.Driver) {
		dr.CurrentTripID = tripID
	})
}

func (d *DriversState) patch(id string, fn func(*models.Driver)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.drivers {
		if d.drivers[i].ID == id {
			fn(&d.drivers[i])
			return true
		}
	}
	return false
}

func (d *DriversState) Get(id string) (models.Driver, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, dr := range d.drivers {
		if dr.ID == id {
			return dr, true
		}
	}
	return models.Driver{}, false
}

func (d *DriversState) List() []models.Driver {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Driver, len(d.drivers))
	copy(out, d.drivers)
	return out
}

func (d *DriversState) Status() Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

func (d *DriversState) Err() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.errMsg
}

func (d *DriversState) reset() {
	d.mu.Lock()
	d.drivers = nil
	d.status = StatusIdle
	d.errMsg = ""
	d.mu.Unlock()
}

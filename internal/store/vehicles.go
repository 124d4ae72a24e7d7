package store

import (
	"sync"

	"ridehub/internal/domain/models"
)

// VehiclesState holds the fleet collection plus the nearby subset the booking
// map displays.
type VehiclesState struct {
	mu       sync.RWMutex
	vehicles []models.Vehicle
	nearby   []models.Vehicle
	status   Status
	errMsg   string
}

func newVehiclesState() *VehiclesState {
	return &VehiclesState{status: StatusIdle}
}

func (v *VehiclesState) Begin() {
	v.mu.Lock()
	v.status = StatusLoading
	v.errMsg = ""
	v.mu.Unlock()
}

func (v *VehiclesState) Fail(err error) {
	v.mu.Lock()
	v.status = StatusFailed
	v.errMsg = err.Error()
	v.mu.Unlock()
}

func (v *VehiclesState) CommitList(vehicles []models.Vehicle) {
	v.mu.Lock()
	v.vehicles = vehicles
	v.status = StatusSucceeded
	v.mu.Unlock()
}

// CommitNearby replaces only the nearby subset; the main collection and the
// status flag are untouched, matching how the source treated this fetch.
func (v *VehiclesState) CommitNearby(vehicles []models.Vehicle) {
	v.mu.Lock()
	v.nearby = vehicles
	v.mu.Unlock()
}

// CommitAdded appends a newly registered vehicle from a settled add action.
func (v *VehiclesState) CommitAdded(vehicle models.Vehicle) {
	v.mu.Lock()
	v.vehicles = append(v.vehicles, vehicle)
	v.status = StatusSucceeded
	v.mu.Unlock()
}

// SetAvailability toggles the flag on a vehicle. Unknown ids are a silent
// no-op.
func (v *VehiclesState) SetAvailability(id string, available bool) bool {
	return v.patch(id, func(veh *models.Vehicle) {
		veh.IsAvailable = available
	})
}

func (v *VehiclesState) SetLocation(id string, loc models.Location) bool {
	return v.patch(id, func(veh *models.Vehicle) {
		l := loc
		veh.Location = &l
	})
}

func (v *VehiclesState) Remove(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.vehicles {
		if v.vehicles[i].ID == id {
			v.vehicles = append(v.vehicles[:i], v.vehicles[i+1:]...)
			return true
		}
	}
	return false
}

func (v *VehiclesState) patch(id string, fn func(*models.Vehicle)) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.vehicles {
		if v.vehicles[i].ID == id {
			fn(&v.vehicles[i])
			return true
		}
	}
	return false
}

func (v *VehiclesState) Get(id string) (models.Vehicle, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, veh := range v.vehicles {
		if veh.ID == id {
			return veh, true
		}
	}
	return models.Vehicle{}, false
}

func (v *VehiclesState) List() []models.Vehicle {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]models.Vehicle, len(v.vehicles))
	copy(out, v.vehicles)
	return out
}

func (v *VehiclesState) Nearby() []models.Vehicle {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]models.Vehicle, len(v.nearby))
	copy(out, v.nearby)
	return out
}

func (v *VehiclesState) Status() Status {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.status
}

func (v *VehiclesState) Err() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.errMsg
}

func (v *VehiclesState) reset() {
	v.mu.Lock()
	v.vehicles = nil
	v.nearby = nil
	v.status = StatusIdle
	v.errMsg = ""
	v.mu.Unlock()
}

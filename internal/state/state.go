package state

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"energy-dashboard-backend/config"
	"energy-dashboard-backend/internal/model"
	"energy-dashboard-backend/internal/store"
)

// Snapshot is a consistent copy of everything the aggregation engine needs:
// the device collection, the paired simulation map, the projection horizon
// and the electricity rate, all captured under one lock.
type Snapshot struct {
	Devices       []model.Device
	Simulated     map[string]bool
	IntervalHours int
	RateCents     float64
}

// State is the single shared container for all mutable application state.
// The device collection and its paired simulation map are only ever mutated
// inside the same critical section, so no reader can observe one without the
// other's matching update.
type State struct {
	mu    sync.RWMutex
	store store.Store

	sim              map[string]bool
	intervalHours    int
	allowedIntervals []int

	selected string

	settings      Settings
	allowedFloors []int
}

// New constructs the application state around an initialized device store,
// with settings and simulation choices taken from configuration.
func New(s store.Store, cfg *config.Config) *State {
	return &State{
		store:            s,
		sim:              make(map[string]bool),
		intervalHours:    cfg.Simulation.DefaultInterval,
		allowedIntervals: append([]int(nil), cfg.Simulation.TimeIntervals...),
		settings: Settings{
			ElectricityRate: cfg.Settings.ElectricityRate,
			UserName:        cfg.Settings.UserName,
			UserFloor:       cfg.Settings.UserFloor,
		},
		allowedFloors: append([]int(nil), cfg.Settings.AllowedFloors...),
	}
}

// SeedSimulation installs the initial simulated state from the data source.
// Devices without an entry default to off; entries for ids the store does not
// know are dropped, keeping the simulation domain inside the device set.
func (st *State) SeedSimulation(ctx context.Context, sim map[string]bool, intervalHours int) error {
	devices, err := st.store.ListDevices(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed simulation state: %w", err)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.sim = make(map[string]bool, len(devices))
	for _, d := range devices {
		st.sim[d.ID] = sim[d.ID]
	}
	if st.intervalValid(intervalHours) {
		st.intervalHours = intervalHours
	}
	return nil
}

// AddDevice validates the form, synthesizes the new device and registers it
// in both the store and the simulation map (defaulting to off).
func (st *State) AddDevice(ctx context.Context, form model.DeviceForm) (model.Device, error) {
	if errs := store.ValidateDeviceForm(form); errs != nil {
		return model.Device{}, errs
	}

	device := store.BuildDevice(form, time.Now())

	st.mu.Lock()
	defer st.mu.Unlock()

	if err := st.store.CreateDevice(ctx, device); err != nil {
		return model.Device{}, err
	}
	st.sim[device.ID] = false
	return device, nil
}

// UpdateDevice merges a partial edit into an existing device. Name, icon and
// wattage are editable; id and usage logs are not.
func (st *State) UpdateDevice(ctx context.Context, id string, patch model.DevicePatch) error {
	if errs := validatePatch(patch); errs != nil {
		return errs
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return st.store.UpdateDevice(ctx, id, patch)
}

// RemoveDevice deletes a device together with its simulation entry, and
// clears the detail-view selection if it pointed at the removed device.
func (st *State) RemoveDevice(ctx context.Context, id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := st.store.DeleteDevice(ctx, id); err != nil {
		return err
	}
	delete(st.sim, id)
	if st.selected == id {
		st.selected = ""
	}
	return nil
}

// Device returns a single device by id.
func (st *State) Device(ctx context.Context, id string) (model.Device, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.store.GetDevice(ctx, id)
}

// Devices returns the device collection in insertion order.
func (st *State) Devices(ctx context.Context) ([]model.Device, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.store.ListDevices(ctx)
}

// Toggle flips the simulated on/off flag for a device and returns the new
// value. Unknown ids are an error rather than implicitly growing the map.
func (st *State) Toggle(id string) (bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	current, ok := st.sim[id]
	if !ok {
		return false, model.ErrNotFound
	}
	st.sim[id] = !current
	return !current, nil
}

// SetIntervalHours changes the projection horizon. Only the configured
// enumerated choices are accepted.
func (st *State) SetIntervalHours(hours int) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.intervalValid(hours) {
		return model.FieldErrors{"time_interval": fmt.Sprintf("must be one of %v", st.allowedIntervals)}
	}
	st.intervalHours = hours
	return nil
}

// IntervalHours returns the current projection horizon.
func (st *State) IntervalHours() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.intervalHours
}

// Simulated returns a copy of the simulation map.
func (st *State) Simulated() map[string]bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return copySim(st.sim)
}

// Select marks a device as the detail-view selection.
func (st *State) Select(ctx context.Context, id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, err := st.store.GetDevice(ctx, id); err != nil {
		return err
	}
	st.selected = id
	return nil
}

// ClearSelection drops the detail-view selection.
func (st *State) ClearSelection() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.selected = ""
}

// Selected returns the selected device id, empty when nothing is selected.
func (st *State) Selected() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.selected
}

// Snapshot captures the aggregation inputs atomically.
func (st *State) Snapshot(ctx context.Context) (Snapshot, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	devices, err := st.store.ListDevices(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Devices:       devices,
		Simulated:     copySim(st.sim),
		IntervalHours: st.intervalHours,
		RateCents:     st.settings.ElectricityRate,
	}, nil
}

func (st *State) intervalValid(hours int) bool {
	for _, allowed := range st.allowedIntervals {
		if hours == allowed {
			return true
		}
	}
	return false
}

func copySim(sim map[string]bool) map[string]bool {
	out := make(map[string]bool, len(sim))
	for id, on := range sim {
		out[id] = on
	}
	return out
}

// validatePatch applies the device-edit contract to whichever fields the
// patch actually carries.
func validatePatch(patch model.DevicePatch) model.FieldErrors {
	errs := model.FieldErrors{}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		errs["name"] = "name is required"
	}
	if patch.WattsPerHour != nil && *patch.WattsPerHour <= 0 {
		errs["watts_per_hour"] = "wattage must be greater than 0"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

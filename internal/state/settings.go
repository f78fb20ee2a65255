package state

import (
	"fmt"
	"math"
	"strings"

	"energy-dashboard-backend/internal/model"
)

// Settings holds the user-adjustable preferences. ElectricityRate feeds the
// cost conversions; name and floor identify the user on the leaderboard.
type Settings struct {
	ElectricityRate float64 `json:"electricity_rate"` // cents per kWh
	UserName        string  `json:"user_name"`
	UserFloor       int     `json:"user_floor"`
}

// SetRate replaces the electricity rate. NaN and non-positive values are
// rejected and the prior rate kept.
func (st *State) SetRate(rateCents float64) error {
	if math.IsNaN(rateCents) || rateCents <= 0 {
		return model.FieldErrors{"electricity_rate": "rate must be a positive number"}
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.settings.ElectricityRate = rateCents
	return nil
}

// SetUserName replaces the display name; it must be non-empty after trimming.
func (st *State) SetUserName(name string) error {
	if strings.TrimSpace(name) == "" {
		return model.FieldErrors{"user_name": "name is required"}
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.settings.UserName = name
	return nil
}

// SetUserFloor replaces the user's floor, which must be one of the configured
// floors.
func (st *State) SetUserFloor(floor int) error {
	if !st.floorAllowed(floor) {
		return model.FieldErrors{"user_floor": fmt.Sprintf("floor must be one of %v", st.allowedFloors)}
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.settings.UserFloor = floor
	return nil
}

// UpdateProfile applies the display name and floor together; neither changes
// unless both are valid.
func (st *State) UpdateProfile(name string, floor int) error {
	errs := model.FieldErrors{}
	if strings.TrimSpace(name) == "" {
		errs["user_name"] = "name is required"
	}
	if !st.floorAllowed(floor) {
		errs["user_floor"] = fmt.Sprintf("floor must be one of %v", st.allowedFloors)
	}
	if len(errs) > 0 {
		return errs
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.settings.UserName = name
	st.settings.UserFloor = floor
	return nil
}

// allowedFloors is fixed at construction, so reading it needs no lock.
func (st *State) floorAllowed(floor int) bool {
	for _, f := range st.allowedFloors {
		if floor == f {
			return true
		}
	}
	return false
}

// Settings returns a copy of the current settings.
func (st *State) Settings() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.settings
}

// AllowedFloors returns the configured floor choices.
func (st *State) AllowedFloors() []int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return append([]int(nil), st.allowedFloors...)
}

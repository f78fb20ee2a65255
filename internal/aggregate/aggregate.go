package aggregate

import (
	"energy-dashboard-backend/internal/energy"
	"energy-dashboard-backend/internal/model"
	"energy-dashboard-backend/internal/state"
)

// Fixed calendar approximations: a 30-day month and a 365-day year. The
// projection figures depend on these exact constants.
const (
	hoursPerMonth = 720
	hoursPerYear  = 8760
)

// SavedPerDevice maps every device id to the energy saved over the horizon.
// Only a device explicitly toggled off saves anything; a device that is on,
// or that the simulation map does not know, contributes zero.
func SavedPerDevice(devices []model.Device, sim map[string]bool, hours float64) map[string]float64 {
	saved := make(map[string]float64, len(devices))
	for _, d := range devices {
		if on, ok := sim[d.ID]; ok && !on {
			saved[d.ID] = energy.Saved(d, hours)
		} else {
			saved[d.ID] = 0
		}
	}
	return saved
}

// TotalSaved sums SavedPerDevice across the collection.
func TotalSaved(devices []model.Device, sim map[string]bool, hours float64) float64 {
	var total float64
	for _, kWh := range SavedPerDevice(devices, sim, hours) {
		total += kWh
	}
	return total
}

// Projection extrapolates a savings total over the fixed calendar horizons.
type Projection struct {
	MonthlyKWh float64 `json:"monthly_kwh"`
	YearlyKWh  float64 `json:"yearly_kwh"`
}

// Projections scales a total measured over intervalHours up to a month and a
// year.
func Projections(totalKWh float64, intervalHours int) Projection {
	return Projection{
		MonthlyKWh: totalKWh * (hoursPerMonth / float64(intervalHours)),
		YearlyKWh:  totalKWh * (hoursPerYear / float64(intervalHours)),
	}
}

// DeviceSaving is one per-device slice of the savings breakdown, carried only
// for devices that are actually off.
type DeviceSaving struct {
	DeviceID     string  `json:"device_id"`
	Name         string  `json:"name"`
	EnergyKWh    float64 `json:"energy_kwh"`
	MoneyDollars float64 `json:"money_dollars"`
}

// Summary is the full savings picture for one snapshot. HasSavings
// distinguishes "every device is running" from a genuine all-zero result, so
// presentation can show an empty state instead of an empty chart.
type Summary struct {
	IntervalHours  int                `json:"interval_hours"`
	RateCents      float64            `json:"rate_cents"`
	HasSavings     bool               `json:"has_savings"`
	PerDeviceKWh   map[string]float64 `json:"per_device_kwh"`
	Breakdown      []DeviceSaving     `json:"breakdown"`
	TotalKWh       float64            `json:"total_kwh"`
	TotalFormatted string             `json:"total_formatted"`
	TotalDollars   float64            `json:"total_dollars"`
	MonthlyKWh     float64            `json:"monthly_kwh"`
	YearlyKWh      float64            `json:"yearly_kwh"`
	MonthlyDollars float64            `json:"monthly_dollars"`
	YearlyDollars  float64            `json:"yearly_dollars"`
}

// Summarize computes the aggregate savings for a consistent state snapshot.
func Summarize(snap state.Snapshot) Summary {
	hours := float64(snap.IntervalHours)
	perDevice := SavedPerDevice(snap.Devices, snap.Simulated, hours)

	var total float64
	breakdown := make([]DeviceSaving, 0, len(snap.Devices))
	for _, d := range snap.Devices {
		kWh := perDevice[d.ID]
		total += kWh

		if on, ok := snap.Simulated[d.ID]; ok && !on {
			breakdown = append(breakdown, DeviceSaving{
				DeviceID:     d.ID,
				Name:         d.Name,
				EnergyKWh:    kWh,
				MoneyDollars: energy.Cost(snap.RateCents, kWh),
			})
		}
	}

	projection := Projections(total, snap.IntervalHours)
	return Summary{
		IntervalHours:  snap.IntervalHours,
		RateCents:      snap.RateCents,
		HasSavings:     len(breakdown) > 0,
		PerDeviceKWh:   perDevice,
		Breakdown:      breakdown,
		TotalKWh:       total,
		TotalFormatted: energy.Format(total),
		TotalDollars:   energy.Cost(snap.RateCents, total),
		MonthlyKWh:     projection.MonthlyKWh,
		YearlyKWh:      projection.YearlyKWh,
		MonthlyDollars: energy.Cost(snap.RateCents, projection.MonthlyKWh),
		YearlyDollars:  energy.Cost(snap.RateCents, projection.YearlyKWh),
	}
}

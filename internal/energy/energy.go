package energy

import (
	"fmt"
	"math"

	"energy-dashboard-backend/internal/model"
)

// Consumption converts a wattage draw sustained for the given number of hours
// into kilowatt-hours. Inputs are not range-checked here; callers own
// validation.
func Consumption(watts, hours float64) float64 {
	return (watts / 1000) * hours
}

// Saved is the energy a device would have drawn had it run for hoursOff;
// keeping it off for that long saves exactly its consumption.
func Saved(d model.Device, hoursOff float64) float64 {
	return Consumption(d.WattsPerHour, hoursOff)
}

// Cost converts kilowatt-hours to dollars given a rate in cents per kWh.
// No rounding is applied; formatting is the caller's concern.
func Cost(rateCents, kWh float64) float64 {
	return (rateCents / 100) * kWh
}

// Format renders an energy value with its natural unit: magnitudes under
// 1 kWh as whole watt-hours, everything else as kWh with two decimals.
// Downstream displays depend on this exact threshold and rounding.
func Format(kWh float64) string {
	if math.Abs(kWh) < 1 {
		return fmt.Sprintf("%d Wh", int64(math.Round(kWh*1000)))
	}
	return fmt.Sprintf("%.2f kWh", kWh)
}

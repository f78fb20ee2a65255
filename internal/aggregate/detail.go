package aggregate

import (
	"strings"

	"energy-dashboard-backend/internal/energy"
	"energy-dashboard-backend/internal/model"
)

// UsagePoint is one day of a device's usage series with its energy and cost.
type UsagePoint struct {
	Date        string  `json:"date"`
	Day         string  `json:"day"` // day-of-month label for chart axes
	HoursOn     float64 `json:"hours_on"`
	EnergyKWh   float64 `json:"energy_kwh"`
	CostDollars float64 `json:"cost_dollars"`
}

// Detail is the per-device drill-down: the chronological usage series plus
// the totals and averages shown on the device page.
type Detail struct {
	Series                  []UsagePoint `json:"series"`
	TotalEnergyKWh          float64      `json:"total_energy_kwh"`
	TotalCostDollars        float64      `json:"total_cost_dollars"`
	AverageHoursPerDay      float64      `json:"average_hours_per_day"`
	AverageDailyEnergyKWh   float64      `json:"average_daily_energy_kwh"`
	AverageDailyCostDollars float64      `json:"average_daily_cost_dollars"`
	// Saving from running the device one hour less per day.
	HourOffEnergyKWh   float64 `json:"hour_off_energy_kwh"`
	HourOffCostDollars float64 `json:"hour_off_cost_dollars"`
}

// DeviceDetail derives the drill-down view from a device's usage history.
// Usage logs arrive most-recent-first; the series is emitted oldest-first for
// charting.
func DeviceDetail(d model.Device, rateCents float64) Detail {
	series := make([]UsagePoint, 0, len(d.UsageLogs))
	var totalEnergy float64
	for i := len(d.UsageLogs) - 1; i >= 0; i-- {
		l := d.UsageLogs[i]
		kWh := energy.Consumption(d.WattsPerHour, l.HoursOn)
		totalEnergy += kWh
		series = append(series, UsagePoint{
			Date:        l.Date,
			Day:         dayLabel(l.Date),
			HoursOn:     l.HoursOn,
			EnergyKWh:   kWh,
			CostDollars: energy.Cost(rateCents, kWh),
		})
	}

	detail := Detail{
		Series:             series,
		TotalEnergyKWh:     totalEnergy,
		TotalCostDollars:   energy.Cost(rateCents, totalEnergy),
		AverageHoursPerDay: d.AverageHoursPerDay(),
		HourOffEnergyKWh:   energy.Consumption(d.WattsPerHour, 1),
	}
	detail.HourOffCostDollars = energy.Cost(rateCents, detail.HourOffEnergyKWh)

	if n := len(d.UsageLogs); n > 0 {
		detail.AverageDailyEnergyKWh = totalEnergy / float64(n)
		detail.AverageDailyCostDollars = energy.Cost(rateCents, detail.AverageDailyEnergyKWh)
	}
	return detail
}

func dayLabel(date string) string {
	if i := strings.LastIndex(date, "-"); i >= 0 {
		return date[i+1:]
	}
	return date
}

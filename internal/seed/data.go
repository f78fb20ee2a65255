package seed

import (
	"time"

	"energy-dashboard-backend/internal/model"
)

// referenceDate anchors the built-in demo usage histories.
var referenceDate = time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC)

// Default returns the built-in demo dataset used when no seed file is
// configured.
func Default() *Dataset {
	ds := &Dataset{
		Devices: []model.Device{
			{
				ID: "tv", Name: "Television", Icon: "tv", WattsPerHour: 120,
				UsageLogs: demoLogs("tv", 4.5, 3.0, 5.2, 2.8, 4.0, 6.1, 3.5),
			},
			{
				ID: "refrigerator", Name: "Refrigerator", Icon: "kitchen", WattsPerHour: 150,
				UsageLogs: demoLogs("refrigerator", 24, 24, 24, 24, 24, 24, 24),
			},
			{
				ID: "air_conditioner", Name: "Air Conditioner", Icon: "ac_unit", WattsPerHour: 1000,
				UsageLogs: demoLogs("air_conditioner", 6.0, 8.5, 5.0, 7.2, 6.8, 4.5, 9.0),
			},
			{
				ID: "washing_machine", Name: "Washing Machine", Icon: "local_laundry_service", WattsPerHour: 500,
				UsageLogs: demoLogs("washing_machine", 1.5, 0, 2.0, 0, 1.0, 0, 1.5),
			},
			{
				ID: "microwave", Name: "Microwave", Icon: "microwave", WattsPerHour: 1100,
				UsageLogs: demoLogs("microwave", 0.5, 0.3, 0.6, 0.4, 0.5, 0.7, 0.2),
			},
			{
				ID: "laptop", Name: "Laptop", Icon: "laptop", WattsPerHour: 60,
				UsageLogs: demoLogs("laptop", 8.0, 9.5, 7.0, 10.0, 8.5, 6.0, 9.0),
			},
		},
	}

	ds.Simulation.SimulatedState = map[string]bool{
		"tv":              true,
		"refrigerator":    true,
		"air_conditioner": false,
		"washing_machine": false,
		"microwave":       true,
		"laptop":          true,
	}
	ds.Simulation.TimeInterval = 1

	ds.Leaderboard.Entries = []model.LeaderboardEntry{
		{Name: "Emma Chen", Floor: 3, EnergySaved: 48.2, DeviceContributions: map[string]float64{"lighting": 12.5, "entertainment": 18.7, "climate": 17.0}},
		{Name: "Liam Patel", Floor: 1, EnergySaved: 42.9, DeviceContributions: map[string]float64{"lighting": 9.4, "entertainment": 14.5, "climate": 19.0}},
		{Name: "Sofia Rossi", Floor: 5, EnergySaved: 39.3, DeviceContributions: map[string]float64{"lighting": 11.1, "entertainment": 10.2, "climate": 18.0}},
		{Name: "Noah Kim", Floor: 3, EnergySaved: 35.6, DeviceContributions: map[string]float64{"lighting": 8.6, "entertainment": 12.0, "climate": 15.0}},
		{Name: "Ava Novak", Floor: 2, EnergySaved: 31.4, DeviceContributions: map[string]float64{"lighting": 10.4, "entertainment": 9.0, "climate": 12.0}},
		{Name: "Mateo Silva", Floor: 4, EnergySaved: 28.8, DeviceContributions: map[string]float64{"lighting": 7.8, "entertainment": 11.0, "climate": 10.0}},
		{Name: "Mia Johnson", Floor: 2, EnergySaved: 24.1, DeviceContributions: map[string]float64{"lighting": 6.1, "entertainment": 8.0, "climate": 10.0}},
		{Name: "Lucas Weber", Floor: 5, EnergySaved: 19.7, DeviceContributions: map[string]float64{"lighting": 5.7, "entertainment": 6.0, "climate": 8.0}},
	}

	// Floor totals arrive as their own dataset, authoritative as supplied.
	ds.Leaderboard.Floors = []model.FloorData{
		{Floor: 1, TotalEnergySaved: 42.9},
		{Floor: 2, TotalEnergySaved: 55.5},
		{Floor: 3, TotalEnergySaved: 83.8},
		{Floor: 4, TotalEnergySaved: 28.8},
		{Floor: 5, TotalEnergySaved: 59.0},
	}

	return ds
}

// demoLogs builds a most-recent-first history walking back from the
// reference date.
func demoLogs(deviceID string, hours ...float64) []model.UsageLog {
	logs := make([]model.UsageLog, 0, len(hours))
	for i, h := range hours {
		logs = append(logs, model.UsageLog{
			DeviceID: deviceID,
			Seq:      i,
			Date:     referenceDate.AddDate(0, 0, -i).Format("2006-01-02"),
			HoursOn:  h,
		})
	}
	return logs
}

package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"energy-dashboard-backend/internal/model"
)

func TestConsumption(t *testing.T) {
	testCases := []struct {
		name     string
		watts    float64
		hours    float64
		expected float64
	}{
		{name: "typical appliance", watts: 1500, hours: 2, expected: 3.0},
		{name: "fractional hours", watts: 100, hours: 0.5, expected: 0.05},
		{name: "zero hours", watts: 2000, hours: 0, expected: 0},
		{name: "sub-kilowatt device", watts: 60, hours: 10, expected: 0.6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Consumption(tc.watts, tc.hours), 1e-9)
		})
	}
}

func TestSaved(t *testing.T) {
	d := model.Device{ID: "tv", WattsPerHour: 100}
	assert.InDelta(t, 0.6, Saved(d, 6), 1e-9)
}

func TestCost(t *testing.T) {
	// 12.5 cents/kWh over 0.6 kWh is 7.5 cents.
	assert.InDelta(t, 0.075, Cost(12.5, 0.6), 1e-9)
	assert.InDelta(t, 0, Cost(12.5, 0), 1e-9)
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		kWh      float64
		expected string
	}{
		{name: "below threshold", kWh: 0.5, expected: "500 Wh"},
		{name: "at threshold", kWh: 1.0, expected: "1.00 kWh"},
		{name: "just below threshold", kWh: 0.999, expected: "999 Wh"},
		{name: "above threshold", kWh: 12.3456, expected: "12.35 kWh"},
		{name: "zero", kWh: 0, expected: "0 Wh"},
		{name: "negative magnitude below threshold", kWh: -0.25, expected: "-250 Wh"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Format(tc.kWh))
		})
	}
}

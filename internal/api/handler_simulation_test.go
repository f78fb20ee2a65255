package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimulation(t *testing.T) {
	r, _ := setupTestAPI(t)

	var response struct {
		SimulatedState map[string]bool `json:"simulated_state"`
		TimeInterval   int             `json:"time_interval"`
	}
	w := doJSON(t, r, http.MethodGet, "/api/simulation", nil, &response)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]bool{"tv": false, "lamp": false}, response.SimulatedState)
	assert.Equal(t, 1, response.TimeInterval)
}

func TestToggleDevice(t *testing.T) {
	r, _ := setupTestAPI(t)

	var response map[string]any
	w := doJSON(t, r, http.MethodPost, "/api/simulation/devices/tv/toggle", nil, &response)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tv", response["device_id"])
	assert.Equal(t, true, response["on"])

	w = doJSON(t, r, http.MethodPost, "/api/simulation/devices/tv/toggle", nil, &response)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, response["on"])

	w = doJSON(t, r, http.MethodPost, "/api/simulation/devices/ghost/toggle", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPutInterval(t *testing.T) {
	r, st := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPut, "/api/simulation/interval", map[string]any{"hours": 6}, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 6, st.IntervalHours())

	var response map[string]map[string]string
	w = doJSON(t, r, http.MethodPut, "/api/simulation/interval", map[string]any{"hours": 7}, &response)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, response["errors"], "time_interval")
	assert.Equal(t, 6, st.IntervalHours())
}

func TestGetSavingsScenario(t *testing.T) {
	r, st := setupTestAPI(t)

	// Both devices start off; turn the lamp on so only the 100 W TV saves
	// over a 6 hour horizon at the default 12.5 cents/kWh.
	_, err := st.Toggle("lamp")
	require.NoError(t, err)
	require.NoError(t, st.SetIntervalHours(6))

	var summary struct {
		HasSavings     bool               `json:"has_savings"`
		PerDeviceKWh   map[string]float64 `json:"per_device_kwh"`
		TotalKWh       float64            `json:"total_kwh"`
		TotalFormatted string             `json:"total_formatted"`
		TotalDollars   float64            `json:"total_dollars"`
		MonthlyKWh     float64            `json:"monthly_kwh"`
		YearlyKWh      float64            `json:"yearly_kwh"`
	}
	w := doJSON(t, r, http.MethodGet, "/api/savings", nil, &summary)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, summary.HasSavings)
	assert.InDelta(t, 0.6, summary.PerDeviceKWh["tv"], 1e-9)
	assert.Zero(t, summary.PerDeviceKWh["lamp"])
	assert.InDelta(t, 0.6, summary.TotalKWh, 1e-9)
	assert.Equal(t, "600 Wh", summary.TotalFormatted)
	assert.InDelta(t, 0.075, summary.TotalDollars, 1e-9)
	assert.InDelta(t, 72, summary.MonthlyKWh, 1e-9)
	assert.InDelta(t, 876, summary.YearlyKWh, 1e-9)
}

func TestGetSavingsAllDevicesOn(t *testing.T) {
	r, st := setupTestAPI(t)

	for _, id := range []string{"tv", "lamp"} {
		_, err := st.Toggle(id)
		require.NoError(t, err)
	}

	var summary struct {
		HasSavings bool             `json:"has_savings"`
		Breakdown  []map[string]any `json:"breakdown"`
		TotalKWh   float64          `json:"total_kwh"`
	}
	w := doJSON(t, r, http.MethodGet, "/api/savings", nil, &summary)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, summary.HasSavings, "all devices on is the empty-savings condition")
	assert.Empty(t, summary.Breakdown)
	assert.Zero(t, summary.TotalKWh)
}

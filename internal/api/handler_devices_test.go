package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDevices(t *testing.T) {
	r, _ := setupTestAPI(t)

	var response []map[string]any
	w := doJSON(t, r, http.MethodGet, "/api/devices", nil, &response)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, response, 2)
	assert.Equal(t, "tv", response[0]["id"])
	assert.InDelta(t, 3.0, response[0]["average_hours_per_day"].(float64), 1e-9) // (4+2)/2
	assert.Equal(t, "lamp", response[1]["id"])
}

func TestCreateDevice(t *testing.T) {
	r, _ := setupTestAPI(t)

	var created map[string]any
	w := doJSON(t, r, http.MethodPost, "/api/devices", map[string]any{
		"name":                  "Space Heater",
		"icon":                  "heater",
		"watts_per_hour":        1500,
		"average_hours_per_day": 4,
	}, &created)

	require.Equal(t, http.StatusCreated, w.Code)
	id := created["id"].(string)
	assert.True(t, strings.HasPrefix(id, "space_heater_"))
	assert.Len(t, created["usage_logs"], 7)

	// Round-trip through the detail endpoint.
	var detail map[string]any
	w = doJSON(t, r, http.MethodGet, "/api/devices/"+id, nil, &detail)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Space Heater", detail["name"])
	assert.Equal(t, 1500.0, detail["watts_per_hour"])
}

func TestCreateDeviceValidation(t *testing.T) {
	r, _ := setupTestAPI(t)

	var response map[string]map[string]string
	w := doJSON(t, r, http.MethodPost, "/api/devices", map[string]any{
		"name":                  "  ",
		"watts_per_hour":        -1,
		"average_hours_per_day": 30,
	}, &response)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := response["errors"]
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "watts_per_hour")
	assert.Contains(t, errs, "average_hours_per_day")
}

func TestGetDeviceDetail(t *testing.T) {
	r, _ := setupTestAPI(t)

	var response struct {
		Detail struct {
			Series []struct {
				Date      string  `json:"date"`
				EnergyKWh float64 `json:"energy_kwh"`
			} `json:"series"`
			TotalEnergyKWh   float64 `json:"total_energy_kwh"`
			HourOffEnergyKWh float64 `json:"hour_off_energy_kwh"`
		} `json:"detail"`
	}
	w := doJSON(t, r, http.MethodGet, "/api/devices/tv", nil, &response)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, response.Detail.Series, 2)
	// Oldest first.
	assert.Equal(t, "2025-04-20", response.Detail.Series[0].Date)
	assert.InDelta(t, 0.2, response.Detail.Series[0].EnergyKWh, 1e-9)
	assert.InDelta(t, 0.6, response.Detail.TotalEnergyKWh, 1e-9)
	assert.InDelta(t, 0.1, response.Detail.HourOffEnergyKWh, 1e-9)
}

func TestGetDeviceNotFound(t *testing.T) {
	r, _ := setupTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/devices/ghost", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"device not found"}`, w.Body.String())
}

func TestUpdateDevice(t *testing.T) {
	r, _ := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPatch, "/api/devices/tv", map[string]any{"name": "Living Room TV"}, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var detail map[string]any
	doJSON(t, r, http.MethodGet, "/api/devices/tv", nil, &detail)
	assert.Equal(t, "Living Room TV", detail["name"])
	// Unpatched fields survive.
	assert.Equal(t, 100.0, detail["watts_per_hour"])
}

func TestUpdateDeviceInvalidWattage(t *testing.T) {
	r, _ := setupTestAPI(t)

	var response map[string]map[string]string
	w := doJSON(t, r, http.MethodPatch, "/api/devices/tv", map[string]any{"watts_per_hour": 0}, &response)

	// watts_per_hour: 0 decodes as an explicit zero patch, which is invalid.
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, response["errors"], "watts_per_hour")
}

func TestUpdateDeviceNotFound(t *testing.T) {
	r, _ := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPatch, "/api/devices/ghost", map[string]any{"name": "Ghost"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDeviceRemovesSimulationEntry(t *testing.T) {
	r, _ := setupTestAPI(t)

	w := doJSON(t, r, http.MethodDelete, "/api/devices/tv", nil, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/devices/tv", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var sim struct {
		SimulatedState map[string]bool `json:"simulated_state"`
	}
	doJSON(t, r, http.MethodGet, "/api/simulation", nil, &sim)
	assert.NotContains(t, sim.SimulatedState, "tv")
	assert.Contains(t, sim.SimulatedState, "lamp")
}

func TestSelection(t *testing.T) {
	r, _ := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPut, "/api/selection", map[string]any{"device_id": "ghost"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/selection", map[string]any{"device_id": "tv"}, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var sel map[string]string
	doJSON(t, r, http.MethodGet, "/api/selection", nil, &sel)
	assert.Equal(t, "tv", sel["device_id"])

	// Deleting the selected device clears the selection.
	doJSON(t, r, http.MethodDelete, "/api/devices/tv", nil, nil)
	doJSON(t, r, http.MethodGet, "/api/selection", nil, &sel)
	assert.Empty(t, sel["device_id"])
}

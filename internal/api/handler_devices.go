package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"energy-dashboard-backend/internal/aggregate"
	"energy-dashboard-backend/internal/model"
)

// deviceResponse flattens a device with its derived daily average.
type deviceResponse struct {
	model.Device
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
}

// ListDevices handles GET /api/devices.
func (h *Handler) ListDevices(c *gin.Context) {
	devices, err := h.state.Devices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]deviceResponse, 0, len(devices))
	for _, d := range devices {
		response = append(response, deviceResponse{
			Device:             d,
			AverageHoursPerDay: d.AverageHoursPerDay(),
		})
	}
	c.JSON(http.StatusOK, response)
}

// CreateDevice handles POST /api/devices.
func (h *Handler) CreateDevice(c *gin.Context) {
	var form model.DeviceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	device, err := h.state.AddDevice(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, device)
}

// deviceDetailResponse pairs a device with its drill-down series.
type deviceDetailResponse struct {
	deviceResponse
	Detail aggregate.Detail `json:"detail"`
}

// GetDevice handles GET /api/devices/{device_id}, returning the device plus
// the usage/energy/cost series for the detail view.
func (h *Handler) GetDevice(c *gin.Context) {
	device, err := h.state.Device(c.Request.Context(), c.Param("device_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	rate := h.state.Settings().ElectricityRate
	c.JSON(http.StatusOK, deviceDetailResponse{
		deviceResponse: deviceResponse{
			Device:             device,
			AverageHoursPerDay: device.AverageHoursPerDay(),
		},
		Detail: aggregate.DeviceDetail(device, rate),
	})
}

// UpdateDevice handles PATCH /api/devices/{device_id}.
func (h *Handler) UpdateDevice(c *gin.Context) {
	var patch model.DevicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.state.UpdateDevice(c.Request.Context(), c.Param("device_id"), patch); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteDevice handles DELETE /api/devices/{device_id}.
func (h *Handler) DeleteDevice(c *gin.Context) {
	if err := h.state.RemoveDevice(c.Request.Context(), c.Param("device_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type selectionRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
}

// GetSelection handles GET /api/selection.
func (h *Handler) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"device_id": h.state.Selected()})
}

// PutSelection handles PUT /api/selection.
func (h *Handler) PutSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.state.Select(c.Request.Context(), req.DeviceID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteSelection handles DELETE /api/selection.
func (h *Handler) DeleteSelection(c *gin.Context) {
	h.state.ClearSelection()
	c.Status(http.StatusNoContent)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"energy-dashboard-backend/internal/aggregate"
)

// GetSimulation handles GET /api/simulation.
func (h *Handler) GetSimulation(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"simulated_state": h.state.Simulated(),
		"time_interval":   h.state.IntervalHours(),
	})
}

// ToggleDevice handles POST /api/simulation/devices/{device_id}/toggle.
func (h *Handler) ToggleDevice(c *gin.Context) {
	id := c.Param("device_id")
	on, err := h.state.Toggle(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"device_id": id, "on": on})
}

type intervalRequest struct {
	Hours int `json:"hours" binding:"required"`
}

// PutInterval handles PUT /api/simulation/interval.
func (h *Handler) PutInterval(c *gin.Context) {
	var req intervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.state.SetIntervalHours(req.Hours); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSavings handles GET /api/savings, computing the full savings summary
// from one consistent snapshot.
func (h *Handler) GetSavings(c *gin.Context) {
	snap, err := h.state.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, aggregate.Summarize(snap))
}

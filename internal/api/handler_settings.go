package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSettings handles GET /api/settings.
func (h *Handler) GetSettings(c *gin.Context) {
	settings := h.state.Settings()
	c.JSON(http.StatusOK, gin.H{
		"electricity_rate": settings.ElectricityRate,
		"user_name":        settings.UserName,
		"user_floor":       settings.UserFloor,
		"allowed_floors":   h.state.AllowedFloors(),
	})
}

type rateRequest struct {
	ElectricityRate float64 `json:"electricity_rate" binding:"required"`
}

// PutRate handles PUT /api/settings/rate.
func (h *Handler) PutRate(c *gin.Context) {
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.state.SetRate(req.ElectricityRate); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type profileRequest struct {
	UserName  string `json:"user_name"`
	UserFloor int    `json:"user_floor"`
}

// PutProfile handles PUT /api/settings/profile. Name and floor change
// together or not at all.
func (h *Handler) PutProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.state.UpdateProfile(req.UserName, req.UserFloor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

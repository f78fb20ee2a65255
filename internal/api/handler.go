package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"energy-dashboard-backend/internal/model"
	"energy-dashboard-backend/internal/state"
)

// Handler holds shared dependencies for API handlers: the mutable application
// state and the read-only leaderboard datasets supplied at startup.
type Handler struct {
	state     *state.State
	lbEntries []model.LeaderboardEntry
	lbFloors  []model.FloorData
}

// NewHandler creates a new API handler.
func NewHandler(st *state.State, entries []model.LeaderboardEntry, floors []model.FloorData) *Handler {
	return &Handler{
		state:     st,
		lbEntries: entries,
		lbFloors:  floors,
	}
}

// respondError maps core errors onto HTTP responses: validation failures to
// 422 with a field-keyed map, unknown ids to 404, anything else to 500.
func respondError(c *gin.Context, err error) {
	var fieldErrs model.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"energy-dashboard-backend/internal/leaderboard"
	"energy-dashboard-backend/internal/model"
)

// leaderboardResponse carries both ranked views plus the per-floor resident
// counts the floor table displays.
type leaderboardResponse struct {
	Individual        []model.LeaderboardEntry `json:"individual"`
	Floors            []model.FloorData        `json:"floors"`
	ResidentsPerFloor map[int]int              `json:"residents_per_floor"`
	MaxFloorSaving    float64                  `json:"max_floor_saving"`
}

// GetLeaderboard handles GET /api/leaderboard.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	c.JSON(http.StatusOK, leaderboardResponse{
		Individual:        leaderboard.Rank(h.lbEntries),
		Floors:            leaderboard.RankFloors(h.lbFloors),
		ResidentsPerFloor: leaderboard.ResidentsPerFloor(h.lbEntries),
		MaxFloorSaving:    leaderboard.MaxFloorSaving(h.lbFloors),
	})
}

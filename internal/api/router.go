package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"energy-dashboard-backend/config"
	"energy-dashboard-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, h *Handler) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(
		rate.Limit(cfg.Server.RateLimitPerSec),
		cfg.Server.RateLimitBurst,
		cfg.Server.RequestIPHeader,
	)

	ttl := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(ttl, 2*ttl)
	caching := mw.Cache(cacheStore, ttl)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/devices", h.ListDevices)
		api.POST("/devices", h.CreateDevice)
		api.GET("/devices/:device_id", h.GetDevice)
		api.PATCH("/devices/:device_id", h.UpdateDevice)
		api.DELETE("/devices/:device_id", h.DeleteDevice)

		api.GET("/selection", h.GetSelection)
		api.PUT("/selection", h.PutSelection)
		api.DELETE("/selection", h.DeleteSelection)

		api.GET("/simulation", h.GetSimulation)
		api.POST("/simulation/devices/:device_id/toggle", h.ToggleDevice)
		api.PUT("/simulation/interval", h.PutInterval)

		api.GET("/savings", h.GetSavings)

		// The leaderboard is static for a session, so its responses cache well.
		api.GET("/leaderboard", caching, h.GetLeaderboard)

		api.GET("/settings", h.GetSettings)
		api.PUT("/settings/rate", h.PutRate)
		api.PUT("/settings/profile", h.PutProfile)
	}

	return r
}

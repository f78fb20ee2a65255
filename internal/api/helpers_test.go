package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"energy-dashboard-backend/config"
	"energy-dashboard-backend/internal/model"
	"energy-dashboard-backend/internal/state"
	"energy-dashboard-backend/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testLeaderboard = []model.LeaderboardEntry{
	{Name: "Emma", Floor: 3, EnergySaved: 48.2},
	{Name: "Liam", Floor: 1, EnergySaved: 42.9},
	{Name: "Noah", Floor: 3, EnergySaved: 42.9},
}

var testFloors = []model.FloorData{
	{Floor: 1, TotalEnergySaved: 42.9},
	{Floor: 3, TotalEnergySaved: 91.1},
}

// setupTestAPI builds a router over a private in-memory database seeded with
// a TV and a lamp, both off. Middleware stays out of the way so handler
// behavior is what gets tested.
func setupTestAPI(t *testing.T) (*gin.Engine, *state.State) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Device{}, &model.UsageLog{}))

	s := store.NewGormStore(db)
	ctx := context.Background()
	require.NoError(t, s.ReplaceAllDevices(ctx, []model.Device{
		{ID: "tv", Name: "TV", Icon: "tv", WattsPerHour: 100, UsageLogs: []model.UsageLog{
			{Seq: 0, Date: "2025-04-21", HoursOn: 4},
			{Seq: 1, Date: "2025-04-20", HoursOn: 2},
		}},
		{ID: "lamp", Name: "Lamp", Icon: "lamp", WattsPerHour: 40, UsageLogs: []model.UsageLog{
			{Seq: 0, Date: "2025-04-21", HoursOn: 6},
		}},
	}))

	st := state.New(s, config.Default())
	require.NoError(t, st.SeedSimulation(ctx, nil, 0))

	h := NewHandler(st, testLeaderboard, testFloors)
	r := gin.New()
	api := r.Group("/api")
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
		api.GET("/leaderboard", h.GetLeaderboard)
		api.GET("/settings", h.GetSettings)
		api.PUT("/settings/rate", h.PutRate)
		api.PUT("/settings/profile", h.PutProfile)
	}
	return r, st
}

// doJSON performs a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out != nil && w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

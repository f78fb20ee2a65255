package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"energy-dashboard-backend/config"
	"energy-dashboard-backend/internal/api"
	"energy-dashboard-backend/internal/db"
	"energy-dashboard-backend/internal/seed"
	"energy-dashboard-backend/internal/state"
	"energy-dashboard-backend/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "energy-dashboard ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	var cfg *config.Config
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
		}
		logger.Printf("configuration loaded from %s", configPath)
	} else {
		logger.Printf("no config file at %s, using defaults", configPath)
		cfg = config.Default()
	}

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize device store: %v", err)
	}

	appStore := store.NewGormStore(gormDB)

	var dataset *seed.Dataset
	if cfg.Seed.Path != "" {
		dataset, err = seed.Load(cfg.Seed.Path)
		if err != nil {
			logger.Fatalf("failed to load seed data from %s: %v", cfg.Seed.Path, err)
		}
		logger.Printf("seed data loaded from %s", cfg.Seed.Path)
	} else {
		dataset = seed.Default()
		logger.Println("using built-in demo dataset")
	}

	ctx := context.Background()
	if err := appStore.ReplaceAllDevices(ctx, dataset.Devices); err != nil {
		logger.Fatalf("failed to seed devices: %v", err)
	}

	appState := state.New(appStore, cfg)
	if err := appState.SeedSimulation(ctx, dataset.Simulation.SimulatedState, dataset.Simulation.TimeInterval); err != nil {
		logger.Fatalf("failed to seed simulation state: %v", err)
	}
	logger.Printf("seeded %d devices", len(dataset.Devices))

	handler := api.NewHandler(appState, dataset.Leaderboard.Entries, dataset.Leaderboard.Floors)
	router := api.NewRouter(cfg, handler)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}

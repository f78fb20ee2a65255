package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Seed       SeedConfig       `yaml:"seed"`
	Settings   SettingsConfig   `yaml:"settings"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RequestIPHeader string  `yaml:"request_ip_header"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the device store configuration. The default DSN keeps
// SQLite entirely in process memory; nothing is persisted across restarts.
type DatabaseConfig struct {
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// SeedConfig points at the startup seed dataset. An empty path selects the
// built-in demo dataset.
type SeedConfig struct {
	Path string `yaml:"path"`
}

// SettingsConfig holds the defaults for the user-adjustable settings.
type SettingsConfig struct {
	ElectricityRate float64 `yaml:"electricity_rate"` // cents per kWh
	UserName        string  `yaml:"user_name"`
	UserFloor       int     `yaml:"user_floor"`
	AllowedFloors   []int   `yaml:"allowed_floors"`
}

// SimulationConfig holds the projection-horizon choices for the what-if
// simulation.
type SimulationConfig struct {
	TimeIntervals   []int `yaml:"time_intervals"` // hours
	DefaultInterval int   `yaml:"default_interval"`
}

// Default returns the configuration used when no config file is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration from the given path and fills in defaults for
// anything left unset.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 60
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file::memory:?cache=shared"
	}
	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 1
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = 1
	}

	if cfg.Settings.ElectricityRate <= 0 {
		cfg.Settings.ElectricityRate = 12.5
	}
	if cfg.Settings.UserName == "" {
		cfg.Settings.UserName = "User"
	}
	if cfg.Settings.UserFloor <= 0 {
		cfg.Settings.UserFloor = 3
	}
	if len(cfg.Settings.AllowedFloors) == 0 {
		cfg.Settings.AllowedFloors = []int{1, 2, 3, 4, 5}
	}

	if len(cfg.Simulation.TimeIntervals) == 0 {
		cfg.Simulation.TimeIntervals = []int{1, 6, 12, 24}
	}
	if cfg.Simulation.DefaultInterval <= 0 {
		cfg.Simulation.DefaultInterval = 1
	}
}

package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"energy-dashboard-backend/internal/model"
)

// Dataset is everything the data source supplies at startup: the device
// collection, the initial simulation scenario and the leaderboard datasets.
type Dataset struct {
	Devices    []model.Device `yaml:"devices"`
	Simulation struct {
		SimulatedState map[string]bool `yaml:"simulated_state"`
		TimeInterval   int             `yaml:"time_interval"`
	} `yaml:"simulation"`
	Leaderboard struct {
		Entries []model.LeaderboardEntry `yaml:"entries"`
		Floors  []model.FloorData        `yaml:"floors"`
	} `yaml:"leaderboard"`
}

// Load reads a seed dataset from a yaml file.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ds Dataset
	if err := yaml.NewDecoder(f).Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}

	ds.normalize()
	return &ds, nil
}

// normalize assigns log sequence numbers from file order (most recent first)
// and clamps out-of-range hours at the entity boundary.
func (ds *Dataset) normalize() {
	for di := range ds.Devices {
		for li := range ds.Devices[di].UsageLogs {
			l := &ds.Devices[di].UsageLogs[li]
			l.Seq = li
			l.DeviceID = ds.Devices[di].ID
			if l.HoursOn < 0 {
				l.HoursOn = 0
			}
			if l.HoursOn > 24 {
				l.HoursOn = 24
			}
		}
	}
}

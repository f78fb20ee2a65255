package model

// LeaderboardEntry is one resident's cumulative historical energy savings.
// These records are supplied by the data source at startup and are read-only
// for the lifetime of a session; live simulation toggles never touch them.
type LeaderboardEntry struct {
	Name                string             `json:"name" yaml:"name"`
	Floor               int                `json:"floor" yaml:"floor"`
	EnergySaved         float64            `json:"energy_saved" yaml:"energy_saved"`
	DeviceContributions map[string]float64 `json:"device_contributions" yaml:"device_contributions"`
}

// FloorData is a floor-level savings aggregate. It is supplied as its own
// dataset rather than recomputed from the per-resident entries, so the two
// can drift; the data source is authoritative for floor totals.
type FloorData struct {
	Floor            int     `json:"floor" yaml:"floor"`
	TotalEnergySaved float64 `json:"total_energy_saved" yaml:"total_energy_saved"`
}

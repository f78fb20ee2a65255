package leaderboard

import (
	"sort"

	"energy-dashboard-backend/internal/model"
)

// Rank orders residents by historical energy saved, highest first. The sort
// is stable, so entries with equal totals keep their supplied order; the
// input slice is never mutated.
func Rank(entries []model.LeaderboardEntry) []model.LeaderboardEntry {
	ranked := append([]model.LeaderboardEntry(nil), entries...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EnergySaved > ranked[j].EnergySaved
	})
	return ranked
}

// RankFloors orders floors by total energy saved, highest first, with the
// same stability rule as Rank.
func RankFloors(floors []model.FloorData) []model.FloorData {
	ranked := append([]model.FloorData(nil), floors...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalEnergySaved > ranked[j].TotalEnergySaved
	})
	return ranked
}

// ResidentsPerFloor counts leaderboard entries by floor. Display only; floor
// savings totals come from their own dataset.
func ResidentsPerFloor(entries []model.LeaderboardEntry) map[int]int {
	counts := make(map[int]int)
	for _, e := range entries {
		counts[e.Floor]++
	}
	return counts
}

// MaxFloorSaving returns the largest floor total, the denominator for the
// floor progress bars. Zero when there are no floors.
func MaxFloorSaving(floors []model.FloorData) float64 {
	var max float64
	for _, f := range floors {
		if f.TotalEnergySaved > max {
			max = f.TotalEnergySaved
		}
	}
	return max
}

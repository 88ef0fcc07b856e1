package scoring

import "sort"

// Rank returns a copy of standings ordered by adjusted score, then total strokes, with
// Rank set to the 1-based position. Full ties keep their input order.
func Rank(standings []TeamStanding) []TeamStanding {
	ranked := make([]TeamStanding, len(standings))
	copy(ranked, standings)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AdjustedScore != ranked[j].AdjustedScore {
			return ranked[i].AdjustedScore < ranked[j].AdjustedScore
		}
		return ranked[i].TotalStrokes < ranked[j].TotalStrokes
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

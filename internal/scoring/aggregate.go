package scoring

import "strings"

// Totals are the summed figures of a team's selected golfers
type Totals struct {
	TotalStrokes  int `json:"total_strokes"`
	RelativeScore int `json:"relative_score"`
}

// Aggregate sums strokes and relative score over golfers. An empty slice sums to zero.
func Aggregate(golfers []GolferRecord) Totals {
	var t Totals
	for _, g := range golfers {
		t.TotalStrokes += g.TotalStrokes
		t.RelativeScore += g.RelativeScore
	}
	return t
}

// ApplyProps looks up team's prop score (0 when absent) and combines it with relative.
func ApplyProps(team string, relative int, props map[string]int, combo PropCombination) (prop, adjusted int) {
	prop = props[strings.TrimSpace(team)]
	if combo == PropsAdd {
		return prop, relative + prop
	}
	return prop, relative - prop
}

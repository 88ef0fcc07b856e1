package scoring

// TeamEntry is one pool entry from the roster
type TeamEntry struct {
	Name  string   `json:"name"`
	Picks []string `json:"picks"`
}

// TeamStanding is a team's computed position. Values are rebuilt on every pass.
type TeamStanding struct {
	Team          string         `json:"team"`
	Rank          int            `json:"rank"`
	AdjustedScore int            `json:"adjusted_score"`
	RelativeScore int            `json:"relative_score"`
	TotalStrokes  int            `json:"total_strokes"`
	PropScore     int            `json:"prop_score"`
	Selected      []GolferRecord `json:"selected"`
	Golfers       []GolferResult `json:"golfers"`
}

// ComputeStandings scores every roster entry against one feed snapshot and returns
// the teams ranked best first. Neither roster nor snapshot is modified.
func ComputeStandings(roster []TeamEntry, snapshot Snapshot, policy Policy) []TeamStanding {
	standings := make([]TeamStanding, 0, len(roster))

	for _, entry := range roster {
		sel := SelectTopN(entry.Picks, snapshot.Golfers, policy)
		totals := Aggregate(sel.Selected)
		prop, adjusted := ApplyProps(entry.Name, totals.RelativeScore, snapshot.Props, policy.PropCombination)

		standings = append(standings, TeamStanding{
			Team:          entry.Name,
			AdjustedScore: adjusted,
			RelativeScore: totals.RelativeScore,
			TotalStrokes:  totals.TotalStrokes,
			PropScore:     prop,
			Selected:      sel.Selected,
			Golfers:       sel.Golfers,
		})
	}

	return Rank(standings)
}

// UnmatchedPicks counts picks across standings that had no feed record
func UnmatchedPicks(standings []TeamStanding) int {
	count := 0
	for _, s := range standings {
		for _, g := range s.Golfers {
			if g.Unmatched {
				count++
			}
		}
	}
	return count
}

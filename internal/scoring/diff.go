package scoring

import "sort"

// Movement describes how one team's standing changed between two refreshes
type Movement struct {
	Team             string `json:"team"`
	PreviousRank     int    `json:"previous_rank,omitempty"` // 0 when the team is new
	CurrentRank      int    `json:"current_rank"`
	PreviousAdjusted int    `json:"previous_adjusted"`
	CurrentAdjusted  int    `json:"current_adjusted"`
}

// IsNew reports whether the team had no previous standing
func (m Movement) IsNew() bool {
	return m.PreviousRank == 0
}

// Places returns how many places the team climbed; negative when it dropped
func (m Movement) Places() int {
	if m.IsNew() {
		return 0
	}
	return m.PreviousRank - m.CurrentRank
}

// Diff compares two rankings and returns the teams whose rank or adjusted score changed,
// plus any team missing from previous. Results are ordered by current rank.
func Diff(previous, current []TeamStanding) []Movement {
	prev := make(map[string]TeamStanding, len(previous))
	for _, s := range previous {
		prev[s.Team] = s
	}

	movements := make([]Movement, 0)
	for _, cur := range current {
		old, seen := prev[cur.Team]
		if seen && old.Rank == cur.Rank && old.AdjustedScore == cur.AdjustedScore {
			continue
		}

		m := Movement{
			Team:            cur.Team,
			CurrentRank:     cur.Rank,
			CurrentAdjusted: cur.AdjustedScore,
		}
		if seen {
			m.PreviousRank = old.Rank
			m.PreviousAdjusted = old.AdjustedScore
		}
		movements = append(movements, m)
	}

	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].CurrentRank < movements[j].CurrentRank
	})

	return movements
}

// LeaderChanged reports whether a different team now holds first place
func LeaderChanged(previous, current []TeamStanding) bool {
	if len(previous) == 0 || len(current) == 0 {
		return false
	}
	return previous[0].Team != current[0].Team
}

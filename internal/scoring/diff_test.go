package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	previous := []TeamStanding{
		{Team: "Alpha", Rank: 1, AdjustedScore: -6},
		{Team: "Bravo", Rank: 2, AdjustedScore: -4},
		{Team: "Charlie", Rank: 3, AdjustedScore: 1},
	}
	current := []TeamStanding{
		{Team: "Bravo", Rank: 1, AdjustedScore: -9},
		{Team: "Alpha", Rank: 2, AdjustedScore: -6},
		{Team: "Charlie", Rank: 3, AdjustedScore: 1},
		{Team: "Delta", Rank: 4, AdjustedScore: 3},
	}

	got := Diff(previous, current)

	want := []Movement{
		{Team: "Bravo", PreviousRank: 2, CurrentRank: 1, PreviousAdjusted: -4, CurrentAdjusted: -9},
		{Team: "Alpha", PreviousRank: 1, CurrentRank: 2, PreviousAdjusted: -6, CurrentAdjusted: -6},
		{Team: "Delta", CurrentRank: 4, CurrentAdjusted: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
	}

	if got[0].Places() != 1 {
		t.Errorf("Bravo Places() = %d, want 1", got[0].Places())
	}
	if got[1].Places() != -1 {
		t.Errorf("Alpha Places() = %d, want -1", got[1].Places())
	}
	if !got[2].IsNew() || got[2].Places() != 0 {
		t.Errorf("Delta should be new with no places moved, got %+v", got[2])
	}
}

func TestDiff_ScoreChangeSameRank(t *testing.T) {
	previous := []TeamStanding{{Team: "Alpha", Rank: 1, AdjustedScore: -2}}
	current := []TeamStanding{{Team: "Alpha", Rank: 1, AdjustedScore: -3}}

	got := Diff(previous, current)
	if len(got) != 1 || got[0].Places() != 0 {
		t.Errorf("Diff() = %+v, want one movement with no rank change", got)
	}
}

func TestDiff_NoPrevious(t *testing.T) {
	current := []TeamStanding{
		{Team: "Alpha", Rank: 1},
		{Team: "Bravo", Rank: 2},
	}
	if got := Diff(nil, current); len(got) != 2 {
		t.Errorf("len(Diff(nil, current)) = %d, want 2", len(got))
	}
	if got := Diff(current, current); len(got) != 0 {
		t.Errorf("Diff of identical standings = %+v, want none", got)
	}
}

func TestLeaderChanged(t *testing.T) {
	a := []TeamStanding{{Team: "Alpha"}, {Team: "Bravo"}}
	b := []TeamStanding{{Team: "Bravo"}, {Team: "Alpha"}}

	tests := []struct {
		name     string
		previous []TeamStanding
		current  []TeamStanding
		want     bool
	}{
		{"new leader", a, b, true},
		{"same leader", a, a, false},
		{"first pass", nil, a, false},
		{"empty current", a, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LeaderChanged(tt.previous, tt.current); got != tt.want {
				t.Errorf("LeaderChanged() = %v, want %v", got, tt.want)
			}
		})
	}
}

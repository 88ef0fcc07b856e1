package scoring

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeStandings_BestSixCount(t *testing.T) {
	rows := make([]Row, 0, 7)
	picks := make([]string, 0, 7)
	for i := 1; i <= 6; i++ {
		name := fmt.Sprintf("P%d", i)
		rows = append(rows, Row{"PLAYER": name, "SCORE": "E"})
		picks = append(picks, name)
	}
	rows = append(rows, Row{"PLAYER": "P7", "SCORE": "-5"})
	picks = append(picks, "P7")

	roster := []TeamEntry{{Name: "Alpha", Picks: picks}}
	standings := ComputeStandings(roster, NormalizeFeed(rows, DefaultPolicy()), DefaultPolicy())

	if len(standings) != 1 {
		t.Fatalf("got %d standings, want 1", len(standings))
	}
	alpha := standings[0]
	if alpha.RelativeScore != -5 {
		t.Errorf("RelativeScore = %d, want -5", alpha.RelativeScore)
	}
	if alpha.AdjustedScore != -5 {
		t.Errorf("AdjustedScore = %d, want -5", alpha.AdjustedScore)
	}
	if len(alpha.Selected) != 6 {
		t.Errorf("len(Selected) = %d, want 6", len(alpha.Selected))
	}
	if alpha.Rank != 1 {
		t.Errorf("Rank = %d, want 1", alpha.Rank)
	}
}

func TestComputeStandings_CutGolferStrokes(t *testing.T) {
	rows := []Row{
		{"PLAYER": "Cut Man", "SCORE": "CUT", "R1": "76", "R2": "78"},
	}
	roster := []TeamEntry{{Name: "Solo", Picks: []string{"Cut Man"}}}

	standings := ComputeStandings(roster, NormalizeFeed(rows, DefaultPolicy()), DefaultPolicy())

	if got, want := standings[0].TotalStrokes, 76+78+80+80; got != want {
		t.Errorf("TotalStrokes = %d, want %d", got, want)
	}
	if got := standings[0].RelativeScore; got != SpecialRelativePenalty {
		t.Errorf("RelativeScore = %d, want %d", got, SpecialRelativePenalty)
	}
}

func TestComputeStandings_PropsAndOrdering(t *testing.T) {
	rows := []Row{
		{"PLAYER": "A", "SCORE": "-2", "R1": "70"},
		{"PLAYER": "B", "SCORE": "-2", "R1": "70"},
		{"PLAYER": "C", "SCORE": "+1", "R1": "73"},
		{"PLAYER": "D", "SCORE": "-1", "R1": "69"},
		{"Name": "Caddyshack", "Team": "TRUE", "Props": "6"},
		{"Name": "Greenkeepers", "Team": "yes", "Props": "not a number"},
		{"PLAYER": "", "SCORE": "-9"},
	}
	roster := []TeamEntry{
		{Name: "Greenkeepers", Picks: []string{"A", "C"}},
		{Name: "Caddyshack", Picks: []string{"C", "Unknown"}},
		{Name: "Mulligans", Picks: []string{"B", "C"}},
		{Name: "Bogey Train", Picks: []string{"D"}},
	}

	snap := NormalizeFeed(rows, DefaultPolicy())
	standings := ComputeStandings(roster, snap, DefaultPolicy())

	type summary struct {
		Team     string
		Rank     int
		Relative int
		Prop     int
		Adjusted int
		Strokes  int
	}
	got := make([]summary, len(standings))
	for i, s := range standings {
		got[i] = summary{s.Team, s.Rank, s.RelativeScore, s.PropScore, s.AdjustedScore, s.TotalStrokes}
	}

	want := []summary{
		{"Caddyshack", 1, 1, 6, -5, 73},
		{"Bogey Train", 2, -1, 0, -1, 69},
		{"Greenkeepers", 3, -1, 0, -1, 143},
		{"Mulligans", 4, -1, 0, -1, 143},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("standings mismatch (-want +got):\n%s", diff)
	}

	if snap.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", snap.Skipped)
	}
	if _, ok := snap.Golfers["Caddyshack"]; ok {
		t.Error("prop row must not become a golfer")
	}
	if got := UnmatchedPicks(standings); got != 1 {
		t.Errorf("UnmatchedPicks() = %d, want 1", got)
	}
}

func TestComputeStandings_Deterministic(t *testing.T) {
	rows := []Row{
		{"PLAYER": "A", "SCORE": "E"},
		{"PLAYER": "B", "SCORE": "E"},
	}
	roster := []TeamEntry{
		{Name: "One", Picks: []string{"A"}},
		{Name: "Two", Picks: []string{"B"}},
		{Name: "Three", Picks: []string{"A", "B"}},
	}
	snap := NormalizeFeed(rows, DefaultPolicy())

	first := ComputeStandings(roster, snap, DefaultPolicy())
	second := ComputeStandings(roster, snap, DefaultPolicy())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated computation differs (-first +second):\n%s", diff)
	}
	for i, want := range []string{"One", "Two", "Three"} {
		if first[i].Team != want {
			t.Errorf("position %d = %s, want %s", i+1, first[i].Team, want)
		}
	}
}

func TestComputeStandings_EmptyInputs(t *testing.T) {
	if got := ComputeStandings(nil, NormalizeFeed(nil, DefaultPolicy()), DefaultPolicy()); len(got) != 0 {
		t.Errorf("expected no standings, got %d", len(got))
	}

	roster := []TeamEntry{{Name: "Lonely", Picks: []string{"Nobody"}}}
	got := ComputeStandings(roster, Snapshot{}, DefaultPolicy())
	if got[0].AdjustedScore != 0 || len(got[0].Selected) != 1 {
		t.Errorf("unexpected standing for empty feed: %+v", got[0])
	}
}

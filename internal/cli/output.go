package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates an output format name
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return format, nil
}

// OutputResult contains the standings to be output
type OutputResult struct {
	ComputedAt time.Time              `json:"computed_at"`
	Policy     scoring.Policy         `json:"policy"`
	TeamCount  int                    `json:"team_count"`
	Standings  []scoring.TeamStanding `json:"standings"`
}

// GolfersResult contains a normalized feed to be output
type GolfersResult struct {
	FetchedAt   time.Time              `json:"fetched_at"`
	GolferCount int                    `json:"golfer_count"`
	Golfers     []scoring.GolferRecord `json:"golfers"`
	Props       map[string]int         `json:"props,omitempty"`
	Skipped     int                    `json:"skipped"`
}

// WriteOutput writes the standings in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteGolfers writes a normalized feed in the specified format
func WriteGolfers(w io.Writer, result *GolfersResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeGolfersText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs standings as a human-readable table
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.TeamCount == 0 {
		fmt.Fprintln(w, "No teams in roster.")
		return nil
	}

	fmt.Fprintf(w, "Standings as of %s (%d teams)\n\n", result.ComputedAt.Format("2006-01-02 15:04 MST"), result.TeamCount)
	fmt.Fprintf(w, "%4s  %-24s %6s %6s %8s %6s\n", "RANK", "TEAM", "SCORE", "REL", "STROKES", "PROPS")

	for _, s := range result.Standings {
		fmt.Fprintf(w, "%4d  %-24s %6s %6s %8d %6d\n",
			s.Rank, s.Team,
			scoring.FormatScore(s.AdjustedScore),
			scoring.FormatScore(s.RelativeScore),
			s.TotalStrokes, s.PropScore)

		if verbose {
			for _, g := range s.Golfers {
				writeGolferLine(w, g)
			}
			fmt.Fprintln(w)
		}
	}

	return nil
}

// writeGolferLine prints one pick of a team's breakdown; '*' marks counted golfers
func writeGolferLine(w io.Writer, g scoring.GolferResult) {
	mark := " "
	if g.Selected {
		mark = "*"
	}

	fmt.Fprintf(w, "      %s %-24s %5s %6d  %s", mark, g.Golfer.Name,
		displayScore(g.Golfer), g.Golfer.TotalStrokes, formatRounds(g.Golfer))

	if g.Unmatched {
		fmt.Fprint(w, "  (not in feed)")
	}
	fmt.Fprintln(w)
}

// displayScore shows the leaderboard's own text ("CUT", "WD") for special-status golfers
// instead of the penalty score they are ranked by
func displayScore(g scoring.GolferRecord) string {
	if g.Status.IsSpecial() && g.RelativeScoreDisplay != "" {
		return g.RelativeScoreDisplay
	}
	return scoring.FormatScore(g.RelativeScore)
}

func formatRounds(g scoring.GolferRecord) string {
	rounds := make([]string, len(g.Rounds))
	for i, r := range g.Rounds {
		rounds[i] = fmt.Sprintf("%3s", scoring.FormatRound(r))
	}
	return strings.Join(rounds, " ")
}

// writeGolfersText outputs a normalized feed as human-readable text
func writeGolfersText(w io.Writer, result *GolfersResult) error {
	if result.GolferCount == 0 {
		fmt.Fprintln(w, "No golfers found in feed.")
	} else {
		fmt.Fprintf(w, "%-6s %-24s %5s %6s  %-15s %s\n", "POS", "GOLFER", "REL", "TOT", "R1  R2  R3  R4", "STATUS")
		for _, g := range result.Golfers {
			fmt.Fprintf(w, "%-6s %-24s %5s %6d  %-15s %s\n",
				g.Position, g.Name,
				displayScore(g), g.TotalStrokes,
				formatRounds(g), g.Status)
		}
		fmt.Fprintf(w, "\nTotal: %d golfers\n", result.GolferCount)
	}

	if len(result.Props) > 0 {
		teams := make([]string, 0, len(result.Props))
		for team := range result.Props {
			teams = append(teams, team)
		}
		sort.Strings(teams)

		fmt.Fprintln(w, "\nProps:")
		for _, team := range teams {
			fmt.Fprintf(w, "  %-24s %d\n", team, result.Props[team])
		}
	}

	if result.Skipped > 0 {
		fmt.Fprintf(w, "\nSkipped %d rows without a golfer name\n", result.Skipped)
	}

	return nil
}

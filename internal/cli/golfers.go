package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

var flagSort string

func newGolfersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "golfers",
		Short: "Print the normalized leaderboard feed",
		Long: `Fetches the feed once and prints every golfer as the scorer sees it, plus any
team prop rows. Useful for checking a new feed's column names and status values.`,
		Args: cobra.NoArgs,
		RunE: runGolfers,
	}

	cmd.Flags().StringVar(&flagSort, "sort", string(SortByScore), "Sort golfers by: name, score or strokes")

	return cmd
}

func runGolfers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	format, err := ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	order, err := ParseSortOrder(flagSort)
	if err != nil {
		return err
	}

	policy, err := cfg.Policy.Scoring()
	if err != nil {
		return err
	}

	source, err := newSource(cfg)
	if err != nil {
		return err
	}

	snapshot, err := fetchSnapshot(cmd.Context(), source, policy)
	if err != nil {
		return err
	}

	golfers := make([]scoring.GolferRecord, 0, len(snapshot.Golfers))
	for _, g := range snapshot.Golfers {
		golfers = append(golfers, g)
	}
	sortGolfers(golfers, order)

	result := &GolfersResult{
		FetchedAt:   time.Now().UTC(),
		GolferCount: len(golfers),
		Golfers:     golfers,
		Props:       snapshot.Props,
		Skipped:     snapshot.Skipped,
	}
	if err := WriteGolfers(cmd.OutOrStdout(), result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return writeMetrics(cfg)
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pfrederiksen/pool-standings/internal/config"
	"github.com/pfrederiksen/pool-standings/internal/feed"
	"github.com/pfrederiksen/pool-standings/internal/logger"
	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

// newSource builds the feed source selected by cfg
func newSource(cfg *config.Config) (feed.Source, error) {
	if err := cfg.RequireFeed(); err != nil {
		return nil, err
	}

	format, err := feed.ParseFormat(cfg.Feed.Format)
	if err != nil {
		return nil, err
	}

	if cfg.Feed.URL != "" {
		return feed.NewHTTPSource(cfg.Feed.URL, format,
			feed.WithTimeout(cfg.Feed.Timeout),
			feed.WithMinInterval(cfg.Feed.MinInterval),
		), nil
	}
	return feed.NewFileSource(cfg.Feed.File, format), nil
}

// fetchSnapshot fetches and normalizes one copy of the feed
func fetchSnapshot(ctx context.Context, source feed.Source, policy scoring.Policy) (scoring.Snapshot, error) {
	start := time.Now()
	rows, err := source.Fetch(ctx)
	logger.RecordTiming("feed.fetch", time.Since(start))
	if err != nil {
		logger.IncrCounter("feed.fetch_failed")
		return scoring.Snapshot{}, fmt.Errorf("fetching feed: %w", err)
	}

	snapshot := scoring.NormalizeFeed(rows, policy)
	if snapshot.Skipped > 0 {
		logger.Debug("Skipped feed rows without a golfer name", logger.Fields{
			"skipped": snapshot.Skipped,
		})
		logger.AddCounter("feed.rows_skipped", snapshot.Skipped)
	}

	logger.SetGauge("feed.golfers", float64(len(snapshot.Golfers)))
	logger.Debug("Fetched feed", logger.Fields{
		"rows":    len(rows),
		"golfers": len(snapshot.Golfers),
		"props":   len(snapshot.Props),
	})

	return snapshot, nil
}

// computeStandings fetches the feed and ranks teams against it
func computeStandings(ctx context.Context, source feed.Source, teams []scoring.TeamEntry, policy scoring.Policy) ([]scoring.TeamStanding, error) {
	snapshot, err := fetchSnapshot(ctx, source, policy)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	standings := scoring.ComputeStandings(teams, snapshot, policy)
	logger.RecordTiming("scoring.compute", time.Since(start))

	if n := scoring.UnmatchedPicks(standings); n > 0 {
		logger.Warn("Picks not found in feed", logger.Fields{
			"count":  n,
			"policy": string(policy.Unmatched),
		})
		logger.AddCounter("scoring.unmatched_picks", n)
	}
	logger.SetGauge("standings.teams", float64(len(standings)))

	return standings, nil
}

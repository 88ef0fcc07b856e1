package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pool-standings/internal/config"
	"github.com/pfrederiksen/pool-standings/internal/feed"
	"github.com/pfrederiksen/pool-standings/internal/logger"
	"github.com/pfrederiksen/pool-standings/internal/roster"
	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// ErrNoRoster is returned when a command needs a roster and none is configured
var ErrNoRoster = errors.New("no roster configured (use --roster or POOL_ROSTER)")

// Version is set at build time with -ldflags "-X .../internal/cli.Version=..."
var Version = "dev"

var flagConfigFile string

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	defaults := scoring.DefaultPolicy()

	cmd := &cobra.Command{
		Use:   "pool-standings",
		Short: "Rank fantasy golf pool entries from a live leaderboard",
		Long: `A CLI tool that scores fantasy golf pool entries against a live leaderboard feed.
Each team counts its best golfers, prop-bet points are applied, and teams are ranked
best first.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runStandings,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&flagConfigFile, "config", "", "YAML config file")
	flags.String("feed-url", "", "Leaderboard feed URL (JSON rows or an HTML table)")
	flags.String("feed-file", "", "Read the leaderboard from a saved file instead of a URL")
	flags.String("feed-format", string(feed.FormatAuto), "Feed format: auto, json or html")
	flags.Duration("feed-timeout", feed.Timeout, "Feed request timeout")
	flags.Duration("feed-min-interval", feed.MinInterval, "Minimum time between feed requests")
	flags.String("roster", "", "Roster file (.json, .yaml or .xlsx)")
	flags.String("round-penalty", string(defaults.RoundPenalty), "When unreported rounds count as 80: special_only or always")
	flags.String("selection-key", string(defaults.SelectionKey), "Best-golfer ordering: relative_score or total_strokes")
	flags.String("unmatched", string(defaults.Unmatched), "Picks missing from the feed: neutral, penalty or exclude")
	flags.String("prop-combination", string(defaults.PropCombination), "How prop points combine with the score: subtract or add")
	flags.Int("selection-size", defaults.SelectionSize, "Golfers counted per team")
	flags.String("format", string(FormatText), "Output format: text or json")
	flags.Bool("verbose", false, "Show each team's golfer breakdown")
	flags.String("log-level", string(logger.LevelInfo), "Log level: debug, info, warn or error")
	flags.String("metrics-file", "", "Write Prometheus metrics to this textfile after each run")

	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newGolfersCmd())

	return cmd
}

// runStandings computes and prints the standings once
func runStandings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	format, err := ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	source, err := newSource(cfg)
	if err != nil {
		return err
	}

	teams, err := loadRoster(cfg)
	if err != nil {
		return err
	}

	policy, err := cfg.Policy.Scoring()
	if err != nil {
		return err
	}

	standings, err := computeStandings(cmd.Context(), source, teams, policy)
	if err != nil {
		return err
	}

	result := &OutputResult{
		ComputedAt: time.Now().UTC(),
		Policy:     policy,
		TeamCount:  len(standings),
		Standings:  standings,
	}
	if err := WriteOutput(cmd.OutOrStdout(), result, format, cfg.Output.Verbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return writeMetrics(cfg)
}

// loadConfig resolves settings for cmd and installs the configured logger
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	config.LoadDotEnv()

	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg, err := loader.Load(flagConfigFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	return cfg, nil
}

func loadRoster(cfg *config.Config) ([]scoring.TeamEntry, error) {
	if cfg.Roster == "" {
		return nil, ErrNoRoster
	}

	teams, err := roster.Load(cfg.Roster)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}

	logger.Debug("Loaded roster", logger.Fields{
		"path":  cfg.Roster,
		"teams": len(teams),
	})

	return teams, nil
}

func writeMetrics(cfg *config.Config) error {
	if cfg.Metrics.Textfile == "" {
		return nil
	}
	return logger.WriteMetricsTextfile(cfg.Metrics.Textfile)
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(ExitError)
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pool-standings/internal/feed"
	"github.com/pfrederiksen/pool-standings/internal/logger"
	"github.com/pfrederiksen/pool-standings/internal/notifier"
	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recompute standings on a schedule and report movement",
		Long: `Recomputes the standings on a cron schedule (default every two minutes). The full
standings are printed on the first pass and whenever they change; rank and score
movements are announced between passes. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}

	cmd.Flags().String("schedule", "@every 2m", "Cron spec or @every interval between passes")
	cmd.Flags().Uint32("breaker-failures", 3, "Consecutive feed failures before pausing fetches")
	cmd.Flags().Duration("breaker-cooldown", time.Minute, "How long fetches pause after the breaker opens")

	return cmd
}

// Watcher runs standings passes and remembers the previous pass's ranking
type Watcher struct {
	Source   feed.Source
	Teams    []scoring.TeamEntry
	Policy   scoring.Policy
	Notifier notifier.Notifier
	Out      io.Writer
	Format   OutputFormat
	Verbose  bool
	// MetricsFile, when set, is rewritten after every pass
	MetricsFile string

	mu       sync.Mutex
	previous []scoring.TeamStanding
	passes   int
}

// RunPass computes the standings once. The standings are written when they differ from
// the previous pass, and movements go to the notifier from the second pass on.
func (w *Watcher) RunPass(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	passID := uuid.NewString()
	start := time.Now()
	fields := logger.Fields{"pass_id": passID}

	standings, err := computeStandings(ctx, w.Source, w.Teams, w.Policy)
	logger.RecordTiming("watch.pass", time.Since(start))
	if err != nil {
		logger.IncrCounter("watch.pass_failed")
		w.flushMetrics(fields)
		return fmt.Errorf("pass %s: %w", passID, err)
	}

	first := w.passes == 0
	w.passes++
	logger.IncrCounter("watch.passes")

	movements := scoring.Diff(w.previous, standings)
	fields["movements"] = len(movements)
	fields["teams"] = len(standings)

	if first || len(movements) > 0 {
		result := &OutputResult{
			ComputedAt: time.Now().UTC(),
			Policy:     w.Policy,
			TeamCount:  len(standings),
			Standings:  standings,
		}
		if err := WriteOutput(w.Out, result, w.Format, w.Verbose); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if !first && len(movements) > 0 && w.Notifier != nil {
		if scoring.LeaderChanged(w.previous, standings) {
			fields["new_leader"] = standings[0].Team
		}
		if err := w.Notifier.Notify(movements); err != nil {
			logger.Error("Notifying movements failed", fields, err)
			logger.IncrCounter("watch.notify_failed")
		}
	}

	w.previous = standings
	logger.Info("Standings pass complete", fields)
	w.flushMetrics(fields)

	return nil
}

// Previous returns the standings from the last successful pass
func (w *Watcher) Previous() []scoring.TeamStanding {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.previous
}

func (w *Watcher) flushMetrics(fields logger.Fields) {
	if w.MetricsFile == "" {
		return
	}
	if err := logger.WriteMetricsTextfile(w.MetricsFile); err != nil {
		logger.Warn("Writing metrics textfile failed", logger.Fields{
			"pass_id": fields["pass_id"],
			"error":   err.Error(),
		})
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	schedule, err := cron.ParseStandard(cfg.Watch.Schedule)
	if err != nil {
		return fmt.Errorf("invalid watch schedule %q: %w", cfg.Watch.Schedule, err)
	}

	w := &Watcher{
		Source:      feed.NewBreakerSource(source, cfg.Feed.BreakerFailures, cfg.Feed.BreakerCooldown),
		Teams:       teams,
		Policy:      policy,
		Notifier:    movementNotifier(format, cmd.OutOrStdout()),
		Out:         cmd.OutOrStdout(),
		Format:      format,
		Verbose:     cfg.Output.Verbose,
		MetricsFile: cfg.Metrics.Textfile,
	}

	return watch(cmd.Context(), w, schedule)
}

// movementNotifier prints movements alongside text output. JSON output stays a plain
// stream of documents, so movements go to the log instead.
func movementNotifier(format OutputFormat, out io.Writer) notifier.Notifier {
	if format == FormatJSON {
		return notifier.NewLogNotifier(nil)
	}
	return notifier.NewWriterNotifier(out)
}

// watch runs a first pass immediately, then one per scheduled tick until ctx is done.
// A slow pass causes the next tick to be skipped rather than queued.
func watch(ctx context.Context, w *Watcher, schedule cron.Schedule) error {
	pass := func() {
		if err := w.RunPass(ctx); err != nil {
			logger.Error("Standings pass failed", nil, err)
		}
	}

	logger.Info("Watching standings", logger.Fields{
		"teams": len(w.Teams),
		"next":  schedule.Next(time.Now()).Format(time.RFC3339),
	})
	pass()

	c := cron.New()
	c.Schedule(schedule, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(pass)))
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()

	logger.Info("Stopped watching", logger.Fields{"passes": w.passesRun()})
	return nil
}

func (w *Watcher) passesRun() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.passes
}

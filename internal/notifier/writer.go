package notifier

import (
	"fmt"
	"io"
	"os"

	"github.com/pfrederiksen/pool-standings/internal/logger"
	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

// WriterNotifier prints movements to a writer
type WriterNotifier struct {
	w io.Writer
}

// NewWriterNotifier creates a notifier that writes to w, or stdout when w is nil
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	if w == nil {
		w = os.Stdout
	}
	return &WriterNotifier{w: w}
}

// Notify prints one line per movement
func (n *WriterNotifier) Notify(movements []scoring.Movement) error {
	for _, m := range movements {
		if _, err := fmt.Fprintln(n.w, FormatMovement(m)); err != nil {
			return fmt.Errorf("writing movement for %s: %w", m.Team, err)
		}
	}
	return nil
}

// LogNotifier reports movements through the structured logger
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a notifier that logs at INFO on l, or the default logger when l is nil
func NewLogNotifier(l *logger.Logger) *LogNotifier {
	if l == nil {
		l = logger.Default()
	}
	return &LogNotifier{log: l}
}

// Notify logs one entry per movement
func (n *LogNotifier) Notify(movements []scoring.Movement) error {
	for _, m := range movements {
		n.log.Info(FormatMovement(m), logger.Fields{
			"team":          m.Team,
			"previous_rank": m.PreviousRank,
			"current_rank":  m.CurrentRank,
			"adjusted":      m.CurrentAdjusted,
		})
	}
	logger.AddCounter("notifier.movements", len(movements))
	return nil
}

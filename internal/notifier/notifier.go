package notifier

import (
	"fmt"

	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

// Notifier defines the interface for announcing standings changes
type Notifier interface {
	// Notify announces the given movements
	Notify(movements []scoring.Movement) error
}

// MaxMessageLength caps a single formatted message
const MaxMessageLength = 280

// FormatMovement formats one movement as a short human-readable message
func FormatMovement(m scoring.Movement) string {
	var msg string
	switch places := m.Places(); {
	case m.IsNew():
		msg = fmt.Sprintf("%s enters at #%d (%s)", m.Team, m.CurrentRank, scoring.FormatScore(m.CurrentAdjusted))
	case places > 0:
		msg = fmt.Sprintf("%s climbs %d to #%d (%s)", m.Team, places, m.CurrentRank, scoring.FormatScore(m.CurrentAdjusted))
	case places < 0:
		msg = fmt.Sprintf("%s drops %d to #%d (%s)", m.Team, -places, m.CurrentRank, scoring.FormatScore(m.CurrentAdjusted))
	default:
		msg = fmt.Sprintf("%s holds #%d (%s -> %s)", m.Team, m.CurrentRank,
			scoring.FormatScore(m.PreviousAdjusted), scoring.FormatScore(m.CurrentAdjusted))
	}

	if m.CurrentRank == 1 && !m.IsNew() && m.PreviousRank != 1 {
		msg += " - new leader!"
	}

	if len(msg) > MaxMessageLength {
		msg = msg[:MaxMessageLength-3] + "..."
	}

	return msg
}

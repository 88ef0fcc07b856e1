package scoring

import "strconv"

// FormatScore renders a relative score the way a leaderboard does: "E", "+3", "-2"
func FormatScore(score int) string {
	switch {
	case score == 0:
		return "E"
	case score > 0:
		return "+" + strconv.Itoa(score)
	default:
		return strconv.Itoa(score)
	}
}

// FormatRound renders a round's strokes, or "-" when it has not been played
func FormatRound(strokes *int) string {
	if strokes == nil {
		return "-"
	}
	return strconv.Itoa(*strokes)
}

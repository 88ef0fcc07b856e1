package scoring

import (
	"math"
	"strconv"
	"strings"
)

const (
	// PenaltyRoundStrokes replaces an unreported round for penalized golfers
	PenaltyRoundStrokes = 80
	// SpecialRelativePenalty is the relative score given to a special-status golfer
	// whose score column holds no number
	SpecialRelativePenalty = 100
	// RoundCount is the number of rounds in a tournament
	RoundCount = 4
)

// SpecialStatus is a non-numeric tournament outcome
type SpecialStatus string

const (
	StatusNone SpecialStatus = "NONE"
	StatusCut  SpecialStatus = "CUT"
	StatusWD   SpecialStatus = "WD"
	StatusDQ   SpecialStatus = "DQ"
	StatusDNS  SpecialStatus = "DNS"
)

// IsSpecial reports whether the golfer finished without a normal score
func (s SpecialStatus) IsSpecial() bool {
	return s != StatusNone && s != ""
}

// Row is one raw feed row keyed by column header. Sources stringify non-string cells.
type Row map[string]string

// Column aliases, in lookup order
var (
	nameKeys     = []string{"PLAYER", "Name"}
	positionKeys = []string{"POS", "Position"}
	scoreKeys    = []string{"SCORE", "RelativeScore"}
	totalKeys    = []string{"TOT", "Total"}
	roundKeys    = [RoundCount]string{"R1", "R2", "R3", "R4"}
)

// GolferRecord is the canonical form of one golfer's leaderboard line
type GolferRecord struct {
	Name                 string           `json:"name"`
	Position             string           `json:"position"`
	RelativeScoreDisplay string           `json:"relative_score_display"`
	RelativeScore        int              `json:"relative_score"`
	TotalStrokesDisplay  string           `json:"total_strokes_display"`
	TotalStrokes         int              `json:"total_strokes"`
	Rounds               [RoundCount]*int `json:"rounds"`
	Status               SpecialStatus    `json:"status"`
}

// first returns the first non-blank value among keys, trimmed
func (r Row) first(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r[k]); v != "" {
			return v
		}
	}
	return ""
}

// NormalizeRow converts a feed row into a GolferRecord.
// The second return value is false when the row has no golfer name and must be skipped.
func NormalizeRow(row Row, policy Policy) (GolferRecord, bool) {
	name := row.first(nameKeys...)
	if name == "" {
		return GolferRecord{}, false
	}

	rec := GolferRecord{
		Name:                 name,
		Position:             row.first(positionKeys...),
		RelativeScoreDisplay: row.first(scoreKeys...),
		TotalStrokesDisplay:  row.first(totalKeys...),
	}
	if rec.RelativeScoreDisplay == "" {
		rec.RelativeScoreDisplay = "E"
	}
	if rec.TotalStrokesDisplay == "" {
		rec.TotalStrokesDisplay = "0"
	}

	rec.Status = ParseSpecialStatus(rec.RelativeScoreDisplay)

	penalize := rec.Status.IsSpecial() || policy.RoundPenalty == RoundPenaltyAlways
	for i, key := range roundKeys {
		rec.Rounds[i] = parseRound(row[key])
		if rec.Rounds[i] == nil && penalize {
			rec.Rounds[i] = intPtr(PenaltyRoundStrokes)
		}
		if rec.Rounds[i] != nil {
			rec.TotalStrokes += *rec.Rounds[i]
		}
	}

	rec.RelativeScore = ParseRelativeScore(rec.RelativeScoreDisplay, rec.Status)
	return rec, true
}

// ParseSpecialStatus returns the status named by display, which must match a token exactly.
// "cut" is not CUT: case is taken as the feed sends it.
func ParseSpecialStatus(display string) SpecialStatus {
	switch s := SpecialStatus(display); s {
	case StatusCut, StatusWD, StatusDQ, StatusDNS:
		return s
	}
	return StatusNone
}

// ParseRelativeScore converts a score column such as "E", "+3" or "-2" to strokes against par.
// Unparsable text scores 0, or SpecialRelativePenalty for a special-status golfer.
func ParseRelativeScore(display string, status SpecialStatus) int {
	display = strings.TrimSpace(display)
	if display == "E" {
		return 0
	}
	if n, err := strconv.Atoi(display); err == nil {
		return n
	}
	if status.IsSpecial() {
		return SpecialRelativePenalty
	}
	return 0
}

// parseRound returns nil for anything that is not a whole number. Spreadsheet exports
// such as "72.0" count as whole numbers.
func parseRound(s string) *int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int(f)
	return &n
}

func intPtr(n int) *int {
	return &n
}

package scoring

import (
	"strconv"
	"strings"
)

var (
	teamMarkerKeys = []string{"TEAM", "Team", "IsTeam", "Entry"}
	propKeys       = []string{"PROPS", "Props"}
)

// Snapshot is one normalized feed fetch. It is built once per refresh and only read afterwards.
type Snapshot struct {
	// Golfers is keyed by trimmed golfer name, case preserved
	Golfers map[string]GolferRecord `json:"golfers"`
	// Props holds prop scores keyed by trimmed team name
	Props map[string]int `json:"props"`
	// Skipped counts rows dropped for having no name
	Skipped int `json:"skipped"`
}

// NormalizeFeed builds a Snapshot from raw rows. Team prop rows go to Props, everything
// else is normalized as a golfer. A later row for the same golfer replaces an earlier one.
func NormalizeFeed(rows []Row, policy Policy) Snapshot {
	snap := Snapshot{
		Golfers: make(map[string]GolferRecord, len(rows)),
		Props:   make(map[string]int),
	}

	for _, row := range rows {
		if isPropRow(row) {
			team := row.first(nameKeys...)
			if team == "" {
				snap.Skipped++
				continue
			}
			snap.Props[team] = parseProp(row.first(propKeys...))
			continue
		}

		rec, ok := NormalizeRow(row, policy)
		if !ok {
			snap.Skipped++
			continue
		}
		snap.Golfers[rec.Name] = rec
	}

	return snap
}

// Lookup finds a golfer by exact name after trimming surrounding whitespace
func (s Snapshot) Lookup(name string) (GolferRecord, bool) {
	rec, ok := s.Golfers[strings.TrimSpace(name)]
	return rec, ok
}

func isPropRow(row Row) bool {
	switch strings.ToLower(row.first(teamMarkerKeys...)) {
	case "true", "yes", "y", "1", "x":
		return true
	}
	return false
}

func parseProp(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Sheets export whole numbers as "6.0" now and then
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByName    SortOrder = "name"
	SortByScore   SortOrder = "score"
	SortByStrokes SortOrder = "strokes"
)

// ParseSortOrder validates a sort order name
func ParseSortOrder(s string) (SortOrder, error) {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case SortByName, SortByScore, SortByStrokes:
		return order, nil
	default:
		return "", fmt.Errorf("invalid sort: %s (must be 'name', 'score' or 'strokes')", s)
	}
}

// sortGolfers sorts golfers in place by the given order
func sortGolfers(golfers []scoring.GolferRecord, order SortOrder) {
	switch order {
	case SortByName:
		sort.SliceStable(golfers, func(i, j int) bool {
			return compareByName(golfers[i], golfers[j])
		})
	case SortByScore:
		sort.SliceStable(golfers, func(i, j int) bool {
			a, b := golfers[i], golfers[j]
			if a.Status.IsSpecial() != b.Status.IsSpecial() {
				return !a.Status.IsSpecial()
			}
			if a.RelativeScore != b.RelativeScore {
				return a.RelativeScore < b.RelativeScore
			}
			// If scores are equal, sort by name
			return compareByName(a, b)
		})
	case SortByStrokes:
		sort.SliceStable(golfers, func(i, j int) bool {
			a, b := golfers[i], golfers[j]
			if a.Status.IsSpecial() != b.Status.IsSpecial() {
				return !a.Status.IsSpecial()
			}
			if a.TotalStrokes != b.TotalStrokes {
				return a.TotalStrokes < b.TotalStrokes
			}
			return compareByName(a, b)
		})
	}
}

// compareByName orders golfers case-insensitively, then by exact name
func compareByName(a, b scoring.GolferRecord) bool {
	la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if la != lb {
		return la < lb
	}
	return a.Name < b.Name
}

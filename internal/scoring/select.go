package scoring

import (
	"sort"
	"strconv"
	"strings"
)

// GolferResult is one pick in a team's breakdown
type GolferResult struct {
	Golfer    GolferRecord `json:"golfer"`
	Selected  bool         `json:"selected"`
	Unmatched bool         `json:"unmatched"`
}

// Selection is the outcome of resolving one team's picks
type Selection struct {
	// Selected holds the counted golfers, best first
	Selected []GolferRecord
	// Golfers holds every pick in roster order
	Golfers []GolferResult
}

// SelectTopN resolves picks against golfers and keeps the best policy.SelectionSize of them.
//
// Names match exactly after trimming; no case folding is applied, so the roster must spell
// golfers the way the feed does. Golfers with a special status always rank below golfers
// without one. Ties keep roster order.
func SelectTopN(picks []string, golfers map[string]GolferRecord, policy Policy) Selection {
	type candidate struct {
		index int
		rec   GolferRecord
	}

	sel := Selection{Golfers: make([]GolferResult, len(picks))}
	candidates := make([]candidate, 0, len(picks))

	for i, pick := range picks {
		name := strings.TrimSpace(pick)
		rec, ok := golfers[name]
		if !ok {
			rec = placeholder(name, policy.Unmatched)
		}
		sel.Golfers[i] = GolferResult{Golfer: rec, Unmatched: !ok}
		if !ok && policy.Unmatched == UnmatchedExclude {
			continue
		}
		candidates = append(candidates, candidate{index: i, rec: rec})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return less(candidates[i].rec, candidates[j].rec, policy.SelectionKey)
	})

	n := policy.SelectionSize
	if n <= 0 {
		n = DefaultSelectionSize
	}
	if len(candidates) < n {
		n = len(candidates)
	}

	sel.Selected = make([]GolferRecord, 0, n)
	for _, c := range candidates[:n] {
		sel.Selected = append(sel.Selected, c.rec)
		sel.Golfers[c.index].Selected = true
	}

	return sel
}

// less orders normal finishers before special-status golfers, then by the selection key
func less(a, b GolferRecord, key SelectionKey) bool {
	if a.Status.IsSpecial() != b.Status.IsSpecial() {
		return !a.Status.IsSpecial()
	}
	if key == SelectByTotalStrokes {
		return a.TotalStrokes < b.TotalStrokes
	}
	return a.RelativeScore < b.RelativeScore
}

// placeholder stands in for a pick the feed does not list
func placeholder(name string, policy UnmatchedPolicy) GolferRecord {
	if policy == UnmatchedPenalty {
		rec := GolferRecord{
			Name:                 name,
			RelativeScoreDisplay: string(StatusDNS),
			RelativeScore:        SpecialRelativePenalty,
			TotalStrokes:         PenaltyRoundStrokes * RoundCount,
			Status:               StatusDNS,
		}
		for i := range rec.Rounds {
			rec.Rounds[i] = intPtr(PenaltyRoundStrokes)
		}
		rec.TotalStrokesDisplay = strconv.Itoa(rec.TotalStrokes)
		return rec
	}

	return GolferRecord{
		Name:                 name,
		RelativeScoreDisplay: "E",
		TotalStrokesDisplay:  "0",
		Status:               StatusNone,
	}
}

package scoring

import (
	"fmt"
	"strings"
)

// RoundPenalty controls which golfers have unreported rounds replaced by PenaltyRoundStrokes
type RoundPenalty string

const (
	RoundPenaltySpecialOnly RoundPenalty = "special_only"
	RoundPenaltyAlways      RoundPenalty = "always"
)

// SelectionKey is the figure golfers are ordered by when picking a team's top N
type SelectionKey string

const (
	SelectByRelativeScore SelectionKey = "relative_score"
	SelectByTotalStrokes  SelectionKey = "total_strokes"
)

// UnmatchedPolicy decides what a pick with no feed record turns into
type UnmatchedPolicy string

const (
	UnmatchedNeutral UnmatchedPolicy = "neutral"
	UnmatchedPenalty UnmatchedPolicy = "penalty"
	UnmatchedExclude UnmatchedPolicy = "exclude"
)

// PropCombination decides how a team's prop score is folded into its relative score
type PropCombination string

const (
	PropsSubtract PropCombination = "subtract"
	PropsAdd      PropCombination = "add"
)

// DefaultSelectionSize is the number of golfers counted per team
const DefaultSelectionSize = 6

// Policy collects every scoring rule that is configurable.
type Policy struct {
	RoundPenalty    RoundPenalty    `json:"round_penalty"`
	SelectionKey    SelectionKey    `json:"selection_key"`
	Unmatched       UnmatchedPolicy `json:"unmatched"`
	PropCombination PropCombination `json:"prop_combination"`
	SelectionSize   int             `json:"selection_size"`
}

// DefaultPolicy returns the pool's standard rules: penalize only special-status golfers,
// select by relative score, score unmatched picks neutrally and subtract props.
func DefaultPolicy() Policy {
	return Policy{
		RoundPenalty:    RoundPenaltySpecialOnly,
		SelectionKey:    SelectByRelativeScore,
		Unmatched:       UnmatchedNeutral,
		PropCombination: PropsSubtract,
		SelectionSize:   DefaultSelectionSize,
	}
}

// Validate reports the first field holding a value the pipeline does not understand
func (p Policy) Validate() error {
	if _, err := ParseRoundPenalty(string(p.RoundPenalty)); err != nil {
		return err
	}
	if _, err := ParseSelectionKey(string(p.SelectionKey)); err != nil {
		return err
	}
	if _, err := ParseUnmatchedPolicy(string(p.Unmatched)); err != nil {
		return err
	}
	if _, err := ParsePropCombination(string(p.PropCombination)); err != nil {
		return err
	}
	if p.SelectionSize < 1 {
		return fmt.Errorf("invalid selection size: %d (must be at least 1)", p.SelectionSize)
	}
	return nil
}

// ParseRoundPenalty parses "always" or "special_only" (case-insensitive, '-' accepted for '_')
func ParseRoundPenalty(s string) (RoundPenalty, error) {
	v, err := parseChoice("round penalty", s, string(RoundPenaltySpecialOnly), string(RoundPenaltyAlways))
	return RoundPenalty(v), err
}

// ParseSelectionKey parses "relative_score" or "total_strokes"
func ParseSelectionKey(s string) (SelectionKey, error) {
	v, err := parseChoice("selection key", s, string(SelectByRelativeScore), string(SelectByTotalStrokes))
	return SelectionKey(v), err
}

// ParseUnmatchedPolicy parses "neutral", "penalty" or "exclude"
func ParseUnmatchedPolicy(s string) (UnmatchedPolicy, error) {
	v, err := parseChoice("unmatched policy", s, string(UnmatchedNeutral), string(UnmatchedPenalty), string(UnmatchedExclude))
	return UnmatchedPolicy(v), err
}

// ParsePropCombination parses "subtract" or "add"
func ParsePropCombination(s string) (PropCombination, error) {
	v, err := parseChoice("prop combination", s, string(PropsSubtract), string(PropsAdd))
	return PropCombination(v), err
}

func parseChoice(what, s string, choices ...string) (string, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, c := range choices {
		if normalized == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid %s: %q (must be one of %s)", what, s, strings.Join(choices, ", "))
}

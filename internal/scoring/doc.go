// Package scoring ranks fantasy golf pool entries from a live leaderboard feed.
//
// The scoring package is a pure pipeline. Raw feed rows are normalized into GolferRecords
// (NormalizeFeed), each team's picks are resolved and the best N golfers selected
// (SelectTopN), the selection is summed (Aggregate), prop points are applied (ApplyProps)
// and the teams are put in a stable total order (Rank). ComputeStandings runs all of it.
//
// Every policy decision the pool has varied on over time (round penalties, the selection
// key, unmatched picks and how props combine) lives in a single Policy value. Nothing in
// this package performs I/O or keeps state between calls.
package scoring

package searcher

import (
	"sort"

	"cartographer/game"
)

// RankedMove pairs a root action with its accumulated search statistics.
type RankedMove struct {
	Move   game.Move
	Visits float64
	Value  float64 // mean simulation value
}

// sortRanked orders by visit count, then mean value. The sort is stable so
// fully tied actions keep their reduced-action-set order, which keeps
// rankings reproducible across runs.
func sortRanked(moves []RankedMove) {
	sort.SliceStable(moves, func(i, j int) bool {
		if moves[i].Visits != moves[j].Visits {
			return moves[i].Visits > moves[j].Visits
		}
		return moves[i].Value > moves[j].Value
	})
}

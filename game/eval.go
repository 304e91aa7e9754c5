package game

// Heuristic leaf evaluations for cutoff rollouts. Each maps a mid-game state
// to a normalized [0, 1] estimate of the reachable final score. The searcher
// accepts any Evaluate, including an external value network; these are the
// built-in baselines.

// EvaluateScore treats the current score snapshot as if the game ended now.
// Pessimistic early (most scoring accrues late) but cheap and monotone.
func EvaluateScore(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	return NormalizeScore(gs.ScoreSnapshot())
}

// EvaluateProgress blends the score snapshot with board coverage. Filling
// cells is weak evidence of future cluster scoring, which counters the
// late-accrual bias of the plain snapshot.
func EvaluateProgress(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	score := NormalizeScore(gs.ScoreSnapshot())

	total := gs.Grid.Size() * gs.Grid.Size()
	coverage := float64(total-gs.Grid.EmptyCellCount()) / float64(total)

	return (2*score + coverage) / 3
}

package engine

import (
	"cartographer/game"
	"cartographer/searcher"
)

// HintResult is forward-looking advice for a human player: the top-K ranked
// candidate actions together with the known upcoming cards, nothing applied
// to the live game.
type HintResult struct {
	Ranked   []searcher.RankedMove
	Upcoming []game.Card
}

// Hint searches the given state and pairs the top-K actions with the next
// lookahead cards in draw order.
func Hint(state *game.GameState, m *searcher.MCTS, topK, lookahead int) HintResult {
	ranked, _ := m.Hint(state, topK)
	return HintResult{
		Ranked:   ranked,
		Upcoming: state.Upcoming(lookahead),
	}
}

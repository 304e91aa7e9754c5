package searcher

import (
	"sync"

	"cartographer/game"
)

// chance wraps a stochastic move: finishing a card draws the next one from a
// hidden deck, so the same action can land in different states. Outcomes are
// identified by state hash and each gets its own decision child.
type chance struct {
	sync.RWMutex
	parent   Node
	children []*decision
	rewards  float64
	visits   float64
}

func newChance(parent Node) *chance {
	return &chance{parent: parent}
}

func (c *chance) SelectOrExpand(state game.State) (Node, game.State, bool) {
	c.Lock()
	defer c.Unlock()

	// Select if explored outcome
	selected := true
	child := c.selects(state.Hash())
	// Expand if unexplored outcome
	if child == nil {
		child = c.expands(state)
		selected = false
	}

	child.applyLoss()
	return child, state, selected
}

func (c *chance) selects(expected game.StateHash) *decision {
	for _, child := range c.children {
		if child.hash == expected {
			return child
		}
	}
	return nil
}

func (c *chance) expands(state game.State) *decision {
	child := newDecision(c, state)
	c.children = append(c.children, child)
	return child
}

func (c *chance) applyLoss() {
	c.Lock()
	defer c.Unlock()

	c.rewards += Loss
	c.visits++
}

func (c *chance) score(normalizer float64) float64 {
	c.RLock()
	defer c.RUnlock()

	return ucb1(c.rewards, c.visits, normalizer)
}

func (c *chance) stats() (float64, float64) {
	c.RLock()
	defer c.RUnlock()

	return c.rewards, c.visits
}

func (c *chance) Backup(score float64) Node {
	c.Lock()
	defer c.Unlock()

	c.reverseLoss()

	c.rewards += score
	c.visits++

	return c.parent
}

func (c *chance) reverseLoss() {
	c.rewards -= Loss
	c.visits--
}

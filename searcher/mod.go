package searcher

import (
	"math"

	"cartographer/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

// Rewards are normalized scores in [0, 1]. A virtual loss pins in-flight
// simulations to the worst outcome so parallel workers spread out.
const (
	MaxReward    = 1.0
	Loss         = 0.0
	NeutralValue = 0.5 // substituted when a leaf evaluation fails
)

// Node is one position in the search tree. Decision nodes branch on the
// reduced action set; chance nodes branch on draw outcomes.
type Node interface {
	// SelectOrExpand descends one level: it either selects an explored child
	// (selected=true), adds a child for an unexplored action (selected=false),
	// or stops at a terminal node (child == receiver).
	SelectOrExpand(state game.State) (child Node, childState game.State, selected bool)
	// Backup folds a simulation result into the node and returns its parent.
	Backup(score float64) Node
	applyLoss()
	score(normalizer float64) float64
	stats() (rewards, visits float64)
}

func ucb1(rewards, visits, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/visits + math.Sqrt(c2LnN/visits)
}

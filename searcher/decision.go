package searcher

import (
	"math"
	"sync"

	"cartographer/game"
)

// decision wraps a position where the player picks from the reduced action
// set. Children are created lazily, one per unexplored action; explored[i]
// is the move leading to children[i].
type decision struct {
	sync.RWMutex
	parent     Node
	hash       game.StateHash
	unexplored []game.Move
	explored   []game.Move
	children   []Node
	rewards    float64
	visits     float64
}

func newDecision(parent Node, state game.State) *decision {
	moves := state.LegalMoves()
	return &decision{
		parent:     parent,
		hash:       state.Hash(),
		unexplored: moves,
		explored:   make([]game.Move, 0, len(moves)),
		children:   make([]Node, 0, len(moves)),
	}
}

func (d *decision) SelectOrExpand(state game.State) (Node, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.explored) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		child, childState := d.addChild(state)
		child.applyLoss()
		return child, childState, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	child.applyLoss()
	return child, state.Play(d.explored[ith]), true
}

func (d *decision) addChild(state game.State) (Node, game.State) {
	move := d.unexplored[len(d.unexplored)-1]
	d.unexplored = d.unexplored[:len(d.unexplored)-1]

	childState := state.Play(move)
	var child Node
	if move.IsDeterministic() {
		child = newDecision(d, childState)
	} else {
		child = newChance(d)
	}
	d.explored = append(d.explored, move)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) pickChild() int {
	if d.visits == 0 {
		panic("node has children but no visits")
	}

	normalizer := CSquared * math.Log(d.visits)

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) score(normalizer float64) float64 {
	d.RLock()
	defer d.RUnlock()

	return ucb1(d.rewards, d.visits, normalizer)
}

func (d *decision) stats() (float64, float64) {
	d.RLock()
	defer d.RUnlock()

	return d.rewards, d.visits
}

func (d *decision) Backup(score float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += score
	d.visits++

	return d.parent
}

// ranked reports every explored root action ordered by visit count, with
// mean value as the tie-break. Visit count is the robust choice: it is less
// noisy than raw value under partial exploration.
func (d *decision) ranked() []RankedMove {
	d.RLock()
	defer d.RUnlock()

	out := make([]RankedMove, len(d.explored))
	for i, move := range d.explored {
		rewards, visits := d.children[i].stats()
		value := 0.0
		if visits > 0 {
			value = rewards / visits
		}
		out[i] = RankedMove{Move: move, Visits: visits, Value: value}
	}
	sortRanked(out)
	return out
}

package game

import "sort"

// Reducer produces the reduced action set: all legal placements of a card,
// with geometrically equivalent (rotation/reflection) duplicates collapsed
// through the shape's precomputed distinct orientations. Raw enumeration of
// all 8 dihedral transforms inflates the branching factor by up to 8x for
// symmetric shapes, and the branching factor bounds MCTS cost, so results are
// memoized per shape identity and grid occupancy fingerprint.
//
// A Reducer belongs to exactly one GameState; clones start with a fresh memo
// (orientation sets live on the shapes, so the expensive part is shared
// anyway).
type Reducer struct {
	memo map[reducerKey][]shapePlacement
}

type reducerKey struct {
	shapeID     string
	fingerprint StateHash
}

type shapePlacement struct {
	orientation int
	anchor      Cell
	cells       []Cell
}

func NewReducer() *Reducer {
	return &Reducer{memo: make(map[reducerKey][]shapePlacement)}
}

// Reduce returns the ordered legal placements for a card on the grid.
// Exploration order is deterministic - option index, then row-major anchor,
// then orientation index - so action indices are reproducible across runs
// for the same board state. Ambush placements follow the card's printed
// corner/rotation scan instead. An empty result is a valid state (the rules
// engine answers it with the forced skip), never an error.
func (r *Reducer) Reduce(card Card, g *Grid) []Placement {
	switch c := card.(type) {
	case *ExplorationCard:
		var out []Placement
		for i, opt := range c.Options {
			for _, sp := range r.reduceShape(opt.Shape, g) {
				out = append(out, Placement{
					Option:      i,
					Orientation: sp.orientation,
					Anchor:      sp.anchor,
					Terrain:     opt.Terrain,
					Cells:       sp.cells,
				})
			}
		}
		return out
	case *AmbushCard:
		var out []Placement
		for _, sp := range r.reduceShape(c.Shape, g) {
			out = append(out, Placement{
				Option:      0,
				Orientation: sp.orientation,
				Anchor:      sp.anchor,
				Terrain:     Monster,
				Cells:       sp.cells,
			})
		}
		size := g.Size()
		sort.SliceStable(out, func(i, j int) bool {
			ki, kj := c.scanKey(out[i].Anchor, size), c.scanKey(out[j].Anchor, size)
			if ki != kj {
				return ki < kj
			}
			return out[i].Orientation < out[j].Orientation
		})
		return out
	case *RuinCard:
		// Ruin cards resolve without a placement.
		return nil
	default:
		panic("unexpected card type")
	}
}

// reduceShape enumerates (anchor, orientation) pairs whose absolute cells are
// all on the board and empty. Distinct orientations plus canonical anchoring
// make the pair-to-cellset mapping injective, so no further deduplication is
// needed.
func (r *Reducer) reduceShape(shape *Shape, g *Grid) []shapePlacement {
	key := reducerKey{shapeID: shape.ID(), fingerprint: g.Fingerprint()}
	if cached, ok := r.memo[key]; ok {
		return cached
	}

	orientations := shape.Orientations()
	var out []shapePlacement
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			anchor := Cell{row, col}
			for oi, offsets := range orientations {
				cells := absoluteCells(offsets, anchor)
				if g.canPlace(cells) {
					out = append(out, shapePlacement{orientation: oi, anchor: anchor, cells: cells})
				}
			}
		}
	}
	r.memo[key] = out
	return out
}

// Invalidate drops memo entries that no longer match the grid occupancy.
// Called by the rules engine after each accepted placement; entries for the
// new fingerprint are rebuilt lazily on the next Reduce.
func (r *Reducer) Invalidate(g *Grid) {
	current := g.Fingerprint()
	for key := range r.memo {
		if key.fingerprint != current {
			delete(r.memo, key)
		}
	}
}

// Copy returns a reducer with a fresh memo. Cached placements reference
// cells computed against the parent's grid and must not leak across search
// branches.
func (r *Reducer) Copy() *Reducer {
	return NewReducer()
}

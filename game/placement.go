package game

// Placement applies one option of the active card at a board anchor in one of
// the shape's distinct orientations. Placements are produced by the symmetry
// reducer in a stable order, so their index doubles as a discrete action
// index for the environment adapter.
type Placement struct {
	Option      int // index into the active card's options
	Orientation int // index into the shape's distinct orientations
	Anchor      Cell
	Terrain     Terrain
	Cells       []Cell // resolved absolute target cells

	drawsHidden bool
}

func (p Placement) IsDeterministic() bool {
	return !p.drawsHidden
}

// Skip is the forced pseudo-action when the active card has no legal
// placement anywhere on the grid. It is the game's discard rule: time still
// advances, nothing is placed. An empty reduced action set is a valid game
// state, not an error.
type Skip struct {
	drawsHidden bool
}

func (s Skip) IsDeterministic() bool {
	return !s.drawsHidden
}

// absoluteCells translates an orientation's offsets to board coordinates.
func absoluteCells(offsets []Offset, anchor Cell) []Cell {
	out := make([]Cell, len(offsets))
	for i, o := range offsets {
		out[i] = Cell{Row: anchor.Row + o.Row, Col: anchor.Col + o.Col}
	}
	return out
}

// samePlacement compares placements by identity of their effect: same option,
// same orientation, same anchor.
func samePlacement(a, b Placement) bool {
	return a.Option == b.Option && a.Orientation == b.Orientation && a.Anchor == b.Anchor
}

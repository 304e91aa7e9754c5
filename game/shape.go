package game

import "sort"

// Offset is a shape-relative coordinate. Shapes are canonicalized so the
// minimum row and column are both zero.
type Offset struct {
	Row int
	Col int
}

// Shape is an immutable piece geometry shared by every placement of the same
// card. Distinct orientations under the dihedral group are computed once at
// construction.
type Shape struct {
	id           string
	offsets      []Offset
	orientations [][]Offset
}

// NewShape canonicalizes the offsets and precomputes the distinct
// orientations. The orientation count always divides 8: a shape with internal
// symmetry maps onto itself under part of the dihedral group and contributes
// fewer than 8 distinct images.
func NewShape(id string, offsets []Offset) *Shape {
	s := &Shape{
		id:      id,
		offsets: normalize(offsets),
	}
	s.orientations = distinctOrientations(s.offsets)
	return s
}

func (s *Shape) ID() string {
	return s.id
}

func (s *Shape) Offsets() []Offset {
	return s.offsets
}

// Orientations returns the distinct images of the shape under all rotations
// and reflections, each canonicalized, in a stable order. Index into this
// slice is the orientation index carried by placements.
func (s *Shape) Orientations() [][]Offset {
	return s.orientations
}

func (s *Shape) Len() int {
	return len(s.offsets)
}

// Transform mirrors (columns negated) and then rotates the shape by the given
// quarter turns, renormalizing to the canonical origin. Mirror-then-rotate
// ordering matters: the two operations do not commute.
func Transform(offsets []Offset, rotation int, mirror bool) []Offset {
	out := make([]Offset, len(offsets))
	copy(out, offsets)
	if mirror {
		for i, o := range out {
			out[i] = Offset{Row: o.Row, Col: -o.Col}
		}
	}
	for r := 0; r < rotation%4; r++ {
		for i, o := range out {
			out[i] = Offset{Row: o.Col, Col: -o.Row}
		}
	}
	return normalize(out)
}

// normalize translates offsets so min row and min col are zero and sorts them
// row-major, producing a canonical representation for equality checks.
func normalize(offsets []Offset) []Offset {
	if len(offsets) == 0 {
		return nil
	}
	minRow, minCol := offsets[0].Row, offsets[0].Col
	for _, o := range offsets[1:] {
		if o.Row < minRow {
			minRow = o.Row
		}
		if o.Col < minCol {
			minCol = o.Col
		}
	}
	out := make([]Offset, len(offsets))
	for i, o := range offsets {
		out[i] = Offset{Row: o.Row - minRow, Col: o.Col - minCol}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func sameOffsets(a, b []Offset) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// distinctOrientations applies all 8 dihedral transforms and deduplicates the
// canonical images. Transform order (rotations first, then mirrored
// rotations) fixes the orientation indices for reproducible action ordering.
func distinctOrientations(offsets []Offset) [][]Offset {
	var out [][]Offset
	for _, mirror := range []bool{false, true} {
		for rotation := 0; rotation < 4; rotation++ {
			img := Transform(offsets, rotation, mirror)
			dup := false
			for _, seen := range out {
				if sameOffsets(seen, img) {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, img)
			}
		}
	}
	return out
}

package game

import (
	"fmt"
	"hash/fnv"
)

// Cell addresses a single map field by row and column.
type Cell struct {
	Row int
	Col int
}

// Grid is the player's map sheet: a fixed square of terrain cells plus the
// printed ruin markers. Mutation happens only through place, which the rules
// engine calls; everything else is a read-only query.
type Grid struct {
	size    int
	terrain []Terrain // row-major
	seasons []uint8   // season (1..4) each cell was filled in, 0 for prefilled
	ruins   map[Cell]bool
	empties int
}

// NewGrid returns an all-empty grid of the given size with the provided
// prefilled mountain cells and ruin markers.
func NewGrid(size int, mountains, ruins []Cell) *Grid {
	g := &Grid{
		size:    size,
		terrain: make([]Terrain, size*size),
		seasons: make([]uint8, size*size),
		ruins:   make(map[Cell]bool, len(ruins)),
		empties: size * size,
	}
	for _, c := range mountains {
		g.terrain[g.index(c)] = Mountain
		g.empties--
	}
	for _, c := range ruins {
		g.ruins[c] = true
	}
	return g
}

// NewMapA builds the standard 11x11 map with its printed mountains and ruins.
func NewMapA() *Grid {
	mountains := []Cell{{1, 3}, {2, 8}, {5, 5}, {8, 2}, {9, 7}}
	ruins := []Cell{{1, 5}, {2, 1}, {2, 9}, {8, 1}, {8, 9}, {9, 5}}
	return NewGrid(11, mountains, ruins)
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.size + c.Col
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) OnBoard(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func (g *Grid) TerrainAt(c Cell) Terrain {
	return g.terrain[g.index(c)]
}

// SeasonAt returns the season a cell was filled in, or 0 for prefilled and
// empty cells.
func (g *Grid) SeasonAt(c Cell) int {
	return int(g.seasons[g.index(c)])
}

func (g *Grid) IsEmpty(c Cell) bool {
	return g.terrain[g.index(c)] == Empty
}

func (g *Grid) EmptyCellCount() int {
	return g.empties
}

func (g *Grid) IsRuin(c Cell) bool {
	return g.ruins[c]
}

// Copy deep copies the grid. Ruin markers are immutable after construction
// and shared between copies.
func (g *Grid) Copy() *Grid {
	terrain := make([]Terrain, len(g.terrain))
	copy(terrain, g.terrain)
	seasons := make([]uint8, len(g.seasons))
	copy(seasons, g.seasons)
	return &Grid{
		size:    g.size,
		terrain: terrain,
		seasons: seasons,
		ruins:   g.ruins,
		empties: g.empties,
	}
}

// place writes terrain into the given cells. The terrain must be placeable
// and every target on the board and empty; cells transition empty to
// non-empty at most once.
func (g *Grid) place(cells []Cell, t Terrain, season int) error {
	if !t.Placeable() {
		return &IllegalPlacementError{Reason: fmt.Sprintf("terrain %s is not placeable", t)}
	}
	for _, c := range cells {
		if !g.OnBoard(c) {
			return &IllegalPlacementError{Reason: "cell off the board"}
		}
		if !g.IsEmpty(c) {
			return &IllegalPlacementError{Reason: "cell already filled"}
		}
	}
	for _, c := range cells {
		i := g.index(c)
		g.terrain[i] = t
		g.seasons[i] = uint8(season)
		g.empties--
	}
	return nil
}

// canPlace reports whether every cell is on the board and empty.
func (g *Grid) canPlace(cells []Cell) bool {
	for _, c := range cells {
		if !g.OnBoard(c) || !g.IsEmpty(c) {
			return false
		}
	}
	return true
}

// Fingerprint hashes the grid occupancy. Two grids with identical terrain
// layouts share a fingerprint, which keys the symmetry reducer's memo and
// identifies chance-node outcomes in the searcher.
func (g *Grid) Fingerprint() StateHash {
	h := fnv.New64a()
	buf := make([]byte, len(g.terrain))
	for i, t := range g.terrain {
		buf[i] = byte(t)
	}
	h.Write(buf)
	return StateHash(h.Sum64())
}

var neighborOffsets = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the on-board 4-neighbors of a cell.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		n := Cell{c.Row + d.Row, c.Col + d.Col}
		if g.OnBoard(n) {
			out = append(out, n)
		}
	}
	return out
}

// isSurrounded reports whether every 4-neighbor of the cell is filled, with
// the board edge counting as filled.
func (g *Grid) isSurrounded(c Cell) bool {
	for _, d := range neighborOffsets {
		n := Cell{c.Row + d.Row, c.Col + d.Col}
		if g.OnBoard(n) && g.IsEmpty(n) {
			return false
		}
	}
	return true
}

// SurroundedMountains counts mountain cells whose 4-neighborhood is fully
// filled. Each one is worth a coin.
func (g *Grid) SurroundedMountains() int {
	count := 0
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			c := Cell{row, col}
			if g.TerrainAt(c) == Mountain && g.isSurrounded(c) {
				count++
			}
		}
	}
	return count
}

// MonsterPenalty counts the empty cells adjacent to at least one monster
// cell. Subtracted from the final score.
func (g *Grid) MonsterPenalty() int {
	seen := make(map[Cell]bool)
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			c := Cell{row, col}
			if g.TerrainAt(c) != Monster {
				continue
			}
			for _, n := range g.Neighbors(c) {
				if g.IsEmpty(n) {
					seen[n] = true
				}
			}
		}
	}
	return len(seen)
}

// Cluster is a 4-connected group of same-terrain cells, examined by the
// scoring rules.
type Cluster struct {
	cells []Cell
	grid  *Grid
}

func (cl *Cluster) Len() int {
	return len(cl.cells)
}

func (cl *Cluster) Cells() []Cell {
	return cl.cells
}

// Surrounding returns the distinct on-board cells bordering the cluster.
func (cl *Cluster) Surrounding() []Cell {
	member := make(map[Cell]bool, len(cl.cells))
	for _, c := range cl.cells {
		member[c] = true
	}
	seen := make(map[Cell]bool)
	out := []Cell{}
	for _, c := range cl.cells {
		for _, n := range cl.grid.Neighbors(c) {
			if !member[n] && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

// SurroundingTerrains returns the terrain of each bordering cell.
func (cl *Cluster) SurroundingTerrains() []Terrain {
	cells := cl.Surrounding()
	out := make([]Terrain, len(cells))
	for i, c := range cells {
		out[i] = cl.grid.TerrainAt(c)
	}
	return out
}

// BordersTerrain reports whether any bordering cell has the given terrain.
func (cl *Cluster) BordersTerrain(t Terrain) bool {
	for _, bt := range cl.SurroundingTerrains() {
		if bt == t {
			return true
		}
	}
	return false
}

// OnEdge reports whether any cluster cell touches the board edge.
func (cl *Cluster) OnEdge() bool {
	last := cl.grid.size - 1
	for _, c := range cl.cells {
		if c.Row == 0 || c.Row == last || c.Col == 0 || c.Col == last {
			return true
		}
	}
	return false
}

// Clusters flood-fills the grid and returns every 4-connected cluster of the
// given terrain in row-major discovery order.
func (g *Grid) Clusters(t Terrain) []*Cluster {
	visited := make([]bool, len(g.terrain))
	var clusters []*Cluster
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			start := Cell{row, col}
			i := g.index(start)
			if visited[i] || g.terrain[i] != t {
				continue
			}
			// BFS from start
			cells := []Cell{start}
			visited[i] = true
			for head := 0; head < len(cells); head++ {
				for _, n := range g.Neighbors(cells[head]) {
					j := g.index(n)
					if !visited[j] && g.terrain[j] == t {
						visited[j] = true
						cells = append(cells, n)
					}
				}
			}
			clusters = append(clusters, &Cluster{cells: cells, grid: g})
		}
	}
	return clusters
}

// ScoreSnapshot sums the given scoring rules over the current grid. Purely
// informational between seasons; the terminal score is computed by the rules
// engine at game over.
func (g *Grid) ScoreSnapshot(rules []ScoringCard) int {
	total := 0
	for _, r := range rules {
		total += r.Evaluate(g)
	}
	return total
}

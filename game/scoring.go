package game

import "math/rand"

// TaskGroup partitions the scoring cards; one card per group is active in a
// game, one group scored per season.
type TaskGroup uint8

const (
	VillageTasks TaskGroup = iota
	ForestTasks
	WaterFarmTasks
	GeometryTasks
)

// ScoringCard is an immutable rule: a pure function from a final grid to a
// point contribution. Evaluating never mutates the grid, so recomputing the
// terminal score is idempotent.
type ScoringCard struct {
	Name     string
	ID       int
	Group    TaskGroup
	Evaluate func(*Grid) int
}

// ScoringDeck selects the four active scoring cards: one per task group, in
// a seed-shuffled group order.
type ScoringDeck struct {
	cards []ScoringCard
	order []TaskGroup
}

func NewScoringDeck(seed int64, cards []ScoringCard) *ScoringDeck {
	rng := rand.New(rand.NewSource(seed))
	order := []TaskGroup{VillageTasks, ForestTasks, WaterFarmTasks, GeometryTasks}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	shuffled := make([]ScoringCard, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return &ScoringDeck{cards: shuffled, order: order}
}

// Draw returns one scoring card per task group following the shuffled group
// order: the active cards for seasons 1 through 4.
func (sd *ScoringDeck) Draw() []ScoringCard {
	out := make([]ScoringCard, len(sd.order))
	for i, group := range sd.order {
		for _, c := range sd.cards {
			if c.Group == group {
				out[i] = c
				break
			}
		}
	}
	return out
}

// Village group

// scoreBastions: 8 points per village cluster of at least 6 cells.
func scoreBastions(g *Grid) int {
	score := 0
	for _, cl := range g.Clusters(Village) {
		if cl.Len() >= 6 {
			score += 8
		}
	}
	return score
}

// scoreMetropolis: 1 point per cell of the largest village cluster that does
// not border a mountain.
func scoreMetropolis(g *Grid) int {
	best := 0
	for _, cl := range g.Clusters(Village) {
		if cl.BordersTerrain(Mountain) {
			continue
		}
		if cl.Len() > best {
			best = cl.Len()
		}
	}
	return best
}

// scoreShieldOfTheRealm: 2 points per cell of the second-largest village
// cluster.
func scoreShieldOfTheRealm(g *Grid) int {
	first, second := 0, 0
	for _, cl := range g.Clusters(Village) {
		n := cl.Len()
		switch {
		case n > first:
			second = first
			first = n
		case n > second:
			second = n
		}
	}
	return second * 2
}

// scoreShimmeringPlain: 3 points per village cluster bordering at least 3
// distinct non-empty terrains.
func scoreShimmeringPlain(g *Grid) int {
	score := 0
	for _, cl := range g.Clusters(Village) {
		kinds := make(map[Terrain]bool)
		for _, t := range cl.SurroundingTerrains() {
			if t != Empty {
				kinds[t] = true
			}
		}
		if len(kinds) >= 3 {
			score += 3
		}
	}
	return score
}

// Forest group

// scoreForestPath: 3 points per mountain connected through a single forest
// cluster to at least one other mountain.
func scoreForestPath(g *Grid) int {
	connected := make(map[Cell]bool)
	for _, cl := range g.Clusters(Forest) {
		var mountains []Cell
		for _, c := range cl.Surrounding() {
			if g.TerrainAt(c) == Mountain {
				mountains = append(mountains, c)
			}
		}
		if len(mountains) >= 2 {
			for _, c := range mountains {
				connected[c] = true
			}
		}
	}
	return len(connected) * 3
}

// scoreSentinelWood: 1 point per forest cell on the board edge.
func scoreSentinelWood(g *Grid) int {
	score := 0
	last := g.Size() - 1
	for row := 0; row <= last; row++ {
		for col := 0; col <= last; col++ {
			if row != 0 && row != last && col != 0 && col != last {
				continue
			}
			if g.TerrainAt(Cell{row, col}) == Forest {
				score++
			}
		}
	}
	return score
}

// scoreGreenbough: 1 point per row and per column containing at least one
// forest cell.
func scoreGreenbough(g *Grid) int {
	size := g.Size()
	score := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if g.TerrainAt(Cell{row, col}) == Forest {
				score++
				break
			}
		}
	}
	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			if g.TerrainAt(Cell{row, col}) == Forest {
				score++
				break
			}
		}
	}
	return score
}

// scoreMurkwood: 1 point per forest cell whose 4-neighborhood is fully
// filled, edges included.
func scoreMurkwood(g *Grid) int {
	score := 0
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := Cell{row, col}
			if g.TerrainAt(c) == Forest && g.isSurrounded(c) {
				score++
			}
		}
	}
	return score
}

// Water/Farm group

// scoreGoldenGranary: 1 point per water cell adjacent to a ruin cell, 3
// points per farm cell placed on a ruin.
func scoreGoldenGranary(g *Grid) int {
	score := 0
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := Cell{row, col}
			switch g.TerrainAt(c) {
			case Water:
				for _, n := range g.Neighbors(c) {
					if g.IsRuin(n) {
						score++
						break
					}
				}
			case Farm:
				if g.IsRuin(c) {
					score += 3
				}
			}
		}
	}
	return score
}

// scoreMageValley: 2 points per water cell and 1 per farm cell adjacent to a
// mountain.
func scoreMageValley(g *Grid) int {
	score := 0
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := Cell{row, col}
			t := g.TerrainAt(c)
			if t != Water && t != Farm {
				continue
			}
			for _, n := range g.Neighbors(c) {
				if g.TerrainAt(n) == Mountain {
					if t == Water {
						score += 2
					} else {
						score++
					}
					break
				}
			}
		}
	}
	return score
}

// scoreCanalLake: 1 point per water cell adjacent to a farm, 1 per farm cell
// adjacent to water.
func scoreCanalLake(g *Grid) int {
	score := 0
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := Cell{row, col}
			t := g.TerrainAt(c)
			var want Terrain
			switch t {
			case Water:
				want = Farm
			case Farm:
				want = Water
			default:
				continue
			}
			for _, n := range g.Neighbors(c) {
				if g.TerrainAt(n) == want {
					score++
					break
				}
			}
		}
	}
	return score
}

// scoreShoresideExpanse: 3 points per farm cluster not on the edge and not
// bordering water, 3 per water cluster not on the edge and not bordering a
// farm.
func scoreShoresideExpanse(g *Grid) int {
	score := 0
	for _, cl := range g.Clusters(Farm) {
		if !cl.OnEdge() && !cl.BordersTerrain(Water) {
			score += 3
		}
	}
	for _, cl := range g.Clusters(Water) {
		if !cl.OnEdge() && !cl.BordersTerrain(Farm) {
			score += 3
		}
	}
	return score
}

// Geometry group

// scoreInaccessibleBarony: 3 points per column of the largest fully filled
// square.
func scoreInaccessibleBarony(g *Grid) int {
	size := g.Size()
	best := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			limit := size - row
			if size-col < limit {
				limit = size - col
			}
			for side := best + 1; side <= limit; side++ {
				if filledSquare(g, row, col, side) {
					best = side
				} else {
					break
				}
			}
		}
	}
	return best * 3
}

func filledSquare(g *Grid, row, col, side int) bool {
	for r := row; r < row+side; r++ {
		for c := col; c < col+side; c++ {
			if g.IsEmpty(Cell{r, c}) {
				return false
			}
		}
	}
	return true
}

// scoreBorderlands: 6 points per fully filled row or column.
func scoreBorderlands(g *Grid) int {
	size := g.Size()
	score := 0
	for row := 0; row < size; row++ {
		full := true
		for col := 0; col < size; col++ {
			if g.IsEmpty(Cell{row, col}) {
				full = false
				break
			}
		}
		if full {
			score += 6
		}
	}
	for col := 0; col < size; col++ {
		full := true
		for row := 0; row < size; row++ {
			if g.IsEmpty(Cell{row, col}) {
				full = false
				break
			}
		}
		if full {
			score += 6
		}
	}
	return score
}

// scoreCauldrons: 1 point per empty cell whose 4-neighborhood is fully
// filled, edges included.
func scoreCauldrons(g *Grid) int {
	score := 0
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := Cell{row, col}
			if g.IsEmpty(c) && g.isSurrounded(c) {
				score++
			}
		}
	}
	return score
}

// scoreLongRoad: 3 points per fully filled diagonal running from the left
// edge down to the bottom edge.
func scoreLongRoad(g *Grid) int {
	size := g.Size()
	score := 0
	for start := 0; start < size; start++ {
		full := true
		for row, col := start, 0; row < size; row, col = row+1, col+1 {
			if g.IsEmpty(Cell{row, col}) {
				full = false
				break
			}
		}
		if full {
			score += 3
		}
	}
	return score
}

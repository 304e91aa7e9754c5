package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lineCard(id int, length int) *ExplorationCard {
	offsets := make([]Offset, length)
	for i := range offsets {
		offsets[i] = Offset{0, i}
	}
	return &ExplorationCard{
		Name: "line", ID: id, Time: 1,
		Options: []ExplorationOption{
			{Shape: NewShape("line", offsets), Terrain: Water},
		},
	}
}

func TestReduce(t *testing.T) {
	t.Run("4-line on an empty 4x4 grid collapses to two orientations", func(t *testing.T) {
		g := NewGrid(4, nil, nil)
		r := NewReducer()

		placements := r.Reduce(lineCard(1, 4), g)

		// Horizontal: anchors (0..3, 0). Vertical: anchors (0, 0..3).
		// 180-degree rotation and reflection reproduce the same offset sets,
		// so not 4 orientations.
		require.Len(t, placements, 8)
		orientations := map[int]bool{}
		for _, p := range placements {
			orientations[p.Orientation] = true
		}
		require.Len(t, orientations, 2)
	})

	t.Run("ordering is row-major anchor then orientation", func(t *testing.T) {
		g := NewGrid(3, nil, nil)
		r := NewReducer()

		placements := r.Reduce(lineCard(2, 2), g)

		require.NotEmpty(t, placements)
		for i := 1; i < len(placements); i++ {
			prev, cur := placements[i-1], placements[i]
			if prev.Option != cur.Option {
				continue
			}
			prevKey := (prev.Anchor.Row*3+prev.Anchor.Col)*8 + prev.Orientation
			curKey := (cur.Anchor.Row*3+cur.Anchor.Col)*8 + cur.Orientation
			require.Less(t, prevKey, curKey, "placements out of order at %d", i)
		}
	})

	t.Run("reduction is reproducible for the same occupancy", func(t *testing.T) {
		g := NewGrid(4, []Cell{{1, 1}}, nil)

		a := NewReducer().Reduce(lineCard(3, 3), g)
		b := NewReducer().Reduce(lineCard(3, 3), g)

		require.Equal(t, a, b)
	})

	t.Run("occupied cells prune placements", func(t *testing.T) {
		g := NewGrid(2, nil, nil)
		r := NewReducer()
		card := lineCard(4, 2)

		before := r.Reduce(card, g)
		require.Len(t, before, 4) // 2 horizontal + 2 vertical

		require.NoError(t, g.place([]Cell{{0, 0}}, Forest, 1))
		r.Invalidate(g)

		after := r.Reduce(card, g)
		require.Len(t, after, 2, "only the bottom row and right column remain")
		for _, p := range after {
			require.NotContains(t, p.Cells, Cell{0, 0})
		}
	})

	t.Run("full grid yields an empty action set", func(t *testing.T) {
		g := NewGrid(1, []Cell{{0, 0}}, nil)

		placements := NewReducer().Reduce(lineCard(5, 1), g)

		require.Empty(t, placements, "no legal placement is a valid state, not an error")
	})

	t.Run("every option of the card is enumerated", func(t *testing.T) {
		g := NewGrid(2, nil, nil)
		card := &ExplorationCard{
			Name: "two options", ID: 6, Time: 1,
			Options: []ExplorationOption{
				{Shape: NewShape("single", []Offset{{0, 0}}), Terrain: Forest},
				{Shape: NewShape("single", []Offset{{0, 0}}), Terrain: Water},
			},
		}

		placements := NewReducer().Reduce(card, g)

		require.Len(t, placements, 8, "4 anchors for each of the 2 options")
		require.Equal(t, Forest, placements[0].Terrain)
		require.Equal(t, Water, placements[4].Terrain)
	})

	t.Run("ambush cards reduce to monster placements", func(t *testing.T) {
		g := NewGrid(4, nil, nil)
		ambush := StandardAmbushCards[0]

		placements := NewReducer().Reduce(ambush, g)

		require.NotEmpty(t, placements)
		for _, p := range placements {
			require.Equal(t, Monster, p.Terrain)
		}
	})

	t.Run("ambush placements follow the card's corner scan", func(t *testing.T) {
		g := NewGrid(3, nil, nil)
		single := NewShape("raider", []Offset{{0, 0}})

		fromBottomRight := &AmbushCard{
			Name: "raid", ID: 8, Shape: single,
			Corner: BottomRight, Rotation: Clockwise,
		}
		placements := NewReducer().Reduce(fromBottomRight, g)
		require.Equal(t, Cell{2, 2}, placements[0].Anchor)
		require.Equal(t, Cell{2, 1}, placements[1].Anchor, "clockwise sweeps the bottom row leftwards first")

		fromTopLeft := &AmbushCard{
			Name: "raid", ID: 9, Shape: single,
			Corner: TopLeft, Rotation: CounterClockwise,
		}
		placements = NewReducer().Reduce(fromTopLeft, g)
		require.Equal(t, Cell{0, 0}, placements[0].Anchor)
		require.Equal(t, Cell{1, 0}, placements[1].Anchor, "counterclockwise walks the first column down")
	})

	t.Run("ruin cards have no placements", func(t *testing.T) {
		g := NewGrid(4, nil, nil)

		require.Empty(t, NewReducer().Reduce(StandardRuinCards[0], g))
	})
}

func TestReduceMemo(t *testing.T) {
	t.Run("memo entries for stale occupancy are dropped", func(t *testing.T) {
		g := NewGrid(3, nil, nil)
		r := NewReducer()
		card := lineCard(7, 2)

		r.Reduce(card, g)
		require.Len(t, r.memo, 1)

		require.NoError(t, g.place([]Cell{{0, 0}}, Forest, 1))
		r.Invalidate(g)
		require.Empty(t, r.memo)

		after := r.Reduce(card, g)
		for _, p := range after {
			require.True(t, g.canPlace(p.Cells), "placements must match current occupancy")
		}
	})
}

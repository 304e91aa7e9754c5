package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// tinyGame builds a one-season game on an empty 2x2 grid with a single
// exploration card whose only option is a single forest cell.
func tinyGame(t *testing.T, seasonTime int, coin bool) *GameState {
	t.Helper()
	card := &ExplorationCard{
		Name: "clearing", ID: 900, Time: 1,
		Options: []ExplorationOption{
			{Shape: NewShape("single", []Offset{{0, 0}}), Terrain: Forest, Coin: coin},
		},
	}
	cfg := DeckConfig{ExplorationPerSeason: 1, AmbushPerSeason: []int{0}, RuinPerSeason: []int{0}}
	deck := NewDeckFrom(1, cfg, []*ExplorationCard{card}, StandardAmbushCards, StandardRuinCards)
	gs := NewGameState(NewGrid(2, nil, nil), deck, nil, []int{seasonTime})
	require.NoError(t, gs.Advance())
	return gs
}

func TestGameStateApply(t *testing.T) {
	t.Run("single fitting card on a one-cell board", func(t *testing.T) {
		card := &ExplorationCard{
			Name: "clearing", ID: 900, Time: 1,
			Options: []ExplorationOption{
				{Shape: NewShape("single", []Offset{{0, 0}}), Terrain: Forest},
			},
		}
		cfg := DeckConfig{ExplorationPerSeason: 1, AmbushPerSeason: []int{0}, RuinPerSeason: []int{0}}
		deck := NewDeckFrom(1, cfg, []*ExplorationCard{card}, StandardAmbushCards, StandardRuinCards)
		gs := NewGameState(NewGrid(1, nil, nil), deck, nil, []int{2})
		require.NoError(t, gs.Advance())

		moves := gs.LegalMoves()
		require.Len(t, moves, 1)
		placement, ok := moves[0].(Placement)
		require.True(t, ok)
		require.Equal(t, Cell{0, 0}, placement.Anchor)

		require.NoError(t, gs.Apply(placement))
		require.Equal(t, 0, gs.Grid.EmptyCellCount())
		require.Equal(t, AwaitingCard, gs.Phase)
	})

	t.Run("applying the same placement twice fails", func(t *testing.T) {
		gs := tinyGame(t, 3, false)
		placement := gs.LegalMoves()[0].(Placement)

		require.NoError(t, gs.Apply(placement))

		err := gs.Apply(placement)
		var illegal *IllegalPlacementError
		require.ErrorAs(t, err, &illegal)
	})

	t.Run("placement outside the reduced set is rejected", func(t *testing.T) {
		gs := tinyGame(t, 3, false)
		placement := gs.LegalMoves()[0].(Placement)
		placement.Anchor = Cell{9, 9}

		err := gs.Apply(placement)
		var illegal *IllegalPlacementError
		require.ErrorAs(t, err, &illegal)
		require.Equal(t, 4, gs.Grid.EmptyCellCount(), "rejected moves leave the grid untouched")
	})

	t.Run("coin option pays out on placement", func(t *testing.T) {
		gs := tinyGame(t, 3, true)

		require.NoError(t, gs.Apply(gs.LegalMoves()[0]))
		require.Equal(t, 1, gs.Coins)
	})

	t.Run("exhausting the time budget closes the season", func(t *testing.T) {
		gs := tinyGame(t, 1, false)

		require.NoError(t, gs.Apply(gs.LegalMoves()[0]))
		require.Equal(t, SeasonEnd, gs.Phase)

		require.NoError(t, gs.Advance())
		require.Equal(t, GameOver, gs.Phase, "last season's end is game over")
	})
}

func TestGameStateSkip(t *testing.T) {
	card := &ExplorationCard{
		Name: "sprawl", ID: 901, Time: 1,
		Options: []ExplorationOption{
			// 3-cell line never fits a 2x2 board.
			{Shape: NewShape("line3", []Offset{{0, 0}, {0, 1}, {0, 2}}), Terrain: Water},
		},
	}
	newGame := func(t *testing.T) *GameState {
		cfg := DeckConfig{ExplorationPerSeason: 1, AmbushPerSeason: []int{0}, RuinPerSeason: []int{0}}
		deck := NewDeckFrom(1, cfg, []*ExplorationCard{card}, StandardAmbushCards, StandardRuinCards)
		gs := NewGameState(NewGrid(2, nil, nil), deck, nil, []int{3})
		require.NoError(t, gs.Advance())
		return gs
	}

	t.Run("no legal placement forces the skip", func(t *testing.T) {
		gs := newGame(t)

		moves := gs.LegalMoves()
		require.Len(t, moves, 1)
		_, ok := moves[0].(Skip)
		require.True(t, ok)

		require.NoError(t, gs.Apply(moves[0]))
		require.Equal(t, 1, gs.Time, "skipping still spends the card's time")
		require.Equal(t, 4, gs.Grid.EmptyCellCount())
	})

	t.Run("skip is rejected while placements exist", func(t *testing.T) {
		gs := tinyGame(t, 3, false)

		err := gs.Apply(Skip{})
		var illegal *IllegalPlacementError
		require.ErrorAs(t, err, &illegal)
	})
}

func TestGameStateRuin(t *testing.T) {
	t.Run("revealing a ruin card penalizes and closes the season", func(t *testing.T) {
		cfg := DeckConfig{ExplorationPerSeason: 0, AmbushPerSeason: []int{0, 0}, RuinPerSeason: []int{1, 0}}
		deck := NewDeckFrom(1, cfg, StandardExplorationCards, StandardAmbushCards, StandardRuinCards)
		gs := NewGameState(NewGrid(3, nil, nil), deck, nil, []int{2, 2})

		require.NoError(t, gs.Advance())

		require.Equal(t, RuinPenaltyPoints, gs.RuinPenalty)
		require.Equal(t, 2, gs.Season, "the ruin draw ended season 1")
		require.True(t, gs.Terminal(), "season 2 has no cards, so it ends immediately")
	})

	t.Run("ruin penalty reaches the final score", func(t *testing.T) {
		cfg := DeckConfig{ExplorationPerSeason: 0, AmbushPerSeason: []int{0}, RuinPerSeason: []int{1}}
		deck := NewDeckFrom(1, cfg, StandardExplorationCards, StandardAmbushCards, StandardRuinCards)
		gs := NewGameState(NewGrid(3, nil, nil), deck, nil, []int{2})

		require.NoError(t, gs.Advance())
		require.True(t, gs.Terminal())
		require.Equal(t, -RuinPenaltyPoints, gs.FinalScore())
	})
}

func TestGameStateScore(t *testing.T) {
	t.Run("penalties are independent and additive", func(t *testing.T) {
		gs := &GameState{
			Grid:        NewGrid(3, nil, nil),
			SeasonTimes: []int{1},
			Season:      1,
			Coins:       2,
			RuinPenalty: RuinPenaltyPoints,
			Phase:       GameOver,
			reducer:     NewReducer(),
		}
		require.NoError(t, gs.Grid.place([]Cell{{1, 1}}, Monster, 1))

		// Center monster borders four empty cells; coins and both penalties
		// apply on top of the (empty) scoring card set.
		require.Equal(t, 2-4-RuinPenaltyPoints, gs.FinalScore())
	})

	t.Run("terminal scoring is idempotent", func(t *testing.T) {
		gs := playOut(t, NewStandardGame(11))

		first := gs.FinalScore()
		require.Equal(t, first, gs.FinalScore())
		require.Equal(t, NormalizeScore(first), gs.Result())
	})

	t.Run("result is zero before game over", func(t *testing.T) {
		gs := NewStandardGame(11)
		require.Zero(t, gs.Result())
	})
}

// playOut drives a game to completion by always taking the first legal move.
func playOut(t *testing.T, gs *GameState) *GameState {
	t.Helper()
	for !gs.Terminal() {
		moves := gs.LegalMoves()
		require.NotEmpty(t, moves)
		require.NoError(t, gs.Apply(moves[0]))
		require.NoError(t, gs.Advance())
	}
	return gs
}

func TestGameStateDeterminism(t *testing.T) {
	t.Run("same seed builds the same game", func(t *testing.T) {
		a, b := NewStandardGame(7), NewStandardGame(7)

		require.Equal(t, a.Hash(), b.Hash())
		require.Equal(t, a.Active.CardID(), b.Active.CardID())
		require.Equal(t, len(a.LegalMoves()), len(b.LegalMoves()))

		upA, upB := a.Upcoming(5), b.Upcoming(5)
		require.Equal(t, len(upA), len(upB))
		for i := range upA {
			require.Equal(t, upA[i].CardID(), upB[i].CardID())
		}
	})

	t.Run("identical move sequences stay in lockstep", func(t *testing.T) {
		a, b := NewStandardGame(7), NewStandardGame(7)
		for i := 0; i < 5 && !a.Terminal(); i++ {
			require.NoError(t, a.Apply(a.LegalMoves()[0]))
			require.NoError(t, a.Advance())
			require.NoError(t, b.Apply(b.LegalMoves()[0]))
			require.NoError(t, b.Advance())
			require.Equal(t, a.Hash(), b.Hash(), "diverged after move %d", i+1)
		}
	})
}

func singleCellCard(id int) *ExplorationCard {
	return &ExplorationCard{
		Name: "clearing", ID: id, Time: 1,
		Options: []ExplorationOption{
			{Shape: NewShape("single", []Offset{{0, 0}}), Terrain: Forest},
		},
	}
}

func TestHiddenDeckStochasticity(t *testing.T) {
	pool := []*ExplorationCard{singleCellCard(901), singleCellCard(902), singleCellCard(903)}

	hiddenGame := func(t *testing.T, perSeason int, seasonTimes []int) *GameState {
		t.Helper()
		ambush := make([]int, len(seasonTimes))
		ruin := make([]int, len(seasonTimes))
		cfg := DeckConfig{ExplorationPerSeason: perSeason, AmbushPerSeason: ambush, RuinPerSeason: ruin}
		deck := NewDeckFrom(1, cfg, pool, StandardAmbushCards, StandardRuinCards)
		deck.SetHidden(true)
		gs := NewGameState(NewGrid(3, nil, nil), deck, nil, seasonTimes)
		require.NoError(t, gs.Advance())
		return gs
	}

	t.Run("a season-closing move draws from the next segment", func(t *testing.T) {
		gs := hiddenGame(t, 2, []int{1, 5})

		// The move spends the whole 1-time budget: season 1's undrawn card is
		// discarded and the reveal comes from season 2's 2-card segment.
		for _, m := range gs.LegalMoves() {
			require.False(t, m.IsDeterministic())
		}
	})

	t.Run("a single-card next segment keeps the closing move deterministic", func(t *testing.T) {
		gs := hiddenGame(t, 1, []int{1, 5})

		move := gs.LegalMoves()[0]
		require.True(t, move.IsDeterministic())

		want := gs.Play(move).(*GameState).Hash()
		for i := 0; i < 20; i++ {
			require.Equal(t, want, gs.Play(move).(*GameState).Hash(), "deterministic moves have one successor")
		}
	})

	t.Run("closing the last season is deterministic with cards left over", func(t *testing.T) {
		gs := hiddenGame(t, 3, []int{1})
		require.Equal(t, 2, gs.Deck.RemainingInSeason())

		for _, m := range gs.LegalMoves() {
			require.True(t, m.IsDeterministic(), "no draw follows the last season")
		}
	})
}

func TestSeasonExhaustion(t *testing.T) {
	t.Run("a budget beyond the segment's card time ends the season early", func(t *testing.T) {
		gs := playOut(t, NewStandardGameWithTimes(1, []int{8, 17}))
		require.True(t, gs.Terminal())
	})

	t.Run("an empty deck runs the seasons straight to game over", func(t *testing.T) {
		cfg := DeckConfig{ExplorationPerSeason: 0, AmbushPerSeason: []int{0, 0}, RuinPerSeason: []int{0, 0}}
		deck := NewDeckFrom(1, cfg, nil, StandardAmbushCards, StandardRuinCards)
		gs := NewGameState(NewGrid(3, nil, nil), deck, nil, []int{2, 2})

		require.NoError(t, gs.Advance())
		require.True(t, gs.Terminal())
		require.Zero(t, gs.FinalScore())
	})
}

func TestHashDeckProgress(t *testing.T) {
	t.Run("same board and counters, different undrawn cards", func(t *testing.T) {
		pool := []*ExplorationCard{singleCellCard(901), singleCellCard(902), singleCellCard(903)}
		newGame := func(perSeason int) *GameState {
			cfg := DeckConfig{ExplorationPerSeason: perSeason, AmbushPerSeason: []int{0}, RuinPerSeason: []int{0}}
			deck := NewDeckFrom(1, cfg, pool, StandardAmbushCards, StandardRuinCards)
			return NewGameState(NewGrid(3, nil, nil), deck, nil, []int{5})
		}

		a, b := newGame(2), newGame(3)
		require.NotEqual(t, a.Hash(), b.Hash())
	})
}

func TestGameStatePlay(t *testing.T) {
	t.Run("play leaves the parent untouched", func(t *testing.T) {
		gs := NewStandardGame(3)
		before := gs.Hash()
		empties := gs.Grid.EmptyCellCount()

		next := gs.Play(gs.LegalMoves()[0])

		require.Equal(t, before, gs.Hash())
		require.Equal(t, empties, gs.Grid.EmptyCellCount())
		require.NotEqual(t, before, next.Hash())
	})

	t.Run("hidden deck marks card-completing moves stochastic", func(t *testing.T) {
		gs := NewStandardGame(3)
		gs.Deck.SetHidden(true)

		for _, m := range gs.LegalMoves() {
			require.False(t, m.IsDeterministic())
		}
	})

	t.Run("fixed deck moves are deterministic", func(t *testing.T) {
		gs := NewStandardGame(3)

		for _, m := range gs.LegalMoves() {
			require.True(t, m.IsDeterministic())
		}
	})
}

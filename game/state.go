package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Phase is the per-turn position in the season state machine.
type Phase uint8

const (
	AwaitingCard Phase = iota
	AwaitingPlacement
	SeasonEnd
	GameOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingCard:
		return "awaiting-card"
	case AwaitingPlacement:
		return "awaiting-placement"
	case SeasonEnd:
		return "season-end"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// GameState is the dynamic state of one solo game: everything that changes
// during play. Shapes, cards and scoring rules are static process-wide tables
// referenced by pointer. A GameState exclusively owns its grid and deck -
// search branches clone before playing, so no two branches ever share them.
type GameState struct {
	Grid         *Grid
	Deck         *Deck
	ScoringCards []ScoringCard // four active, one per season
	SeasonTimes  []int
	Season       int // 1..len(SeasonTimes)
	Time         int
	Coins        int // coins collected from placement options
	RuinPenalty  int
	Active       Card
	Phase        Phase

	reducer *Reducer
}

// NewGameState wires a game from its parts and opens season 1. The caller
// still has to draw the first card (or use NewStandardGame, which does).
func NewGameState(grid *Grid, deck *Deck, scoring []ScoringCard, seasonTimes []int) *GameState {
	gs := &GameState{
		Grid:         grid,
		Deck:         deck,
		ScoringCards: scoring,
		SeasonTimes:  seasonTimes,
		Season:       1,
		Phase:        AwaitingCard,
		reducer:      NewReducer(),
	}
	deck.StartSeason(0)
	return gs
}

// NewStandardGame sets up map A, the standard decks and season times from a
// single seed and draws the first card. Two games built from the same seed
// are identical.
func NewStandardGame(seed int64) *GameState {
	return NewStandardGameWithTimes(seed, StandardSeasonTimes)
}

// NewStandardGameWithTimes is NewStandardGame with custom season time
// budgets, for shorter experiment games. At most four seasons: the standard
// deck has four segments.
func NewStandardGameWithTimes(seed int64, seasonTimes []int) *GameState {
	grid := NewMapA()
	deck := NewDeck(seed, DefaultDeckConfig())
	scoring := NewScoringDeck(seed, StandardScoringCards).Draw()
	gs := NewGameState(grid, deck, scoring, seasonTimes)
	if err := gs.Advance(); err != nil {
		panic(fmt.Sprintf("standard game setup: %v", err))
	}
	return gs
}

// Copy deep copies the mutable state. The reducer memo is not carried over:
// cached placements reference the parent's occupancy.
func (gs *GameState) Copy() *GameState {
	return &GameState{
		Grid:         gs.Grid.Copy(),
		Deck:         gs.Deck.Copy(),
		ScoringCards: gs.ScoringCards,
		SeasonTimes:  gs.SeasonTimes,
		Season:       gs.Season,
		Time:         gs.Time,
		Coins:        gs.Coins,
		RuinPenalty:  gs.RuinPenalty,
		Active:       gs.Active,
		Phase:        gs.Phase,
		reducer:      NewReducer(),
	}
}

// LegalMoves returns the reduced action set for the active card, or the
// forced skip when nothing fits. Empty only when no decision is pending.
func (gs *GameState) LegalMoves() []Move {
	if gs.Phase != AwaitingPlacement {
		return nil
	}
	stochastic := gs.drawIsStochastic()
	placements := gs.reducer.Reduce(gs.Active, gs.Grid)
	if len(placements) == 0 {
		return []Move{Skip{drawsHidden: stochastic}}
	}
	moves := make([]Move, len(placements))
	for i, p := range placements {
		p.drawsHidden = stochastic
		moves[i] = p
	}
	return moves
}

// drawIsStochastic reports whether finishing the active card triggers a draw
// with more than one possible outcome. A move that closes the season drops
// the rest of the current segment: the reveal then comes from the next
// season's full segment, not from what remains here.
func (gs *GameState) drawIsStochastic() bool {
	if !gs.Deck.Hidden() {
		return false
	}
	if gs.Time+gs.Active.TimeCost() >= gs.SeasonTimes[gs.Season-1] {
		if gs.Season == len(gs.SeasonTimes) {
			return false // no draw after the last season
		}
		return gs.Deck.SegmentSize(gs.Season) > 1
	}
	return gs.Deck.RemainingInSeason() > 1
}

// Apply is the single mutation entry point for moves. The placement must be
// a member of the current reduced action set - the check is defense in depth
// against caller bugs and is never silently corrected. After a successful
// move the state rests in AwaitingCard (or SeasonEnd/GameOver when the season
// time budget is exhausted).
func (gs *GameState) Apply(move Move) error {
	if gs.Phase != AwaitingPlacement {
		return &IllegalPlacementError{Reason: fmt.Sprintf("no placement pending in phase %s", gs.Phase)}
	}

	switch m := move.(type) {
	case Placement:
		if !gs.placementLegal(m) {
			return &IllegalPlacementError{Reason: "not in the current reduced action set"}
		}
		if err := gs.Grid.place(m.Cells, m.Terrain, gs.Season); err != nil {
			return err
		}
		if gs.optionCoin(m) {
			gs.Coins++
		}
		gs.reducer.Invalidate(gs.Grid)
	case Skip:
		if len(gs.reducer.Reduce(gs.Active, gs.Grid)) > 0 {
			return &IllegalPlacementError{Reason: "skip is only forced when no placement is legal"}
		}
	default:
		return &IllegalPlacementError{Reason: "unknown move kind"}
	}

	gs.Time += gs.Active.TimeCost()
	gs.Active = nil
	gs.Phase = AwaitingCard
	gs.checkSeasonEnd()
	return nil
}

func (gs *GameState) placementLegal(p Placement) bool {
	for _, candidate := range gs.reducer.Reduce(gs.Active, gs.Grid) {
		if samePlacement(candidate, p) {
			return true
		}
	}
	return false
}

func (gs *GameState) optionCoin(p Placement) bool {
	card, ok := gs.Active.(*ExplorationCard)
	return ok && card.Options[p.Option].Coin
}

func (gs *GameState) checkSeasonEnd() {
	if gs.Time >= gs.SeasonTimes[gs.Season-1] {
		gs.Phase = SeasonEnd
	}
}

// Advance moves the state machine forward through draws and season
// boundaries until a placement decision is pending or the game is over.
// Ruin cards resolve here: reveal, apply the penalty, skip placement, close
// the season. A segment that runs out of cards before the time budget does
// closes the season the same way, so any budget configuration plays to
// completion.
func (gs *GameState) Advance() error {
	for {
		switch gs.Phase {
		case AwaitingPlacement, GameOver:
			return nil
		case SeasonEnd:
			if gs.Season == len(gs.SeasonTimes) {
				gs.Phase = GameOver
				return nil
			}
			gs.Season++
			gs.Time = 0
			gs.Deck.StartSeason(gs.Season - 1)
			gs.Phase = AwaitingCard
		case AwaitingCard:
			if gs.Deck.RemainingInSeason() == 0 {
				gs.Phase = SeasonEnd
				continue
			}
			card, err := gs.Deck.Draw()
			if err != nil {
				return err
			}
			switch c := card.(type) {
			case *ExplorationCard, *AmbushCard:
				gs.Active = card
				gs.Phase = AwaitingPlacement
			case *RuinCard:
				gs.RuinPenalty += RuinPenaltyPoints
				gs.Phase = SeasonEnd
			default:
				panic(fmt.Sprintf("unexpected card type %T", c))
			}
		}
	}
}

// CoinsTotal is collected coins plus one per fully surrounded mountain.
func (gs *GameState) CoinsTotal() int {
	return gs.Coins + gs.Grid.SurroundedMountains()
}

// FinalScore computes the terminal score: the four scoring cards over the
// final grid, plus coins, minus the monster and ruin penalties - in that
// order, independently and additively. Pure with respect to the state, so
// recomputing yields identical results.
func (gs *GameState) FinalScore() int {
	return gs.Grid.ScoreSnapshot(gs.ScoringCards) + gs.CoinsTotal() - gs.Grid.MonsterPenalty() - gs.RuinPenalty
}

// ScoreSnapshot is the same sum over the current grid. Informational only;
// never used for terminal scoring before GameOver.
func (gs *GameState) ScoreSnapshot() int {
	return gs.FinalScore()
}

func (gs *GameState) Terminal() bool {
	return gs.Phase == GameOver
}

// Result implements the searcher's terminal reward: the normalized final
// score.
func (gs *GameState) Result() float64 {
	if gs.Phase != GameOver {
		return 0
	}
	return NormalizeScore(gs.FinalScore())
}

// Play clones the state, applies the move and advances to the next decision
// point. Errors here mean the caller submitted an unvalidated move or the
// deck is misconfigured; both are programmer errors, so Play panics rather
// than corrupting a search in flight.
func (gs *GameState) Play(move Move) State {
	next := gs.Copy()
	if err := next.Apply(move); err != nil {
		panic(fmt.Sprintf("play: %v", err))
	}
	if err := next.Advance(); err != nil {
		panic(fmt.Sprintf("advance: %v", err))
	}
	return next
}

// Hash fingerprints the full decision-relevant state. Chance nodes in the
// searcher identify draw outcomes by this value; the undrawn-card count
// keeps positions with different deck progress apart even when grid and
// counters coincide.
func (gs *GameState) Hash() StateHash {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(gs.Grid.Fingerprint()))
	h.Write(buf[:])
	activeID := 0
	if gs.Active != nil {
		activeID = gs.Active.CardID()
	}
	for _, v := range []int{gs.Season, gs.Time, gs.Coins, gs.RuinPenalty, activeID, int(gs.Phase), gs.Deck.RemainingInSeason()} {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	return StateHash(h.Sum64())
}

// Upcoming returns up to n next cards in draw order, for forward-looking
// hints. Meaningful only while the deck runs in fixed order.
func (gs *GameState) Upcoming(n int) []Card {
	return gs.Deck.PeekAhead(n)
}

package engine

import (
	"fmt"

	"cartographer/game"
)

// Observation is a structural snapshot of the game state for an external RL
// driver or UI backend. The exact tensor encoding is the consumer's concern;
// this is the boundary contract.
type Observation struct {
	Size       int
	Terrain    []game.Terrain // row-major copy of the grid
	Season     int
	Time       int
	Coins      int
	ActiveCard int // card ID, 0 when no card is pending
	Actions    int // size of the current reduced action set
}

// Info carries step side-channel data next to the observation.
type Info struct {
	Phase      game.Phase
	FinalScore int // set at termination
}

// Env adapts the rules engine to reset/step/observe semantics. It owns one
// live game; the search engine clones its own copies and never touches this
// one.
type Env struct {
	state   *game.GameState
	actions []game.Move
}

func NewEnv() *Env {
	return &Env{}
}

// Reset starts a fresh standard game from the seed. Identical seeds produce
// identical deck orders and identical first action sets.
func (e *Env) Reset(seed int64) Observation {
	e.state = game.NewStandardGame(seed)
	e.refreshActions()
	return e.Observe()
}

// LegalActions returns the readonly ordered reduced action set for the
// current state. Indices into it are the action space of Step.
func (e *Env) LegalActions() []game.Move {
	return e.actions
}

// State exposes the live game for search consumers. Searches must clone
// before playing.
func (e *Env) State() *game.GameState {
	return e.state
}

// Step applies the action at the given index. Reward is the coin delta of
// the action - the incrementally computable score contribution - plus the
// full final score at termination. Truncation is external step-limit
// business and never generated here. Rules-engine errors propagate
// untranslated.
func (e *Env) Step(action int) (Observation, float64, bool, bool, Info, error) {
	if e.state == nil {
		return Observation{}, 0, false, false, Info{}, fmt.Errorf("step before reset")
	}
	if action < 0 || action >= len(e.actions) {
		return e.Observe(), 0, false, false, e.info(),
			&game.IllegalPlacementError{Reason: fmt.Sprintf("action index %d out of %d", action, len(e.actions))}
	}

	coinsBefore := e.state.CoinsTotal()
	if err := e.state.Apply(e.actions[action]); err != nil {
		return e.Observe(), 0, false, false, e.info(), err
	}
	if err := e.state.Advance(); err != nil {
		return e.Observe(), 0, false, false, e.info(), err
	}
	e.refreshActions()

	reward := float64(e.state.CoinsTotal() - coinsBefore)
	terminated := e.state.Terminal()
	if terminated {
		reward += float64(e.state.FinalScore())
	}
	return e.Observe(), reward, terminated, false, e.info(), nil
}

// Observe snapshots the current state without advancing anything.
func (e *Env) Observe() Observation {
	grid := e.state.Grid
	size := grid.Size()
	terrain := make([]game.Terrain, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			terrain = append(terrain, grid.TerrainAt(game.Cell{Row: row, Col: col}))
		}
	}
	activeID := 0
	if e.state.Active != nil {
		activeID = e.state.Active.CardID()
	}
	return Observation{
		Size:       size,
		Terrain:    terrain,
		Season:     e.state.Season,
		Time:       e.state.Time,
		Coins:      e.state.CoinsTotal(),
		ActiveCard: activeID,
		Actions:    len(e.actions),
	}
}

func (e *Env) refreshActions() {
	e.actions = e.state.LegalMoves()
}

func (e *Env) info() Info {
	info := Info{Phase: e.state.Phase}
	if e.state.Terminal() {
		info.FinalScore = e.state.FinalScore()
	}
	return info
}

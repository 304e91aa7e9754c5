package searcher

import (
	"sync"
	"time"

	"cartographer/experiments/metrics"
	"cartographer/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MaxCutoff effectively disables the rollout depth cutoff: a full game never
// exceeds this many decisions.
const MaxCutoff = 1000

type Option func(m *MCTS)

// MCTS runs parallel tree search over the reduced action set. Each worker
// goroutine clones its own game state per simulation, so the rules engine is
// never shared across simulations; tree statistics are the only shared
// structure and are updated under node locks.
type MCTS struct {
	goroutines int
	episodes   int
	duration   time.Duration
	cutoff     int
	evaluate   game.Evaluate
	cancel     <-chan struct{}
	metrics    metrics.Collector
	root       *decision
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithCancel installs an early-exit signal. It is checked between
// simulations, never mid-simulation, so a cancelled search still returns a
// valid (if under-explored) ranking.
func WithCancel(cancel <-chan struct{}) Option {
	return func(m *MCTS) {
		m.cancel = cancel
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: goroutines,
		cutoff:     MaxCutoff,
		evaluate:   game.EvaluateProgress,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Search builds a fresh tree from state and returns every root action ranked
// by visit count, best first, along with the search metrics. The ranking is
// never empty as long as state has at least one legal move, even with a
// budget of a single episode.
func (m *MCTS) Search(state game.State) ([]RankedMove, metrics.SearchMetric) {
	m.root = newDecision(nil, state)

	m.metrics.Start(m.goroutines, m.cutoff)
	if m.episodes > 0 {
		m.iterate(state)
	} else {
		m.countdown(state)
	}
	metric := m.metrics.Complete()

	return m.root.ranked(), metric
}

// BestMove is the search's move-selection mode: the top-ranked action.
func (m *MCTS) BestMove(state game.State) (game.Move, metrics.SearchMetric) {
	ranked, metric := m.Search(state)
	if len(ranked) == 0 {
		return nil, metric
	}
	return ranked[0].Move, metric
}

// Hint is the search's advisory mode: the top-K ranked actions, with nothing
// applied to the live game.
func (m *MCTS) Hint(state game.State, topK int) ([]RankedMove, metrics.SearchMetric) {
	ranked, metric := m.Search(state)
	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked, metric
}

func (m *MCTS) iterate(state game.State) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				if m.stopped() {
					return
				}
				m.simulate(state)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(state game.State) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					if m.stopped() {
						return
					}
					m.simulate(state)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	select {
	case <-time.After(m.duration):
	case <-m.cancel:
		m.metrics.SetCancelled()
	}
	close(done)
	wg.Wait()
}

func (m *MCTS) stopped() bool {
	select {
	case <-m.cancel:
		m.metrics.SetCancelled()
		return true
	default:
		return false
	}
}

func (m *MCTS) simulate(state game.State) {
	newNode, newState := selectThenExpand(m.root, state)
	score := rollout(newState, m.cutoff, m.evaluate, m.metrics)
	backup(newNode, score)
}

func selectThenExpand(root Node, state game.State) (Node, game.State) {
	parent := root
	child, state, selected := parent.SelectOrExpand(state)
	for selected && (child != parent) {
		parent = child
		child, state, selected = parent.SelectOrExpand(state)
	}
	return child, state
}

func rollout(state game.State, cutoff int, evaluate game.Evaluate, collector metrics.Collector) float64 {
	depth := 0
	moves := state.LegalMoves()
	// Rollout till game over or for cutoff number of moves
	for len(moves) > 0 && (depth < cutoff) {
		move := moves[rand.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
		depth++
	}

	if len(moves) == 0 { // Game over before cutoff
		collector.AddFullPlayout()
		return state.Result()
	}

	// At cutoff, fall back to the leaf evaluation
	return safeEvaluate(evaluate, state)
}

// safeEvaluate shields the search from a misbehaving evaluator: a panic is
// worth a neutral value, not a crashed search, and out-of-range estimates
// are clamped to the reward bounds.
func safeEvaluate(evaluate game.Evaluate, state game.State) (value float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Msgf("leaf evaluation failed, using neutral value: %v", r)
			value = NeutralValue
		}
	}()
	value = evaluate(state)
	if value < Loss {
		return Loss
	}
	if value > MaxReward {
		return MaxReward
	}
	return value
}

func backup(newNode Node, score float64) {
	node := newNode
	for node != nil {
		parent := node.Backup(score)
		node = parent
	}
}

package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one search invocation.
type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Episodes     int
	FullPlayouts int // simulations that reached a terminal state before the cutoff
	Cutoff       int
	Cancelled    bool
}

// MoveMetric ties a search to the move it produced during self-play.
type MoveMetric struct {
	Step         int
	Season       int
	Actions      int // size of the reduced action set at the root
	ChosenVisits float64
	ChosenValue  float64
	SearchMetric
}

// GameMetric summarizes one full self-play game.
type GameMetric struct {
	ID         string
	Seed       int64
	Score      int
	StartTime  time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(goroutines, cutoff int)
	AddEpisode()
	AddFullPlayout()
	SetCancelled()
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	cutoff       int
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	cancelled    atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, cutoff int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.cancelled.Store(false)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) SetCancelled() {
	m.cancelled.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Cutoff:       m.cutoff,
		Cancelled:    m.cancelled.Load(),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for searches
// where metrics overhead is unwanted.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, cutoff int) {}
func (m *dummyCollector) AddEpisode()                  {}
func (m *dummyCollector) AddFullPlayout()              {}
func (m *dummyCollector) SetCancelled()                {}
func (m *dummyCollector) Complete() SearchMetric       { return SearchMetric{} }

package engine

import (
	"time"

	"cartographer/experiments/metrics"
	"cartographer/game"
	"cartographer/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MoveRecord captures one self-play decision: the full ranked action list and
// the chosen action, enough for a consumer to replay and animate the
// decision process.
type MoveRecord struct {
	GameID  string
	Step    int
	Season  int
	Actions int // root actions explored by the search, before any top-K cap
	Ranked  []searcher.RankedMove
	Chosen  game.Move
	Metric  metrics.SearchMetric
}

// SelfPlay drives whole games with an MCTS agent choosing every move.
type SelfPlay struct {
	mcts        *searcher.MCTS
	hidden      bool
	topK        int
	seasonTimes []int
}

type SelfPlayOption func(sp *SelfPlay)

// WithHiddenDeck makes the agent face uniformly random draws instead of the
// seed's fixed order, which is how a human experiences the deck.
func WithHiddenDeck() SelfPlayOption {
	return func(sp *SelfPlay) {
		sp.hidden = true
	}
}

// WithTopK caps the ranked action list kept per move record. Root action sets
// run into the hundreds, and only the head of the ranking is ever consumed.
func WithTopK(k int) SelfPlayOption {
	return func(sp *SelfPlay) {
		if k > 0 {
			sp.topK = k
		}
	}
}

// WithSeasonTimes overrides the standard season budgets, for shorter
// experiment games.
func WithSeasonTimes(times []int) SelfPlayOption {
	return func(sp *SelfPlay) {
		if len(times) > 0 {
			sp.seasonTimes = times
		}
	}
}

func NewSelfPlay(mcts *searcher.MCTS, options ...SelfPlayOption) *SelfPlay {
	sp := &SelfPlay{mcts: mcts}
	for _, option := range options {
		option(sp)
	}
	return sp
}

// Run plays one full game from the seed and returns its metric plus a record
// per move.
func (sp *SelfPlay) Run(seed int64) (metrics.GameMetric, []MoveRecord) {
	id := uuid.NewString()
	start := time.Now()

	times := sp.seasonTimes
	if times == nil {
		times = game.StandardSeasonTimes
	}
	gs := game.NewStandardGameWithTimes(seed, times)
	gs.Deck.SetHidden(sp.hidden)

	var records []MoveRecord
	step := 0
	for !gs.Terminal() {
		ranked, metric := sp.mcts.Search(gs)
		if len(ranked) == 0 {
			log.Error().Str("game", id).Int("step", step).Msg("search returned no actions")
			break
		}
		chosen := ranked[0]

		kept := ranked
		if sp.topK > 0 && len(kept) > sp.topK {
			kept = kept[:sp.topK]
		}
		records = append(records, MoveRecord{
			GameID:  id,
			Step:    step,
			Season:  gs.Season,
			Actions: len(ranked),
			Ranked:  kept,
			Chosen:  chosen.Move,
			Metric:  metric,
		})
		log.Info().
			Str("game", id).
			Int("step", step).
			Int("season", gs.Season).
			Int("actions", len(ranked)).
			Float64("visits", chosen.Visits).
			Float64("value", chosen.Value).
			Msg("move chosen")

		gs = gs.Play(chosen.Move).(*game.GameState)
		step++
	}

	gameMetric := metrics.GameMetric{
		ID:         id,
		Seed:       seed,
		Score:      gs.FinalScore(),
		StartTime:  start,
		Duration:   time.Since(start),
		TotalMoves: step,
	}
	log.Info().
		Str("game", id).
		Int("score", gameMetric.Score).
		Int("moves", step).
		Dur("duration", gameMetric.Duration).
		Msg("game over")
	return gameMetric, records
}

// MoveMetrics flattens records for the CSV writer.
func MoveMetrics(records []MoveRecord) []metrics.MoveMetric {
	out := make([]metrics.MoveMetric, len(records))
	for i, r := range records {
		out[i] = metrics.MoveMetric{
			Step:         r.Step,
			Season:       r.Season,
			Actions:      r.Actions,
			ChosenVisits: r.Ranked[0].Visits,
			ChosenValue:  r.Ranked[0].Value,
			SearchMetric: r.Metric,
		}
	}
	return out
}

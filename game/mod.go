package game

// Move is a single decision submitted to the rules engine: a placement of the
// active card or the forced skip when nothing fits.
type Move interface {
	// IsDeterministic reports whether playing the move leads to exactly one
	// successor state. A move that finishes the active card triggers the next
	// draw, which is stochastic when the remaining deck is treated as hidden.
	IsDeterministic() bool
}

type StateHash uint64

// State is the searcher-facing view of a game position. Operations on State
// never mutate the receiver - Play always works on a fresh copy.
type State interface {
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Terminal() bool
	// Result returns the normalized final score in [0, 1]. Only meaningful
	// once Terminal reports true.
	Result() float64
}

// Evaluate maps a non-terminal state to a normalized [0, 1] estimate of the
// final score reachable from it. Used by the searcher when a rollout is cut
// off before the game ends.
type Evaluate func(State) float64

// Raw final scores land roughly in this window; the searcher works on the
// normalized value so rewards stay comparable across scoring-card draws.
const (
	minFinalScore = -30.0
	maxFinalScore = 150.0
)

// NormalizeScore maps a raw point total into [0, 1], clamping outliers.
func NormalizeScore(points int) float64 {
	v := (float64(points) - minFinalScore) / (maxFinalScore - minFinalScore)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

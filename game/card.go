package game

import "math/rand"

// Card is the sum of the three deck entity kinds. Ambush resolution is
// categorically different from exploration, so the two are separate variants
// dispatched by exhaustive type switches in the rules engine, not a subclass
// relation.
type Card interface {
	CardID() int
	CardName() string
	TimeCost() int
}

// ExplorationOption is one of the shapes a player may draw for an
// exploration card, with its terrain and optional coin bonus.
type ExplorationOption struct {
	Shape   *Shape
	Terrain Terrain
	Coin    bool
}

type ExplorationCard struct {
	Name    string
	ID      int
	Time    int
	Options []ExplorationOption
}

func (c *ExplorationCard) CardID() int      { return c.ID }
func (c *ExplorationCard) CardName() string { return c.Name }
func (c *ExplorationCard) TimeCost() int    { return c.Time }

// AttackRotation is the direction an ambush cycles around the map when an
// opponent (or the solo automa) places it.
type AttackRotation uint8

const (
	Clockwise AttackRotation = iota
	CounterClockwise
)

// Corner is the map corner an ambush starts from in solo play.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

type AmbushCard struct {
	Name     string
	ID       int
	Shape    *Shape
	Corner   Corner
	Rotation AttackRotation
}

func (c *AmbushCard) CardID() int      { return c.ID }
func (c *AmbushCard) CardName() string { return c.Name }
func (c *AmbushCard) TimeCost() int    { return 0 }

// scanKey orders board anchors the way the printed ambush rule walks the
// map: starting at the card's corner, clockwise cards sweep row by row,
// counterclockwise cards column by column. Lower keys come first.
func (c *AmbushCard) scanKey(anchor Cell, size int) int {
	row, col := anchor.Row, anchor.Col
	switch c.Corner {
	case TopRight:
		col = size - 1 - col
	case BottomLeft:
		row = size - 1 - row
	case BottomRight:
		row, col = size-1-row, size-1-col
	}
	if c.Rotation == Clockwise {
		return row*size + col
	}
	return col*size + row
}

// RuinCard carries no shape data. Revealing one skips placement and adds a
// fixed penalty at game end; only the per-season count in the deck
// composition matters.
type RuinCard struct {
	Name string
	ID   int
}

func (c *RuinCard) CardID() int      { return c.ID }
func (c *RuinCard) CardName() string { return c.Name }
func (c *RuinCard) TimeCost() int    { return 0 }

// DeckConfig sets how many cards of each kind go into each season's segment.
// Exploration cards are reshuffled into every season (the pool is reused);
// ambush and ruin counts are per season.
type DeckConfig struct {
	ExplorationPerSeason int
	AmbushPerSeason      []int
	RuinPerSeason        []int
}

func DefaultDeckConfig() DeckConfig {
	return DeckConfig{
		ExplorationPerSeason: len(StandardExplorationCards),
		AmbushPerSeason:      []int{1, 1, 1, 1},
		RuinPerSeason:        []int{1, 0, 1, 0},
	}
}

// Deck is an ordered, season-partitioned card sequence with a cursor.
// Shuffling is fully determined by the seed; drawing is irreversible within a
// game instance. With hidden enabled, Draw picks uniformly from the remaining
// segment instead of following the shuffled order, which models the deck as
// unknown for tree search.
type Deck struct {
	cards  []Card
	bounds []int // start index of each season segment; len = seasons+1
	cursor int
	season int
	hidden bool
	rng    *rand.Rand
}

// NewDeck builds the season segments from the standard card pools and
// shuffles each with the seeded generator.
func NewDeck(seed int64, cfg DeckConfig) *Deck {
	return NewDeckFrom(seed, cfg, StandardExplorationCards, StandardAmbushCards, StandardRuinCards)
}

// NewDeckFrom is NewDeck with explicit card pools, for tests and variant
// sets.
func NewDeckFrom(seed int64, cfg DeckConfig, exploration []*ExplorationCard, ambush []*AmbushCard, ruin []*RuinCard) *Deck {
	rng := rand.New(rand.NewSource(seed))
	seasons := len(cfg.AmbushPerSeason)
	if n := len(cfg.RuinPerSeason); n > seasons {
		seasons = n
	}
	if seasons == 0 {
		seasons = 4
	}

	d := &Deck{
		bounds: make([]int, 0, seasons+1),
		rng:    rng,
	}
	ambushCursor := 0
	ruinCursor := 0
	for s := 0; s < seasons; s++ {
		d.bounds = append(d.bounds, len(d.cards))

		segment := make([]Card, 0, cfg.ExplorationPerSeason+2)
		picks := rng.Perm(len(exploration))
		for i := 0; i < cfg.ExplorationPerSeason && i < len(picks); i++ {
			segment = append(segment, exploration[picks[i]])
		}
		for i := 0; i < perSeason(cfg.AmbushPerSeason, s); i++ {
			segment = append(segment, ambush[ambushCursor%len(ambush)])
			ambushCursor++
		}
		for i := 0; i < perSeason(cfg.RuinPerSeason, s); i++ {
			segment = append(segment, ruin[ruinCursor%len(ruin)])
			ruinCursor++
		}
		rng.Shuffle(len(segment), func(i, j int) {
			segment[i], segment[j] = segment[j], segment[i]
		})
		d.cards = append(d.cards, segment...)
	}
	d.bounds = append(d.bounds, len(d.cards))
	return d
}

func perSeason(counts []int, season int) int {
	if season < len(counts) {
		return counts[season]
	}
	return 0
}

// SetHidden switches the deck between fixed draw order (reproducible given
// the seed) and uniform draws from the remaining segment.
func (d *Deck) SetHidden(hidden bool) {
	d.hidden = hidden
}

func (d *Deck) Hidden() bool {
	return d.hidden
}

// StartSeason drops whatever remains of the current segment and moves the
// cursor to the start of the given season's segment.
func (d *Deck) StartSeason(season int) {
	d.season = season
	d.cursor = d.bounds[season]
}

// RemainingInSeason counts the undrawn cards in the current segment.
func (d *Deck) RemainingInSeason() int {
	return d.bounds[d.season+1] - d.cursor
}

// SegmentSize returns the total card count of a season's segment, drawn or
// not. Segments are fixed at construction.
func (d *Deck) SegmentSize(season int) int {
	return d.bounds[season+1] - d.bounds[season]
}

// Peek returns the card at the cursor without advancing.
func (d *Deck) Peek() (Card, error) {
	if d.RemainingInSeason() <= 0 {
		return nil, &EmptyDeckError{Season: d.season + 1}
	}
	return d.cards[d.cursor], nil
}

// PeekAhead returns up to n upcoming cards in draw order without advancing.
// Only meaningful for decks in fixed order.
func (d *Deck) PeekAhead(n int) []Card {
	end := d.cursor + n
	if limit := d.bounds[d.season+1]; end > limit {
		end = limit
	}
	out := make([]Card, end-d.cursor)
	copy(out, d.cards[d.cursor:end])
	return out
}

// Draw advances the cursor and returns the next card. In hidden mode a
// uniformly random remaining card is swapped to the cursor first.
func (d *Deck) Draw() (Card, error) {
	remaining := d.RemainingInSeason()
	if remaining <= 0 {
		return nil, &EmptyDeckError{Season: d.season + 1}
	}
	if d.hidden && remaining > 1 {
		pick := d.cursor + d.rng.Intn(remaining)
		d.cards[d.cursor], d.cards[pick] = d.cards[pick], d.cards[d.cursor]
	}
	card := d.cards[d.cursor]
	d.cursor++
	return card, nil
}

// Copy deep copies the deck. The clone gets its own generator so parallel
// search branches never share mutable state; clone streams diverge, which is
// what hidden-deck determinization wants.
func (d *Deck) Copy() *Deck {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return &Deck{
		cards:  cards,
		bounds: d.bounds,
		cursor: d.cursor,
		season: d.season,
		hidden: d.hidden,
		rng:    rand.New(rand.NewSource(cloneSeed())),
	}
}

package game

// Terrain is the kind of a grid cell. A cell starts Empty and is written at
// most once; terrain never changes after that.
type Terrain uint8

const (
	Empty Terrain = iota
	Forest
	Village
	Farm
	Water
	Monster
	Mountain
	Wasteland
)

var terrainNames = map[Terrain]string{
	Empty:     "empty",
	Forest:    "forest",
	Village:   "village",
	Farm:      "farm",
	Water:     "water",
	Monster:   "monster",
	Mountain:  "mountain",
	Wasteland: "wasteland",
}

func (t Terrain) String() string {
	if name, ok := terrainNames[t]; ok {
		return name
	}
	return "unknown"
}

// Placeable terrains are the ones a card can put on the map. Mountains and
// wasteland only appear as prefilled map features.
func (t Terrain) Placeable() bool {
	switch t {
	case Forest, Village, Farm, Water, Monster:
		return true
	}
	return false
}

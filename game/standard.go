package game

// Standard card set. Loaded once at init and immutable for the process
// lifetime; game states hold references into these tables and never mutate
// them.

var StandardExplorationCards = []*ExplorationCard{
	{
		Name: "Great River", ID: 107, Time: 1,
		Options: []ExplorationOption{
			{Shape: NewShape("river-small", []Offset{{0, 0}, {1, 0}, {2, 0}}), Terrain: Water, Coin: true},
			{Shape: NewShape("river-large", []Offset{{0, 2}, {1, 1}, {1, 2}, {2, 0}, {2, 1}}), Terrain: Water},
		},
	},
	{
		Name: "Farmland", ID: 108, Time: 1,
		Options: []ExplorationOption{
			{Shape: NewShape("farm-small", []Offset{{0, 0}, {1, 0}}), Terrain: Farm, Coin: true},
			{Shape: NewShape("farm-large", []Offset{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}}), Terrain: Farm},
		},
	},
	{
		Name: "Hamlet", ID: 109, Time: 1,
		Options: []ExplorationOption{
			{Shape: NewShape("hamlet-small", []Offset{{0, 0}, {1, 0}, {1, 1}}), Terrain: Village, Coin: true},
			{Shape: NewShape("hamlet-large", []Offset{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}}), Terrain: Village},
		},
	},
	{
		Name: "Forgotten Forest", ID: 110, Time: 1,
		Options: []ExplorationOption{
			{Shape: NewShape("forest-small", []Offset{{0, 0}, {1, 1}}), Terrain: Forest, Coin: true},
			{Shape: NewShape("forest-large", []Offset{{0, 0}, {1, 0}, {1, 1}, {2, 1}}), Terrain: Forest},
		},
	},
	{
		Name: "Hinterland Stream", ID: 111, Time: 2,
		Options: []ExplorationOption{
			{Shape: NewShape("stream", []Offset{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {2, 0}}), Terrain: Water},
			{Shape: NewShape("stream", []Offset{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {2, 0}}), Terrain: Farm},
		},
	},
	{
		Name: "Homestead", ID: 112, Time: 2,
		Options: []ExplorationOption{
			{Shape: NewShape("homestead", []Offset{{0, 0}, {1, 0}, {1, 1}, {2, 0}}), Terrain: Village},
			{Shape: NewShape("homestead", []Offset{{0, 0}, {1, 0}, {1, 1}, {2, 0}}), Terrain: Farm},
		},
	},
	{
		Name: "Orchard", ID: 113, Time: 2,
		Options: []ExplorationOption{
			{Shape: NewShape("orchard", []Offset{{0, 0}, {0, 1}, {0, 2}, {1, 2}}), Terrain: Farm},
			{Shape: NewShape("orchard", []Offset{{0, 0}, {0, 1}, {0, 2}, {1, 2}}), Terrain: Forest},
		},
	},
	{
		Name: "Treetop Village", ID: 114, Time: 2,
		Options: []ExplorationOption{
			{Shape: NewShape("treetop", []Offset{{0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}}), Terrain: Village},
			{Shape: NewShape("treetop", []Offset{{0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}}), Terrain: Forest},
		},
	},
	{
		Name: "Marshlands", ID: 115, Time: 2,
		Options: []ExplorationOption{
			{Shape: NewShape("marsh", []Offset{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 0}}), Terrain: Water},
			{Shape: NewShape("marsh", []Offset{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 0}}), Terrain: Forest},
		},
	},
	{
		Name: "Fishing Village", ID: 116, Time: 2,
		Options: []ExplorationOption{
			{Shape: NewShape("fishing", []Offset{{0, 0}, {0, 1}, {0, 2}, {0, 3}}), Terrain: Village},
			{Shape: NewShape("fishing", []Offset{{0, 0}, {0, 1}, {0, 2}, {0, 3}}), Terrain: Water},
		},
	},
	{
		Name: "Rift Lands", ID: 117, Time: 0,
		Options: []ExplorationOption{
			{Shape: NewShape("rift", []Offset{{0, 0}}), Terrain: Forest},
			{Shape: NewShape("rift", []Offset{{0, 0}}), Terrain: Farm},
			{Shape: NewShape("rift", []Offset{{0, 0}}), Terrain: Village},
			{Shape: NewShape("rift", []Offset{{0, 0}}), Terrain: Water},
			{Shape: NewShape("rift", []Offset{{0, 0}}), Terrain: Monster},
		},
	},
}

var StandardAmbushCards = []*AmbushCard{
	{
		Name: "Goblin Attack", ID: 101,
		Shape:  NewShape("goblin", []Offset{{0, 0}, {1, 1}, {2, 2}}),
		Corner: BottomLeft, Rotation: CounterClockwise,
	},
	{
		Name: "Bugbear Assault", ID: 102,
		Shape:  NewShape("bugbear", []Offset{{0, 0}, {0, 2}, {1, 0}, {1, 2}}),
		Corner: TopRight, Rotation: Clockwise,
	},
	{
		Name: "Kobold Onslaught", ID: 103,
		Shape:  NewShape("kobold", []Offset{{0, 0}, {1, 0}, {1, 1}, {2, 0}}),
		Corner: BottomLeft, Rotation: Clockwise,
	},
	{
		Name: "Gnoll Raid", ID: 104,
		Shape:  NewShape("gnoll", []Offset{{0, 0}, {0, 1}, {1, 0}, {2, 0}, {2, 1}}),
		Corner: TopLeft, Rotation: CounterClockwise,
	},
}

var StandardRuinCards = []*RuinCard{
	{Name: "Temple Ruins", ID: 105},
	{Name: "Outpost Ruins", ID: 106},
}

var StandardScoringCards = []ScoringCard{
	{Name: "Bastions of the Wilds", ID: 134, Group: VillageTasks, Evaluate: scoreBastions},
	{Name: "Metropolis", ID: 135, Group: VillageTasks, Evaluate: scoreMetropolis},
	{Name: "Shield of the Realm", ID: 137, Group: VillageTasks, Evaluate: scoreShieldOfTheRealm},
	{Name: "Shimmering Plain", ID: 136, Group: VillageTasks, Evaluate: scoreShimmeringPlain},
	{Name: "Forest Path", ID: 129, Group: ForestTasks, Evaluate: scoreForestPath},
	{Name: "Sentinel Wood", ID: 126, Group: ForestTasks, Evaluate: scoreSentinelWood},
	{Name: "Greenbough", ID: 127, Group: ForestTasks, Evaluate: scoreGreenbough},
	{Name: "Murkwood", ID: 128, Group: ForestTasks, Evaluate: scoreMurkwood},
	{Name: "Golden Granary", ID: 132, Group: WaterFarmTasks, Evaluate: scoreGoldenGranary},
	{Name: "Mage Valley", ID: 131, Group: WaterFarmTasks, Evaluate: scoreMageValley},
	{Name: "Canal Lake", ID: 130, Group: WaterFarmTasks, Evaluate: scoreCanalLake},
	{Name: "Shoreside Expanse", ID: 133, Group: WaterFarmTasks, Evaluate: scoreShoresideExpanse},
	{Name: "Inaccessible Barony", ID: 139, Group: GeometryTasks, Evaluate: scoreInaccessibleBarony},
	{Name: "Borderlands", ID: 138, Group: GeometryTasks, Evaluate: scoreBorderlands},
	{Name: "The Cauldrons", ID: 141, Group: GeometryTasks, Evaluate: scoreCauldrons},
	{Name: "The Long Road", ID: 140, Group: GeometryTasks, Evaluate: scoreLongRoad},
}

// StandardSeasonTimes is the time budget per season.
var StandardSeasonTimes = []int{8, 8, 7, 6}

// RuinPenaltyPoints is the end-game penalty per revealed ruin card. The ruin
// and ambush penalties are independent and additive; see the terminal score
// computation in state.go.
const RuinPenaltyPoints = 3

// Package sim is the frame-stepped simulation of a level: the tile grid and
// its entities, the active region around the player, the player itself and
// the session that strings level attempts together. It does not import
// ebiten; drawing happens through the Renderer interface.
package sim

// Kind identifies the behavior of an entity.
type Kind int

const (
	KindNone Kind = iota
	KindWall
	KindWater
	KindThorns
	KindIce
	KindThinIce
	KindTree
	KindFlower
	KindSnake
	KindPtero
	KindFrog
	KindPlant
	KindSpit
	KindYeti
	KindMushroom
	KindGem
	KindGemLife
	KindMammoth
	KindSpore
	KindSnowball
)

var kindNames = [...]string{
	KindNone:     "none",
	KindWall:     "wall",
	KindWater:    "water",
	KindThorns:   "thorns",
	KindIce:      "ice",
	KindThinIce:  "thin-ice",
	KindTree:     "tree",
	KindFlower:   "flower",
	KindSnake:    "snake",
	KindPtero:    "ptero",
	KindFrog:     "frog",
	KindPlant:    "plant",
	KindSpit:     "spit",
	KindYeti:     "yeti",
	KindMushroom: "mushroom",
	KindGem:      "gem",
	KindGemLife:  "gem-life",
	KindMammoth:  "mammoth",
	KindSpore:    "spore",
	KindSnowball: "snowball",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every kind that can appear in a level grid.
func Kinds() []Kind {
	return []Kind{
		KindWall, KindWater, KindThorns, KindIce, KindThinIce, KindTree, KindFlower,
		KindSnake, KindPtero, KindFrog, KindPlant, KindSpit, KindYeti, KindMushroom,
		KindGem, KindGemLife, KindMammoth,
	}
}

// Flags are the capability bits fixed at construction.
type Flags uint8

const (
	FlagSolid Flags = 1 << iota
	FlagHazard
	FlagEnemy
	FlagCollectible
)

// Material decides how the player moves on a solid.
type Material int

const (
	MaterialDefault Material = iota
	MaterialIce              // no grounded deceleration
)

// Outcome is the result of one player update.
type Outcome int

const (
	OutcomeNone     Outcome = 0
	OutcomeComplete Outcome = 1
	OutcomeDied     Outcome = -1
	OutcomeQuit     Outcome = -2
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeComplete:
		return "complete"
	case OutcomeDied:
		return "died"
	case OutcomeQuit:
		return "quit"
	}
	return "unknown"
}

// Input is the sampled control state for one frame.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Quit  bool
}

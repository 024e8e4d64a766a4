package components

import (
	"github.com/automoto/dino/assets"
	"github.com/automoto/dino/sim"
	"github.com/yohamta/donburi"
)

// Sprite is one draw call recorded while the session stepped, already in
// screen coordinates.
type Sprite struct {
	Kind    sim.Kind // KindNone for the player
	X, Y    int
	W, H    int
	Frame   int
	Flip    bool
	Variant int
	Style   int
	ShakeDX int
}

// LevelData holds the running session and where its levels were read from.
type LevelData struct {
	Session *sim.Session
	Dir     string   // empty for the embedded set
	Paths   []string // file per level index inside Dir
	Watcher *assets.LevelWatcher

	// Display is the last simulated frame. It is kept while the session
	// is in the intro or dying phase so the scene stays frozen.
	Display []Sprite

	// Reloaded is set for the frame a watched level file was swapped in.
	Reloaded bool
}

var Level = donburi.NewComponentType[LevelData]()

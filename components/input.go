package components

import (
	cfg "github.com/automoto/dino/config"
	"github.com/yohamta/donburi"
)

// ActionState is an action's held state plus its edges this frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds the held state of every action for this frame and the
// last one. Edges are derived on read.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

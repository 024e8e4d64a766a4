package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// WipeData is the iris that closes on the player after a death.
type WipeData struct {
	Active  bool
	Radius  float32
	CenterX float32
	CenterY float32
}

var Wipe = donburi.NewComponentType[WipeData]()

// IntroData is the card shown before each attempt.
type IntroData struct {
	Tween  *gween.Tween
	Offset float32 // vertical slide of the card
	Shown  bool
}

var Intro = donburi.NewComponentType[IntroData]()

package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// EffectKind selects how an effect entity is drawn.
type EffectKind int

const (
	EffectParticle EffectKind = iota
	EffectPopup
	EffectSplash
)

// EffectData is a cosmetic entity in world coordinates.
type EffectData struct {
	Kind    EffectKind
	X, Y    float64
	VX, VY  float64
	Gravity float64
	Color   color.RGBA
	Text    string
	Life    int // total frames, for fading
}

var Effect = donburi.NewComponentType[EffectData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// FlashData whitens the whole screen for a few frames (lightning)
type FlashData struct {
	Duration int
	Color    color.RGBA
}

var Flash = donburi.NewComponentType[FlashData]()

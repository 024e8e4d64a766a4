package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID is a logical input action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionQuit
	ActionSkip
	ActionDebug
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // array size, keep last
)

// InputBinding lists the keys and standard gamepad buttons that hold an
// action.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

type InputConfig struct {
	Bindings       map[ActionID]InputBinding
	AnalogDeadzone float64 // 0..1 stick deflection ignored
}

var Input InputConfig

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func buttons(b ...ebiten.StandardGamepadButton) []ebiten.StandardGamepadButton { return b }

func init() {
	const (
		padA     = ebiten.StandardGamepadButtonRightBottom
		padB     = ebiten.StandardGamepadButtonRightRight
		padStart = ebiten.StandardGamepadButtonCenterRight
	)

	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			// play
			ActionMoveLeft:  {keys(ebiten.KeyLeft, ebiten.KeyA), buttons(ebiten.StandardGamepadButtonLeftLeft)},
			ActionMoveRight: {keys(ebiten.KeyRight, ebiten.KeyD), buttons(ebiten.StandardGamepadButtonLeftRight)},
			ActionJump:      {keys(ebiten.KeyUp, ebiten.KeySpace, ebiten.KeyW), buttons(padA)},
			ActionQuit:      {keys(ebiten.KeyEscape), buttons(padStart)},
			ActionSkip:      {keys(ebiten.KeyEnter), buttons(padB)},
			ActionDebug:     {keys(ebiten.KeyF1), nil},

			// menus
			ActionMenuUp:     {keys(ebiten.KeyUp, ebiten.KeyW), buttons(ebiten.StandardGamepadButtonLeftTop)},
			ActionMenuDown:   {keys(ebiten.KeyDown, ebiten.KeyS), buttons(ebiten.StandardGamepadButtonLeftBottom)},
			ActionMenuSelect: {keys(ebiten.KeyEnter), buttons(padA)},
			ActionMenuBack:   {keys(ebiten.KeyEscape, ebiten.KeyBackspace), buttons(padB)},
		},
	}
}

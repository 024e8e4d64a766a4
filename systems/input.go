package systems

import (
	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

// UpdateInput samples keyboard and standard gamepads into the Input
// singleton. It runs before UpdateSession.
func UpdateInput(ecs *ecs.ECS) {
	_, existed := components.Input.First(ecs.World)
	input := getOrCreateInput(ecs)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for id, binding := range cfg.Input.Bindings {
		input.Current[id] = bindingHeld(binding, gamepadIDs)
	}

	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickVertical)
		for _, id := range StickActions(h, v, cfg.Input.AnalogDeadzone) {
			input.Current[id] = true
		}
	}

	// A key still held from the previous scene is not a new press.
	if !existed {
		input.Previous = input.Current
	}
}

func bindingHeld(b cfg.InputBinding, pads []ebiten.GamepadID) bool {
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gp := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
				return true
			}
		}
	}
	return false
}

// StickActions returns the directional actions a left stick position
// holds. Horizontal deflection steers, vertical deflection moves through
// menus.
func StickActions(h, v, deadzone float64) []cfg.ActionID {
	var ids []cfg.ActionID
	switch {
	case h < -deadzone:
		ids = append(ids, cfg.ActionMoveLeft)
	case h > deadzone:
		ids = append(ids, cfg.ActionMoveRight)
	}
	switch {
	case v < -deadzone:
		ids = append(ids, cfg.ActionMenuUp)
	case v > deadzone:
		ids = append(ids, cfg.ActionMenuDown)
	}
	return ids
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetInput returns the Input component for scenes that read actions
// outside a system.
func GetInput(ecs *ecs.ECS) *components.InputData {
	return getOrCreateInput(ecs)
}

// GetAction reports an action's held state and its edges this frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// SimInput maps held actions onto the simulation's input. Quit fires once
// per press so holding escape on the title screen does not leak into play.
func SimInput(input *components.InputData) sim.Input {
	return sim.Input{
		Left:  input.Current[cfg.ActionMoveLeft],
		Right: input.Current[cfg.ActionMoveRight],
		Jump:  input.Current[cfg.ActionJump],
		Quit:  GetAction(input, cfg.ActionQuit).JustPressed,
	}
}

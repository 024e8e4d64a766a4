package systems

import (
	"math"

	"github.com/automoto/dino/archetypes"
	"github.com/automoto/dino/assets"
	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WipeRadius is the iris radius frame f into a death of total frames. The
// first half holds fully open; the second half closes along a steep power
// curve so the iris only visibly moves near the end.
func WipeRadius(f, total int) float32 {
	half := total / 2
	if half <= 0 || f <= total-half {
		return cfg.Wipe.MaxRadius
	}
	left := total - f
	if left <= 0 {
		return 0
	}
	k := float64(left) / float64(half)
	return cfg.Wipe.MaxRadius * float32(math.Pow(k, cfg.Wipe.Exponent))
}

// StartWipe centres the iris on a screen position.
func StartWipe(e *ecs.ECS, cx, cy float32) {
	w := components.Wipe.Get(getOrCreateOverlay(e))
	w.Active = true
	w.CenterX, w.CenterY = cx, cy
	w.Radius = cfg.Wipe.MaxRadius
}

// StopWipe opens the iris again.
func StopWipe(e *ecs.ECS) {
	components.Wipe.Get(getOrCreateOverlay(e)).Active = false
}

// UpdateOverlay follows the session's death frames with the iris and
// slides the intro card.
func UpdateOverlay(e *ecs.ECS) {
	entry := getOrCreateOverlay(e)
	w := components.Wipe.Get(entry)
	if level := GetLevel(e); w.Active && level != nil && level.Session != nil {
		if s := level.Session; s.Phase == sim.PhaseDying {
			w.Radius = WipeRadius(s.PhaseFrames, cfg.Wipe.Frames)
		}
	}
	updateIntro(components.Intro.Get(entry))
}

// DrawWipe shades everything outside the iris.
func DrawWipe(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Wipe.First(e.World)
	if !ok || assets.IrisShader == nil {
		return
	}
	w := components.Wipe.Get(entry)
	if !w.Active || w.Radius >= cfg.Wipe.MaxRadius {
		return
	}

	shade := cfg.Wipe.ShadeColor
	a := float32(shade.A) / 255
	opts := &ebiten.DrawRectShaderOptions{}
	opts.Uniforms = map[string]any{
		"Center": []float32{w.CenterX, w.CenterY},
		"Radius": w.Radius,
		"Shade": []float32{
			float32(shade.R) / 255 * a,
			float32(shade.G) / 255 * a,
			float32(shade.B) / 255 * a,
			a,
		},
	}
	top := cfg.World.HUDHeight
	opts.GeoM.Translate(0, float64(top))
	screen.DrawRectShader(screen.Bounds().Dx(), screen.Bounds().Dy()-top, assets.IrisShader, opts)
}

func getOrCreateOverlay(e *ecs.ECS) *donburi.Entry {
	entry, ok := components.Wipe.First(e.World)
	if !ok {
		entry = archetypes.Overlay.Spawn(e)
	}
	return entry
}

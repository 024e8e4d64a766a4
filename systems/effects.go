package systems

import (
	"image/color"
	"math"

	"github.com/automoto/dino/archetypes"
	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/fonts"
	"github.com/automoto/dino/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, motion, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateMotion(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects decrements flash timers and removes expired flashes
func updateFlashEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
		if flash.Duration == 0 {
			toRemove = append(toRemove, e)
		}
	})
	for _, e := range toRemove {
		e.Remove()
	}
}

func updateMotion(ecs *ecs.ECS) {
	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		fx.X += fx.VX
		fx.Y += fx.VY
		fx.VY += fx.Gravity
	})
}

// updateAutoDestroy removes entities whose frame countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
		}
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

func spawnEffect(ecs *ecs.ECS, fx components.EffectData) {
	e := archetypes.Effect.Spawn(ecs)
	components.Effect.SetValue(e, fx)
	components.AutoDestroy.SetValue(e, components.AutoDestroyData{FramesRemaining: fx.Life})
}

// SpawnBurst throws a ring of particles out from a world position.
func SpawnBurst(ecs *ecs.ECS, x, y float64, clr color.RGBA) {
	n := cfg.Effects.BurstParticles
	speed := cfg.Effects.BurstSpeed
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		spawnEffect(ecs, components.EffectData{
			Kind:    components.EffectParticle,
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle)*speed - 1,
			Gravity: 0.15,
			Color:   clr,
			Life:    cfg.Effects.BurstFrames,
		})
	}
}

// SpawnPopup floats a short label up from a world position.
func SpawnPopup(ecs *ecs.ECS, x, y float64, label string, clr color.RGBA) {
	spawnEffect(ecs, components.EffectData{
		Kind:  components.EffectPopup,
		X:     x,
		Y:     y,
		VY:    -cfg.Effects.PopupRise,
		Color: clr,
		Text:  label,
		Life:  cfg.Effects.PopupFrames,
	})
}

// SpawnSplash drops a few ice chips from a cracking tile.
func SpawnSplash(ecs *ecs.ECS, x, y float64) {
	for i := -1; i <= 1; i++ {
		spawnEffect(ecs, components.EffectData{
			Kind:    components.EffectSplash,
			X:       x + float64(i*8),
			Y:       y,
			VX:      float64(i) * 0.8,
			VY:      -1.5,
			Gravity: 0.2,
			Color:   cfg.Effects.CrackColor,
			Life:    cfg.Weather.SplashLifetime * 2,
		})
	}
}

// ClearEffects removes every effect entity, used when an attempt restarts.
func ClearEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	for _, e := range toRemove {
		e.Remove()
	}
}

// TriggerFlash fills the screen with a color for a few frames.
func TriggerFlash(ecs *ecs.ECS, frames int, clr color.RGBA) {
	e := archetypes.Flash.Spawn(ecs)
	components.Flash.SetValue(e, components.FlashData{Duration: frames, Color: clr})
}

// DrawEffects draws particles and popups relative to the player's view.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	level := GetLevel(ecs)
	if level == nil || level.Session == nil {
		return
	}
	p := level.Session.Attempt.Player
	face := fonts.Small.Get()

	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		sx, sy := p.ScreenPos(int(fx.X), int(fx.Y))
		clr := fade(fx.Color, components.AutoDestroy.Get(e).FramesRemaining, fx.Life)

		switch fx.Kind {
		case components.EffectPopup:
			text.Draw(screen, fx.Text, face, sx, sy, clr)
		case components.EffectSplash:
			vector.FillRect(screen, float32(sx), float32(sy), 3, 3, clr, false)
		default:
			vector.FillCircle(screen, float32(sx), float32(sy), 2, clr, true)
		}
	})
}

// DrawFlash covers the screen while a flash is active.
func DrawFlash(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration <= 0 {
			return
		}
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.FillRect(screen, 0, 0, float32(w), float32(h), flash.Color, false)
	})
}

// fade scales alpha by the remaining share of an effect's life.
func fade(c color.RGBA, remaining, life int) color.RGBA {
	if life <= 0 || remaining >= life {
		return c
	}
	if remaining < 0 {
		remaining = 0
	}
	k := float64(remaining) / float64(life)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

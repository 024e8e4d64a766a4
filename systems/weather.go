package systems

import (
	"math/rand"

	"github.com/automoto/dino/archetypes"
	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeather alternates the rain layer and rolls for lightning.
func UpdateWeather(e *ecs.ECS) {
	w := getOrCreateWeather(e)
	if !w.Raining {
		return
	}
	level := GetLevel(e)
	if level == nil || level.Session == nil {
		return
	}
	clock := level.Session.Ctx.Clock()
	if clock%cfg.Weather.FrameEvery == 0 {
		w.Frame = 1 - w.Frame
	}
	if cfg.Weather.LightningOdds > 0 && rand.Intn(cfg.Weather.LightningOdds) == 0 {
		TriggerFlash(e, cfg.Weather.FlashFrames, cfg.Weather.FlashColor)
		TriggerScreenShake(e, cfg.ScreenShake.ThunderIntensity, cfg.ScreenShake.ThunderDuration)
		PlaySFX(e, cfg.SoundThunder)
	}
}

// SetRaining turns the rain layer on or off for the level being entered.
func SetRaining(e *ecs.ECS, on bool) {
	w := getOrCreateWeather(e)
	w.Raining = on
	if on && len(w.Drops) == 0 {
		w.Drops = NewRain(cfg.Weather.Drops, cfg.C.Width, cfg.C.Height-cfg.World.HUDHeight, rand.Int63())
	}
}

// NewRain scatters n drops over a w by h layer.
func NewRain(n, w, h int, seed int64) []components.Raindrop {
	r := rand.New(rand.NewSource(seed))
	drops := make([]components.Raindrop, n)
	for i := range drops {
		drops[i] = components.Raindrop{
			X:     float32(r.Intn(w)),
			Y:     float32(r.Intn(h)),
			Speed: 0.5 + r.Float32(),
		}
	}
	return drops
}

// RainScroll is the horizontal offset of the rain layer. It moves with the
// camera and wraps every screen width; the layer is drawn twice to cover
// the gap.
func RainScroll(cameraX, width int) float32 {
	if width <= 0 {
		return 0
	}
	return float32(-(cameraX % width))
}

// DrawWeather draws the rain over the level.
func DrawWeather(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Weather.First(e.World)
	if !ok {
		return
	}
	w := components.Weather.Get(entry)
	level := GetLevel(e)
	if !w.Raining || level == nil || level.Session == nil {
		return
	}

	p := level.Session.Attempt.Player
	width := cfg.C.Width
	scroll := RainScroll(p.X-p.ViewX, width)
	top := float32(cfg.World.HUDHeight)
	layerH := float32(cfg.C.Height) - top
	length := cfg.Weather.DropLength

	for copyX := float32(0); copyX <= float32(width); copyX += float32(width) {
		for _, d := range w.Drops {
			y := d.Y
			if w.Frame == 1 {
				y += layerH / 2 * d.Speed
			}
			for y >= layerH {
				y -= layerH
			}
			x := d.X + scroll + copyX
			vector.StrokeLine(screen, x, top+y, x-2, top+y+length, 1, cfg.Weather.DropColor, false)
		}
	}
}

func getOrCreateWeather(e *ecs.ECS) *components.WeatherData {
	entry, ok := components.Weather.First(e.World)
	if !ok {
		entry = archetypes.Weather.Spawn(e)
	}
	return components.Weather.Get(entry)
}

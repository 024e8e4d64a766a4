package systems

import (
	"fmt"

	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/fonts"
	"github.com/automoto/dino/shared/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartIntro slides the level card in from the top.
func StartIntro(e *ecs.ECS) {
	intro := components.Intro.Get(getOrCreateOverlay(e))
	from := -float32(cfg.C.Height)
	intro.Shown = true
	intro.Offset = from
	intro.Tween = gween.New(from, 0, cfg.Intro.SlideSeconds, ease.OutQuint)
}

// HideIntro removes the card when play starts.
func HideIntro(e *ecs.ECS) {
	intro := components.Intro.Get(getOrCreateOverlay(e))
	intro.Shown = false
	intro.Tween = nil
}

func updateIntro(intro *components.IntroData) {
	if !intro.Shown || intro.Tween == nil {
		return
	}
	offset, finished := intro.Tween.Update(1.0 / float32(ebiten.TPS()))
	intro.Offset = offset
	if finished {
		intro.Tween = nil
	}
}

// IntroLines returns the card's title and lives line.
func IntroLines(index, lives int) (string, string) {
	if lives < 0 {
		lives = 0
	}
	return fmt.Sprintf("LEVEL %d", index+1), fmt.Sprintf("x %d", lives)
}

// DrawIntro renders the level card over the play area.
func DrawIntro(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Intro.First(e.World)
	if !ok {
		return
	}
	intro := components.Intro.Get(entry)
	level := GetLevel(e)
	if !intro.Shown || level == nil || level.Session == nil {
		return
	}
	s := level.Session

	top := float32(cfg.World.HUDHeight) + intro.Offset
	w, h := float32(cfg.C.Width), float32(cfg.C.Height-cfg.World.HUDHeight)
	vector.FillRect(screen, 0, top, w, h, cfg.Intro.BackgroundColor, false)

	title, lives := IntroLines(s.Index, s.Ctx.Lives())
	titleFace := fonts.Title.Get()
	titleW := text.BoundString(titleFace, title).Dx()
	cy := int(top + h/2)
	text.Draw(screen, title, titleFace, (cfg.C.Width-titleW)/2, cy-30, cfg.Intro.TextColor)

	if name := s.Level().Name; name != "" {
		face := fonts.Small.Get()
		nameW := text.BoundString(face, name).Dx()
		text.Draw(screen, name, face, (cfg.C.Width-nameW)/2, cy-5, cfg.Intro.TextColor)
	}

	pw, ph := float32(rules.Player.Width), float32(rules.Player.Height)
	face := fonts.Regular.Get()
	livesW := text.BoundString(face, lives).Dx()
	x := float32(cfg.C.Width-livesW)/2 + pw/2
	drawDino(screen, x-pw-10, float32(cy)+15, pw, ph, 0, false)
	text.Draw(screen, lives, face, int(x), cy+15+int(ph)-8, cfg.Intro.TextColor)
}

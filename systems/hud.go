package systems

import (
	"fmt"

	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// FormatHUD returns the score and lives labels, zero padded to fixed widths.
func FormatHUD(score, lives int) (string, string) {
	if lives < 0 {
		lives = 0
	}
	return fmt.Sprintf("SCORE  %0*d", cfg.HUD.ScoreWidth, score),
		fmt.Sprintf("LIVES  %0*d", cfg.HUD.LivesWidth, lives)
}

// DrawHUD renders the bar above the play area.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	level := GetLevel(ecs)
	if level == nil || level.Session == nil {
		return
	}
	ctx := level.Session.Ctx
	hud := cfg.HUD
	w, h := float32(cfg.C.Width), float32(cfg.World.HUDHeight)
	b := float32(hud.Border)

	vector.FillRect(screen, 0, 0, w, h, hud.BorderColor, false)
	vector.FillRect(screen, b, b, w-2*b, h-2*b, hud.BackgroundColor, false)

	score, lives := FormatHUD(ctx.Score(), ctx.Lives())
	face := fonts.HUD.Get()
	text.Draw(screen, score, face, hud.ScoreX, hud.TextY, hud.TextColor)
	text.Draw(screen, lives, face, hud.LivesX, hud.TextY, hud.TextColor)
}

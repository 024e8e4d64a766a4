package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/fonts"
	"github.com/automoto/dino/shared/collision"
	"github.com/automoto/dino/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSolid    = color.RGBA{100, 100, 100, 255}
	debugHazard   = color.RGBA{255, 0, 0, 255}
	debugPickup   = color.RGBA{0, 255, 0, 255}
	debugOther    = color.RGBA{0, 255, 255, 255}
	debugPlayer   = color.RGBA{0, 0, 255, 255}
	debugWindow   = color.RGBA{255, 255, 0, 255}
	debugProtect  = color.RGBA{255, 0, 255, 255}
	debugTextBack = color.RGBA{0, 0, 0, 160}
)

// DrawDebug outlines the active set, the window around the focus tile and
// the protected instances, with region counters in the corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	level := GetLevel(ecs)
	if level == nil || level.Session == nil {
		return
	}
	s := level.Session
	a := s.Attempt
	p := a.Player
	active := a.Region.Active

	for _, ent := range active.Instances {
		b := ent.Base()
		if !b.Exists {
			continue
		}
		outline(screen, p, b.Rect(), debugColor(b))
	}
	for _, ent := range active.Hazards {
		if !active.Contains(ent) {
			// projectiles
			outline(screen, p, ent.Base().Rect(), debugHazard)
		}
	}
	for _, ent := range a.Region.Protected() {
		outline(screen, p, ent.Base().Rect(), debugProtect)
	}
	outline(screen, p, p.Rect(), debugPlayer)

	t := cfg.World.TileSize
	col0, row0, col1, row1 := a.Region.Window()
	outline(screen, p, collision.Rect{
		X: col0 * t,
		Y: row0 * t,
		W: (col1 - col0 + 1) * t,
		H: (row1 - row0 + 1) * t,
	}, debugWindow)

	lines := DebugLines(s)
	face := fonts.Small.Get()
	y := cfg.World.HUDHeight + 4
	vector.FillRect(screen, 4, float32(y), 230, float32(len(lines)*14+6), debugTextBack, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 10, y+14*(i+1), cfg.White)
	}
}

// DebugLines summarises the session and its active region.
func DebugLines(s *sim.Session) []string {
	a := s.Attempt
	r := a.Region
	gx, gy := r.Focus()
	active := r.Active
	return []string{
		fmt.Sprintf("level %d %q  phase %s", s.Index+1, s.Level().Name, s.Phase),
		fmt.Sprintf("player %d,%d  focus %d,%d", a.Player.X, a.Player.Y, gx, gy),
		fmt.Sprintf("active %d  solids %d  hazards %d", len(active.Instances), len(active.Solids), len(active.Hazards)),
		fmt.Sprintf("enemies %d  protected %d", len(active.Enemies), len(r.Protected())),
		fmt.Sprintf("rebuilds %d  evicted %d  deaths %d", r.Rebuilds, r.Evicted, s.Deaths),
		fmt.Sprintf("clock %d  tps %.0f", s.Ctx.Clock(), ebiten.ActualTPS()),
	}
}

func debugColor(b *sim.Body) color.RGBA {
	switch {
	case b.Has(sim.FlagSolid):
		return debugSolid
	case b.Has(sim.FlagHazard):
		return debugHazard
	case b.Has(sim.FlagCollectible):
		return debugPickup
	}
	return debugOther
}

func outline(screen *ebiten.Image, p *sim.Player, r collision.Rect, c color.RGBA) {
	sx, sy := p.ScreenPos(r.X, r.Y)
	x, y := float32(sx), float32(sy)
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

package sim

import "github.com/automoto/dino/shared/rules"

// Gem is a collectible worth score, or an extra life for KindGemLife. Once
// taken it stays gone until the attempt restarts.
type Gem struct {
	Body
}

func newGem(kind Kind, col, row int) *Gem {
	cfg := rules.Entities.Pickups
	off := (rules.World.TileSize - cfg.GemSize) / 2
	return &Gem{Body: newBody(kind, FlagCollectible, col, row, off, off, cfg.GemSize, cfg.GemSize)}
}

func (g *Gem) Update(env *Env) {
	if g.Exists && env.Ctx.Clock()%rules.Entities.Pickups.GemBlinkEvery == 0 {
		g.Frame = (g.Frame + 1) % 2
	}
}

func (g *Gem) Action(ctx *Context) {
	if g.Kind == KindGemLife {
		ctx.AddLives(1)
		ctx.Emit(EventExtraLife, g.X, g.Y)
		return
	}
	ctx.AddScore(rules.Entities.Pickups.GemScore)
	ctx.Emit(EventGem, g.X, g.Y)
}

func (g *Gem) Reset() {}

func (g *Gem) ResetStrong() {
	g.Exists = true
	g.Frame = 0
}

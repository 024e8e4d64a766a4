package sim

// Renderer receives draw calls in update order: each non-solid entity right
// after its update, then the player, then each solid. Entities that do not
// exist are not drawn, but a spawner's live projectiles always are.
type Renderer interface {
	DrawEntity(b *Body, p *Player)
	DrawPlayer(p *Player)
}

// Attempt is one try at a level: a player, the active region and the frame
// loop. The grid is shared with the session and outlives attempts.
type Attempt struct {
	Ctx    *Context
	Grid   *Grid
	Player *Player
	Region *Region

	// StartScore is restored when the attempt ends in death.
	StartScore int
	Frames     int

	env Env
}

// NewAttempt places the player on the spawn column and builds the initial
// active set around the starting focus tile.
func NewAttempt(ctx *Context, g *Grid) *Attempt {
	x, y := g.SpawnPoint()
	p := NewPlayer(x, y)
	p.UpdateCamera(g)

	r := NewRegion(g)
	a := &Attempt{
		Ctx:        ctx,
		Grid:       g,
		Player:     p,
		Region:     r,
		StartScore: ctx.Score(),
	}
	a.env = Env{Ctx: ctx, Grid: g, Player: p, Active: r.Active}
	r.Init()
	return a
}

// Step runs one frame. A quit returns before anything else changes.
func (a *Attempt) Step(in Input, draw Renderer) Outcome {
	p := a.Player
	out := p.Update(&a.env, in)
	if out == OutcomeQuit {
		return out
	}

	a.Region.Maintain(p)

	// Updates may add projectiles to Hazards but never change Instances.
	active := a.Region.Active
	for _, e := range active.Instances {
		if !e.Base().Has(FlagSolid) {
			e.Update(&a.env)
			drawEntity(draw, e, p)
		}
	}
	if draw != nil {
		draw.DrawPlayer(p)
	}
	for _, e := range active.Instances {
		if e.Base().Has(FlagSolid) {
			e.Update(&a.env)
			drawEntity(draw, e, p)
		}
	}

	switch out {
	case OutcomeDied:
		a.Ctx.Emit(EventDied, p.X, p.Y)
	case OutcomeComplete:
		a.Ctx.Emit(EventLevelComplete, p.X, p.Y)
	}
	a.Ctx.Tick()
	a.Frames++
	return out
}

// Env exposes what entities see, for tools and tests.
func (a *Attempt) Env() *Env { return &a.env }

func drawEntity(draw Renderer, e Entity, p *Player) {
	if draw == nil {
		return
	}
	if b := e.Base(); b.Exists {
		draw.DrawEntity(b, p)
	}
	if owner, ok := e.(projectileOwner); ok {
		owner.Projectiles().Each(func(pr *Projectile) {
			draw.DrawEntity(&pr.Body, p)
		})
	}
}

package sim

import (
	"math"

	"github.com/automoto/dino/shared/collision"
	"github.com/automoto/dino/shared/gamemath"
	"github.com/automoto/dino/shared/rules"
)

// Player is the controllable character. It is not part of the grid and a
// new one is created for every attempt.
type Player struct {
	X, Y       int
	HSpd, VSpd float64

	Grounded bool
	Jumping  bool
	Sliding  bool

	Frame int
	Flip  bool

	// ViewX, ViewY is the screen position the player is drawn at. Every
	// other entity draws relative to it.
	ViewX, ViewY int
}

// NewPlayer places a player at (x, y) with the camera centred.
func NewPlayer(x, y int) *Player {
	w := rules.World
	return &Player{
		X:     x,
		Y:     y,
		ViewX: w.ScreenWidth / 2,
		ViewY: w.ScreenHeight/2 + w.HUDHeight,
	}
}

// Rect returns the collision rect.
func (p *Player) Rect() collision.Rect {
	return collision.Rect{X: p.X, Y: p.Y, W: rules.Player.Width, H: rules.Player.Height}
}

// Update advances the player one frame against the active set and returns
// the outcome.
func (p *Player) Update(env *Env, in Input) Outcome {
	cfg := rules.Player
	active := env.Active

	acc := p.probeGround(active)
	if in.Quit {
		return OutcomeQuit
	}

	p.steer(in, acc)
	p.jump(env.Ctx, in)

	// Integration, one axis at a time.
	p.VSpd += cfg.Gravity

	prev := p.Rect()
	p.X = gamemath.TruncAdd(p.X, p.HSpd)
	r := p.Rect()
	if alignAgainst(&r, gamemath.SignInt(p.HSpd), 0, active.SolidsNear(prev.Union(r)), nil) {
		p.HSpd = 0
	}
	p.X = r.X

	prev = p.Rect()
	p.Y = gamemath.TruncAdd(p.Y, p.VSpd)
	r = p.Rect()
	if alignAgainst(&r, 0, gamemath.SignInt(p.VSpd), active.SolidsNear(prev.Union(r)), nil) {
		p.VSpd = 0
	}
	p.Y = r.Y

	result := OutcomeNone
	if p.Y > env.Grid.Height() {
		result = OutcomeDied
	}
	if p.X > env.Grid.Width() {
		result = OutcomeComplete
	}

	if p.collideEnemies(env, in) {
		result = OutcomeDied
	}
	p.collect(env)
	p.animate(env.Ctx, in)
	p.UpdateCamera(env.Grid)
	return result
}

// probeGround tests one pixel below the player. The last solid touched
// supplies the acceleration; any icy solid turns on sliding.
func (p *Player) probeGround(active *ActiveSet) float64 {
	acc := rules.Player.Acceleration
	p.Grounded = false
	p.Sliding = false

	probe := p.Rect().Offset(0, 1)
	for _, s := range active.SolidsNear(probe) {
		b := s.Base()
		if !collision.Overlaps(probe, b.Rect()) {
			continue
		}
		p.Grounded = true
		acc = b.Traction
		if b.Material == MaterialIce {
			p.Sliding = true
		}
	}
	return acc
}

func (p *Player) steer(in Input, acc float64) {
	maxSpd := rules.Player.MaxSpeed
	switch {
	case in.Left:
		p.Flip = true
		if p.HSpd > -maxSpd {
			p.HSpd -= acc
		}
	case in.Right:
		p.Flip = false
		if p.HSpd < maxSpd {
			p.HSpd += acc
		}
	case p.HSpd != 0:
		if p.Grounded && !p.Sliding {
			p.HSpd -= acc * gamemath.Sign(p.HSpd)
		}
		if !p.Grounded {
			p.HSpd -= acc / rules.Player.AirDecelDivisor * gamemath.Sign(p.HSpd)
		}
		if math.Abs(p.HSpd) < acc {
			p.HSpd = 0
		}
	}
	p.HSpd = gamemath.ClampSpeed(p.HSpd, maxSpd)
}

func (p *Player) jump(ctx *Context, in Input) {
	cfg := rules.Player
	if in.Jump {
		if p.Grounded {
			p.Jumping = true
			p.VSpd = cfg.JumpSpeed
			ctx.Emit(EventJump, p.X, p.Y)
		}
	} else if p.Jumping {
		p.Jumping = false
		p.VSpd *= cfg.JumpRelease
	}
	if p.Jumping && p.VSpd > 0 {
		p.Jumping = false
	}
}

// collideEnemies handles pounces and hazard contact on a rect one pixel
// lower than the player. It reports whether the player died.
func (p *Player) collideEnemies(env *Env, in Input) bool {
	cfg := rules.Player
	probe := p.Rect().Offset(0, 1)

	pounced := false
	for _, e := range env.Active.Enemies {
		b := e.Base()
		if !b.Exists || !collision.Overlaps(probe, b.Rect()) {
			continue
		}
		if pounced {
			// chained bounce: anything else underfoot this frame dies too
			b.Exists = false
			continue
		}
		if p.Y+cfg.PounceMargin < b.Rect().Y {
			pounced = true
			b.Exists = false
			if in.Jump {
				p.VSpd = cfg.BounceHigh
				p.Jumping = true
			} else {
				p.VSpd = cfg.BounceLow
			}
			e.Action(env.Ctx)
			env.Ctx.Emit(EventStomp, b.X, b.Y)
		}
	}

	for _, h := range env.Active.Hazards {
		b := h.Base()
		if b.Exists && collision.Overlaps(probe, b.Rect()) {
			return true
		}
	}
	return false
}

func (p *Player) collect(env *Env) {
	r := p.Rect()
	for _, c := range env.Active.Collectibles {
		b := c.Base()
		if b.Exists && collision.Overlaps(r, b.Rect()) {
			b.Exists = false
			c.Action(env.Ctx)
		}
	}
}

func (p *Player) animate(ctx *Context, in Input) {
	moving := in.Left || in.Right
	if math.Floor(math.Abs(p.HSpd)) > 0 && p.Frame != 1 && p.Frame != 2 {
		p.Frame = 1
	}
	if p.HSpd == 0 || !moving {
		p.Frame = 0
	}
	if ctx.Clock()%rules.Player.RunFrameEvery == 0 && p.Grounded && p.Frame != 0 {
		p.Frame = p.Frame%2 + 1
	}
}

// UpdateCamera recomputes the view centre, clamped so the camera never shows
// past the level edges.
func (p *Player) UpdateCamera(g *Grid) {
	w := rules.World
	halfW, halfH := w.ScreenWidth/2, w.ScreenHeight/2

	p.ViewX = halfW
	p.ViewY = halfH + w.HUDHeight
	if p.Y+halfH > g.Height() {
		p.ViewY = w.ScreenHeight + p.Y - g.Height() + w.HUDHeight
	} else if p.Y-halfH < 0 {
		p.ViewY = p.Y + w.HUDHeight
	}
	if p.X+halfW > g.Width() {
		p.ViewX = w.ScreenWidth + p.X - g.Width()
	} else if p.X-halfW < 0 {
		p.ViewX = p.X
	}
}

// ScreenPos converts a world position to screen coordinates.
func (p *Player) ScreenPos(x, y int) (sx, sy int) {
	return p.ViewX + x - p.X, p.ViewY + y - p.Y
}

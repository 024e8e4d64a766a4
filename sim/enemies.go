package sim

import (
	"math"

	"github.com/automoto/dino/shared/collision"
	"github.com/automoto/dino/shared/gamemath"
	"github.com/automoto/dino/shared/rules"
)

// Snake patrols a platform in steps and turns at walls and ledges.
type Snake struct {
	Body
	speed int
}

func newSnake(col, row int) *Snake {
	cfg := rules.Entities.Snake
	t := rules.World.TileSize
	s := &Snake{Body: newBody(KindSnake, FlagHazard|FlagEnemy, col, row, 0, 0, cfg.Width, t)}
	s.speed = cfg.Speed
	return s
}

func (s *Snake) Update(env *Env) {
	if !s.Exists {
		s.Protected = false
		return
	}
	cfg := rules.Entities.Snake
	if env.Ctx.Clock()%cfg.StepEvery == 0 {
		s.Frame = (s.Frame + 1) % 2
		start := s.speed
		prev := s.Rect()
		s.X += s.speed
		if env.alignSolids(&s.Body, prev, gamemath.SignInt(float64(s.speed)), 0) {
			s.speed = -start
		}
		if turnAtLedge(env.Grid, s.Y, s.X+cfg.Width/2, s.X+cfg.Width/2, s.speed) {
			s.speed = -s.speed
		}
		s.Flip = s.speed < 0
	}
	s.Protected = env.onScreen(&s.Body, 0)
}

func (s *Snake) Action(ctx *Context) { ctx.AddScore(rules.Entities.Snake.Score) }

func (s *Snake) Reset() {
	s.home()
	s.speed = rules.Entities.Snake.Speed
	s.Frame = 0
	s.Flip = false
	s.Protected = false
}

func (s *Snake) ResetStrong() {
	s.Reset()
	s.Exists = true
}

// turnAtLedge looks one row below y, one tile ahead of aheadX and one tile
// behind behindX in the walking direction. A walker turns when the ground
// ends ahead but not behind, or when ahead is a hole or hazard while behind
// is solid or harmless.
func turnAtLedge(g *Grid, y, aheadX, behindX, speed int) bool {
	t := rules.World.TileSize
	s := gamemath.SignInt(float64(speed))
	row := gamemath.FloorDiv(y, t) + 1
	ahead := g.At(row, gamemath.FloorDiv(aheadX+t*s, t))
	behind := g.At(row, gamemath.FloorDiv(behindX-t*s, t))
	if ahead == nil {
		return behind != nil
	}
	ab := ahead.Base()
	if !ab.Has(FlagSolid) || ab.Has(FlagHazard) {
		if behind == nil {
			return false
		}
		bb := behind.Base()
		return bb.Has(FlagSolid) || !bb.Has(FlagHazard)
	}
	return false
}

// Ptero glides back and forth, reversing its acceleration on a fixed
// interval.
type Ptero struct {
	Body
	acc, speed float64
	timer      int
}

func newPtero(col, row int) *Ptero {
	t := rules.World.TileSize
	p := &Ptero{Body: newBody(KindPtero, FlagHazard|FlagEnemy, col, row, 0, 0, t, t)}
	p.Reset()
	return p
}

func (p *Ptero) Update(env *Env) {
	if !p.Exists {
		p.Protected = false
		p.timer = -1
		return
	}
	cfg := rules.Entities.Ptero
	clock := env.Ctx.Clock()
	if p.timer == -1 {
		p.timer = clock
	}
	if (clock-p.timer)%cfg.Interval == 0 {
		p.acc = -p.acc
	}
	if clock%cfg.FlapEvery == 0 {
		p.Frame = (p.Frame + 1) % 2
	}

	p.speed += p.acc
	if math.Abs(p.speed) < cfg.StopBelow {
		p.speed = 0
	}
	prev := p.Rect()
	dir := gamemath.SignInt(p.speed)
	p.X += int(math.Floor(math.Abs(p.speed))) * dir
	if env.alignSolids(&p.Body, prev, dir, 0) {
		p.speed = 0
	}
	p.Flip = p.speed < 0
	p.Protected = env.onScreen(&p.Body, 0)
}

func (p *Ptero) Action(ctx *Context) { ctx.AddScore(rules.Entities.Ptero.Score) }

func (p *Ptero) Reset() {
	cfg := rules.Entities.Ptero
	p.home()
	p.timer = -1
	p.acc = -math.Abs(cfg.Acceleration)
	p.speed = float64(cfg.Interval/2) * p.acc
	p.Frame = 0
	p.Flip = false
	p.Protected = false
}

func (p *Ptero) ResetStrong() {
	p.Reset()
	p.Exists = true
}

// Frog sits still and, every so often, leaps on an arc aimed at the player.
type Frog struct {
	Body
	hspd, vspd float64
	timer      int
	grounded   bool
}

func newFrog(col, row int) *Frog {
	t := rules.World.TileSize
	f := &Frog{Body: newBody(KindFrog, FlagHazard|FlagEnemy, col, row, 0, 0, t, t)}
	f.Reset()
	return f
}

func (f *Frog) Update(env *Env) {
	if !f.Exists {
		f.Protected = false
		return
	}
	cfg := rules.Entities.Frog
	clock := env.Ctx.Clock()
	p := env.Player

	probe := f.Rect().Offset(0, 1)
	f.grounded = false
	for _, s := range env.Active.SolidsNear(probe) {
		if collision.Overlaps(probe, s.Base().Rect()) {
			f.grounded = true
			break
		}
	}

	if f.timer == -1 {
		f.timer = clock
	} else if (clock-f.timer)%cfg.JumpEvery == 0 && f.grounded {
		f.timer = -1
		dx := float64(f.X - p.X - cfg.AimOffsetX)
		dy := float64(f.Y - p.Y - cfg.AimOffsetY)
		if vx, vy, ok := gamemath.ArcLaunch(dx, dy, cfg.LaunchSpd, cfg.Gravity); ok {
			f.hspd, f.vspd = vx, vy
			f.grounded = false
		}
	}

	if f.grounded {
		f.hspd = 0
	} else {
		f.vspd += cfg.Gravity
	}

	prev := f.Rect()
	f.X = gamemath.TruncAdd(f.X, f.hspd)
	if env.alignSolids(&f.Body, prev, gamemath.SignInt(f.hspd), 0) {
		f.hspd = -f.hspd
	}
	prev = f.Rect()
	f.Y = gamemath.TruncAdd(f.Y, f.vspd)
	if env.alignSolids(&f.Body, prev, 0, gamemath.SignInt(f.vspd)) {
		f.vspd = 0
		f.timer = -1
	}

	f.Protected = env.onScreen(&f.Body, 0)
	if f.grounded {
		f.Frame = 0
		f.Flip = f.X > p.X
	} else {
		f.Frame = 1
		f.Flip = f.hspd < 0
	}
}

func (f *Frog) Action(ctx *Context) { ctx.AddScore(rules.Entities.Frog.Score) }

func (f *Frog) Reset() {
	f.home()
	f.hspd, f.vspd = 0, 0
	f.timer = -1
	f.grounded = false
	f.Frame = 0
	f.Flip = false
	f.Protected = false
}

func (f *Frog) ResetStrong() {
	f.Reset()
	f.Exists = true
}

// Mammoth is a big walker that cannot be killed for good: a pounce scores
// and it gets back up on its next update. It turns at solids, hazards and
// ledges.
type Mammoth struct {
	Body
	speed int
}

func newMammoth(col, row int) *Mammoth {
	cfg := rules.Entities.Mammoth
	m := &Mammoth{Body: newBody(KindMammoth, FlagHazard|FlagEnemy, col, row, 0, cfg.OffsetY, cfg.Width, cfg.Height)}
	m.speed = cfg.Speed
	return m
}

func (m *Mammoth) Update(env *Env) {
	t := rules.World.TileSize
	m.Exists = true
	if env.Ctx.Clock()%rules.Entities.Mammoth.StepEvery == 0 {
		m.Frame = (m.Frame + 1) % 2
	}

	start := m.speed
	prev := m.Rect()
	m.X += m.speed
	if env.alignSolids(&m.Body, prev, gamemath.SignInt(float64(m.speed)), 0) {
		m.speed = -start
	}

	r := m.Rect()
	if alignAgainst(&r, gamemath.SignInt(float64(m.speed)), 0, env.Active.Hazards, &m.Body) {
		m.speed = -start
	}
	m.X = r.X

	if turnAtLedge(env.Grid, m.Y+t/2, m.X-1+t, m.X+1, m.speed) {
		m.speed = -m.speed
	}
	m.Flip = m.speed < 0
	m.Protected = env.onScreen(&m.Body, 2)
}

func (m *Mammoth) Action(ctx *Context) { ctx.AddScore(rules.Entities.Mammoth.Score) }

func (m *Mammoth) Reset() {
	m.home()
	m.speed = rules.Entities.Mammoth.Speed
	m.Frame = 0
	m.Flip = false
	m.Protected = false
}

func (m *Mammoth) ResetStrong() {
	m.Reset()
	m.Exists = true
}

// Mushroom is a bounce pad. A pounce squashes it for a few frames; it is
// never harmful and scores nothing.
type Mushroom struct {
	Body
	squish int
}

const mushroomTop = 4

func newMushroom(col, row int) *Mushroom {
	t := rules.World.TileSize
	return &Mushroom{
		Body:   newBody(KindMushroom, FlagEnemy, col, row, 0, mushroomTop, t, t-mushroomTop),
		squish: -1,
	}
}

func (mu *Mushroom) Update(env *Env) {
	clock := env.Ctx.Clock()
	if !mu.Exists {
		mu.Exists = true
		mu.Frame = 1
		mu.squish = clock
	}
	if mu.squish != -1 && clock-mu.squish == rules.Entities.Pickups.SquishFrames {
		mu.Frame = 0
		mu.squish = -1
	}
}

func (mu *Mushroom) Reset() {
	mu.home()
	mu.squish = -1
	mu.Frame = 0
}

func (mu *Mushroom) ResetStrong() {
	mu.Reset()
	mu.Exists = true
}

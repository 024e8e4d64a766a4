package sim

import (
	"github.com/automoto/dino/shared/gamemath"
	"github.com/automoto/dino/shared/rules"
)

// Plant lobs a fan of three spores on a fixed period. It cannot be killed
// and stays protected while any spore is in the air.
type Plant struct {
	Body
	spores Arena
	timer  int
}

var plantFan = [...]float64{-3, 0, 3}

const plantLaunchSpeed = -10

func newPlant(col, row int) *Plant {
	t := rules.World.TileSize
	return &Plant{Body: newBody(KindPlant, 0, col, row, 0, 0, t, t), timer: -1}
}

func (pl *Plant) Projectiles() *Arena { return &pl.spores }

func (pl *Plant) Update(env *Env) {
	pl.Exists = true
	clock := env.Ctx.Clock()
	if pl.timer == -1 {
		pl.timer = clock
	}
	if (clock-pl.timer)%rules.Entities.Spawners.PlantEvery == 0 {
		for _, h := range plantFan {
			pl.spores.Spawn(env.Active, KindSpore, pl.X, pl.Y, h, plantLaunchSpeed)
		}
		env.Ctx.Emit(EventSporeFired, pl.X, pl.Y)
	}
	pl.Protected = pl.spores.Live() > 0
	pl.spores.Update(env)
}

func (pl *Plant) Reset() {
	pl.home()
	pl.timer = -1
	pl.spores.Clear()
	pl.Protected = false
}

func (pl *Plant) ResetStrong() { pl.Reset() }

// Spit shakes when the player comes into range, then spits spores on an arc
// at the player until they leave.
type Spit struct {
	Body
	spores Arena
	timer  int
	shake  int
}

func newSpit(col, row int) *Spit {
	t := rules.World.TileSize
	return &Spit{Body: newBody(KindSpit, 0, col, row, 0, 0, t, t), timer: -1, shake: -1}
}

func (sp *Spit) Projectiles() *Arena { return &sp.spores }

func (sp *Spit) Update(env *Env) {
	cfg := rules.Entities.Spawners
	clock := env.Ctx.Clock()
	p := env.Player
	sp.Exists = true

	if d := env.playerDistance(&sp.Body); d > cfg.SpitMinRange && d < cfg.SpitMaxRange {
		if sp.shake == cfg.SpitShakeMax {
			if sp.timer == -1 {
				sp.timer = clock + cfg.SpitFireDelay
			}
			sp.Frame = 1
			sp.Flip = p.X > sp.X
			if (clock-sp.timer)%cfg.SpitEvery == 0 {
				dx := float64(sp.X - p.X - cfg.SpitAimX)
				dy := float64(sp.Y - p.Y - cfg.SpitAimY)
				if vx, vy, ok := gamemath.ArcLaunch(dx, dy, cfg.SpitSpeed, cfg.ProjectileGravity); ok {
					sp.spores.Spawn(env.Active, KindSpore, sp.X, sp.Y, vx, vy)
					env.Ctx.Emit(EventSporeFired, sp.X, sp.Y)
				}
			}
		} else if clock%cfg.SpitShakeStep == 0 {
			sp.shake++
		}
	} else {
		sp.timer = -1
		sp.Frame = 0
		sp.shake = -1
	}

	sp.Protected = sp.spores.Live() > 0
	sp.spores.Update(env)

	// wobble left and right while the player is in range
	sp.ShakeDX = 0
	if sp.shake != -1 {
		sp.ShakeDX = 1
		if sp.shake%2 != 0 {
			sp.ShakeDX = -1
		}
	}
}

func (sp *Spit) Reset() {
	sp.home()
	sp.timer = -1
	sp.shake = -1
	sp.Frame = 0
	sp.Flip = false
	sp.ShakeDX = 0
	sp.spores.Clear()
	sp.Protected = false
}

func (sp *Spit) ResetStrong() { sp.Reset() }

// Yeti throws snowballs straight at the player while in range. It can be
// pounced but is worth nothing, and its snowballs keep flying after it dies.
type Yeti struct {
	Body
	snowballs Arena
	timer     int
}

func newYeti(col, row int) *Yeti {
	t := rules.World.TileSize
	return &Yeti{Body: newBody(KindYeti, FlagHazard|FlagEnemy, col, row, 0, 0, t, t), timer: -1}
}

func (y *Yeti) Projectiles() *Arena { return &y.snowballs }

func (y *Yeti) Update(env *Env) {
	cfg := rules.Entities.Spawners
	clock := env.Ctx.Clock()
	p := env.Player

	y.snowballs.Update(env)
	if y.Exists {
		if env.playerDistance(&y.Body) < cfg.YetiRange {
			if y.timer == -1 {
				y.timer = clock
			}
			y.Flip = p.X < y.X
			if (clock-y.timer)%cfg.YetiEvery == 0 {
				vx, vy := gamemath.AimAt(float64(y.X), float64(y.Y), float64(p.X), float64(p.Y), cfg.YetiSpeed)
				y.snowballs.Spawn(env.Active, KindSnowball, y.X, y.Y, vx, vy)
				env.Ctx.Emit(EventSnowballThrown, y.X, y.Y)
			}
		} else {
			y.timer = -1
		}
	}
	y.Protected = y.snowballs.Live() > 0
}

func (y *Yeti) Reset() {
	y.home()
	y.timer = -1
	y.Flip = false
	y.snowballs.Clear()
	y.Protected = false
}

func (y *Yeti) ResetStrong() {
	y.Reset()
	y.Exists = true
}

package sim

import (
	"github.com/automoto/dino/shared/gamemath"
	"github.com/automoto/dino/shared/rules"
)

// Projectile is a spore or snowball. It is not a grid cell: its spawner owns
// it through an Arena and it enters Hazards on its own.
type Projectile struct {
	Body
	HSpd, VSpd float64

	gravity     float64
	screenBound bool
}

func newProjectile(kind Kind, x, y int, hspd, vspd float64) *Projectile {
	sz := rules.Entities.Spawners.ProjectileSize
	pr := &Projectile{
		Body: Body{
			Kind:     kind,
			Flags:    FlagHazard,
			Traction: rules.Entities.Surface.DefaultTraction,
			X:        x + sz/2,
			Y:        y + sz/2,
			W:        sz,
			H:        sz,
			Exists:   true,
		},
		HSpd: hspd,
		VSpd: vspd,
	}
	switch kind {
	case KindSpore:
		pr.gravity = rules.Entities.Spawners.ProjectileGravity
	case KindSnowball:
		pr.screenBound = true
	}
	return pr
}

// Update moves the projectile and retires it when it hits a solid or leaves
// the level. Snowballs also retire once they are off screen.
func (pr *Projectile) Update(env *Env) {
	if !pr.Exists {
		return
	}
	env.Active.AddHazard(pr)
	pr.VSpd += pr.gravity

	prev := pr.Rect()
	pr.X = gamemath.TruncAdd(pr.X, pr.HSpd)
	if env.alignSolids(&pr.Body, prev, gamemath.SignInt(pr.HSpd), 0) {
		pr.HSpd = 0
		pr.retire(env.Active)
		return
	}

	prev = pr.Rect()
	pr.Y = gamemath.TruncAdd(pr.Y, pr.VSpd)
	if env.alignSolids(&pr.Body, prev, 0, gamemath.SignInt(pr.VSpd)) {
		pr.VSpd = 0
		pr.retire(env.Active)
		return
	}

	if pr.Y > env.Grid.Height() {
		pr.retire(env.Active)
		return
	}
	if !pr.screenBound {
		return
	}
	w := rules.World
	sx, _ := env.Player.ScreenPos(pr.X, pr.Y)
	if pr.X > env.Grid.Width() || pr.X < 0 || sx < w.ScreenMarginMin || sx > w.ScreenMarginMax {
		pr.retire(env.Active)
	}
}

func (pr *Projectile) retire(a *ActiveSet) {
	pr.Exists = false
	a.RemoveHazard(pr)
}

func (pr *Projectile) Reset() {}
func (pr *Projectile) ResetStrong() {}

// Handle addresses a projectile in an Arena. Slots are reused, so a handle
// carries the slot's generation and goes stale once its projectile retires.
type Handle struct {
	slot int
	gen  uint32
}

// Arena holds a spawner's live projectiles. Slots are pointers so a
// projectile keeps its identity in Hazards while the arena grows.
type Arena struct {
	slots []*Projectile
	gens  []uint32
	free  []int
	live  int
}

// Spawn creates a projectile centred on the spawner tile at (x, y) and puts
// it into the hazard list straight away.
func (a *Arena) Spawn(active *ActiveSet, kind Kind, x, y int, hspd, vspd float64) Handle {
	pr := newProjectile(kind, x, y, hspd, vspd)
	active.AddHazard(pr)
	a.live++
	if n := len(a.free); n > 0 {
		s := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[s] = pr
		return Handle{slot: s, gen: a.gens[s]}
	}
	a.slots = append(a.slots, pr)
	a.gens = append(a.gens, 0)
	return Handle{slot: len(a.slots) - 1}
}

// Get returns the live projectile behind h, or nil when h is stale.
func (a *Arena) Get(h Handle) *Projectile {
	if h.slot < 0 || h.slot >= len(a.slots) || a.gens[h.slot] != h.gen {
		return nil
	}
	return a.slots[h.slot]
}

// Retire removes the projectile behind h from play. Retiring through a
// stale handle does nothing.
func (a *Arena) Retire(h Handle, active *ActiveSet) {
	pr := a.Get(h)
	if pr == nil {
		return
	}
	pr.retire(active)
	a.release(h.slot)
}

// RetireAll retires every live projectile.
func (a *Arena) RetireAll(active *ActiveSet) {
	for s, pr := range a.slots {
		if pr != nil {
			pr.retire(active)
			a.release(s)
		}
	}
}

// Update steps every live projectile and frees the ones that retired.
func (a *Arena) Update(env *Env) {
	for h, pr := range a.slots {
		if pr == nil {
			continue
		}
		pr.Update(env)
		if !pr.Exists {
			a.release(h)
		}
	}
}

// Each calls fn for every live projectile in slot order.
func (a *Arena) Each(fn func(pr *Projectile)) {
	for _, pr := range a.slots {
		if pr != nil {
			fn(pr)
		}
	}
}

// Live returns the number of live projectiles.
func (a *Arena) Live() int { return a.live }

// Clear drops every projectile without touching any hazard list.
func (a *Arena) Clear() {
	for s, pr := range a.slots {
		if pr != nil {
			pr.Exists = false
			a.release(s)
		}
	}
}

func (a *Arena) release(s int) {
	a.slots[s] = nil
	a.gens[s]++
	a.free = append(a.free, s)
	a.live--
}

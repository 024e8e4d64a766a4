package sim

import (
	"slices"

	"github.com/automoto/dino/shared/gamemath"
	"github.com/automoto/dino/shared/rules"
)

// projectileOwner is implemented by spawners. Their projectiles are retired
// before the spawner itself is soft reset.
type projectileOwner interface {
	Projectiles() *Arena
}

// Region keeps the active set in step with the player's focus tile. The set
// is only rebuilt when the focus tile changes; the protect set keeps busy
// entities alive after their spawn tile leaves the window.
type Region struct {
	grid   *Grid
	Active *ActiveSet

	protect []Entity
	queued  map[Entity]bool

	gx, gy   int
	Rebuilds int
	Evicted  int
}

// NewRegion creates a region focused on the initial tile the level starts
// from: half a screen in from the left and half a screen up from the bottom.
func NewRegion(g *Grid) *Region {
	w := rules.World
	return &Region{
		grid:   g,
		Active: NewActiveSet(g),
		queued: make(map[Entity]bool),
		gx:     w.ScreenWidth / (w.TileSize * 2),
		gy:     g.Rows() - w.ScreenHeight/(w.TileSize*2),
	}
}

// Focus returns the current focus tile as (col, row).
func (r *Region) Focus() (gx, gy int) {
	return r.gx, r.gy
}

// Protected returns the protect set in insertion order.
func (r *Region) Protected() []Entity {
	return r.protect
}

// Init performs the first build of the active set.
func (r *Region) Init() {
	r.rebuild()
}

// Maintain runs the per-frame upkeep: follow the player's tile while the
// camera is not clamped, queue protected instances, rebuild when the focus
// moved and evict protect set members that finished their activity outside
// the window.
func (r *Region) Maintain(p *Player) {
	w := rules.World
	gx, gy := r.gx, r.gy
	if p.ViewX == w.ScreenWidth/2 || gx < 0 {
		gx = gamemath.FloorDiv(p.X, w.TileSize)
	}
	if p.ViewY == w.ScreenHeight/2+w.HUDHeight || gy < 0 {
		gy = gamemath.FloorDiv(p.Y, w.TileSize)
	}

	r.fillProtect()

	if gx != r.gx || gy != r.gy {
		r.gx, r.gy = gx, gy
		r.rebuild()
	}

	r.cleanupProtect()
}

func (r *Region) fillProtect() {
	for _, e := range r.Active.Instances {
		if e.Base().Protected && !r.queued[e] {
			r.queued[e] = true
			r.protect = append(r.protect, e)
		}
	}
}

func (r *Region) rebuild() {
	w := rules.World
	prev := slices.Clone(r.Active.Instances)
	r.Active.Clear()

	for y := -w.ViewV; y <= w.ViewV; y++ {
		for x := -w.ViewH; x <= w.ViewH; x++ {
			if e := r.grid.At(r.gy+y, r.gx+x); e != nil {
				r.Active.Add(e)
			}
		}
	}
	for _, e := range r.protect {
		r.Active.Add(e)
	}
	for _, e := range prev {
		if !r.Active.Contains(e) {
			r.softReset(e)
		}
	}
	r.Rebuilds++
}

func (r *Region) cleanupProtect() {
	w := rules.World
	kept := r.protect[:0]
	for _, e := range r.protect {
		b := e.Base()
		if b.Protected {
			kept = append(kept, e)
			continue
		}
		delete(r.queued, e)

		row, col := b.Tile()
		if col < r.gx-w.ViewH-1 || col > r.gx+w.ViewH || row < r.gy-w.ViewV || row > r.gy+w.ViewV {
			r.softReset(e)
			r.Active.Remove(e)
			r.Evicted++
		}
	}
	clear(r.protect[len(kept):])
	r.protect = kept
}

func (r *Region) softReset(e Entity) {
	if owner, ok := e.(projectileOwner); ok {
		owner.Projectiles().RetireAll(r.Active)
	}
	e.Reset()
}

// Window returns the tile bounds of the current window, clipped to the grid.
func (r *Region) Window() (col0, row0, col1, row1 int) {
	w := rules.World
	col0 = max(r.gx-w.ViewH, 0)
	row0 = max(r.gy-w.ViewV, 0)
	col1 = min(r.gx+w.ViewH, r.grid.Cols()-1)
	row1 = min(r.gy+w.ViewV, r.grid.Rows()-1)
	return col0, row0, col1, row1
}

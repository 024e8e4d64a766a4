package sim

import (
	"github.com/automoto/dino/shared/collision"
	"github.com/automoto/dino/shared/gamemath"
	"github.com/automoto/dino/shared/rules"
)

// Body is the state every entity shares. Kinds embed it.
type Body struct {
	Kind     Kind
	Flags    Flags
	Material Material
	Traction float64

	// X, Y is the top-left of the collision rect.
	X, Y int
	W, H int
	// Inset shrinks the rect from the top without moving X, Y.
	Inset int

	// OriginX, OriginY are the spawn tile times the tile size. They never
	// change after construction.
	OriginX, OriginY int
	offX, offY       int

	Exists    bool
	Protected bool

	Frame   int
	Flip    bool
	Variant int
	Style   int
	ShakeDX int
}

func newBody(kind Kind, flags Flags, col, row, offX, offY, w, h int) Body {
	t := rules.World.TileSize
	b := Body{
		Kind:     kind,
		Flags:    flags,
		Traction: rules.Entities.Surface.DefaultTraction,
		W:        w,
		H:        h,
		OriginX:  col * t,
		OriginY:  row * t,
		offX:     offX,
		offY:     offY,
		Exists:   true,
	}
	b.home()
	return b
}

// Base returns b itself so embedding types satisfy Entity.
func (b *Body) Base() *Body { return b }

// Action is the default pickup/kill effect: none.
func (b *Body) Action(*Context) {}

// Rect returns the collision rect.
func (b *Body) Rect() collision.Rect {
	return collision.Rect{X: b.X, Y: b.Y + b.Inset, W: b.W, H: b.H - b.Inset}
}

// Has reports whether every bit in f is set.
func (b *Body) Has(f Flags) bool {
	return b.Flags&f == f
}

// Tile returns the spawn tile.
func (b *Body) Tile() (row, col int) {
	t := rules.World.TileSize
	return b.OriginY / t, b.OriginX / t
}

func (b *Body) home() {
	b.X = b.OriginX + b.offX
	b.Y = b.OriginY + b.offY
}

// Entity is a level object. Update runs once per frame while the entity is
// active. Reset is the soft reset applied when it leaves the active region;
// ResetStrong additionally restores existence and runs on every attempt
// restart. Action is the score or life effect the player triggers.
type Entity interface {
	Base() *Body
	Update(env *Env)
	Reset()
	ResetStrong()
	Action(ctx *Context)
}

// Env is what an entity can see during its update.
type Env struct {
	Ctx    *Context
	Grid   *Grid
	Player *Player
	Active *ActiveSet
}

// onScreen is the protect test: the body is still near the visible area even
// if its spawn tile has left the window. extraH widens the horizontal range
// in tiles.
func (env *Env) onScreen(b *Body, extraH int) bool {
	w := rules.World
	p := env.Player
	dx := b.X - p.X - (w.ProtectOrigin - p.ViewX)
	dy := b.Y - p.Y - (w.ProtectOrigin - p.ViewY)
	return abs(dx) < (w.ViewH+extraH)*w.TileSize && abs(dy) < w.ViewV*w.TileSize
}

// playerDistance is measured from the body to the player's centre column.
func (env *Env) playerDistance(b *Body) float64 {
	p := env.Player
	return gamemath.Distance(float64(b.X-p.X-16), float64(b.Y-p.Y))
}

// alignSolids resolves b against active solids after a move from prev, one
// axis at a time. It reports whether any solid pushed it back.
func (env *Env) alignSolids(b *Body, prev collision.Rect, sx, sy int) bool {
	r := b.Rect()
	hit := alignAgainst(&r, sx, sy, env.Active.SolidsNear(prev.Union(r)), b)
	b.X, b.Y = r.X, r.Y-b.Inset
	return hit
}

func alignAgainst(r *collision.Rect, sx, sy int, solids []Entity, self *Body) bool {
	if sx == 0 && sy == 0 {
		return false
	}
	hit := false
	for _, s := range solids {
		sb := s.Base()
		if sb == self {
			continue
		}
		if collision.AlignBack(r, sb.Rect(), sx, sy) {
			hit = true
		}
	}
	return hit
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

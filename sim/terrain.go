package sim

import (
	"github.com/automoto/dino/shared/gamemath"
	"github.com/automoto/dino/shared/rules"
)

// Wall edge bits, set where a border should be drawn.
const (
	EdgeTop = 1 << iota
	EdgeLeft
	EdgeBottom
	EdgeRight
)

// Wall is plain solid ground.
type Wall struct {
	Body
}

func newWall(col, row, tileset int) *Wall {
	w := &Wall{Body: newBody(KindWall, FlagSolid, col, row, 0, 0, rules.World.TileSize, rules.World.TileSize)}
	w.Style = tileset
	return w
}

// link computes the edge mask: a side gets a border when the neighbour is
// inside the level and not solid.
func (w *Wall) link(g *Grid) {
	row, col := w.Tile()
	sides := []struct {
		bit      int
		row, col int
	}{
		{EdgeTop, row - 1, col},
		{EdgeLeft, row, col - 1},
		{EdgeBottom, row + 1, col},
		{EdgeRight, row, col + 1},
	}
	w.Variant = 0
	for _, s := range sides {
		if s.row < 0 || s.row >= g.Rows() || s.col < 0 || s.col >= g.Cols() {
			continue
		}
		if !g.solidAt(s.row, s.col) {
			w.Variant |= s.bit
		}
	}
}

func (w *Wall) Update(*Env) {}
func (w *Wall) Reset() { w.home() }
func (w *Wall) ResetStrong() { w.Reset() }

// Water is a hazard whose surface tile animates.
type Water struct {
	Body
	top bool
}

func newWater(col, row int) *Water {
	t := rules.World.TileSize
	return &Water{Body: newBody(KindWater, FlagHazard, col, row, 0, 3, t, t-3), top: true}
}

// link decides whether this is a surface tile. The top row never is, and
// neither is a tile under a solid or under a static hazard.
func (w *Water) link(g *Grid) {
	row, col := w.Tile()
	if row-1 < 0 {
		w.top = false
		return
	}
	if above := g.At(row-1, col); above != nil {
		b := above.Base()
		if b.Has(FlagSolid) || (b.Has(FlagHazard) && !b.Has(FlagEnemy)) {
			w.top = false
		}
	}
}

// Surface reports whether the tile draws the wave animation.
func (w *Water) Surface() bool { return w.top }

func (w *Water) Update(env *Env) {
	every := rules.Entities.Pickups.WaveEvery
	if !w.top {
		w.Frame = 2
		return
	}
	switch env.Ctx.Clock() % every {
	case 0:
		w.Frame = 1
	case every / 2:
		w.Frame = 0
	}
}

func (w *Water) Reset() { w.home() }
func (w *Water) ResetStrong() { w.Reset() }

// Thorns is a static hazard. Style picks thorns or icicles.
type Thorns struct {
	Body
}

func newThorns(col, row, tileset int) *Thorns {
	t := rules.World.TileSize
	th := &Thorns{Body: newBody(KindThorns, FlagHazard, col, row, 0, 3, t, t-3)}
	th.Style = tileset
	return th
}

func (th *Thorns) Update(*Env) {}
func (th *Thorns) Reset() { th.home() }
func (th *Thorns) ResetStrong() { th.Reset() }

// Ice is a slippery solid.
type Ice struct {
	Body
}

func newIce(col, row int) *Ice {
	t := rules.World.TileSize
	ice := &Ice{Body: newBody(KindIce, FlagSolid, col, row, 0, 0, t, t)}
	ice.Material = MaterialIce
	ice.Traction = rules.Entities.Surface.IceTraction
	return ice
}

func (ice *Ice) Update(*Env) {}
func (ice *Ice) Reset() { ice.home() }
func (ice *Ice) ResetStrong() { ice.Reset() }

// ThinIce cracks while the player stands on it. At the crack limit it melts
// into water: the rect drops by three pixels and it joins the hazards until
// it refreezes.
type ThinIce struct {
	Body
	Cracks    int
	meltStart int
}

// Thin ice art frames: 0..3 crack stages, 4..5 water.
const (
	thinIceWaterFrame = 4
	thinIceWaveFrame  = 5
	thinIceMeltInset  = 3
)

func newThinIce(col, row int) *ThinIce {
	t := rules.World.TileSize
	ti := &ThinIce{Body: newBody(KindThinIce, FlagSolid, col, row, 0, 0, t, t), meltStart: -1}
	ti.Material = MaterialIce
	ti.Traction = rules.Entities.Surface.IceTraction
	return ti
}

// Melted reports whether the ice is currently water.
func (ti *ThinIce) Melted() bool {
	return ti.Cracks >= rules.Entities.ThinIce.CrackLimit
}

func (ti *ThinIce) Update(env *Env) {
	cfg := rules.Entities.ThinIce
	clock := env.Ctx.Clock()

	if ti.Melted() {
		if ti.meltStart == -1 {
			ti.meltStart = clock
			ti.Frame = thinIceWaterFrame
			ti.Inset = thinIceMeltInset
			env.Active.MoveSolid(ti)
			env.Ctx.Emit(EventIceCracked, ti.X, ti.Y)
			return
		}
		if clock-ti.meltStart < cfg.MeltFrames {
			env.Active.AddHazard(ti)
			switch clock % rules.Entities.Pickups.WaveEvery {
			case 0:
				ti.Frame = thinIceWaveFrame
			case rules.Entities.Pickups.WaveEvery / 2:
				ti.Frame = thinIceWaterFrame
			}
			return
		}
		env.Active.RemoveHazard(ti)
		ti.refreeze()
		env.Active.MoveSolid(ti)
		return
	}

	ti.Frame = ti.Cracks / cfg.CracksPerStage
	if ti.standing(env.Player) {
		ti.Cracks++
	} else if clock%cfg.DecayEvery == 0 && ti.Cracks > 0 {
		ti.Cracks--
	}
}

// standing reports whether the player's centre column is this tile and the
// player occupies the row above.
func (ti *ThinIce) standing(p *Player) bool {
	t := rules.World.TileSize
	return gamemath.FloorDiv(p.X+rules.Player.Width/2, t) == gamemath.FloorDiv(ti.X, t) &&
		gamemath.FloorDiv(p.Y, t) == gamemath.FloorDiv(ti.Y, t)-1
}

func (ti *ThinIce) refreeze() {
	ti.meltStart = -1
	ti.Cracks = 0
	ti.Frame = 0
	ti.Inset = 0
}

func (ti *ThinIce) Reset() {
	ti.home()
	ti.refreeze()
}

func (ti *ThinIce) ResetStrong() { ti.Reset() }

// Scenery is decoration. Variant is the number of extra tiles of height,
// taken from how far below the nearest solid ground is.
type Scenery struct {
	Body
}

func newScenery(kind Kind, col, row int) *Scenery {
	t := rules.World.TileSize
	return &Scenery{Body: newBody(kind, 0, col, row, 0, 0, t, t)}
}

func (s *Scenery) link(g *Grid) {
	row, col := s.Tile()
	for i := 1; i < 4; i++ {
		if g.solidAt(row+i, col) {
			s.Variant = i - 1
			return
		}
	}
}

func (s *Scenery) Update(*Env) {}
func (s *Scenery) Reset() { s.home() }
func (s *Scenery) ResetStrong() { s.Reset() }

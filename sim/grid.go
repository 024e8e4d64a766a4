package sim

import (
	"github.com/automoto/dino/shared/gamemath"
	"github.com/automoto/dino/shared/leveldata"
	"github.com/automoto/dino/shared/rules"
)

// Grid owns every level-resident entity. A cell is empty (nil) or holds
// exactly one entity whose origin is the cell position times the tile size.
type Grid struct {
	rows, cols int
	cells      []Entity
	tileset    int
}

// linker is implemented by entities that look at their neighbours once the
// whole grid exists.
type linker interface {
	link(g *Grid)
}

// NewGrid builds the entities of a parsed level using its tileset table.
func NewGrid(lvl *leveldata.Level) *Grid {
	g := &Grid{
		rows:    lvl.Rows(),
		cols:    lvl.Cols(),
		tileset: lvl.Tileset,
	}
	g.cells = make([]Entity, g.rows*g.cols)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			kind := KindFor(lvl.Tileset, lvl.Code(row, col))
			if kind == KindNone {
				continue
			}
			g.cells[row*g.cols+col] = newEntity(kind, col, row, lvl.Tileset)
		}
	}
	for _, e := range g.cells {
		if l, ok := e.(linker); ok {
			l.link(g)
		}
	}
	return g
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Cols() int    { return g.cols }
func (g *Grid) Tileset() int { return g.tileset }

// Width returns the level width in pixels.
func (g *Grid) Width() int { return g.cols * rules.World.TileSize }

// Height returns the level height in pixels.
func (g *Grid) Height() int { return g.rows * rules.World.TileSize }

// At returns the entity at (row, col) or nil when the cell is empty or
// outside the grid.
func (g *Grid) At(row, col int) Entity {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	return g.cells[row*g.cols+col]
}

// AtPixel returns the entity in the cell containing pixel (x, y).
func (g *Grid) AtPixel(x, y int) Entity {
	t := rules.World.TileSize
	return g.At(gamemath.FloorDiv(y, t), gamemath.FloorDiv(x, t))
}

// Each calls fn for every occupied cell in row-major order.
func (g *Grid) Each(fn func(row, col int, e Entity)) {
	for i, e := range g.cells {
		if e != nil {
			fn(i/g.cols, i%g.cols, e)
		}
	}
}

// ResetStrong strong-resets every entity, used when an attempt restarts.
func (g *Grid) ResetStrong() {
	for _, e := range g.cells {
		if e != nil {
			e.ResetStrong()
		}
	}
}

// Counts tallies entities per kind.
func (g *Grid) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	g.Each(func(_, _ int, e Entity) {
		counts[e.Base().Kind]++
	})
	return counts
}

// solidAt reports whether the cell holds a solid entity.
func (g *Grid) solidAt(row, col int) bool {
	e := g.At(row, col)
	return e != nil && e.Base().Has(FlagSolid)
}

// SpawnPoint finds the player start: scanning the spawn column upward from
// the bottom row, the first cell that is empty or not solid.
func (g *Grid) SpawnPoint() (x, y int) {
	t := rules.World.TileSize
	col := rules.Player.SpawnColumn
	row := 0
	for r := g.rows - 1; r > 0; r-- {
		if !g.solidAt(r, col) {
			row = r
			break
		}
	}
	return col * t, row * t
}

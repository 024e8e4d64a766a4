package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTilesetTables(t *testing.T) {
	tests := []struct {
		tileset, code int
		want          Kind
	}{
		{0, 0, KindNone},
		{0, 1, KindWall},
		{0, 6, KindSnake},
		{0, 13, KindFrog},
		{0, 14, KindNone},
		{1, 6, KindIce},
		{1, 7, KindThinIce},
		{1, 8, KindMammoth},
		{1, 9, KindYeti},
		{1, 10, KindNone},
		{7, 1, KindNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindFor(tt.tileset, tt.code), "tileset %d code %d", tt.tileset, tt.code)
	}

	code, ok := CodeFor(1, KindYeti)
	assert.True(t, ok)
	assert.Equal(t, 9, code)
	_, ok = CodeFor(0, KindYeti)
	assert.False(t, ok)
}

func TestUnknownTilesetBuildsEmptyGrid(t *testing.T) {
	g := NewGrid(parseLevel(t, "009", flatRows(4, 6)...))
	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 6, g.Cols())
	assert.Empty(t, g.Counts())
}

func TestGridAt(t *testing.T) {
	rows := flatRows(4, 6)
	put(rows, 2, 3, 'e')
	g := NewGrid(parseLevel(t, "000", rows...))

	gem := g.At(2, 3)
	require.NotNil(t, gem)
	row, col := gem.Base().Tile()
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, col)
	assert.Equal(t, gem, g.AtPixel(3*32+31, 2*32))

	assert.Nil(t, g.At(0, 0))
	assert.Nil(t, g.At(-1, 0))
	assert.Nil(t, g.At(0, 6))
	assert.Nil(t, g.At(4, 0))
	assert.Nil(t, g.AtPixel(-1, 0))

	assert.Equal(t, map[Kind]int{KindWall: 6, KindGem: 1}, g.Counts())
}

func TestSpawnPoint(t *testing.T) {
	rows := flatRows(6, 6)
	put(rows, 4, 2, 'b')
	put(rows, 3, 2, 'b')
	g := NewGrid(parseLevel(t, "000", rows...))
	x, y := g.SpawnPoint()
	assert.Equal(t, 64, x)
	assert.Equal(t, 2*32, y)

	// A non-solid tile counts as free.
	rows = flatRows(6, 6)
	put(rows, 4, 2, 'c')
	g = NewGrid(parseLevel(t, "000", rows...))
	_, y = g.SpawnPoint()
	assert.Equal(t, 4*32, y)
}

func TestWallEdgesAndWaterSurface(t *testing.T) {
	rows := flatRows(4, 6)
	put(rows, 2, 1, 'b')
	put(rows, 2, 3, 'c')
	put(rows, 1, 4, 'c')
	put(rows, 2, 4, 'c')
	g := NewGrid(parseLevel(t, "000", rows...))

	wall := g.At(2, 1).(*Wall)
	assert.NotZero(t, wall.Variant&EdgeTop)
	assert.NotZero(t, wall.Variant&EdgeLeft)
	assert.NotZero(t, wall.Variant&EdgeRight)
	assert.Zero(t, wall.Variant&EdgeBottom)

	assert.True(t, g.At(2, 3).(*Water).Surface())
	assert.True(t, g.At(1, 4).(*Water).Surface())
	assert.False(t, g.At(2, 4).(*Water).Surface())
	assert.Equal(t, 2*32+3, g.At(2, 3).Base().Rect().Y)
}

func TestActiveSetIsIdempotent(t *testing.T) {
	rows := flatRows(4, 6)
	put(rows, 2, 3, 'g')
	g := NewGrid(parseLevel(t, "000", rows...))
	a := NewActiveSet(g)
	snake := g.At(2, 3)

	a.Add(snake)
	a.Add(snake)
	assert.Len(t, a.Instances, 1)
	assert.Len(t, a.Hazards, 1)
	assert.Len(t, a.Enemies, 1)
	assert.Empty(t, a.Solids)

	a.AddHazard(snake)
	assert.Len(t, a.Hazards, 1)

	a.Remove(snake)
	a.Remove(snake)
	assert.Empty(t, a.Instances)
	assert.Empty(t, a.Hazards)
	assert.Empty(t, a.Enemies)
	a.RemoveHazard(snake)
}

func TestActiveSetSolidsNearKeepsScanOrder(t *testing.T) {
	g := NewGrid(parseLevel(t, "000", flatRows(4, 6)...))
	a := NewActiveSet(g)
	for col := 5; col >= 0; col-- {
		a.Add(g.At(3, col))
	}
	near := a.SolidsNear(g.At(3, 2).Base().Rect())
	require.Len(t, near, 3)
	for i, e := range near {
		_, col := e.Base().Tile()
		assert.Equal(t, i+1, col)
	}
}

func TestArenaRetireIsIdempotent(t *testing.T) {
	g := NewGrid(parseLevel(t, "000", flatRows(4, 6)...))
	active := NewActiveSet(g)
	var arena Arena

	h := arena.Spawn(active, KindSpore, 0, 0, 1, -1)
	pr := arena.Get(h)
	require.NotNil(t, pr)
	assert.Equal(t, 8, pr.X)
	assert.True(t, active.HasHazard(pr))
	assert.Equal(t, 1, arena.Live())

	arena.Retire(h, active)
	arena.Retire(h, active)
	assert.False(t, active.HasHazard(pr))
	assert.False(t, pr.Exists)
	assert.Nil(t, arena.Get(h))
	assert.Zero(t, arena.Live())

	// The slot is reused, but the old handle stays stale.
	h2 := arena.Spawn(active, KindSnowball, 0, 0, 1, 0)
	pr2 := arena.Get(h2)
	require.NotNil(t, pr2)
	assert.NotEqual(t, h, h2)
	assert.Nil(t, arena.Get(h))
	arena.Retire(h, active)
	assert.True(t, pr2.Exists)
	assert.True(t, active.HasHazard(pr2))
	assert.Equal(t, 1, arena.Live())

	arena.RetireAll(active)
	assert.Empty(t, active.Hazards)
	assert.Nil(t, arena.Get(h2))
	assert.Nil(t, arena.Get(Handle{slot: 42}))
}

func TestArenaClearMakesHandlesStale(t *testing.T) {
	g := NewGrid(parseLevel(t, "000", flatRows(4, 6)...))
	active := NewActiveSet(g)
	var arena Arena

	h := arena.Spawn(active, KindSpore, 0, 0, 0, 0)
	arena.Clear()
	assert.Zero(t, arena.Live())
	assert.Nil(t, arena.Get(h))

	h2 := arena.Spawn(active, KindSpore, 0, 0, 0, 0)
	assert.NotNil(t, arena.Get(h2))
	assert.Nil(t, arena.Get(h))
	assert.Equal(t, 1, arena.Live())
}

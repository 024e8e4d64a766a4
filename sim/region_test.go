package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/dino/shared/rules"
)

// windowEntities lists the grid entities inside the region's window.
func windowEntities(g *Grid, r *Region) map[Entity]bool {
	col0, row0, col1, row1 := r.Window()
	out := make(map[Entity]bool)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if e := g.At(row, col); e != nil {
				out[e] = true
			}
		}
	}
	return out
}

func TestRegionInitialFocus(t *testing.T) {
	g := NewGrid(parseLevel(t, "000", flatRows(13, 80)...))
	r := NewRegion(g)
	r.Init()

	gx, gy := r.Focus()
	assert.Equal(t, 10, gx)
	assert.Equal(t, 13-6, gy)
	assert.Equal(t, 1, r.Rebuilds)
	assert.Len(t, r.Active.Instances, 21)
	assert.Len(t, r.Active.Solids, 21)
}

func TestRegionRebuildsOnlyWhenFocusMoves(t *testing.T) {
	g := NewGrid(parseLevel(t, "000", flatRows(13, 80)...))
	a := NewAttempt(NewContext(3), g)
	r := a.Region

	for i := 0; i < 400; i++ {
		gx, gy := r.Focus()
		before := r.Rebuilds
		require.Equal(t, OutcomeNone, a.Step(Input{Right: true}, nil))

		nx, ny := r.Focus()
		if nx != gx || ny != gy {
			require.Equal(t, before+1, r.Rebuilds, "frame %d", i)
		} else {
			require.Equal(t, before, r.Rebuilds, "frame %d", i)
		}

		want := windowEntities(g, r)
		require.Len(t, r.Active.Instances, len(want), "frame %d", i)
		for _, e := range r.Active.Instances {
			require.True(t, want[e], "frame %d", i)
		}
	}
	assert.Greater(t, r.Rebuilds, 1)
}

func TestRegionFocusFollowsUnclampedCamera(t *testing.T) {
	g := NewGrid(parseLevel(t, "000", flatRows(13, 80)...))
	r := NewRegion(g)
	r.Init()

	// clamped: focus stays
	p := &Player{X: 40 * 32, Y: 100, ViewX: 100, ViewY: 100}
	r.Maintain(p)
	gx, gy := r.Focus()
	assert.Equal(t, 10, gx)
	assert.Equal(t, 7, gy)

	p.ViewX = rules.World.ScreenWidth / 2
	r.Maintain(p)
	gx, gy = r.Focus()
	assert.Equal(t, 40, gx)
	assert.Equal(t, 7, gy)
	assert.Equal(t, 2, r.Rebuilds)
}

func TestRegionProtectLifecycle(t *testing.T) {
	rows := flatRows(13, 80)
	put(rows, 11, 5, 'g')
	g := NewGrid(parseLevel(t, "000", rows...))
	r := NewRegion(g)
	r.Init()

	snake := g.At(11, 5).(*Snake)
	require.True(t, r.Active.Contains(snake))

	snake.Protected = true
	snake.X += 40
	p := &Player{X: 40 * 32, Y: 100, ViewX: rules.World.ScreenWidth / 2, ViewY: 100}
	r.Maintain(p)

	// Out of the window but still busy.
	assert.True(t, r.Active.Contains(snake))
	assert.Equal(t, []Entity{snake}, r.Protected())
	assert.Equal(t, snake.OriginX+40, snake.X)
	assert.Zero(t, r.Evicted)

	snake.Protected = false
	r.Maintain(p)
	assert.False(t, r.Active.Contains(snake))
	assert.False(t, r.Active.HasHazard(snake))
	assert.Empty(t, r.Protected())
	assert.Equal(t, snake.OriginX, snake.X)
	assert.Equal(t, 1, r.Evicted)

	r.Maintain(p)
	assert.Equal(t, 1, r.Evicted)
}

func TestRegionProtectedMemberInsideWindowStays(t *testing.T) {
	rows := flatRows(13, 80)
	put(rows, 11, 5, 'g')
	g := NewGrid(parseLevel(t, "000", rows...))
	r := NewRegion(g)
	r.Init()

	snake := g.At(11, 5).(*Snake)
	snake.Protected = true
	p := &Player{X: 12 * 32, Y: 100, ViewX: rules.World.ScreenWidth / 2, ViewY: 100}
	r.Maintain(p)
	require.Len(t, r.Protected(), 1)

	snake.Protected = false
	r.Maintain(p)
	assert.Empty(t, r.Protected())
	assert.True(t, r.Active.Contains(snake))
	assert.Zero(t, r.Evicted)
}

func TestRegionEvictedSpawnerRetiresProjectiles(t *testing.T) {
	rows := flatRows(13, 80)
	put(rows, 11, 5, 'i')
	g := NewGrid(parseLevel(t, "000", rows...))
	r := NewRegion(g)
	r.Init()

	plant := g.At(11, 5).(*Plant)
	h := plant.Projectiles().Spawn(r.Active, KindSpore, plant.X, plant.Y, 0, -10)
	spore := plant.Projectiles().Get(h)
	require.True(t, r.Active.HasHazard(spore))

	plant.Protected = true
	p := &Player{X: 40 * 32, Y: 100, ViewX: rules.World.ScreenWidth / 2, ViewY: 100}
	r.Maintain(p)
	// The rebuild cleared Hazards; the spore re-enters on its next update.
	assert.False(t, r.Active.HasHazard(spore))
	plant.Projectiles().Update(&Env{Ctx: NewContext(3), Grid: g, Player: p, Active: r.Active})
	require.True(t, r.Active.HasHazard(spore))

	plant.Protected = false
	r.Maintain(p)
	assert.False(t, r.Active.HasHazard(spore))
	assert.False(t, spore.Exists)
	assert.Zero(t, plant.Projectiles().Live())
}

func TestRegionSoftResetLeavesDeadEnemiesDead(t *testing.T) {
	rows := flatRows(13, 80)
	put(rows, 11, 5, 'g')
	put(rows, 11, 6, 'e')
	g := NewGrid(parseLevel(t, "000", rows...))
	r := NewRegion(g)
	r.Init()

	snake := g.At(11, 5).(*Snake)
	gem := g.At(11, 6).(*Gem)
	snake.Exists = false
	gem.Exists = false

	p := &Player{X: 40 * 32, Y: 100, ViewX: rules.World.ScreenWidth / 2, ViewY: 100}
	r.Maintain(p)
	require.False(t, r.Active.Contains(snake))
	assert.False(t, snake.Exists)
	assert.False(t, gem.Exists)

	g.ResetStrong()
	assert.True(t, snake.Exists)
	assert.True(t, gem.Exists)
}

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/dino/shared/collision"
	"github.com/automoto/dino/shared/rules"
)

// entityEnv builds an attempt with the player parked at the spawn point and
// returns its env.
func entityEnv(t *testing.T, header string, rows []string) (*Attempt, *Env) {
	t.Helper()
	a := NewAttempt(NewContext(3), NewGrid(parseLevel(t, header, rows...)))
	return a, a.Env()
}

// tick updates one entity n times, advancing the clock after each update.
func tick(env *Env, e Entity, n int) {
	for i := 0; i < n; i++ {
		e.Update(env)
		env.Ctx.Tick()
	}
}

func TestSnakeTurnsAtWall(t *testing.T) {
	rows := flatRows(6, 12)
	put(rows, 4, 6, 'g')
	put(rows, 4, 8, 'b')
	_, env := entityEnv(t, "000", rows)
	snake := env.Grid.At(4, 6).(*Snake)

	// speed 2 every 10 frames; the wall at x 256 stops it at 240.
	tick(env, snake, 400)
	assert.GreaterOrEqual(t, snake.X, 0)
	assert.LessOrEqual(t, snake.X+snake.W, 8*32)

	var sawLeft bool
	for i := 0; i < 400; i++ {
		tick(env, snake, 1)
		if snake.speed < 0 {
			sawLeft = true
		}
	}
	assert.True(t, sawLeft)
}

func TestSnakeTurnsAtLedge(t *testing.T) {
	rows := flatRows(6, 12)
	for col := 9; col < 12; col++ {
		put(rows, 5, col, 'a')
	}
	put(rows, 4, 6, 'g')
	_, env := entityEnv(t, "000", rows)
	snake := env.Grid.At(4, 6).(*Snake)

	for i := 0; i < 1000; i++ {
		tick(env, snake, 1)
		require.Less(t, snake.X, 9*32, "frame %d", i)
	}
}

func TestSnakeResetIsIdempotent(t *testing.T) {
	rows := flatRows(6, 12)
	put(rows, 4, 6, 'g')
	_, env := entityEnv(t, "000", rows)
	snake := env.Grid.At(4, 6).(*Snake)

	tick(env, snake, 35)
	snake.Exists = false
	snake.Reset()
	once := *snake
	snake.Reset()
	assert.Equal(t, once, *snake)
	assert.False(t, snake.Exists)
	assert.Equal(t, snake.OriginX, snake.X)

	snake.ResetStrong()
	assert.True(t, snake.Exists)
}

func TestPteroGlidesBackAndForth(t *testing.T) {
	rows := flatRows(8, 30)
	put(rows, 3, 15, 'h')
	_, env := entityEnv(t, "000", rows)
	ptero := env.Grid.At(3, 15).(*Ptero)

	minX, maxX := ptero.X, ptero.X
	for i := 0; i < 320; i++ {
		tick(env, ptero, 1)
		minX = min(minX, ptero.X)
		maxX = max(maxX, ptero.X)
	}
	assert.Less(t, minX, ptero.OriginX)
	assert.Greater(t, maxX, ptero.OriginX)
	assert.Equal(t, ptero.OriginY, ptero.Y)
}

func TestMushroomRevivesAfterSquish(t *testing.T) {
	rows := flatRows(6, 12)
	put(rows, 4, 6, 'k')
	_, env := entityEnv(t, "000", rows)
	mu := env.Grid.At(4, 6).(*Mushroom)
	assert.Equal(t, mu.OriginY+4, mu.Rect().Y)
	assert.False(t, mu.Has(FlagHazard))

	mu.Exists = false
	tick(env, mu, 1)
	assert.True(t, mu.Exists)
	assert.Equal(t, 1, mu.Frame)

	tick(env, mu, rules.Entities.Pickups.SquishFrames)
	assert.Equal(t, 0, mu.Frame)
}

func TestMammothRevivesAndScores(t *testing.T) {
	// A mammoth stands two rows above the floor it walks on.
	rows := flatRows(6, 12)
	put(rows, 3, 4, 'i')
	_, env := entityEnv(t, "001", rows)
	m := env.Grid.At(3, 4).(*Mammoth)
	assert.Equal(t, 64, m.W)
	assert.Equal(t, 3*32+18, m.Y)

	m.Exists = false
	m.Action(env.Ctx)
	tick(env, m, 1)
	assert.True(t, m.Exists)
	assert.Equal(t, 50, env.Ctx.Score())
}

func TestGemActions(t *testing.T) {
	rows := flatRows(6, 12)
	put(rows, 4, 5, 'e')
	put(rows, 4, 6, 'f')
	_, env := entityEnv(t, "000", rows)
	gem := env.Grid.At(4, 5).(*Gem)
	life := env.Grid.At(4, 6).(*Gem)

	assert.Equal(t, collision.Rect{X: 5*32 + 8, Y: 4*32 + 8, W: 16, H: 16}, gem.Rect())

	gem.Action(env.Ctx)
	life.Action(env.Ctx)
	assert.Equal(t, 100, env.Ctx.Score())
	assert.Equal(t, 4, env.Ctx.Lives())

	gem.Exists = false
	gem.Reset()
	assert.False(t, gem.Exists)
	gem.ResetStrong()
	assert.True(t, gem.Exists)
}

func TestPlantFiresFanOfSpores(t *testing.T) {
	rows := flatRows(13, 12)
	put(rows, 11, 8, 'i')
	_, env := entityEnv(t, "000", rows)
	plant := env.Grid.At(11, 8).(*Plant)

	tick(env, plant, 1)
	assert.Equal(t, 3, plant.Projectiles().Live())
	assert.True(t, plant.Protected)

	var hazards int
	plant.Projectiles().Each(func(pr *Projectile) {
		if env.Active.HasHazard(pr) {
			hazards++
		}
	})
	assert.Equal(t, 3, hazards)

	// They rise, fall back and land on the floor within one period.
	tick(env, plant, rules.Entities.Spawners.PlantEvery-2)
	assert.Zero(t, plant.Projectiles().Live())
	tick(env, plant, 1)
	assert.False(t, plant.Protected)
	tick(env, plant, 1)
	assert.Equal(t, 3, plant.Projectiles().Live())
}

func TestYetiThrowsSnowballsWhileInRange(t *testing.T) {
	rows := flatRows(6, 12)
	put(rows, 4, 8, 'j')
	a, env := entityEnv(t, "001", rows)
	yeti := env.Grid.At(4, 8).(*Yeti)
	require.Less(t, env.playerDistance(&yeti.Body), rules.Entities.Spawners.YetiRange)

	tick(env, yeti, 1)
	require.Equal(t, 1, yeti.Projectiles().Live())
	assert.True(t, yeti.Flip)
	assert.True(t, yeti.Protected)

	var ball *Projectile
	yeti.Projectiles().Each(func(pr *Projectile) { ball = pr })
	assert.Equal(t, KindSnowball, ball.Kind)
	assert.Less(t, ball.HSpd, 0.0)

	// Dead yetis stay protected until the last snowball is gone.
	yeti.Exists = false
	tick(env, yeti, 1)
	assert.True(t, yeti.Protected)
	tick(env, yeti, 60)
	assert.Zero(t, yeti.Projectiles().Live())
	assert.False(t, yeti.Protected)
	assert.Equal(t, 0, a.Ctx.Score())
}

func TestSpitShakesBeforeFiring(t *testing.T) {
	rows := flatRows(6, 14)
	put(rows, 4, 7, 'j')
	_, env := entityEnv(t, "000", rows)
	spit := env.Grid.At(4, 7).(*Spit)
	d := env.playerDistance(&spit.Body)
	require.Greater(t, d, rules.Entities.Spawners.SpitMinRange)
	require.Less(t, d, rules.Entities.Spawners.SpitMaxRange)

	tick(env, spit, 5)
	assert.Zero(t, spit.Projectiles().Live())
	assert.NotZero(t, spit.ShakeDX)

	tick(env, spit, 40)
	assert.Equal(t, 1, spit.Frame)
	assert.Positive(t, spit.Projectiles().Live())

	// Out of range hides it again.
	spit.Y = 10000
	tick(env, spit, 1)
	assert.Equal(t, 0, spit.Frame)
	assert.Equal(t, -1, spit.shake)
}

func TestSpitAimIgnoresFrogTuning(t *testing.T) {
	firstSpore := func() (float64, float64) {
		rows := flatRows(6, 14)
		put(rows, 4, 7, 'j')
		_, env := entityEnv(t, "000", rows)
		spit := env.Grid.At(4, 7).(*Spit)
		for i := 0; i < 60 && spit.Projectiles().Live() == 0; i++ {
			tick(env, spit, 1)
		}
		var hspd, vspd float64
		spit.Projectiles().Each(func(pr *Projectile) { hspd, vspd = pr.HSpd, pr.VSpd })
		return hspd, vspd
	}

	wantH, wantV := firstSpore()
	require.NotZero(t, wantH)

	frog := rules.Entities.Frog
	t.Cleanup(func() { rules.Entities.Frog = frog })
	rules.Entities.Frog.AimOffsetX = 200
	rules.Entities.Frog.AimOffsetY = -200

	h, v := firstSpore()
	assert.Equal(t, wantH, h)
	assert.Equal(t, wantV, v)
}

func TestFrogLeapsTowardPlayer(t *testing.T) {
	rows := flatRows(8, 14)
	put(rows, 6, 9, 'n')
	_, env := entityEnv(t, "000", rows)
	frog := env.Grid.At(6, 9).(*Frog)

	tick(env, frog, 2)
	require.True(t, frog.grounded)
	tick(env, frog, rules.Entities.Frog.JumpEvery)
	assert.False(t, frog.grounded)
	assert.Less(t, frog.hspd, 0.0)
	assert.Equal(t, 1, frog.Frame)
	assert.True(t, frog.Flip)
}

func TestThinIceRefreezes(t *testing.T) {
	rows := flatRows(7, 8)
	put(rows, 6, 5, 'h')
	_, env := entityEnv(t, "001", rows)
	ice := env.Grid.At(6, 5).(*ThinIce)

	ice.Cracks = rules.Entities.ThinIce.CrackLimit
	tick(env, ice, 1)
	assert.Equal(t, 3, ice.Rect().Y-ice.Y)
	tick(env, ice, 1)
	assert.True(t, env.Active.HasHazard(ice))

	tick(env, ice, rules.Entities.ThinIce.MeltFrames)
	assert.False(t, ice.Melted())
	assert.False(t, env.Active.HasHazard(ice))
	assert.Equal(t, ice.Y, ice.Rect().Y)
}

func TestThinIceDecaysWhenLeft(t *testing.T) {
	rows := flatRows(7, 8)
	put(rows, 6, 5, 'h')
	_, env := entityEnv(t, "001", rows)
	ice := env.Grid.At(6, 5).(*ThinIce)

	ice.Cracks = 5
	tick(env, ice, 5*rules.Entities.ThinIce.DecayEvery)
	assert.Zero(t, ice.Cracks)
	tick(env, ice, rules.Entities.ThinIce.DecayEvery)
	assert.Zero(t, ice.Cracks)
}

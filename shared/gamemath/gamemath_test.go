package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0.01))
	assert.Equal(t, -1.0, Sign(-3))
	assert.Equal(t, 0.0, Sign(0))
	assert.Equal(t, -1, SignInt(-0.2))
}

func TestTruncAdd(t *testing.T) {
	assert.Equal(t, 10, TruncAdd(10, 0.9))
	assert.Equal(t, 11, TruncAdd(10, 1.2))
	assert.Equal(t, 9, TruncAdd(10, -0.9))
	assert.Equal(t, 8, TruncAdd(10, -1.5))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 2, FloorDiv(64, 32))
	assert.Equal(t, 0, FloorDiv(31, 32))
	assert.Equal(t, -1, FloorDiv(-1, 32))
	assert.Equal(t, -1, FloorDiv(-32, 32))
	assert.Equal(t, -2, FloorDiv(-33, 32))
}

func TestDecelerate(t *testing.T) {
	assert.Equal(t, 0.0, Decelerate(0.3, 0.25, 0.25))
	assert.InDelta(t, 0.75, Decelerate(1.0, 0.25, 0.25), 1e-9)
	assert.InDelta(t, -0.75, Decelerate(-1.0, 0.25, 0.25), 1e-9)
	assert.Equal(t, 0.0, Decelerate(0, 0.25, 0.25))
}

func TestArcLaunch(t *testing.T) {
	t.Run("target to the right goes right and up", func(t *testing.T) {
		vx, vy, ok := ArcLaunch(-100, 0, 10, 0.3)
		assert.True(t, ok)
		assert.Greater(t, vx, 0.0)
		assert.Less(t, vy, 0.0)
		assert.InDelta(t, 10, math.Hypot(vx, vy), 1e-9)
	})

	t.Run("target to the left goes left and up", func(t *testing.T) {
		vx, vy, ok := ArcLaunch(100, 0, 10, 0.3)
		assert.True(t, ok)
		assert.Less(t, vx, 0.0)
		assert.Less(t, vy, 0.0)
	})

	t.Run("out of range", func(t *testing.T) {
		_, _, ok := ArcLaunch(5000, 0, 10, 0.3)
		assert.False(t, ok)
	})

	t.Run("straight above", func(t *testing.T) {
		_, _, ok := ArcLaunch(0, 100, 10, 0.3)
		assert.False(t, ok)
	})
}

func TestAimAt(t *testing.T) {
	vx, vy := AimAt(100, 0, 0, 0, 8)
	assert.InDelta(t, -8, vx, 1e-9)
	assert.InDelta(t, 0, vy, 1e-9)

	vx, vy = AimAt(0, 100, 0, 0, 8)
	assert.InDelta(t, 0, vx, 1e-9)
	assert.InDelta(t, -8, vy, 1e-9)
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverlaysOnlyGivenFields(t *testing.T) {
	t.Cleanup(Defaults)

	err := ApplyBytes([]byte("player:\n  maxSpeed: 6\nsession:\n  startingLives: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, 6.0, Player.MaxSpeed)
	assert.Equal(t, 5, Session.StartingLives)
	assert.Equal(t, 0.25, Player.Acceleration, "untouched field keeps default")
	assert.Equal(t, 32, World.TileSize)
}

func TestApplyRejectsUnknownField(t *testing.T) {
	t.Cleanup(Defaults)

	err := ApplyBytes([]byte("player:\n  maxSped: 6\n"))
	require.Error(t, err)
	assert.Equal(t, 4.0, Player.MaxSpeed)
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	t.Cleanup(Defaults)

	err := ApplyBytes([]byte("world:\n  sampleStride: 0\n"))
	require.Error(t, err)
	assert.Equal(t, 8, World.SampleStride)
}

func TestApplyEmptyDocument(t *testing.T) {
	t.Cleanup(Defaults)

	before := Current()
	require.NoError(t, ApplyBytes(nil))
	assert.Equal(t, before, Current())
}

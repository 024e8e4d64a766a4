package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledLevelsLoad(t *testing.T) {
	lvls, err := LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 8)

	for _, l := range lvls {
		assert.Equal(t, 15, l.Rows(), l.Name)
		assert.Positive(t, l.Cols(), l.Name)
	}
	assert.Equal(t, "level1", lvls[0].Name)
	assert.Equal(t, 1, lvls[7].Tileset)
	assert.Equal(t, 140, lvls[7].Cols())
}

func TestNames(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"level1", "level2", "level3", "level4", "level5", "level6", "level7", "level8"}, names)
}

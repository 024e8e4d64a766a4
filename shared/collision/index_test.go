package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexQuery(t *testing.T) {
	ix := NewIndex(320, 320, 32)
	ix.Put(3, Rect{X: 64, Y: 64, W: 32, H: 32})
	ix.Put(1, Rect{X: 96, Y: 64, W: 32, H: 32})
	ix.Put(7, Rect{X: 256, Y: 256, W: 32, H: 32})
	require.Equal(t, 3, ix.Len())

	got := ix.Query(Rect{X: 70, Y: 40, W: 40, H: 30}, nil)
	assert.Equal(t, []int{1, 3}, got)

	assert.Empty(t, ix.Query(Rect{X: 0, Y: 0, W: 16, H: 16}, nil))
}

func TestIndexMoveAndRemove(t *testing.T) {
	ix := NewIndex(320, 320, 32)
	ix.Put(1, Rect{X: 0, Y: 0, W: 32, H: 32})

	ix.Put(1, Rect{X: 200, Y: 200, W: 32, H: 32})
	assert.Empty(t, ix.Query(Rect{X: 0, Y: 0, W: 16, H: 16}, nil))
	assert.Equal(t, []int{1}, ix.Query(Rect{X: 210, Y: 210, W: 4, H: 4}, nil))

	ix.Remove(1)
	ix.Remove(1)
	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.Query(Rect{X: 210, Y: 210, W: 4, H: 4}, nil))
}

func TestIndexClear(t *testing.T) {
	ix := NewIndex(128, 128, 32)
	for i := 0; i < 4; i++ {
		ix.Put(i, Rect{X: i * 32, Y: 0, W: 32, H: 32})
	}
	ix.Clear()
	assert.Equal(t, 0, ix.Len())
}

func TestIndexKeepsPartialLastCell(t *testing.T) {
	// 15 rows and 131 columns of 32px tiles do not fill 64px cells
	ix := NewIndex(131*32, 15*32, 64)
	ix.Put(1, Rect{X: 0, Y: 14 * 32, W: 32, H: 32})
	ix.Put(2, Rect{X: 130 * 32, Y: 0, W: 32, H: 32})

	assert.Equal(t, []int{1}, ix.Query(Rect{X: 2, Y: 14*32 - 4, W: 28, H: 8}, nil))
	assert.Equal(t, []int{2}, ix.Query(Rect{X: 130*32 + 4, Y: 4, W: 8, H: 8}, nil))

	ix = NewIndex(640, 416, 64)
	ix.Put(5, Rect{X: 64, Y: 384, W: 32, H: 32})
	assert.Equal(t, []int{5}, ix.Query(Rect{X: 66, Y: 352, W: 28, H: 33}, nil))
}

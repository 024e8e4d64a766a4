package leveldata

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	src := "101\r\naabaa\r\nabbba\r\n\r\n"
	lvl, err := ParseText(strings.NewReader(src), "one")
	require.NoError(t, err)

	assert.True(t, lvl.Weather)
	assert.Equal(t, 0, lvl.Track)
	assert.Equal(t, 1, lvl.Tileset)
	assert.Equal(t, 2, lvl.Rows())
	assert.Equal(t, 5, lvl.Cols())
	assert.Equal(t, []int{0, 0, 1, 0, 0}, lvl.Codes[0])
	assert.Equal(t, []int{0, 1, 1, 1, 0}, lvl.Codes[1])
}

func TestParseTextRaggedRows(t *testing.T) {
	lvl, err := ParseText(strings.NewReader("000\nbbbb\nbb\nbbbbbbbb\n"), "ragged")
	require.NoError(t, err)

	assert.Equal(t, 4, lvl.Cols())
	assert.Equal(t, []int{1, 1, 0, 0}, lvl.Codes[1])
	assert.Equal(t, []int{1, 1, 1, 1}, lvl.Codes[2])
}

func TestParseTextCodesBelowA(t *testing.T) {
	lvl, err := ParseText(strings.NewReader("000\n.a#n\n"), "odd")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 13}, lvl.Codes[0])
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		empty bool
	}{
		{"empty", "", true},
		{"header only", "000\n", true},
		{"blank lines", "000\n\n\n", true},
		{"short header", "00\nbbb\n", false},
		{"letters in header", "0x0\nbbb\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(tt.src), tt.name)
			require.Error(t, err)

			var le *LevelLoadError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, tt.name, le.Path)
			assert.Equal(t, tt.empty, errors.Is(err, ErrEmptyLevel))
		})
	}
}

func TestFormatTextRoundTrip(t *testing.T) {
	src := "012\naabaa\nbbbbb\n"
	lvl, err := ParseText(strings.NewReader(src), "x")
	require.NoError(t, err)
	assert.Equal(t, src, FormatText(lvl))
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "levels/nope.txt")
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="2" tilewidth="32" tileheight="32" infinite="0" nextlayerid="2" nextobjectid="1">
 <properties>
  <property name="weather" type="int" value="1"/>
  <property name="track" type="int" value="1"/>
  <property name="tileset" type="int" value="0"/>
 </properties>
 <tileset firstgid="1" name="dino" tilewidth="32" tileheight="32" tilecount="16" columns="16">
  <image source="dino.png" width="512" height="32"/>
 </tileset>
 <layer id="1" name="tiles" width="4" height="2">
  <data encoding="csv">
0,0,4,0,
1,1,1,2
</data>
 </layer>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/ice.tmx": {Data: []byte(testTMX)}}

	lvl, err := Load(fsys, "levels/ice.tmx")
	require.NoError(t, err)

	assert.Equal(t, "ice", lvl.Name)
	assert.True(t, lvl.Weather)
	assert.Equal(t, 1, lvl.Track)
	assert.Equal(t, []int{0, 0, 4, 0}, lvl.Codes[0])
	assert.Equal(t, []int{1, 1, 1, 2}, lvl.Codes[1])
}

func TestDiscoverAndLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level2.txt": {Data: []byte("000\nbbb\n")},
		"levels/level1.txt": {Data: []byte("000\nccc\n")},
		"levels/level3.tmx": {Data: []byte(testTMX)},
		"levels/readme.md":  {Data: []byte("ignored")},
	}
	paths, err := Discover(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"levels/level1.txt", "levels/level2.txt", "levels/level3.tmx"}, paths)

	levels, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Equal(t, 2, levels[0].Codes[0][0])
	assert.Equal(t, "level3", levels[2].Name)
}

func TestDiscoverEmptyDir(t *testing.T) {
	_, err := Discover(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

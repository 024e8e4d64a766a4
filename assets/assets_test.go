package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyLevel = "000\naaaa\nbbbb\n"

func TestLoadLevelsEmbedded(t *testing.T) {
	lvls, paths, err := LoadLevels("")
	require.NoError(t, err)
	assert.Len(t, lvls, 8)
	assert.Len(t, paths, 8)
	assert.Equal(t, "level1.txt", paths[0])
}

func TestLoadLevelsFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte(tinyLevel), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte(tinyLevel), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644))

	lvls, paths, err := LoadLevels(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, paths)
	assert.Equal(t, "a", lvls[0].Name)
	assert.Equal(t, 4, lvls[1].Cols())

	lvl, err := ReloadLevel(dir, "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b", lvl.Name)

	_, err = ReloadLevel("", "level1.txt")
	assert.Error(t, err)
}

func TestLoadLevelsEmptyDir(t *testing.T) {
	_, _, err := LoadLevels(t.TempDir())
	assert.Error(t, err)
}

func TestIsLevelFile(t *testing.T) {
	assert.True(t, IsLevelFile("a/level1.txt"))
	assert.True(t, IsLevelFile("LEVEL8.TMX"))
	assert.False(t, IsLevelFile("level1.txt~"))
	assert.False(t, IsLevelFile("readme.md"))
}

func TestLevelWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewLevelWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level1.txt"), []byte(tinyLevel), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Poll()...)
		return len(got) > 0
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "level1.txt", got[0])
	for _, name := range got {
		assert.Equal(t, "level1.txt", name)
	}

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

package assets

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/dino/assets/levels"
	"github.com/automoto/dino/shared/leveldata"
)

// LevelSource returns the filesystem and directory levels are read from:
// the embedded set when dir is empty, otherwise dir on disk.
func LevelSource(dir string) (fs.FS, string) {
	if dir == "" {
		return levels.FS, levels.Dir
	}
	return os.DirFS(dir), "."
}

// LoadLevels loads every level under dir in play order, along with the path
// of each inside its source.
func LoadLevels(dir string) ([]*leveldata.Level, []string, error) {
	fsys, root := LevelSource(dir)
	paths, err := leveldata.Discover(fsys, root)
	if err != nil {
		return nil, nil, err
	}
	lvls := make([]*leveldata.Level, 0, len(paths))
	for _, p := range paths {
		lvl, err := leveldata.Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		lvls = append(lvls, lvl)
	}
	return lvls, paths, nil
}

// ReloadLevel reads one level file again from dir on disk.
func ReloadLevel(dir, path string) (*leveldata.Level, error) {
	if dir == "" {
		return nil, fmt.Errorf("reload %s: embedded levels cannot change", path)
	}
	fsys, _ := LevelSource(dir)
	return leveldata.Load(fsys, path)
}

package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TileLayer is the name of the TMX tile layer holding level codes.
const TileLayer = "tiles"

// Load reads a level from fsys, choosing the parser by extension. It takes an
// fs.FS so callers can pass the embedded levels or os.DirFS.
func Load(fsys fs.FS, p string) (*Level, error) {
	if strings.EqualFold(path.Ext(p), ".tmx") {
		return LoadTMX(fsys, p)
	}
	f, err := fsys.Open(p)
	if err != nil {
		return nil, &LevelLoadError{Path: p, Reason: "open", Err: err}
	}
	defer f.Close()
	return ParseText(f, Stem(p))
}

// LoadTMX parses a Tiled map. The tile layer named "tiles" supplies codes
// (local tile id + 1) and the map properties weather, track and tileset
// supply the header.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, &LevelLoadError{Path: tmxPath, Reason: "parse tmx", Err: err}
	}
	if levelMap.Width == 0 || levelMap.Height == 0 {
		return nil, &LevelLoadError{Path: tmxPath, Reason: "empty", Err: ErrEmptyLevel}
	}

	lvl := &Level{
		Name:  Stem(tmxPath),
		Codes: make([][]int, levelMap.Height),
	}
	if levelMap.Properties != nil {
		lvl.Weather = levelMap.Properties.GetInt("weather") == 1
		lvl.Track = levelMap.Properties.GetInt("track")
		lvl.Tileset = levelMap.Properties.GetInt("tileset")
	}
	for y := range lvl.Codes {
		lvl.Codes[y] = make([]int, levelMap.Width)
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) {
					continue
				}
				tile := layer.Tiles[i]
				if tile == nil || tile.IsNil() {
					continue
				}
				lvl.Codes[y][x] = int(tile.ID) + 1
			}
		}
		break
	}
	if !found {
		return nil, &LevelLoadError{Path: tmxPath, Reason: fmt.Sprintf("no %q layer", TileLayer)}
	}
	return lvl, nil
}

// Stem returns the file name without directory or extension.
func Stem(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}

// Discover lists level files (.txt and .tmx) in dir within fsys, sorted by
// name. A stem present in both formats resolves to the text file.
func Discover(fsys fs.FS, dir string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, ext := range []string{".txt", ".tmx"} {
		matches, err := fs.Glob(fsys, path.Join(dir, "*"+ext))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", dir, err)
		}
		for _, m := range matches {
			if seen[Stem(m)] {
				continue
			}
			seen[Stem(m)] = true
			paths = append(paths, m)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	sort.Slice(paths, func(i, j int) bool {
		return Stem(paths[i]) < Stem(paths[j])
	})
	return paths, nil
}

// LoadAll loads every level Discover finds, in order.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	paths, err := Discover(fsys, dir)
	if err != nil {
		return nil, err
	}
	levels := make([]*Level, 0, len(paths))
	for _, p := range paths {
		lvl, err := Load(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// IsLoadError reports whether err carries a LevelLoadError.
func IsLoadError(err error) bool {
	var le *LevelLoadError
	return errors.As(err, &le)
}

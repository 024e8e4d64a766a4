// Package levels embeds the bundled level files. It has no ebiten
// dependency so the headless tool can load the same set as the game.
package levels

import (
	"embed"

	"github.com/automoto/dino/shared/leveldata"
)

//go:embed *.txt *.tmx
var FS embed.FS

// Dir is the directory inside FS that holds the levels.
const Dir = "."

// LoadAll loads every bundled level in play order.
func LoadAll() ([]*leveldata.Level, error) {
	return leveldata.LoadAll(FS, Dir)
}

// Names lists the bundled level stems in play order.
func Names() ([]string, error) {
	paths, err := leveldata.Discover(FS, Dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = leveldata.Stem(p)
	}
	return names, nil
}

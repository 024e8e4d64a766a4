// Package leveldata parses level sources into tile code grids. It has no
// dependencies on ebitengine or donburi so the headless tools can use it.
package leveldata

import (
	"errors"
	"fmt"
)

// ErrEmptyLevel is wrapped by LevelLoadError when a source has no header or
// no rows.
var ErrEmptyLevel = errors.New("level has no rows")

// Level is a parsed level source.
type Level struct {
	Name    string
	Weather bool // rain
	Track   int
	Tileset int

	// Codes is indexed [row][col]. Zero is empty. Every row has the same
	// length.
	Codes [][]int
}

// Rows returns the level height in tiles.
func (l *Level) Rows() int {
	return len(l.Codes)
}

// Cols returns the level width in tiles.
func (l *Level) Cols() int {
	if len(l.Codes) == 0 {
		return 0
	}
	return len(l.Codes[0])
}

// Code returns the tile code at (row, col), or 0 outside the level.
func (l *Level) Code(row, col int) int {
	if row < 0 || row >= len(l.Codes) || col < 0 || col >= len(l.Codes[row]) {
		return 0
	}
	return l.Codes[row][col]
}

// LevelLoadError reports a level source that could not be used.
type LevelLoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LevelLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load level %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load level %s: %s", e.Path, e.Reason)
}

func (e *LevelLoadError) Unwrap() error {
	return e.Err
}

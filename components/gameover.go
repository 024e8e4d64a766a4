package components

import "github.com/yohamta/donburi"

// GameOverOption is a line of the end-of-run menu.
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData is how a run ended and the cursor on the end-of-run menu.
type GameOverData struct {
	Finished   bool // every level cleared
	Score      int
	LevelIndex int
	Rank       int  // high score place, -1 when off the table

	SelectedOption GameOverOption
}

// Placed reports whether the run made the high score table.
func (d *GameOverData) Placed() bool { return d.Rank >= 0 }

var GameOver = donburi.NewComponentType[GameOverData]()

package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const gameOverOptions = int(components.GameOverMenu) + 1

// NewUpdateGameOver creates the end-of-run menu system. Back always goes to
// the title screen.
func NewUpdateGameOver(onRetry, onMenu func()) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		step := 0
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			step--
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			step++
		}
		if step != 0 {
			gameOver.SelectedOption = CycleOption(gameOver.SelectedOption, step)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		switch {
		case GetAction(input, cfg.ActionMenuBack).JustPressed:
			onMenu()
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			PlaySFX(e, cfg.SoundMenuSelect)
			if gameOver.SelectedOption == components.GameOverRetry {
				onRetry()
			} else {
				onMenu()
			}
		}
	}
}

// CycleOption moves the cursor by step, wrapping at both ends.
func CycleOption(cur components.GameOverOption, step int) components.GameOverOption {
	n := (int(cur) + step) % gameOverOptions
	if n < 0 {
		n += gameOverOptions
	}
	return components.GameOverOption(n)
}

// GameOverTitle is the heading for a run that ran out of lives or cleared
// every level.
func GameOverTitle(finished bool) string {
	if finished {
		return "YOU MADE IT"
	}
	return "GAME OVER"
}

// DrawGameOver renders the end-of-run screen.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)
	w := screen.Bounds().Dx()
	g := cfg.GameOver

	vector.FillRect(screen, 0, 0, float32(w), float32(screen.Bounds().Dy()), g.BackgroundColor, false)

	drawCentered(screen, GameOverTitle(gameOver.Finished), fonts.Title.Get(), w, int(g.TitleY), g.TitleColor)

	score, _ := FormatHUD(gameOver.Score, 0)
	drawCentered(screen, score, fonts.HUD.Get(), w, int(g.ScoreY), g.TextColorNormal)
	if gameOver.Placed() {
		rank := fmt.Sprintf("NEW HIGH SCORE  #%d", gameOver.Rank+1)
		drawCentered(screen, rank, fonts.Small.Get(), w, int(g.ScoreY)+22, g.TextColorSelected)
	}

	face := fonts.Regular.Get()
	for i, option := range g.MenuOptions {
		c := g.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			c = g.TextColorSelected
		}
		y := g.MenuStartY + float64(i)*(g.MenuItemHeight+g.MenuItemGap) + g.MenuItemHeight
		drawCentered(screen, option, face, w, int(y), c)
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int, c color.Color) {
	x := (width - text.BoundString(face, s).Dx()) / 2
	text.Draw(screen, s, face, x, y, c)
}

// GetOrCreateGameOver returns the GameOver singleton. A fresh one has not
// placed in the high score table.
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(entry, components.GameOverData{Rank: -1})
	}
	return components.GameOver.Get(entry)
}

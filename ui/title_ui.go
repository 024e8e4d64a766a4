package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI holds the ebitenui interface for the title screen
type TitleUI struct {
	UI         *ebitenui.UI
	HighScores []components.HighScore

	// Callbacks
	OnStart func()
	OnExit  func()

	musicButton      *widget.Button
	sfxButton        *widget.Button
	fullscreenButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTitleUI creates the title screen with the given high score table
func NewTitleUI(scores []components.HighScore, onStart, onExit func()) *TitleUI {
	tui := &TitleUI{
		HighScores: scores,
		OnStart:    onStart,
		OnExit:     onExit,
	}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

func (tui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   48,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	tui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (tui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &tui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	contentContainer.AddChild(tui.newButton("Start", func() {
		systems.PlayMenuSelect()
		tui.OnStart()
	}))

	tui.musicButton = tui.newButton(volumeLabel("Music", systems.GetMusicVolume()), func() {
		v := systems.CycleMusicVolume()
		tui.musicButton.Text().Label = volumeLabel("Music", v)
	})
	contentContainer.AddChild(tui.musicButton)

	tui.sfxButton = tui.newButton(volumeLabel("Sound", systems.GetSFXVolume()), func() {
		v := systems.CycleSFXVolume()
		systems.PlayMenuSelect()
		tui.sfxButton.Text().Label = volumeLabel("Sound", v)
	})
	contentContainer.AddChild(tui.sfxButton)

	tui.fullscreenButton = tui.newButton("Fullscreen", func() {
		on := systems.ToggleFullscreen()
		label := "Fullscreen"
		if on {
			label = "Windowed"
		}
		tui.fullscreenButton.Text().Label = label
	})
	contentContainer.AddChild(tui.fullscreenButton)

	contentContainer.AddChild(tui.newButton("Exit", func() {
		tui.OnExit()
	}))

	contentContainer.AddChild(tui.buildScoresContainer())

	rootContainer.AddChild(contentContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TitleUI) buildScoresContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	container.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("HIGH SCORES", &tui.normalFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))
	for _, row := range ScoreRows(tui.HighScores, cfg.Menu.HighScores) {
		container.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(row, &tui.smallFace, &widget.LabelColor{
				Idle: cfg.Menu.TextColor,
			}),
		))
	}
	return container
}

func (tui *TitleUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 32),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.TextColor,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (tui *TitleUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.Menu.ButtonColor),
		Hover:   image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed: image.NewNineSliceColor(color.RGBA{30, 70, 30, 255}),
	}
}

// Update calls the UI's Update method
func (tui *TitleUI) Update() {
	tui.UI.Update()
}

// ScoreRows formats the table, padding missing places with dashes.
func ScoreRows(scores []components.HighScore, places int) []string {
	rows := make([]string, 0, places)
	for i := 0; i < places; i++ {
		if i < len(scores) {
			hs := scores[i]
			rows = append(rows, fmt.Sprintf("%d.  %07d  level %d", i+1, hs.Score, hs.Level))
			continue
		}
		rows = append(rows, fmt.Sprintf("%d.  -------", i+1))
	}
	return rows
}

func volumeLabel(name string, v float64) string {
	return fmt.Sprintf("%s: %d%%", name, int(v*100+0.5))
}

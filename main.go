package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/dino/config"
	"github.com/automoto/dino/fonts"
	"github.com/automoto/dino/scenes"
	"github.com/automoto/dino/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds   image.Rectangle
	scene    Scene
	quitting bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame
func (g *Game) Quit() {
	g.quitting = true
}

func NewGame(set *scenes.LevelSet) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlayScene(g, set)
	} else {
		g.scene = scenes.NewMenuScene(g, set)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quitting {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skipmenu", false, "start playing straight away")
	levelsDir := flag.String("levels", "", "directory of .txt/.tmx levels instead of the built-in set")
	watch := flag.Bool("watch", false, "reload level files from -levels when they change")
	tuning := flag.String("tuning", "", "YAML file overriding simulation tuning")
	debug := flag.Bool("debug", false, "show the debug overlay (toggle with F1)")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.Overlay = *debug
	config.Levels.Dir = *levelsDir
	config.Levels.Watch = *watch

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	set, err := scenes.LoadLevelSet()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.ApplySavedSettingsGlobal(systems.LoadSettings())

	if err := ebiten.RunGame(NewGame(set)); err != nil {
		log.Fatal(err)
	}
}

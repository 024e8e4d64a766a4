package scenes

import (
	"sync"

	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/systems"
	"github.com/automoto/dino/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	set          *LevelSet
	titleUI      *ui.TitleUI
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new title scene
func NewMenuScene(sc SceneChanger, set *LevelSet) *MenuScene {
	return &MenuScene{sceneChanger: sc, set: set}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// Update ECS for input and audio
	ms.ecs.Update()
	ms.titleUI.Update()

	input := systems.GetInput(ms.ecs)
	if systems.GetAction(input, cfg.ActionSkip).JustPressed {
		ms.shouldStart = true
	}
	if systems.GetAction(input, cfg.ActionQuit).JustPressed {
		ms.sceneChanger.Quit()
		return
	}

	if ms.shouldStart {
		systems.FadeOutMusic(ms.ecs)
		ms.sceneChanger.ChangeScene(NewPlayScene(ms.sceneChanger, ms.set))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.ecs == nil {
		return
	}
	ms.titleUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)

	ms.titleUI = ui.NewTitleUI(
		systems.LoadHighScores(),
		func() { ms.shouldStart = true },
		func() { ms.sceneChanger.Quit() },
	)

	// Start menu music
	systems.PlayTrack(ms.ecs, cfg.Sound.MenuTrack)
}

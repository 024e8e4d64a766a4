package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows how a run ended and offers a retry.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	play         *PlayScene
	result       components.GameOverData
	once         sync.Once
}

// NewGameOverScene creates the end screen for a run that ended in play.
func NewGameOverScene(sc SceneChanger, play *PlayScene, result components.GameOverData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, play: play, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if gs.ecs != nil {
		gs.ecs.Draw(screen)
	}
}

// retry resumes the level the run died on, or starts over once every
// level has been cleared.
func (gs *GameOverScene) retry() {
	if gs.result.Finished {
		gs.sceneChanger.ChangeScene(NewPlayScene(gs.sceneChanger, gs.play.set))
		return
	}
	gs.play.Retry()
}

func (gs *GameOverScene) toMenu() {
	gs.play.Close()
	gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.play.set))
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.retry, gs.toMenu))
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	*systems.GetOrCreateGameOver(gs.ecs) = gs.result
}

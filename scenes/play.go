package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/dino/archetypes"
	"github.com/automoto/dino/assets"
	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/shared/leveldata"
	"github.com/automoto/dino/sim"
	"github.com/automoto/dino/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSet is the ordered levels a run plays through.
type LevelSet struct {
	Levels []*leveldata.Level
	Paths  []string
	Dir    string // empty for the embedded set
}

// LoadLevelSet reads the levels named by the level source config.
func LoadLevelSet() (*LevelSet, error) {
	lvls, paths, err := assets.LoadLevels(cfg.Levels.Dir)
	if err != nil {
		return nil, err
	}
	return &LevelSet{Levels: lvls, Paths: paths, Dir: cfg.Levels.Dir}, nil
}

// PlayScene runs one session through the level set.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	set          *LevelSet
	once         sync.Once
}

// NewPlayScene creates a play scene starting at the first level
func NewPlayScene(sc SceneChanger, set *LevelSet) *PlayScene {
	return &PlayScene{sceneChanger: sc, set: set}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	phase, ended := systems.SessionEnded(ps.ecs)
	if !ended {
		return
	}
	ps.finish(phase)
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Retry restarts the level the run ended on, used from the game over screen.
func (ps *PlayScene) Retry() {
	systems.RetrySession(ps.ecs)
	ps.sceneChanger.ChangeScene(ps)
}

func (ps *PlayScene) finish(phase sim.Phase) {
	level := systems.GetLevel(ps.ecs)
	s := level.Session
	hs := components.HighScore{Score: s.Ctx.Score(), Level: s.Index + 1}
	rank := systems.RecordHighScore(hs)

	if phase == sim.PhaseQuit {
		ps.Close()
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.set))
		return
	}

	finished := phase == sim.PhaseFinished
	if finished {
		ps.Close()
	}
	ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps, components.GameOverData{
		SelectedOption: components.GameOverRetry,
		Finished:       finished,
		Score:          hs.Score,
		LevelIndex:     s.Index,
		Rank:           rank,
	}))
}

// Close stops the level watcher. The scene is not resumed afterwards.
func (ps *PlayScene) Close() {
	level := systems.GetLevel(ps.ecs)
	if level == nil || level.Watcher == nil {
		return
	}
	if err := level.Watcher.Close(); err != nil {
		log.Printf("Warning: closing level watcher: %v", err)
	}
	level.Watcher = nil
}

func (ps *PlayScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: death wipe disabled: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdateOverlay)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateWeather)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawWeather)
	ecs.AddRenderer(cfg.Default, systems.DrawFlash)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawWipe)
	ecs.AddRenderer(cfg.Default, systems.DrawIntro)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ps.ecs = ecs

	archetypes.Camera.Spawn(ps.ecs)
	archetypes.Weather.Spawn(ps.ecs)
	archetypes.Overlay.Spawn(ps.ecs)
	levelEntry := archetypes.Level.Spawn(ps.ecs)

	// Reloads replace entries in this copy only.
	lvls := append([]*leveldata.Level(nil), ps.set.Levels...)
	session, err := sim.NewSession(lvls)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	levelData := components.Level.Get(levelEntry)
	levelData.Dir = ps.set.Dir
	levelData.Paths = ps.set.Paths
	if cfg.Levels.Watch && ps.set.Dir != "" {
		w, err := assets.NewLevelWatcher(ps.set.Dir)
		if err != nil {
			log.Printf("Warning: not watching %s: %v", ps.set.Dir, err)
		} else {
			levelData.Watcher = w
		}
	}

	systems.StartSession(ps.ecs, session)
}

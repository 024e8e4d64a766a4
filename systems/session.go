package systems

import (
	"fmt"
	"log"

	"github.com/automoto/dino/assets"
	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/sim"
	"github.com/yohamta/donburi/ecs"
)

// frame is reused every step to collect the simulation's draw calls.
var frame displayList

// UpdateSession steps the level session one frame and turns what happened
// into sounds, effects and transitions. Must run after UpdateInput.
func UpdateSession(e *ecs.ECS) {
	level := GetLevel(e)
	if level == nil || level.Session == nil {
		return
	}
	s := level.Session
	if s.Done() || s.Phase == sim.PhaseGameOver {
		return
	}

	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)
	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}

	level.Reloaded = false
	reloadChanged(e, level)

	if s.Phase == sim.PhaseIntro && GetAction(input, cfg.ActionSkip).JustPressed {
		s.SkipIntro()
	}

	phase, index := s.Phase, s.Index
	score := s.Ctx.Score()

	frame.reset()
	s.Step(SimInput(input), &frame)
	if len(frame.sprites) > 0 {
		level.Display = append(level.Display[:0], frame.sprites...)
	}

	gained := s.Ctx.Score() - score
	for _, ev := range s.Ctx.DrainEvents() {
		handleEvent(e, ev, gained)
		if ev.Kind == sim.EventGem || ev.Kind == sim.EventStomp {
			// one popup per frame carries the whole gain
			gained = 0
		}
	}

	if s.Phase != phase || s.Index != index {
		enterPhase(e, level, phase)
	}
}

// StartSession puts a fresh session into the level component and starts
// the first intro.
func StartSession(e *ecs.ECS, s *sim.Session) {
	level := GetLevel(e)
	if level == nil {
		return
	}
	level.Session = s
	level.Display = level.Display[:0]
	enterPhase(e, level, sim.PhaseQuit)
}

// RetrySession restarts the current level after a game over.
func RetrySession(e *ecs.ECS) {
	level := GetLevel(e)
	if level == nil || level.Session == nil {
		return
	}
	level.Session.Retry()
	enterPhase(e, level, sim.PhaseGameOver)
}

// SessionEnded reports the final phase once the session has stopped
// stepping: game over, every level finished, or quit.
func SessionEnded(e *ecs.ECS) (sim.Phase, bool) {
	level := GetLevel(e)
	if level == nil || level.Session == nil {
		return 0, false
	}
	switch ph := level.Session.Phase; ph {
	case sim.PhaseGameOver, sim.PhaseFinished, sim.PhaseQuit:
		return ph, true
	}
	return 0, false
}

// GetLevel returns the level component, or nil before one exists.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func enterPhase(e *ecs.ECS, level *components.LevelData, from sim.Phase) {
	s := level.Session
	switch s.Phase {
	case sim.PhaseIntro:
		ClearEffects(e)
		StopWipe(e)
		StartIntro(e)
		SetRaining(e, s.Level().Weather)
		PlayTrack(e, s.Level().Track)
	case sim.PhaseDying:
		p := s.Attempt.Player
		StartWipe(e, float32(p.ViewX+p.Rect().W/2), float32(p.ViewY+p.Rect().H/2))
		TriggerScreenShake(e, cfg.ScreenShake.DeathIntensity, cfg.ScreenShake.DeathDuration)
		PlayDeathMusic(e)
	case sim.PhaseGameOver, sim.PhaseFinished:
		FadeOutMusic(e)
	case sim.PhaseQuit:
		StopMusic(e)
	}
	if from == sim.PhaseIntro && s.Phase == sim.PhasePlaying {
		HideIntro(e)
	}
}

func handleEvent(e *ecs.ECS, ev sim.Event, gained int) {
	PlaySFX(e, SoundFor(ev.Kind))

	x, y := float64(ev.X), float64(ev.Y)
	switch ev.Kind {
	case sim.EventGem:
		SpawnBurst(e, x+8, y+8, cfg.Effects.GemColor)
		if gained > 0 {
			SpawnPopup(e, x, y, fmt.Sprintf("+%d", gained), cfg.Effects.GemColor)
		}
	case sim.EventExtraLife:
		SpawnBurst(e, x+8, y+8, cfg.Effects.LifeColor)
		SpawnPopup(e, x, y, "1UP", cfg.Effects.LifeColor)
	case sim.EventStomp:
		SpawnBurst(e, x+16, y, cfg.Effects.StompColor)
		TriggerScreenShake(e, cfg.ScreenShake.StompIntensity, cfg.ScreenShake.StompDuration)
		if gained > 0 {
			SpawnPopup(e, x, y, fmt.Sprintf("+%d", gained), cfg.Effects.StompColor)
		}
	case sim.EventIceCracked:
		SpawnSplash(e, x+16, y)
	}
}

// reloadChanged swaps in level files the watcher saw change. The current
// level restarts at once; any other level takes effect when reached.
func reloadChanged(e *ecs.ECS, level *components.LevelData) {
	if level.Watcher == nil {
		return
	}
	for _, name := range level.Watcher.Poll() {
		s := level.Session
		for i, p := range level.Paths {
			if p != name {
				continue
			}
			lvl, err := assets.ReloadLevel(level.Dir, p)
			if err != nil {
				log.Printf("Warning: keeping previous %s: %v", p, err)
				break
			}
			if i != s.Index {
				s.Levels[i] = lvl
				break
			}
			s.Reload(lvl)
			level.Reloaded = true
			enterPhase(e, level, sim.PhaseQuit)
			log.Printf("Reloaded %s", p)
		}
	}
}

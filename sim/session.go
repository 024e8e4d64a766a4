package sim

import (
	"errors"

	"github.com/automoto/dino/shared/leveldata"
	"github.com/automoto/dino/shared/rules"
)

// Phase is where a session is in its level/attempt lifecycle.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseDying
	PhaseGameOver
	PhaseFinished
	PhaseQuit
)

func (ph Phase) String() string {
	switch ph {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseGameOver:
		return "game-over"
	case PhaseFinished:
		return "finished"
	case PhaseQuit:
		return "quit"
	}
	return "unknown"
}

// ErrNoLevels is returned when a session is started without levels.
var ErrNoLevels = errors.New("sim: no levels")

// Session plays a sequence of levels. Score and lives carry over between
// levels and attempts; each death restarts the level with every entity
// strong-reset.
type Session struct {
	Ctx     *Context
	Levels  []*leveldata.Level
	Index   int
	Grid    *Grid
	Attempt *Attempt

	Phase       Phase
	PhaseFrames int
	Deaths      int
}

// NewSession starts at the first level with the configured lives.
func NewSession(levels []*leveldata.Level) (*Session, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	s := &Session{
		Ctx:    NewContext(rules.Session.StartingLives),
		Levels: levels,
	}
	s.enter(0)
	return s, nil
}

// Level returns the level being played.
func (s *Session) Level() *leveldata.Level {
	return s.Levels[s.Index]
}

// Step advances the session one frame. Only the playing phase runs the
// simulation; intro and death phases count frames.
func (s *Session) Step(in Input, draw Renderer) {
	cfg := rules.Session
	switch s.Phase {
	case PhaseIntro:
		s.PhaseFrames++
		if s.PhaseFrames >= cfg.IntroFrames {
			s.setPhase(PhasePlaying)
		}
	case PhasePlaying:
		switch s.Attempt.Step(in, draw) {
		case OutcomeDied:
			s.Ctx.LoseLife()
			s.Deaths++
			s.setPhase(PhaseDying)
		case OutcomeComplete:
			s.advance()
		case OutcomeQuit:
			s.setPhase(PhaseQuit)
		}
	case PhaseDying:
		s.PhaseFrames++
		if s.PhaseFrames >= cfg.DeathFrames {
			s.Ctx.SetScore(s.Attempt.StartScore)
			if s.Ctx.Lives() < 0 {
				s.setPhase(PhaseGameOver)
				return
			}
			s.restart()
		}
	}
}

// SkipIntro starts play straight away.
func (s *Session) SkipIntro() {
	if s.Phase == PhaseIntro {
		s.setPhase(PhasePlaying)
	}
}

// Retry restarts the current level after a game over with a fresh score
// and the starting lives.
func (s *Session) Retry() {
	s.Ctx.SetScore(0)
	s.Ctx.SetLives(rules.Session.StartingLives)
	s.restart()
}

// Reload swaps in a new version of the current level, keeping score and
// lives, and restarts the attempt.
func (s *Session) Reload(lvl *leveldata.Level) {
	s.Ctx.SetScore(s.Attempt.StartScore)
	s.Levels[s.Index] = lvl
	s.enter(s.Index)
}

// Done reports whether the session has ended for good.
func (s *Session) Done() bool {
	return s.Phase == PhaseFinished || s.Phase == PhaseQuit
}

func (s *Session) advance() {
	if s.Index+1 >= len(s.Levels) {
		s.setPhase(PhaseFinished)
		return
	}
	s.enter(s.Index + 1)
}

func (s *Session) enter(i int) {
	s.Index = i
	s.Grid = NewGrid(s.Levels[i])
	s.Attempt = NewAttempt(s.Ctx, s.Grid)
	s.setPhase(PhaseIntro)
}

func (s *Session) restart() {
	s.Grid.ResetStrong()
	s.Attempt = NewAttempt(s.Ctx, s.Grid)
	s.setPhase(PhaseIntro)
}

func (s *Session) setPhase(ph Phase) {
	s.Phase = ph
	s.PhaseFrames = 0
}

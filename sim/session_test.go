package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/dino/shared/leveldata"
	"github.com/automoto/dino/shared/rules"
)

// pitLevel drops the player straight out of the level.
func pitLevel(t *testing.T) *leveldata.Level {
	t.Helper()
	rows := flatRows(4, 8)
	put(rows, 3, 2, 'a')
	return parseLevel(t, "000", rows...)
}

func runLevel(t *testing.T) *leveldata.Level {
	t.Helper()
	return parseLevel(t, "000", flatRows(4, 8)...)
}

// playUntil steps the session until its phase changes away from the
// current one.
func playUntil(s *Session, in Input, limit int) {
	ph := s.Phase
	for i := 0; i < limit && s.Phase == ph; i++ {
		s.Step(in, nil)
	}
}

func TestSessionNeedsLevels(t *testing.T) {
	_, err := NewSession(nil)
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestSessionIntroThenPlay(t *testing.T) {
	s, err := NewSession([]*leveldata.Level{runLevel(t)})
	require.NoError(t, err)
	assert.Equal(t, PhaseIntro, s.Phase)

	for i := 0; i < rules.Session.IntroFrames; i++ {
		s.Step(Input{}, nil)
	}
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Zero(t, s.Attempt.Frames)
}

func TestSessionAdvancesAndFinishes(t *testing.T) {
	s, err := NewSession([]*leveldata.Level{runLevel(t), runLevel(t)})
	require.NoError(t, err)

	s.SkipIntro()
	playUntil(s, Input{Right: true}, 500)
	assert.Equal(t, PhaseIntro, s.Phase)
	assert.Equal(t, 1, s.Index)

	s.SkipIntro()
	playUntil(s, Input{Right: true}, 500)
	assert.Equal(t, PhaseFinished, s.Phase)
	assert.True(t, s.Done())
}

func TestSessionDeathRestoresScoreAndCostsALife(t *testing.T) {
	s, err := NewSession([]*leveldata.Level{pitLevel(t)})
	require.NoError(t, err)
	s.SkipIntro()
	s.Ctx.AddScore(500)

	playUntil(s, Input{}, 200)
	require.Equal(t, PhaseDying, s.Phase)
	assert.Equal(t, rules.Session.StartingLives-1, s.Ctx.Lives())
	assert.Equal(t, 500, s.Ctx.Score())

	playUntil(s, Input{}, rules.Session.DeathFrames+1)
	assert.Equal(t, PhaseIntro, s.Phase)
	assert.Zero(t, s.Ctx.Score())
	assert.Equal(t, 1, s.Deaths)
}

func TestSessionGameOverAndRetry(t *testing.T) {
	s, err := NewSession([]*leveldata.Level{runLevel(t), pitLevel(t)})
	require.NoError(t, err)

	s.SkipIntro()
	playUntil(s, Input{Right: true}, 500)
	require.Equal(t, 1, s.Index)

	s.Ctx.SetLives(0)
	s.Ctx.AddScore(300)
	startScore := s.Attempt.StartScore
	s.SkipIntro()
	playUntil(s, Input{}, 200)
	playUntil(s, Input{}, rules.Session.DeathFrames+1)
	require.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, startScore, s.Ctx.Score())

	s.Retry()
	assert.Equal(t, PhaseIntro, s.Phase)
	assert.Equal(t, 1, s.Index)
	assert.Zero(t, s.Ctx.Score())
	assert.Equal(t, rules.Session.StartingLives, s.Ctx.Lives())
}

func TestSessionQuit(t *testing.T) {
	s, err := NewSession([]*leveldata.Level{runLevel(t)})
	require.NoError(t, err)
	s.SkipIntro()
	s.Step(Input{Quit: true}, nil)
	assert.Equal(t, PhaseQuit, s.Phase)
	assert.True(t, s.Done())
}

func TestSessionDeathStrongResetsEntities(t *testing.T) {
	rows := flatRows(4, 8)
	put(rows, 3, 2, 'a')
	put(rows, 2, 5, 'e')
	s, err := NewSession([]*leveldata.Level{parseLevel(t, "000", rows...)})
	require.NoError(t, err)

	gem := s.Grid.At(2, 5).(*Gem)
	gem.Exists = false
	s.SkipIntro()
	playUntil(s, Input{}, 200)
	playUntil(s, Input{}, rules.Session.DeathFrames+1)
	assert.True(t, gem.Exists)
}

func TestSessionReloadKeepsLives(t *testing.T) {
	s, err := NewSession([]*leveldata.Level{runLevel(t)})
	require.NoError(t, err)
	s.Ctx.SetLives(2)

	rows := flatRows(5, 10)
	s.Reload(parseLevel(t, "000", rows...))
	assert.Equal(t, 10, s.Grid.Cols())
	assert.Equal(t, 2, s.Ctx.Lives())
	assert.Equal(t, PhaseIntro, s.Phase)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "game-over", PhaseGameOver.String())
	assert.Equal(t, "unknown", Phase(99).String())
}

package main

import (
	"strings"
	"testing"

	"github.com/automoto/dino/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	steps, err := ParseScript("R30 J5  L10 .20 RJ10 q1")
	require.NoError(t, err)
	assert.Equal(t, []Step{
		{Input: sim.Input{Right: true}, Frames: 30},
		{Input: sim.Input{Jump: true}, Frames: 5},
		{Input: sim.Input{Left: true}, Frames: 10},
		{Input: sim.Input{}, Frames: 20},
		{Input: sim.Input{Right: true, Jump: true}, Frames: 10},
		{Input: sim.Input{Quit: true}, Frames: 1},
	}, steps)

	steps, err = ParseScript("   ")
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestParseScriptErrors(t *testing.T) {
	for _, bad := range []string{"30", "R", "R0", "X5", "R-3", "Rx"} {
		_, err := ParseScript(bad)
		assert.Error(t, err, bad)
	}
}

func TestScriptNext(t *testing.T) {
	s := NewScript([]Step{
		{Input: sim.Input{Right: true}, Frames: 2},
		{Input: sim.Input{Jump: true}, Frames: 1},
	})
	assert.True(t, s.Next().Right)
	assert.True(t, s.Next().Right)
	assert.True(t, s.Next().Jump)
	assert.Equal(t, sim.Input{}, s.Next())
	assert.Equal(t, sim.Input{}, s.Next())
}

func TestRunQuitsOnFirstFrame(t *testing.T) {
	lvl, err := loadLevel("level1")
	require.NoError(t, err)

	res := Run(lvl, NewScript([]Step{{Input: sim.Input{Quit: true}, Frames: 1}}), 100)
	assert.Equal(t, sim.OutcomeQuit, res.Outcome)
	assert.Equal(t, 1, res.Frames)
	assert.Equal(t, 0, res.Score)
}

func TestRunStopsAtFrameLimit(t *testing.T) {
	lvl, err := loadLevel("level1")
	require.NoError(t, err)

	res := Run(lvl, NewScript(nil), 5)
	assert.Equal(t, sim.OutcomeNone, res.Outcome)
	assert.Equal(t, 5, res.Frames)
}

func TestLoadLevelUnknown(t *testing.T) {
	_, err := loadLevel("no-such-level")
	assert.Error(t, err)
}

func TestSummaryAndPreview(t *testing.T) {
	lvl, err := loadLevel("level1.txt")
	require.NoError(t, err)

	line := Summary("level1.txt", lvl)
	assert.True(t, strings.HasPrefix(line, "ok   level1.txt"))
	assert.Contains(t, line, "wall=")

	rows := strings.Split(strings.TrimSuffix(Preview(lvl, false), "\n"), "\n")
	assert.Len(t, rows, lvl.Rows())
	for _, r := range rows {
		assert.Len(t, r, lvl.Cols())
	}
	assert.Contains(t, Preview(lvl, false), "#")
}

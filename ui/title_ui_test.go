package ui

import (
	"testing"

	"github.com/automoto/dino/components"
	"github.com/stretchr/testify/assert"
)

func TestScoreRows(t *testing.T) {
	rows := ScoreRows([]components.HighScore{
		{Score: 12345, Level: 4},
		{Score: 900, Level: 1},
	}, 3)
	assert.Equal(t, []string{
		"1.  0012345  level 4",
		"2.  0000900  level 1",
		"3.  -------",
	}, rows)

	assert.Len(t, ScoreRows(nil, 5), 5)
}

func TestVolumeLabel(t *testing.T) {
	assert.Equal(t, "Music: 50%", volumeLabel("Music", 0.5))
	assert.Equal(t, "Sound: 0%", volumeLabel("Sound", 0))
	assert.Equal(t, "Sound: 75%", volumeLabel("Sound", 0.75))
}

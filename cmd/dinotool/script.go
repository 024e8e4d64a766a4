package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/dino/sim"
)

// Step holds one input for a number of frames.
type Step struct {
	Input  sim.Input
	Frames int
}

// ParseScript reads an input script: whitespace separated tokens of
// button letters followed by a frame count. R, L and J hold right, left
// and jump, Q quits and . is no input. Letters combine, so RJ10 runs and
// jumps for ten frames.
func ParseScript(s string) ([]Step, error) {
	var steps []Step
	for _, tok := range strings.Fields(s) {
		i := 0
		var in sim.Input
	letters:
		for ; i < len(tok); i++ {
			switch tok[i] {
			case 'R', 'r':
				in.Right = true
			case 'L', 'l':
				in.Left = true
			case 'J', 'j':
				in.Jump = true
			case 'Q', 'q':
				in.Quit = true
			case '.':
			default:
				break letters
			}
		}
		if i == 0 {
			return nil, fmt.Errorf("script token %q: no buttons", tok)
		}
		n, err := strconv.Atoi(tok[i:])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("script token %q: want a positive frame count", tok)
		}
		steps = append(steps, Step{Input: in, Frames: n})
	}
	return steps, nil
}

// Script replays steps one frame at a time, then idles.
type Script struct {
	steps []Step
	i     int
	used  int
}

// NewScript creates a script player.
func NewScript(steps []Step) *Script {
	return &Script{steps: steps}
}

// Next returns the input for the next frame.
func (s *Script) Next() sim.Input {
	for s.i < len(s.steps) && s.used >= s.steps[s.i].Frames {
		s.i++
		s.used = 0
	}
	if s.i >= len(s.steps) {
		return sim.Input{}
	}
	s.used++
	return s.steps[s.i].Input
}

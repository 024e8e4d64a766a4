package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Current returns the active tuning as a document.
func Current() Tuning {
	return Tuning{
		World:    World,
		Player:   Player,
		Entities: Entities,
		Session:  Session,
	}
}

// Apply overlays a YAML tuning document onto the active sections. Fields
// missing from the document keep their current values; unknown fields are
// an error so typos do not go unnoticed.
func Apply(r io.Reader) error {
	t := Current()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return err
	}

	World = t.World
	Player = t.Player
	Entities = t.Entities
	Session = t.Session
	return nil
}

// ApplyBytes is Apply for an in-memory document.
func ApplyBytes(data []byte) error {
	return Apply(bytes.NewReader(data))
}

// Marshal renders the active tuning, used to write a starting file.
func Marshal() ([]byte, error) {
	return yaml.Marshal(Current())
}

func (t Tuning) validate() error {
	switch {
	case t.World.TileSize <= 0:
		return fmt.Errorf("tuning: world.tileSize must be positive, got %d", t.World.TileSize)
	case t.World.SampleStride <= 0:
		return fmt.Errorf("tuning: world.sampleStride must be positive, got %d", t.World.SampleStride)
	case t.Player.Width <= 0 || t.Player.Height <= 0:
		return fmt.Errorf("tuning: player size must be positive, got %dx%d", t.Player.Width, t.Player.Height)
	case t.Session.StartingLives < 0:
		return fmt.Errorf("tuning: session.startingLives must not be negative, got %d", t.Session.StartingLives)
	}

	// Every clock period is used as a modulus.
	e := t.Entities
	periods := map[string]int{
		"player.runFrameEvery":            t.Player.RunFrameEvery,
		"entities.thinIce.decayEvery":     e.ThinIce.DecayEvery,
		"entities.snake.stepEvery":        e.Snake.StepEvery,
		"entities.ptero.interval":         e.Ptero.Interval,
		"entities.ptero.flapEvery":        e.Ptero.FlapEvery,
		"entities.frog.jumpEvery":         e.Frog.JumpEvery,
		"entities.spawners.plantEvery":    e.Spawners.PlantEvery,
		"entities.spawners.spitEvery":     e.Spawners.SpitEvery,
		"entities.spawners.spitShakeStep": e.Spawners.SpitShakeStep,
		"entities.spawners.yetiEvery":     e.Spawners.YetiEvery,
		"entities.mammoth.stepEvery":      e.Mammoth.StepEvery,
		"entities.pickups.gemBlinkEvery":  e.Pickups.GemBlinkEvery,
		"entities.pickups.waveEvery":      e.Pickups.WaveEvery,
		"entities.thinIce.cracksPerStage": e.ThinIce.CracksPerStage,
	}
	for name, v := range periods {
		if v <= 0 {
			return fmt.Errorf("tuning: %s must be positive, got %d", name, v)
		}
	}
	return nil
}

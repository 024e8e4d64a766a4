package archetypes

import (
	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.AutoDestroy,
	)
	Flash = newArchetype(
		tags.Flash,
		components.Flash,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Weather = newArchetype(
		components.Weather,
	)
	Overlay = newArchetype(
		components.Wipe,
		components.Intro,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

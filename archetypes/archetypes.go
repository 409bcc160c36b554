package archetypes

import (
	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		components.Session,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Ball = newArchetype(
		tags.Ball,
	)
	Geometry = newArchetype(
		tags.Geometry,
		components.Geometry,
	)
	FloatingText = newArchetype(
		tags.FloatingText,
		components.FloatingText,
	)
	Banner = newArchetype(
		tags.Banner,
		components.Banner,
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

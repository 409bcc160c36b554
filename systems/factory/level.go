package factory

import (
	"github.com/automoto/bounce/archetypes"
	"github.com/automoto/bounce/components"
	"github.com/automoto/bounce/shared/gamemath"
	"github.com/automoto/bounce/shared/leveldata"
	"github.com/automoto/bounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel replaces the level entities with ones mirroring level: one
// Geometry entity per platform, spike, star and the goal, plus the ball.
// Effects left over from the previous attempt are removed too.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	ClearLevel(ecs)

	for i, p := range level.Platforms {
		createGeometry(ecs, components.GeometryPlatform, i, p.Rect())
	}
	for i, o := range level.Obstacles {
		createGeometry(ecs, components.GeometrySpike, i, o.Rect())
	}
	for i, c := range level.Collectibles {
		createGeometry(ecs, components.GeometryStar, i, gamemath.SquareAround(c.Position, c.Radius))
	}
	createGeometry(ecs, components.GeometryGoal, 0, level.Goal.Rect())

	return archetypes.Ball.Spawn(ecs)
}

// ClearLevel removes every entity that belongs to a level attempt.
func ClearLevel(ecs *ecs.ECS) {
	var stale []*donburi.Entry
	collect := func(e *donburi.Entry) {
		stale = append(stale, e)
	}
	tags.Geometry.Each(ecs.World, collect)
	tags.Ball.Each(ecs.World, collect)
	tags.FloatingText.Each(ecs.World, collect)
	tags.Banner.Each(ecs.World, collect)
	for _, e := range stale {
		e.Remove()
	}
}

func createGeometry(ecs *ecs.ECS, kind components.GeometryKind, index int, rect gamemath.Rect) {
	e := archetypes.Geometry.Spawn(ecs)
	components.Geometry.SetValue(e, components.GeometryData{
		Kind:  kind,
		Index: index,
		Rect:  rect,
	})
}

// Package leveldata holds the level catalog, its validation rules, the TMX
// loader and the Manager that tracks the current level of a playthrough.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "github.com/automoto/bounce/shared/gamemath"

// Authoring sizes shared by the builtin catalog, chunks and the TMX loader.
const (
	StarRadius  = 14.0
	GoalWidth   = 40.0
	GoalHeight  = 60.0
	SpikeWidth  = 54.0
	SpikeHeight = 18.0
)

type ObstacleKind string

const ObstacleSpike ObstacleKind = "spike"

type CollectibleKind string

const CollectibleRing CollectibleKind = "ring"

// Platform is a static solid rectangle.
type Platform struct {
	Position gamemath.Vec2 `yaml:"position"`
	Size     gamemath.Size `yaml:"size"`
}

func (p Platform) Rect() gamemath.Rect { return gamemath.RectAt(p.Position, p.Size) }

// Obstacle is a lethal rectangle.
type Obstacle struct {
	Position gamemath.Vec2 `yaml:"position"`
	Size     gamemath.Size `yaml:"size"`
	Kind     ObstacleKind  `yaml:"kind"`
}

func (o Obstacle) Rect() gamemath.Rect { return gamemath.RectAt(o.Position, o.Size) }

// Collectible is a star pickup. Position is its centre. Collected is the only
// field that changes during play.
type Collectible struct {
	Position  gamemath.Vec2   `yaml:"position"`
	Radius    float64         `yaml:"radius"`
	Kind      CollectibleKind `yaml:"kind"`
	Collected bool            `yaml:"-"`
}

// Goal ends the level successfully when touched.
type Goal struct {
	Position gamemath.Vec2 `yaml:"position"`
	Size     gamemath.Size `yaml:"size"`
}

func (g Goal) Rect() gamemath.Rect { return gamemath.RectAt(g.Position, g.Size) }

// Level is one authored stage. Start is the avatar centre at spawn.
// Bottomless levels have no ground plane; falling below the world ends the
// attempt.
type Level struct {
	ID           int           `yaml:"id"`
	Name         string        `yaml:"name"`
	Platforms    []Platform    `yaml:"platforms"`
	Obstacles    []Obstacle    `yaml:"obstacles"`
	Collectibles []Collectible `yaml:"collectibles"`
	Goal         Goal          `yaml:"goal"`
	Start        gamemath.Vec2 `yaml:"start"`
	Bottomless   bool          `yaml:"bottomless"`
}

// Clone returns a deep copy of l. Slices are never shared with the original.
func (l Level) Clone() Level {
	c := l
	c.Platforms = append([]Platform(nil), l.Platforms...)
	c.Obstacles = append([]Obstacle(nil), l.Obstacles...)
	c.Collectibles = append([]Collectible(nil), l.Collectibles...)
	return c
}

// CloneAll deep-copies a list of levels.
func CloneAll(levels []Level) []Level {
	out := make([]Level, len(levels))
	for i := range levels {
		out[i] = levels[i].Clone()
	}
	return out
}

// RightEdge returns the largest x covered by any element of the level.
func (l *Level) RightEdge() float64 {
	right := l.Goal.Rect().Right()
	for _, p := range l.Platforms {
		right = max(right, p.Rect().Right())
	}
	for _, o := range l.Obstacles {
		right = max(right, o.Rect().Right())
	}
	for _, c := range l.Collectibles {
		right = max(right, c.Position.X+c.Radius)
	}
	return max(right, l.Start.X)
}

// CollectedCount returns how many collectibles have been picked up.
func (l *Level) CollectedCount() int {
	n := 0
	for _, c := range l.Collectibles {
		if c.Collected {
			n++
		}
	}
	return n
}

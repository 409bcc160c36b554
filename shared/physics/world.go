package physics

import (
	"math"
	"slices"

	"github.com/automoto/bounce/shared/gamemath"
	"github.com/automoto/bounce/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Resolv tags for the static geometry of a level.
const (
	TagPlatform = "platform"
	TagSpike    = "spike"
	TagStar     = "star"
	TagGoal     = "goal"
	TagAvatar   = "avatar"
)

// Bounds is the playfield around one level.
type Bounds struct {
	GroundY       float64
	Width         float64
	Height        float64
	FallY         float64 // below this line the avatar has fallen off the world
	WallThickness float64
	HasGround     bool
}

// NewBounds sizes the playfield for a level. The world widens to fit levels
// that extend past the configured width.
func NewBounds(level *leveldata.Level, wp WorldParams) Bounds {
	return Bounds{
		GroundY:       wp.GroundY(),
		Width:         max(wp.Width, level.RightEdge()+wp.EdgePadding),
		Height:        wp.Height,
		FallY:         wp.Height + wp.FallMargin,
		WallThickness: wp.WallThickness,
		HasGround:     !level.Bottomless,
	}
}

// World runs the physics of one level attempt. It borrows the level: only
// collectible flags are written, never geometry.
type World struct {
	Level  *leveldata.Level
	Params Params
	Bounds Bounds

	space *resolv.Space
	probe *resolv.Object
	pad   float64
}

func NewWorld(level *leveldata.Level, p Params, wp WorldParams) *World {
	bounds := NewBounds(level, wp)
	cell := wp.CellSize
	space := resolv.NewSpace(
		int(math.Ceil(bounds.Width)),
		int(math.Ceil(bounds.FallY+4*p.Radius)),
		cell, cell,
	)

	w := &World{
		Level:  level,
		Params: p,
		Bounds: bounds,
		space:  space,
		pad:    2*p.Radius + float64(cell),
	}

	for i, pl := range level.Platforms {
		w.addRect(pl.Rect(), i, TagPlatform)
	}
	for i, o := range level.Obstacles {
		w.addRect(o.Rect(), i, TagSpike)
	}
	for i, c := range level.Collectibles {
		w.addRect(gamemath.SquareAround(c.Position, c.Radius), i, TagStar)
	}
	w.addRect(level.Goal.Rect(), 0, TagGoal)

	w.probe = resolv.NewObject(0, 0, 1, 1, TagAvatar)
	w.probe.SetShape(resolv.NewRectangle(0, 0, 1, 1))
	space.Add(w.probe)

	return w
}

func (w *World) addRect(r gamemath.Rect, index int, tag string) {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = index
	w.space.Add(obj)
}

// Space exposes the broadphase space for debug drawing.
func (w *World) Space() *resolv.Space {
	return w.space
}

// Spawn returns a fresh avatar at the level start.
func (w *World) Spawn() Avatar {
	return Avatar{
		Position:  w.Level.Start,
		Radius:    w.Params.Radius,
		IsJumping: true,
	}
}

// nearby holds level indices of geometry close to a box, in level order.
type nearby struct {
	platforms []int
	spikes    []int
	stars     []int
	goal      bool
}

// query moves the probe over r and collects everything sharing its cells.
func (w *World) query(r gamemath.Rect) nearby {
	w.probe.X, w.probe.Y = r.X, r.Y
	w.probe.W, w.probe.H = r.W, r.H
	w.probe.Update()

	var n nearby
	check := w.probe.Check(0, 0)
	if check == nil {
		return n
	}
	for _, obj := range check.Objects {
		index, _ := obj.Data.(int)
		switch {
		case obj.HasTags(TagPlatform):
			n.platforms = append(n.platforms, index)
		case obj.HasTags(TagSpike):
			n.spikes = append(n.spikes, index)
		case obj.HasTags(TagStar):
			n.stars = append(n.stars, index)
		case obj.HasTags(TagGoal):
			n.goal = true
		}
	}
	n.platforms = inOrder(n.platforms)
	n.spikes = inOrder(n.spikes)
	n.stars = inOrder(n.stars)
	return n
}

func inOrder(indices []int) []int {
	slices.Sort(indices)
	return slices.Compact(indices)
}

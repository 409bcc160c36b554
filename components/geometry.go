package components

import (
	"github.com/automoto/bounce/shared/gamemath"
	"github.com/yohamta/donburi"
)

// GeometryKind says what a level element is.
type GeometryKind int

const (
	GeometryPlatform GeometryKind = iota
	GeometrySpike
	GeometryStar
	GeometryGoal
)

// GeometryData mirrors one element of the session's level. Index points back
// into the level slice the element came from.
type GeometryData struct {
	Kind  GeometryKind
	Index int
	Rect  gamemath.Rect
}

var Geometry = donburi.NewComponentType[GeometryData]()

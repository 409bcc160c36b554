package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point drawn at the centre of the screen.
type CameraData struct {
	Position math.Vec2
	Shake    math.Vec2 // offset applied by screen shake this frame
}

var Camera = donburi.NewComponentType[CameraData]()

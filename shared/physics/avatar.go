package physics

import "github.com/automoto/bounce/shared/gamemath"

// Avatar is the ball. It collides as the square circumscribing its circle,
// except against collectibles where the true circle is used.
type Avatar struct {
	Position     gamemath.Vec2
	Velocity     gamemath.Vec2
	Radius       float64
	IsJumping    bool
	Grounded     bool
	LastGrounded bool // Grounded as it was before the latest tick
	AirJumpUsed  bool
}

// Box returns the avatar's collision square.
func (a *Avatar) Box() gamemath.Rect {
	return gamemath.SquareAround(a.Position, a.Radius)
}

func (a *Avatar) Bottom() float64 {
	return a.Position.Y + a.Radius
}

// Intent is the movement input held during a tick.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
}

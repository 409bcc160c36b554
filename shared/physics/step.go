package physics

import (
	"github.com/automoto/bounce/shared/gamemath"
)

// Step advances the avatar by one tick under the held intent and returns the
// events raised, in emission order: pickups, at most one obstacle hit, goal,
// fall.
func (w *World) Step(a *Avatar, in Intent) []Event {
	p := w.Params

	a.LastGrounded = a.Grounded
	a.Velocity.Y += p.Gravity

	if in.MoveLeft {
		a.Velocity.X -= p.Acceleration
	}
	if in.MoveRight {
		a.Velocity.X += p.Acceleration
	}
	a.Velocity.X = gamemath.ClampSpeed(a.Velocity.X, p.MaxSpeed)
	if a.Grounded {
		a.Velocity.X *= p.FrictionGround
	} else {
		a.Velocity.X *= p.FrictionAir
	}

	a.Position = a.Position.Add(a.Velocity)

	w.resolveGround(a)
	w.resolveWalls(a)

	near := w.query(a.Box().Grow(w.pad))
	for _, i := range near.platforms {
		w.resolvePlatform(a, w.Level.Platforms[i].Rect())
	}
	w.settleOnGround(a)
	if a.Grounded {
		a.AirJumpUsed = false
	}

	events := w.pickups(a, near.stars)

	box := a.Box()
	for _, i := range near.spikes {
		if box.Overlaps(w.Level.Obstacles[i].Rect()) {
			events = append(events, Event{Kind: EventHitObstacle})
			break
		}
	}
	if near.goal && box.Overlaps(w.Level.Goal.Rect()) {
		events = append(events, Event{Kind: EventReachedGoal})
	}
	if a.Position.Y > w.Bounds.FallY {
		events = append(events, Event{Kind: EventFellOffWorld})
	}
	return events
}

// Pickups collects every star the avatar currently touches. A collected star
// is never reported again.
func (w *World) Pickups(a *Avatar) []Event {
	return w.pickups(a, w.query(a.Box().Grow(w.pad)).stars)
}

func (w *World) pickups(a *Avatar, candidates []int) []Event {
	var events []Event
	for _, i := range candidates {
		c := &w.Level.Collectibles[i]
		if c.Collected {
			continue
		}
		if gamemath.CirclesOverlap(a.Position, a.Radius, c.Position, c.Radius) {
			c.Collected = true
			events = append(events, Event{Kind: EventCollectiblePicked, Index: i})
		}
	}
	return events
}

// landOn snaps the avatar's bottom to y and bounces or settles it.
func (w *World) landOn(a *Avatar, y float64) {
	a.Position.Y = y - a.Radius
	if a.Velocity.Y > 0 {
		a.Velocity.Y = gamemath.Reflect(a.Velocity.Y, w.Params.BounceFactor)
	}
	if vy, settled := gamemath.SettleSpeed(a.Velocity.Y, w.Params.RestThreshold); settled {
		a.Velocity.Y = vy
		a.IsJumping = false
	}
	a.Grounded = true
}

func (w *World) resolveGround(a *Avatar) {
	if w.Bounds.HasGround && a.Bottom() >= w.Bounds.GroundY {
		w.landOn(a, w.Bounds.GroundY)
		return
	}
	a.Grounded = false
}

// settleOnGround keeps the avatar above the ground line after platforms have
// pushed it around.
func (w *World) settleOnGround(a *Avatar) {
	if !w.Bounds.HasGround || a.Bottom() < w.Bounds.GroundY {
		return
	}
	a.Position.Y = w.Bounds.GroundY - a.Radius
	if a.Velocity.Y > 0 {
		a.Velocity.Y = 0
	}
	a.Grounded = true
}

func (w *World) resolveWalls(a *Avatar) {
	t := w.Bounds.WallThickness
	bounce := w.Params.BounceFactor

	if a.Position.Y-a.Radius < t {
		a.Position.Y = t + a.Radius
		if a.Velocity.Y < 0 {
			a.Velocity.Y = gamemath.Reflect(a.Velocity.Y, bounce)
		}
	}
	if a.Position.X-a.Radius < t {
		a.Position.X = t + a.Radius
		if a.Velocity.X < 0 {
			a.Velocity.X = gamemath.Reflect(a.Velocity.X, bounce)
		}
	}
	if right := w.Bounds.Width - t; a.Position.X+a.Radius > right {
		a.Position.X = right - a.Radius
		if a.Velocity.X > 0 {
			a.Velocity.X = gamemath.Reflect(a.Velocity.X, bounce)
		}
	}
}

// resolvePlatform pushes the avatar out of one platform along the axis of
// least penetration. Ties resolve horizontally.
func (w *World) resolvePlatform(a *Avatar, plat gamemath.Rect) {
	box := a.Box()
	if !box.Overlaps(plat) {
		return
	}

	overlapLeft := box.Right() - plat.Left()
	overlapRight := plat.Right() - box.Left()
	overlapTop := box.Bottom() - plat.Top()
	overlapBottom := plat.Bottom() - box.Top()

	if min(overlapTop, overlapBottom) < min(overlapLeft, overlapRight) {
		switch {
		case a.Velocity.Y > 0 && box.Bottom()-a.Velocity.Y <= plat.Top():
			w.landOn(a, plat.Top())
		case a.Velocity.Y < 0 && box.Top()-a.Velocity.Y >= plat.Bottom():
			a.Position.Y = plat.Bottom() + a.Radius
			a.Velocity.Y = 0
		case overlapTop < overlapBottom:
			a.Position.Y -= overlapTop
			a.Velocity.Y = 0
		default:
			a.Position.Y += overlapBottom
			a.Velocity.Y = 0
		}
		return
	}

	switch {
	case a.Position.X < plat.Left():
		a.Position.X = plat.Left() - a.Radius
	case a.Position.X > plat.Right():
		a.Position.X = plat.Right() + a.Radius
	case overlapLeft < overlapRight:
		a.Position.X -= overlapLeft
	default:
		a.Position.X += overlapRight
	}
	a.Velocity.X = 0
}

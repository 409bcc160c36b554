package physics

// Jump applies a jump request. A primary jump needs the avatar to be off its
// rise and on, just off, or hovering just above a surface. Otherwise one
// reduced air jump is allowed per airborne stretch.
func (w *World) Jump(a *Avatar) JumpKind {
	p := w.Params
	rising := a.IsJumping && a.Velocity.Y < 0 && !a.Grounded

	if !rising && (a.Grounded || a.LastGrounded || w.nearSurface(a)) {
		a.Velocity.Y = p.JumpForce
		a.IsJumping = true
		a.Grounded = false
		return JumpGround
	}

	if p.AirJumpFactor > 0 && !a.AirJumpUsed && !a.Grounded {
		a.Velocity.Y = p.JumpForce * p.AirJumpFactor
		a.IsJumping = true
		a.AirJumpUsed = true
		return JumpAir
	}
	return JumpNone
}

// nearSurface reports whether the avatar's bottom is within the proximity band
// of the ground line or of a platform top it overlaps horizontally.
func (w *World) nearSurface(a *Avatar) bool {
	band := a.Radius * w.Params.ProximityFactor
	bottom := a.Bottom()
	within := func(top float64) bool {
		return bottom >= top-band && bottom <= top+band
	}

	if w.Bounds.HasGround && within(w.Bounds.GroundY) {
		return true
	}

	box := a.Box()
	for _, i := range w.query(box.Grow(band + w.pad)).platforms {
		plat := w.Level.Platforms[i].Rect()
		if box.Right() > plat.Left() && box.Left() < plat.Right() && within(plat.Top()) {
			return true
		}
	}
	return false
}

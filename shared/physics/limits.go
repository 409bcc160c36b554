package physics

import "github.com/automoto/bounce/shared/leveldata"

// ReachLimits derives level validation limits from the avatar params by
// integrating the same per-tick physics the engine runs.
func ReachLimits(p Params, wp WorldParams) leveldata.Limits {
	rise, reach := jumpReach(p)
	return leveldata.Limits{
		GroundY:  wp.GroundY(),
		Radius:   p.Radius,
		MaxRise:  rise,
		MaxReach: reach,
	}
}

// jumpReach returns the height of a ground jump chained with an air jump at
// its apex, and the horizontal distance covered at full speed while rising
// and falling back the same height.
func jumpReach(p Params) (rise, reach float64) {
	groundRise, groundTicks := jumpArc(p.JumpForce, p.Gravity)
	rise, ticks := groundRise, groundTicks
	if p.AirJumpFactor > 0 {
		airRise, airTicks := jumpArc(p.JumpForce*p.AirJumpFactor, p.Gravity)
		rise += airRise
		ticks += airTicks
	}
	airtime := float64(2 * ticks)
	return rise, p.MaxSpeed * p.FrictionAir * airtime
}

// jumpArc steps a launch at velocity v until it stops rising.
func jumpArc(v, gravity float64) (rise float64, ticks int) {
	for {
		v += gravity
		if v >= 0 {
			return rise, ticks
		}
		rise -= v
		ticks++
	}
}

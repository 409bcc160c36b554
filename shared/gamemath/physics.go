package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Reflect flips a velocity component and scales it by the restitution factor.
func Reflect(speed, restitution float64) float64 {
	return -speed * restitution
}

// SettleSpeed zeroes speeds whose magnitude is below threshold. The second
// return value reports whether the speed was snapped.
func SettleSpeed(speed, threshold float64) (float64, bool) {
	if math.Abs(speed) < threshold {
		return 0, true
	}
	return speed, false
}

// CirclesOverlap reports whether two circles intersect (touching does not count).
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return a.Distance(b) < ra+rb
}

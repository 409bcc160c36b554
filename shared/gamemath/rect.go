package gamemath

// Rect is an axis-aligned bounding box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAt builds a Rect from a top-left position and a size.
func RectAt(pos Vec2, size Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.Width, H: size.Height}
}

// SquareAround returns the box of half-extent r centred on c. The ball avatar
// collides as this square.
func SquareAround(c Vec2, r float64) Rect {
	return Rect{X: c.X - r, Y: c.Y - r, W: 2 * r, H: 2 * r}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports strict interior overlap. Rectangles that only share an
// edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Right() > o.Left() &&
		r.Left() < o.Right() &&
		r.Bottom() > o.Top() &&
		r.Top() < o.Bottom()
}

// Grow returns r expanded by pad on every side.
func (r Rect) Grow(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}

// HorizontalGap returns the distance between the x-intervals of r and o, or
// zero when they overlap.
func (r Rect) HorizontalGap(o Rect) float64 {
	gap := 0.0
	if d := o.Left() - r.Right(); d > gap {
		gap = d
	}
	if d := r.Left() - o.Right(); d > gap {
		gap = d
	}
	return gap
}

package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 5.0, ClampSpeed(7, 5))
	assert.Equal(t, -5.0, ClampSpeed(-7, 5))
	assert.Equal(t, 3.0, ClampSpeed(3, 5))
}

func TestSettleSpeed(t *testing.T) {
	v, snapped := SettleSpeed(-1.1, 1.2)
	assert.Zero(t, v)
	assert.True(t, snapped)

	v, snapped = SettleSpeed(-3, 1.2)
	assert.Equal(t, -3.0, v)
	assert.False(t, snapped)
}

func TestRectOverlaps(t *testing.T) {
	type testCase struct {
		name string
		a, b Rect
		want bool
	}

	cases := []testCase{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 0, 10, 10}, false},
		{"shared edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"shared top edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 2, 2}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestHorizontalGap(t *testing.T) {
	a := Rect{X: 0, W: 100}
	assert.Equal(t, 50.0, a.HorizontalGap(Rect{X: 150, W: 10}))
	assert.Equal(t, 50.0, Rect{X: 150, W: 10}.HorizontalGap(a))
	assert.Zero(t, a.HorizontalGap(Rect{X: 50, W: 100}))
}

func TestCirclesOverlap(t *testing.T) {
	assert.True(t, CirclesOverlap(Vec2{0, 0}, 20, Vec2{30, 0}, 14))
	assert.False(t, CirclesOverlap(Vec2{0, 0}, 20, Vec2{34, 0}, 14))
}

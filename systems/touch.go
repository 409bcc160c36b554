package systems

import (
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/shared/gamemath"
)

// TouchZone is an on-screen button.
type TouchZone struct {
	Action cfg.ActionID
	Rect   gamemath.Rect
	Label  string
}

// TouchZones lays out the on-screen controls for a screen size: jump in the
// bottom-left corner, left and right in the bottom-right corner and pause in
// the top-right corner.
func TouchZones(width, height float64) []TouchZone {
	size := cfg.Touch.ButtonSize
	margin := cfg.Touch.Margin
	bottom := height - margin - size
	return []TouchZone{
		{Action: cfg.ActionJump, Label: "^", Rect: gamemath.Rect{X: margin, Y: bottom, W: size, H: size}},
		{Action: cfg.ActionMoveLeft, Label: "<", Rect: gamemath.Rect{X: width - margin - 2*size - cfg.Touch.Gap, Y: bottom, W: size, H: size}},
		{Action: cfg.ActionMoveRight, Label: ">", Rect: gamemath.Rect{X: width - margin - size, Y: bottom, W: size, H: size}},
		{Action: cfg.ActionPause, Label: "II", Rect: gamemath.Rect{X: width - margin - size*0.75, Y: margin, W: size * 0.75, H: size * 0.75}},
	}
}

// ActionAt returns the action of the zone containing (x, y).
func ActionAt(zones []TouchZone, x, y float64) (cfg.ActionID, bool) {
	for _, z := range zones {
		if x >= z.Rect.Left() && x < z.Rect.Right() && y >= z.Rect.Top() && y < z.Rect.Bottom() {
			return z.Action, true
		}
	}
	return cfg.ActionNone, false
}

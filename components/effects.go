package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// SquashStretchData tracks ball scale deformation for jump/land feel
type SquashStretchData struct {
	ScaleX, ScaleY   float64 // current scale
	TargetX, TargetY float64 // lerp target (usually 1.0, 1.0)
	LerpSpeed        float64 // how fast to return to normal
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// FloatingTextData is a world-space label that rises and fades, e.g. "+10".
type FloatingTextData struct {
	Text   string
	X      float64
	BaseY  float64
	Offset float32 // current rise, driven by Tween
	Alpha  float32
	Color  color.RGBA
	Tween  *gween.Tween
}

var FloatingText = donburi.NewComponentType[FloatingTextData]()

// BannerData is the screen-space level complete banner sliding in from the top.
type BannerData struct {
	Y       float32
	Settled bool
	Tween   *gween.Tween
}

var Banner = donburi.NewComponentType[BannerData]()

package systems

import (
	"image/color"
	"math"

	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/fonts"
	"github.com/automoto/bounce/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	skyBands   = 24
	spikeTeeth = 3
	spikeSteps = 6
)

var (
	ballImage  *ebiten.Image
	ballRadius float64
	ballDrawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground renders the sky gradient, the land strip and the walls.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	bandH := float32(height) / skyBands
	for i := 0; i < skyBands; i++ {
		c := lerpColor(cfg.Theme.SkyTop, cfg.Theme.SkyBottom, float64(i)/float64(skyBands-1))
		vector.FillRect(screen, 0, float32(i)*bandH, float32(width), bandH+1, c, false)
	}

	data, ok := GetSession(ecs)
	if !ok {
		return
	}
	bounds := data.Session.Bounds()
	offX, offY := cameraOffset(ecs, width, height)

	if bounds.HasGround {
		top := float32(bounds.GroundY + offY)
		vector.FillRect(screen, float32(offX), top, float32(bounds.Width), float32(height)-top, cfg.Theme.Land, false)
		vector.FillRect(screen, float32(offX), top, float32(bounds.Width), 4, cfg.Theme.LandEdge, false)
	}

	wall := float32(bounds.WallThickness)
	vector.FillRect(screen, float32(offX), float32(offY), wall, float32(bounds.Height), cfg.Theme.Wall, false)
	vector.FillRect(screen, float32(offX+bounds.Width)-wall, float32(offY), wall, float32(bounds.Height), cfg.Theme.Wall, false)
	vector.FillRect(screen, float32(offX), float32(offY), float32(bounds.Width), wall, cfg.Theme.Wall, false)
}

// DrawLevel renders platforms, spikes, uncollected stars and the goal.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	data, ok := GetSession(ecs)
	if !ok {
		return
	}
	level := data.Session.Level()
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX, offY := cameraOffset(ecs, width, height)

	components.Geometry.Each(ecs.World, func(e *donburi.Entry) {
		g := components.Geometry.Get(e)
		r := g.Rect
		r.X += offX
		r.Y += offY
		// Cull objects outside viewport
		if r.Right() < 0 || r.Left() > float64(width) {
			return
		}

		switch g.Kind {
		case components.GeometryPlatform:
			fillRect(screen, r, cfg.Theme.Platform)
			fillRect(screen, gamemath.Rect{X: r.X, Y: r.Y, W: r.W, H: math.Min(6, r.H)}, cfg.Theme.PlatformTop)
		case components.GeometrySpike:
			drawSpikes(screen, r)
		case components.GeometryStar:
			if level.Collectibles[g.Index].Collected {
				return
			}
			cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
			vector.DrawFilledCircle(screen, cx, cy, float32(r.W/2), cfg.Theme.Star, true)
			vector.DrawFilledCircle(screen, cx, cy, float32(r.W/4), cfg.White, true)
		case components.GeometryGoal:
			fillRect(screen, gamemath.Rect{X: r.X, Y: r.Y, W: 6, H: r.H}, cfg.Theme.Goal)
			fillRect(screen, gamemath.Rect{X: r.X + 6, Y: r.Y, W: r.W - 6, H: r.H / 2.5}, cfg.Theme.GoalFlag)
		}
	})
}

// drawSpikes fills r with stepped triangular teeth.
func drawSpikes(screen *ebiten.Image, r gamemath.Rect) {
	toothW := r.W / spikeTeeth
	stepH := r.H / spikeSteps
	for t := 0; t < spikeTeeth; t++ {
		centre := r.X + (float64(t)+0.5)*toothW
		for s := 0; s < spikeSteps; s++ {
			w := toothW * float64(s+1) / spikeSteps
			fillRect(screen, gamemath.Rect{X: centre - w/2, Y: r.Y + float64(s)*stepH, W: w, H: stepH + 0.5}, cfg.Theme.Spike)
		}
	}
}

// DrawBall renders the ball with any squash/stretch applied around its base.
func DrawBall(ecs *ecs.ECS, screen *ebiten.Image) {
	data, ok := GetSession(ecs)
	if !ok {
		return
	}
	entry, ok := ballEntry(ecs)
	if !ok {
		return
	}
	avatar := data.Session.Avatar()
	img := getBallImage(avatar.Radius)

	scaleX, scaleY := 1.0, 1.0
	if entry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(entry)
		scaleX, scaleY = ss.ScaleX, ss.ScaleY
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX, offY := cameraOffset(ecs, width, height)
	size := float64(img.Bounds().Dx())

	ballDrawOp.GeoM.Reset()
	ballDrawOp.GeoM.Translate(-size/2, -size)
	ballDrawOp.GeoM.Scale(scaleX, scaleY)
	ballDrawOp.GeoM.Translate(avatar.Position.X+offX, avatar.Position.Y+avatar.Radius+offY)
	screen.DrawImage(img, ballDrawOp)
}

// getBallImage lazily renders the ball sprite for a radius.
func getBallImage(radius float64) *ebiten.Image {
	if ballImage != nil && ballRadius == radius {
		return ballImage
	}
	size := int(math.Ceil(radius*2)) + 2
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.DrawFilledCircle(img, c, c, float32(radius), cfg.Theme.Ball, true)
	vector.DrawFilledCircle(img, c-float32(radius)*0.35, c-float32(radius)*0.35, float32(radius)*0.3, cfg.Theme.BallShine, true)
	ballImage, ballRadius = img, radius
	return img
}

// DrawEffects renders floating pickup labels.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX, offY := cameraOffset(ecs, width, height)
	face := fonts.Bold.Get()

	components.FloatingText.Each(ecs.World, func(e *donburi.Entry) {
		ft := components.FloatingText.Get(e)
		alpha := uint8(255 * math.Max(0, math.Min(1, float64(ft.Alpha))))
		c := color.NRGBA{R: ft.Color.R, G: ft.Color.G, B: ft.Color.B, A: alpha}
		bounds := text.BoundString(face, ft.Text) //nolint:staticcheck // TODO: migrate to text/v2
		x := int(ft.X+offX) - bounds.Dx()/2
		y := int(ft.BaseY - float64(ft.Offset) + offY)
		text.Draw(screen, ft.Text, face, x, y, c) //nolint:staticcheck // TODO: migrate to text/v2
	})
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

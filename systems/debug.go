package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/bounce/fonts"
	"github.com/automoto/bounce/shared/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the physics space and prints the
// avatar's state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	data, ok := GetSession(ecs)
	if !ok || !data.Debug {
		return
	}
	s := data.Session
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(ecs, width, height)

	for _, obj := range s.World().Space().Objects() {
		x := obj.X + camX
		y := obj.Y + camY
		// Cull objects outside viewport
		if x+obj.W < 0 || x > float64(width) || y+obj.H < 0 || y > float64(height) {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(physics.TagPlatform):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(physics.TagSpike):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(physics.TagStar):
			c = color.RGBA{255, 215, 0, 255}
		case obj.HasTags(physics.TagGoal):
			c = color.RGBA{0, 255, 0, 255}
		}
		strokeBox(screen, x, y, obj.W, obj.H, c)
	}

	a := s.Avatar()
	box := a.Box()
	strokeBox(screen, box.X+camX, box.Y+camY, box.W, box.H, color.RGBA{0, 0, 255, 255})

	lines := []string{
		fmt.Sprintf("state %s  attempt %d", s.State(), s.Attempt()),
		fmt.Sprintf("pos (%.1f, %.1f)  vel (%.2f, %.2f)", a.Position.X, a.Position.Y, a.Velocity.X, a.Velocity.Y),
		fmt.Sprintf("grounded %t  last %t  jumping %t  airjump %t", a.Grounded, a.LastGrounded, a.IsJumping, a.AirJumpUsed),
		fmt.Sprintf("tps %.0f", ebiten.ActualTPS()),
	}
	face := fonts.Small.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 10, height-10-18*(len(lines)-1-i), color.White) //nolint:staticcheck // TODO: migrate to text/v2
	}
}

func strokeBox(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

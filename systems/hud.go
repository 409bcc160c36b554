package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the level name, score, best score and star count in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	data, ok := GetSession(ecs)
	if !ok {
		return
	}
	s := data.Session
	level := s.Level()
	face := fonts.Regular.Get()

	lines := []string{
		fmt.Sprintf("Level %d/%d: %s", s.LevelIndex()+1, s.LevelCount(), level.Name),
		fmt.Sprintf("Score: %d", s.Score()),
		fmt.Sprintf("Best: %d", s.HighScore()),
		fmt.Sprintf("Stars: %d/%d", level.CollectedCount(), len(level.Collectibles)),
	}
	x := int(cfg.HUD.Margin)
	for i, line := range lines {
		y := int(cfg.HUD.Margin + cfg.HUD.LineGap*float64(i+1))
		drawShadowedText(screen, line, face, x, y, cfg.HUD.TextColor)
	}
}

// DrawTouchControls renders the on-screen buttons once a touch has been seen.
func DrawTouchControls(ecs *ecs.ECS, screen *ebiten.Image) {
	input := getOrCreateInput(ecs)
	if !input.TouchSeen {
		return
	}
	face := fonts.Bold.Get()
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	for _, z := range TouchZones(float64(width), float64(height)) {
		c := cfg.Touch.ButtonColor
		if input.Current[z.Action] {
			c = cfg.Touch.PressedColor
		}
		r := z.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
		bounds := text.BoundString(face, z.Label) //nolint:staticcheck // TODO: migrate to text/v2
		x := int(r.X+r.W/2) - bounds.Dx()/2
		y := int(r.Y+r.H/2) + bounds.Dy()/2
		text.Draw(screen, z.Label, face, x, y, cfg.Touch.IconColor) //nolint:staticcheck // TODO: migrate to text/v2
	}
}

func drawShadowedText(screen *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	text.Draw(screen, s, face, x+2, y+2, cfg.HUD.Shadow) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, s, face, x, y, c)                  //nolint:staticcheck // TODO: migrate to text/v2
}

// hintFor picks the control prompt matching the last input device.
func hintFor(method components.InputMethod, keyboard, pad, touch string) string {
	switch method {
	case components.InputPlayStation, components.InputXbox:
		return pad
	case components.InputTouch:
		return touch
	}
	return keyboard
}

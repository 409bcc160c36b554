package systems

import (
	"fmt"

	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/fonts"
	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawPause renders the pause overlay
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	data, ok := GetSession(ecs)
	if !ok || data.Session.State() != gamestate.StatePaused {
		return
	}
	input := getOrCreateInput(ecs)
	hint := hintFor(input.LastInputMethod, cfg.Pause.Hint, "Press Start to resume", "Tap II to resume")
	msg := fmt.Sprintf("Score %d", data.Session.Score())
	drawOverlay(screen, cfg.Pause, msg, hint)
}

// DrawGameOver renders the game over overlay with the final score
func DrawGameOver(ecs *ecs.ECS, screen *ebiten.Image) {
	data, ok := GetSession(ecs)
	if !ok || data.Session.State() != gamestate.StateGameOver {
		return
	}
	input := getOrCreateInput(ecs)
	hint := hintFor(input.LastInputMethod, cfg.GameOver.Hint, "Press A to restart", "Tap ^ to restart")
	msg := fmt.Sprintf("Score %d   Best %d", data.Session.Score(), data.Session.HighScore())
	drawOverlay(screen, cfg.GameOver, msg, hint)
}

func drawOverlay(screen *ebiten.Image, oc cfg.OverlayConfig, msg, hint string) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), oc.OverlayColor, false)

	titleFont := fonts.Title.Get()
	text.Draw(screen, oc.Title, titleFont, centerTextX(oc.Title, titleFont, width), int(oc.TitleY), oc.TitleColor) //nolint:staticcheck // TODO: migrate to text/v2

	msgFont := fonts.Bold.Get()
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(oc.MessageY), oc.TextColor) //nolint:staticcheck // TODO: migrate to text/v2

	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(oc.HintY), oc.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
}

// DrawLevelComplete renders the sliding level complete banner
func DrawLevelComplete(ecs *ecs.ECS, screen *ebiten.Image) {
	data, ok := GetSession(ecs)
	if !ok {
		return
	}
	entry, ok := tags.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	s := data.Session

	width := float64(screen.Bounds().Dx())
	top := float64(banner.Y)
	lc := cfg.LevelComplete

	vector.DrawFilledRect(screen, 0, float32(top), float32(width), float32(lc.BannerHeight), lc.OverlayColor, false)

	titleFont := fonts.Title.Get()
	text.Draw(screen, lc.Title, titleFont, centerTextX(lc.Title, titleFont, width), int(top+60), lc.TitleColor) //nolint:staticcheck // TODO: migrate to text/v2

	msg := fmt.Sprintf("Score %d   Stars %d/%d", s.Score(), s.Level().CollectedCount(), len(s.Level().Collectibles))
	msgFont := fonts.Bold.Get()
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(top+lc.ScoreOffsetY), lc.TextColor) //nolint:staticcheck // TODO: migrate to text/v2

	hint := lc.ContinueHint
	if s.LevelIndex() == s.LevelCount()-1 {
		hint = lc.FinalHint
	}
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(top+lc.HintOffsetY), lc.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

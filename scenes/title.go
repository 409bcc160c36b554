package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/bounce/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
)

// TitleScene shows the title screen and level select.
type TitleScene struct {
	ctx     *Context
	titleUI *ui.TitleUI
	once    sync.Once
	gamepad []ebiten.GamepadID
	started bool
}

// NewTitleScene creates a new title scene
func NewTitleScene(ctx *Context) *TitleScene {
	return &TitleScene{ctx: ctx}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)

	if ts.drainReloads() {
		ts.configure()
	}
	if ts.titleUI == nil {
		return
	}
	ts.titleUI.Update()

	if !ts.started && ts.startPressed() {
		ts.start()
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.titleUI == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	s := ts.ctx.Session
	titleUI, err := ui.NewTitleUI(ui.TitleInfo{
		Levels:           s.Catalog(),
		HighScore:        s.HighScore(),
		CampaignComplete: s.Finished(),
	}, ts.start, ts.startAt)
	if err != nil {
		log.WithError(err).Error("title screen unavailable")
		return
	}
	ts.titleUI = titleUI
}

func (ts *TitleScene) start() {
	if err := ts.ctx.Session.Start(); err != nil {
		log.WithError(err).Warn("start rejected")
		return
	}
	ts.started = true
	ts.ctx.Changer.ChangeScene(NewPlatformerScene(ts.ctx))
}

func (ts *TitleScene) startAt(id int) {
	if err := ts.ctx.Session.StartAt(id); err != nil {
		log.WithError(err).WithField("levelID", id).Warn("level select rejected")
		return
	}
	ts.started = true
	ts.ctx.Changer.ChangeScene(NewPlatformerScene(ts.ctx))
}

// startPressed reports Enter or a gamepad's south button this frame.
func (ts *TitleScene) startPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	ts.gamepad = ebiten.AppendGamepadIDs(ts.gamepad[:0])
	for _, id := range ts.gamepad {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			return true
		}
	}
	return false
}

// drainReloads applies catalogs from the level watcher and reports whether
// the level list changed.
func (ts *TitleScene) drainReloads() bool {
	if ts.ctx.Reloads == nil {
		return false
	}
	changed := false
	for {
		select {
		case levels := <-ts.ctx.Reloads:
			if err := ts.ctx.Session.SetCatalog(levels); err != nil {
				log.WithError(err).Warn("reloaded catalog rejected")
				continue
			}
			changed = true
		default:
			return changed
		}
	}
}

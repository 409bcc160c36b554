package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/systems"
	"github.com/automoto/bounce/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays the session's current game.
type PlatformerScene struct {
	ecs  *ecs.ECS
	ctx  *Context
	once sync.Once
}

func NewPlatformerScene(ctx *Context) *PlatformerScene {
	return &PlatformerScene{ctx: ctx}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	// The session returns to the title after the last level.
	if ps.ctx.Session.State() == gamestate.StateStart {
		ps.ctx.Changer.ChangeScene(NewTitleScene(ps.ctx))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.SyncLevel)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.UpdateBanner)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawBall)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawTouchControls)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
	ecs.AddRenderer(cfg.Default, systems.DrawLevelComplete)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	factory.CreateSession(ps.ecs, ps.ctx.Session, ps.ctx.Reloads, cfg.Debug.Overlay)
	factory.CreateCamera(ps.ecs, float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)
}

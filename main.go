package main

import (
	"flag"
	"image"

	"github.com/automoto/bounce/assets"
	"github.com/automoto/bounce/config"
	"github.com/automoto/bounce/fonts"
	"github.com/automoto/bounce/scenes"
	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/shared/physics"
	"github.com/automoto/bounce/shared/tunables"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *gamestate.Session, watcher *assets.LevelWatcher) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	ctx := &scenes.Context{Changer: g, Session: session}
	if watcher != nil {
		ctx.Reloads = watcher.Levels()
	}

	if !config.Debug.SkipMenu {
		g.scene = scenes.NewTitleScene(ctx)
		return g, nil
	}

	var err error
	if config.Debug.StartLevel != 0 {
		err = session.StartAt(config.Debug.StartLevel)
	} else {
		err = session.Start()
	}
	if err != nil {
		return nil, err
	}
	g.scene = scenes.NewPlatformerScene(ctx)
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tunablesPath := flag.String("tunables", "", "YAML file overriding physics, world and scoring values")
	flag.StringVar(&config.Debug.LevelsDir, "levels", "", "Directory of .tmx levels to play instead of the builtin campaign")
	flag.BoolVar(&config.Debug.Watch, "watch", false, "Reload the -levels directory when a map changes")
	flag.IntVar(&config.Debug.StartLevel, "level", 0, "Level id to start at (implies -skip-menu)")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Skip the title screen")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "Show collision boxes and debug logging")
	flag.Parse()

	if config.Debug.Overlay {
		log.SetLevel(log.DebugLevel)
	}
	if config.Debug.StartLevel != 0 {
		config.Debug.SkipMenu = true
	}

	if *tunablesPath != "" {
		t, err := tunables.Load(*tunablesPath)
		if err != nil {
			log.WithError(err).Fatal("could not load tunables")
		}
		config.Apply(t)
	}

	load := assets.CatalogLoader(config.Debug.LevelsDir, physics.ReachLimits(config.Physics, config.World))
	catalog, err := load()
	if err != nil {
		log.WithError(err).Fatal("could not load levels")
	}

	session, err := gamestate.NewSession(catalog, config.Tunables().Options())
	if err != nil {
		log.WithError(err).Fatal("could not create session")
	}

	var watcher *assets.LevelWatcher
	if config.Debug.Watch && config.Debug.LevelsDir != "" {
		watcher, err = assets.WatchLevels(config.Debug.LevelsDir, load)
		if err != nil {
			log.WithError(err).Warn("level hot reload disabled")
		} else {
			defer watcher.Close()
		}
	}

	game, err := NewGame(session, watcher)
	if err != nil {
		log.WithError(err).Fatal("could not start game")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Bounce")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}

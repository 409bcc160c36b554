package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/shared/loop"
	"github.com/automoto/bounce/shared/replay"
	log "github.com/sirupsen/logrus"
)

func playAction(scriptPath, tunablesPath, levelsDir string, tps int) error {
	if scriptPath == "" {
		return errNoScript
	}
	t, levels, err := loadSetup(tunablesPath, levelsDir)
	if err != nil {
		return err
	}
	script, err := replay.Load(scriptPath)
	if err != nil {
		return err
	}
	session, err := gamestate.NewSession(levels, t.Options())
	if err != nil {
		return err
	}
	player, err := replay.NewPlayer(session, script)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := loop.NewRunner(tps)
	err = runner.Run(ctx, func(tick uint64) bool {
		more := player.Step()
		if tick%uint64(max(tps, 1)) == 0 {
			a := session.Avatar()
			log.WithFields(log.Fields{
				"tick":  tick,
				"state": session.State(),
				"score": session.Score(),
				"x":     a.Position.X,
				"y":     a.Position.Y,
			}).Info("progress")
		}
		return more
	})
	printResult(os.Stdout, player.Result())
	return err
}

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/automoto/bounce/shared/replay"
)

var errNoScript = errors.New("--script is required")

func runAction(w io.Writer, scriptPath, tunablesPath, levelsDir string) error {
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

	res, err := replay.Run(levels, t.Options(), script)
	if err != nil {
		return err
	}
	printResult(w, res)
	return nil
}

func printResult(w io.Writer, res replay.Result) {
	for _, r := range res.Records {
		fmt.Fprintf(w, "%6d  %s\n", r.Frame, r.Event)
	}
	a := res.Avatar
	fmt.Fprintf(w, "level %d  state %s  score %d  frames %d\n", res.LevelID, res.State, res.Score, res.Frames)
	fmt.Fprintf(w, "avatar at (%.2f, %.2f) moving (%.2f, %.2f) grounded=%t\n",
		a.Position.X, a.Position.Y, a.Velocity.X, a.Velocity.Y, a.Grounded)
}

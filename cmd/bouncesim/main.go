package main

import (
	"fmt"
	"os"

	"github.com/automoto/bounce/shared/leveldata"
	"github.com/automoto/bounce/shared/physics"
	"github.com/automoto/bounce/shared/tunables"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	levelsFlag   = cli.StringFlag{Name: "levels", Value: "", Usage: "Directory of .tmx levels; builtin campaign when empty"}
	tunablesFlag = cli.StringFlag{Name: "tunables", Value: "", Usage: "YAML file overriding physics, world and scoring"}
	scriptFlag   = cli.StringFlag{Name: "script", Value: "", Usage: "Replay script (YAML); required"}
)

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "bouncesim"
	app.Usage = "Headless bounce simulator"
	app.Description = "Replays input scripts and checks level packs without opening a window"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "verbose", Usage: "Enable debug logging"},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:    "run",
			Aliases: []string{"r"},
			Usage:   "Replay a script as fast as possible and print the outcome",
			Flags:   []cli.Flag{scriptFlag, tunablesFlag, levelsFlag},
			Action: func(c *cli.Context) error {
				return runAction(os.Stdout, c.String("script"), c.String("tunables"), c.String("levels"))
			},
		},
		{
			Name:    "levels",
			Aliases: []string{"l"},
			Usage:   "List and validate a level pack",
			Flags:   []cli.Flag{levelsFlag, tunablesFlag},
			Action: func(c *cli.Context) error {
				return levelsAction(os.Stdout, c.String("levels"), c.String("tunables"))
			},
		},
		{
			Name:    "play",
			Aliases: []string{"p"},
			Usage:   "Replay a script in real time, logging every transition",
			Flags: []cli.Flag{
				scriptFlag, tunablesFlag, levelsFlag,
				cli.IntFlag{Name: "tps", Value: 60, Usage: "Number of ticks per second"},
			},
			Action: func(c *cli.Context) error {
				return playAction(c.String("script"), c.String("tunables"), c.String("levels"), c.Int("tps"))
			},
		},
	}
	return app
}

// loadSetup reads the tunables and the level catalog shared by every command.
func loadSetup(tunablesPath, levelsDir string) (tunables.Tunables, []leveldata.Level, error) {
	t := tunables.Default()
	if tunablesPath != "" {
		var err error
		if t, err = tunables.Load(tunablesPath); err != nil {
			return t, nil, err
		}
	}
	levels, err := leveldata.LoadCatalog(levelsDir, physics.ReachLimits(t.Physics, t.World))
	if err != nil {
		return t, nil, err
	}
	return t, levels, nil
}

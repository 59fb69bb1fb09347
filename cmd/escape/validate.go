package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cbodonnell/greatescape/pkg/game/constants"
	"github.com/cbodonnell/greatescape/pkg/levels"
)

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "load and check the four level definitions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "levels",
				Usage: "levels directory, overrides the config",
			},
		},
		Action: validate,
	}
}

func validate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dir := cfg.LevelsDir
	if v := cmd.String("levels"); v != "" {
		dir = v
	}

	world, err := levels.LoadDefaultWorld(dir)
	if err != nil {
		return err
	}
	for _, name := range constants.LevelOrder {
		level := world[name]
		fmt.Printf("%s: %d tiles, start (%d,%d)\n", name, len(level.Tiles), level.StartX, level.StartY)
	}
	fmt.Printf("%s: ok\n", dir)
	return nil
}

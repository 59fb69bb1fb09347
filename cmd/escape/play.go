package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/cbodonnell/greatescape/pkg/config"
	"github.com/cbodonnell/greatescape/pkg/game"
	"github.com/cbodonnell/greatescape/pkg/game/constants"
	"github.com/cbodonnell/greatescape/pkg/levels"
	"github.com/cbodonnell/greatescape/pkg/log"
	"github.com/cbodonnell/greatescape/pkg/queue"
	"github.com/cbodonnell/greatescape/pkg/repositories"
	"github.com/cbodonnell/greatescape/pkg/workers"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play in the terminal: w/a/s/d move, f interacts, 1/2/3 press panel buttons, save, quit",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "level",
				Value: 1,
				Usage: "level number to start on (1-4)",
			},
			&cli.BoolFlag{
				Name:  "load",
				Usage: "resume the saved game instead of starting a new one",
			},
		},
		Action: play,
	}
}

func play(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repository, err := repositories.Open(ctx, cfg.SaveURL)
	if err != nil {
		return fmt.Errorf("failed to open save store: %w", err)
	}
	defer repository.Close(context.Background())

	engine, err := newEngine(ctx, cfg, repository, cmd.Bool("load"), int(cmd.Int("level")))
	if err != nil {
		return err
	}

	saveChan := make(chan workers.SaveGameRequest, 1)
	saveWorker := workers.NewSaveGameWorker(workers.NewSaveGameWorkerOptions{
		Repository: repository,
		SaveChan:   saveChan,
	})
	go saveWorker.Start(ctx)

	inputs := queue.NewInMemoryQueue(queue.DefaultQueueBufferSize)
	go readInputs(ctx, os.Stdin, inputs, cancel)

	screen := &statusLine{out: os.Stdout}
	err = engine.Run(ctx, game.RunOptions{
		Inputs:           inputs,
		TickInterval:     cfg.Tick(),
		AutosaveInterval: cfg.Autosave(),
		SaveChan:         saveChan,
		OnTick:           screen.update,
	})
	if engine.GameEnded() {
		fmt.Println(constants.MessageGameEnded)
		return nil
	}
	if errors.Is(err, context.Canceled) {
		log.Info("Quit on %s", engine.ActiveLevel())
		return nil
	}
	return err
}

func newEngine(ctx context.Context, cfg *config.Config, repository repositories.Repository, load bool, levelNumber int) (*game.Engine, error) {
	opts := game.NewEngineOptions{Repository: repository}

	if load {
		save, err := repository.LoadGame(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load game: %w", err)
		}
		return game.NewGameFromSave(*save, opts)
	}

	world, err := levels.LoadDefaultWorld(cfg.LevelsDir)
	if err != nil {
		return nil, err
	}
	return game.NewGame(levelNumber, world, opts)
}

// statusLine prints the engine state whenever it changes.
type statusLine struct {
	out  io.Writer
	last string
}

func (s *statusLine) update(e *game.Engine) {
	line := status(e)
	if line == s.last {
		return
	}
	s.last = line
	fmt.Fprintln(s.out, line)
}

func status(e *game.Engine) string {
	p := e.Player()

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d,%d) %s", e.ActiveLevel(), p.X, p.Y, p.SpriteName())
	if items := p.InventoryItems(); len(items) > 0 {
		fmt.Fprintf(&b, " key parts %v", items)
	}
	if sprite, ok := e.NearestTouchable(); ok {
		fmt.Fprintf(&b, " | f: %s", sprite)
	}
	if e.PanelOpen() {
		fmt.Fprintf(&b, " | Find secret combination %v", e.ButtonBuffer())
	}
	if remaining, ok := e.ChestWindowRemaining(); ok {
		fmt.Fprintf(&b, " | chest closes in %ds", remaining)
	}
	if message, ok := e.Message(); ok {
		fmt.Fprintf(&b, " | %s", message)
	}
	return b.String()
}

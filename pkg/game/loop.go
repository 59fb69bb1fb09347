package game

import (
	"context"
	"time"

	"github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/cbodonnell/greatescape/pkg/queue"
	"github.com/cbodonnell/greatescape/pkg/workers"
)

// RunOptions contains options for running the game loop.
type RunOptions struct {
	// Inputs is drained at the start of every tick
	Inputs queue.Queue
	// TickInterval is the time between ticks
	TickInterval time.Duration
	// AutosaveInterval is the time between autosaves; zero disables them
	AutosaveInterval time.Duration
	// SaveChan feeds the save worker. While Run is active explicit saves
	// go through it too, so they never overlap an autosave.
	SaveChan chan<- workers.SaveGameRequest
	// OnTick runs on the loop goroutine after every tick
	OnTick func(e *Engine)
}

// Run ticks the engine until ctx is done or the game ends. It returns
// nil when the game ends and the context's error otherwise.
func (e *Engine) Run(ctx context.Context, opts RunOptions) error {
	ticker := time.NewTicker(opts.TickInterval)
	defer ticker.Stop()

	e.saveChan = opts.SaveChan
	defer func() { e.saveChan = nil }()

	var nextAutosave time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			e.gameTick(ctx, t, opts)

			if opts.AutosaveInterval > 0 && opts.SaveChan != nil {
				if nextAutosave.IsZero() {
					nextAutosave = t.Add(opts.AutosaveInterval)
				} else if !t.Before(nextAutosave) {
					e.requestAutosave(opts.SaveChan)
					nextAutosave = t.Add(opts.AutosaveInterval)
				}
			}

			if opts.OnTick != nil {
				opts.OnTick(e)
			}
			if e.gameEnded {
				return nil
			}
		}
	}
}

// gameTick runs one iteration of the game loop.
func (e *Engine) gameTick(ctx context.Context, t time.Time, opts RunOptions) {
	if opts.Inputs != nil {
		e.processInputs(ctx, opts.Inputs)
	}
	e.Tick(t)
}

// processInputs applies all pending inputs in arrival order.
func (e *Engine) processInputs(ctx context.Context, inputs queue.Queue) {
	pending, err := inputs.ReadAllMessages()
	if err != nil {
		e.logger.Error("Failed to read inputs: %v", err)
		return
	}
	for _, item := range pending {
		e.ApplyInput(ctx, item)
	}
}

// ApplyInput performs the engine operation an input stands for.
func (e *Engine) ApplyInput(ctx context.Context, input types.Input) {
	switch in := input.(type) {
	case types.MoveInput:
		e.Move(in.Direction)
	case types.StopInput:
		e.Stop()
	case types.InteractInput:
		e.Interact()
	case types.PanelButtonInput:
		e.PressButton(in.Button)
	case types.SaveInput:
		if err := e.Save(ctx); err != nil {
			e.logger.Error("Failed to save: %v", err)
		}
	default:
		e.logger.Error("unhandled input type: %T", in)
	}
}

func (e *Engine) requestAutosave(saveChan chan<- workers.SaveGameRequest) {
	select {
	case saveChan <- workers.SaveGameRequest{Save: e.Snapshot()}:
	default:
		e.logger.Warn("Autosave skipped: save worker is busy")
	}
}

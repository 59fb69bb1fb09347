package workers

import (
	"context"

	"github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/cbodonnell/greatescape/pkg/log"
	"github.com/cbodonnell/greatescape/pkg/repositories"
)

// SaveGameWorker writes saves handed over by the game loop so that
// storage latency never stalls a tick.
type SaveGameWorker struct {
	repository repositories.Repository
	saveChan   <-chan SaveGameRequest
}

type NewSaveGameWorkerOptions struct {
	Repository repositories.Repository
	SaveChan   <-chan SaveGameRequest
}

// SaveGameRequest carries a snapshot that the worker owns exclusively.
type SaveGameRequest struct {
	Save *types.SaveGame
	// Done receives the outcome when not nil
	Done chan<- error
}

// NewSaveGameWorker creates a new SaveGameWorker.
// The worker processes save requests from the game loop until its
// context is cancelled.
func NewSaveGameWorker(opts NewSaveGameWorkerOptions) *SaveGameWorker {
	return &SaveGameWorker{
		repository: opts.Repository,
		saveChan:   opts.SaveChan,
	}
}

func (w *SaveGameWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case saveRequest, ok := <-w.saveChan:
			if !ok {
				return
			}
			w.saveGame(ctx, saveRequest)
		}
	}
}

func (w *SaveGameWorker) saveGame(ctx context.Context, saveRequest SaveGameRequest) {
	err := w.repository.SaveGame(ctx, saveRequest.Save)
	if err != nil {
		log.Error("Failed to save game: %v", err)
	} else {
		log.Debug("Saved session %s on %s", saveRequest.Save.SessionID, saveRequest.Save.SavePoint.ActiveLevel)
	}
	if saveRequest.Done != nil {
		saveRequest.Done <- err
	}
}

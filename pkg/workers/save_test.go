package workers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	mu    sync.Mutex
	saves []*types.SaveGame
	err   error
}

func (r *memoryRepository) Close(ctx context.Context) error { return nil }

func (r *memoryRepository) SaveGame(ctx context.Context, save *types.SaveGame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saves = append(r.saves, save)
	return nil
}

func (r *memoryRepository) LoadGame(ctx context.Context) (*types.SaveGame, error) {
	return nil, fmt.Errorf("not implemented")
}

func TestSaveGameWorker(t *testing.T) {
	tests := []struct {
		name      string
		repoErr   error
		wantSaves int
	}{
		{name: "saved", wantSaves: 1},
		{name: "repository error", repoErr: fmt.Errorf("disk full"), wantSaves: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			repo := &memoryRepository{err: tt.repoErr}
			saveChan := make(chan SaveGameRequest, 1)
			worker := NewSaveGameWorker(NewSaveGameWorkerOptions{
				Repository: repo,
				SaveChan:   saveChan,
			})
			go worker.Start(ctx)

			done := make(chan error, 1)
			saveChan <- SaveGameRequest{
				Save: &types.SaveGame{SavePoint: types.SavePoint{ActiveLevel: "firstLevel"}},
				Done: done,
			}

			select {
			case err := <-done:
				assert.Equal(t, tt.repoErr, err)
			case <-time.After(time.Second):
				require.Fail(t, "save was not processed")
			}

			repo.mu.Lock()
			defer repo.mu.Unlock()
			assert.Len(t, repo.saves, tt.wantSaves)
		})
	}
}

func TestSaveGameWorker_stopsWhenChannelCloses(t *testing.T) {
	saveChan := make(chan SaveGameRequest)
	worker := NewSaveGameWorker(NewSaveGameWorkerOptions{
		Repository: &memoryRepository{},
		SaveChan:   saveChan,
	})

	stopped := make(chan struct{})
	go func() {
		worker.Start(context.Background())
		close(stopped)
	}()
	close(saveChan)

	assert.Eventually(t, func() bool {
		select {
		case <-stopped:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

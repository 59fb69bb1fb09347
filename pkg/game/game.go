package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cbodonnell/greatescape/pkg/collisions"
	"github.com/cbodonnell/greatescape/pkg/game/constants"
	"github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/cbodonnell/greatescape/pkg/log"
	"github.com/cbodonnell/greatescape/pkg/repositories"
	"github.com/cbodonnell/greatescape/pkg/workers"
	"github.com/google/uuid"
)

// Engine owns the state of one play session: the world, the player,
// the active level and every interaction flag. It is not safe for
// concurrent use; Run serializes inputs and ticks on one goroutine.
type Engine struct {
	sessionID  string
	logger     *log.Logger
	repository repositories.Repository
	// saveChan is the save worker's queue while Run is active
	saveChan chan<- workers.SaveGameRequest
	rand     *rand.Rand

	world       types.World
	spaces      map[string]*collisions.LevelSpace
	activeLevel string
	player      *types.PlayerState

	panelOpen    bool
	panelClosed  bool
	buttonBuffer []int
	codeTarget   []int

	gameEnded   bool
	chestWindow *countdown
	message     *timedMessage
	lastTick    time.Time
}

// NewEngineOptions contains options shared by NewGame and NewGameFromSave.
type NewEngineOptions struct {
	// Repository receives explicit saves; Save fails when it is nil
	Repository repositories.Repository
	// Rand draws the panel code; seeded from the runtime when nil
	Rand *rand.Rand
	// Logger defaults to the package logger
	Logger *log.Logger
	// SessionID defaults to a new random UUID
	SessionID string
}

// NewGame starts a session on level levelNumber (1 to 4) with the
// player at that level's start position. The engine takes ownership
// of world.
func NewGame(levelNumber int, world types.World, opts NewEngineOptions) (*Engine, error) {
	if levelNumber < 1 || levelNumber > len(constants.LevelOrder) {
		return nil, fmt.Errorf("level number %d is out of range 1..%d", levelNumber, len(constants.LevelOrder))
	}
	activeLevel := constants.LevelOrder[levelNumber-1]
	level, ok := world[activeLevel]
	if !ok || level == nil {
		return nil, fmt.Errorf("level %s is not loaded", activeLevel)
	}

	e := newEngine(world, activeLevel, opts)
	e.player = types.NewPlayerState(level.StartX, level.StartY, level.StartAnimationPhase)
	e.logger.Info("Started new game on %s at (%d,%d)", activeLevel, e.player.X, e.player.Y)
	return e, nil
}

// NewGameFromSave resumes a session from a save. The world is restored
// as saved and the player stands at the saved position, idle, on the
// first animation frame. Per-level start positions are not used.
func NewGameFromSave(save types.SaveGame, opts NewEngineOptions) (*Engine, error) {
	if len(save.World) == 0 {
		return nil, fmt.Errorf("save has no world")
	}
	point := save.SavePoint
	if level, ok := save.World[point.ActiveLevel]; !ok || level == nil {
		return nil, fmt.Errorf("saved level %s is not in the saved world", point.ActiveLevel)
	}

	e := newEngine(save.World.Copy(), point.ActiveLevel, opts)
	e.player = types.NewPlayerState(point.PlayerX, point.PlayerY, 0)
	e.logger.Info("Loaded game on %s at (%d,%d) saved by session %s", point.ActiveLevel, point.PlayerX, point.PlayerY, save.SessionID)
	return e, nil
}

func newEngine(world types.World, activeLevel string, opts NewEngineOptions) *Engine {
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	spaces := make(map[string]*collisions.LevelSpace, len(world))
	for name, level := range world {
		if level == nil {
			continue
		}
		spaces[name] = collisions.NewLevelSpace(level)
	}

	return &Engine{
		sessionID:   sessionID,
		logger:      logger.With("session", sessionID),
		repository:  opts.Repository,
		rand:        r,
		world:       world,
		spaces:      spaces,
		activeLevel: activeLevel,
	}
}

func (e *Engine) SessionID() string {
	return e.sessionID
}

// Player returns a copy of the player state.
func (e *Engine) Player() types.PlayerState {
	return *e.player.Copy()
}

func (e *Engine) ActiveLevel() string {
	return e.activeLevel
}

// Level returns the active level's data for drawing. Callers must not
// modify it.
func (e *Engine) Level() *types.LevelData {
	return e.world[e.activeLevel]
}

// Item looks up a tile item by level and key.
func (e *Engine) Item(level, key string) (*types.TileItem, bool) {
	data, ok := e.world[level]
	if !ok || data == nil {
		return nil, false
	}
	item, ok := data.Tiles[key]
	if !ok || item == nil {
		return nil, false
	}
	return item, true
}

func (e *Engine) PanelOpen() bool {
	return e.panelOpen
}

func (e *Engine) PanelClosed() bool {
	return e.panelClosed
}

func (e *Engine) GameEnded() bool {
	return e.gameEnded
}

// Snapshot returns a save of the current session that shares no state
// with the engine.
func (e *Engine) Snapshot() *types.SaveGame {
	savedAt := e.lastTick
	if savedAt.IsZero() {
		savedAt = time.Now()
	}
	return &types.SaveGame{
		SessionID: e.sessionID,
		SavedAt:   savedAt,
		World:     e.world.Copy(),
		SavePoint: types.SavePoint{
			ActiveLevel: e.activeLevel,
			PlayerX:     e.player.X,
			PlayerY:     e.player.Y,
		},
	}
}

// Save writes the world and the save point to the repository. The
// engine state is not modified and a failed save is not retried.
// While Run has a save worker the save is queued behind any autosave
// and Save waits for its outcome.
func (e *Engine) Save(ctx context.Context) error {
	if e.saveChan != nil {
		return e.saveThroughWorker(ctx)
	}
	if e.repository == nil {
		return fmt.Errorf("no repository configured")
	}
	if err := e.repository.SaveGame(ctx, e.Snapshot()); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	e.logger.Info("Saved game on %s at (%d,%d)", e.activeLevel, e.player.X, e.player.Y)
	return nil
}

func (e *Engine) saveThroughWorker(ctx context.Context) error {
	done := make(chan error, 1)
	select {
	case e.saveChan <- workers.SaveGameRequest{Save: e.Snapshot(), Done: done}:
	case <-ctx.Done():
		return fmt.Errorf("failed to queue save: %w", ctx.Err())
	}

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("failed to wait for save: %w", ctx.Err())
	}
	e.logger.Info("Saved game on %s at (%d,%d)", e.activeLevel, e.player.X, e.player.Y)
	return nil
}

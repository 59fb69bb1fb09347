package game

import (
	"time"

	"github.com/cbodonnell/greatescape/pkg/game/constants"
	"github.com/cbodonnell/greatescape/pkg/game/types"
)

// countdown is a timer polled once per tick. It starts on the first
// tick that observes it.
type countdown struct {
	duration  time.Duration
	startedAt time.Time
}

// poll returns the whole seconds left, never below zero.
func (c *countdown) poll(now time.Time) int {
	if c.startedAt.IsZero() {
		c.startedAt = now
	}
	return c.remaining(now)
}

// remaining is poll without starting the countdown.
func (c *countdown) remaining(now time.Time) int {
	if c.startedAt.IsZero() {
		return int(c.duration / time.Second)
	}
	elapsed := int(now.Sub(c.startedAt) / time.Second)
	return max(int(c.duration/time.Second)-elapsed, 0)
}

type timedMessage struct {
	text string
	countdown
}

// StartChestWindow starts the timed chest countdown. It reports false
// when one is already running.
func (e *Engine) StartChestWindow() bool {
	if e.chestWindow != nil {
		return false
	}
	e.chestWindow = &countdown{duration: constants.ChestWindowDuration}
	e.logger.Info("Chest window started for %s", constants.ChestWindowDuration)
	return true
}

// ChestWindowRemaining returns the seconds left on the timed chest, and
// whether the countdown is running.
func (e *Engine) ChestWindowRemaining() (int, bool) {
	if e.chestWindow == nil {
		return 0, false
	}
	return e.chestWindow.remaining(e.lastTick), true
}

// pollChestWindow expires the timed chest. A chest whose key was never
// taken closes again; an emptied chest retires the button.
func (e *Engine) pollChestWindow(now time.Time) {
	if e.chestWindow == nil || e.chestWindow.poll(now) > 0 {
		return
	}

	if chest, ok := e.Item(constants.ChestWindowLevel, constants.ChestWindowTileKey); ok {
		switch chest.State {
		case types.TileStateHasKey:
			e.CloseChest(constants.ChestWindowLevel)
		case types.TileStateCollected:
			e.UnsetTouching(constants.ButtonLevel, constants.ButtonSpriteID)
		}
	}
	e.chestWindow = nil
	e.logger.Info("Chest window expired")
}

func (e *Engine) showMessage(text string) {
	e.message = &timedMessage{
		text:      text,
		countdown: countdown{duration: constants.MessageDuration},
	}
}

// Message returns the interaction message to display, if any.
func (e *Engine) Message() (string, bool) {
	if e.message == nil {
		return "", false
	}
	return e.message.text, true
}

func (e *Engine) pollMessage(now time.Time) {
	if e.message != nil && e.message.poll(now) == 0 {
		e.message = nil
	}
}

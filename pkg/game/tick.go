package game

import (
	"time"

	"github.com/cbodonnell/greatescape/pkg/game/constants"
)

// Tick advances the session by one frame: level transitions, the panel
// code, the end condition and then the timers.
func (e *Engine) Tick(now time.Time) {
	e.lastTick = now
	e.checkLevelTransition()
	e.checkPanelCode()
	e.checkEndTrigger()
	e.pollChestWindow(now)
	e.pollMessage(now)
}

// checkLevelTransition moves the player through the first door they
// touch. Doors to levels that are not loaded are skipped.
func (e *Engine) checkLevelTransition() {
	for _, hit := range e.hits(e.activeLevel, e.player.Box(), 0, 0, isDoor) {
		target := hit.Item.DoorTargetLevel
		if level, ok := e.world[target]; !ok || level == nil {
			e.logger.Warn("Door %s in %s leads to unknown level %q", hit.Key, e.activeLevel, target)
			continue
		}
		e.logger.Info("Moving from %s to %s at (%d,%d)", e.activeLevel, target, hit.Item.DoorTargetX, hit.Item.DoorTargetY)
		e.activeLevel = target
		e.player.X = hit.Item.DoorTargetX
		e.player.Y = hit.Item.DoorTargetY
		return
	}
}

// checkEndTrigger ends the game when the player touches an end trigger
// on the terminal level. The flag is never cleared.
func (e *Engine) checkEndTrigger() {
	if e.gameEnded || e.activeLevel != constants.TerminalLevel {
		return
	}
	if hit, ok := e.firstHit(e.activeLevel, e.player.Box(), 0, 0, isEndTrigger); ok {
		e.gameEnded = true
		e.logger.Info("Game ended at %s[%d]", hit.Key, hit.Index)
	}
}

package game

import (
	"github.com/cbodonnell/greatescape/pkg/game/constants"
	"github.com/cbodonnell/greatescape/pkg/game/types"
)

// Move steps the player in direction d unless the step would bring the
// player box into contact with a collidable tile of the active level.
// It reports whether the player moved. A blocked move changes nothing,
// not even facing or animation phase.
func (e *Engine) Move(d types.Direction) bool {
	if d == types.DirectionIdle {
		return false
	}

	dx, dy := d.Delta(constants.PlayerStep)
	candidate := e.player.Box().Offset(dx, dy)
	if hit, ok := e.firstHit(e.activeLevel, candidate, 0, 0, isCollidable); ok {
		e.logger.Trace("Move %s from (%d,%d) blocked by %s[%d]", d, e.player.X, e.player.Y, hit.Key, hit.Index)
		return false
	}

	e.player.Move(d)
	return true
}

// Stop puts the player's walk cycle back on its resting frame.
func (e *Engine) Stop() {
	e.player.Stop()
}

package game

import (
	"github.com/cbodonnell/greatescape/pkg/game/constants"
	"github.com/cbodonnell/greatescape/pkg/game/types"
)

// touchableHit finds the first touchable item whose interaction box
// overlaps the player. Interaction boxes sit 10 right and 20 below
// the tile.
func (e *Engine) touchableHit() (tileHit, bool) {
	return e.firstHit(e.activeLevel, e.player.Box(), constants.InteractionOffsetX, constants.InteractionOffsetY, isTouchable)
}

// NearestTouchable returns the sprite of the first touchable item the
// player can interact with.
func (e *Engine) NearestTouchable() (string, bool) {
	hit, ok := e.touchableHit()
	if !ok {
		return "", false
	}
	return hit.Item.SpriteID, true
}

// TouchablePrompt reports whether an interaction is available and
// returns every coordinate of the matched item so an indicator can be
// drawn over each instance.
func (e *Engine) TouchablePrompt() (bool, []types.Coord) {
	hit, ok := e.touchableHit()
	if !ok {
		return false, nil
	}
	coords := make([]types.Coord, len(hit.Item.Coords))
	copy(coords, hit.Item.Coords)
	return true, coords
}

package game

import (
	"github.com/cbodonnell/greatescape/pkg/game/types"
)

// tileHit is one tile instance that matched a query.
type tileHit struct {
	Key   string
	Index int
	Item  *types.TileItem
}

func isCollidable(item *types.TileItem) bool { return item.IsCollidable }
func isDoor(item *types.TileItem) bool       { return item.IsDoor }
func isTouchable(item *types.TileItem) bool  { return item.IsTouchable }
func isEndTrigger(item *types.TileItem) bool { return item.IsEndTrigger }

// hits returns the instances of level whose box, shifted by (dx, dy),
// intersects box and whose item satisfies match. The spatial index only
// supplies candidates; flags are read from the live items.
func (e *Engine) hits(level string, box types.Box, dx, dy int, match func(*types.TileItem) bool) []tileHit {
	data, ok := e.world[level]
	if !ok || data == nil {
		return nil
	}
	space, ok := e.spaces[level]
	if !ok {
		return nil
	}

	var result []tileHit
	for _, ref := range space.Candidates(box.Offset(-dx, -dy)) {
		item, ok := data.Tiles[ref.TileKey]
		if !ok || item == nil || ref.Index >= len(item.Coords) || !match(item) {
			continue
		}
		if item.InstanceBox(ref.Index).Offset(dx, dy).Intersects(box) {
			result = append(result, tileHit{Key: ref.TileKey, Index: ref.Index, Item: item})
		}
	}
	return result
}

// firstHit returns the first match in tile key and coordinate order.
func (e *Engine) firstHit(level string, box types.Box, dx, dy int, match func(*types.TileItem) bool) (tileHit, bool) {
	hits := e.hits(level, box, dx, dy, match)
	if len(hits) == 0 {
		return tileHit{}, false
	}
	return hits[0], true
}

package collisions

import (
	"sort"

	"github.com/cbodonnell/greatescape/pkg/game/constants"
	"github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/solarlune/resolv"
)

const (
	CollisionSpaceTagTile  string = "tile"
	CollisionSpaceTagQuery string = "query"
)

// InstanceRef points at one placed instance of a tile item.
type InstanceRef struct {
	TileKey string
	Index   int
}

// LevelSpace is a spatial hash over every tile instance of one level.
// It only narrows the search: callers still run the exact box test
// against the live item flags, since those change during play while
// tile geometry does not.
type LevelSpace struct {
	space   *resolv.Space
	originX int
	originY int
	refs    map[*resolv.Object]InstanceRef
}

// NewLevelSpace indexes every tile instance of level. The space is
// sized to the level's bounds plus one cell of margin, shifted so that
// negative coordinates still land inside it.
func NewLevelSpace(level *types.LevelData) *LevelSpace {
	cell := constants.CollisionCellSize
	minX, minY, maxX, maxY := bounds(level)

	s := &LevelSpace{
		originX: minX - cell,
		originY: minY - cell,
		refs:    make(map[*resolv.Object]InstanceRef),
	}
	s.space = resolv.NewSpace(maxX-minX+2*cell, maxY-minY+2*cell, cell, cell)

	for _, key := range level.TileKeys() {
		item := level.Tiles[key]
		if item == nil {
			continue
		}
		for i := range item.Coords {
			b := item.InstanceBox(i)
			obj := resolv.NewObject(float64(b.X-s.originX), float64(b.Y-s.originY), float64(b.Width), float64(b.Height), CollisionSpaceTagTile)
			s.space.Add(obj)
			s.refs[obj] = InstanceRef{TileKey: key, Index: i}
		}
	}

	return s
}

// Candidates returns the instances sharing a cell with box, including
// instances that only touch its edges. Results are ordered by tile key
// and then coordinate index.
func (s *LevelSpace) Candidates(box types.Box) []InstanceRef {
	b := box.Inflate(1)
	query := resolv.NewObject(float64(b.X-s.originX), float64(b.Y-s.originY), float64(b.Width), float64(b.Height), CollisionSpaceTagQuery)
	s.space.Add(query)
	defer s.space.Remove(query)

	collision := query.Check(0, 0, CollisionSpaceTagTile)
	if collision == nil {
		return nil
	}

	refs := make([]InstanceRef, 0, len(collision.Objects))
	for _, obj := range collision.Objects {
		if ref, ok := s.refs[obj]; ok {
			refs = append(refs, ref)
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].TileKey != refs[j].TileKey {
			return refs[i].TileKey < refs[j].TileKey
		}
		return refs[i].Index < refs[j].Index
	})
	return refs
}

// Len returns the number of indexed instances.
func (s *LevelSpace) Len() int {
	return len(s.refs)
}

func bounds(level *types.LevelData) (minX, minY, maxX, maxY int) {
	first := true
	for _, item := range level.Tiles {
		if item == nil {
			continue
		}
		for i := range item.Coords {
			b := item.InstanceBox(i)
			if first {
				minX, minY, maxX, maxY = b.X, b.Y, b.MaxX(), b.MaxY()
				first = false
				continue
			}
			minX = min(minX, b.X)
			minY = min(minY, b.Y)
			maxX = max(maxX, b.MaxX())
			maxY = max(maxY, b.MaxY())
		}
	}
	return minX, minY, maxX, maxY
}

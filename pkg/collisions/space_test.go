package collisions

import (
	"testing"

	"github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func testLevel() *types.LevelData {
	return &types.LevelData{
		Tiles: map[string]*types.TileItem{
			"wall": {
				SpriteID:     "wall",
				Coords:       []types.Coord{{X: 0, Y: 0}, {X: 64, Y: 0}, {X: 128, Y: 0}},
				Width:        64,
				Height:       64,
				IsCollidable: true,
			},
			"table": {
				SpriteID:     "table",
				Coords:       []types.Coord{{X: 128, Y: 128}},
				Width:        64,
				Height:       64,
				IsCollidable: true,
			},
			"rock": {
				SpriteID: "rock",
				Coords:   []types.Coord{{X: -128, Y: -64}},
				Width:    32,
				Height:   32,
			},
		},
	}
}

func TestLevelSpace_Candidates(t *testing.T) {
	s := NewLevelSpace(testLevel())
	assert.Equal(t, 5, s.Len())

	tests := []struct {
		name string
		box  types.Box
		want []InstanceRef
	}{
		{
			name: "overlapping table",
			box:  types.NewBox(118, 128, 48, 53),
			want: []InstanceRef{{TileKey: "table", Index: 0}},
		},
		{
			name: "touching table from the left",
			box:  types.NewBox(80, 150, 48, 53),
			want: []InstanceRef{{TileKey: "table", Index: 0}},
		},
		{
			name: "spanning two wall instances",
			box:  types.NewBox(100, 20, 48, 20),
			want: []InstanceRef{{TileKey: "wall", Index: 1}, {TileKey: "wall", Index: 2}},
		},
		{
			name: "negative coordinates",
			box:  types.NewBox(-120, -60, 10, 10),
			want: []InstanceRef{{TileKey: "rock", Index: 0}},
		},
		{
			name: "outside the level",
			box:  types.NewBox(5000, 5000, 48, 53),
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Candidates(tt.box)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
			if tt.want == nil {
				assert.Empty(t, got)
			}
		})
	}
}

func TestLevelSpace_CandidatesAreOrdered(t *testing.T) {
	s := NewLevelSpace(testLevel())

	got := s.Candidates(types.NewBox(0, 0, 200, 200))
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		assert.True(t, prev.TileKey < cur.TileKey || (prev.TileKey == cur.TileKey && prev.Index < cur.Index))
	}
}

func TestLevelSpace_repeatedQueries(t *testing.T) {
	s := NewLevelSpace(testLevel())
	box := types.NewBox(118, 128, 48, 53)

	first := s.Candidates(box)
	second := s.Candidates(box)

	assert.Equal(t, first, second)
}

func TestLevelSpace_emptyLevel(t *testing.T) {
	s := NewLevelSpace(&types.LevelData{Tiles: map[string]*types.TileItem{}})
	assert.Empty(t, s.Candidates(types.NewBox(0, 0, 48, 53)))
}

func TestLevelSpace_skipsNilItems(t *testing.T) {
	level := testLevel()
	level.Tiles["missing"] = nil

	var s *LevelSpace
	assert.NotPanics(t, func() { s = NewLevelSpace(level) })
	for _, ref := range s.Candidates(types.NewBox(118, 128, 48, 53)) {
		assert.NotEqual(t, "missing", ref.TileKey)
	}
	assert.NotEmpty(t, s.Candidates(types.NewBox(118, 128, 48, 53)))
}

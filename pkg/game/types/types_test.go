package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_Intersects(t *testing.T) {
	tile := NewBox(128, 128, 64, 64)
	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{name: "overlap", other: NewBox(118, 128, 48, 53), want: true},
		{name: "touching left edge", other: NewBox(80, 150, 48, 53), want: true},
		{name: "touching bottom edge", other: NewBox(150, 192, 48, 53), want: true},
		{name: "gap of one", other: NewBox(79, 150, 48, 53), want: false},
		{name: "far away", other: NewBox(400, 400, 48, 53), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tile.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(tile))
		})
	}
}

func TestPlayerState_Move(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		wantX     int
		wantY     int
	}{
		{name: "up", direction: DirectionUp, wantX: 256, wantY: 246},
		{name: "down", direction: DirectionDown, wantX: 256, wantY: 266},
		{name: "left", direction: DirectionLeft, wantX: 246, wantY: 256},
		{name: "right", direction: DirectionRight, wantX: 266, wantY: 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayerState(256, 256, 0)
			p.Move(tt.direction)
			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, tt.wantY, p.Y)
			assert.Equal(t, tt.direction, p.Facing)
			assert.Equal(t, 1, p.AnimationPhase)
		})
	}
}

func TestPlayerState_animationCycle(t *testing.T) {
	p := NewPlayerState(0, 0, 0)

	var phases []int
	for i := 0; i < 5; i++ {
		p.Move(DirectionRight)
		phases = append(phases, p.AnimationPhase)
	}
	assert.Equal(t, []int{1, 2, 1, 2, 1}, phases)

	p.Stop()
	assert.Equal(t, 0, p.AnimationPhase)
	assert.Equal(t, DirectionRight, p.Facing)
}

func TestPlayerState_SpriteName(t *testing.T) {
	p := NewPlayerState(0, 0, 0)
	assert.Equal(t, "godown0.png", p.SpriteName())

	p.Move(DirectionLeft)
	assert.Equal(t, "goleft1.png", p.SpriteName())
	p.Move(DirectionUp)
	assert.Equal(t, "goup2.png", p.SpriteName())
	p.Stop()
	assert.Equal(t, "goup0.png", p.SpriteName())
}

func TestPlayerState_Inventory(t *testing.T) {
	p := NewPlayerState(0, 0, 0)
	assert.False(t, p.HasInInventory(1, 2))

	p.AddToInventory(2)
	p.AddToInventory(1)
	p.AddToInventory(1)
	assert.True(t, p.HasInInventory(1, 2))
	assert.Equal(t, []int{1, 2}, p.InventoryItems())

	c := p.Copy()
	c.AddToInventory(3)
	assert.False(t, p.HasInInventory(3))
}

func TestTileItem_Apply(t *testing.T) {
	tests := []struct {
		name           string
		item           TileItem
		event          TileEvent
		wantChanged    bool
		wantState      TileState
		wantSprite     string
		wantTouchable  bool
		wantCollidable bool
	}{
		{
			name:          "open closed chest",
			item:          TileItem{SpriteID: "chest-closed", Capability: CapabilityChest, State: TileStateClosed},
			event:         TileEventOpen,
			wantChanged:   true,
			wantState:     TileStateHasKey,
			wantSprite:    "chest-with-key",
			wantTouchable: true,
		},
		{
			name:        "collect from chest with key",
			item:        TileItem{SpriteID: "chest-with-key", Capability: CapabilityChest, State: TileStateHasKey, IsTouchable: true},
			event:       TileEventCollect,
			wantChanged: true,
			wantState:   TileStateCollected,
			wantSprite:  "chest-empty-open",
		},
		{
			name:        "close collected chest",
			item:        TileItem{SpriteID: "chest-empty-open", Capability: CapabilityChest, State: TileStateCollected},
			event:       TileEventClose,
			wantChanged: true,
			wantState:   TileStateClosed,
			wantSprite:  "chest-closed",
		},
		{
			name:        "collect from closed chest is ignored",
			item:        TileItem{SpriteID: "chest-closed", Capability: CapabilityChest, State: TileStateClosed},
			event:       TileEventCollect,
			wantChanged: false,
			wantState:   TileStateClosed,
			wantSprite:  "chest-closed",
		},
		{
			name:           "open closed door",
			item:           TileItem{SpriteID: "door-closed", Capability: CapabilityDoor, State: TileStateClosed, IsCollidable: true},
			event:          TileEventOpen,
			wantChanged:    true,
			wantState:      TileStateOpen,
			wantSprite:     "door-open",
			wantCollidable: false,
		},
		{
			name:        "open already open door",
			item:        TileItem{SpriteID: "door-open", Capability: CapabilityDoor, State: TileStateOpen},
			event:       TileEventOpen,
			wantChanged: false,
			wantState:   TileStateOpen,
			wantSprite:  "door-open",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.item
			assert.Equal(t, tt.wantChanged, item.Apply(tt.event))
			assert.Equal(t, tt.wantState, item.State)
			assert.Equal(t, tt.wantSprite, item.SpriteID)
			assert.Equal(t, tt.wantTouchable, item.IsTouchable)
			assert.Equal(t, tt.wantCollidable, item.IsCollidable)
		})
	}
}

func TestTileItem_Normalize(t *testing.T) {
	inferred := &TileItem{SpriteID: "chest-with-key"}
	inferred.Normalize()
	assert.Equal(t, CapabilityChest, inferred.Capability)
	assert.Equal(t, TileStateHasKey, inferred.State)

	synced := &TileItem{SpriteID: "whatever", Capability: CapabilityDoor, State: TileStateOpen}
	synced.Normalize()
	assert.Equal(t, "door-open", synced.SpriteID)

	plain := &TileItem{SpriteID: "wall"}
	plain.Normalize()
	assert.Equal(t, CapabilityNone, plain.Capability)
	assert.Equal(t, TileStateNone, plain.State)
}

func TestWorld_Copy(t *testing.T) {
	w := World{
		"firstLevel": {
			Tiles: map[string]*TileItem{
				"Chest": {SpriteID: "chest-closed", Coords: []Coord{{X: 1, Y: 2}}, Width: 64, Height: 64},
			},
		},
	}
	c := w.Copy()
	c["firstLevel"].Tiles["Chest"].SpriteID = "chest-with-key"
	c["firstLevel"].Tiles["Chest"].Coords[0].X = 99

	assert.Equal(t, "chest-closed", w["firstLevel"].Tiles["Chest"].SpriteID)
	assert.Equal(t, 1, w["firstLevel"].Tiles["Chest"].Coords[0].X)
}

func TestWorld_Copy_skipsNilEntries(t *testing.T) {
	w := World{
		"firstLevel": {
			Tiles: map[string]*TileItem{
				"table": {SpriteID: "table", Coords: []Coord{{X: 1, Y: 2}}, Width: 64, Height: 64},
				"ghost": nil,
			},
		},
		"secondLevel": nil,
	}

	var c World
	require.NotPanics(t, func() { c = w.Copy() })
	require.NotPanics(t, func() { w.Normalize() })

	assert.NotContains(t, c, "secondLevel")
	assert.NotContains(t, c["firstLevel"].Tiles, "ghost")
	assert.Contains(t, c["firstLevel"].Tiles, "table")
}

func TestPlayerState_readersOnValues(t *testing.T) {
	p := NewPlayerState(10, 20, 0)
	p.AddToInventory(2)
	p.Move(DirectionLeft)

	v := *p.Copy()

	assert.Equal(t, []int{2}, v.InventoryItems())
	assert.True(t, v.HasInInventory(2))
	assert.Equal(t, "goleft1.png", v.SpriteName())
	assert.Equal(t, NewBox(0, 20, 48, 53), v.Box())
}

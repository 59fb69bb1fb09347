package types

import "sort"

// Capability tags what a tile does when the player interacts with it.
type Capability string

const (
	CapabilityNone          Capability = ""
	CapabilityPanel         Capability = "panel"
	CapabilityChest         Capability = "chest"
	CapabilityCraftingTable Capability = "crafting-table"
	CapabilityButton        Capability = "button"
	CapabilityDoor          Capability = "door"
)

// TileState is the state of a chest or a lockable door.
type TileState string

const (
	TileStateNone      TileState = ""
	TileStateClosed    TileState = "closed"
	TileStateHasKey    TileState = "has-key"
	TileStateCollected TileState = "collected"
	TileStateOpen      TileState = "open"
)

// TileEvent drives a TileState transition.
type TileEvent string

const (
	TileEventOpen    TileEvent = "open"
	TileEventCollect TileEvent = "collect"
	TileEventClose   TileEvent = "close"
)

type tileTransition struct {
	capability Capability
	event      TileEvent
	from       TileState
}

var tileTransitions = map[tileTransition]TileState{
	{CapabilityChest, TileEventOpen, TileStateClosed}:     TileStateHasKey,
	{CapabilityChest, TileEventCollect, TileStateHasKey}:  TileStateCollected,
	{CapabilityChest, TileEventClose, TileStateHasKey}:    TileStateClosed,
	{CapabilityChest, TileEventClose, TileStateCollected}: TileStateClosed,
	{CapabilityDoor, TileEventOpen, TileStateClosed}:      TileStateOpen,
}

type tileLook struct {
	capability Capability
	state      TileState
}

var stateSprites = map[tileLook]string{
	{CapabilityChest, TileStateClosed}:    "chest-closed",
	{CapabilityChest, TileStateHasKey}:    "chest-with-key",
	{CapabilityChest, TileStateCollected}: "chest-empty-open",
	{CapabilityDoor, TileStateClosed}:     "door-closed",
	{CapabilityDoor, TileStateOpen}:       "door-open",
}

// spriteLooks infers capability and state for definitions that only name a sprite.
var spriteLooks = map[string]tileLook{
	"chest-closed":     {CapabilityChest, TileStateClosed},
	"chest-with-key":   {CapabilityChest, TileStateHasKey},
	"chest-empty-open": {CapabilityChest, TileStateCollected},
	"door-closed":      {CapabilityDoor, TileStateClosed},
	"door-open":        {CapabilityDoor, TileStateOpen},
	"panel":            {CapabilityPanel, TileStateNone},
	"button":           {CapabilityButton, TileStateNone},
	"crafting-table":   {CapabilityCraftingTable, TileStateNone},
}

// SpriteForState returns the sprite drawn for a capability in a state.
func SpriteForState(capability Capability, state TileState) (string, bool) {
	sprite, ok := stateSprites[tileLook{capability, state}]
	return sprite, ok
}

// TileItem is one kind of tile placed at one or more coordinates.
// Every instance shares the sprite, size and behavior flags.
type TileItem struct {
	SpriteID        string     `json:"spriteId" yaml:"spriteId"`
	Coords          []Coord    `json:"coords" yaml:"coords"`
	Width           int        `json:"width" yaml:"width"`
	Height          int        `json:"height" yaml:"height"`
	IsDoor          bool       `json:"isDoor" yaml:"isDoor"`
	DoorTargetLevel string     `json:"doorTargetLevel" yaml:"doorTargetLevel"`
	DoorTargetX     int        `json:"doorTargetX" yaml:"doorTargetX"`
	DoorTargetY     int        `json:"doorTargetY" yaml:"doorTargetY"`
	IsCollidable    bool       `json:"isCollidable" yaml:"isCollidable"`
	IsTouchable     bool       `json:"isTouchable" yaml:"isTouchable"`
	IsEndTrigger    bool       `json:"isEndTrigger" yaml:"isEndTrigger"`
	Capability      Capability `json:"capability,omitempty" yaml:"capability,omitempty"`
	State           TileState  `json:"state,omitempty" yaml:"state,omitempty"`
}

// InstanceBox returns the box of the instance placed at Coords[i].
func (t *TileItem) InstanceBox(i int) Box {
	c := t.Coords[i]
	return NewBox(c.X, c.Y, t.Width, t.Height)
}

// Normalize fills in capability and state from the sprite when a
// definition omits them, and syncs the sprite when a state is given.
func (t *TileItem) Normalize() {
	if t.Capability == CapabilityNone {
		if look, ok := spriteLooks[t.SpriteID]; ok {
			t.Capability = look.capability
			t.State = look.state
		}
		return
	}
	if sprite, ok := SpriteForState(t.Capability, t.State); ok {
		t.SpriteID = sprite
	}
}

// Apply runs event through the transition table. It reports whether
// the item changed; events with no matching transition are ignored.
func (t *TileItem) Apply(event TileEvent) bool {
	to, ok := tileTransitions[tileTransition{t.Capability, event, t.State}]
	if !ok {
		return false
	}
	t.State = to
	if sprite, ok := SpriteForState(t.Capability, to); ok {
		t.SpriteID = sprite
	}
	switch t.Capability {
	case CapabilityChest:
		t.IsTouchable = to == TileStateHasKey
	case CapabilityDoor:
		t.IsCollidable = to != TileStateOpen
	}
	return true
}

func (t *TileItem) Copy() *TileItem {
	c := *t
	c.Coords = make([]Coord, len(t.Coords))
	copy(c.Coords, t.Coords)
	return &c
}

// LevelData is the tile set and player start of one level.
type LevelData struct {
	Tiles               map[string]*TileItem `json:"tiles" yaml:"tiles"`
	StartX              int                  `json:"startX" yaml:"startX"`
	StartY              int                  `json:"startY" yaml:"startY"`
	StartAnimationPhase int                  `json:"startAnimationPhase" yaml:"startAnimationPhase"`
}

// TileKeys returns the tile keys in sorted order so scans are deterministic.
func (l *LevelData) TileKeys() []string {
	keys := make([]string, 0, len(l.Tiles))
	for k := range l.Tiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (l *LevelData) Normalize() {
	for _, item := range l.Tiles {
		if item == nil {
			continue
		}
		item.Normalize()
	}
}

func (l *LevelData) Copy() *LevelData {
	c := &LevelData{
		Tiles:               make(map[string]*TileItem, len(l.Tiles)),
		StartX:              l.StartX,
		StartY:              l.StartY,
		StartAnimationPhase: l.StartAnimationPhase,
	}
	for k, item := range l.Tiles {
		if item == nil {
			continue
		}
		c.Tiles[k] = item.Copy()
	}
	return c
}

package game

import (
	"github.com/cbodonnell/greatescape/pkg/game/constants"
	"github.com/cbodonnell/greatescape/pkg/game/types"
)

// InteractionResult describes what an Interact call did.
type InteractionResult struct {
	Capability types.Capability
	TileKey    string
	SpriteID   string
	// Message is also shown through Message for a few seconds
	Message string
}

type interactionHandler func(e *Engine, key string, item *types.TileItem) InteractionResult

var interactionHandlers = map[types.Capability]interactionHandler{
	types.CapabilityPanel:         (*Engine).interactPanel,
	types.CapabilityChest:         (*Engine).interactChest,
	types.CapabilityCraftingTable: (*Engine).interactCraftingTable,
	types.CapabilityButton:        (*Engine).interactButton,
}

// Interact triggers the item the player is next to. It reports false
// when nothing touchable is in reach or the item has no behavior.
func (e *Engine) Interact() (InteractionResult, bool) {
	hit, ok := e.touchableHit()
	if !ok {
		return InteractionResult{}, false
	}
	handler, ok := interactionHandlers[hit.Item.Capability]
	if !ok {
		e.logger.Debug("No interaction for %s in %s", hit.Key, e.activeLevel)
		return InteractionResult{}, false
	}

	result := handler(e, hit.Key, hit.Item)
	result.Capability = hit.Item.Capability
	result.TileKey = hit.Key
	if result.SpriteID == "" {
		result.SpriteID = hit.Item.SpriteID
	}
	if result.Message != "" {
		e.showMessage(result.Message)
	}
	return result, true
}

func (e *Engine) interactPanel(key string, item *types.TileItem) InteractionResult {
	if e.panelClosed {
		return InteractionResult{}
	}
	e.OpenPanel()
	return InteractionResult{}
}

func (e *Engine) interactChest(key string, item *types.TileItem) InteractionResult {
	if item.State != types.TileStateHasKey {
		return InteractionResult{}
	}
	e.CollectKey(e.activeLevel)
	e.PutInInventory(e.activeLevel)
	return InteractionResult{SpriteID: item.SpriteID}
}

func (e *Engine) interactCraftingTable(key string, item *types.TileItem) InteractionResult {
	if !e.HasAssembledKey() {
		return InteractionResult{Message: constants.MessageKeyIncomplete}
	}
	e.OpenDoors(constants.CraftingLevel)
	return InteractionResult{Message: constants.MessageDoorUnlocked}
}

func (e *Engine) interactButton(key string, item *types.TileItem) InteractionResult {
	e.OpenChests(constants.ChestWindowLevel)
	e.StartChestWindow()
	return InteractionResult{Message: constants.MessageChestOpened}
}

// PutInInventory adds the key half found in level, if it has one.
func (e *Engine) PutInInventory(level string) {
	part, ok := constants.InventoryKeyParts[level]
	if !ok {
		return
	}
	e.player.AddToInventory(part)
	e.logger.Debug("Collected key part %d in %s", part, level)
}

// HasAssembledKey reports whether both key halves are in the inventory.
func (e *Engine) HasAssembledKey() bool {
	return e.player.HasInInventory(constants.InventoryKeyParts[constants.LevelSecond], constants.InventoryKeyParts[constants.LevelThird])
}

// CollectKey empties every chest in level that still holds a key.
func (e *Engine) CollectKey(level string) int {
	return e.applyTileEvent(level, types.CapabilityChest, types.TileEventCollect)
}

// OpenChests reveals the key in every closed chest in level.
func (e *Engine) OpenChests(level string) int {
	return e.applyTileEvent(level, types.CapabilityChest, types.TileEventOpen)
}

// CloseChest closes every open chest in level, with or without its key.
func (e *Engine) CloseChest(level string) int {
	return e.applyTileEvent(level, types.CapabilityChest, types.TileEventClose)
}

// OpenDoors unlocks every closed door in level so it no longer blocks.
func (e *Engine) OpenDoors(level string) int {
	return e.applyTileEvent(level, types.CapabilityDoor, types.TileEventOpen)
}

// UnsetTouching stops every item in level drawn with spriteID from
// responding to proximity.
func (e *Engine) UnsetTouching(level, spriteID string) int {
	data, ok := e.world[level]
	if !ok || data == nil {
		e.logger.Warn("Cannot unset touching %s: unknown level %s", spriteID, level)
		return 0
	}
	changed := 0
	for _, key := range data.TileKeys() {
		item := data.Tiles[key]
		if item == nil || item.SpriteID != spriteID || !item.IsTouchable {
			continue
		}
		item.IsTouchable = false
		changed++
	}
	e.logger.Debug("Unset touching on %d %s items in %s", changed, spriteID, level)
	return changed
}

// applyTileEvent runs event on every item of capability in level and
// returns how many changed. Unknown levels and items with no matching
// transition are left alone.
func (e *Engine) applyTileEvent(level string, capability types.Capability, event types.TileEvent) int {
	data, ok := e.world[level]
	if !ok || data == nil {
		e.logger.Warn("Cannot %s %s items: unknown level %s", event, capability, level)
		return 0
	}
	changed := 0
	for _, key := range data.TileKeys() {
		item := data.Tiles[key]
		if item == nil || item.Capability != capability {
			continue
		}
		if item.Apply(event) {
			changed++
		}
	}
	e.logger.Debug("Applied %s to %d %s items in %s", event, changed, capability, level)
	return changed
}

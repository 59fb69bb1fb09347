package constants

import "time"

const (
	// PlayerStep is the distance a player moves per movement intent
	PlayerStep int = 10
	// Player Width
	PlayerWidth int = 48
	// Player Height
	PlayerHeight int = 53
	// Player Starting X when a level does not define one
	PlayerStartingX int = 256
	// Player Starting Y when a level does not define one
	PlayerStartingY int = 256

	// InteractionOffsetX shifts a touchable tile's box to the right for proximity checks
	InteractionOffsetX int = 10
	// InteractionOffsetY shifts a touchable tile's box down for proximity checks
	InteractionOffsetY int = 20

	// CollisionCellSize is the cell size of the per-level spatial hash
	CollisionCellSize int = 32

	// ChestWindowDuration is how long the timed chest stays open
	ChestWindowDuration = 60 * time.Second
	// MessageDuration is how long an interaction message stays visible
	MessageDuration = 3 * time.Second

	// PanelCodeLength is the number of buttons in the panel code
	PanelCodeLength int = 3
)

// Level names in play order.
const (
	LevelFirst  = "firstLevel"
	LevelSecond = "secondLevel"
	LevelThird  = "thirdLevel"
	LevelFourth = "fourthLevel"
)

// LevelOrder maps a 1-based level number to its name.
var LevelOrder = []string{LevelFirst, LevelSecond, LevelThird, LevelFourth}

const (
	// PanelLevel holds the code panel
	PanelLevel = LevelSecond
	// PanelSpriteID is retired once the code is entered
	PanelSpriteID = "panel"
	// ButtonLevel holds the button that opens the timed chest
	ButtonLevel = LevelSecond
	// ButtonSpriteID is retired once the timed chest has been emptied
	ButtonSpriteID = "button"
	// ChestWindowLevel holds the timed chest
	ChestWindowLevel = LevelThird
	// ChestWindowTileKey is the tile key of the timed chest
	ChestWindowTileKey = "Chest"
	// CraftingLevel holds the crafting table and the door it unlocks
	CraftingLevel = LevelThird
	// TerminalLevel is the only level where end triggers are checked
	TerminalLevel = LevelFourth
)

// Interaction messages.
const (
	MessageDoorUnlocked  = "Door to the fourth room is open now"
	MessageKeyIncomplete = "You need two half of the key first"
	MessageChestOpened   = "Chest was opened in the third room. Get it before time runs out !!!"
	MessageGameEnded     = "Congratulation!"
)

// InventoryKeyParts maps a level to the key half found in it.
var InventoryKeyParts = map[string]int{
	LevelSecond: 1,
	LevelThird:  2,
}

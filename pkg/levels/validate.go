package levels

import (
	"fmt"

	"github.com/cbodonnell/greatescape/pkg/game/constants"
	"github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/pixil98/go-errors"
)

// Validate checks every level in names and reports all problems at once.
func Validate(world types.World, names []string) error {
	el := errors.NewErrorList()
	for _, name := range names {
		level, ok := world[name]
		if !ok || level == nil {
			el.Add(fmt.Errorf("level %s is missing", name))
			continue
		}
		el.Add(ValidateLevel(name, level, world))
	}

	if terminal, ok := world[constants.TerminalLevel]; ok && terminal != nil && !hasEndTrigger(terminal) {
		el.Add(fmt.Errorf("level %s has no end trigger", constants.TerminalLevel))
	}
	return el.Err()
}

// ValidateLevel checks one level. Door targets are resolved against world.
func ValidateLevel(name string, level *types.LevelData, world types.World) error {
	el := errors.NewErrorList()
	if level.StartAnimationPhase < 0 || level.StartAnimationPhase > 2 {
		el.Add(fmt.Errorf("%s: startAnimationPhase %d is out of range", name, level.StartAnimationPhase))
	}
	for _, key := range level.TileKeys() {
		el.Add(validateTile(fmt.Sprintf("%s/%s", name, key), level.Tiles[key], world))
	}
	return el.Err()
}

func validateTile(where string, item *types.TileItem, world types.World) error {
	if item == nil {
		return fmt.Errorf("%s: tile is empty", where)
	}

	el := errors.NewErrorList()
	if item.Width <= 0 || item.Height <= 0 {
		el.Add(fmt.Errorf("%s: size %dx%d must be positive", where, item.Width, item.Height))
	}
	if len(item.Coords) == 0 {
		el.Add(fmt.Errorf("%s: tile has no coords", where))
	}
	if item.IsDoor {
		if item.DoorTargetLevel == "" {
			el.Add(fmt.Errorf("%s: door has no target level", where))
		} else if _, ok := world[item.DoorTargetLevel]; !ok {
			el.Add(fmt.Errorf("%s: door targets unknown level %s", where, item.DoorTargetLevel))
		}
	}

	switch item.Capability {
	case types.CapabilityNone, types.CapabilityPanel, types.CapabilityButton, types.CapabilityCraftingTable:
		if item.State != types.TileStateNone {
			el.Add(fmt.Errorf("%s: capability %q takes no state", where, item.Capability))
		}
	case types.CapabilityChest, types.CapabilityDoor:
		if _, ok := types.SpriteForState(item.Capability, item.State); !ok {
			el.Add(fmt.Errorf("%s: state %q is not valid for %s", where, item.State, item.Capability))
		}
	default:
		el.Add(fmt.Errorf("%s: unknown capability %q", where, item.Capability))
	}
	return el.Err()
}

func hasEndTrigger(level *types.LevelData) bool {
	for _, item := range level.Tiles {
		if item != nil && item.IsEndTrigger && len(item.Coords) > 0 {
			return true
		}
	}
	return false
}

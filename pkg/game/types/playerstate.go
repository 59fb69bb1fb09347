package types

import (
	"fmt"
	"sort"

	"github.com/cbodonnell/greatescape/pkg/game/constants"
)

type PlayerState struct {
	X              int
	Y              int
	Facing         Direction
	AnimationPhase int
	Inventory      map[int]struct{}
}

func NewPlayerState(x, y, animationPhase int) *PlayerState {
	return &PlayerState{
		X:              x,
		Y:              y,
		Facing:         DirectionIdle,
		AnimationPhase: animationPhase,
		Inventory:      make(map[int]struct{}),
	}
}

// Box returns the player's collision box at its current position.
func (p PlayerState) Box() Box {
	return NewBox(p.X, p.Y, constants.PlayerWidth, constants.PlayerHeight)
}

// Move steps the player one unit in direction d and advances the walk
// cycle. It does no collision checks.
func (p *PlayerState) Move(d Direction) {
	if d == DirectionIdle {
		return
	}
	if p.AnimationPhase < 2 {
		p.AnimationPhase++
	} else {
		p.AnimationPhase = 1
	}
	p.Facing = d
	dx, dy := d.Delta(constants.PlayerStep)
	p.X += dx
	p.Y += dy
}

// Stop returns the walk cycle to its resting frame.
func (p *PlayerState) Stop() {
	p.AnimationPhase = 0
}

// SpriteName derives the frame to draw from facing and animation phase.
func (p PlayerState) SpriteName() string {
	if p.Facing == DirectionIdle {
		return "godown0.png"
	}
	return fmt.Sprintf("go%s%d.png", p.Facing, p.AnimationPhase)
}

func (p *PlayerState) AddToInventory(item int) {
	p.Inventory[item] = struct{}{}
}

// HasInInventory reports whether every item is held.
func (p PlayerState) HasInInventory(items ...int) bool {
	for _, item := range items {
		if _, ok := p.Inventory[item]; !ok {
			return false
		}
	}
	return true
}

// InventoryItems returns the held items in ascending order.
func (p PlayerState) InventoryItems() []int {
	items := make([]int, 0, len(p.Inventory))
	for item := range p.Inventory {
		items = append(items, item)
	}
	sort.Ints(items)
	return items
}

// Copy returns a copy of the player state that shares nothing with p.
func (p *PlayerState) Copy() *PlayerState {
	c := *p
	c.Inventory = make(map[int]struct{}, len(p.Inventory))
	for item := range p.Inventory {
		c.Inventory[item] = struct{}{}
	}
	return &c
}

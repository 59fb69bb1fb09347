package types

import "time"

// World maps level names to their tile data.
type World map[string]*LevelData

// Copy returns a deep copy of the world. Nil levels are left out.
func (w World) Copy() World {
	c := make(World, len(w))
	for name, level := range w {
		if level == nil {
			continue
		}
		c[name] = level.Copy()
	}
	return c
}

func (w World) Normalize() {
	for _, level := range w {
		if level == nil {
			continue
		}
		level.Normalize()
	}
}

// SavePoint is the player half of a save: where the player stood.
type SavePoint struct {
	ActiveLevel string `json:"activeLevel"`
	PlayerX     int    `json:"playerX"`
	PlayerY     int    `json:"playerY"`
}

// SaveGame is everything needed to resume a session. It is built once
// by a repository and handed to the load constructor as a value.
type SaveGame struct {
	// SessionID identifies the session that wrote the save
	SessionID string
	// SavedAt is when the save was taken
	SavedAt   time.Time
	World     World
	SavePoint SavePoint
}

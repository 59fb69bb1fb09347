package queue

import "github.com/cbodonnell/greatescape/pkg/game/types"

// Queue carries player inputs from the presentation layer to the game loop.
type Queue interface {
	Enqueue(item types.Input) error
	Size() int
	ReadAllMessages() ([]types.Input, error)
	ClearQueue()
}

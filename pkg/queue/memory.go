// queue package

package queue

import (
	"fmt"
	"sync"

	"github.com/cbodonnell/greatescape/pkg/game/types"
)

const (
	// DefaultQueueBufferSize is the capacity used when none is given
	DefaultQueueBufferSize = 256
)

// ErrQueueFull is returned by Enqueue when the buffer has no room left.
var ErrQueueFull = fmt.Errorf("queue is full")

// InMemoryQueue implements an in-memory queue.
type InMemoryQueue struct {
	ch   chan types.Input
	lock sync.Mutex
}

// NewInMemoryQueue creates a new queue holding at most size inputs.
func NewInMemoryQueue(size int) *InMemoryQueue {
	if size <= 0 {
		size = DefaultQueueBufferSize
	}
	return &InMemoryQueue{
		ch: make(chan types.Input, size),
	}
}

// Enqueue adds an item to the end of the queue without blocking.
// Inputs arriving while the queue is full are dropped.
func (q *InMemoryQueue) Enqueue(item types.Input) error {
	select {
	case q.ch <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

// Size returns the current size of the queue.
func (q *InMemoryQueue) Size() int {
	return len(q.ch)
}

// ReadAllMessages reads all pending inputs in the queue in arrival order.
func (q *InMemoryQueue) ReadAllMessages() ([]types.Input, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	var messages []types.Input
	for {
		select {
		case item := <-q.ch:
			messages = append(messages, item)
		default:
			return messages, nil
		}
	}
}

// ClearQueue clears all messages from the queue.
func (q *InMemoryQueue) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}

package queue

import (
	"testing"

	"github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_ReadAllMessages(t *testing.T) {
	q := NewInMemoryQueue(4)

	require.NoError(t, q.Enqueue(types.MoveInput{Direction: types.DirectionUp}))
	require.NoError(t, q.Enqueue(types.InteractInput{}))
	require.NoError(t, q.Enqueue(types.PanelButtonInput{Button: 2}))
	assert.Equal(t, 3, q.Size())

	got, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []types.Input{
		types.MoveInput{Direction: types.DirectionUp},
		types.InteractInput{},
		types.PanelButtonInput{Button: 2},
	}, got)
	assert.Equal(t, 0, q.Size())

	got, err = q.ReadAllMessages()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemoryQueue_full(t *testing.T) {
	q := NewInMemoryQueue(1)

	require.NoError(t, q.Enqueue(types.StopInput{}))
	assert.ErrorIs(t, q.Enqueue(types.StopInput{}), ErrQueueFull)

	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
	assert.NoError(t, q.Enqueue(types.SaveInput{}))
}

package types

// Input is an intent queued by the presentation layer and applied by
// the game loop before the next tick.
type Input interface {
	isInput()
}

type MoveInput struct {
	Direction Direction
}

// StopInput is sent when a movement key is released.
type StopInput struct{}

type InteractInput struct{}

type PanelButtonInput struct {
	Button int
}

type SaveInput struct{}

func (MoveInput) isInput()        {}
func (StopInput) isInput()        {}
func (InteractInput) isInput()    {}
func (PanelButtonInput) isInput() {}
func (SaveInput) isInput()        {}

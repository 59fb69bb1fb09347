package game

import (
	"slices"

	"github.com/cbodonnell/greatescape/pkg/game/constants"
)

// OpenPanel shows the code panel, drawing the code the first time.
// It does nothing once the panel has been solved.
func (e *Engine) OpenPanel() {
	if e.panelClosed {
		return
	}
	if e.codeTarget == nil {
		e.codeTarget = e.newCodeTarget()
		e.logger.Debug("Drew panel code %v", e.codeTarget)
	}
	e.panelOpen = true
}

// ClosePanel hides the code panel without solving it.
func (e *Engine) ClosePanel() {
	e.panelOpen = false
}

// CodeTarget returns the code the panel expects, if one has been drawn
// and not yet solved.
func (e *Engine) CodeTarget() ([]int, bool) {
	if e.codeTarget == nil {
		return nil, false
	}
	return slices.Clone(e.codeTarget), true
}

// ButtonBuffer returns the most recent panel presses, oldest first.
func (e *Engine) ButtonBuffer() []int {
	return slices.Clone(e.buttonBuffer)
}

// PressButton records a panel press. Only the last three presses are
// kept.
func (e *Engine) PressButton(id int) {
	e.buttonBuffer = append(e.buttonBuffer, id)
	if len(e.buttonBuffer) > constants.PanelCodeLength {
		e.buttonBuffer = e.buttonBuffer[1:]
	}
}

// newCodeTarget draws values from 1..3 until each has appeared once,
// which yields a uniformly random permutation.
func (e *Engine) newCodeTarget() []int {
	code := make([]int, 0, constants.PanelCodeLength)
	for len(code) < constants.PanelCodeLength {
		n := e.rand.IntN(constants.PanelCodeLength) + 1
		if !slices.Contains(code, n) {
			code = append(code, n)
		}
	}
	return code
}

// checkPanelCode solves the panel when the recent presses equal the
// code. Solving retires the panel and opens the chests and doors of
// its level.
func (e *Engine) checkPanelCode() {
	if e.codeTarget == nil || !slices.Equal(e.buttonBuffer, e.codeTarget) {
		return
	}

	e.panelClosed = true
	e.panelOpen = false
	e.codeTarget = nil
	e.UnsetTouching(constants.PanelLevel, constants.PanelSpriteID)
	e.OpenChests(constants.PanelLevel)
	e.OpenDoors(constants.PanelLevel)
	e.logger.Info("Panel code entered")
}

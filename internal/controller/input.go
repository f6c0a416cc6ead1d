package controller

import "github.com/vovakirdan/cleancity/internal/core"

// ButtonState exposes the logical movement buttons held this frame.
type ButtonState interface {
	Pressed(b core.Button) bool
}

// InputController turns button state into a movement direction.
type InputController struct {
	dir core.Vec2
}

// NewInputController creates an input controller.
func NewInputController() *InputController {
	return &InputController{}
}

// Direction returns a vector with components in {-1, 0, 1}, normalized to
// unit length when moving diagonally. Opposite buttons cancel out.
func (c *InputController) Direction(buttons ButtonState) core.Vec2 {
	c.dir = core.Vec2{}
	if buttons == nil {
		return c.dir
	}

	if buttons.Pressed(core.ButtonLeft) {
		c.dir.X--
	}
	if buttons.Pressed(core.ButtonRight) {
		c.dir.X++
	}
	if buttons.Pressed(core.ButtonDown) {
		c.dir.Y--
	}
	if buttons.Pressed(core.ButtonUp) {
		c.dir.Y++
	}

	if c.dir.Len2() > 1 {
		c.dir = c.dir.Normalized()
	}
	return c.dir
}

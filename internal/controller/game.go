package controller

import (
	"math"

	"github.com/vovakirdan/cleancity/internal/core"
	"github.com/vovakirdan/cleancity/internal/model"
)

// GameController advances the clock, the truck and the player each frame.
type GameController struct {
	input *InputController
}

// NewGameController creates a game controller reading from input.
func NewGameController(input *InputController) *GameController {
	if input == nil {
		input = NewInputController()
	}
	return &GameController{input: input}
}

// Update advances the world by delta seconds. Negative deltas count as zero.
//
// The timer stops at game over, but the truck keeps driving until it leaves
// the street. The player only moves while the game is running.
func (g *GameController) Update(w *model.World, buttons ButtonState, delta float64) {
	if delta < 0 {
		delta = 0
	}

	if !w.GameOver {
		w.TimeLeft -= delta
		if w.TimeLeft <= 0 {
			w.TimeLeft = 0
			w.GameOver = true
		}
	}

	t := w.Truck
	t.X += math.Abs(t.Speed) * delta
	if t.X > w.Width {
		w.GameOver = true
	}

	if w.GameOver {
		return
	}

	p := w.Player
	dir := g.input.Direction(buttons)
	step := dir.Scale(p.Speed * delta)
	p.X += step.X
	p.Y += step.Y
	p.UpdateFacing(dir)

	p.X = core.ClampF(p.X, 0, w.Width-p.Width)
	p.Y = core.ClampF(p.Y, 0, w.Height-p.Height)
}

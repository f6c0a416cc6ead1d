package tui

import (
	"time"

	"github.com/vovakirdan/cleancity/internal/core"
)

// HeldKeys turns key presses into held buttons. Terminals report presses
// and auto-repeats but never releases, so a press holds its button for a
// fixed window and each repeat extends it.
type HeldKeys struct {
	window time.Duration
	until  map[core.Button]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window: window,
		until:  make(map[core.Button]time.Time),
	}
}

// Press records a press of b at now. Pressing a direction releases the
// opposite one at once.
func (h *HeldKeys) Press(b core.Button, now time.Time) {
	delete(h.until, opposite(b))
	h.until[b] = now.Add(h.window)
}

// Sample marks every button still held at now on the frame.
func (h *HeldKeys) Sample(now time.Time, frame *core.InputFrame) {
	for b, until := range h.until {
		if now.Before(until) {
			frame.Hold(b)
			continue
		}
		delete(h.until, b)
	}
}

// Release drops every held button.
func (h *HeldKeys) Release() {
	clear(h.until)
}

func opposite(b core.Button) core.Button {
	switch b {
	case core.ButtonLeft:
		return core.ButtonRight
	case core.ButtonRight:
		return core.ButtonLeft
	case core.ButtonUp:
		return core.ButtonDown
	default:
		return core.ButtonUp
	}
}

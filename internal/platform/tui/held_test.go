package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/cleancity/internal/core"
)

func sample(h *HeldKeys, now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	h.Sample(now, &frame)
	return frame
}

func TestHeldWithinWindow(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name  string
		after time.Duration
		held  bool
	}{
		{"immediately", 0, true},
		{"mid window", 150 * time.Millisecond, true},
		{"window end", 200 * time.Millisecond, false},
		{"later", time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeldKeys(200 * time.Millisecond)
			h.Press(core.ButtonRight, t0)
			frame := sample(h, t0.Add(tt.after))
			if frame.Pressed(core.ButtonRight) != tt.held {
				t.Errorf("held = %v, expected %v", frame.Pressed(core.ButtonRight), tt.held)
			}
		})
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldKeys(200 * time.Millisecond)
	h.Press(core.ButtonUp, t0)
	h.Press(core.ButtonUp, t0.Add(150*time.Millisecond))

	if !sample(h, t0.Add(300*time.Millisecond)).Pressed(core.ButtonUp) {
		t.Error("repeat should extend the hold")
	}
}

func TestOppositeReleases(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldKeys(time.Second)
	h.Press(core.ButtonLeft, t0)
	h.Press(core.ButtonUp, t0)
	h.Press(core.ButtonRight, t0)

	frame := sample(h, t0)
	if frame.Pressed(core.ButtonLeft) {
		t.Error("left should be released by right")
	}
	if !frame.Pressed(core.ButtonRight) || !frame.Pressed(core.ButtonUp) {
		t.Error("right and up should stay held")
	}
}

func TestRelease(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldKeys(time.Second)
	h.Press(core.ButtonDown, t0)
	h.Release()

	if sample(h, t0).Pressed(core.ButtonDown) {
		t.Error("Release should drop held buttons")
	}
}

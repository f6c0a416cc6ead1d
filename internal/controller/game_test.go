package controller

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/cleancity/internal/core"
	"github.com/vovakirdan/cleancity/internal/model"
	"github.com/vovakirdan/cleancity/internal/timer"
)

func TestTruckAdvancesBySpeedTimesDelta(t *testing.T) {
	w := emptyStreet(0)
	gc := NewGameController(nil)

	deltas := []float64{0, 0.016, 0.5, 1.0 / 60, 0.1}
	for _, d := range deltas {
		before := w.Truck.X
		gc.Update(w, fakeButtons{}, d)
		if got := w.Truck.X - before; !almostEqual(got, w.Truck.Speed*d) {
			t.Errorf("delta %v: truck moved %v, expected %v", d, got, w.Truck.Speed*d)
		}
	}
}

func TestTruckUsesAbsoluteSpeed(t *testing.T) {
	w := emptyStreet(100)
	w.Truck.Speed = -10

	NewGameController(nil).Update(w, fakeButtons{}, 1)
	if w.Truck.X != 110 {
		t.Errorf("truck x = %v, expected 110", w.Truck.X)
	}
}

func TestTimeoutClampsAndEndsGame(t *testing.T) {
	w := emptyStreet(0)
	w.TimeLeft = 0.05
	gc := NewGameController(nil)

	gc.Update(w, fakeButtons{}, 0.1)

	if w.TimeLeft != 0 {
		t.Errorf("TimeLeft = %v, expected exactly 0", w.TimeLeft)
	}
	if !w.GameOver {
		t.Error("GameOver should be set on the frame the timer expires")
	}
	if w.GameWon {
		t.Error("timeout should not win")
	}
}

func TestTruckKeepsDrivingAfterGameOver(t *testing.T) {
	w := emptyStreet(200)
	w.GameOver = true
	px, py := w.Player.X, w.Player.Y
	gc := NewGameController(nil)

	gc.Update(w, fakeButtons{core.ButtonLeft: true}, 1)

	if w.Truck.X <= 200 {
		t.Errorf("truck should keep moving after game over, x = %v", w.Truck.X)
	}
	if w.Player.X != px || w.Player.Y != py {
		t.Error("player should not move after game over")
	}
}

func TestTruckExitEndsGame(t *testing.T) {
	w := emptyStreet(799)
	NewGameController(nil).Update(w, fakeButtons{}, 1)

	if !w.GameOver {
		t.Error("truck past the right edge should end the game")
	}
}

func TestPlayerMovesWithInput(t *testing.T) {
	w := emptyStreet(0)
	gc := NewGameController(nil)
	x0, y0 := w.Player.X, w.Player.Y

	gc.Update(w, fakeButtons{core.ButtonRight: true}, 0.1)
	if !almostEqual(w.Player.X-x0, 25) || w.Player.Y != y0 {
		t.Errorf("player moved to (%v, %v), expected (%v, %v)", w.Player.X, w.Player.Y, x0+25, y0)
	}
	if w.Player.Facing != model.FacingRight {
		t.Errorf("Facing = %v, expected Right", w.Player.Facing)
	}

	gc.Update(w, fakeButtons{}, 0.1)
	if w.Player.Facing != model.FacingRight || w.Player.Face.X != 1 {
		t.Error("idle frame should keep the previous facing")
	}

	gc.Update(w, fakeButtons{core.ButtonDown: true}, 0.1)
	if !almostEqual(y0-w.Player.Y, 25) {
		t.Errorf("down should decrease y by 25, got %v", y0-w.Player.Y)
	}
	if w.Player.Facing != model.FacingFront {
		t.Errorf("Facing = %v, expected Front", w.Player.Facing)
	}
}

func TestPlayerClampedToWorld(t *testing.T) {
	tests := []struct {
		name    string
		buttons fakeButtons
	}{
		{"left", fakeButtons{core.ButtonLeft: true}},
		{"right", fakeButtons{core.ButtonRight: true}},
		{"up", fakeButtons{core.ButtonUp: true}},
		{"down", fakeButtons{core.ButtonDown: true}},
		{"up-left", fakeButtons{core.ButtonUp: true, core.ButtonLeft: true}},
		{"down-right", fakeButtons{core.ButtonDown: true, core.ButtonRight: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := emptyStreet(0)
			gc := NewGameController(nil)
			for i := 0; i < 20; i++ {
				gc.Update(w, tc.buttons, 0.5)
				p := w.Player.Rect()
				if p.X < 0 || p.Y < 0 || p.Right() > w.Width || p.Top() > w.Height {
					t.Fatalf("frame %d: player box %+v outside the world", i, p)
				}
			}
		})
	}
}

func TestNegativeDeltaDoesNothing(t *testing.T) {
	w := emptyStreet(50)
	x, tl := w.Player.X, w.TimeLeft

	NewGameController(nil).Update(w, fakeButtons{core.ButtonRight: true}, -1)

	if w.Player.X != x || w.TimeLeft != tl || w.Truck.X != 50 {
		t.Error("negative delta should not change the world")
	}
}

func TestTruckExitsBeforeTimerExpires(t *testing.T) {
	tests := []struct {
		width, truckW, total float64
	}{
		{800, 64, 60},
		{800, 64, 27},
		{120, 10, 3},
		{1920, 200, 90.5},
	}

	for _, tc := range tests {
		level := firstStreet()
		level.TrashCount = 0
		level.TotalTime = tc.total
		level.TruckWidth = tc.truckW
		w := model.NewWorld(tc.width, 480, level, nil)
		gc := NewGameController(nil)

		for i := 0; i < 100000 && !w.GameOver; i++ {
			gc.Update(w, fakeButtons{}, 1.0/60)
		}
		if w.TimeLeft < 0 {
			t.Errorf("width %v total %v: TimeLeft = %v, expected >= 0", tc.width, tc.total, w.TimeLeft)
		}
		if w.Truck.X <= w.Width {
			t.Errorf("width %v total %v: truck at %v when the level ended, expected past the edge",
				tc.width, tc.total, w.Truck.X)
		}
	}
}

func TestSixtySecondsWithoutInput(t *testing.T) {
	w := model.NewWorld(800, 480, firstStreet(), rand.New(rand.NewSource(99)))
	if !almostEqual(w.Truck.Speed, 14.4) {
		t.Fatalf("truck speed = %v, expected 14.4", w.Truck.Speed)
	}

	var sched timer.Scheduler
	gc := NewGameController(nil)
	ch := NewCollisionHandler(&recordingAudio{}, &sched)

	for i := 0; i < 60*60; i++ {
		gc.Update(w, fakeButtons{}, 1.0/60)
		ch.Update(w)
		sched.Tick(1.0 / 60)
	}

	if !w.GameOver {
		t.Error("game should be over after 60 seconds")
	}
	if w.GameWon {
		t.Error("uncollected trash should not win")
	}
}

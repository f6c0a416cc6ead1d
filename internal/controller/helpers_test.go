package controller

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cleancity/internal/core"
	"github.com/vovakirdan/cleancity/internal/model"
)

// fakeButtons is a ButtonState backed by a set.
type fakeButtons map[core.Button]bool

func (f fakeButtons) Pressed(b core.Button) bool {
	return f[b]
}

type played struct {
	cue    Cue
	volume float64
}

type fade struct {
	track   Track
	seconds float64
	in      bool
}

// recordingAudio captures every trigger for assertions.
type recordingAudio struct {
	played []played
	fades  []fade
}

func (r *recordingAudio) Play(cue Cue, volume float64) {
	r.played = append(r.played, played{cue: cue, volume: volume})
}

func (r *recordingAudio) FadeIn(track Track, seconds float64) {
	r.fades = append(r.fades, fade{track: track, seconds: seconds, in: true})
}

func (r *recordingAudio) FadeOut(track Track, seconds float64) {
	r.fades = append(r.fades, fade{track: track, seconds: seconds})
}

func (r *recordingAudio) count(cue Cue) int {
	n := 0
	for _, p := range r.played {
		if p.cue == cue {
			n++
		}
	}
	return n
}

func firstStreet() model.Level {
	return model.Level{
		Name:          "Street",
		TotalTime:     60,
		TrashCount:    15,
		TrashSize:     18,
		PlayerSpeed:   250,
		TruckWidth:    64,
		TruckHeight:   32,
		BackgroundKey: "Street",
	}
}

// emptyStreet returns an 800x480 world without trash, truck parked at x.
func emptyStreet(truckX float64) *model.World {
	level := firstStreet()
	level.TrashCount = 0
	w := model.NewWorld(800, 480, level, rand.New(rand.NewSource(1)))
	w.Truck.X = truckX
	return w
}

func addTrash(w *model.World, x, y float64) {
	w.Trash = append(w.Trash, model.Trash{X: x, Y: y, Width: 18, Height: 18, Key: "Trash_Pixel1"})
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

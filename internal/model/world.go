package model

import (
	"math/rand"

	"github.com/vovakirdan/cleancity/internal/core"
)

// Trash placement
const (
	// SpawnAttempts bounds the retries for a trash position outside the
	// player's start zone. The last candidate is kept when exhausted.
	SpawnAttempts = 1000

	// SpawnGuardScale is the size of the start zone relative to the player box.
	SpawnGuardScale = 3.0
)

// TrashKeys is the sprite rotation assigned to trash by spawn index.
var TrashKeys = []string{
	"Trash_Pixel1",
	"Trash_Pixel2",
	"Trash_Pixel3",
	"Trash_Pixel4",
	"Trash_Pixel5",
	"Trash_Pixel6",
}

// World is the aggregate state of one playthrough of one level.
type World struct {
	Width  float64
	Height float64

	Player *Player
	Truck  *Truck
	Trash  []Trash // Live trash; order carries no meaning
	Score  Score

	Level     Level
	TotalTime float64
	TimeLeft  float64

	GameOver     bool
	GameWon      bool // Implies GameOver
	CarriedTrash int  // Collected but not yet delivered

	rng *rand.Rand
}

// NewWorld builds a fully populated world for the level. The rng drives trash
// placement; pass a seeded source for reproducible layouts.
func NewWorld(width, height float64, level Level, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	w := &World{
		Width:     width,
		Height:    height,
		Level:     level,
		TotalTime: level.TotalTime,
		TimeLeft:  level.TotalTime,
		rng:       rng,
	}

	w.Player = &Player{
		X:      width/2 - PlayerWidth/2,
		Y:      height/2 - PlayerHeight/2,
		Width:  PlayerWidth,
		Height: PlayerHeight,
		Speed:  level.PlayerSpeed,
		Face:   core.Vec2{Y: -1},
		Facing: FacingFront,
	}

	w.Truck = &Truck{
		X:      0,
		Y:      height/2 - level.TruckHeight/2,
		Width:  level.TruckWidth,
		Height: level.TruckHeight,
		Speed:  TruckSpeed(width, level),
	}

	w.SpawnTrash(level.TrashCount, level.TrashSize)
	return w
}

// SpawnTrash adds count square items of the given size at random positions
// that avoid the player's start zone.
func (w *World) SpawnTrash(count int, size float64) {
	guard := w.Player.Rect().Scaled(SpawnGuardScale)
	start := len(w.Trash)

	for i := 0; i < count; i++ {
		var item Trash
		for attempt := 0; attempt < SpawnAttempts; attempt++ {
			item = Trash{
				X:      w.rng.Float64() * (w.Width - size),
				Y:      w.rng.Float64() * (w.Height - size),
				Width:  size,
				Height: size,
			}
			if !item.Rect().Overlaps(guard) {
				break
			}
		}
		item.Key = TrashKeys[(start+i)%len(TrashKeys)]
		w.Trash = append(w.Trash, item)
	}
}

// RemoveTrash deletes the item at index i from the live set.
func (w *World) RemoveTrash(i int) {
	if i < 0 || i >= len(w.Trash) {
		return
	}
	w.Trash = append(w.Trash[:i], w.Trash[i+1:]...)
}

// AllTrashGone reports whether every item was collected and delivered.
func (w *World) AllTrashGone() bool {
	return len(w.Trash) == 0 && w.CarriedTrash == 0
}

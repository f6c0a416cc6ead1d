package model

import (
	"math"

	"github.com/vovakirdan/cleancity/internal/core"
)

// Player defaults
const (
	PlayerWidth  = 26.0
	PlayerHeight = 26.0
)

// Facing is the direction the player sprite looks at.
type Facing int

const (
	FacingFront Facing = iota // Towards the camera (moving down)
	FacingBack                // Away from the camera (moving up)
	FacingLeft
	FacingRight
)

// String returns a human-readable name for the facing.
func (f Facing) String() string {
	switch f {
	case FacingFront:
		return "Front"
	case FacingBack:
		return "Back"
	case FacingLeft:
		return "Left"
	case FacingRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Player is the street cleaner controlled by the user.
type Player struct {
	X, Y     float64 // Bottom-left corner
	Width    float64
	Height   float64
	Speed    float64   // Units per second
	Face     core.Vec2 // Last non-zero movement direction
	Facing   Facing
	Defeated bool // Hit by the truck front
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// UpdateFacing records a movement direction. A zero direction keeps the
// previous facing. The dominant axis picks the facing; a diagonal tie keeps
// the previous one.
func (p *Player) UpdateFacing(dir core.Vec2) {
	if dir.IsZero() {
		return
	}
	p.Face = dir

	ax, ay := math.Abs(dir.X), math.Abs(dir.Y)
	switch {
	case ax > ay && dir.X < 0:
		p.Facing = FacingLeft
	case ax > ay:
		p.Facing = FacingRight
	case ay > ax && dir.Y > 0:
		p.Facing = FacingBack
	case ay > ax:
		p.Facing = FacingFront
	}
}

// Truck is the garbage truck crossing the street left to right.
type Truck struct {
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64 // Horizontal units per second
}

// Rect returns the truck's visual bounding box.
func (t *Truck) Rect() core.Rect {
	return core.NewRect(t.X, t.Y, t.Width, t.Height)
}

// Trash is a single collectible item.
type Trash struct {
	X, Y   float64
	Width  float64
	Height float64
	Key    string // Sprite key, fixed at spawn
}

// Rect returns the trash bounding box.
func (t Trash) Rect() core.Rect {
	return core.NewRect(t.X, t.Y, t.Width, t.Height)
}

// Score is the delivered-trash counter. It never decreases.
type Score struct {
	Value int
}

// Add increases the score by n. Non-positive amounts are ignored.
func (s *Score) Add(n int) {
	if n > 0 {
		s.Value += n
	}
}

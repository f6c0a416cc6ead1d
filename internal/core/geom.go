// Package core provides fundamental types and utilities shared by the game
// packages. It has no external dependencies (especially no Bubble Tea) so the
// simulation stays pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in world units.
// X, Y is the bottom-left corner; y grows upwards.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Overlaps reports whether the two rectangles share interior area.
// Touching edges do not count as an overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Top() && r.Top() > other.Y
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Top()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Scaled returns a rectangle scaled by factor around the same center.
func (r Rect) Scaled(factor float64) Rect {
	w := r.W * factor
	h := r.H * factor
	return Rect{
		X: r.X + (r.W-w)*0.5,
		Y: r.Y + (r.H-h)*0.5,
		W: w,
		H: h,
	}
}

// Expanded grows the rectangle by margin on every side.
func (r Rect) Expanded(margin float64) Rect {
	return Rect{
		X: r.X - margin,
		Y: r.Y - margin,
		W: r.W + margin*2,
		H: r.H + margin*2,
	}
}

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Len2 returns the squared length.
func (v Vec2) Len2() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns the unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vec2) Normalized() Vec2 {
	l2 := v.Len2()
	if l2 == 0 {
		return v
	}
	l := math.Sqrt(l2)
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

package controller

import (
	"github.com/vovakirdan/cleancity/internal/core"
	"github.com/vovakirdan/cleancity/internal/model"
)

// Truck hitbox tuning
const (
	TruckCollisionScale = 0.9  // Collision box relative to the visual box
	FrontStripWidth     = 12.0 // Lethal strip at the truck's leading edge
	DeliveryMargin      = 2.0  // Extra reach around the collision box for delivery
)

// Audio timing
const (
	MusicFadeOut  = 0.6 // Seconds to fade the level music on win/loss
	EndCueDelay   = 0.5 // Seconds between the fade start and the end jingle
	CollectVolume = 0.8
	WinVolume     = 1.5
)

// TruckCollisionBox returns the reduced, centered hitbox of the truck.
func TruckCollisionBox(t *model.Truck) core.Rect {
	return t.Rect().Scaled(TruckCollisionScale)
}

// FrontStrip returns the lethal strip along the right edge of box. It never
// extends past the left edge of box, however narrow the truck.
func FrontStrip(box core.Rect) core.Rect {
	w := min(FrontStripWidth, box.W)
	return core.NewRect(box.Right()-w, box.Y, w, box.H)
}

// DeliveryZone returns the area in which touching the truck delivers trash.
func DeliveryZone(box core.Rect) core.Rect {
	return box.Expanded(DeliveryMargin)
}

// ResolveOverlap pushes p out of box along the axis of least penetration,
// choosing the nearer side. Exits that would leave bounds are skipped in
// favour of the next smallest one; if none fits, the smallest is used.
func ResolveOverlap(p *model.Player, box, bounds core.Rect) {
	type exit struct {
		depth float64
		x, y  float64
	}

	// Left, right, bottom, top.
	exits := [4]exit{
		{depth: p.X + p.Width - box.X, x: box.X - p.Width, y: p.Y},
		{depth: box.Right() - p.X, x: box.Right(), y: p.Y},
		{depth: p.Y + p.Height - box.Y, x: p.X, y: box.Y - p.Height},
		{depth: box.Top() - p.Y, x: p.X, y: box.Top()},
	}

	// Stable sort by depth. Ties prefer vertical exits, then top and right.
	order := [4]int{3, 2, 1, 0}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && exits[order[j]].depth < exits[order[j-1]].depth; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	best := exits[order[0]]
	for _, idx := range order {
		e := exits[idx]
		r := core.NewRect(e.x, e.y, p.Width, p.Height)
		if r.X >= bounds.X && r.Y >= bounds.Y && r.Right() <= bounds.Right() && r.Top() <= bounds.Top() {
			best = e
			break
		}
	}
	p.X, p.Y = best.x, best.y
}

// CollisionHandler applies the contact rules between player, truck and trash.
type CollisionHandler struct {
	audio    AudioSink
	deferred Deferrer
}

// NewCollisionHandler creates a collision handler. Delayed cues are scheduled
// on deferred; a nil deferred plays them immediately.
func NewCollisionHandler(audio AudioSink, deferred Deferrer) *CollisionHandler {
	if audio == nil {
		audio = NopAudio{}
	}
	return &CollisionHandler{audio: audio, deferred: deferred}
}

// Update runs after movement. In order: early win, lethal truck front,
// pushing the player out of the truck, trash collection, delivery.
// Nothing happens once the game is over.
func (c *CollisionHandler) Update(w *model.World) {
	if w.GameOver {
		return
	}

	p := w.Player
	t := w.Truck
	box := TruckCollisionBox(t)
	front := FrontStrip(box)

	if w.AllTrashGone() {
		w.GameWon = true
		w.GameOver = true
		t.Speed = 0
		return
	}

	if p.Rect().Overlaps(front) {
		w.GameOver = true
		w.GameWon = false
		p.Defeated = true
		c.audio.FadeOut(TrackStreet, MusicFadeOut)
		c.later(EndCueDelay, func() {
			c.audio.Play(CueDeath, 1)
			c.audio.Play(CueLose, 1)
		})
		return
	}

	if p.Rect().Overlaps(box) {
		ResolveOverlap(p, box, core.NewRect(0, 0, w.Width, w.Height))
	}

	// Reverse order keeps indices valid while removing.
	for i := len(w.Trash) - 1; i >= 0; i-- {
		if p.Rect().Overlaps(w.Trash[i].Rect()) {
			w.RemoveTrash(i)
			w.CarriedTrash++
			c.audio.Play(CueCollect, CollectVolume)
		}
	}

	pr := p.Rect()
	if !pr.Overlaps(front) && pr.Overlaps(DeliveryZone(box)) {
		if w.CarriedTrash > 0 {
			w.Score.Add(w.CarriedTrash)
			w.CarriedTrash = 0
			c.audio.Play(CueDelivery, 1)
		}

		if w.AllTrashGone() {
			w.GameWon = true
			w.GameOver = true
			t.Speed = 0
			c.audio.FadeOut(TrackStreet, MusicFadeOut)
			c.later(EndCueDelay, func() {
				c.audio.Play(CueWin, WinVolume)
			})
		}
	}
}

func (c *CollisionHandler) later(seconds float64, fn func()) {
	if c.deferred == nil {
		fn()
		return
	}
	c.deferred.After(seconds, fn)
}

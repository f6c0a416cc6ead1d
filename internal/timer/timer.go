// Package timer provides frame-driven countdowns. Every timer advances only
// by the delta passed to Tick, so timing is deterministic under test.
package timer

// Countdown fires once when its remaining time crosses zero.
type Countdown struct {
	remaining float64
	active    bool
}

// Arm starts (or restarts) the countdown with the given duration in seconds.
func (c *Countdown) Arm(seconds float64) {
	c.remaining = seconds
	c.active = true
}

// Stop disarms the countdown without firing.
func (c *Countdown) Stop() {
	c.remaining = 0
	c.active = false
}

// Tick advances the countdown. It returns true exactly once, on the tick the
// remaining time reaches zero.
func (c *Countdown) Tick(delta float64) bool {
	if !c.active {
		return false
	}
	if delta > 0 {
		c.remaining -= delta
	}
	if c.remaining <= 0 {
		c.remaining = 0
		c.active = false
		return true
	}
	return false
}

// Active reports whether the countdown is running.
func (c *Countdown) Active() bool {
	return c.active
}

// Remaining returns the seconds left, or 0 when inactive.
func (c *Countdown) Remaining() float64 {
	return c.remaining
}

type deferred struct {
	countdown Countdown
	fn        func()
}

// Scheduler runs callbacks after a delay measured in frame time.
// The zero value is ready to use.
type Scheduler struct {
	pending []*deferred
}

// After schedules fn to run once the given number of seconds has elapsed.
func (s *Scheduler) After(seconds float64, fn func()) {
	if fn == nil {
		return
	}
	d := &deferred{fn: fn}
	d.countdown.Arm(seconds)
	s.pending = append(s.pending, d)
}

// Tick advances all pending callbacks and runs those that expire, in the
// order they were scheduled.
func (s *Scheduler) Tick(delta float64) {
	if len(s.pending) == 0 {
		return
	}

	due := s.pending[:0:0]
	kept := s.pending[:0]
	for _, d := range s.pending {
		if d.countdown.Tick(delta) {
			due = append(due, d)
		} else {
			kept = append(kept, d)
		}
	}
	s.pending = kept

	for _, d := range due {
		d.fn()
	}
}

// Reset drops every pending callback without running it.
func (s *Scheduler) Reset() {
	s.pending = nil
}

// Pending returns the number of callbacks waiting to run.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

package audio

import (
	"sync"
	"time"
)

// Volumer is anything with an adjustable playback volume.
type Volumer interface {
	Volume() float64
	SetVolume(volume float64)
}

// Fader ramps a volume over a fixed number of steps in a background
// goroutine. Starting a new fade cancels the running one.
type Fader struct {
	target Volumer
	steps  int

	mu     sync.Mutex
	cancel chan struct{}
	done   chan struct{}
}

// NewFader creates a fader for target. Steps below 1 are raised to 1.
func NewFader(target Volumer, steps int) *Fader {
	if steps < 1 {
		steps = 1
	}
	return &Fader{target: target, steps: steps}
}

// Start fades from the current volume to `to` across d. then runs after the
// last step unless the fade was cancelled. It never blocks on the ramp.
func (f *Fader) Start(to float64, d time.Duration, then func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopLocked()

	cancel := make(chan struct{})
	done := make(chan struct{})
	f.cancel = cancel
	f.done = done

	from := f.target.Volume()
	interval := d / time.Duration(f.steps)

	go func() {
		defer close(done)

		timer := time.NewTimer(interval)
		defer timer.Stop()

		for i := 1; i <= f.steps; i++ {
			select {
			case <-cancel:
				return
			case <-timer.C:
			}
			f.target.SetVolume(from + (to-from)*float64(i)/float64(f.steps))
			timer.Reset(interval)
		}

		if then != nil {
			then()
		}
	}()
}

// Stop cancels the running fade and waits for its goroutine to exit.
func (f *Fader) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopLocked()
}

// Wait blocks until the current fade finishes or is cancelled.
func (f *Fader) Wait() {
	f.mu.Lock()
	done := f.done
	f.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (f *Fader) stopLocked() {
	if f.cancel == nil {
		return
	}
	close(f.cancel)
	<-f.done
	f.cancel = nil
}

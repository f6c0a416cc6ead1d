// Package intro runs the opening slideshow shown before the first street.
package intro

// Default slide timings in seconds.
const (
	DefaultFadeIn  = 0.6
	DefaultHold    = 2.5
	DefaultFadeOut = 0.6
)

// Slide is one page of the slideshow.
type Slide struct {
	Title string
	Lines []string
}

// Timing controls how long each slide phase lasts.
type Timing struct {
	FadeIn  float64
	Hold    float64
	FadeOut float64
}

// DefaultTiming returns the standard slide timings.
func DefaultTiming() Timing {
	return Timing{FadeIn: DefaultFadeIn, Hold: DefaultHold, FadeOut: DefaultFadeOut}
}

type phase int

const (
	phaseFadeIn phase = iota
	phaseHold
	phaseFadeOut
)

// Slideshow fades each slide in, holds it, fades it out and moves on.
type Slideshow struct {
	slides  []Slide
	timing  Timing
	index   int
	phase   phase
	elapsed float64
}

// New creates a slideshow. An empty slide list is done immediately.
func New(slides []Slide, timing Timing) *Slideshow {
	return &Slideshow{
		slides: append([]Slide(nil), slides...),
		timing: timing,
	}
}

// Update advances the slideshow by delta seconds. Negative deltas are ignored.
func (s *Slideshow) Update(delta float64) {
	if s.Done() || delta <= 0 {
		return
	}
	s.elapsed += delta

	// A long frame may cross several phases.
	for !s.Done() {
		d := s.duration()
		if s.elapsed < d {
			return
		}
		s.elapsed -= d
		s.nextPhase()
	}
}

// Skip jumps to the next slide. Skipping the last slide ends the show.
func (s *Slideshow) Skip() {
	if s.Done() {
		return
	}
	s.index++
	s.phase = phaseFadeIn
	s.elapsed = 0
}

// Done reports whether every slide has been shown.
func (s *Slideshow) Done() bool {
	return s.index >= len(s.slides)
}

// Current returns the slide on screen and whether there is one.
func (s *Slideshow) Current() (Slide, bool) {
	if s.Done() {
		return Slide{}, false
	}
	return s.slides[s.index], true
}

// Index returns the position of the current slide.
func (s *Slideshow) Index() int {
	return s.index
}

// Len returns the number of slides.
func (s *Slideshow) Len() int {
	return len(s.slides)
}

// Alpha returns the opacity of the current slide in [0, 1].
func (s *Slideshow) Alpha() float64 {
	if s.Done() {
		return 0
	}
	switch s.phase {
	case phaseFadeIn:
		return ratio(s.elapsed, s.timing.FadeIn)
	case phaseFadeOut:
		return 1 - ratio(s.elapsed, s.timing.FadeOut)
	default:
		return 1
	}
}

func (s *Slideshow) duration() float64 {
	switch s.phase {
	case phaseFadeIn:
		return s.timing.FadeIn
	case phaseHold:
		return s.timing.Hold
	default:
		return s.timing.FadeOut
	}
}

func (s *Slideshow) nextPhase() {
	switch s.phase {
	case phaseFadeIn:
		s.phase = phaseHold
	case phaseHold:
		s.phase = phaseFadeOut
	default:
		s.index++
		s.phase = phaseFadeIn
	}
}

func ratio(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	r := elapsed / total
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

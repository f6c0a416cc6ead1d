// Package controller runs the per-frame gameplay rules over a model.World:
// input sampling, movement, collisions and the win/lose state machine.
package controller

// Cue is a symbolic one-shot sound.
type Cue string

// Gameplay cues.
const (
	CueCollect  Cue = "collect"
	CueDelivery Cue = "delivery"
	CueDeath    Cue = "death"
	CueLose     Cue = "lose"
	CueWin      Cue = "win"
)

// Track is a symbolic music track.
type Track string

// TrackStreet is the music loop played during a level.
const TrackStreet Track = "street"

// AudioSink receives sound triggers from gameplay. Implementations must not
// block; gameplay never waits for playback.
type AudioSink interface {
	Play(cue Cue, volume float64)
	FadeIn(track Track, seconds float64)
	FadeOut(track Track, seconds float64)
}

// Deferrer runs a callback after a delay measured in frame time.
type Deferrer interface {
	After(seconds float64, fn func())
}

// NopAudio discards every trigger.
type NopAudio struct{}

func (NopAudio) Play(Cue, float64) {}
func (NopAudio) FadeIn(Track, float64) {}
func (NopAudio) FadeOut(Track, float64) {}

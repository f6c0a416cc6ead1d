// Package audio plays the gameplay cues and the street music through the
// ebiten audio context. Every sound is synthesized at startup, so the game
// ships without asset files.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/cleancity/internal/controller"
	"github.com/vovakirdan/cleancity/internal/core"
)

// DefaultFadeSteps is the number of volume steps in a fade.
const DefaultFadeSteps = 10

// ErrUnavailable is returned when no audio device can be opened.
var ErrUnavailable = errors.New("audio: device unavailable")

// Sink is an AudioSink that owns playback resources.
type Sink interface {
	controller.AudioSink
	Close() error
}

// Config controls the audio backend.
type Config struct {
	Volume    float64 // Master volume in [0, 1]
	FadeSteps int
}

type track struct {
	player *ebaudio.Player
	fader  *Fader
}

// Player is the ebiten-backed Sink.
type Player struct {
	ctx    *ebaudio.Context
	cfg    Config
	logger *log.Logger
	cues   map[controller.Cue][]byte
	tracks map[controller.Track]*track
}

// NewPlayer opens the audio device and synthesizes every cue and track.
func NewPlayer(cfg Config, logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.Volume = clampVolume(cfg.Volume)
	if cfg.FadeSteps <= 0 {
		cfg.FadeSteps = DefaultFadeSteps
	}

	ctx, err := openContext()
	if err != nil {
		return nil, err
	}

	p := &Player{
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
		cues:   make(map[controller.Cue][]byte, len(cueNotes)),
		tracks: make(map[controller.Track]*track, len(trackNotes)),
	}

	for cue, notes := range cueNotes {
		p.cues[cue] = render(notes, SampleRate, cueGain)
	}

	for name, notes := range trackNotes {
		pcm := render(notes, SampleRate, trackGain)
		loop := ebaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		pl, err := ctx.NewPlayer(loop)
		if err != nil {
			return nil, fmt.Errorf("audio: track %s: %w", name, err)
		}
		pl.SetVolume(0)
		p.tracks[name] = &track{player: pl, fader: NewFader(pl, cfg.FadeSteps)}
	}

	logger.Debug("audio ready", "sample_rate", SampleRate, "cues", len(p.cues), "tracks", len(p.tracks))
	return p, nil
}

// openContext returns the process-wide audio context. ebiten allows only one
// and panics when the device cannot be initialized.
func openContext() (ctx *ebaudio.Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnavailable, r)
		}
	}()

	ctx = ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(SampleRate)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return ctx, nil
}

// Play starts a one-shot cue. Volume is scaled by the master volume and
// clamped to [0, 1].
func (p *Player) Play(cue controller.Cue, volume float64) {
	pcm, ok := p.cues[cue]
	if !ok {
		p.logger.Warn("unknown cue", "cue", cue)
		return
	}
	pl := p.ctx.NewPlayerFromBytes(pcm)
	pl.SetVolume(clampVolume(volume * p.cfg.Volume))
	pl.Play()
}

// FadeIn starts the track from the beginning if it is silent and ramps it up
// to the master volume.
func (p *Player) FadeIn(name controller.Track, seconds float64) {
	t, ok := p.tracks[name]
	if !ok {
		p.logger.Warn("unknown track", "track", name)
		return
	}

	t.fader.Stop()
	if !t.player.IsPlaying() {
		t.player.SetVolume(0)
		if err := t.player.Rewind(); err != nil {
			p.logger.Warn("rewind failed", "track", name, "err", err)
		}
		t.player.Play()
	}
	t.fader.Start(p.cfg.Volume, seconds2duration(seconds), nil)
}

// FadeOut ramps the track down and pauses it.
func (p *Player) FadeOut(name controller.Track, seconds float64) {
	t, ok := p.tracks[name]
	if !ok {
		p.logger.Warn("unknown track", "track", name)
		return
	}
	t.fader.Start(0, seconds2duration(seconds), t.player.Pause)
}

// Close stops every fade and silences the music.
func (p *Player) Close() error {
	for _, t := range p.tracks {
		t.fader.Stop()
		t.player.Pause()
	}
	return nil
}

// Silent is a Sink that plays nothing. It stands in when audio is muted or
// the device is unavailable.
type Silent struct {
	controller.NopAudio
}

// Close implements Sink.
func (Silent) Close() error { return nil }

func clampVolume(v float64) float64 {
	return core.ClampF(v, 0, 1)
}

func seconds2duration(s float64) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}

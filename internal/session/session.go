// Package session sequences levels and runs one frame at a time: it owns the
// current world, its controllers, deferred audio cues and the HUD notices.
package session

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cleancity/internal/controller"
	"github.com/vovakirdan/cleancity/internal/core"
	"github.com/vovakirdan/cleancity/internal/model"
	"github.com/vovakirdan/cleancity/internal/timer"
)

// Defaults
const (
	DefaultMaxDelta       = 0.1 // Seconds; longer frames are clamped
	DefaultNoticeDuration = 3.0 // Seconds a HUD notice stays visible
	MusicFadeIn           = 1.0 // Seconds to fade the music in on level load
)

// ErrNoLevels is returned when a session is created without levels.
var ErrNoLevels = errors.New("session: no levels")

// Config holds the parameters shared by every level of a session.
type Config struct {
	WorldWidth     float64
	WorldHeight    float64
	MaxDelta       float64
	NoticeDuration float64
	Seed           int64
	StartLevel     int
}

// Session plays an ordered list of levels.
type Session struct {
	levels []model.Level
	index  int
	cfg    Config
	rng    *rand.Rand
	audio  controller.AudioSink
	logger *log.Logger

	input      *controller.InputController
	world      *model.World
	game       *controller.GameController
	collisions *controller.CollisionHandler
	deferred   timer.Scheduler
	ended      bool // End of the current world already reported

	cleanFirst timer.Countdown // "clean this street first"
	completed  timer.Countdown // "all levels completed"
}

// New creates a session and loads cfg.StartLevel. A nil audio sink or logger
// is replaced by a silent one.
func New(levels []model.Level, cfg Config, audio controller.AudioSink, logger *log.Logger) (*Session, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if cfg.MaxDelta <= 0 {
		cfg.MaxDelta = DefaultMaxDelta
	}
	if cfg.NoticeDuration <= 0 {
		cfg.NoticeDuration = DefaultNoticeDuration
	}
	if audio == nil {
		audio = controller.NopAudio{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		levels: append([]model.Level(nil), levels...),
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		audio:  audio,
		logger: logger,
		input:  controller.NewInputController(),
	}
	s.Load(cfg.StartLevel)
	return s, nil
}

// Load discards the current world and builds a fresh one for the level at
// index. Out-of-range indices are clamped. Pending deferred cues are dropped.
func (s *Session) Load(index int) {
	s.index = core.Clamp(index, 0, len(s.levels)-1)
	level := s.levels[s.index]

	s.deferred.Reset()
	s.ended = false
	s.world = model.NewWorld(s.cfg.WorldWidth, s.cfg.WorldHeight, level, s.rng)
	s.game = controller.NewGameController(s.input)
	s.collisions = controller.NewCollisionHandler(s.audio, &s.deferred)
	s.audio.FadeIn(controller.TrackStreet, MusicFadeIn)

	s.logger.Info("level loaded",
		"index", s.index,
		"name", level.Name,
		"background", level.BackgroundKey,
		"trash", len(s.world.Trash),
		"truck_speed", s.world.Truck.Speed,
	)
}

// Restart reloads the current level from scratch.
func (s *Session) Restart() {
	s.logger.Debug("restart requested", "index", s.index)
	s.Load(s.index)
}

// Advance moves to the next level. It refuses while any trash is still on
// the street or carried, arming the "clean this street first" notice.
// Past the last level it wraps to the first and arms the completion notice.
func (s *Session) Advance() bool {
	if !s.world.AllTrashGone() {
		s.cleanFirst.Arm(s.cfg.NoticeDuration)
		s.logger.Debug("advance refused",
			"index", s.index,
			"trash", len(s.world.Trash),
			"carried", s.world.CarriedTrash,
		)
		return false
	}

	next := s.index + 1
	if next >= len(s.levels) {
		next = 0
		s.completed.Arm(s.cfg.NoticeDuration)
		s.logger.Info("all levels completed", "score", s.world.Score.Value)
	}
	s.Load(next)
	return true
}

// Step runs one frame: notices and deferred cues, commands, movement, then
// collisions. delta is clamped to [0, MaxDelta].
func (s *Session) Step(delta float64, in core.InputFrame) {
	delta = core.ClampF(delta, 0, s.cfg.MaxDelta)

	s.cleanFirst.Tick(delta)
	s.completed.Tick(delta)
	s.deferred.Tick(delta)

	if in.Has(core.CommandRestart) {
		s.Restart()
	}
	if in.Has(core.CommandAdvance) {
		s.Advance()
	}

	s.game.Update(s.world, in, delta)
	s.collisions.Update(s.world)

	if s.world.GameOver && !s.ended {
		s.ended = true
		s.logger.Info("level ended",
			"index", s.index,
			"won", s.world.GameWon,
			"defeated", s.world.Player.Defeated,
			"score", s.world.Score.Value,
			"time_left", s.world.TimeLeft,
		)
	}
}

// World returns the current world. Callers must treat it as read-only.
func (s *Session) World() *model.World {
	return s.world
}

// Level returns the current level parameters.
func (s *Session) Level() model.Level {
	return s.levels[s.index]
}

// Index returns the current level index.
func (s *Session) Index() int {
	return s.index
}

// LevelCount returns the number of levels in the session.
func (s *Session) LevelCount() int {
	return len(s.levels)
}

// PendingCues returns the number of deferred audio callbacks.
func (s *Session) PendingCues() int {
	return s.deferred.Pending()
}

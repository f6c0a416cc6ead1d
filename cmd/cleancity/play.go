package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cleancity/internal/audio"
	"github.com/vovakirdan/cleancity/internal/config"
	"github.com/vovakirdan/cleancity/internal/core"
	"github.com/vovakirdan/cleancity/internal/intro"
	"github.com/vovakirdan/cleancity/internal/platform/tui"
	"github.com/vovakirdan/cleancity/internal/session"
)

var (
	flagLevel   int
	flagMute    bool
	flagNoIntro bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Clean City",
	Long: `Start playing from the first street (or --level).

Controls:
  Arrows/WASD - Move
  R           - Restart the street
  N           - Next street (once the street is clean)
  Enter       - Skip an intro slide
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 25% more time on every street
  normal - Configured time limits
  hard   - 20% less time, faster truck

Examples:
  cleancity play
  cleancity play --level 2 --no-intro
  cleancity play --difficulty hard --mute
  cleancity play --config ./my-streets.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose the first street, then play",
	Args:  cobra.NoArgs,
	Run:   runPick,
}

func init() {
	addPlayFlags(playCmd)
	addPlayFlags(pickCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagLevel, "level", 1, "Street to start on (1-based)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
	cmd.Flags().BoolVar(&flagNoIntro, "no-intro", false, "Skip the intro slideshow")
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, _ []string) {
	play(cmd, flagLevel-1, !flagNoIntro)
}

func runPick(cmd *cobra.Command, _ []string) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	index, ok, err := tui.Pick(cfg.GameLevels(), width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// User quit the picker
	if !ok {
		return
	}
	play(cmd, index, false)
}

func play(cmd *cobra.Command, startLevel int, showIntro bool) {
	cfg, src, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()
	logger.Info("configuration loaded", "source", src, "levels", len(cfg.Levels))

	if startLevel < 0 || startLevel >= len(cfg.Levels) {
		fmt.Fprintf(os.Stderr, "Error: --level must be between 1 and %d\n", len(cfg.Levels))
		os.Exit(1)
	}

	seed := flagSeed
	// Use time-based seed if not specified
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sink := openAudio(cfg.Audio, logger)
	defer sink.Close()

	sess, err := session.New(cfg.GameLevels(), session.Config{
		WorldWidth:  cfg.World.Width,
		WorldHeight: cfg.World.Height,
		MaxDelta:    cfg.Frame.MaxDelta,
		Seed:        seed,
		StartLevel:  startLevel,
	}, sink, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var show *intro.Slideshow
	if showIntro && cfg.Intro.Enabled {
		show = intro.New(intro.DefaultSlides(), intro.DefaultTiming())
	}

	width, height := terminalSize()
	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Frame.FPS,
			Seed:     seed,
		},
		Hold:   time.Duration(cfg.Input.Hold * float64(time.Second)),
		Logger: logger,
	}

	if err := tui.Run(sess, show, opts); err != nil {
		logger.Error("game stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		sink.Close()
		logCloser.Close()
		os.Exit(1)
	}
}

// openAudio returns the audio backend, falling back to silence when audio
// is disabled or the device cannot be opened.
func openAudio(cfg config.AudioConfig, logger *log.Logger) audio.Sink {
	if flagMute || !cfg.Enabled {
		return audio.Silent{}
	}

	player, err := audio.NewPlayer(audio.Config{
		Volume:    cfg.Volume,
		FadeSteps: cfg.FadeSteps,
	}, logger)
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return audio.Silent{}
	}
	return player
}

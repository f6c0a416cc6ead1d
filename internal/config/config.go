// Package config provides YAML-based configuration loading and validation
// for the world, frame policy, input, audio and the ordered level list.
package config

import (
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cleancity/internal/model"
)

// Config is the complete game configuration.
type Config struct {
	World  WorldConfig   `yaml:"world"`
	Frame  FrameConfig   `yaml:"frame"`
	Input  InputConfig   `yaml:"input"`
	Audio  AudioConfig   `yaml:"audio"`
	Intro  IntroConfig   `yaml:"intro"`
	Levels []LevelConfig `yaml:"levels"`
}

// WorldConfig defines the size of the street in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FrameConfig defines the frame loop.
type FrameConfig struct {
	FPS      int     `yaml:"fps"`
	MaxDelta float64 `yaml:"max_delta"` // Seconds; longer frames are clamped
}

// InputConfig defines keyboard sampling.
type InputConfig struct {
	Hold float64 `yaml:"hold"` // Seconds a key press keeps its button held
}

// AudioConfig defines the audio backend.
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float64 `yaml:"volume"`
	FadeSteps int     `yaml:"fade_steps"`
}

// IntroConfig toggles the opening slideshow.
type IntroConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LevelConfig is one street. Name defaults to the background key.
type LevelConfig struct {
	Name        string  `yaml:"name,omitempty"`
	TotalTime   float64 `yaml:"total_time"`
	TrashCount  int     `yaml:"trash_count"`
	TrashSize   float64 `yaml:"trash_size"`
	PlayerSpeed float64 `yaml:"player_speed"`
	TruckWidth  float64 `yaml:"truck_width"`
	TruckHeight float64 `yaml:"truck_height"`
	Background  string  `yaml:"background"`
}

// Level converts the entry into gameplay parameters.
func (l LevelConfig) Level() model.Level {
	name := l.Name
	if name == "" {
		name = l.Background
	}
	return model.Level{
		Name:          name,
		TotalTime:     l.TotalTime,
		TrashCount:    l.TrashCount,
		TrashSize:     l.TrashSize,
		PlayerSpeed:   l.PlayerSpeed,
		TruckWidth:    l.TruckWidth,
		TruckHeight:   l.TruckHeight,
		BackgroundKey: l.Background,
	}
}

// GameLevels returns the configured levels in play order.
func (c Config) GameLevels() []model.Level {
	levels := make([]model.Level, 0, len(c.Levels))
	for _, l := range c.Levels {
		levels = append(levels, l.Level())
	}
	return levels
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

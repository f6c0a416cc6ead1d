package config

import (
	_ "embed"
)

//go:embed defaults/cleancity.yaml
var defaultYAML []byte

// Built-in tuning.
const (
	DefaultWorldWidth  = 800
	DefaultWorldHeight = 480
	DefaultFPS         = 60
	DefaultMaxDelta    = 0.1
	DefaultHold        = 0.2
	DefaultVolume      = 0.8
	DefaultFadeSteps   = 10
)

// Default returns the hardcoded configuration with the five built-in streets.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  DefaultWorldWidth,
			Height: DefaultWorldHeight,
		},
		Frame: FrameConfig{
			FPS:      DefaultFPS,
			MaxDelta: DefaultMaxDelta,
		},
		Input: InputConfig{
			Hold: DefaultHold,
		},
		Audio: AudioConfig{
			Enabled:   true,
			Volume:    DefaultVolume,
			FadeSteps: DefaultFadeSteps,
		},
		Intro: IntroConfig{
			Enabled: true,
		},
		Levels: []LevelConfig{
			{TotalTime: 60, TrashCount: 15, TrashSize: 18, PlayerSpeed: 250, TruckWidth: 64, TruckHeight: 32, Background: "Street"},
			{TotalTime: 50, TrashCount: 18, TrashSize: 20, PlayerSpeed: 260, TruckWidth: 64, TruckHeight: 32, Background: "StreetLDestN"},
			{TotalTime: 40, TrashCount: 22, TrashSize: 18, PlayerSpeed: 270, TruckWidth: 64, TruckHeight: 32, Background: "StreetRedUrban"},
			{TotalTime: 35, TrashCount: 24, TrashSize: 18, PlayerSpeed: 280, TruckWidth: 64, TruckHeight: 32, Background: "StreetMedianNight"},
			{TotalTime: 27, TrashCount: 28, TrashSize: 16, PlayerSpeed: 280, TruckWidth: 64, TruckHeight: 32, Background: "StreetBiscuit"},
		},
	}
}

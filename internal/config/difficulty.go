package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// TimeScaleForPreset returns the factor applied to every level's total time.
func TimeScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.25
	case DifficultyHard:
		return 0.8
	default:
		return 1.0
	}
}

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", s)
	}
}

// ApplyDifficulty scales the time limit of every level. A shorter limit also
// makes the truck faster, since its speed is derived from the total time.
func ApplyDifficulty(cfg *Config, preset DifficultyPreset) {
	scale := TimeScaleForPreset(preset)
	for i := range cfg.Levels {
		cfg.Levels[i].TotalTime *= scale
	}
}

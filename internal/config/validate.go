package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/cleancity/internal/model"
)

// Validation errors. Level errors are wrapped with the level index.
var (
	ErrNoLevels     = errors.New("no levels configured")
	ErrInvalidLevel = errors.New("invalid level")
	ErrInvalidWorld = errors.New("invalid world")
	ErrInvalidFrame = errors.New("invalid frame settings")
)

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	if c.World.Width < model.PlayerWidth || c.World.Height < model.PlayerHeight {
		return fmt.Errorf("%w: size %vx%v is smaller than the %vx%v player",
			ErrInvalidWorld, c.World.Width, c.World.Height, model.PlayerWidth, model.PlayerHeight)
	}
	if c.Frame.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidFrame, c.Frame.FPS)
	}
	if c.Frame.MaxDelta <= 0 {
		return fmt.Errorf("%w: max_delta %v", ErrInvalidFrame, c.Frame.MaxDelta)
	}
	if c.Input.Hold < 0 {
		return fmt.Errorf("%w: input hold %v", ErrInvalidFrame, c.Input.Hold)
	}
	if len(c.Levels) == 0 {
		return ErrNoLevels
	}
	for i, l := range c.Levels {
		if err := l.validate(c.World); err != nil {
			return fmt.Errorf("%w %d: %s", ErrInvalidLevel, i, err)
		}
	}
	return nil
}

func (l LevelConfig) validate(world WorldConfig) error {
	switch {
	case l.TotalTime <= 0:
		return fmt.Errorf("total_time %v must be positive", l.TotalTime)
	case l.TrashCount < 0:
		return fmt.Errorf("trash_count %d must not be negative", l.TrashCount)
	case l.TrashSize <= 0:
		return fmt.Errorf("trash_size %v must be positive", l.TrashSize)
	case l.TrashSize > world.Width || l.TrashSize > world.Height:
		return fmt.Errorf("trash_size %v does not fit the world", l.TrashSize)
	case l.PlayerSpeed <= 0:
		return fmt.Errorf("player_speed %v must be positive", l.PlayerSpeed)
	case l.TruckWidth <= 0 || l.TruckHeight <= 0:
		return fmt.Errorf("truck size %vx%v must be positive", l.TruckWidth, l.TruckHeight)
	case l.Background == "":
		return errors.New("background is required")
	}
	return nil
}

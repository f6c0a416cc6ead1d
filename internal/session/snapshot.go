package session

import "github.com/vovakirdan/cleancity/internal/model"

// Notice is a timed HUD message.
type Notice struct {
	Visible   bool
	Remaining float64
}

// Snapshot is a read-only copy of everything the renderer needs for a frame.
type Snapshot struct {
	LevelIndex    int
	LevelCount    int
	LevelName     string
	BackgroundKey string

	WorldWidth  float64
	WorldHeight float64

	Player model.Player
	Truck  model.Truck
	Trash  []model.Trash

	Score        int
	CarriedTrash int
	TimeLeft     float64
	GameOver     bool
	GameWon      bool

	CleanStreetFirst   Notice
	AllLevelsCompleted Notice
}

// Snapshot copies the current frame state.
func (s *Session) Snapshot() Snapshot {
	w := s.world
	level := s.levels[s.index]

	return Snapshot{
		LevelIndex:    s.index,
		LevelCount:    len(s.levels),
		LevelName:     level.Name,
		BackgroundKey: level.BackgroundKey,
		WorldWidth:    w.Width,
		WorldHeight:   w.Height,
		Player:        *w.Player,
		Truck:         *w.Truck,
		Trash:         append([]model.Trash(nil), w.Trash...),
		Score:         w.Score.Value,
		CarriedTrash:  w.CarriedTrash,
		TimeLeft:      w.TimeLeft,
		GameOver:      w.GameOver,
		GameWon:       w.GameWon,
		CleanStreetFirst: Notice{
			Visible:   s.cleanFirst.Active(),
			Remaining: s.cleanFirst.Remaining(),
		},
		AllLevelsCompleted: Notice{
			Visible:   s.completed.Active(),
			Remaining: s.completed.Remaining(),
		},
	}
}

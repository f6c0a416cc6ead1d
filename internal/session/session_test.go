package session

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/cleancity/internal/controller"
	"github.com/vovakirdan/cleancity/internal/core"
	"github.com/vovakirdan/cleancity/internal/model"
)

type recordingAudio struct {
	cues    []controller.Cue
	fadeIns int
	fadeOut int
}

func (r *recordingAudio) Play(cue controller.Cue, _ float64) { r.cues = append(r.cues, cue) }
func (r *recordingAudio) FadeIn(controller.Track, float64) { r.fadeIns++ }
func (r *recordingAudio) FadeOut(controller.Track, float64) { r.fadeOut++ }

func testLevels() []model.Level {
	names := []string{"Street", "StreetLDestN", "StreetRedUrban"}
	levels := make([]model.Level, 0, len(names))
	for i, name := range names {
		levels = append(levels, model.Level{
			Name:          name,
			TotalTime:     60 - float64(i)*10,
			TrashCount:    15 + i,
			TrashSize:     18,
			PlayerSpeed:   250,
			TruckWidth:    64,
			TruckHeight:   32,
			BackgroundKey: name,
		})
	}
	return levels
}

func newSession(t *testing.T, audio controller.AudioSink) *Session {
	t.Helper()
	s, err := New(testLevels(), Config{WorldWidth: 800, WorldHeight: 480, Seed: 7}, audio, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func clearStreet(s *Session) {
	s.World().Trash = nil
	s.World().CarriedTrash = 0
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewRequiresLevels(t *testing.T) {
	_, err := New(nil, Config{WorldWidth: 800, WorldHeight: 480}, nil, nil)
	if !errors.Is(err, ErrNoLevels) {
		t.Fatalf("expected ErrNoLevels, got %v", err)
	}
}

func TestNewLoadsStartLevel(t *testing.T) {
	audio := &recordingAudio{}
	s, err := New(testLevels(), Config{WorldWidth: 800, WorldHeight: 480, StartLevel: 1}, audio, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
	if len(s.World().Trash) != 16 {
		t.Errorf("trash = %d, want 16", len(s.World().Trash))
	}
	if audio.fadeIns != 1 {
		t.Errorf("music fade-ins = %d, want 1", audio.fadeIns)
	}
}

func TestLoadClampsIndex(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{-3, 0},
		{0, 0},
		{2, 2},
		{9, 2},
	}

	s := newSession(t, nil)
	for _, tt := range tests {
		s.Load(tt.index)
		if s.Index() != tt.want {
			t.Errorf("Load(%d): index = %d, want %d", tt.index, s.Index(), tt.want)
		}
	}
}

func TestAdvanceRefusedWhileTrashCarried(t *testing.T) {
	s := newSession(t, nil)
	s.World().Trash = nil
	s.World().CarriedTrash = 3
	before := s.World()

	if s.Advance() {
		t.Fatal("advance should be refused")
	}
	if s.Index() != 0 {
		t.Errorf("index = %d, want 0", s.Index())
	}
	if s.World() != before {
		t.Error("world should not be rebuilt")
	}
	if s.World().CarriedTrash != 3 {
		t.Errorf("carried = %d, want 3", s.World().CarriedTrash)
	}

	snap := s.Snapshot()
	if !snap.CleanStreetFirst.Visible || !almostEqual(snap.CleanStreetFirst.Remaining, 3) {
		t.Errorf("clean notice = %+v, want visible with 3s", snap.CleanStreetFirst)
	}
}

func TestAdvanceRefusedWhileTrashOnStreet(t *testing.T) {
	s := newSession(t, nil)
	if s.Advance() {
		t.Fatal("advance should be refused with trash on the street")
	}
	if !s.Snapshot().CleanStreetFirst.Visible {
		t.Error("clean notice should be visible")
	}
}

func TestAdvanceMovesToNextLevel(t *testing.T) {
	audio := &recordingAudio{}
	s := newSession(t, audio)
	clearStreet(s)

	if !s.Advance() {
		t.Fatal("advance should succeed on a clean street")
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
	if s.Level().Name != "StreetLDestN" {
		t.Errorf("level = %q", s.Level().Name)
	}
	if len(s.World().Trash) != 16 {
		t.Errorf("trash = %d, want 16", len(s.World().Trash))
	}
	if audio.fadeIns != 2 {
		t.Errorf("music fade-ins = %d, want 2", audio.fadeIns)
	}
	if s.Snapshot().AllLevelsCompleted.Visible {
		t.Error("completed notice should not be visible")
	}
}

func TestAdvanceWrapsAfterLastLevel(t *testing.T) {
	s := newSession(t, nil)
	s.Load(2)
	clearStreet(s)

	if !s.Advance() {
		t.Fatal("advance should succeed")
	}
	if s.Index() != 0 {
		t.Errorf("index = %d, want 0", s.Index())
	}
	snap := s.Snapshot()
	if !snap.AllLevelsCompleted.Visible || !almostEqual(snap.AllLevelsCompleted.Remaining, 3) {
		t.Errorf("completed notice = %+v", snap.AllLevelsCompleted)
	}
}

func TestNoticeExpires(t *testing.T) {
	s := newSession(t, nil)
	s.Advance()

	frame := core.NewInputFrame()
	for i := 0; i < 31; i++ {
		s.Step(0.1, frame)
	}
	if s.Snapshot().CleanStreetFirst.Visible {
		t.Error("notice should expire after 3 seconds")
	}
}

func TestRestartRebuildsWorld(t *testing.T) {
	s := newSession(t, nil)
	s.Load(1)
	frame := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		s.Step(0.1, frame)
	}
	before := s.World()

	s.Restart()

	if s.World() == before {
		t.Error("restart should build a new world")
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
	if s.World().TimeLeft != s.Level().TotalTime {
		t.Errorf("time left = %v, want %v", s.World().TimeLeft, s.Level().TotalTime)
	}
	if s.World().Truck.X != 0 {
		t.Errorf("truck x = %v, want 0", s.World().Truck.X)
	}
}

func TestStepClampsDelta(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"normal", 0.05, 59.95},
		{"long frame", 5, 59.9},
		{"negative", -1, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, nil)
			s.Step(tt.delta, core.NewInputFrame())
			if !almostEqual(s.World().TimeLeft, tt.want) {
				t.Errorf("time left = %v, want %v", s.World().TimeLeft, tt.want)
			}
		})
	}
}

func TestStepCommands(t *testing.T) {
	s := newSession(t, nil)
	clearStreet(s)

	frame := core.NewInputFrame()
	frame.Set(core.CommandAdvance)
	s.Step(0, frame)
	if s.Index() != 1 {
		t.Errorf("advance command: index = %d, want 1", s.Index())
	}

	before := s.World()
	frame.Clear()
	frame.Set(core.CommandRestart)
	s.Step(0, frame)
	if s.World() == before || s.Index() != 1 {
		t.Error("restart command should rebuild the current level")
	}
}

func TestDeathCuesAreDeferred(t *testing.T) {
	audio := &recordingAudio{}
	s := newSession(t, audio)

	w := s.World()
	front := controller.FrontStrip(controller.TruckCollisionBox(w.Truck))
	w.Player.X = front.X
	w.Player.Y = front.Y

	s.Step(0, core.NewInputFrame())
	if !w.GameOver || !w.Player.Defeated {
		t.Fatal("player on the truck front should lose")
	}
	if audio.fadeOut != 1 {
		t.Errorf("fade-outs = %d, want 1", audio.fadeOut)
	}
	if len(audio.cues) != 0 {
		t.Fatalf("cues played too early: %v", audio.cues)
	}

	frame := core.NewInputFrame()
	for i := 0; i < 6; i++ {
		s.Step(0.1, frame)
	}
	if len(audio.cues) != 2 || audio.cues[0] != controller.CueDeath || audio.cues[1] != controller.CueLose {
		t.Errorf("cues = %v, want death then lose", audio.cues)
	}
}

func TestLoadDropsPendingCues(t *testing.T) {
	audio := &recordingAudio{}
	s := newSession(t, audio)

	w := s.World()
	front := controller.FrontStrip(controller.TruckCollisionBox(w.Truck))
	w.Player.X = front.X
	w.Player.Y = front.Y
	s.Step(0, core.NewInputFrame())
	if s.PendingCues() != 1 {
		t.Fatalf("pending = %d, want 1", s.PendingCues())
	}

	s.Restart()
	if s.PendingCues() != 0 {
		t.Errorf("pending after restart = %d, want 0", s.PendingCues())
	}
	for i := 0; i < 10; i++ {
		s.Step(0.1, core.NewInputFrame())
	}
	if len(audio.cues) != 0 {
		t.Errorf("stale cues played: %v", audio.cues)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newSession(t, nil)
	snap := s.Snapshot()

	snap.Trash[0].X = -500
	snap.Player.X = -500

	if s.World().Trash[0].X == -500 || s.World().Player.X == -500 {
		t.Error("mutating the snapshot changed the world")
	}
	if snap.LevelCount != 3 || snap.BackgroundKey != "Street" {
		t.Errorf("snapshot level fields = %d %q", snap.LevelCount, snap.BackgroundKey)
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	buttons := []core.Button{core.ButtonLeft, core.ButtonRight, core.ButtonUp, core.ButtonDown}

	for seed := int64(1); seed <= 10; seed++ {
		level := model.Level{
			Name:          "Street",
			TotalTime:     20,
			TrashCount:    4,
			TrashSize:     18,
			PlayerSpeed:   250,
			TruckWidth:    64,
			TruckHeight:   32,
			BackgroundKey: "Street",
		}
		s, err := New([]model.Level{level}, Config{WorldWidth: 200, WorldHeight: 120, Seed: seed}, nil, nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		rng := rand.New(rand.NewSource(seed))
		frame := core.NewInputFrame()
		score := 0
		for i := 0; i < 2000; i++ {
			frame.Clear()
			for _, b := range buttons {
				if rng.Intn(3) == 0 {
					frame.Hold(b)
				}
			}
			s.Step(1.0/60, frame)

			w := s.World()
			if w.CarriedTrash < 0 {
				t.Fatalf("seed %d frame %d: carried = %d", seed, i, w.CarriedTrash)
			}
			if w.Score.Value < score {
				t.Fatalf("seed %d frame %d: score dropped from %d to %d", seed, i, score, w.Score.Value)
			}
			score = w.Score.Value
			if w.AllTrashGone() != w.GameWon {
				t.Fatalf("seed %d frame %d: all trash gone = %v, won = %v", seed, i, w.AllTrashGone(), w.GameWon)
			}
			if w.GameWon && !w.GameOver {
				t.Fatalf("seed %d frame %d: won without game over", seed, i)
			}
			p := w.Player.Rect()
			if p.X < 0 || p.Y < 0 || p.Right() > w.Width || p.Top() > w.Height {
				t.Fatalf("seed %d frame %d: player outside the world: %+v", seed, i, p)
			}
		}
	}
}

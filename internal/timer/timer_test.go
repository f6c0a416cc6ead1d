package timer

import "testing"

func TestCountdownFiresOnce(t *testing.T) {
	var c Countdown
	c.Arm(1.0)

	fired := 0
	for i := 0; i < 30; i++ {
		if c.Tick(0.1) {
			fired++
		}
	}

	if fired != 1 {
		t.Errorf("countdown fired %d times, expected 1", fired)
	}
	if c.Active() {
		t.Error("countdown should be inactive after firing")
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %v, expected 0", c.Remaining())
	}
}

func TestCountdownRemaining(t *testing.T) {
	var c Countdown
	c.Arm(3.0)
	c.Tick(0.5)

	if !c.Active() {
		t.Fatal("countdown should still be active")
	}
	if c.Remaining() != 2.5 {
		t.Errorf("Remaining() = %v, expected 2.5", c.Remaining())
	}

	c.Tick(-1)
	if c.Remaining() != 2.5 {
		t.Errorf("negative delta changed Remaining() to %v", c.Remaining())
	}
}

func TestCountdownStop(t *testing.T) {
	var c Countdown
	c.Arm(0.2)
	c.Stop()

	if c.Tick(1) {
		t.Error("stopped countdown should not fire")
	}
}

func TestInactiveCountdownNeverFires(t *testing.T) {
	var c Countdown
	if c.Tick(10) {
		t.Error("zero countdown should not fire")
	}
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var s Scheduler
	var order []string

	s.After(0.5, func() { order = append(order, "death") })
	s.After(0.5, func() { order = append(order, "lose") })
	s.After(1.0, func() { order = append(order, "late") })

	s.Tick(0.25)
	if len(order) != 0 {
		t.Fatalf("callbacks ran early: %v", order)
	}

	s.Tick(0.25)
	if len(order) != 2 || order[0] != "death" || order[1] != "lose" {
		t.Fatalf("order = %v, expected [death lose]", order)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", s.Pending())
	}

	s.Tick(0.5)
	if len(order) != 3 || order[2] != "late" {
		t.Errorf("order = %v, expected late callback last", order)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerReset(t *testing.T) {
	var s Scheduler
	ran := false
	s.After(0.1, func() { ran = true })

	s.Reset()
	s.Tick(1)

	if ran {
		t.Error("reset scheduler should drop pending callbacks")
	}
}

func TestSchedulerCallbackCanSchedule(t *testing.T) {
	var s Scheduler
	ran := false
	s.After(0.1, func() {
		s.After(0.1, func() { ran = true })
	})

	s.Tick(0.1)
	if ran {
		t.Fatal("nested callback should wait for its own delay")
	}
	s.Tick(0.1)
	if !ran {
		t.Error("nested callback should run on the following tick")
	}
}

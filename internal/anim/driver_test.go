package anim

import (
	"math"
	"testing"
)

func TestDriver_StartsIdle(t *testing.T) {
	d := NewDriver(DefaultStep)
	if d.State() != Idle || d.Time() != 0 || d.Pending() != 0 {
		t.Errorf("new driver = %+v", d)
	}
	if d.Label() != "Play Animation!" {
		t.Errorf("Label() = %q", d.Label())
	}
}

func TestDriver_NonPositiveStep(t *testing.T) {
	if got := NewDriver(0).Step(); got != DefaultStep {
		t.Errorf("Step() = %v, want %v", got, DefaultStep)
	}
}

func TestDriver_PlayPauseWithoutFrames(t *testing.T) {
	d := NewDriver(DefaultStep)
	id := d.Toggle()
	if id == 0 || !d.Running() {
		t.Fatalf("Toggle from idle: id=%d state=%v", id, d.State())
	}
	if d.Label() != "Pause Animation!" {
		t.Errorf("Label() = %q", d.Label())
	}

	if got := d.Toggle(); got != 0 {
		t.Errorf("Toggle from running returned %d, want 0", got)
	}
	if d.State() != Idle || d.Time() != 0 || d.Pending() != 0 {
		t.Errorf("after pause: state=%v time=%v pending=%d", d.State(), d.Time(), d.Pending())
	}
}

func TestDriver_CanceledFrameNeverFires(t *testing.T) {
	d := NewDriver(DefaultStep)
	id := d.Toggle()
	d.Toggle()

	if d.Fire(id) {
		t.Error("canceled frame fired")
	}
	if d.Time() != 0 {
		t.Errorf("time advanced to %v", d.Time())
	}

	// canceling again is a no-op
	d.Cancel(id)
	d.Cancel(id)
	if d.Pending() != 0 {
		t.Errorf("pending = %d", d.Pending())
	}
}

func TestDriver_FramesAdvanceClock(t *testing.T) {
	d := NewDriver(DefaultStep)
	id := d.Toggle()
	for i := 0; i < 10; i++ {
		next, ok := d.Advance(id)
		if !ok {
			t.Fatalf("frame %d did not fire", i)
		}
		if next == 0 || next == id {
			t.Fatalf("frame %d: next token %d", i, next)
		}
		id = next
	}
	if math.Abs(d.Time()-0.5) > 1e-12 {
		t.Errorf("time = %v, want 0.5", d.Time())
	}
	if d.Frames() != 10 {
		t.Errorf("Frames() = %d, want 10", d.Frames())
	}
}

func TestDriver_StaleTokenIsInert(t *testing.T) {
	d := NewDriver(DefaultStep)
	first := d.Toggle()
	second, _ := d.Advance(first)

	if d.Fire(first) {
		t.Error("already fired token fired again")
	}
	if d.Pending() != second {
		t.Errorf("pending = %d, want %d", d.Pending(), second)
	}
	if d.Fire(0) {
		t.Error("zero token fired")
	}
}

func TestDriver_PauseResumeContinuesClock(t *testing.T) {
	d := NewDriver(0.1)
	id := d.Toggle()
	id, _ = d.Advance(id)
	d.Advance(id)
	d.Toggle()
	paused := d.Time()

	id = d.Toggle()
	d.Advance(id)
	if math.Abs(d.Time()-(paused+0.1)) > 1e-12 {
		t.Errorf("time = %v, want %v", d.Time(), paused+0.1)
	}
}

func TestDriver_RescheduleWhileRunning(t *testing.T) {
	d := NewDriver(DefaultStep)
	old := d.Toggle()
	d.Advance(old)
	before := d.Time()
	stale := d.Pending()

	fresh := d.Reschedule()
	if fresh == 0 || fresh == stale {
		t.Fatalf("Reschedule returned %d (stale %d)", fresh, stale)
	}
	if d.Time() != before || !d.Running() {
		t.Errorf("Reschedule changed time or state: %v %v", d.Time(), d.State())
	}
	if d.Fire(stale) {
		t.Error("replaced frame fired")
	}
	if !d.Fire(fresh) {
		t.Error("fresh frame did not fire")
	}
}

func TestDriver_RescheduleWhileIdle(t *testing.T) {
	d := NewDriver(DefaultStep)
	if id := d.Reschedule(); id != 0 {
		t.Errorf("Reschedule while idle = %d, want 0", id)
	}
	if d.State() != Idle {
		t.Errorf("state = %v", d.State())
	}
}

func TestDriver_NextKeepsSinglePending(t *testing.T) {
	d := NewDriver(DefaultStep)
	id := d.Toggle()
	if got := d.Next(); got != 0 {
		t.Errorf("Next with a pending frame = %d, want 0", got)
	}
	if d.Pending() != id {
		t.Errorf("pending = %d, want %d", d.Pending(), id)
	}
}

package tick

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeRepeater struct {
	fn        func()
	period    time.Duration
	scheduled bool
	cancelled bool
	err       error
}

func (r *fakeRepeater) Schedule(period time.Duration, fn func()) error {
	if r.err != nil {
		return r.err
	}
	r.period = period
	r.fn = fn
	r.scheduled = true
	return nil
}

func (r *fakeRepeater) Cancel() { r.cancelled = true }

func TestSourceAdvancesOnePeriodPerFiring(t *testing.T) {
	var clk uint32
	rep := &fakeRepeater{}
	src := NewSource(rep, time.Millisecond, func(ms uint32) { clk += ms })
	if err := src.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if rep.period != time.Millisecond {
		t.Fatalf("expected 1ms schedule, got %v", rep.period)
	}
	for i := 0; i < 5000; i++ {
		rep.fn()
	}
	if clk != 5000 {
		t.Fatalf("expected clock at 5000ms after 5000 firings, got %d", clk)
	}
}

func TestSourceCoarserPeriod(t *testing.T) {
	var clk uint32
	rep := &fakeRepeater{}
	src := NewSource(rep, 5*time.Millisecond, func(ms uint32) { clk += ms })
	if err := src.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 10; i++ {
		rep.fn()
	}
	if clk != 50 {
		t.Fatalf("expected clock at 50ms after 10 firings of 5ms, got %d", clk)
	}
}

func TestSourceRejectsSubMillisecondPeriod(t *testing.T) {
	src := NewSource(&fakeRepeater{}, 100*time.Microsecond, func(uint32) {})
	if err := src.Start(); err == nil {
		t.Fatal("expected error for sub-millisecond period")
	}
}

func TestSourceRejectsNilAdvance(t *testing.T) {
	src := NewSource(&fakeRepeater{}, time.Millisecond, nil)
	if err := src.Start(); err == nil {
		t.Fatal("expected error for nil advance callback")
	}
}

func TestSourcePropagatesScheduleFailure(t *testing.T) {
	boom := errors.New("timer unavailable")
	src := NewSource(&fakeRepeater{err: boom}, time.Millisecond, func(uint32) {})
	err := src.Start()
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped schedule error, got %v", err)
	}
	if src.Running() {
		t.Fatal("source must not report running after a failed start")
	}
}

func TestSourceDoubleStart(t *testing.T) {
	src := NewSource(&fakeRepeater{}, time.Millisecond, func(uint32) {})
	if err := src.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := src.Start(); err == nil {
		t.Fatal("expected error on second start")
	}
}

func TestSourceStop(t *testing.T) {
	rep := &fakeRepeater{}
	src := NewSource(rep, time.Millisecond, func(uint32) {})
	src.Stop() // not running yet, must be a no-op
	if rep.cancelled {
		t.Fatal("stop before start cancelled the repeater")
	}
	if err := src.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	src.Stop()
	if !rep.cancelled {
		t.Fatal("expected repeater cancel on stop")
	}
	if src.Running() {
		t.Fatal("source still reports running after stop")
	}
}

func TestTimeRepeaterFires(t *testing.T) {
	var n atomic.Int32
	done := make(chan struct{})
	rep := NewRepeater()
	err := rep.Schedule(time.Millisecond, func() {
		if n.Add(1) == 5 {
			close(done)
		}
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	defer rep.Cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("repeater did not fire 5 times within 2s")
	}
}

func TestTimeRepeaterRejectsDoubleSchedule(t *testing.T) {
	rep := NewRepeater()
	if err := rep.Schedule(time.Millisecond, func() {}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	defer rep.Cancel()
	if err := rep.Schedule(time.Millisecond, func() {}); err == nil {
		t.Fatal("expected error on second schedule")
	}
}

func TestTimeRepeaterRejectsZeroPeriod(t *testing.T) {
	rep := NewRepeater()
	if err := rep.Schedule(0, func() {}); err == nil {
		t.Fatal("expected error for zero period")
	}
}

func TestTimeRepeaterCancelReschedule(t *testing.T) {
	rep := NewRepeater()
	if err := rep.Schedule(time.Millisecond, func() {}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	rep.Cancel()
	rep.Cancel() // second cancel is a no-op
	if err := rep.Schedule(time.Millisecond, func() {}); err != nil {
		t.Fatalf("reschedule after cancel: %v", err)
	}
	rep.Cancel()
}

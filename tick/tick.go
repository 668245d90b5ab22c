// Package tick drives a logical millisecond clock from a periodic timer.
package tick

import (
	"errors"
	"fmt"
	"time"
)

// Repeater schedules a callback at a fixed period. Implementations must
// invoke the callback from a single goroutine or timer context.
type Repeater interface {
	Schedule(period time.Duration, fn func()) error
	Cancel()
}

// NewRepeater returns the production time.Ticker-backed repeater.
func NewRepeater() Repeater {
	return &timeRepeater{}
}

type timeRepeater struct {
	ticker *time.Ticker
	done   chan struct{}
}

func (r *timeRepeater) Schedule(period time.Duration, fn func()) error {
	if period <= 0 {
		return fmt.Errorf("tick: invalid period %v", period)
	}
	if r.ticker != nil {
		return errors.New("tick: already scheduled")
	}
	r.ticker = time.NewTicker(period)
	r.done = make(chan struct{})
	go func(t *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-done:
				return
			case <-t.C:
				fn()
			}
		}
	}(r.ticker, r.done)
	return nil
}

func (r *timeRepeater) Cancel() {
	if r.ticker == nil {
		return
	}
	r.ticker.Stop()
	close(r.done)
	r.ticker = nil
	r.done = nil
}

// Source advances a logical clock by exactly one period per firing. The
// advance callback must not block, must not take the GUI lock, and must
// complete well within the period.
type Source struct {
	rep     Repeater
	period  time.Duration
	advance func(ms uint32)
	running bool
}

// NewSource wires a repeater to a clock-advance callback.
func NewSource(rep Repeater, period time.Duration, advance func(ms uint32)) *Source {
	return &Source{rep: rep, period: period, advance: advance}
}

// Start begins firing. Failure to start the underlying timer is a
// boot-time fatal condition for callers; there is no retry.
func (s *Source) Start() error {
	if s.running {
		return errors.New("tick: source already running")
	}
	if s.advance == nil {
		return errors.New("tick: no clock to advance")
	}
	ms := uint32(s.period / time.Millisecond)
	if ms == 0 {
		return fmt.Errorf("tick: period %v below one millisecond", s.period)
	}
	if err := s.rep.Schedule(s.period, func() { s.advance(ms) }); err != nil {
		return fmt.Errorf("tick: start: %w", err)
	}
	s.running = true
	return nil
}

// Stop cancels the timer. Only used by tests and orderly host shutdown;
// on the device the source runs for the process lifetime.
func (s *Source) Stop() {
	if !s.running {
		return
	}
	s.rep.Cancel()
	s.running = false
}

// Running reports whether the source has been started.
func (s *Source) Running() bool { return s.running }

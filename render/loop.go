// Package render owns the GUI render loop: the startup sequence that wires
// display and input drivers into the GUI state machine, the periodic tick
// source, and the steady-state loop that drives all GUI work under one
// mutual-exclusion domain.
package render

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"glimmer/gui"
	"glimmer/hal"
	"glimmer/tick"
)

const (
	// DefaultTickPeriod is the logical clock granularity.
	DefaultTickPeriod = time.Millisecond
	// DefaultQuantum is the steady-state scheduling period between work
	// units.
	DefaultQuantum = 10 * time.Millisecond
	// DefaultBufferLines is the staging band height in display lines.
	DefaultBufferLines = 40
)

// Options configures the loop's buffering and timing.
type Options struct {
	Class       hal.DisplayClass
	BufferLines int
	TickPeriod  time.Duration
	Quantum     time.Duration
}

func (o *Options) fillDefaults() {
	if o.BufferLines <= 0 {
		o.BufferLines = DefaultBufferLines
	}
	if o.TickPeriod <= 0 {
		o.TickPeriod = DefaultTickPeriod
	}
	if o.Quantum <= 0 {
		o.Quantum = DefaultQuantum
	}
}

// BuildFunc constructs the initial widget tree. It runs once, under the
// GUI lock, after the display and tick source are up.
type BuildFunc func(ui *gui.UI) error

// Loop is the single task authorized to drive the GUI work-processing
// call. It owns the GUI lock, the staging buffers and the driver
// references. Any other task that mutates GUI state must hold the lock
// via Lock/Unlock around the mutation.
type Loop struct {
	mu sync.Mutex

	ui    *gui.UI
	drv   hal.DisplayDriver
	in    hal.InputDriver
	log   hal.Logger
	src   *tick.Source
	opts  Options
	build BuildFunc

	ready bool
}

// New assembles a loop. in may be nil when no input device is configured;
// build may be nil for an empty screen.
func New(drv hal.DisplayDriver, in hal.InputDriver, log hal.Logger, rep tick.Repeater, opts Options, build BuildFunc) *Loop {
	opts.fillDefaults()
	l := &Loop{
		drv:   drv,
		in:    in,
		log:   log,
		opts:  opts,
		build: build,
	}
	l.src = tick.NewSource(rep, opts.TickPeriod, func(ms uint32) {
		// The clock update is atomic at the library level; the tick
		// callback never takes the GUI lock.
		if ui := l.ui; ui != nil {
			ui.TickInc(ms)
		}
	})
	return l
}

// Setup runs the strict startup sequence. Every step is fatal on failure:
// a device that cannot finish booting halts rather than degrading.
func (l *Loop) Setup() error {
	if l.ready {
		return errors.New("render: setup already complete")
	}
	if l.drv == nil {
		return errors.New("render: no display driver")
	}

	l.ui = gui.New()

	cfg, err := l.displayConfig()
	if err != nil {
		return err
	}
	if err := l.ui.RegisterDisplay(cfg); err != nil {
		return fmt.Errorf("render: register display: %w", err)
	}

	if l.in != nil {
		in := l.in
		l.ui.RegisterInput(func() (int16, int16, bool) {
			st := in.Read()
			return st.X, st.Y, st.Pressed
		})
	}

	if err := l.src.Start(); err != nil {
		return fmt.Errorf("render: tick source: %w", err)
	}

	if l.build != nil {
		l.mu.Lock()
		err := l.build(l.ui)
		l.mu.Unlock()
		if err != nil {
			return fmt.Errorf("render: build screen: %w", err)
		}
	}

	if l.log != nil {
		w, h := l.drv.Size()
		l.log.WriteLineString(fmt.Sprintf(
			"render: up class=%s %dx%d tick=%v quantum=%v",
			l.opts.Class, w, h, l.opts.TickPeriod, l.opts.Quantum))
	}
	l.ready = true
	return nil
}

// displayConfig allocates the staging buffers and selects the callback
// set for the configured display class.
func (l *Loop) displayConfig() (gui.DisplayConfig, error) {
	w, h := l.drv.Size()
	if w <= 0 || h <= 0 {
		return gui.DisplayConfig{}, fmt.Errorf("render: invalid display size %dx%d", w, h)
	}

	lines := l.opts.BufferLines
	if lines > int(h) {
		lines = int(h)
	}

	cfg := gui.DisplayConfig{
		Width:  w,
		Height: h,
		Flush:  l.drv.Flush,
	}

	switch l.opts.Class {
	case hal.ColorDouble:
		cfg.BandPixels = int(w) * lines
		cfg.Buf1 = make([]byte, cfg.BandPixels*2)
		cfg.Buf2 = make([]byte, cfg.BandPixels*2)
	case hal.ColorSingle:
		cfg.BandPixels = int(w) * lines
		cfg.Buf1 = make([]byte, cfg.BandPixels*2)
	case hal.Mono:
		mono, ok := l.drv.(hal.MonoDriver)
		if !ok {
			return gui.DisplayConfig{}, errors.New("render: display class mono needs a monochrome driver")
		}
		lines = (lines + 7) &^ 7
		cfg.BandPixels = int(w) * lines
		cfg.Buf1 = make([]byte, cfg.BandPixels/8)
		cfg.Round = mono.RoundRegion
		cfg.SetPixel = mono.SetBufferPixel
	default:
		return gui.DisplayConfig{}, fmt.Errorf("render: unknown display class %d", l.opts.Class)
	}
	return cfg, nil
}

// Run executes Setup if needed and then the steady-state loop: sleep one
// quantum, take the GUI lock, perform one unit of GUI work, release. In
// production ctx never cancels and Run never returns; tests inject a
// cancellable context.
func (l *Loop) Run(ctx context.Context) error {
	if !l.ready {
		if err := l.Setup(); err != nil {
			return err
		}
	}

	t := time.NewTicker(l.opts.Quantum)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			l.src.Stop()
			return ctx.Err()
		case <-t.C:
			if err := l.Step(); err != nil {
				l.src.Stop()
				return err
			}
		}
	}
}

// Step performs exactly one locked work unit. Exposed so an external
// scheduler (or a test) can drive the loop instead of Run.
func (l *Loop) Step() error {
	if !l.ready {
		return errors.New("render: setup not complete")
	}
	l.mu.Lock()
	err := l.ui.Process()
	l.mu.Unlock()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Lock acquires the GUI lock. Every mutation of GUI state from outside
// the loop must happen between Lock and Unlock. The wait is unbounded;
// holders are expected to release within one bounded unit of work.
func (l *Loop) Lock() { l.mu.Lock() }

// Unlock releases the GUI lock.
func (l *Loop) Unlock() { l.mu.Unlock() }

// UI returns the GUI state machine. Callers outside the loop must hold
// the GUI lock while using it.
func (l *Loop) UI() *gui.UI { return l.ui }

package gui

import "errors"

// FlushFunc writes staged pixels for an inclusive region to the display.
type FlushFunc func(x0, y0, x1, y1 int16, pixels []byte) error

// RoundFunc grows a redraw region to hardware-aligned boundaries.
type RoundFunc func(x0, y0, x1, y1 int16) (int16, int16, int16, int16)

// SetPixelFunc packs one region-relative pixel into a staging buffer laid
// out in the display's native format.
type SetPixelFunc func(buf []byte, bufW, x, y int16, on bool)

// ReadFunc samples the current pointer state.
type ReadFunc func() (x, y int16, pressed bool)

// DisplayConfig describes the staging buffers and driver callbacks
// installed for a display.
//
// Buf2 must be nil except for double-buffered color displays. Round and
// SetPixel must both be set for monochrome displays and must both be nil
// otherwise.
type DisplayConfig struct {
	Width, Height int16
	Buf1, Buf2    []byte
	BandPixels    int // staging capacity of each buffer, in pixels
	Flush         FlushFunc
	Round         RoundFunc
	SetPixel      SetPixelFunc
}

// UI is the GUI state machine: the widget tree, the logical clock and the
// registered display and input plumbing.
type UI struct {
	clk clock

	disp *display
	scr  *Screen
	in   *indev

	lastTick    uint32
	dirty       Rect
	hasDirty    bool
	fullPending bool
}

// New returns an empty UI with no display, input or widgets.
func New() *UI {
	return &UI{}
}

// TickInc advances the logical clock. Safe to call from timer context
// without the GUI lock; must never block.
func (ui *UI) TickInc(ms uint32) {
	ui.clk.advance(ms)
}

// Ticks returns the logical clock value in milliseconds.
func (ui *UI) Ticks() uint32 {
	return ui.clk.now()
}

// RegisterDisplay installs the staging buffers and driver callbacks. It
// fails on inconsistent configurations; such failures are boot-time fatal
// for callers.
func (ui *UI) RegisterDisplay(cfg DisplayConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("gui: display size must be positive")
	}
	if cfg.Flush == nil {
		return errors.New("gui: flush callback required")
	}
	if len(cfg.Buf1) == 0 {
		return errors.New("gui: primary staging buffer required")
	}
	if cfg.BandPixels < int(cfg.Width) {
		return errors.New("gui: staging buffer smaller than one display line")
	}
	mono := cfg.SetPixel != nil || cfg.Round != nil
	if mono && (cfg.SetPixel == nil || cfg.Round == nil) {
		return errors.New("gui: monochrome displays need both rounder and per-pixel callbacks")
	}
	if mono && cfg.Buf2 != nil {
		return errors.New("gui: monochrome displays use a single staging buffer")
	}
	if cfg.Buf2 != nil && &cfg.Buf1[0] == &cfg.Buf2[0] {
		return errors.New("gui: staging buffers must be distinct")
	}

	ui.disp = &display{
		w:          cfg.Width,
		h:          cfg.Height,
		cfg:        cfg,
		bufs:       [2][]byte{cfg.Buf1, cfg.Buf2},
		double:     cfg.Buf2 != nil,
		bandPixels: cfg.BandPixels,
		mono:       mono,
	}
	if ui.scr != nil {
		ui.invalidateAll()
	}
	return nil
}

// DisplayConfig returns the registered display configuration, or the zero
// value when no display is registered.
func (ui *UI) DisplayConfig() DisplayConfig {
	if ui.disp == nil {
		return DisplayConfig{}
	}
	return ui.disp.cfg
}

// RegisterInput installs a pointer read callback. The callback is polled
// from Process, under the caller's GUI lock.
func (ui *UI) RegisterInput(read ReadFunc) {
	ui.in = &indev{read: read}
}

// Screen returns the root widget container, creating it on first use.
func (ui *UI) Screen() *Screen {
	if ui.scr == nil {
		ui.scr = newScreen(ui)
		ui.invalidateAll()
	}
	return ui.scr
}

// Pending reports whether redraw work is queued for the next Process call.
func (ui *UI) Pending() bool {
	return ui.hasDirty || ui.fullPending
}

// Process performs one unit of GUI work: it consumes elapsed logical
// ticks to advance animations, polls the input device, and redraws and
// flushes the dirty area. The caller must hold the GUI lock.
func (ui *UI) Process() error {
	now := ui.clk.now()
	elapsed := now - ui.lastTick
	ui.lastTick = now

	if ui.scr != nil {
		ui.scr.step(elapsed)
		if ui.in != nil {
			ui.in.poll(ui, now)
		}
	}

	if ui.disp == nil || ui.scr == nil {
		return nil
	}
	if ui.fullPending {
		ui.fullPending = false
		ui.invalidate(Rect{0, 0, ui.disp.w - 1, ui.disp.h - 1})
	}
	if !ui.hasDirty {
		return nil
	}

	area := ui.dirty.Intersect(Rect{0, 0, ui.disp.w - 1, ui.disp.h - 1})
	ui.dirty = Rect{}
	ui.hasDirty = false
	if area.Empty() {
		return nil
	}
	return ui.disp.render(ui.scr, area)
}

func (ui *UI) invalidate(r Rect) {
	if r.Empty() {
		return
	}
	if ui.hasDirty {
		ui.dirty = ui.dirty.Union(r)
		return
	}
	ui.dirty = r
	ui.hasDirty = true
}

func (ui *UI) invalidateAll() {
	if ui.disp == nil {
		ui.fullPending = true
		return
	}
	ui.invalidate(Rect{0, 0, ui.disp.w - 1, ui.disp.h - 1})
}

func (ui *UI) displaySize() (int16, int16) {
	if ui.disp == nil {
		return 0, 0
	}
	return ui.disp.w, ui.disp.h
}

// Package app is the composition root: it wires the HAL into a render
// loop, builds the demo screen and runs the loop as the device's
// dedicated GUI task.
package app

import (
	"context"
	"errors"

	"glimmer/config"
	"glimmer/gui"
	"glimmer/hal"
	"glimmer/render"
	"glimmer/tick"
)

// Run boots the device and drives GUI work until ctx is cancelled; in
// production ctx never cancels and Run never returns. Boot failures are
// logged, rendered as a diagnostic screen where possible, and returned.
func Run(ctx context.Context, h hal.HAL, cfg config.Config) error {
	err := run(ctx, h, cfg)
	if err != nil && ctx.Err() == nil {
		failLoud(h, err)
	}
	return err
}

func run(ctx context.Context, h hal.HAL, cfg config.Config) error {
	drv := h.Display()
	if drv == nil {
		return errors.New("app: no display attached")
	}

	class, err := cfg.DisplayClass()
	if err != nil {
		return err
	}
	bg, fg, accent, err := cfg.Theme.Colors()
	if err != nil {
		return err
	}

	var in hal.InputDriver
	if cfg.Input {
		in = h.Input()
	}

	loop := render.New(drv, in, h.Logger(), tick.NewRepeater(), render.Options{
		Class:       class,
		BufferLines: cfg.Display.BufferLines,
		TickPeriod:  cfg.TickPeriod(),
		Quantum:     cfg.Quantum(),
	}, func(ui *gui.UI) error {
		return buildScreen(ui, theme{bg: bg, fg: fg, accent: accent})
	})

	return loop.Run(ctx)
}

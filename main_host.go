//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/shlex"

	"glimmer/app"
	"glimmer/config"
	"glimmer/hal"
	"glimmer/internal/buildinfo"
)

func main() {
	var (
		cfgPath  string
		headless bool
		runFor   time.Duration
	)
	flag.StringVar(&cfgPath, "config", "", "Path to a YAML config file.")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.DurationVar(&runFor, "run", 0, "Stop after this long in headless mode (0 = run forever).")

	if extra := os.Getenv("GLIMMER_FLAGS"); extra != "" {
		args, err := shlex.Split(extra)
		if err != nil {
			fatal(fmt.Errorf("GLIMMER_FLAGS: %w", err))
		}
		os.Args = append(os.Args, args...)
	}
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			fatal(err)
		}
	}

	class, err := cfg.DisplayClass()
	if err != nil {
		fatal(err)
	}
	h, err := hal.NewHost(hal.HostOptions{
		Class:  class,
		Width:  int16(cfg.Display.Width),
		Height: int16(cfg.Display.Height),
		Input:  cfg.Input,
	})
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if headless && runFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, runFor)
		defer cancel()
	}

	if headless {
		if err := app.Run(ctx, h, cfg); err != nil && ctx.Err() == nil {
			os.Exit(1)
		}
		return
	}

	// The render task runs on its own; the window presents the simulated
	// framebuffer until it is closed. A boot failure leaves the
	// diagnostic screen visible in the window.
	errc := make(chan error, 1)
	go func() { errc <- app.Run(ctx, h, cfg) }()

	if err := hal.RunWindow(ctx, h, "Glimmer ("+buildinfo.Short()+")"); err != nil {
		fatal(err)
	}
	stop()

	select {
	case err := <-errc:
		if err != nil && ctx.Err() == nil {
			os.Exit(1)
		}
	default:
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

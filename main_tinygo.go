//go:build tinygo

package main

import (
	"context"

	"glimmer/app"
	"glimmer/config"
	"glimmer/hal"
)

func main() {
	cfg := config.Default()
	cfg.Display.Class = hal.BoardDisplayClass().String()

	h, err := hal.New()
	if err != nil {
		// No HAL means no display and no logger to report on.
		select {}
	}

	_ = app.Run(context.Background(), h, cfg)

	// A halted device stays halted; the boot diagnostic (if any) remains
	// on the panel.
	select {}
}

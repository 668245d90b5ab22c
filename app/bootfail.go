package app

import (
	"fmt"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"

	"glimmer/hal"
)

// failLoud reports a boot failure. The error is logged and, when a color
// panel is available, rendered as a diagnostic screen. There is no
// degraded mode: callers halt after this.
func failLoud(h hal.HAL, err error) {
	if h == nil {
		return
	}
	if log := h.Logger(); log != nil {
		log.WriteLineString("boot failed: " + err.Error())
	}

	drv := h.Display()
	if drv == nil {
		return
	}
	if _, mono := drv.(hal.MonoDriver); mono {
		// The diagnostic terminal stages RGB565; on monochrome panels the
		// logged line is the diagnostic.
		return
	}

	d := newDiagDisplay(drv)
	term := tinyterm.NewTerminal(d)
	term.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: 10,
		FontOffset: 6,
	})
	fmt.Fprintf(term, "boot failed:\r\n\r\n%v\r\n", err)
	term.Display()
}

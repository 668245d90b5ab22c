package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// DisplayClass selects the staging buffer layout and the callback set the
// render loop installs at startup.
type DisplayClass uint8

const (
	// ColorDouble stages RGB565 bands in two buffers so one can be flushed
	// while the next band renders into the other.
	ColorDouble DisplayClass = iota + 1
	// ColorSingle stages RGB565 bands in a single buffer.
	ColorSingle
	// Mono stages 1bpp page-packed bands in a single buffer. Drivers for
	// this class must also implement MonoDriver.
	Mono
)

func (c DisplayClass) String() string {
	switch c {
	case ColorDouble:
		return "color-double"
	case ColorSingle:
		return "color-single"
	case Mono:
		return "mono"
	default:
		return "unknown"
	}
}

// DisplayDriver transfers staged pixels to the physical panel.
type DisplayDriver interface {
	// Size returns the panel resolution in pixels.
	Size() (w, h int16)
	// Flush writes the staged pixels for the inclusive region
	// [x0,y0]..[x1,y1] to the panel. It returns once the driver no longer
	// needs the buffer. The buffer layout is RGB565 little-endian for the
	// color classes and the driver's page-packed format for Mono.
	Flush(x0, y0, x1, y1 int16, pixels []byte) error
}

// MonoDriver is implemented by monochrome panel drivers, which need
// hardware-aligned redraw regions and a custom staging pixel layout.
type MonoDriver interface {
	DisplayDriver
	// RoundRegion grows a redraw region to the panel's page boundaries.
	RoundRegion(x0, y0, x1, y1 int16) (int16, int16, int16, int16)
	// SetBufferPixel packs one region-relative pixel into a staging
	// buffer. bufW is the region width in pixels.
	SetBufferPixel(buf []byte, bufW, x, y int16, on bool)
}

// PointerState is one input sample.
type PointerState struct {
	X, Y    int16
	Pressed bool
}

// InputDriver reads the current pointer state. Read is invoked under the
// GUI lock from the render loop's work unit and must not block.
type InputDriver interface {
	Read() PointerState
}

// HAL provides the only contact point between the app and the hardware.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() DisplayDriver // nil when no panel is attached
	Input() InputDriver     // nil when no input device is present
}

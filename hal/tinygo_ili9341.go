//go:build tinygo && baremetal && !glimmer_mono

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ili9341"
)

// BoardDisplayClass reports the class of the compiled-in panel.
func BoardDisplayClass() DisplayClass { return ColorDouble }

// New configures the color board: ILI9341 over SPI1 plus an FT6206
// capacitive touch controller on I2C0.
func New() (HAL, error) {
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	display := ili9341.NewSPI(machine.SPI1, machine.GP14, machine.GP13, machine.GP15)
	display.Configure(ili9341.Config{Rotation: ili9341.Rotation270})

	// Touch samples arrive in the 240x320 portrait frame; the panel is
	// driven in Rotation270.
	touch, err := newFT6206(machine.I2C0, func(x, y int16) (int16, int16) {
		return rotatePortrait270(x, y, 320)
	})
	if err != nil {
		// No touch is a valid configuration; the render loop simply
		// skips input registration.
		touch = nil
	}

	h := &tinygoHAL{
		logger: newBoardLogger(),
		led:    newBoardLED(),
		disp:   &ili9341Display{dev: display},
	}
	if touch != nil {
		h.in = touch
	}
	return h, nil
}

type ili9341Display struct {
	dev   *ili9341.Device
	txBuf []byte
}

func (d *ili9341Display) Size() (int16, int16) {
	return d.dev.Size()
}

func (d *ili9341Display) Flush(x0, y0, x1, y1 int16, pixels []byte) error {
	w := int(x1-x0) + 1
	h := int(y1-y0) + 1
	n := w * h * 2
	if n > len(pixels) {
		n = len(pixels)
	}
	if cap(d.txBuf) < n {
		d.txBuf = make([]byte, n)
	}
	buf := d.txBuf[:n]

	// Staged pixels are RGB565 little-endian. The panel expects big-endian.
	for i := 0; i+1 < n; i += 2 {
		buf[i] = pixels[i+1]
		buf[i+1] = pixels[i]
	}
	return d.dev.DrawRGBBitmap8(x0, y0, buf, int16(w), int16(h))
}

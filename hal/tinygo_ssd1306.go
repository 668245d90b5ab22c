//go:build tinygo && baremetal && glimmer_mono

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

// BoardDisplayClass reports the class of the compiled-in panel.
func BoardDisplayClass() DisplayClass { return Mono }

// New configures the monochrome board: an SSD1306 OLED on I2C0. No input
// device is present on this board.
func New() (HAL, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SCL:       machine.I2C0_SCL_PIN,
		SDA:       machine.I2C0_SDA_PIN,
		Frequency: 400_000,
	})
	if err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Address: 0x3C,
		Width:   128,
		Height:  64,
	})
	dev.ClearDisplay()

	return &tinygoHAL{
		logger: newBoardLogger(),
		led:    newBoardLED(),
		disp:   &ssd1306Display{dev: &dev, w: 128, h: 64},
	}, nil
}

// ssd1306Display stages 1bpp pages: one byte covers eight vertically
// stacked pixels, pages advance row-major.
type ssd1306Display struct {
	dev  *ssd1306.Device
	w, h int16
}

func (d *ssd1306Display) Size() (int16, int16) { return d.w, d.h }

func (d *ssd1306Display) RoundRegion(x0, y0, x1, y1 int16) (int16, int16, int16, int16) {
	y0 &^= 7
	y1 |= 7
	if y1 >= d.h {
		y1 = d.h - 1
	}
	return x0, y0, x1, y1
}

func (d *ssd1306Display) SetBufferPixel(buf []byte, bufW, x, y int16, on bool) {
	if x < 0 || y < 0 || x >= bufW {
		return
	}
	idx := int(x) + (int(y)/8)*int(bufW)
	if idx < 0 || idx >= len(buf) {
		return
	}
	bit := byte(1) << (uint(y) % 8)
	if on {
		buf[idx] |= bit
	} else {
		buf[idx] &^= bit
	}
}

func (d *ssd1306Display) Flush(x0, y0, x1, y1 int16, pixels []byte) error {
	w := int(x1-x0) + 1
	h := int(y1-y0) + 1
	if w <= 0 || h <= 0 {
		return nil
	}
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{A: 255}
	for ry := 0; ry < h; ry++ {
		for rx := 0; rx < w; rx++ {
			idx := rx + (ry/8)*w
			if idx >= len(pixels) {
				continue
			}
			c := off
			if pixels[idx]&(1<<(uint(ry)%8)) != 0 {
				c = on
			}
			d.dev.SetPixel(x0+int16(rx), y0+int16(ry), c)
		}
	}
	return d.dev.Display()
}

package app

import (
	"image/color"

	"tinygo.org/x/drivers"

	"glimmer/hal"
)

// diagDisplay adapts a color display driver to the terminal's Displayer
// interface, staging a full RGB565 frame that Display flushes at once.
type diagDisplay struct {
	drv    hal.DisplayDriver
	w, h   int16
	stride int
	buf    []byte
}

func newDiagDisplay(drv hal.DisplayDriver) *diagDisplay {
	w, h := drv.Size()
	return &diagDisplay{
		drv:    drv,
		w:      w,
		h:      h,
		stride: int(w) * 2,
		buf:    make([]byte, int(w)*int(h)*2),
	}
}

func (d *diagDisplay) Size() (int16, int16) {
	return d.w, d.h
}

func (d *diagDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		return
	}
	pixel := rgb565From888(c.R, c.G, c.B)
	off := int(y)*d.stride + int(x)*2
	if off < 0 || off+1 >= len(d.buf) {
		return
	}
	d.buf[off] = byte(pixel)
	d.buf[off+1] = byte(pixel >> 8)
}

func (d *diagDisplay) Display() error {
	return d.drv.Flush(0, 0, d.w-1, d.h-1, d.buf)
}

func (d *diagDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x1 := x + width - 1
	y1 := y + height - 1
	for py := y; py <= y1; py++ {
		for px := x; px <= x1; px++ {
			d.SetPixel(px, py, c)
		}
	}
	return nil
}

func (d *diagDisplay) ScrollUp(lines int16, bg color.RGBA) error {
	if lines <= 0 {
		return nil
	}
	n := int(lines)
	if n >= int(d.h) {
		return d.FillRectangle(0, 0, d.w, d.h, bg)
	}

	dstLen := (int(d.h) - n) * d.stride
	srcStart := n * d.stride
	copy(d.buf[:dstLen], d.buf[srcStart:srcStart+dstLen])
	return d.FillRectangle(0, d.h-int16(n), d.w, int16(n), bg)
}

func (d *diagDisplay) SetScroll(line int16) {
	_ = line
}

func (d *diagDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

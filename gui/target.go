package gui

import "image/color"

// target draws into one staging band. It implements the Displayer shape
// (Size, SetPixel, Display) so tinyfont can render glyphs straight into
// the band; coordinates are display coordinates, clipped to the band and
// the current widget clip.
type target struct {
	buf          []byte
	band         Rect
	bufW         int16
	dispW, dispH int16
	clip         Rect
	mono         bool
	setPx        SetPixelFunc
}

func (t *target) setClip(r Rect) {
	t.clip = r.Intersect(t.band)
}

func (t *target) Size() (int16, int16) {
	return t.dispW, t.dispH
}

func (t *target) SetPixel(x, y int16, c color.RGBA) {
	if !t.clip.Contains(x, y) {
		return
	}
	rx := x - t.band.X0
	ry := y - t.band.Y0
	if t.mono {
		on := int(c.R)*3+int(c.G)*6+int(c.B) >= 128*10
		t.setPx(t.buf, t.bufW, rx, ry, on)
		return
	}
	off := (int(ry)*int(t.bufW) + int(rx)) * 2
	if off < 0 || off+1 >= len(t.buf) {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	t.buf[off] = byte(p)
	t.buf[off+1] = byte(p >> 8)
}

func (t *target) Display() error { return nil }

func (t *target) fillRect(r Rect, c color.RGBA) {
	r = r.Intersect(t.clip)
	if r.Empty() {
		return
	}
	for y := r.Y0; y <= r.Y1; y++ {
		for x := r.X0; x <= r.X1; x++ {
			t.SetPixel(x, y, c)
		}
	}
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

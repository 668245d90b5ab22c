//go:build !tinygo

package hal

import "fmt"

// hostColorDisplay accepts RGB565 little-endian region flushes.
type hostColorDisplay struct {
	fb *hostFramebuffer
}

func (d *hostColorDisplay) Size() (int16, int16) {
	return int16(d.fb.width), int16(d.fb.height)
}

func (d *hostColorDisplay) Flush(x0, y0, x1, y1 int16, pixels []byte) error {
	w := int(x1-x0) + 1
	h := int(y1-y0) + 1
	if w <= 0 || h <= 0 {
		return fmt.Errorf("hal: empty flush region (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
	if len(pixels) < w*h*2 {
		return fmt.Errorf("hal: flush buffer too small: %d < %d", len(pixels), w*h*2)
	}

	d.fb.mu.Lock()
	defer d.fb.mu.Unlock()
	for ry := 0; ry < h; ry++ {
		y := int(y0) + ry
		if y < 0 || y >= d.fb.height {
			continue
		}
		src := ry * w * 2
		for rx := 0; rx < w; rx++ {
			x := int(x0) + rx
			off := src + rx*2
			d.fb.setPixelRGB565(x, y, uint16(pixels[off])|uint16(pixels[off+1])<<8)
		}
	}
	return nil
}

// hostMonoDisplay accepts 1bpp page-packed region flushes: one byte covers
// eight vertically stacked pixels, pages advance row-major (the SSD1306
// layout). White on black when presented.
type hostMonoDisplay struct {
	fb *hostFramebuffer
}

func (d *hostMonoDisplay) Size() (int16, int16) {
	return int16(d.fb.width), int16(d.fb.height)
}

func (d *hostMonoDisplay) RoundRegion(x0, y0, x1, y1 int16) (int16, int16, int16, int16) {
	y0 &^= 7
	y1 |= 7
	if int(y1) >= d.fb.height {
		y1 = int16(d.fb.height - 1)
	}
	return x0, y0, x1, y1
}

func (d *hostMonoDisplay) SetBufferPixel(buf []byte, bufW, x, y int16, on bool) {
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

func (d *hostMonoDisplay) Flush(x0, y0, x1, y1 int16, pixels []byte) error {
	w := int(x1-x0) + 1
	h := int(y1-y0) + 1
	if w <= 0 || h <= 0 {
		return fmt.Errorf("hal: empty flush region (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
	pages := (h + 7) / 8
	if len(pixels) < w*pages {
		return fmt.Errorf("hal: flush buffer too small: %d < %d", len(pixels), w*pages)
	}

	const white = uint16(0xFFFF)
	const black = uint16(0x0000)

	d.fb.mu.Lock()
	defer d.fb.mu.Unlock()
	for ry := 0; ry < h; ry++ {
		for rx := 0; rx < w; rx++ {
			idx := rx + (ry/8)*w
			on := pixels[idx]&(1<<(uint(ry)%8)) != 0
			p := black
			if on {
				p = white
			}
			d.fb.setPixelRGB565(int(x0)+rx, int(y0)+ry, p)
		}
	}
	return nil
}

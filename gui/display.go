package gui

// display holds the registered staging buffers and driver callbacks.
type display struct {
	w, h       int16
	cfg        DisplayConfig
	bufs       [2][]byte
	active     int
	double     bool
	bandPixels int
	mono       bool
}

// render redraws the dirty area band by band. Each band is drawn into the
// active staging buffer and flushed; double-buffered displays alternate
// buffers between flushes so the driver can retain one while the next band
// renders.
func (d *display) render(scr *Screen, area Rect) error {
	if d.cfg.Round != nil {
		area.X0, area.Y0, area.X1, area.Y1 = d.cfg.Round(area.X0, area.Y0, area.X1, area.Y1)
		area = area.Intersect(Rect{0, 0, d.w - 1, d.h - 1})
		if area.Empty() {
			return nil
		}
	}

	aw := int(area.W())
	rows := d.bandPixels / aw
	if d.mono {
		// Bands must cover whole 8-pixel pages.
		rows &^= 7
		if rows == 0 {
			rows = 8
		}
	}
	if rows < 1 {
		rows = 1
	}

	for y := area.Y0; y <= area.Y1; y += int16(rows) {
		y1 := y + int16(rows) - 1
		if y1 > area.Y1 {
			y1 = area.Y1
		}
		band := Rect{area.X0, y, area.X1, y1}

		t := target{
			buf:   d.bufs[d.active],
			band:  band,
			bufW:  int16(aw),
			dispW: d.w,
			dispH: d.h,
			mono:  d.mono,
			setPx: d.cfg.SetPixel,
		}
		scr.draw(&t)

		if err := d.cfg.Flush(band.X0, band.Y0, band.X1, band.Y1, d.bufs[d.active]); err != nil {
			return err
		}
		if d.double {
			d.active ^= 1
		}
	}
	return nil
}

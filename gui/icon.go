package gui

import "image/color"

// Bitmap is a 1bpp glyph, row-major with the most significant bit leftmost.
type Bitmap struct {
	W, H int16
	Rows []uint16
}

// Icon renders a Bitmap in a solid color.
type Icon struct {
	Obj
	bmp   Bitmap
	color color.RGBA
}

// NewIcon creates an icon on the screen, sized to its bitmap.
func NewIcon(s *Screen, bmp Bitmap) *Icon {
	i := &Icon{
		bmp:   bmp,
		color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	i.ui = s.ui
	i.w = bmp.W
	i.h = bmp.H
	s.add(i)
	return i
}

func (i *Icon) SetColor(c color.RGBA) {
	i.color = c
	i.invalidate()
}

func (i *Icon) draw(t *target) {
	for ry := int16(0); ry < i.bmp.H && int(ry) < len(i.bmp.Rows); ry++ {
		row := i.bmp.Rows[ry]
		for rx := int16(0); rx < i.bmp.W; rx++ {
			if row&(1<<(15-uint(rx))) != 0 {
				t.SetPixel(i.x+rx, i.y+ry, i.color)
			}
		}
	}
}

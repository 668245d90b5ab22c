package gui

import "image/color"

// widget is the internal contract each widget type fulfils.
type widget interface {
	step(elapsedMS uint32)
	draw(t *target)
	bounds() Rect
	clickable() bool
	clicked()
}

// Screen is the root of the widget tree. Widgets are drawn in creation
// order; later widgets paint over earlier ones.
type Screen struct {
	ui      *UI
	bg      color.RGBA
	widgets []widget
}

func newScreen(ui *UI) *Screen {
	return &Screen{ui: ui, bg: color.RGBA{A: 255}}
}

// SetBackground sets the screen fill color and schedules a full redraw.
func (s *Screen) SetBackground(c color.RGBA) {
	s.bg = c
	s.ui.invalidateAll()
}

func (s *Screen) add(w widget) {
	s.widgets = append(s.widgets, w)
}

func (s *Screen) step(elapsed uint32) {
	for _, w := range s.widgets {
		w.step(elapsed)
	}
}

func (s *Screen) draw(t *target) {
	t.setClip(t.band)
	t.fillRect(t.band, s.bg)
	for _, w := range s.widgets {
		b := w.bounds()
		if b.Intersect(t.band).Empty() {
			continue
		}
		t.setClip(b)
		w.draw(t)
	}
}

// hit returns the topmost clickable widget containing the point.
func (s *Screen) hit(x, y int16) widget {
	for i := len(s.widgets) - 1; i >= 0; i-- {
		w := s.widgets[i]
		if w.clickable() && w.bounds().Contains(x, y) {
			return w
		}
	}
	return nil
}

// Align anchors for Obj.Align.
type Align uint8

const (
	AlignCenter Align = iota
	AlignTopLeft
	AlignTopMid
	AlignBottomMid
)

// Obj carries the position and size shared by all widgets.
type Obj struct {
	ui         *UI
	x, y, w, h int16
}

func (o *Obj) SetPos(x, y int16) {
	o.invalidate()
	o.x, o.y = x, y
	o.invalidate()
}

func (o *Obj) SetSize(w, h int16) {
	o.invalidate()
	o.w, o.h = w, h
	o.invalidate()
}

// Align positions the widget relative to the display with a pixel offset.
func (o *Obj) Align(a Align, dx, dy int16) {
	dw, dh := o.ui.displaySize()
	var x, y int16
	switch a {
	case AlignCenter:
		x = (dw-o.w)/2 + dx
		y = (dh-o.h)/2 + dy
	case AlignTopLeft:
		x = dx
		y = dy
	case AlignTopMid:
		x = (dw-o.w)/2 + dx
		y = dy
	case AlignBottomMid:
		x = (dw-o.w)/2 + dx
		y = dh - o.h + dy
	}
	o.SetPos(x, y)
}

// Bounds returns the widget's inclusive display region.
func (o *Obj) Bounds() Rect {
	return Rect{o.x, o.y, o.x + o.w - 1, o.y + o.h - 1}
}

func (o *Obj) bounds() Rect { return o.Bounds() }

func (o *Obj) invalidate() {
	if o.ui == nil {
		return
	}
	o.ui.invalidate(o.Bounds())
}

// Default widget behaviors, overridden by concrete types as needed.
func (o *Obj) step(uint32)     {}
func (o *Obj) clickable() bool { return false }
func (o *Obj) clicked()        {}

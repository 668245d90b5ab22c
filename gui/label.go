package gui

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// LongMode selects how a Label treats text wider than the widget.
type LongMode uint8

const (
	// LongModeClip sizes the label to its text and clips nothing.
	LongModeClip LongMode = iota
	// LongModeScrollCircular scrolls the text continuously, reentering
	// from the right after a gap.
	LongModeScrollCircular
)

const (
	scrollStepMS = 40 // one pixel of scroll per this many logical ms
	scrollGapPx  = 20
)

// Label renders a single line of text.
type Label struct {
	Obj
	text       string
	font       tinyfont.Fonter
	fontHeight int16
	fontOffset int16
	color      color.RGBA

	long   LongMode
	offset int16
	textW  int16
	accMS  uint32
}

// NewLabel creates an empty label on the screen with the default font.
func NewLabel(s *Screen) *Label {
	l := &Label{
		font:       &proggy.TinySZ8pt7b,
		fontHeight: 10,
		fontOffset: 6,
		color:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	l.ui = s.ui
	s.add(l)
	return l
}

// SetText replaces the label text. In clip mode the widget resizes to fit.
func (l *Label) SetText(text string) {
	l.invalidate()
	l.text = text
	_, ow := tinyfont.LineWidth(l.font, text)
	l.textW = int16(ow)
	if l.long == LongModeClip {
		l.w = l.textW
		l.h = l.fontHeight
	}
	l.offset = 0
	l.invalidate()
}

// SetFont replaces the font. height is the line height in pixels and
// offset the baseline offset from the top of the widget.
func (l *Label) SetFont(font tinyfont.Fonter, height, offset int16) {
	l.invalidate()
	l.font = font
	l.fontHeight = height
	l.fontOffset = offset
	if l.text != "" {
		l.SetText(l.text)
	}
	l.invalidate()
}

func (l *Label) SetColor(c color.RGBA) {
	l.color = c
	l.invalidate()
}

// SetWidth fixes the widget width, independent of the text width. Used
// with LongModeScrollCircular.
func (l *Label) SetWidth(w int16) {
	l.invalidate()
	l.w = w
	l.h = l.fontHeight
	l.invalidate()
}

func (l *Label) SetLongMode(m LongMode) {
	l.invalidate()
	l.long = m
	l.offset = 0
	l.accMS = 0
	if m == LongModeClip && l.text != "" {
		l.SetText(l.text)
	}
	l.invalidate()
}

// ScrollOffset returns the current circular scroll position in pixels.
func (l *Label) ScrollOffset() int16 {
	return l.offset
}

func (l *Label) step(elapsed uint32) {
	if l.long != LongModeScrollCircular || l.textW <= l.w {
		return
	}
	l.accMS += elapsed
	stepPx := int16(l.accMS / scrollStepMS)
	if stepPx == 0 {
		return
	}
	l.accMS %= scrollStepMS
	span := l.textW + scrollGapPx
	l.offset = (l.offset + stepPx) % span
	l.invalidate()
}

func (l *Label) draw(t *target) {
	if l.text == "" {
		return
	}
	baseline := l.y + l.fontOffset
	if l.long == LongModeScrollCircular && l.textW > l.w {
		x := l.x - l.offset
		tinyfont.WriteLine(t, l.font, x, baseline, l.text, l.color)
		tinyfont.WriteLine(t, l.font, x+l.textW+scrollGapPx, baseline, l.text, l.color)
		return
	}
	tinyfont.WriteLine(t, l.font, l.x, baseline, l.text, l.color)
}

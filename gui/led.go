package gui

import "image/color"

// LED is a small indicator that renders bright when on and dimmed when
// off.
type LED struct {
	Obj
	on      bool
	color   color.RGBA
	onClick func()
}

// NewLED creates an LED on the screen, initially off.
func NewLED(s *Screen) *LED {
	l := &LED{color: color.RGBA{R: 220, G: 40, B: 40, A: 255}}
	l.ui = s.ui
	s.add(l)
	return l
}

func (l *LED) SetColor(c color.RGBA) {
	l.color = c
	l.invalidate()
}

func (l *LED) On() {
	l.on = true
	l.invalidate()
}

func (l *LED) Off() {
	l.on = false
	l.invalidate()
}

func (l *LED) Toggle() {
	l.on = !l.on
	l.invalidate()
}

func (l *LED) IsOn() bool { return l.on }

// OnClick installs a click handler, making the LED a click target.
func (l *LED) OnClick(fn func()) {
	l.onClick = fn
}

func (l *LED) clickable() bool { return l.onClick != nil }

func (l *LED) clicked() {
	if l.onClick != nil {
		l.onClick()
	}
}

func (l *LED) draw(t *target) {
	c := l.color
	if !l.on {
		c = color.RGBA{R: c.R >> 2, G: c.G >> 2, B: c.B >> 2, A: c.A}
	}
	t.fillRect(l.Bounds(), c)
}

package gui

import (
	"image/color"
	"testing"
)

func TestLabelClipModeSizesToText(t *testing.T) {
	ui, _ := newColorUI(t, 128, 32, 32, false)
	l := NewLabel(ui.Screen())
	l.SetText("hello")
	b := l.Bounds()
	if b.W() <= 0 {
		t.Fatalf("expected positive width from text metrics, got %d", b.W())
	}
	if b.H() != 10 {
		t.Fatalf("expected default font height 10, got %d", b.H())
	}

	l.SetText("hello world")
	if l.Bounds().W() <= b.W() {
		t.Fatal("expected longer text to widen the label")
	}
}

func TestLabelShrinkRepaintsOldBounds(t *testing.T) {
	ui, p := newColorUI(t, 128, 32, 32, false)
	l := NewLabel(ui.Screen())
	l.SetText("wwwwwwwwwwww")
	wide := l.Bounds()

	if err := ui.Process(); err != nil {
		t.Fatalf("process: %v", err)
	}
	n := len(p.flushes)

	l.SetText("i")
	narrow := l.Bounds()
	if narrow.X1 >= wide.X1 {
		t.Fatalf("test text did not shrink the label: %d >= %d", narrow.X1, wide.X1)
	}
	if err := ui.Process(); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(p.flushes) != n+1 {
		t.Fatalf("expected one flush after the text change, got %d", len(p.flushes)-n)
	}
	f := p.flushes[n]
	if f.x1 < wide.X1 {
		t.Fatalf("repaint after shrink reaches only x1=%d, old text extended to x1=%d", f.x1, wide.X1)
	}
}

func TestLabelStaticTextDoesNotScroll(t *testing.T) {
	ui, _ := newColorUI(t, 128, 32, 32, false)
	l := NewLabel(ui.Screen())
	l.SetText("static")
	l.step(10 * scrollStepMS)
	if l.ScrollOffset() != 0 {
		t.Fatalf("clip-mode label scrolled to offset %d", l.ScrollOffset())
	}

	// Circular mode with text narrower than the widget stays put too.
	l.SetLongMode(LongModeScrollCircular)
	l.SetWidth(l.textW + 50)
	l.step(10 * scrollStepMS)
	if l.ScrollOffset() != 0 {
		t.Fatalf("short circular label scrolled to offset %d", l.ScrollOffset())
	}
}

func TestLabelCircularScrollStepsAndWraps(t *testing.T) {
	ui, _ := newColorUI(t, 128, 32, 32, false)
	l := NewLabel(ui.Screen())
	l.SetLongMode(LongModeScrollCircular)
	l.SetWidth(10)
	l.SetText("wrap around")
	if l.textW <= l.w {
		t.Fatalf("test text narrower than the widget: %d <= %d", l.textW, l.w)
	}

	span := l.textW + scrollGapPx
	l.step(uint32(span) * scrollStepMS)
	if l.ScrollOffset() != 0 {
		t.Fatalf("expected a full wrap back to 0, got offset %d", l.ScrollOffset())
	}

	l.step(scrollStepMS + scrollStepMS/2)
	if l.ScrollOffset() != 1 {
		t.Fatalf("expected offset 1, got %d", l.ScrollOffset())
	}
	// The half step left over above carries into the next one.
	l.step(scrollStepMS / 2)
	if l.ScrollOffset() != 2 {
		t.Fatalf("expected remainder to carry, got offset %d", l.ScrollOffset())
	}
}

func TestLabelScrollInvalidatesWidget(t *testing.T) {
	ui, p := newColorUI(t, 128, 32, 32, false)
	l := NewLabel(ui.Screen())
	l.SetLongMode(LongModeScrollCircular)
	l.SetWidth(30)
	l.SetText("invalidation check string")
	l.SetPos(40, 10)
	l.SetColor(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	if err := ui.Process(); err != nil {
		t.Fatalf("process: %v", err)
	}
	n := len(p.flushes)

	ui.TickInc(scrollStepMS)
	if err := ui.Process(); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(p.flushes) != n+1 {
		t.Fatalf("expected exactly one flush for the scroll step, got %d", len(p.flushes)-n)
	}
	f := p.flushes[n]
	want := Rect{40, 10, 69, 19}
	got := Rect{f.x0, f.y0, f.x1, f.y1}
	if got != want {
		t.Fatalf("expected flush of the label bounds %+v, got %+v", want, got)
	}
}

package gui

import "testing"

func TestRectEmpty(t *testing.T) {
	if (Rect{0, 0, 9, 9}).Empty() {
		t.Error("expected non-empty rect")
	}
	if !(Rect{5, 0, 4, 9}).Empty() {
		t.Error("expected empty rect when x1 < x0")
	}
	if !(Rect{0, 5, 9, 4}).Empty() {
		t.Error("expected empty rect when y1 < y0")
	}
	if (Rect{3, 3, 3, 3}).Empty() {
		t.Error("expected single-pixel rect to be non-empty")
	}
}

func TestRectSize(t *testing.T) {
	r := Rect{2, 3, 11, 7}
	if r.W() != 10 || r.H() != 5 {
		t.Errorf("expected 10x5, got %dx%d", r.W(), r.H())
	}
	var zero Rect
	if zero.W() != 1 || zero.H() != 1 {
		t.Errorf("expected zero rect to be one pixel, got %dx%d", zero.W(), zero.H())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{2, 2, 5, 5}
	for _, p := range [][2]int16{{2, 2}, {5, 5}, {3, 4}} {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("expected (%d,%d) inside %+v", p[0], p[1], r)
		}
	}
	for _, p := range [][2]int16{{1, 2}, {6, 5}, {3, 6}} {
		if r.Contains(p[0], p[1]) {
			t.Errorf("expected (%d,%d) outside %+v", p[0], p[1], r)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{10, 2, 12, 8}
	got := a.Union(b)
	want := Rect{0, 0, 12, 8}
	if got != want {
		t.Errorf("expected union %+v, got %+v", want, got)
	}
	empty := Rect{1, 1, 0, 0}
	if a.Union(empty) != a {
		t.Error("union with an empty rect must be identity")
	}
	if empty.Union(b) != b {
		t.Error("union of an empty rect must yield the other rect")
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{0, 0, 9, 9}
	b := Rect{5, 5, 15, 15}
	got := a.Intersect(b)
	want := Rect{5, 5, 9, 9}
	if got != want {
		t.Errorf("expected intersection %+v, got %+v", want, got)
	}
	c := Rect{20, 20, 30, 30}
	if !a.Intersect(c).Empty() {
		t.Error("expected empty intersection of disjoint rects")
	}
}

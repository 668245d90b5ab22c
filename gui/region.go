package gui

// Rect is an inclusive pixel region.
type Rect struct {
	X0, Y0, X1, Y1 int16
}

func (r Rect) Empty() bool {
	return r.X1 < r.X0 || r.Y1 < r.Y0
}

func (r Rect) W() int16 {
	if r.Empty() {
		return 0
	}
	return r.X1 - r.X0 + 1
}

func (r Rect) H() int16 {
	if r.Empty() {
		return 0
	}
	return r.Y1 - r.Y0 + 1
}

func (r Rect) Contains(x, y int16) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Union returns the bounding rectangle of both regions.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	if o.X0 < r.X0 {
		r.X0 = o.X0
	}
	if o.Y0 < r.Y0 {
		r.Y0 = o.Y0
	}
	if o.X1 > r.X1 {
		r.X1 = o.X1
	}
	if o.Y1 > r.Y1 {
		r.Y1 = o.Y1
	}
	return r
}

// Intersect returns the overlap of both regions, possibly empty.
func (r Rect) Intersect(o Rect) Rect {
	if o.X0 > r.X0 {
		r.X0 = o.X0
	}
	if o.Y0 > r.Y0 {
		r.Y0 = o.Y0
	}
	if o.X1 < r.X1 {
		r.X1 = o.X1
	}
	if o.Y1 < r.Y1 {
		r.Y1 = o.Y1
	}
	return r
}

package canvas

// Rect is an axis-aligned pixel rectangle: (X, Y) is the top-left corner in
// a normalized rectangle, with W and H extending right and down.
//
// Rect semantics (Normalized, Intersection, PutIn) follow SDL2's SDL_Rect
// conventions, as spec'd: a negative W or H flips the rectangle so it
// becomes positive, anchored at the opposite corner.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Normalized flips a negative width or height so the rectangle has a
// positive width and height, anchored appropriately.
func (r Rect) Normalized() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Intersection returns the overlapping rectangle of r and o, both
// normalized first. The result is empty (W==0, H==0) if they do not
// overlap.
func (r Rect) Intersection(o Rect) Rect {
	r = r.Normalized()
	o = o.Normalized()

	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)

	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// PutIn aligns inner within outer along each axis: ax/ay == -1 aligns to
// the near edge (left/top), 0 centers, +1 aligns to the far edge
// (right/bottom). Both rectangles are normalized first; the result keeps
// inner's width and height.
func PutIn(inner, outer Rect, ax, ay int) Rect {
	inner = inner.Normalized()
	outer = outer.Normalized()

	var x, y int
	switch {
	case ax < 0:
		x = outer.X
	case ax > 0:
		x = outer.X + outer.W - inner.W
	default:
		x = outer.X + (outer.W-inner.W)/2
	}
	switch {
	case ay < 0:
		y = outer.Y
	case ay > 0:
		y = outer.Y + outer.H - inner.H
	default:
		y = outer.Y + (outer.H-inner.H)/2
	}
	return Rect{X: x, Y: y, W: inner.W, H: inner.H}
}

package strata

import "math"

// Rect is an axis-aligned bounding box. All fields are expected to be
// non-negative; constructors and built-in layers maintain that invariant.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point (px, py) lies inside the rectangle:
// px in [X, X+Width) and py in [Y, Y+Height).
//
// The additions are overflow-checked: a rectangle whose far edge does not
// fit in an int contains no coordinate at all. That is an explicit policy,
// not an error.
func (r Rect) Contains(px, py int) bool {
	if r.Width > math.MaxInt-r.X || r.Height > math.MaxInt-r.Y {
		return false
	}
	return px >= r.X && px < r.X+r.Width && py >= r.Y && py < r.Y+r.Height
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

package strata

import "math"

// mat2 is a 2x2 linear map in row-major order:
//
//	| a  b |
//	| c  d |
type mat2 struct {
	a, b float64
	c, d float64
}

func identity2() mat2 {
	return mat2{a: 1, d: 1}
}

// mul multiplies two matrices (m * other): the combined map applies other
// first, then m.
func (m mat2) mul(other mat2) mat2 {
	return mat2{
		a: m.a*other.a + m.b*other.c,
		b: m.a*other.b + m.b*other.d,
		c: m.c*other.a + m.d*other.c,
		d: m.c*other.b + m.d*other.d,
	}
}

func (m mat2) apply(x, y float64) (float64, float64) {
	return m.a*x + m.b*y, m.c*x + m.d*y
}

// Matrix is a geometric filter applying a 2x2 linear map about a
// configurable center. It is built by composing primitive rotate, scale and
// shear operations in the order they are applied to the layer.
//
// Because a coordinate filter maps an output coordinate back to its source,
// the stored matrix is the inverse of the requested transform; composing
// "B then A" therefore multiplies A's inverse onto B's.
type Matrix[T Channel] struct {
	PixelIdentity[T]
	inv    mat2
	cx, cy float64
}

// NewMatrix returns an identity matrix filter centered on (cx, cy).
func NewMatrix[T Channel](cx, cy float64) *Matrix[T] {
	return &Matrix[T]{inv: identity2(), cx: cx, cy: cy}
}

// compose appends a primitive whose inverse is p.
func (m *Matrix[T]) compose(p mat2) *Matrix[T] {
	m.inv = m.inv.mul(p)
	return m
}

// Rotate rotates the layer by the given angle in degrees, clockwise on
// screen (y-down coordinates).
func (m *Matrix[T]) Rotate(degrees float64) *Matrix[T] {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	// inverse rotation
	return m.compose(mat2{a: cos, b: sin, c: -sin, d: cos})
}

// Scale scales the layer uniformly about the center.
func (m *Matrix[T]) Scale(factor float64) *Matrix[T] {
	return m.ScaleAxis(factor, factor)
}

// ScaleAxis scales the layer about the center with independent x and y
// factors.
func (m *Matrix[T]) ScaleAxis(sx, sy float64) *Matrix[T] {
	return m.compose(mat2{a: 1 / sx, d: 1 / sy})
}

// ShearX shears the layer parallel to the x axis.
func (m *Matrix[T]) ShearX(k float64) *Matrix[T] {
	return m.compose(mat2{a: 1, b: -k, d: 1})
}

// ShearY shears the layer parallel to the y axis.
func (m *Matrix[T]) ShearY(k float64) *Matrix[T] {
	return m.compose(mat2{a: 1, c: -k, d: 1})
}

// FilterCoord implements Filter: it maps an output coordinate back to its
// source by applying the stored inverse map about the center. A source
// location on a negative axis is reported as an impossible coordinate
// (math.MinInt), which no layer rect contains.
func (m *Matrix[T]) FilterCoord(x, y int) (int, int) {
	dx, dy := m.inv.apply(float64(x)-m.cx, float64(y)-m.cy)
	sx := dx + m.cx
	sy := dy + m.cy
	if sx < 0 || sy < 0 {
		return math.MinInt, math.MinInt
	}
	return int(sx), int(sy)
}

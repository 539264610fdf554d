package strata

// FlipDirection selects the axis (or axes) a Flip filter mirrors across.
type FlipDirection uint8

const (
	// FlipHorizontal mirrors columns: left and right swap.
	FlipHorizontal FlipDirection = iota
	// FlipVertical mirrors rows: top and bottom swap.
	FlipVertical
	// FlipBoth mirrors across both axes, a 180 degree rotation.
	FlipBoth
)

// Flip mirrors a layer inside a rectangle, normally the layer's own bounds.
// Mirroring is a coordinate transform and its own inverse, so the stored
// and requested transforms coincide.
type Flip[T Channel] struct {
	PixelIdentity[T]
	Direction FlipDirection
	Rect      Rect
}

// NewFlip returns a flip filter mirroring within rect.
func NewFlip[T Channel](direction FlipDirection, rect Rect) *Flip[T] {
	return &Flip[T]{Direction: direction, Rect: rect}
}

// FilterCoord implements Filter.
func (f *Flip[T]) FilterCoord(x, y int) (int, int) {
	switch f.Direction {
	case FlipHorizontal:
		return f.mirrorX(x), y
	case FlipVertical:
		return x, f.mirrorY(y)
	default:
		return f.mirrorX(x), f.mirrorY(y)
	}
}

func (f *Flip[T]) mirrorX(x int) int {
	return 2*f.Rect.X + f.Rect.Width - 1 - x
}

func (f *Flip[T]) mirrorY(y int) int {
	return 2*f.Rect.Y + f.Rect.Height - 1 - y
}

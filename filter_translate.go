package strata

// Translate moves a layer by an integer offset. As with every geometric
// filter the stored operation is the inverse: the output coordinate is
// shifted back by the offset to find its source.
type Translate[T Channel] struct {
	PixelIdentity[T]
	X, Y int
}

// NewTranslate returns a filter that moves the layer by (x, y).
func NewTranslate[T Channel](x, y int) *Translate[T] {
	return &Translate[T]{X: x, Y: y}
}

// FilterCoord implements Filter.
func (t *Translate[T]) FilterCoord(x, y int) (int, int) {
	return x - t.X, y - t.Y
}

package strata

// ImageLayer positions a bitmap image on the canvas.
type ImageLayer[T Channel] struct {
	Image *Image[T]
	X, Y  int

	filters []Filter[T]
}

// NewImageLayer returns an image layer placing img with its top-left corner
// at (x, y).
func NewImageLayer[T Channel](img *Image[T], x, y int) *ImageLayer[T] {
	return &ImageLayer[T]{Image: img, X: x, Y: y}
}

// Bounds implements Layer.
func (l *ImageLayer[T]) Bounds() Rect {
	return Rect{X: l.X, Y: l.Y, Width: l.Image.Width(), Height: l.Image.Height()}
}

// Filters implements Layer.
func (l *ImageLayer[T]) Filters() []Filter[T] { return l.filters }

// AddFilter appends a filter to the layer's chain.
func (l *ImageLayer[T]) AddFilter(f Filter[T]) { l.filters = append(l.filters, f) }

// SetFilters replaces the layer's filter chain.
func (l *ImageLayer[T]) SetFilters(filters []Filter[T]) { l.filters = filters }

// PixelAt implements Layer.
func (l *ImageLayer[T]) PixelAt(x, y int) (Pixel[T], bool) {
	if !l.Bounds().Contains(x, y) {
		return Pixel[T]{}, false
	}
	return l.Image.PixelAtUnchecked(x-l.X, y-l.Y), true
}

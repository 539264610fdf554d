package strata

// RectangleLayer fills an axis-aligned rectangle with a single pixel.
type RectangleLayer[T Channel] struct {
	Fill Pixel[T]
	Rect Rect

	filters []Filter[T]
}

// NewRectangleLayer returns a rectangle layer with an empty filter chain.
func NewRectangleLayer[T Channel](fill Pixel[T], rect Rect) *RectangleLayer[T] {
	return &RectangleLayer[T]{Fill: fill, Rect: rect}
}

// Bounds implements Layer.
func (l *RectangleLayer[T]) Bounds() Rect { return l.Rect }

// Filters implements Layer.
func (l *RectangleLayer[T]) Filters() []Filter[T] { return l.filters }

// AddFilter appends a filter to the layer's chain.
func (l *RectangleLayer[T]) AddFilter(f Filter[T]) { l.filters = append(l.filters, f) }

// SetFilters replaces the layer's filter chain.
func (l *RectangleLayer[T]) SetFilters(filters []Filter[T]) { l.filters = filters }

// PixelAt implements Layer.
func (l *RectangleLayer[T]) PixelAt(x, y int) (Pixel[T], bool) {
	if !l.Rect.Contains(x, y) {
		return Pixel[T]{}, false
	}
	return l.Fill, true
}

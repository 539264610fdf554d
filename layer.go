package strata

// Layer is a bounded, filterable pixel source. Implementations answer raw,
// unfiltered pixels; the pull pipeline in [FilteredPixelAt] layers the
// filter chain on top. Any external type satisfying this interface can be
// composited by a [Canvas].
type Layer[T Channel] interface {
	// Bounds returns the layer's bounding rectangle relative to the top
	// left of the canvas. Only coordinates inside it produce pixels.
	Bounds() Rect

	// Filters returns the layer's ordered filter chain.
	Filters() []Filter[T]

	// PixelAt returns the unfiltered pixel at a canvas coordinate,
	// bounds-checked against the layer's rectangle; ok=false means the
	// layer is absent at that point.
	PixelAt(x, y int) (Pixel[T], bool)
}

// FilteredPixelAt answers a layer's pixel at a canvas coordinate after its
// filter chain has been applied:
//
//  1. Every filter's coordinate transform runs in chain order, producing
//     the sampling coordinate.
//  2. The layer is sampled there; out of bounds means no pixel, and the
//     whole call reports ok=false (the layer is transparent at that point).
//  3. Every filter's pixel transform runs, in the same chain order, over
//     the sampled pixel.
func FilteredPixelAt[T Channel](l Layer[T], x, y int) (Pixel[T], bool) {
	filters := l.Filters()

	for _, f := range filters {
		x, y = f.FilterCoord(x, y)
	}

	p, ok := l.PixelAt(x, y)
	if !ok {
		return Pixel[T]{}, false
	}

	for _, f := range filters {
		p = f.FilterPixel(p)
	}
	return p, true
}

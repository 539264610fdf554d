package strata

// Filter transforms a layer's output. A filter may rewrite the sampled
// color (FilterPixel), rewrite the sampling coordinate (FilterCoord), or
// both; each operation defaults to identity via the embeddable
// [PixelIdentity] and [CoordIdentity] bases.
//
// A filter is stateless per invocation — a pure function of its own fields
// and the input — and order-sensitive when chained: see [FilteredPixelAt].
//
// A coordinate filter conceptually answers "where does the output pixel
// come from in the pre-filter source", so geometric filters store the
// inverse of the transform a user asks for. A coordinate that maps to a
// negative location is simply never contained by a layer's bounds, which
// is the "impossible coordinate" signal.
type Filter[T Channel] interface {
	// FilterPixel transforms a sampled pixel.
	FilterPixel(p Pixel[T]) Pixel[T]

	// FilterCoord transforms a sampling coordinate.
	FilterCoord(x, y int) (int, int)
}

// PixelIdentity is an embeddable base providing the identity pixel
// transform, for coordinate-only filters.
type PixelIdentity[T Channel] struct{}

// FilterPixel returns p unchanged.
func (PixelIdentity[T]) FilterPixel(p Pixel[T]) Pixel[T] { return p }

// CoordIdentity is an embeddable base providing the identity coordinate
// transform, for color-only filters.
type CoordIdentity struct{}

// FilterCoord returns (x, y) unchanged.
func (CoordIdentity) FilterCoord(x, y int) (int, int) { return x, y }

package strata

// ChannelMask multiplies every channel of the sampled pixel, alpha included,
// by a per-channel factor in [0,1]. A factor of zero masks the channel out
// entirely; a factor of one passes it through.
type ChannelMask[T Channel] struct {
	CoordIdentity
	R, G, B, A float32
}

// NewChannelMask returns a channel mask with the given per-channel factors.
func NewChannelMask[T Channel](r, g, b, a float32) *ChannelMask[T] {
	return &ChannelMask[T]{R: r, G: g, B: b, A: a}
}

// FilterPixel implements Filter.
func (f *ChannelMask[T]) FilterPixel(p Pixel[T]) Pixel[T] {
	return Pixel[T]{
		R: boundedScale(p.R, f.R),
		G: boundedScale(p.G, f.G),
		B: boundedScale(p.B, f.B),
		A: boundedScale(p.A, f.A),
	}
}

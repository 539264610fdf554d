package strata

// Brightness multiplies each color channel by a scalar, leaving alpha
// untouched. Results are clamped to the channel type's valid range.
type Brightness[T Channel] struct {
	CoordIdentity
	Multiplier float32
}

// NewBrightness returns a brightness filter with the given multiplier.
func NewBrightness[T Channel](multiplier float32) *Brightness[T] {
	return &Brightness[T]{Multiplier: multiplier}
}

// FilterPixel implements Filter.
func (f *Brightness[T]) FilterPixel(p Pixel[T]) Pixel[T] {
	return Pixel[T]{
		R: boundedScale(p.R, f.Multiplier),
		G: boundedScale(p.G, f.Multiplier),
		B: boundedScale(p.B, f.Multiplier),
		A: p.A,
	}
}

// boundedScale multiplies a channel value by a scalar, clamped to the
// channel's [min, max] range.
func boundedScale[T Channel](v T, mult float32) T {
	f := float32(v) * mult
	if f < ChannelMin[T]() {
		f = ChannelMin[T]()
	}
	if f > ChannelMax[T]() {
		f = ChannelMax[T]()
	}
	return T(f)
}

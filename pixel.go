package strata

import (
	"fmt"
	"unsafe"
)

// Pixel is an RGBA pixel, generic over the channel type T.
//
// The four channels are laid out consecutively with no padding, so the size
// and alignment of Pixel[T] are exactly 4x and 1x the size and alignment of
// T. That layout is load-bearing: it is what permits reinterpreting a flat
// channel buffer as a pixel buffer (and the reverse) without copying.
type Pixel[T Channel] struct {
	R, G, B, A T
}

// ColorType names the byte layout of a pixel buffer, for handing to an
// external codec.
type ColorType uint8

const (
	ColorRGBA8 ColorType = iota
	ColorRGBA16
	ColorRGBA32F
)

// String returns the conventional name of the layout.
func (c ColorType) String() string {
	switch c {
	case ColorRGBA8:
		return "rgba8"
	case ColorRGBA16:
		return "rgba16"
	case ColorRGBA32F:
		return "rgba32f"
	default:
		return fmt.Sprintf("ColorType(%d)", uint8(c))
	}
}

// ColorTypeOf returns the color layout tag for the channel type T, derived
// purely from the channel's size.
func ColorTypeOf[T Channel]() ColorType {
	var zero T
	switch unsafe.Sizeof(zero) {
	case 1:
		return ColorRGBA8
	case 2:
		return ColorRGBA16
	default:
		return ColorRGBA32F
	}
}

// White returns the fully opaque white pixel for the channel type.
func White[T Channel]() Pixel[T] {
	m := channelFromFloat[T](1)
	return Pixel[T]{R: m, G: m, B: m, A: m}
}

// Black returns the fully opaque black pixel for the channel type.
func Black[T Channel]() Pixel[T] {
	return Pixel[T]{A: channelFromFloat[T](1)}
}

// Red returns the fully opaque red pixel for the channel type.
func Red[T Channel]() Pixel[T] {
	m := channelFromFloat[T](1)
	return Pixel[T]{R: m, A: m}
}

// Green returns the fully opaque green pixel for the channel type.
func Green[T Channel]() Pixel[T] {
	m := channelFromFloat[T](1)
	return Pixel[T]{G: m, A: m}
}

// Blue returns the fully opaque blue pixel for the channel type.
func Blue[T Channel]() Pixel[T] {
	m := channelFromFloat[T](1)
	return Pixel[T]{B: m, A: m}
}

// Transparent returns the zero pixel: fully transparent black. It is the
// default value of Pixel[T] and the defined fallback of the Over operator.
func Transparent[T Channel]() Pixel[T] {
	return Pixel[T]{}
}

// ToFloat converts the pixel to a float-normalized pixel where every channel
// is in [0,1].
func (p Pixel[T]) ToFloat() Pixel[float32] {
	return Pixel[float32]{
		R: channelToFloat(p.R),
		G: channelToFloat(p.G),
		B: channelToFloat(p.B),
		A: channelToFloat(p.A),
	}
}

// FromFloat converts a float-normalized pixel to the channel type T by
// scaling each channel by the type's maximum. The conversion truncates;
// callers are expected to pass channels already inside [0,1].
func FromFloat[T Channel](p Pixel[float32]) Pixel[T] {
	return Pixel[T]{
		R: channelFromFloat[T](p.R),
		G: channelFromFloat[T](p.G),
		B: channelFromFloat[T](p.B),
		A: channelFromFloat[T](p.A),
	}
}

// Convert re-expresses a pixel in another channel type by round-tripping
// through the float representation.
func Convert[U, T Channel](p Pixel[T]) Pixel[U] {
	return FromFloat[U](p.ToFloat())
}

// Luma computes the NTSC weighted luminance of the pixel as a normalized
// float: 0.299 R + 0.587 G + 0.114 B.
func (p Pixel[T]) Luma() float32 {
	f := p.ToFloat()
	return 0.299*f.R + 0.587*f.G + 0.114*f.B
}

// String implements fmt.Stringer in the style rgba(r, g, b, a).
func (p Pixel[T]) String() string {
	return fmt.Sprintf("rgba(%v, %v, %v, %v)", p.R, p.G, p.B, p.A)
}

// Valid reports whether every channel of the pixel lies in the channel
// type's valid range.
func (p Pixel[T]) Valid() bool {
	return ValidChannel(p.R) && ValidChannel(p.G) && ValidChannel(p.B) && ValidChannel(p.A)
}

package strata

import (
	"fmt"
	"image"
	"image/color"
	"unsafe"
)

// channelTo16 widens a channel value to the 16-bit wire representation.
// Integer channels convert exactly (255*257 == 65535), so no precision is
// lost crossing the image.Image boundary.
func channelTo16[T Channel](v T) uint16 {
	var zero T
	switch unsafe.Sizeof(zero) {
	case 1:
		return uint16(v) * 257
	case 2:
		return uint16(v)
	default:
		return uint16(float32(v)*65535 + 0.5)
	}
}

// channelFrom16 narrows a 16-bit wire value to the channel type. The
// integer paths are exact inverses of channelTo16.
func channelFrom16[T Channel](v uint16) T {
	var zero T
	switch unsafe.Sizeof(zero) {
	case 1:
		return T(v >> 8)
	case 2:
		return T(v)
	default:
		return T(float32(v) / 65535)
	}
}

// At implements the image.Image interface. Out-of-bounds coordinates return
// transparent black, like the bounds-checked accessors.
func (im *Image[T]) At(x, y int) color.Color {
	p, _ := im.PixelAt(x, y)
	return color.NRGBA64{
		R: channelTo16(p.R),
		G: channelTo16(p.G),
		B: channelTo16(p.B),
		A: channelTo16(p.A),
	}
}

// Bounds implements the image.Image interface.
func (im *Image[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.width, im.height)
}

// ColorModel implements the image.Image interface.
func (im *Image[T]) ColorModel() color.Model {
	return color.NRGBA64Model
}

// FromImage converts a decoded stdlib image into the native pixel model,
// performed once at load time. Colors are carried through the non-premultiplied
// 16-bit representation and re-expressed in the channel type T.
func FromImage[T Channel](img image.Image) *Image[T] {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	return FromFunc(w, h, func(x, y int) Pixel[T] {
		c := color.NRGBA64Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA64)
		return Pixel[T]{
			R: channelFrom16[T](c.R),
			G: channelFrom16[T](c.G),
			B: channelFrom16[T](c.B),
			A: channelFrom16[T](c.A),
		}
	})
}

// FromImageStrict is like FromImage but fails loudly on color layouts the
// pixel model does not represent: anything that is not stored as 8- or
// 16-bit RGBA/NRGBA, grayscale, or a paletted form of those.
func FromImageStrict[T Channel](img image.Image) (*Image[T], error) {
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64,
		*image.Gray, *image.Gray16, *image.Paletted:
		return FromImage[T](img), nil
	default:
		return nil, fmt.Errorf("strata: unsupported source color layout %T", img)
	}
}

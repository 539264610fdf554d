package strata

import "errors"

// Image construction errors.
var (
	// ErrIncorrectWidth is returned when the pixel count is not a multiple
	// of the declared width.
	ErrIncorrectWidth = errors.New("strata: pixel count is not a multiple of width")

	// ErrZeroWidth is returned when the width is zero but the buffer is not
	// empty.
	ErrZeroWidth = errors.New("strata: width is 0, but buffer isn't zero-length")
)

// Image is a row-major grid of pixels. The invariant
// len(pixels) == width*height holds for every constructed Image.
type Image[T Channel] struct {
	pixels []Pixel[T]
	width  int
	height int
}

// New creates an empty image with zero width and height.
func New[T Channel]() *Image[T] {
	return &Image[T]{}
}

// NewFilled creates an image of the given dimensions filled with a single
// pixel.
func NewFilled[T Channel](fill Pixel[T], width, height int) *Image[T] {
	pixels := make([]Pixel[T], width*height)
	for i := range pixels {
		pixels[i] = fill
	}
	return &Image[T]{pixels: pixels, width: width, height: height}
}

// FromPixels creates an image from a flat row-major pixel buffer and a
// width. The buffer is owned by the returned image. The height is
// len(pixels)/width; a remainder fails with ErrIncorrectWidth, and a zero
// width with a non-empty buffer fails with ErrZeroWidth.
func FromPixels[T Channel](pixels []Pixel[T], width int) (*Image[T], error) {
	if width == 0 {
		if len(pixels) != 0 {
			return nil, ErrZeroWidth
		}
		return New[T](), nil
	}
	if len(pixels)%width != 0 {
		return nil, ErrIncorrectWidth
	}
	return &Image[T]{pixels: pixels, width: width, height: len(pixels) / width}, nil
}

// FromFunc creates an image by sampling fn over every cell in row-major
// order.
func FromFunc[T Channel](width, height int, fn func(x, y int) Pixel[T]) *Image[T] {
	pixels := make([]Pixel[T], 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels = append(pixels, fn(x, y))
		}
	}
	return &Image[T]{pixels: pixels, width: width, height: height}
}

// Width returns the image width in pixels.
func (im *Image[T]) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image[T]) Height() int { return im.height }

// Pixels returns the backing pixel buffer. The slice aliases the image's
// storage; mutating it mutates the image.
func (im *Image[T]) Pixels() []Pixel[T] { return im.pixels }

// Contains reports whether (x, y) lies within [0,width) x [0,height).
func (im *Image[T]) Contains(x, y int) bool {
	return x >= 0 && x < im.width && y >= 0 && y < im.height
}

// indexUnchecked computes the buffer index of a coordinate without a bounds
// check. Callers must have bounds-checked already; an out-of-range index
// panics downstream on access.
func (im *Image[T]) indexUnchecked(x, y int) int {
	return y*im.width + x
}

// index computes the buffer index of a coordinate, or ok=false when the
// coordinate is out of bounds.
func (im *Image[T]) index(x, y int) (int, bool) {
	if !im.Contains(x, y) {
		return 0, false
	}
	return im.indexUnchecked(x, y), true
}

// Row returns the y-th row as a contiguous sub-slice of the backing buffer,
// or ok=false when y is out of range. Writes through the slice write into
// the image.
func (im *Image[T]) Row(y int) ([]Pixel[T], bool) {
	start, ok := im.index(0, y)
	if !ok {
		return nil, false
	}
	return im.pixels[start : start+im.width], true
}

// PixelAt returns the pixel at (x, y), or ok=false when out of bounds.
func (im *Image[T]) PixelAt(x, y int) (Pixel[T], bool) {
	i, ok := im.index(x, y)
	if !ok {
		return Pixel[T]{}, false
	}
	return im.pixels[i], true
}

// PixelAtUnchecked returns the pixel at (x, y) without a bounds check, for
// hot paths where the caller has already verified the coordinate. It panics
// if the coordinate is out of bounds.
func (im *Image[T]) PixelAtUnchecked(x, y int) Pixel[T] {
	return im.pixels[im.indexUnchecked(x, y)]
}

// SetPixelAt writes the pixel at (x, y); out-of-bounds writes are dropped.
func (im *Image[T]) SetPixelAt(x, y int, p Pixel[T]) {
	if i, ok := im.index(x, y); ok {
		im.pixels[i] = p
	}
}

// Draw blits src onto the image at offset (x, y), clipped to the image's
// bounds, blending each destination pixel with the corresponding source
// pixel. It reports whether anything was drawn: an offset at or past the
// image's far edge is a no-op, not an error, since clipping already handles
// partial overlap.
func (im *Image[T]) Draw(src *Image[T], x, y int, blend BlendFunc[T]) bool {
	if x < 0 || y < 0 || x >= im.width || y >= im.height {
		return false
	}

	w := min(x+src.width, im.width) - x
	h := min(y+src.height, im.height) - y
	if w <= 0 || h <= 0 {
		return false
	}

	for row := 0; row < h; row++ {
		start := im.indexUnchecked(x, y+row)
		dstRow := im.pixels[start : start+w]
		srcRow, _ := src.Row(row)
		srcRow = srcRow[:w]
		for i := range dstRow {
			dstRow[i] = blend(dstRow[i], srcRow[i])
		}
	}
	return true
}

// Bytes returns a flat byte view of the pixel buffer in the channel type's
// native layout. Its length is width*height*4*sizeof(channel). The view
// aliases the image's storage.
func (im *Image[T]) Bytes() []byte {
	return pixelBytes(im.pixels)
}

// ColorType returns the byte-layout tag of the image's pixel buffer.
func (im *Image[T]) ColorType() ColorType {
	return ColorTypeOf[T]()
}

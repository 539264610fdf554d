package codec

import (
	"image"
	"image/jpeg"
	"io"
)

// JPEGEncoder encodes images to JPEG. JPEG has no alpha channel; transparent
// regions are composited onto black by the encoder's color conversion.
type JPEGEncoder struct {
	// Quality in 1-100; zero means jpeg.DefaultQuality.
	Quality int
}

func (e *JPEGEncoder) Format() string    { return "jpeg" }
func (e *JPEGEncoder) Extension() string { return "jpg" }

func (e *JPEGEncoder) Encode(w io.Writer, img image.Image) error {
	q := e.Quality
	if q == 0 {
		q = jpeg.DefaultQuality
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
}

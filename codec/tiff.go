package codec

import (
	"image"
	"io"

	"golang.org/x/image/tiff"
)

// TIFFEncoder encodes images to TIFF.
type TIFFEncoder struct {
	// Compression defaults to uncompressed.
	Compression tiff.CompressionType
}

func (e *TIFFEncoder) Format() string    { return "tiff" }
func (e *TIFFEncoder) Extension() string { return "tiff" }

func (e *TIFFEncoder) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: e.Compression})
}

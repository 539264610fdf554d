package codec

import (
	"image"
	"image/png"
	"io"
)

// PNGEncoder encodes images to PNG using the standard library. PNG keeps
// full alpha, so it is the default output format.
type PNGEncoder struct {
	// CompressionLevel defaults to png.DefaultCompression.
	CompressionLevel png.CompressionLevel
}

func (e *PNGEncoder) Format() string    { return "png" }
func (e *PNGEncoder) Extension() string { return "png" }

func (e *PNGEncoder) Encode(w io.Writer, img image.Image) error {
	enc := &png.Encoder{CompressionLevel: e.CompressionLevel}
	return enc.Encode(w, img)
}

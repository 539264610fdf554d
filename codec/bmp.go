package codec

import (
	"image"
	"io"

	"golang.org/x/image/bmp"
)

// BMPEncoder encodes images to Windows BMP.
type BMPEncoder struct{}

func (e *BMPEncoder) Format() string    { return "bmp" }
func (e *BMPEncoder) Extension() string { return "bmp" }

func (e *BMPEncoder) Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

package codec

import (
	"fmt"
	"image"
	"io"
	"os"

	// Registered for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an image in any registered format.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("codec: decode failed: %w", err)
	}
	return img, format, nil
}

// DecodeFile reads an image file in any registered format.
func DecodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path) // #nosec G304 -- image path is user-provided intentionally
	if err != nil {
		return nil, "", fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Save encodes img to path, choosing the encoder by file extension.
func Save(path string, img image.Image) error {
	reg := NewRegistry()
	enc, err := reg.ForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path) // #nosec G304 -- output path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("codec: create %s: %w", path, err)
	}
	defer f.Close()

	if err := enc.Encode(f, img); err != nil {
		return fmt.Errorf("codec: encode %s: %w", path, err)
	}
	return f.Close()
}

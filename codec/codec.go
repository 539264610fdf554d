// Package codec encodes flattened images to standard file formats and
// decodes bitmap files for use as image layers. The compositing core never
// touches file formats itself; it hands codecs an image.Image view of its
// pixel buffer and receives one back.
package codec

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"
)

// Encoder writes an image to a named format.
type Encoder interface {
	// Format returns the format name, e.g. "png".
	Format() string

	// Extension returns the file extension without the dot.
	Extension() string

	// Encode writes img to w.
	Encode(w io.Writer, img image.Image) error
}

// Registry holds the known encoders, keyed by format name.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry with every built-in encoder registered.
func NewRegistry() *Registry {
	r := &Registry{encoders: make(map[string]Encoder)}
	for _, enc := range []Encoder{
		&PNGEncoder{},
		&JPEGEncoder{},
		&BMPEncoder{},
		&TIFFEncoder{},
	} {
		r.Register(enc)
	}
	return r
}

// Register adds or replaces the encoder for its format.
func (r *Registry) Register(enc Encoder) {
	r.encoders[enc.Format()] = enc
}

// Get returns the encoder for a format name, or nil if none is registered.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[strings.ToLower(format)]
}

// Formats returns the registered format names in priority order.
func (r *Registry) Formats() []string {
	var result []string
	for _, f := range []string{"png", "jpeg", "bmp", "tiff"} {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	for f := range r.encoders {
		switch f {
		case "png", "jpeg", "bmp", "tiff":
		default:
			result = append(result, f)
		}
	}
	return result
}

// ForPath returns the encoder matching a file path's extension.
func (r *Registry) ForPath(path string) (Encoder, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "jpg":
		ext = "jpeg"
	case "tif":
		ext = "tiff"
	}
	enc := r.Get(ext)
	if enc == nil {
		return nil, fmt.Errorf("codec: no encoder for extension %q (have %s)",
			filepath.Ext(path), strings.Join(r.Formats(), ", "))
	}
	return enc, nil
}

package codec

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	return img
}

// TestRegistryGet resolves format names case-insensitively and returns nil
// for unknown formats.
func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()
	for _, f := range []string{"png", "PNG", "jpeg", "bmp", "tiff"} {
		if reg.Get(f) == nil {
			t.Errorf("no encoder for %q", f)
		}
	}
	if reg.Get("avif") != nil {
		t.Error("unexpected encoder for avif")
	}
}

// TestRegistryForPath maps extensions, including the jpg and tif aliases.
func TestRegistryForPath(t *testing.T) {
	reg := NewRegistry()
	cases := []struct {
		path, format string
	}{
		{"out.png", "png"},
		{"out.jpg", "jpeg"},
		{"out.jpeg", "jpeg"},
		{"out.tif", "tiff"},
		{"dir/out.BMP", "bmp"},
	}
	for _, c := range cases {
		enc, err := reg.ForPath(c.path)
		if err != nil {
			t.Errorf("ForPath(%q): %v", c.path, err)
			continue
		}
		if enc.Format() != c.format {
			t.Errorf("ForPath(%q) = %s, want %s", c.path, enc.Format(), c.format)
		}
	}

	if _, err := reg.ForPath("out.xyz"); err == nil {
		t.Error("ForPath accepted an unknown extension")
	}
}

// TestRegistryFormats lists the built-ins in priority order.
func TestRegistryFormats(t *testing.T) {
	got := strings.Join(NewRegistry().Formats(), ",")
	if got != "png,jpeg,bmp,tiff" {
		t.Errorf("Formats = %s", got)
	}
}

// TestEncodeDecodeRoundTrip: lossless formats preserve every pixel.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := testImage()
	reg := NewRegistry()

	for _, format := range []string{"png", "bmp", "tiff"} {
		var buf bytes.Buffer
		if err := reg.Get(format).Encode(&buf, src); err != nil {
			t.Fatalf("%s encode: %v", format, err)
		}

		decoded, gotFormat, err := Decode(&buf)
		if err != nil {
			t.Fatalf("%s decode: %v", format, err)
		}
		if gotFormat != format {
			t.Errorf("decoded format = %s, want %s", gotFormat, format)
		}
		if decoded.Bounds() != src.Bounds() {
			t.Fatalf("%s bounds = %v, want %v", format, decoded.Bounds(), src.Bounds())
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < 8; x++ {
				wr, wg, wb, wa := src.At(x, y).RGBA()
				gr, gg, gb, ga := decoded.At(x, y).RGBA()
				if wr != gr || wg != gg || wb != gb || wa != ga {
					t.Fatalf("%s pixel (%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
						format, x, y, gr, gg, gb, ga, wr, wg, wb, wa)
				}
			}
		}
	}
}

// TestJPEGEncode: lossy, so only check it produces a decodable image of the
// right size.
func TestJPEGEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JPEGEncoder{Quality: 90}).Encode(&buf, testImage()); err != nil {
		t.Fatalf("jpeg encode: %v", err)
	}
	decoded, format, err := Decode(&buf)
	if err != nil {
		t.Fatalf("jpeg decode: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %s, want jpeg", format)
	}
	if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 4 {
		t.Errorf("bounds = %v", decoded.Bounds())
	}
}

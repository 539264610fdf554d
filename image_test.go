package strata

import (
	"errors"
	"image"
	"testing"
)

// TestFromPixels checks construction and its failure modes.
func TestFromPixels(t *testing.T) {
	img, err := FromPixels(make([]Pixel[uint8], 12), 4)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	if img.Width() != 4 || img.Height() != 3 {
		t.Errorf("dimensions = %dx%d, want 4x3", img.Width(), img.Height())
	}

	if _, err := FromPixels(make([]Pixel[uint8], 10), 4); !errors.Is(err, ErrIncorrectWidth) {
		t.Errorf("remainder buffer: err = %v, want ErrIncorrectWidth", err)
	}
	if _, err := FromPixels(make([]Pixel[uint8], 10), 0); !errors.Is(err, ErrZeroWidth) {
		t.Errorf("zero width: err = %v, want ErrZeroWidth", err)
	}

	empty, err := FromPixels[uint8](nil, 0)
	if err != nil {
		t.Fatalf("empty image: %v", err)
	}
	if empty.Width() != 0 || empty.Height() != 0 {
		t.Errorf("empty image dimensions = %dx%d", empty.Width(), empty.Height())
	}
}

// TestFromFunc samples a coordinate-dependent function and reads it back.
func TestFromFunc(t *testing.T) {
	img := FromFunc(3, 2, func(x, y int) Pixel[uint8] {
		return Pixel[uint8]{R: uint8(x), G: uint8(y), A: 255}
	})
	p, ok := img.PixelAt(2, 1)
	if !ok {
		t.Fatal("PixelAt(2,1) out of bounds")
	}
	if p.R != 2 || p.G != 1 {
		t.Errorf("PixelAt(2,1) = %v", p)
	}
	if _, ok := img.PixelAt(3, 0); ok {
		t.Error("PixelAt(3,0) should be out of bounds")
	}
	if _, ok := img.PixelAt(0, -1); ok {
		t.Error("PixelAt(0,-1) should be out of bounds")
	}
}

// TestRow verifies the row view aliases image storage.
func TestRow(t *testing.T) {
	img := NewFilled(Red[uint8](), 4, 3)
	row, ok := img.Row(1)
	if !ok {
		t.Fatal("Row(1) out of range")
	}
	if len(row) != 4 {
		t.Fatalf("row length = %d, want 4", len(row))
	}
	row[2] = Blue[uint8]()
	if got, _ := img.PixelAt(2, 1); got != Blue[uint8]() {
		t.Error("row write not visible in image")
	}
	if _, ok := img.Row(3); ok {
		t.Error("Row(3) should be out of range")
	}
}

// TestSetPixelAt checks bounds-checked writes.
func TestSetPixelAt(t *testing.T) {
	img := NewFilled(Black[uint8](), 2, 2)
	img.SetPixelAt(1, 1, White[uint8]())
	if got := img.PixelAtUnchecked(1, 1); got != White[uint8]() {
		t.Errorf("PixelAt(1,1) = %v", got)
	}
	// Out-of-bounds writes are dropped, not panics.
	img.SetPixelAt(5, 5, White[uint8]())
	img.SetPixelAt(-1, 0, White[uint8]())
}

// TestDraw blits a 30x20 blue image onto a 100x100 red image at (50, 20)
// and probes the boundary pixels on every edge.
func TestDraw(t *testing.T) {
	dst := NewFilled(Red[uint8](), 100, 100)
	src := NewFilled(Blue[uint8](), 30, 20)

	if !dst.Draw(src, 50, 20, Replace[uint8]()) {
		t.Fatal("Draw reported nothing drawn")
	}

	cases := []struct {
		x, y int
		want Pixel[uint8]
	}{
		{49, 30, Red[uint8]()},  // just left of the blit
		{50, 30, Blue[uint8]()}, // left column
		{79, 30, Blue[uint8]()}, // right column
		{80, 30, Red[uint8]()},  // just right
		{65, 19, Red[uint8]()},  // just above
		{65, 20, Blue[uint8]()}, // top row
		{65, 39, Blue[uint8]()}, // bottom row
		{65, 40, Red[uint8]()},  // just below
	}
	for _, c := range cases {
		if got := dst.PixelAtUnchecked(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

// TestDrawClipped: a source hanging over the right and bottom edges is
// clipped, not an error.
func TestDrawClipped(t *testing.T) {
	dst := NewFilled(Black[uint8](), 10, 10)
	src := NewFilled(White[uint8](), 5, 5)

	if !dst.Draw(src, 8, 8, Replace[uint8]()) {
		t.Fatal("clipped Draw reported nothing drawn")
	}
	if got := dst.PixelAtUnchecked(9, 9); got != White[uint8]() {
		t.Errorf("pixel (9,9) = %v, want white", got)
	}
	if got := dst.PixelAtUnchecked(7, 7); got != Black[uint8]() {
		t.Errorf("pixel (7,7) = %v, want black", got)
	}
}

// TestDrawNoOp: offsets at or past the far edge, or negative, draw nothing.
func TestDrawNoOp(t *testing.T) {
	dst := NewFilled(Black[uint8](), 10, 10)
	src := NewFilled(White[uint8](), 5, 5)

	if dst.Draw(src, 10, 0, Replace[uint8]()) {
		t.Error("Draw at x == width should be a no-op")
	}
	if dst.Draw(src, 0, 10, Replace[uint8]()) {
		t.Error("Draw at y == height should be a no-op")
	}
	if dst.Draw(src, -1, 0, Replace[uint8]()) {
		t.Error("Draw at negative offset should be a no-op")
	}
	for _, p := range dst.Pixels() {
		if p != Black[uint8]() {
			t.Fatal("no-op draw modified the destination")
		}
	}
}

// TestDrawOverBlend: blitting with Over composites translucent sources.
func TestDrawOverBlend(t *testing.T) {
	dst := NewFilled(Pixel[uint8]{255, 255, 255, 255}, 1, 1)
	src := NewFilled(Pixel[uint8]{0, 50, 100, 25}, 1, 1)
	dst.Draw(src, 0, 0, Over[uint8]())
	want := Pixel[uint8]{230, 234, 239, 255}
	if got := dst.PixelAtUnchecked(0, 0); got != want {
		t.Errorf("blended pixel = %v, want %v", got, want)
	}
}

// TestImageBytes checks the byte view's size for each channel width.
func TestImageBytes(t *testing.T) {
	if got := len(NewFilled(Red[uint8](), 3, 2).Bytes()); got != 3*2*4 {
		t.Errorf("uint8 byte length = %d, want %d", got, 3*2*4)
	}
	if got := len(NewFilled(Red[uint16](), 3, 2).Bytes()); got != 3*2*8 {
		t.Errorf("uint16 byte length = %d, want %d", got, 3*2*8)
	}
	if got := len(NewFilled(Red[float32](), 3, 2).Bytes()); got != 3*2*16 {
		t.Errorf("float32 byte length = %d, want %d", got, 3*2*16)
	}
}

// TestStdImage checks the image.Image view and the reverse conversion.
func TestStdImage(t *testing.T) {
	img := NewFilled(Pixel[uint8]{R: 10, G: 20, B: 30, A: 255}, 4, 4)

	bounds := img.Bounds()
	if bounds != image.Rect(0, 0, 4, 4) {
		t.Errorf("Bounds = %v", bounds)
	}

	r, g, b, a := img.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a>>8 != 255 {
		t.Errorf("At(1,1) = (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}

	back := FromImage[uint8](img)
	if back.Width() != 4 || back.Height() != 4 {
		t.Fatalf("FromImage dimensions = %dx%d", back.Width(), back.Height())
	}
	if got := back.PixelAtUnchecked(0, 0); got != (Pixel[uint8]{10, 20, 30, 255}) {
		t.Errorf("round-tripped pixel = %v", got)
	}
}

package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testFont(t *testing.T) *Font {
	t.Helper()
	f, err := ParseFont(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseFont: %v", err)
	}
	return f
}

// TestParseFontErrors covers the empty and malformed data paths.
func TestParseFontErrors(t *testing.T) {
	if _, err := ParseFont(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("ParseFont(nil) err = %v, want ErrEmptyFontData", err)
	}
	if _, err := ParseFont([]byte("not a font")); err == nil {
		t.Error("ParseFont(garbage) succeeded")
	}
}

// TestFontName checks the family name is readable.
func TestFontName(t *testing.T) {
	f := testFont(t)
	if f.Name() == "" {
		t.Error("font has no family name")
	}
}

// TestGlyphMetrics sanity-checks a visible glyph and a space.
func TestGlyphMetrics(t *testing.T) {
	f := testFont(t)

	m := f.GlyphMetrics('A', 32)
	if m.Width <= 0 || m.Height <= 0 {
		t.Errorf("'A' metrics = %+v, want positive raster dimensions", m)
	}
	if m.Advance <= 0 {
		t.Errorf("'A' advance = %v, want positive", m.Advance)
	}

	space := f.GlyphMetrics(' ', 32)
	if space.Advance <= 0 {
		t.Errorf("space advance = %v, want positive", space.Advance)
	}
	if space.Width != 0 {
		t.Errorf("space width = %d, want 0", space.Width)
	}

	// Metrics scale with size.
	big := f.GlyphMetrics('A', 64)
	if big.Width <= m.Width {
		t.Errorf("64pt width %d not larger than 32pt width %d", big.Width, m.Width)
	}
}

// TestGlyphMetricsDescender: a descending glyph reaches below the baseline.
func TestGlyphMetricsDescender(t *testing.T) {
	f := testFont(t)
	m := f.GlyphMetrics('g', 32)
	if m.YMin >= 0 {
		t.Errorf("'g' ymin = %d, want negative (descends below baseline)", m.YMin)
	}
}

// TestHorizontalLineMetrics: the font carries horizontal line metrics and
// the new-line size is consistent with its parts.
func TestHorizontalLineMetrics(t *testing.T) {
	f := testFont(t)
	lm, ok := f.HorizontalLineMetrics(32)
	if !ok {
		t.Fatal("no horizontal line metrics")
	}
	if lm.Ascent <= 0 || lm.NewLineSize <= 0 {
		t.Errorf("line metrics = %+v", lm)
	}
	got := lm.Ascent + lm.Descent + lm.LineGap
	if diff := got - lm.NewLineSize; diff < -0.01 || diff > 0.01 {
		t.Errorf("ascent+descent+gap = %v, want %v", got, lm.NewLineSize)
	}
}

// TestVerticalLineMetricsAbsent: a Latin font without a vertical metric
// axis reports ok=false, which is what makes scale-mode top-to-bottom
// layout fail.
func TestVerticalLineMetricsAbsent(t *testing.T) {
	f := testFont(t)
	if _, ok := f.VerticalLineMetrics(32); ok {
		t.Error("expected no vertical line metrics for a Latin text font")
	}
}

// TestKernDeterministic: kerning is stable for a fixed pair and size.
func TestKernDeterministic(t *testing.T) {
	f := testFont(t)
	a := f.Kern('A', 'V', 32)
	b := f.Kern('A', 'V', 32)
	if a != b {
		t.Errorf("Kern not deterministic: %v then %v", a, b)
	}
}

// TestRasterize renders a glyph and verifies the mask's shape and content.
func TestRasterize(t *testing.T) {
	f := testFont(t)

	m, mask := f.Rasterize('A', 32)
	if mask == nil {
		t.Fatal("no mask for 'A'")
	}
	b := mask.Bounds()
	if b.Dx() != m.Width || b.Dy() != m.Height {
		t.Errorf("mask %dx%d, metrics %dx%d", b.Dx(), b.Dy(), m.Width, m.Height)
	}

	covered := 0
	for _, v := range mask.Pix {
		if v > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("mask has no coverage")
	}

	// A space has an advance but no raster.
	if _, mask := f.Rasterize(' ', 32); mask != nil {
		t.Error("space produced a raster")
	}
}

package text

import (
	"bytes"
	"fmt"
	"image"
	"os"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is a parsed font file. It answers glyph metrics, kerning, line
// metrics on both axes, and rasterized coverage masks.
//
// The font keeps two parsed views of the same data: an x/image sfnt font,
// which drives metrics, kerning and rasterization, and a go-text face, which
// supplies the vertical extents that sfnt does not expose. Font is not safe
// for concurrent use; the compositing core is single-threaded.
type Font struct {
	sf *sfnt.Font
	gt *gtfont.Face

	// faces caches one rasterizing face per requested size.
	faces map[float64]font.Face
}

// ParseFont parses TTF or OTF font data.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	gt, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	return &Font{sf: sf, gt: gt, faces: make(map[float64]font.Face)}, nil
}

// ParseFontFile loads and parses a font file.
func ParseFontFile(path string) (*Font, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- font path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return ParseFont(data)
}

// Name returns the font family name, or "" if the font does not carry one.
func (f *Font) Name() string {
	if name, err := f.sf.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// face returns (creating if needed) the rasterizing face for a size.
func (f *Font) face(size float64) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.sf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	f.faces[size] = face
	return face, nil
}

// GlyphMetrics describes one glyph's raster footprint relative to its pen
// origin on the baseline.
type GlyphMetrics struct {
	// Width and Height are the raster dimensions in whole pixels.
	Width, Height int

	// XMin is the left-side bearing: the offset from the pen origin to the
	// raster's left edge.
	XMin int

	// YMin is the offset from the baseline to the raster's bottom edge,
	// measured upward: negative for glyphs that descend below the baseline.
	YMin int

	// Advance is the horizontal pen advance after this glyph.
	Advance float32
}

// GlyphMetrics returns the metrics of r at the given size. A rune the font
// has no glyph for yields zero metrics.
func (f *Font) GlyphMetrics(r rune, size float64) GlyphMetrics {
	face, err := f.face(size)
	if err != nil {
		return GlyphMetrics{}
	}
	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return GlyphMetrics{}
	}
	return glyphMetricsFromBounds(bounds, advance)
}

func glyphMetricsFromBounds(bounds fixed.Rectangle26_6, advance fixed.Int26_6) GlyphMetrics {
	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()

	// Glyph bounds are y-down relative to the pen origin, so the raster's
	// bottom edge measured upward from the baseline is -maxY.
	return GlyphMetrics{
		Width:   maxX - minX,
		Height:  maxY - minY,
		XMin:    minX,
		YMin:    -maxY,
		Advance: fixedToFloat(advance),
	}
}

// Kern returns the kerning adjustment for the glyph pair (prev, next) at the
// given size, in pixels. Fonts without kerning data, or pairs without an
// entry, yield 0.
func (f *Font) Kern(prev, next rune, size float64) float32 {
	face, err := f.face(size)
	if err != nil {
		return 0
	}
	return fixedToFloat(face.Kern(prev, next))
}

// LineMetrics describes the vertical geometry of one line of text on a
// layout axis.
type LineMetrics struct {
	Ascent  float32
	Descent float32
	LineGap float32

	// NewLineSize is the recommended distance between consecutive
	// baselines: ascent + descent + line gap.
	NewLineSize float32
}

// HorizontalLineMetrics returns the font's line metrics for horizontal
// (left-to-right) layout, or ok=false if the font lacks them.
func (f *Font) HorizontalLineMetrics(size float64) (LineMetrics, bool) {
	face, err := f.face(size)
	if err != nil {
		return LineMetrics{}, false
	}
	m := face.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	height := fixedToFloat(m.Height)
	return LineMetrics{
		Ascent:      ascent,
		Descent:     descent,
		LineGap:     height - ascent - descent,
		NewLineSize: height,
	}, true
}

// VerticalLineMetrics returns the font's line metrics for vertical
// (top-to-bottom) layout, or ok=false if the font has no vertical metric
// axis. Most Latin fonts do not, in which case scale-mode line spacing for
// top-to-bottom layouts fails with [ErrMissingLineSpacing].
func (f *Font) VerticalLineMetrics(size float64) (LineMetrics, bool) {
	ext, ok := f.gt.FontVExtents()
	if !ok {
		return LineMetrics{}, false
	}
	scale := float32(size) / float32(f.gt.Upem())
	ascent := ext.Ascender * scale
	descent := -ext.Descender * scale
	gap := ext.LineGap * scale
	return LineMetrics{
		Ascent:      ascent,
		Descent:     descent,
		LineGap:     gap,
		NewLineSize: ascent + descent + gap,
	}, true
}

// Rasterize renders r at the given size into an alpha coverage mask of
// exactly metrics.Width x metrics.Height pixels. Runes without a glyph, or
// with an empty footprint (spaces), return a nil mask.
func (f *Font) Rasterize(r rune, size float64) (GlyphMetrics, *image.Alpha) {
	face, err := f.face(size)
	if err != nil {
		return GlyphMetrics{}, nil
	}
	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return GlyphMetrics{}, nil
	}
	m := glyphMetricsFromBounds(bounds, advance)
	if m.Width <= 0 || m.Height <= 0 {
		return m, nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, m.Width, m.Height))
	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		// Pen on the baseline, shifted so the raster lands at (0, 0).
		Dot: fixed.Point26_6{
			X: fixed.I(-m.XMin),
			Y: fixed.I(m.Height + m.YMin),
		},
	}
	drawer.DrawString(string(r))

	return m, mask
}

// fixedToFloat converts a fixed.Int26_6 value to float32 pixels.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

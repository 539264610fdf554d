package strata

import (
	"github.com/strataimg/strata/text"
)

// TextSettings configures a block of text for rasterization: the font, the
// string, the pixel size, the fill color, and the placement rules.
type TextSettings[T Channel] struct {
	Size float64
	Fill Pixel[T]

	Layout text.Layout

	Text string
	Font *text.Font
}

type signedCoord struct{ x, y int }

// glyphPositions lays out the text and groups placements by distinct rune,
// so each rune is rasterized once however often it occurs. It also returns
// the bounding box of all placements; minimums may be negative and are used
// to shift the block into positive raster space.
func (s *TextSettings[T]) glyphPositions() (map[rune][]signedCoord, signedCoord, signedCoord, error) {
	positions := make(map[rune][]signedCoord)
	var minimum, maximum signedCoord

	it := text.NewIter(s.Font, s.Size, s.Layout, s.Text)
	for it.Next() {
		p := it.Placement()
		positions[p.Glyph] = append(positions[p.Glyph], signedCoord{p.X, p.Y})

		m := s.Font.GlyphMetrics(p.Glyph, s.Size)
		maximum.x = max(maximum.x, p.X+m.Width)
		maximum.y = max(maximum.y, p.Y+m.Height)
		minimum.x = min(minimum.x, p.X)
		minimum.y = min(minimum.y, p.Y)
	}
	if err := it.Err(); err != nil {
		return nil, signedCoord{}, signedCoord{}, err
	}

	return positions, minimum, maximum, nil
}

// tintedGlyph rasterizes one rune and colors its coverage mask with the fill
// color, substituting each coverage sample for the fill's alpha channel.
func (s *TextSettings[T]) tintedGlyph(r rune) *Image[T] {
	m, mask := s.Font.Rasterize(r, s.Size)
	if mask == nil {
		return nil
	}

	pixels := make([]Pixel[T], 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+m.Width]
		for _, coverage := range row {
			p := s.Fill
			p.A = channelFromFloat[T](float32(coverage) / 255)
			pixels = append(pixels, p)
		}
	}

	img, _ := FromPixels(pixels, m.Width)
	return img
}

// Rasterize renders the configured text into a tightly sized image. Every
// distinct rune is rasterized once and blitted at each of its placements
// with the Over operator, so overlapping glyphs composite instead of
// overwriting.
func (s *TextSettings[T]) Rasterize() (*Image[T], error) {
	positions, minimum, maximum, err := s.glyphPositions()
	if err != nil {
		return nil, err
	}

	img := NewFilled(Pixel[T]{}, maximum.x-minimum.x, maximum.y-minimum.y)
	over := Over[T]()

	for r, coords := range positions {
		glyph := s.tintedGlyph(r)
		if glyph == nil {
			continue
		}
		for _, c := range coords {
			img.Draw(glyph, c.x-minimum.x, c.y-minimum.y, over)
		}
	}

	return img, nil
}

// TextLayer positions a rasterized block of text on the canvas. The raster
// is computed once at construction and again on every settings change.
type TextLayer[T Channel] struct {
	settings   TextSettings[T]
	rasterized *Image[T]

	X, Y    int
	filters []Filter[T]
}

// NewTextLayer rasterizes settings and places the result with its top-left
// corner at (x, y). It fails if layout fails, for example when scale-mode
// spacing was requested from a font without line metrics.
func NewTextLayer[T Channel](settings TextSettings[T], x, y int) (*TextLayer[T], error) {
	raster, err := settings.Rasterize()
	if err != nil {
		return nil, err
	}
	return &TextLayer[T]{settings: settings, rasterized: raster, X: x, Y: y}, nil
}

// Settings returns the layer's current text settings.
func (l *TextLayer[T]) Settings() TextSettings[T] {
	return l.settings
}

// SetSettings replaces the text settings and re-rasterizes. On failure the
// layer keeps its previous settings and raster.
func (l *TextLayer[T]) SetSettings(settings TextSettings[T]) error {
	raster, err := settings.Rasterize()
	if err != nil {
		return err
	}
	l.settings = settings
	l.rasterized = raster
	return nil
}

// Bounds implements Layer.
func (l *TextLayer[T]) Bounds() Rect {
	return Rect{X: l.X, Y: l.Y, Width: l.rasterized.Width(), Height: l.rasterized.Height()}
}

// Filters implements Layer.
func (l *TextLayer[T]) Filters() []Filter[T] { return l.filters }

// AddFilter appends a filter to the layer's chain.
func (l *TextLayer[T]) AddFilter(f Filter[T]) { l.filters = append(l.filters, f) }

// SetFilters replaces the layer's filter chain.
func (l *TextLayer[T]) SetFilters(filters []Filter[T]) { l.filters = filters }

// PixelAt implements Layer.
func (l *TextLayer[T]) PixelAt(x, y int) (Pixel[T], bool) {
	if !l.Bounds().Contains(x, y) {
		return Pixel[T]{}, false
	}
	return l.rasterized.PixelAtUnchecked(x-l.X, y-l.Y), true
}

// Package text lays out glyphs for rasterized text layers.
//
// The package is deliberately small: it parses a font, answers per-glyph and
// per-line metrics, and walks a multi-line string producing one (glyph, x, y)
// placement at a time through [Iter]. Rasterization of the placements into a
// pixel image belongs to the consumer (the root package's text layer), which
// keeps this package free of any pixel model.
//
// Layout is configurable in four dimensions: direction (left-to-right or
// top-to-bottom), alignment (start or end of the line axis), spacing mode
// (scaled by font metrics or a constant pixel amount, independently for
// glyphs and lines), and optional kerning for left-to-right layouts.
package text

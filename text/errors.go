package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrMissingLineSpacing is returned when a layout requests scale-based
	// line spacing but the font lacks line metrics for the layout's axis.
	// Constant spacing never consults the font and never fails this way.
	ErrMissingLineSpacing = errors.New("text: font has no line metrics for scaled spacing")
)

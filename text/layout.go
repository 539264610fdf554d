package text

import "strings"

// DefaultVerticalSpacing is the extra gap, in unscaled pixels, inserted
// between consecutive glyphs in a top-to-bottom column when glyph spacing is
// in scale mode.
const DefaultVerticalSpacing = 10.0

// Direction selects the axis glyphs advance along.
type Direction int

const (
	// LeftToRight advances horizontally within a line; newlines start the
	// next line below.
	LeftToRight Direction = iota

	// TopToBottom advances vertically within a column; newlines start the
	// next column to the right.
	TopToBottom
)

// Alignment selects which end of a line glyph placement grows from.
type Alignment int

const (
	// AlignStart places each line's first glyph at the origin and advances
	// in the positive direction.
	AlignStart Alignment = iota

	// AlignEnd places each line's last glyph at the origin and advances in
	// the negative direction, producing negative coordinates for all but
	// the final glyph of a line.
	AlignEnd
)

type spacingMode int

const (
	spacingScale spacingMode = iota
	spacingConstant
)

// Spacing controls the distance between glyphs or lines.
type Spacing struct {
	mode  spacingMode
	value float32
}

// ScaleSpacing spaces by the font's natural advance or line metrics,
// multiplied by scale. Scale mode requires the font to carry line metrics
// for the layout axis.
func ScaleSpacing(scale float32) Spacing {
	return Spacing{mode: spacingScale, value: scale}
}

// ConstantSpacing spaces by a fixed pixel amount, ignoring font metrics.
func ConstantSpacing(pixels float32) Spacing {
	return Spacing{mode: spacingConstant, value: pixels}
}

// Layout configures glyph placement.
type Layout struct {
	Direction    Direction
	Alignment    Alignment
	LineSpacing  Spacing
	GlyphSpacing Spacing

	// Kerning enables pair-kerning adjustments. Only consulted for
	// left-to-right layouts.
	Kerning bool
}

// DefaultLayout returns left-to-right, start-aligned layout at the font's
// natural spacing with kerning enabled.
func DefaultLayout() Layout {
	return Layout{
		Direction:    LeftToRight,
		Alignment:    AlignStart,
		LineSpacing:  ScaleSpacing(1),
		GlyphSpacing: ScaleSpacing(1),
		Kerning:      true,
	}
}

// Placement is one laid-out glyph: the rune and the top-left corner of its
// raster, relative to the text block's origin. Coordinates may be negative,
// for end-aligned text or glyphs with negative left bearing.
type Placement struct {
	Glyph rune
	X, Y  int
}

// Iter lazily produces glyph placements for a string, one per call to Next.
// It is forward-only: settings changes require a fresh iterator.
//
// Usage follows the scanner pattern:
//
//	it := text.NewIter(font, 24, text.DefaultLayout(), "hi\nthere")
//	for it.Next() {
//		p := it.Placement()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iter struct {
	font   *Font
	size   float64
	layout Layout

	lines [][]rune
	row   int
	col   int

	// pen is the advance-axis origin for the next glyph in the current
	// line or column. Valid only while hasPrev is set.
	pen     int
	prev    rune
	hasPrev bool

	cur Placement
	err error
}

// NewIter starts a layout pass over s.
func NewIter(font *Font, size float64, layout Layout, s string) *Iter {
	rawLines := strings.Split(s, "\n")
	lines := make([][]rune, len(rawLines))
	for i, l := range rawLines {
		lines[i] = []rune(l)
	}
	it := &Iter{font: font, size: size, layout: layout, lines: lines}
	it.col = it.lineStart(0)
	return it
}

// lineStart returns the starting column index within line row.
func (it *Iter) lineStart(row int) int {
	if it.layout.Alignment == AlignEnd {
		return len(it.lines[row]) - 1
	}
	return 0
}

// Next computes the next placement. It returns false when the text is
// exhausted or layout failed; check Err to distinguish.
func (it *Iter) Next() bool {
	if it.err != nil {
		return false
	}
	r, ok := it.nextRune()
	if !ok {
		return false
	}

	m := it.font.GlyphMetrics(r, it.size)

	originX, err := it.originX(r)
	if err != nil {
		it.err = err
		return false
	}

	baseline, err := it.baseline(m)
	if err != nil {
		it.err = err
		return false
	}
	originY := baseline - m.YMin - m.Height

	it.pen = it.nextOrigin(originX, originY, m)
	it.prev = r
	it.hasPrev = true

	it.cur = Placement{Glyph: r, X: originX + m.XMin, Y: originY}
	return true
}

// Placement returns the placement computed by the last successful Next.
func (it *Iter) Placement() Placement {
	return it.cur
}

// Err returns the layout error that stopped iteration, if any.
func (it *Iter) Err() error {
	return it.err
}

// nextRune advances the cursor to the next glyph, crossing line breaks.
func (it *Iter) nextRune() (rune, bool) {
	for it.row < len(it.lines) {
		line := it.lines[it.row]
		if it.col >= 0 && it.col < len(line) {
			r := line[it.col]
			if it.layout.Alignment == AlignEnd {
				it.col--
			} else {
				it.col++
			}
			return r, true
		}
		it.row++
		it.hasPrev = false
		if it.row < len(it.lines) {
			it.col = it.lineStart(it.row)
		}
	}
	return 0, false
}

// originX computes the x origin of the next glyph's pen position.
func (it *Iter) originX(next rune) (int, error) {
	switch it.layout.Direction {
	case TopToBottom:
		// Each line is a column; the column's x comes from the font's
		// vertical line metrics or a constant column width.
		switch it.layout.LineSpacing.mode {
		case spacingConstant:
			return int(float32(it.row) * it.layout.LineSpacing.value), nil
		default:
			lm, ok := it.font.VerticalLineMetrics(it.size)
			if !ok {
				return 0, ErrMissingLineSpacing
			}
			return int(lm.NewLineSize * float32(it.row) * it.layout.LineSpacing.value), nil
		}
	default:
		if !it.hasPrev {
			return 0, nil
		}
		if it.layout.Kerning {
			return it.pen + it.kern(it.prev, next), nil
		}
		return it.pen, nil
	}
}

// kern returns the scaled kerning adjustment between two glyphs. For
// end-aligned text glyphs are visited in reverse storage order, so the pair
// is swapped and the adjustment negated.
func (it *Iter) kern(prev, next rune) int {
	var k float32
	if it.layout.Alignment == AlignEnd {
		k = -it.font.Kern(next, prev, it.size)
	} else {
		k = it.font.Kern(prev, next, it.size)
	}
	if it.layout.GlyphSpacing.mode == spacingScale {
		k *= it.layout.GlyphSpacing.value
	}
	return int(k)
}

// baseline computes the y coordinate of the next glyph's baseline.
func (it *Iter) baseline(m GlyphMetrics) (int, error) {
	switch it.layout.Direction {
	case TopToBottom:
		if it.hasPrev {
			return it.pen, nil
		}
		// First glyph in a column sits with its top at the column origin.
		return m.Height - m.YMin, nil
	default:
		switch it.layout.LineSpacing.mode {
		case spacingConstant:
			return int(it.layout.LineSpacing.value * float32(it.row+1)), nil
		default:
			lm, ok := it.font.HorizontalLineMetrics(it.size)
			if !ok {
				return 0, ErrMissingLineSpacing
			}
			return int(lm.NewLineSize * float32(it.row+1) * it.layout.LineSpacing.value), nil
		}
	}
}

// nextOrigin computes the advance-axis origin of the glyph after this one.
func (it *Iter) nextOrigin(originX, originY int, m GlyphMetrics) int {
	dir := 1
	if it.layout.Alignment == AlignEnd {
		dir = -1
	}
	switch it.layout.Direction {
	case TopToBottom:
		switch it.layout.GlyphSpacing.mode {
		case spacingConstant:
			return originY + dir*int(it.layout.GlyphSpacing.value)
		default:
			return originY + dir*int(it.layout.GlyphSpacing.value*(float32(m.Height)+DefaultVerticalSpacing))
		}
	default:
		switch it.layout.GlyphSpacing.mode {
		case spacingConstant:
			return originX + dir*int(it.layout.GlyphSpacing.value)
		default:
			return originX + dir*int(it.layout.GlyphSpacing.value*m.Advance)
		}
	}
}

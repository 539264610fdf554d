package text

import (
	"errors"
	"testing"
)

func collect(t *testing.T, font *Font, size float64, layout Layout, s string) []Placement {
	t.Helper()
	var out []Placement
	it := NewIter(font, size, layout, s)
	for it.Next() {
		out = append(out, it.Placement())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	return out
}

// TestLayoutCount: the placement count equals the non-newline character
// count, and the sequence is deterministic.
func TestLayoutCount(t *testing.T) {
	font := testFont(t)
	const input = "Hello\nworld"

	first := collect(t, font, 24, DefaultLayout(), input)
	if len(first) != 10 {
		t.Fatalf("placement count = %d, want 10", len(first))
	}

	second := collect(t, font, 24, DefaultLayout(), input)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("placement %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// TestLayoutRows: characters after a newline sit on a lower baseline, and a
// blank line lowers it further.
func TestLayoutRows(t *testing.T) {
	font := testFont(t)

	one := collect(t, font, 24, DefaultLayout(), "A\nA")
	if one[1].Y <= one[0].Y {
		t.Errorf("second row Y = %d, not below first row Y = %d", one[1].Y, one[0].Y)
	}

	two := collect(t, font, 24, DefaultLayout(), "A\n\nA")
	if two[1].Y <= one[1].Y {
		t.Errorf("blank line did not lower the next row: %d vs %d", two[1].Y, one[1].Y)
	}
}

// TestLayoutAdvance: within a left-to-right line, x positions strictly
// increase, and each new line restarts near the origin.
func TestLayoutAdvance(t *testing.T) {
	font := testFont(t)
	ps := collect(t, font, 24, DefaultLayout(), "HHH\nH")

	if ps[1].X <= ps[0].X || ps[2].X <= ps[1].X {
		t.Errorf("x positions not increasing: %d, %d, %d", ps[0].X, ps[1].X, ps[2].X)
	}
	if ps[3].X != ps[0].X {
		t.Errorf("new line did not restart at the line origin: %d vs %d", ps[3].X, ps[0].X)
	}
}

// TestLayoutConstantGlyphSpacing: with kerning off and a constant advance,
// identical glyphs land exactly spacing apart.
func TestLayoutConstantGlyphSpacing(t *testing.T) {
	font := testFont(t)
	layout := DefaultLayout()
	layout.Kerning = false
	layout.GlyphSpacing = ConstantSpacing(7)

	ps := collect(t, font, 24, layout, "AAA")
	if d := ps[1].X - ps[0].X; d != 7 {
		t.Errorf("glyph spacing = %d, want 7", d)
	}
	if d := ps[2].X - ps[1].X; d != 7 {
		t.Errorf("glyph spacing = %d, want 7", d)
	}
}

// TestLayoutConstantLineSpacing: constant line spacing needs no font
// metrics and places baselines at exact multiples.
func TestLayoutConstantLineSpacing(t *testing.T) {
	font := testFont(t)
	layout := DefaultLayout()
	layout.LineSpacing = ConstantSpacing(50)

	ps := collect(t, font, 24, layout, "A\nA")
	if d := ps[1].Y - ps[0].Y; d != 50 {
		t.Errorf("row offset = %d, want 50", d)
	}
}

// TestLayoutMissingVerticalMetrics: a top-to-bottom layout in scale mode
// fails against a font without vertical line metrics.
func TestLayoutMissingVerticalMetrics(t *testing.T) {
	font := testFont(t)
	layout := DefaultLayout()
	layout.Direction = TopToBottom

	it := NewIter(font, 24, layout, "AB")
	for it.Next() {
	}
	if err := it.Err(); !errors.Is(err, ErrMissingLineSpacing) {
		t.Errorf("err = %v, want ErrMissingLineSpacing", err)
	}
}

// TestLayoutTopToBottom: constant line spacing sidesteps the missing
// vertical metrics; glyphs stack downward within a column and columns
// advance right.
func TestLayoutTopToBottom(t *testing.T) {
	font := testFont(t)
	layout := DefaultLayout()
	layout.Direction = TopToBottom
	layout.LineSpacing = ConstantSpacing(40)

	ps := collect(t, font, 24, layout, "AA\nA")
	if len(ps) != 3 {
		t.Fatalf("placement count = %d, want 3", len(ps))
	}

	// Same column: second glyph below the first.
	if ps[1].Y <= ps[0].Y {
		t.Errorf("column did not stack downward: %d vs %d", ps[1].Y, ps[0].Y)
	}
	// Next column starts at the top again, shifted right by the constant.
	if ps[2].Y != ps[0].Y {
		t.Errorf("new column Y = %d, want %d", ps[2].Y, ps[0].Y)
	}
	if d := ps[2].X - ps[0].X; d != 40 {
		t.Errorf("column offset = %d, want 40", d)
	}
}

// TestLayoutAlignEnd: end alignment reverses per-line iteration and
// advances negatively, so all but the line's last glyph sit at negative x.
func TestLayoutAlignEnd(t *testing.T) {
	font := testFont(t)
	layout := DefaultLayout()
	layout.Alignment = AlignEnd

	ps := collect(t, font, 24, layout, "AAA")
	if len(ps) != 3 {
		t.Fatalf("placement count = %d, want 3", len(ps))
	}

	// First emitted glyph is the line's last character, near the origin.
	if ps[1].X >= ps[0].X || ps[2].X >= ps[1].X {
		t.Errorf("x positions not decreasing: %d, %d, %d", ps[0].X, ps[1].X, ps[2].X)
	}
	if ps[2].X >= 0 {
		t.Errorf("leftmost glyph X = %d, want negative", ps[2].X)
	}
}

// TestDetectAlignment maps paragraph direction to a default alignment.
func TestDetectAlignment(t *testing.T) {
	if got := DetectAlignment("hello"); got != AlignStart {
		t.Errorf("latin text alignment = %v, want AlignStart", got)
	}
	if got := DetectAlignment("שלום"); got != AlignEnd {
		t.Errorf("hebrew text alignment = %v, want AlignEnd", got)
	}
	if got := DetectAlignment(""); got != AlignStart {
		t.Errorf("empty text alignment = %v, want AlignStart", got)
	}
}

package text

import "golang.org/x/text/unicode/bidi"

// DetectAlignment inspects the dominant paragraph direction of s and returns
// the alignment that places the text's reading start at the origin:
// AlignStart for left-to-right or neutral text, AlignEnd for text whose
// first paragraph resolves right-to-left (Hebrew, Arabic).
func DetectAlignment(s string) Alignment {
	if s == "" {
		return AlignStart
	}
	p := bidi.Paragraph{}
	_, err := p.SetString(s)
	if err != nil {
		return AlignStart
	}
	if p.Direction() == bidi.RightToLeft {
		return AlignEnd
	}
	return AlignStart
}

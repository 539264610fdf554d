package strata

import (
	"errors"
	"strings"
)

// Palette colors beyond the channel-exact presets in pixel.go. These are the
// conventional 8-bit web values, re-expressed in the requested channel type
// through the float representation.
func paletteColor[T Channel](r, g, b uint8) Pixel[T] {
	return Convert[T](Pixel[uint8]{R: r, G: g, B: b, A: 255})
}

func Yellow[T Channel]() Pixel[T]    { return paletteColor[T](255, 255, 0) }
func Cyan[T Channel]() Pixel[T]      { return paletteColor[T](0, 255, 255) }
func Magenta[T Channel]() Pixel[T]   { return paletteColor[T](255, 0, 255) }
func Silver[T Channel]() Pixel[T]    { return paletteColor[T](192, 192, 192) }
func Grey[T Channel]() Pixel[T]      { return paletteColor[T](128, 128, 128) }
func DarkRed[T Channel]() Pixel[T]   { return paletteColor[T](128, 0, 0) }
func DarkGreen[T Channel]() Pixel[T] { return paletteColor[T](0, 128, 0) }
func DarkBlue[T Channel]() Pixel[T]  { return paletteColor[T](0, 0, 128) }
func Orange[T Channel]() Pixel[T]    { return paletteColor[T](255, 165, 0) }
func Purple[T Channel]() Pixel[T]    { return paletteColor[T](128, 0, 128) }
func LightGrey[T Channel]() Pixel[T] { return paletteColor[T](211, 211, 211) }

// ErrBadHexColor is returned by ParseHex for strings that are not a valid
// 3, 4, 6 or 8 digit hex color.
var ErrBadHexColor = errors.New("strata: invalid hex color")

// ParseHex parses a hex color string into a pixel of the requested channel
// type. Supported forms: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an
// optional leading '#'. Missing alpha defaults to fully opaque.
func ParseHex[T Channel](hex string) (Pixel[T], error) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return Pixel[T]{}, ErrBadHexColor
		}
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) || !parseHex(hex[3:4], &a) {
			return Pixel[T]{}, ErrBadHexColor
		}
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Pixel[T]{}, ErrBadHexColor
		}
	case 8: // RRGGBBAA
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) || !parseHex(hex[6:8], &a) {
			return Pixel[T]{}, ErrBadHexColor
		}
	default:
		return Pixel[T]{}, ErrBadHexColor
	}

	return Convert[T](Pixel[uint8]{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}), nil
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

package config

import (
	"github.com/strataimg/strata"
)

// Args holds a layer or filter block's untyped settings: every YAML key
// that is not "type" or "filters". Getters coerce between numeric kinds the
// way YAML readers expect, so `size: 40` and `size: 40.0` both read as
// either int or float.
type Args map[string]any

// Str returns a string argument.
func (a Args) Str(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// Int returns an integer argument. Floats are truncated.
func (a Args) Int(key string) (int, bool) {
	switch v := a[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// Float returns a float argument. Integers are widened.
func (a Args) Float(key string) (float64, bool) {
	switch v := a[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Bool returns a boolean argument.
func (a Args) Bool(key string) (bool, bool) {
	b, ok := a[key].(bool)
	return b, ok
}

// Color returns a hex color argument ("#rgb", "#rrggbb", "#rrggbbaa").
// A present but malformed value is an error; an absent key is ok=false.
func (a Args) Color(key string) (strata.Pixel[uint8], bool, error) {
	s, ok := a.Str(key)
	if !ok {
		return strata.Pixel[uint8]{}, false, nil
	}
	p, err := strata.ParseHex[uint8](s)
	if err != nil {
		return strata.Pixel[uint8]{}, false, err
	}
	return p, true, nil
}

// IntOr returns an integer argument or a fallback.
func (a Args) IntOr(key string, fallback int) int {
	if v, ok := a.Int(key); ok {
		return v
	}
	return fallback
}

// FloatOr returns a float argument or a fallback.
func (a Args) FloatOr(key string, fallback float64) float64 {
	if v, ok := a.Float(key); ok {
		return v
	}
	return fallback
}

// StrOr returns a string argument or a fallback.
func (a Args) StrOr(key, fallback string) string {
	if v, ok := a.Str(key); ok {
		return v
	}
	return fallback
}

// BoolOr returns a boolean argument or a fallback.
func (a Args) BoolOr(key string, fallback bool) bool {
	if v, ok := a.Bool(key); ok {
		return v
	}
	return fallback
}

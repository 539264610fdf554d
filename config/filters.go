package config

import (
	"fmt"

	"github.com/strataimg/strata"
)

// buildBrightnessFilter:
//
//	type: brightness
//	multiplier: 1.5  # required
func buildBrightnessFilter(args Args, _ strata.Rect) (strata.Filter[uint8], error) {
	mult, ok := args.Float("multiplier")
	if !ok {
		return nil, fmt.Errorf("%w: multiplier", ErrMissingArg)
	}
	return strata.NewBrightness[uint8](float32(mult)), nil
}

// buildChannelsFilter:
//
//	type: channels
//	r: 1.0  # each factor optional, default 1 (pass-through)
//	g: 0.5
//	b: 0.0
//	a: 1.0
func buildChannelsFilter(args Args, _ strata.Rect) (strata.Filter[uint8], error) {
	return strata.NewChannelMask[uint8](
		float32(args.FloatOr("r", 1)),
		float32(args.FloatOr("g", 1)),
		float32(args.FloatOr("b", 1)),
		float32(args.FloatOr("a", 1)),
	), nil
}

// buildFlipFilter:
//
//	type: flip
//	direction: horizontal  # horizontal, vertical, or both
//	# optional region; defaults to the layer's own bounds
//	x: 0
//	y: 0
//	width: 0
//	height: 0
func buildFlipFilter(args Args, bounds strata.Rect) (strata.Filter[uint8], error) {
	var dir strata.FlipDirection
	switch d := args.StrOr("direction", "horizontal"); d {
	case "horizontal":
		dir = strata.FlipHorizontal
	case "vertical":
		dir = strata.FlipVertical
	case "both":
		dir = strata.FlipBoth
	default:
		return nil, fmt.Errorf("config: unknown flip direction %q", d)
	}

	rect := strata.Rect{
		X:      args.IntOr("x", bounds.X),
		Y:      args.IntOr("y", bounds.Y),
		Width:  args.IntOr("width", bounds.Width),
		Height: args.IntOr("height", bounds.Height),
	}
	return strata.NewFlip[uint8](dir, rect), nil
}

// buildTranslateFilter:
//
//	type: translate
//	x: 10
//	y: -5
func buildTranslateFilter(args Args, _ strata.Rect) (strata.Filter[uint8], error) {
	return strata.NewTranslate[uint8](args.IntOr("x", 0), args.IntOr("y", 0)), nil
}

// matrixCenter reads an optional center, defaulting to the middle of the
// layer's bounds.
func matrixCenter(args Args, bounds strata.Rect) (float64, float64) {
	cx := args.FloatOr("center-x", float64(bounds.X)+float64(bounds.Width)/2)
	cy := args.FloatOr("center-y", float64(bounds.Y)+float64(bounds.Height)/2)
	return cx, cy
}

// buildRotateFilter:
//
//	type: rotate
//	degrees: 45        # required; clockwise on screen
//	center-x: 50       # optional, default layer center
//	center-y: 50
func buildRotateFilter(args Args, bounds strata.Rect) (strata.Filter[uint8], error) {
	degrees, ok := args.Float("degrees")
	if !ok {
		return nil, fmt.Errorf("%w: degrees", ErrMissingArg)
	}
	cx, cy := matrixCenter(args, bounds)
	return strata.NewMatrix[uint8](cx, cy).Rotate(degrees), nil
}

// buildScaleFilter:
//
//	type: scale
//	factor: 2.0   # uniform, or use x/y for per-axis factors
func buildScaleFilter(args Args, bounds strata.Rect) (strata.Filter[uint8], error) {
	cx, cy := matrixCenter(args, bounds)
	if factor, ok := args.Float("factor"); ok {
		if factor == 0 {
			return nil, fmt.Errorf("config: scale factor must be non-zero")
		}
		return strata.NewMatrix[uint8](cx, cy).Scale(factor), nil
	}
	sx := args.FloatOr("x", 1)
	sy := args.FloatOr("y", 1)
	if sx == 0 || sy == 0 {
		return nil, fmt.Errorf("config: scale factor must be non-zero")
	}
	return strata.NewMatrix[uint8](cx, cy).ScaleAxis(sx, sy), nil
}

// buildShearFilter:
//
//	type: shear
//	x: 0.5   # shear parallel to the x axis
//	y: 0.0   # shear parallel to the y axis
func buildShearFilter(args Args, bounds strata.Rect) (strata.Filter[uint8], error) {
	cx, cy := matrixCenter(args, bounds)
	m := strata.NewMatrix[uint8](cx, cy)
	if kx, ok := args.Float("x"); ok && kx != 0 {
		m = m.ShearX(kx)
	}
	if ky, ok := args.Float("y"); ok && ky != 0 {
		m = m.ShearY(ky)
	}
	return m, nil
}

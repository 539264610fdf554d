package config

import (
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/strataimg/strata"
	"github.com/strataimg/strata/codec"
	"github.com/strataimg/strata/text"
)

// buildRectangleLayer builds a solid rectangle:
//
//	type: rectangle
//	x: 0            # optional, default 0
//	y: 0
//	width: 100      # required
//	height: 50      # required
//	fill: "#rrggbbaa"  # optional, default white
func buildRectangleLayer(args Args) (strata.Layer[uint8], error) {
	width, ok := args.Int("width")
	if !ok {
		return nil, fmt.Errorf("%w: width", ErrMissingArg)
	}
	height, ok := args.Int("height")
	if !ok {
		return nil, fmt.Errorf("%w: height", ErrMissingArg)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}

	fill := strata.White[uint8]()
	if c, ok, err := args.Color("fill"); err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	} else if ok {
		fill = c
	}

	rect := strata.Rect{
		X:      args.IntOr("x", 0),
		Y:      args.IntOr("y", 0),
		Width:  width,
		Height: height,
	}
	return strata.NewRectangleLayer(fill, rect), nil
}

// buildImageLayer builds a bitmap layer from an image file:
//
//	type: image
//	path: images/logo.png  # required; any decodable format
//	x: 0
//	y: 0
//	width: 128   # optional resize; 0 or absent keeps aspect/native size
//	height: 0
func buildImageLayer(args Args) (strata.Layer[uint8], error) {
	path, ok := args.Str("path")
	if !ok {
		return nil, fmt.Errorf("%w: path", ErrMissingArg)
	}

	img, format, err := codec.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	strata.Logger().Debug("image decoded", "path", path, "format", format)

	width := args.IntOr("width", 0)
	height := args.IntOr("height", 0)
	if width > 0 || height > 0 {
		img = imaging.Resize(img, width, height, imaging.Lanczos)
	}

	layer := strata.NewImageLayer(
		strata.FromImage[uint8](img),
		args.IntOr("x", 0),
		args.IntOr("y", 0),
	)
	return layer, nil
}

// buildTextLayer builds a rasterized text layer:
//
//	type: text
//	font: fonts/Go-Regular.ttf  # required
//	text: "hello\nworld"        # required
//	size: 40
//	fill: "#000000"
//	x: 0
//	y: 0
//	direction: left-to-right    # or top-to-bottom
//	alignment: start            # start, end, or auto (from the text's script)
//	kerning: true
//	line-spacing: 1.0           # with line-spacing-mode: scale | constant
//	glyph-spacing: 1.0          # with glyph-spacing-mode: scale | constant
func buildTextLayer(args Args) (strata.Layer[uint8], error) {
	fontPath, ok := args.Str("font")
	if !ok {
		return nil, fmt.Errorf("%w: font", ErrMissingArg)
	}
	content, ok := args.Str("text")
	if !ok {
		return nil, fmt.Errorf("%w: text", ErrMissingArg)
	}

	font, err := text.ParseFontFile(fontPath)
	if err != nil {
		return nil, err
	}

	layout := text.DefaultLayout()
	switch dir := args.StrOr("direction", "left-to-right"); dir {
	case "left-to-right":
		layout.Direction = text.LeftToRight
	case "top-to-bottom":
		layout.Direction = text.TopToBottom
	default:
		return nil, fmt.Errorf("config: unknown direction %q", dir)
	}
	switch align := args.StrOr("alignment", "start"); align {
	case "start":
		layout.Alignment = text.AlignStart
	case "end":
		layout.Alignment = text.AlignEnd
	case "auto":
		layout.Alignment = text.DetectAlignment(content)
	default:
		return nil, fmt.Errorf("config: unknown alignment %q", align)
	}
	layout.Kerning = args.BoolOr("kerning", true)

	layout.LineSpacing, err = parseSpacing(args, "line-spacing")
	if err != nil {
		return nil, err
	}
	layout.GlyphSpacing, err = parseSpacing(args, "glyph-spacing")
	if err != nil {
		return nil, err
	}

	fill := strata.Black[uint8]()
	if c, ok, err := args.Color("fill"); err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	} else if ok {
		fill = c
	}

	settings := strata.TextSettings[uint8]{
		Size:   args.FloatOr("size", 40),
		Fill:   fill,
		Layout: layout,
		Text:   content,
		Font:   font,
	}
	return strata.NewTextLayer(settings, args.IntOr("x", 0), args.IntOr("y", 0))
}

// parseSpacing reads the "<key>" value and "<key>-mode" pair. Absent keys
// keep the layout default of scale 1.
func parseSpacing(args Args, key string) (text.Spacing, error) {
	value := float32(args.FloatOr(key, 1))
	switch mode := args.StrOr(key+"-mode", "scale"); mode {
	case "scale":
		return text.ScaleSpacing(value), nil
	case "constant":
		return text.ConstantSpacing(value), nil
	default:
		return text.Spacing{}, fmt.Errorf("config: unknown %s-mode %q", key, mode)
	}
}

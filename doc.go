// Package strata composites a raster image from an ordered stack of layers.
//
// # Overview
//
// strata is built around a [Canvas] that layers are added to. A layer is any
// type implementing [Layer]: it reports a bounding [Rect] and answers a pixel
// at a canvas coordinate. Built-in layers cover filled rectangles
// ([RectangleLayer]), decoded bitmaps ([ImageLayer]) and rasterized text
// ([TextLayer]). Layers carry an ordered chain of [Filter] values that
// transform either the sampled color or the sampling coordinate.
//
// Pixels are generic over their channel type: [Pixel] holds four [Channel]
// values (red, green, blue, alpha), so the same compositing code runs on
// 8-bit, 16-bit and float32 buffers.
//
// # Quick Start
//
//	canvas := strata.NewCanvas[uint8](1000, 1000)
//
//	img := strata.FromFunc(500, 500, func(x, y int) strata.Pixel[uint8] {
//		return strata.Pixel[uint8]{R: uint8(x), G: uint8(y), B: 255, A: 255}
//	})
//	canvas.AddLayer(strata.NewImageLayer(img, 0, 0))
//
//	final := canvas.Flatten()
//
// The flattened [Image] exposes a flat byte view via [Image.Bytes] and
// implements the stdlib image.Image interface, so it can be handed to any
// codec (see the codec subpackage).
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// Later layers paint over earlier ones.
package strata

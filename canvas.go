package strata

// Canvas is an ordered stack of layers over a background pixel. The canvas
// owns its layers exclusively; layers know nothing about the canvas.
type Canvas[T Channel] struct {
	layers     []Layer[T]
	background Pixel[T]
	width      int
	height     int
}

// NewCanvas returns an empty canvas of the given dimensions with a fully
// transparent background.
func NewCanvas[T Channel](width, height int) *Canvas[T] {
	return &Canvas[T]{width: width, height: height}
}

// Width returns the target image width.
func (c *Canvas[T]) Width() int { return c.width }

// Height returns the target image height.
func (c *Canvas[T]) Height() int { return c.height }

// SetBackground sets the pixel used as the initial running value when
// flattening.
func (c *Canvas[T]) SetBackground(p Pixel[T]) { c.background = p }

// Background returns the canvas background pixel.
func (c *Canvas[T]) Background() Pixel[T] { return c.background }

// AddLayer appends a layer to the stack. Later layers paint over earlier
// ones.
func (c *Canvas[T]) AddLayer(l Layer[T]) { c.layers = append(c.layers, l) }

// Layers returns the layer stack in compositing order.
func (c *Canvas[T]) Layers() []Layer[T] { return c.layers }

// pixelAt composites a single target pixel: the background, then every
// layer's filtered pixel over the running value in list order. A layer with
// no pixel at the coordinate is transparent pass-through.
func (c *Canvas[T]) pixelAt(x, y int) Pixel[T] {
	running := c.background
	for _, layer := range c.layers {
		if p, ok := FilteredPixelAt(layer, x, y); ok {
			running = overOperator(running, p)
		}
	}
	return running
}

// Flatten composites the layer stack into a single image. The cost is
// width x height x layers x filters-per-layer; no caching or dirty-region
// tracking is attempted.
func (c *Canvas[T]) Flatten() *Image[T] {
	return FromFunc(c.width, c.height, c.pixelAt)
}

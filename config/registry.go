package config

import (
	"fmt"
	"strings"

	"github.com/strataimg/strata"
)

// LayerBuilder constructs a layer from its argument block.
type LayerBuilder func(args Args) (strata.Layer[uint8], error)

// FilterBuilder constructs a filter from its argument block. The bounds of
// the layer the filter attaches to are passed in, so geometric filters can
// default their region or center to the layer itself.
type FilterBuilder func(args Args, bounds strata.Rect) (strata.Filter[uint8], error)

// filterable is satisfied by the built-in layer types, all of which carry a
// mutable filter chain.
type filterable interface {
	AddFilter(strata.Filter[uint8])
}

// Registry resolves layer and filter type names to builders.
type Registry struct {
	layers  map[string]LayerBuilder
	filters map[string]FilterBuilder
}

// NewRegistry returns a registry with all built-in layer and filter types
// registered.
func NewRegistry() *Registry {
	r := &Registry{
		layers:  make(map[string]LayerBuilder),
		filters: make(map[string]FilterBuilder),
	}

	r.RegisterLayer("rectangle", buildRectangleLayer)
	r.RegisterLayer("image", buildImageLayer)
	r.RegisterLayer("text", buildTextLayer)

	r.RegisterFilter("brightness", buildBrightnessFilter)
	r.RegisterFilter("channels", buildChannelsFilter)
	r.RegisterFilter("flip", buildFlipFilter)
	r.RegisterFilter("translate", buildTranslateFilter)
	r.RegisterFilter("rotate", buildRotateFilter)
	r.RegisterFilter("scale", buildScaleFilter)
	r.RegisterFilter("shear", buildShearFilter)

	return r
}

// RegisterLayer adds or replaces the builder for a layer type name.
func (r *Registry) RegisterLayer(name string, b LayerBuilder) {
	r.layers[strings.ToLower(name)] = b
}

// RegisterFilter adds or replaces the builder for a filter type name.
func (r *Registry) RegisterFilter(name string, b FilterBuilder) {
	r.filters[strings.ToLower(name)] = b
}

// BuildLayer constructs a layer block, including its filter chain.
func (r *Registry) BuildLayer(lc LayerConfig) (strata.Layer[uint8], error) {
	if lc.Type == "" {
		return nil, ErrMissingType
	}
	build, ok := r.layers[strings.ToLower(lc.Type)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, lc.Type)
	}

	layer, err := build(lc.Args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", lc.Type, err)
	}

	if len(lc.Filters) == 0 {
		return layer, nil
	}
	f, ok := layer.(filterable)
	if !ok {
		return nil, fmt.Errorf("config: layer type %q does not accept filters", lc.Type)
	}
	bounds := layer.Bounds()
	for i, fc := range lc.Filters {
		filter, err := r.BuildFilter(fc, bounds)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		f.AddFilter(filter)
	}
	return layer, nil
}

// BuildFilter constructs one filter block for a layer with the given bounds.
func (r *Registry) BuildFilter(fc FilterConfig, bounds strata.Rect) (strata.Filter[uint8], error) {
	if fc.Type == "" {
		return nil, ErrMissingType
	}
	build, ok := r.filters[strings.ToLower(fc.Type)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, fc.Type)
	}
	filter, err := build(fc.Args, bounds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fc.Type, err)
	}
	return filter, nil
}

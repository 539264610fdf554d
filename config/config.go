// Package config builds a canvas from a declarative YAML document. A
// document declares the canvas dimensions, an optional background color, and
// an ordered list of layer blocks, each with a type name, type-specific
// arguments inline, and an optional filter list:
//
//	width: 256
//	height: 128
//	background: "#ffffff"
//	layers:
//	  - type: rectangle
//	    x: 10
//	    y: 10
//	    width: 100
//	    height: 60
//	    fill: "#ff0000"
//	    filters:
//	      - type: brightness
//	        multiplier: 1.5
//
// Layer and filter type names resolve through a Registry, so applications
// can add their own builders beside the built-ins.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strataimg/strata"
)

// Configuration errors.
var (
	ErrMissingType   = errors.New("config: block has no type")
	ErrUnknownLayer  = errors.New("config: unknown layer type")
	ErrUnknownFilter = errors.New("config: unknown filter type")
	ErrMissingArg    = errors.New("config: missing required argument")
	ErrBadDimensions = errors.New("config: width and height must be positive")
)

// Document is the top-level YAML structure.
type Document struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Background string        `yaml:"background"`
	Layers     []LayerConfig `yaml:"layers"`
}

// LayerConfig is one layer block. Keys other than type and filters land in
// Args and are interpreted by the layer's builder.
type LayerConfig struct {
	Type    string         `yaml:"type"`
	Filters []FilterConfig `yaml:"filters"`
	Args    Args           `yaml:",inline"`
}

// FilterConfig is one filter block within a layer.
type FilterConfig struct {
	Type string `yaml:"type"`
	Args Args   `yaml:",inline"`
}

// Load parses a YAML document and builds the canvas it describes, resolving
// type names through reg (nil means the built-in registry).
func Load(r io.Reader, reg *Registry) (*strata.Canvas[uint8], error) {
	if reg == nil {
		reg = NewRegistry()
	}

	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(false)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("config: parse failed: %w", err)
	}

	return Build(&doc, reg)
}

// LoadFile is Load over a file path.
func LoadFile(path string, reg *Registry) (*strata.Canvas[uint8], error) {
	f, err := os.Open(path) // #nosec G304 -- config path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, reg)
}

// Build assembles a canvas from an already-parsed document.
func Build(doc *Document, reg *Registry) (*strata.Canvas[uint8], error) {
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, doc.Width, doc.Height)
	}

	canvas := strata.NewCanvas[uint8](doc.Width, doc.Height)
	if doc.Background != "" {
		bg, err := strata.ParseHex[uint8](doc.Background)
		if err != nil {
			return nil, fmt.Errorf("config: background: %w", err)
		}
		canvas.SetBackground(bg)
	}

	log := strata.Logger()
	for i, lc := range doc.Layers {
		layer, err := reg.BuildLayer(lc)
		if err != nil {
			return nil, fmt.Errorf("config: layer %d: %w", i, err)
		}
		log.Debug("layer built", "index", i, "type", lc.Type, "filters", len(lc.Filters))
		canvas.AddLayer(layer)
	}

	return canvas, nil
}

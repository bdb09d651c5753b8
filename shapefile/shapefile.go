// Package shapefile loads panel documents: a segment tree together with
// the scale, gauge and border settings it is meant to be knitted with.
//
// Documents are YAML. Since YAML is a superset of JSON, JSON documents load
// through the same decoder.
//
//	scale: 1
//	gauge:
//	  stitchesPerFourInches: 22
//	  rowsPerFourInches: 30
//	border:
//	  thickness: 2
//	shape:
//	  height: 10
//	  baseA: 20
//	  baseB: 20
//	  successors:
//	    - {height: 8, baseA: 10, baseB: 2}
//	    - {height: 8, baseA: 10, baseB: 2}
package shapefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stitchkit/panel"
)

// ErrEmptyDocument is returned when a document has no shape.
var ErrEmptyDocument = errors.New("shapefile: document has no shape")

// DefaultBorderThickness is the border width, in stitches, used when a
// document does not set one.
const DefaultBorderThickness = 2

// Border holds border settings.
type Border struct {
	Thickness float64 `yaml:"thickness" json:"thickness"`
}

// Document is one panel definition.
type Document struct {
	Scale  float64        `yaml:"scale,omitempty" json:"scale,omitempty"`
	Gauge  *panel.Gauge   `yaml:"gauge,omitempty" json:"gauge,omitempty"`
	Border Border         `yaml:"border,omitempty" json:"border,omitempty"`
	Shape  *panel.Segment `yaml:"shape" json:"shape"`
}

// Defaults fills unset fields: scale 1, panel.DefaultGauge and
// DefaultBorderThickness.
func (d *Document) Defaults() {
	if d.Scale <= 0 {
		d.Scale = 1
	}
	if d.Gauge == nil {
		g := panel.DefaultGauge
		d.Gauge = &g
	}
	if d.Border.Thickness <= 0 {
		d.Border.Thickness = DefaultBorderThickness
	}
}

// Decode reads a document from r, applies Defaults and validates the shape.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("shapefile: read: %w", err)
	}
	return parse(data)
}

// Load reads the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shape file: %w", err)
	}

	doc, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	panel.Logger().Info("shape file loaded", "path", path, "segments", doc.Shape.Count())
	return doc, nil
}

func parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("shapefile: parse: %w", err)
	}
	if doc.Shape == nil {
		return nil, ErrEmptyDocument
	}
	if err := doc.Shape.Validate(); err != nil {
		return nil, err
	}

	doc.Defaults()
	return &doc, nil
}

// Encode writes doc to w as YAML.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("shapefile: encode: %w", err)
	}
	return enc.Close()
}

// Package svgout draws a detected panel outline as SVG.
//
// Exterior edges and internal seams are written as separate groups so the
// classification can be checked by eye in any browser.
package svgout

import (
	"errors"
	"fmt"
	"io"

	"github.com/jbeda/geom"

	"github.com/stitchkit/panel"
)

// ErrEmptyShape is returned when there is nothing to draw.
var ErrEmptyShape = errors.New("svgout: empty shape")

// Default styles. Stroke widths are in shape units.
const (
	DefaultOutlineStyle = "stroke: #b03030; stroke-width: 0.05; stroke-linecap: round; fill: none"
	DefaultSeamStyle    = "stroke: #7a7a7a; stroke-width: 0.03; stroke-dasharray: 0.2 0.1; fill: none"
)

// Option configures Write.
type Option func(*options)

type options struct {
	margin       float64
	outlineStyle string
	seamStyle    string
	hideSeams    bool
}

// WithMargin pads the view box by m shape units on every side.
func WithMargin(m float64) Option {
	return func(o *options) { o.margin = m }
}

// WithStyles overrides the CSS used for exterior edges and seams.
// Empty strings keep the default.
func WithStyles(outline, seam string) Option {
	return func(o *options) {
		if outline != "" {
			o.outlineStyle = outline
		}
		if seam != "" {
			o.seamStyle = seam
		}
	}
}

// WithoutSeams omits the seam group.
func WithoutSeams() Option {
	return func(o *options) { o.hideSeams = true }
}

// svgWriter serializes SVG elements and keeps the first write error.
type svgWriter struct {
	w   io.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *svgWriter) start(viewBox geom.Rect) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

func (s *svgWriter) end() {
	s.printf("</svg>\n")
}

func (s *svgWriter) startGroup(id, style string) {
	s.printf("<g id='%s' style='%s'>\n", id, style)
}

func (s *svgWriter) endGroup() {
	s.printf("</g>\n")
}

func (s *svgWriter) line(e panel.Edge) {
	s.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' data-side='%s'/>\n",
		e.Start.X, e.Start.Y, e.End.X, e.End.Y, e.Kind)
}

// ViewBox returns the extent of all placements grown by margin.
func ViewBox(res *panel.Result, margin float64) (geom.Rect, bool) {
	if len(res.Coordinates) == 0 {
		return geom.Rect{}, false
	}

	first := coord(res.Coordinates[0].TopLeft)
	r := geom.Rect{Min: first, Max: first}
	for _, p := range res.Coordinates {
		for _, c := range p.Quad() {
			r.ExpandToContainCoord(coord(c))
		}
	}

	pad := geom.Coord{X: margin, Y: margin}
	r.Min = r.Min.Minus(pad)
	r.Max = r.Max.Plus(pad)
	return r, true
}

func coord(p panel.Point) geom.Coord {
	return geom.Coord{X: p.X, Y: p.Y}
}

// Write draws res to w: a group of seam lines followed by a group of
// exterior outline lines, one <line> per edge.
func Write(w io.Writer, res *panel.Result, opts ...Option) error {
	o := options{
		margin:       0.5,
		outlineStyle: DefaultOutlineStyle,
		seamStyle:    DefaultSeamStyle,
	}
	for _, opt := range opts {
		opt(&o)
	}

	viewBox, ok := ViewBox(res, o.margin)
	if !ok {
		return ErrEmptyShape
	}

	exterior := make(map[panel.Edge]bool, len(res.ExteriorEdges))
	for _, e := range res.ExteriorEdges {
		exterior[e] = true
	}

	s := &svgWriter{w: w}
	s.start(viewBox)

	if !o.hideSeams {
		s.startGroup("seams", o.seamStyle)
		for _, e := range res.Edges {
			if !exterior[e] {
				s.line(e)
			}
		}
		s.endGroup()
	}

	s.startGroup("outline", o.outlineStyle)
	for _, e := range res.ExteriorEdges {
		s.line(e)
	}
	s.endGroup()

	s.end()

	if s.err != nil {
		return fmt.Errorf("svgout: write: %w", s.err)
	}
	panel.Logger().Debug("svgout: written", "edges", len(res.Edges), "exterior", len(res.ExteriorEdges))
	return nil
}

package panel

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/stitchkit/panel/internal/planar"
)

// DefaultNearDistance is the distance callers conventionally pass to
// IsNearPerimeter when they have no better figure.
const DefaultNearDistance = 0.5

// PerimeterMap answers point queries against the exterior outline of a
// detected shape.
//
// A PerimeterMap is immutable once built and holds no resources, so it may
// be shared and queried from any number of goroutines.
type PerimeterMap struct {
	exterior []Edge
	quads    []*geom.Polygon
	bounds   Bounds

	gridResolution float64
	gridWidth      int
	gridHeight     int

	edgeCloseness float64
}

// newPerimeterMap builds the query index. The slices are copied so that the
// map stays valid whatever the caller later does with the Result.
func newPerimeterMap(exterior []Edge, placements []Placement, bounds Bounds, o options) *PerimeterMap {
	quads := make([]*geom.Polygon, len(placements))
	for i, p := range placements {
		q := p.Quad()
		quads[i] = planar.Polygon(coord(q[0]), coord(q[1]), coord(q[2]), coord(q[3]))
	}

	return &PerimeterMap{
		exterior:       append([]Edge(nil), exterior...),
		quads:          quads,
		bounds:         bounds,
		gridResolution: o.gridResolution,
		gridWidth:      int(math.Ceil(bounds.Width() / o.gridResolution)),
		gridHeight:     int(math.Ceil(bounds.Height() / o.gridResolution)),
		edgeCloseness:  o.edgeCloseness,
	}
}

func coord(p Point) geom.Coord {
	return geom.Coord{X: p.X, Y: p.Y}
}

// Bounds returns the extent of the shape.
func (m *PerimeterMap) Bounds() Bounds { return m.bounds }

// GridResolution returns the cell size the grid metadata was derived from.
func (m *PerimeterMap) GridResolution() float64 { return m.gridResolution }

// GridWidth returns the number of grid cells spanning the shape horizontally.
func (m *PerimeterMap) GridWidth() int { return m.gridWidth }

// GridHeight returns the number of grid cells spanning the shape vertically.
func (m *PerimeterMap) GridHeight() int { return m.gridHeight }

// ExteriorEdges returns a copy of the edges the map queries against.
func (m *PerimeterMap) ExteriorEdges() []Edge {
	return append([]Edge(nil), m.exterior...)
}

// IsOnPerimeter reports whether (x, y) lies on an exterior edge within Tolerance.
func (m *PerimeterMap) IsOnPerimeter(x, y float64) bool {
	p := geom.Coord{X: x, Y: y}
	for _, e := range m.exterior {
		if planar.OnSegment(p, coord(e.Start), coord(e.End), Tolerance) {
			return true
		}
	}
	return false
}

// DistanceToPerimeter returns the distance from (x, y) to the nearest
// exterior edge, or +Inf when the shape is empty.
func (m *PerimeterMap) DistanceToPerimeter(x, y float64) float64 {
	p := geom.Coord{X: x, Y: y}
	best := math.Inf(1)
	for _, e := range m.exterior {
		d := planar.SegmentDistance(p, coord(e.Start), coord(e.End), Tolerance)
		if d < best {
			best = d
		}
	}
	return best
}

// IsNearPerimeter reports whether (x, y) is within distance of an exterior
// edge. DefaultNearDistance is the customary distance.
func (m *PerimeterMap) IsNearPerimeter(x, y, distance float64) bool {
	if len(m.exterior) == 0 {
		return false
	}
	return m.DistanceToPerimeter(x, y) <= distance
}

// IsInside reports whether (x, y) falls inside any segment's quadrilateral.
func (m *PerimeterMap) IsInside(x, y float64) bool {
	if !m.bounds.Contains(x, y) {
		return false
	}
	p := geom.Coord{X: x, Y: y}
	for _, q := range m.quads {
		if q.ContainsCoord(p) {
			return true
		}
	}
	return false
}

// IsBorderStitch reports whether a stitch at (x, y) belongs to a border that
// is thicknessInStitches wide, measured inward from the exterior outline.
// A nil gauge means DefaultGauge.
//
// The point must be within the border thickness of the outline and either
// inside the shape or just outside it. The outside allowance is
// min(thickness/2, edge closeness) and absorbs rounding of stitch positions
// that land on the outline.
func (m *PerimeterMap) IsBorderStitch(x, y, thicknessInStitches float64, gauge *Gauge) bool {
	if len(m.exterior) == 0 {
		return false
	}

	thickness := BorderThickness(thicknessInStitches, gauge)
	d := m.DistanceToPerimeter(x, y)
	if !(d <= thickness) {
		return false
	}

	return m.IsInside(x, y) || d <= math.Min(thickness*0.5, m.edgeCloseness)
}

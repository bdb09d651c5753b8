// Package planar provides the segment predicates behind the perimeter
// queries, on top of geom coordinates.
package planar

import (
	"math"

	"github.com/jbeda/geom"
)

// SegmentDistance returns the Euclidean distance from p to the segment a-b.
// The projection of p onto the segment's line is clamped to the segment.
// When the squared length of the segment is below degenerateSq the segment
// is treated as the single point a.
func SegmentDistance(p, a, b geom.Coord, degenerateSq float64) float64 {
	d := b.Minus(a)
	lenSq := d.MagnitudeSquared()
	if lenSq < degenerateSq {
		return p.DistanceFrom(a)
	}

	t := geom.DotProduct(p.Minus(a), d) / lenSq
	switch {
	case t < 0:
		return p.DistanceFrom(a)
	case t > 1:
		return p.DistanceFrom(b)
	default:
		return p.DistanceFrom(a.Plus(d.Times(t)))
	}
}

// OnSegment reports whether p lies on the segment a-b: its perpendicular
// offset from the line must be within eps and its projection parameter
// within [-eps, 1+eps]. A zero-length segment contains only points within
// eps of a.
func OnSegment(p, a, b geom.Coord, eps float64) bool {
	d := b.Minus(a)
	lenSq := d.MagnitudeSquared()
	if lenSq == 0 {
		return p.DistanceFrom(a) <= eps
	}

	ap := p.Minus(a)
	if math.Abs(geom.CrossProduct(d, ap))/math.Sqrt(lenSq) > eps {
		return false
	}

	t := geom.DotProduct(ap, d) / lenSq
	return t >= -eps && t <= 1+eps
}

// Polygon builds a closed geom.Polygon from vertices in outline order.
func Polygon(vertices ...geom.Coord) *geom.Polygon {
	poly := &geom.Polygon{}
	for _, v := range vertices {
		poly.AddVertex(v)
	}
	return poly
}

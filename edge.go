package panel

import "math"

// Tolerance is the distance below which two lengths or offsets are treated as
// equal, in shape coordinate units.
const Tolerance = 1e-3

// EdgeKind identifies which side of its segment an edge traces.
type EdgeKind uint8

const (
	// EdgeTop runs from the top-left to the top-right corner.
	EdgeTop EdgeKind = iota

	// EdgeRight runs from the top-right to the bottom-right corner.
	EdgeRight

	// EdgeBottom runs from the bottom-right to the bottom-left corner.
	EdgeBottom

	// EdgeLeft runs from the bottom-left to the top-left corner.
	EdgeLeft
)

// String returns the lowercase side name.
func (k EdgeKind) String() string {
	switch k {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Edge is a directed side of a placed segment.
type Edge struct {
	Kind    EdgeKind
	Start   Point
	End     Point
	Segment *Segment
}

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float64 {
	return e.Start.Distance(e.End)
}

// ExtractEdges returns four edges per placement, tracing each quadrilateral
// clockwise in screen coordinates: top, right, bottom, left.
func ExtractEdges(placements []Placement) []Edge {
	edges := make([]Edge, 0, 4*len(placements))
	for _, p := range placements {
		edges = append(edges,
			Edge{Kind: EdgeTop, Start: p.TopLeft, End: p.TopRight, Segment: p.Segment},
			Edge{Kind: EdgeRight, Start: p.TopRight, End: p.BottomRight, Segment: p.Segment},
			Edge{Kind: EdgeBottom, Start: p.BottomRight, End: p.BottomLeft, Segment: p.Segment},
			Edge{Kind: EdgeLeft, Start: p.BottomLeft, End: p.TopLeft, Segment: p.Segment},
		)
	}
	return edges
}

// EdgesOverlap reports whether two edges lie on the same line and share part
// of their extent, which is how a seam between two segments shows up.
// Direction is ignored because neighbouring segments trace a shared seam in
// opposite directions. Edges shorter than Tolerance never overlap, and the
// shared extent must itself be longer than Tolerance.
//
// The test is run from the frame of each edge in turn, so the result does
// not depend on argument order even for edges that are only nearly parallel.
func EdgesOverlap(e1, e2 Edge) bool {
	return overlapsAlong(e1, e2) && overlapsAlong(e2, e1)
}

// overlapsAlong tests other against the line through ref.
func overlapsAlong(ref, other Edge) bool {
	v1 := ref.End.Sub(ref.Start)
	v2 := other.End.Sub(other.Start)
	if v1.LengthSquared() < Tolerance*Tolerance || v2.LengthSquared() < Tolerance*Tolerance {
		return false
	}

	n1 := v1.Normalize()
	n2 := v2.Normalize()

	// Parallel or anti-parallel.
	if math.Abs(math.Abs(n1.Dot(n2))-1) > Tolerance {
		return false
	}

	// Collinear: other.Start sits on the line through ref.
	if math.Abs(other.Start.Sub(ref.Start).Cross(n1)) > Tolerance {
		return false
	}

	min1, max1 := projectOnto(ref, n1)
	min2, max2 := projectOnto(other, n1)
	if max1 < min2 || max2 < min1 {
		return false
	}

	// Collinear edges that only meet at an endpoint, such as the outer sides
	// of two stacked rectangles, are not a seam.
	return math.Min(max1, max2)-math.Max(min1, min2) > Tolerance
}

// projectOnto returns the interval covered by e along the unit direction n.
func projectOnto(e Edge, n Point) (lo, hi float64) {
	a := e.Start.Dot(n)
	b := e.End.Dot(n)
	return math.Min(a, b), math.Max(a, b)
}

// ExteriorEdges returns the edges that overlap no other edge in the set,
// preserving their order. Every edge involved in any overlap is dropped,
// so both sides of a seam disappear together.
func ExteriorEdges(edges []Edge) []Edge {
	exterior := make([]Edge, 0, len(edges))
	for i, e := range edges {
		shared := false
		for j, other := range edges {
			if i != j && EdgesOverlap(e, other) {
				shared = true
				break
			}
		}
		if !shared {
			exterior = append(exterior, e)
		}
	}
	return exterior
}

package panel

import "log/slog"

// Result is the outcome of Detect.
type Result struct {
	// Coordinates holds one placement per segment, in layout order.
	Coordinates []Placement

	// Edges holds four edges per placement.
	Edges []Edge

	// ExteriorEdges is the subset of Edges on the outline of the shape.
	ExteriorEdges []Edge

	// Bounds is the extent of all placements.
	Bounds Bounds

	// PerimeterMap answers point queries against ExteriorEdges.
	PerimeterMap *PerimeterMap

	index map[*Segment]int
}

// PlacementOf returns the placement computed for seg.
func (r *Result) PlacementOf(seg *Segment) (Placement, bool) {
	i, ok := r.index[seg]
	if !ok {
		return Placement{}, false
	}
	return r.Coordinates[i], true
}

// Detect lays out the segment tree rooted at root, classifies every segment
// edge as exterior or shared, and builds a PerimeterMap over the exterior.
//
// Detect is a pure function of its arguments: it does not modify root, keeps
// no state between calls and never fails. A nil root yields an empty result
// whose predicates all report false. Scale is expected to be positive but is
// not checked.
func Detect(root *Segment, scale float64, opts ...Option) *Result {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	placements := Layout(root, scale)
	edges := ExtractEdges(placements)
	exterior := ExteriorEdges(edges)
	bounds := BoundsOf(placements)

	index := make(map[*Segment]int, len(placements))
	for i, p := range placements {
		index[p.Segment] = i
	}

	Logger().Debug("panel: perimeter detected",
		slog.Int("segments", len(placements)),
		slog.Int("edges", len(edges)),
		slog.Int("exterior", len(exterior)),
		slog.Float64("scale", scale),
	)

	return &Result{
		Coordinates:   placements,
		Edges:         edges,
		ExteriorEdges: exterior,
		Bounds:        bounds,
		PerimeterMap:  newPerimeterMap(exterior, placements, bounds, o),
		index:         index,
	}
}

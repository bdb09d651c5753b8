// Package panel classifies the outline of knitted garment panels.
//
// # Overview
//
// A panel is described as a tree of right trapezoid segments. Each segment
// has a lower width (BaseA), an upper width (BaseB), a height, and optional
// successors stacked side by side on its upper edge. Detect lays the tree
// out in absolute coordinates, works out which segment edges form the true
// outline of the composite shape and which are internal seams, and returns
// a PerimeterMap for point queries.
//
// # Quick Start
//
//	import "github.com/stitchkit/panel"
//
//	body := &panel.Segment{Height: 10, BaseA: 20, BaseB: 20}
//	body.Successors = []*panel.Segment{
//	    {Height: 8, BaseA: 10, BaseB: 2},
//	    {Height: 8, BaseA: 10, BaseB: 2},
//	}
//
//	res := panel.Detect(body, 1)
//	gauge := &panel.Gauge{StitchesPerFourInches: 22, RowsPerFourInches: 30}
//	if res.PerimeterMap.IsBorderStitch(0.2, 1, 2, gauge) {
//	    // paint the border colour
//	}
//
// # Coordinate System
//
// Coordinates follow screen conventions:
//   - Origin at the top-left corner of the root segment's layout slot
//   - X increases right
//   - Y increases down, so successors have smaller Y than their parent
//
// Units are whatever the segment dimensions are in (inches, for the gauge
// conversion to be meaningful) multiplied by the scale passed to Detect.
//
// # Seams
//
// Two edges are a seam when they are parallel, collinear and their extents
// overlap by more than Tolerance; edges that merely meet end to end are not.
// Both edges of a seam are dropped from the exterior set, so internal seams
// never register as border.
//
// # Concurrency
//
// Detect keeps no state between calls. A Result and its PerimeterMap are
// never mutated after Detect returns and may be read from many goroutines.
package panel

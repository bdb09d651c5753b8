package panel

// Placement holds the absolute corner coordinates of one segment after layout.
// Y grows downward: the top edge of a segment has the smaller Y.
type Placement struct {
	Segment *Segment

	TopLeft     Point
	TopRight    Point
	BottomLeft  Point
	BottomRight Point
}

// Quad returns the corners in outline order:
// top-left, top-right, bottom-right, bottom-left.
func (p Placement) Quad() [4]Point {
	return [4]Point{p.TopLeft, p.TopRight, p.BottomRight, p.BottomLeft}
}

// Centroid returns the mean of the four corners.
func (p Placement) Centroid() Point {
	return Point{
		X: (p.TopLeft.X + p.TopRight.X + p.BottomLeft.X + p.BottomRight.X) / 4,
		Y: (p.TopLeft.Y + p.TopRight.Y + p.BottomLeft.Y + p.BottomRight.Y) / 4,
	}
}

// layoutFrame is a pending segment together with the offsets of its slot.
type layoutFrame struct {
	seg  *Segment
	x, y float64
}

// Layout resolves absolute corner coordinates for every segment in the tree
// rooted at root. Dimensions are multiplied by scale.
//
// Placements are returned in depth-first pre-order. Successors of a segment
// are visited from last to first, and each visited successor takes the next
// slot from the left, so the last successor ends up leftmost. The returned
// slice is freshly allocated; root is never modified.
func Layout(root *Segment, scale float64) []Placement {
	if root == nil {
		return nil
	}

	placements := make([]Placement, 0, root.Count())
	stack := []layoutFrame{{seg: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		placements = append(placements, place(f, scale))
		stack = append(stack, successorFrames(f, scale)...)
	}

	return placements
}

// place computes the four corners of a single segment in its slot.
func place(f layoutFrame, scale float64) Placement {
	s := f.seg
	trapWidth := s.Width() * scale
	shift := s.BaseBHorizontalOffset * scale

	topLeft := f.x + (trapWidth-s.BaseB*scale)/2 + shift
	bottomLeft := f.x + (trapWidth-s.BaseA*scale)/2
	yTop := f.y
	yBottom := f.y + s.Height*scale

	return Placement{
		Segment:     s,
		TopLeft:     Pt(topLeft, yTop),
		TopRight:    Pt(topLeft+s.BaseB*scale, yTop),
		BottomLeft:  Pt(bottomLeft, yBottom),
		BottomRight: Pt(bottomLeft+s.BaseA*scale, yBottom),
	}
}

// successorFrames lays the successors of f out as one block centred on the
// parent's slot, directly above the parent's top edge. Frames are returned in
// successor order so that pushing them onto a stack pops the last one first.
func successorFrames(f layoutFrame, scale float64) []layoutFrame {
	succ := f.seg.Successors
	if len(succ) == 0 {
		return nil
	}

	total := 0.0
	for _, c := range succ {
		if c != nil {
			total += c.Width() * scale
		}
	}

	frames := make([]layoutFrame, len(succ))
	x := f.x + (f.seg.Width()*scale-total)/2
	for i := len(succ) - 1; i >= 0; i-- {
		c := succ[i]
		if c == nil {
			continue
		}
		frames[i] = layoutFrame{seg: c, x: x, y: f.y - c.Height*scale}
		x += c.Width() * scale
	}

	// Nil successors occupy no slot and produce no placement.
	out := frames[:0]
	for _, fr := range frames {
		if fr.seg != nil {
			out = append(out, fr)
		}
	}
	return out
}

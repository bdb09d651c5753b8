package panel

import "math"

// Bounds is the axis-aligned extent of a laid out shape.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether (x, y) lies within the bounds, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// BoundsOf returns the extent of all corners of the placements.
// An empty slice yields the zero Bounds.
func BoundsOf(placements []Placement) Bounds {
	if len(placements) == 0 {
		return Bounds{}
	}

	b := Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	for _, p := range placements {
		for _, c := range p.Quad() {
			b.MinX = math.Min(b.MinX, c.X)
			b.MaxX = math.Max(b.MaxX, c.X)
			b.MinY = math.Min(b.MinY, c.Y)
			b.MaxY = math.Max(b.MaxY, c.Y)
		}
	}
	return b
}

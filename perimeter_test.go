package panel

import (
	"math"
	"testing"
)

// smallTrapezoid has corners (1,0) (3,0) (4,2) (0,2).
func smallTrapezoid() *Segment {
	return &Segment{Height: 2, BaseA: 4, BaseB: 2}
}

func TestPerimeterMap_IsOnPerimeter_CornersAndCentroid(t *testing.T) {
	res := Detect(smallTrapezoid(), 1)
	m := res.PerimeterMap
	p := res.Coordinates[0]

	for i, c := range p.Quad() {
		if !m.IsOnPerimeter(c.X, c.Y) {
			t.Errorf("IsOnPerimeter(corner %d %v) = false, want true", i, c)
		}
	}

	c := p.Centroid()
	if m.IsOnPerimeter(c.X, c.Y) {
		t.Errorf("IsOnPerimeter(centroid %v) = true, want false", c)
	}
}

func TestPerimeterMap_IsOnPerimeter(t *testing.T) {
	m := Detect(smallTrapezoid(), 1).PerimeterMap

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"top midpoint", 2, 0, true},
		{"bottom midpoint", 2, 2, true},
		{"right side midpoint", 3.5, 1, true},
		{"within tolerance", 2, 0.0005, true},
		{"just off top", 2, 0.01, false},
		{"on line beyond segment", 5, 0, false},
		{"far away", 50, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsOnPerimeter(tt.x, tt.y); got != tt.want {
				t.Errorf("IsOnPerimeter(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPerimeterMap_IsNearPerimeter(t *testing.T) {
	m := Detect(smallTrapezoid(), 1).PerimeterMap

	tests := []struct {
		name     string
		x, y     float64
		distance float64
		want     bool
	}{
		{"centroid within 1", 2, 1, 1.0, true},
		{"centroid not within 0.5", 2, 1, 0.5, false},
		{"above top", 2, -0.3, 0.5, true},
		{"beyond corner clamps to endpoint", 3, -3, 2.9, false},
		{"beyond corner clamps to endpoint, far enough", 3, -3, 3.0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsNearPerimeter(tt.x, tt.y, tt.distance); got != tt.want {
				t.Errorf("IsNearPerimeter(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.distance, got, tt.want)
			}
		})
	}
}

func TestPerimeterMap_IsNearPerimeter_DefaultDistance(t *testing.T) {
	m := Detect(smallTrapezoid(), 1).PerimeterMap

	if !m.IsNearPerimeter(2, -0.4, DefaultNearDistance) {
		t.Error("IsNearPerimeter(2, -0.4, DefaultNearDistance) = false, want true")
	}
	if m.IsNearPerimeter(2, -0.6, DefaultNearDistance) {
		t.Error("IsNearPerimeter(2, -0.6, DefaultNearDistance) = true, want false")
	}
}

func TestPerimeterMap_IsInside(t *testing.T) {
	m := Detect(smallTrapezoid(), 1).PerimeterMap

	tests := []struct {
		x, y float64
		want bool
	}{
		{2, 1, true},
		{2, 0.2, true},
		{0.2, 0.2, false},
		{2, -0.5, false},
		{10, 10, false},
	}
	for _, tt := range tests {
		if got := m.IsInside(tt.x, tt.y); got != tt.want {
			t.Errorf("IsInside(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPerimeterMap_IsBorderStitch(t *testing.T) {
	// Default gauge: (5 + 6) / 2 = 5.5 stitches per unit, so 2 stitches
	// is about 0.364 units and the outside allowance is min(0.182, 0.1).
	m := Detect(smallTrapezoid(), 1).PerimeterMap

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside near top", 2, 0.2, true},
		{"centre", 2, 1, false},
		{"just outside top", 2, -0.05, true},
		{"outside beyond allowance", 2, -0.15, false},
		{"far outside", 100, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsBorderStitch(tt.x, tt.y, 2, nil); got != tt.want {
				t.Errorf("IsBorderStitch(%v, %v, 2, nil) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPerimeterMap_IsBorderStitch_EdgeCloseness(t *testing.T) {
	res := Detect(smallTrapezoid(), 1, WithEdgeCloseness(0.2))
	if !res.PerimeterMap.IsBorderStitch(2, -0.15, 2, nil) {
		t.Error("IsBorderStitch(2, -0.15) with closeness 0.2 = false, want true")
	}

	res = Detect(smallTrapezoid(), 1, WithEdgeCloseness(0))
	if res.PerimeterMap.IsBorderStitch(2, -0.05, 2, nil) {
		t.Error("IsBorderStitch(2, -0.05) with closeness 0 = true, want false")
	}
}

func TestPerimeterMap_IsBorderStitch_GaugeSensitivity(t *testing.T) {
	m := Detect(smallTrapezoid(), 1).PerimeterMap
	coarse := &Gauge{StitchesPerFourInches: 12, RowsPerFourInches: 16} // ~0.286 units per stitch
	fine := &Gauge{StitchesPerFourInches: 32, RowsPerFourInches: 40}   // ~0.111 units per stitch

	if !m.IsBorderStitch(2, 0.2, 1, coarse) {
		t.Error("coarse gauge: IsBorderStitch(2, 0.2, 1) = false, want true")
	}
	if m.IsBorderStitch(2, 0.2, 1, fine) {
		t.Error("fine gauge: IsBorderStitch(2, 0.2, 1) = true, want false")
	}
}

func TestPerimeterMap_SeamIsNotBorder(t *testing.T) {
	child := &Segment{Height: 2, BaseA: 4, BaseB: 2}
	parent := &Segment{Height: 4, BaseA: 6, BaseB: 4, Successors: []*Segment{child}}
	m := Detect(parent, 1).PerimeterMap

	// (3, 0) is the middle of the seam between parent and child.
	if m.IsOnPerimeter(3, 0) {
		t.Error("IsOnPerimeter(seam midpoint) = true, want false")
	}
	if m.IsBorderStitch(3, 0.1, 1, nil) {
		t.Error("IsBorderStitch(next to seam) = true, want false")
	}
	if !m.IsInside(3, -0.5) || !m.IsInside(3, 0.5) {
		t.Error("points on both sides of the seam should be inside")
	}
}

func TestPerimeterMap_Empty(t *testing.T) {
	res := Detect(nil, 1)
	m := res.PerimeterMap

	if res.Bounds != (Bounds{}) {
		t.Errorf("Bounds = %+v, want zero", res.Bounds)
	}
	if m.IsOnPerimeter(0, 0) {
		t.Error("IsOnPerimeter on empty shape = true")
	}
	if m.IsNearPerimeter(0, 0, math.Inf(1)) {
		t.Error("IsNearPerimeter on empty shape = true")
	}
	if m.IsInside(0, 0) {
		t.Error("IsInside on empty shape = true")
	}
	if m.IsBorderStitch(0, 0, 100, nil) {
		t.Error("IsBorderStitch on empty shape = true")
	}
	if d := m.DistanceToPerimeter(0, 0); !math.IsInf(d, 1) {
		t.Errorf("DistanceToPerimeter on empty shape = %v, want +Inf", d)
	}
}

func TestPerimeterMap_GridMetadata(t *testing.T) {
	m := Detect(smallTrapezoid(), 1, WithGridResolution(0.5)).PerimeterMap

	if m.GridResolution() != 0.5 {
		t.Errorf("GridResolution() = %v, want 0.5", m.GridResolution())
	}
	if m.GridWidth() != 8 {
		t.Errorf("GridWidth() = %d, want 8", m.GridWidth())
	}
	if m.GridHeight() != 4 {
		t.Errorf("GridHeight() = %d, want 4", m.GridHeight())
	}
	if m.Bounds() != (Bounds{MinX: 0, MaxX: 4, MinY: 0, MaxY: 2}) {
		t.Errorf("Bounds() = %+v", m.Bounds())
	}

	def := Detect(smallTrapezoid(), 1, WithGridResolution(-1)).PerimeterMap
	if def.GridResolution() != DefaultGridResolution {
		t.Errorf("GridResolution() after invalid option = %v, want %v", def.GridResolution(), DefaultGridResolution)
	}
}

func TestPerimeterMap_ExteriorEdgesIsCopy(t *testing.T) {
	m := Detect(smallTrapezoid(), 1).PerimeterMap

	edges := m.ExteriorEdges()
	edges[0].Start = Pt(-100, -100)
	if !m.IsOnPerimeter(2, 0) {
		t.Error("mutating ExteriorEdges() result changed the map")
	}
}

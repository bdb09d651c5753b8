package planar

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func c(x, y float64) geom.Coord { return geom.Coord{X: x, Y: y} }

func TestSegmentDistance(t *testing.T) {
	a, b := c(0, 0), c(4, 0)

	tests := []struct {
		name string
		p    geom.Coord
		want float64
	}{
		{"above middle", c(2, 3), 3},
		{"on segment", c(1, 0), 0},
		{"before start", c(-3, 4), 5},
		{"after end", c(7, 4), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentDistance(tt.p, a, b, 1e-3); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SegmentDistance(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestSegmentDistance_Degenerate(t *testing.T) {
	a := c(1, 1)
	b := c(1.01, 1)
	// lenSq = 1e-4 is below the threshold, so distance is measured to a.
	if got := SegmentDistance(c(1, 4), a, b, 1e-3); got != 3 {
		t.Errorf("SegmentDistance() = %v, want 3", got)
	}
}

func TestOnSegment(t *testing.T) {
	a, b := c(0, 0), c(10, 10)

	tests := []struct {
		name string
		p    geom.Coord
		want bool
	}{
		{"start", a, true},
		{"end", b, true},
		{"middle", c(5, 5), true},
		{"off line", c(5, 6), false},
		{"past end", c(11, 11), false},
		{"just past end within eps", c(10.001, 10.001), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OnSegment(tt.p, a, b, 1e-3); got != tt.want {
				t.Errorf("OnSegment(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestOnSegment_ZeroLength(t *testing.T) {
	a := c(2, 2)
	if !OnSegment(c(2, 2.0005), a, a, 1e-3) {
		t.Error("OnSegment(near point, zero-length) = false, want true")
	}
	if OnSegment(c(2, 3), a, a, 1e-3) {
		t.Error("OnSegment(far point, zero-length) = true, want false")
	}
}

func TestPolygon_ContainsCoord(t *testing.T) {
	square := Polygon(c(0, 0), c(4, 0), c(4, 4), c(0, 4))
	trapezoid := Polygon(c(1, 0), c(3, 0), c(4, 2), c(0, 2))

	tests := []struct {
		name string
		poly *geom.Polygon
		p    geom.Coord
		want bool
	}{
		{"square centre", square, c(2, 2), true},
		{"square outside", square, c(5, 2), false},
		{"trapezoid inside", trapezoid, c(2, 1), true},
		{"trapezoid cut corner", trapezoid, c(0.2, 0.2), false},
		{"empty polygon", Polygon(), c(0, 0), false},
		{"degenerate polygon", Polygon(c(1, 1), c(1, 1), c(1, 1), c(1, 1)), c(1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.poly.ContainsCoord(tt.p); got != tt.want {
				t.Errorf("ContainsCoord(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

package panel

import (
	"math"
	"testing"
)

func TestGauge_NilUsesDefaults(t *testing.T) {
	var g *Gauge
	if got := g.StitchesPerInch(); got != 5 {
		t.Errorf("StitchesPerInch() = %v, want 5", got)
	}
	if got := g.RowsPerInch(); got != 6 {
		t.Errorf("RowsPerInch() = %v, want 6", got)
	}
}

func TestBorderThickness(t *testing.T) {
	tests := []struct {
		name      string
		stitches  float64
		gauge     *Gauge
		wantUnits float64
	}{
		{"default gauge", 11, nil, 2},
		{"explicit default", 11, &DefaultGauge, 2},
		{"square gauge", 4, &Gauge{StitchesPerFourInches: 16, RowsPerFourInches: 16}, 1},
		{"zero thickness", 0, nil, 0},
		{"fine gauge", 9, &Gauge{StitchesPerFourInches: 32, RowsPerFourInches: 40}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BorderThickness(tt.stitches, tt.gauge); math.Abs(got-tt.wantUnits) > 1e-12 {
				t.Errorf("BorderThickness(%v, %+v) = %v, want %v", tt.stitches, tt.gauge, got, tt.wantUnits)
			}
		})
	}
}

func TestBorderThickness_FinerGaugeIsThinner(t *testing.T) {
	coarse := &Gauge{StitchesPerFourInches: 14, RowsPerFourInches: 18}
	fine := &Gauge{StitchesPerFourInches: 28, RowsPerFourInches: 36}

	if BorderThickness(3, fine) > BorderThickness(3, coarse) {
		t.Errorf("BorderThickness(fine) = %v > BorderThickness(coarse) = %v",
			BorderThickness(3, fine), BorderThickness(3, coarse))
	}
}

func TestBorderThickness_ZeroDensity(t *testing.T) {
	got := BorderThickness(1, &Gauge{})
	if !math.IsInf(got, 1) {
		t.Errorf("BorderThickness(1, zero gauge) = %v, want +Inf", got)
	}
}

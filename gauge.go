package panel

// Gauge is a knitting density measured over a four inch swatch.
type Gauge struct {
	StitchesPerFourInches float64 `yaml:"stitchesPerFourInches" json:"stitchesPerFourInches"`
	RowsPerFourInches     float64 `yaml:"rowsPerFourInches" json:"rowsPerFourInches"`
}

// DefaultGauge is used wherever a gauge is not supplied.
var DefaultGauge = Gauge{StitchesPerFourInches: 20, RowsPerFourInches: 24}

// StitchesPerInch returns the horizontal density. A nil gauge reports the
// DefaultGauge density.
func (g *Gauge) StitchesPerInch() float64 {
	if g == nil {
		return DefaultGauge.StitchesPerFourInches / 4
	}
	return g.StitchesPerFourInches / 4
}

// RowsPerInch returns the vertical density. A nil gauge reports the
// DefaultGauge density.
func (g *Gauge) RowsPerInch() float64 {
	if g == nil {
		return DefaultGauge.RowsPerFourInches / 4
	}
	return g.RowsPerFourInches / 4
}

// BorderThickness converts a border width counted in stitches into shape
// units. Stitch and row densities usually differ, so their mean is used to
// get a single isotropic distance. The gauge is not validated: a zero
// density yields an infinite thickness.
func BorderThickness(thicknessInStitches float64, g *Gauge) float64 {
	density := (g.StitchesPerInch() + g.RowsPerInch()) / 2
	return thicknessInStitches / density
}

package panel

// Option configures Detect.
//
// Example:
//
//	res := panel.Detect(shape, 1, panel.WithEdgeCloseness(0.05))
type Option func(*options)

// options holds the tunables of a single Detect call.
type options struct {
	gridResolution float64
	edgeCloseness  float64
}

const (
	// DefaultGridResolution is the cell size reported by PerimeterMap.GridResolution.
	DefaultGridResolution = 0.1

	// DefaultEdgeCloseness caps the distance within which a point just outside
	// the outline still counts as a border stitch.
	DefaultEdgeCloseness = 0.1
)

// defaultOptions returns the default detection options.
func defaultOptions() options {
	return options{
		gridResolution: DefaultGridResolution,
		edgeCloseness:  DefaultEdgeCloseness,
	}
}

// WithGridResolution sets the cell size used to derive the GridWidth and
// GridHeight metadata of the perimeter map. Non-positive values are ignored.
func WithGridResolution(r float64) Option {
	return func(o *options) {
		if r > 0 {
			o.gridResolution = r
		}
	}
}

// WithEdgeCloseness sets the cap on the outside-the-outline allowance used by
// IsBorderStitch. The allowance is min(thickness/2, c). Negative values are
// ignored; zero disables the allowance.
func WithEdgeCloseness(c float64) Option {
	return func(o *options) {
		if c >= 0 {
			o.edgeCloseness = c
		}
	}
}

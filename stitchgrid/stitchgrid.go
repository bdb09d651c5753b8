// Package stitchgrid samples a detected panel on the knitted stitch lattice.
//
// A knitted fabric is a grid of stitches: one column per stitch across a row
// and one grid row per knitted row. Sample places that lattice over the
// bounding box of a panel.Result, using the gauge to size the cells, and
// classifies every stitch as outside the panel, inside it, or part of its
// border. Shape units are taken to be inches, which is what the gauge is
// expressed in.
package stitchgrid

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/stitchkit/panel"
	"github.com/stitchkit/panel/internal/parallel"
)

// MaxCells is the largest lattice Sample will classify.
const MaxCells = 1 << 24

// ErrTooLarge is returned by Sample when the lattice would exceed MaxCells.
var ErrTooLarge = errors.New("stitchgrid: lattice too large")

// Cell is the classification of one stitch.
type Cell uint8

const (
	// Outside marks stitches that are not part of the panel.
	Outside Cell = iota

	// Interior marks stitches inside the panel but away from its outline.
	Interior

	// Border marks stitches within the border thickness of the outline.
	Border
)

// String returns a one-word name for the cell class.
func (c Cell) String() string {
	switch c {
	case Outside:
		return "outside"
	case Interior:
		return "interior"
	case Border:
		return "border"
	default:
		return "unknown"
	}
}

// Mask is the classified stitch lattice of a panel. Row 0 is the row with
// the smallest Y, which is the top of the panel.
type Mask struct {
	cols, rows int
	cells      []Cell

	bounds panel.Bounds
	gauge  panel.Gauge
}

// Option configures Sample.
type Option func(*options)

type options struct {
	workers  int
	bandRows int
}

// WithWorkers sets the number of sampling goroutines. Zero or negative
// means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithBandRows sets how many lattice rows one sampling job covers.
// Values below one are ignored.
func WithBandRows(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.bandRows = n
		}
	}
}

// Sample classifies every stitch of the lattice covering res.Bounds.
// thicknessInStitches is the border width passed to IsBorderStitch, and a
// nil gauge means panel.DefaultGauge.
//
// Stitches are sampled at their cell centres. Rows are split into bands
// that are classified concurrently; the PerimeterMap is read-only so no
// locking is needed. Lattices larger than MaxCells are refused with an
// error wrapping ErrTooLarge.
func Sample(res *panel.Result, thicknessInStitches float64, gauge *panel.Gauge, opts ...Option) (*Mask, error) {
	o := options{bandRows: 8}
	for _, opt := range opts {
		opt(&o)
	}

	g := panel.DefaultGauge
	if gauge != nil {
		g = *gauge
	}

	b := res.Bounds
	spi := g.StitchesPerFourInches / 4
	rpi := g.RowsPerFourInches / 4

	cols := latticeSize(b.Width(), spi)
	rows := latticeSize(b.Height(), rpi)
	if cols > MaxCells || rows > MaxCells || cols*rows > MaxCells {
		return nil, fmt.Errorf("%w: %.0f x %.0f stitches, limit %d", ErrTooLarge, cols, rows, MaxCells)
	}

	m := &Mask{
		cols:   int(cols),
		rows:   int(rows),
		bounds: b,
		gauge:  g,
	}
	m.cells = make([]Cell, m.cols*m.rows)
	if len(m.cells) == 0 {
		return m, nil
	}

	pm := res.PerimeterMap
	classify := func(row int) {
		y := b.MinY + (float64(row)+0.5)/rpi
		line := m.cells[row*m.cols : (row+1)*m.cols]
		for col := range line {
			x := b.MinX + (float64(col)+0.5)/spi
			switch {
			case pm.IsBorderStitch(x, y, thicknessInStitches, &g):
				line[col] = Border
			case pm.IsInside(x, y):
				line[col] = Interior
			}
		}
	}

	var work []func()
	for start := 0; start < m.rows; start += o.bandRows {
		end := min(start+o.bandRows, m.rows)
		work = append(work, func() {
			for row := start; row < end; row++ {
				classify(row)
			}
		})
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()
	pool.ExecuteAll(work)

	panel.Logger().Debug("stitchgrid: sampled",
		"cols", m.cols,
		"rows", m.rows,
		"bands", len(work),
		"border", m.Count(Border),
	)

	return m, nil
}

// latticeSize returns how many cells of 1/density span extent.
// Non-positive or NaN results collapse to zero; +Inf is kept so that the
// caller's size check rejects it.
func latticeSize(extent, density float64) float64 {
	n := math.Ceil(extent * density)
	if math.IsNaN(n) || n <= 0 {
		return 0
	}
	return n
}

// Size returns the number of stitch columns and rows.
func (m *Mask) Size() (cols, rows int) {
	return m.cols, m.rows
}

// Bounds returns the shape extent the lattice covers.
func (m *Mask) Bounds() panel.Bounds {
	return m.bounds
}

// Gauge returns the gauge the lattice was sized with.
func (m *Mask) Gauge() panel.Gauge {
	return m.gauge
}

// At returns the class of the stitch at (col, row). Positions outside the
// lattice are Outside.
func (m *Mask) At(col, row int) Cell {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return Outside
	}
	return m.cells[row*m.cols+col]
}

// Count returns the number of stitches of class c.
func (m *Mask) Count(c Cell) int {
	n := 0
	for _, v := range m.cells {
		if v == c {
			n++
		}
	}
	return n
}

// String draws the mask as text, one line per row:
// '.' outside, 'o' interior, '#' border.
func (m *Mask) String() string {
	var sb strings.Builder
	sb.Grow((m.cols + 1) * m.rows)
	for row := range m.rows {
		for col := range m.cols {
			switch m.At(col, row) {
			case Border:
				sb.WriteByte('#')
			case Interior:
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

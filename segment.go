package panel

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSegment is returned by Segment.Validate when a segment carries
// dimensions that cannot describe a knitted piece.
var ErrInvalidSegment = errors.New("panel: invalid segment")

// Segment is one right trapezoid of a garment panel.
//
// BaseA is the lower (cast-on side) width and BaseB the upper width. The upper
// edge may be shifted horizontally by BaseBHorizontalOffset relative to the
// centreline of the lower edge. Successors are stacked on top of the segment,
// side by side, with their bottom edges resting on its top edge.
//
// The engine treats segments as read-only input and never mutates them.
type Segment struct {
	Height                float64    `yaml:"height" json:"height"`
	BaseA                 float64    `yaml:"baseA" json:"baseA"`
	BaseB                 float64    `yaml:"baseB" json:"baseB"`
	BaseBHorizontalOffset float64    `yaml:"baseBHorizontalOffset,omitempty" json:"baseBHorizontalOffset,omitempty"`
	Successors            []*Segment `yaml:"successors,omitempty" json:"successors,omitempty"`
}

// Width returns the width of the segment's layout slot, max(BaseA, BaseB).
func (s *Segment) Width() float64 {
	return math.Max(s.BaseA, s.BaseB)
}

// Count returns the number of segments in the tree rooted at s.
// A nil segment counts as zero.
func (s *Segment) Count() int {
	if s == nil {
		return 0
	}
	n := 1
	for _, c := range s.Successors {
		n += c.Count()
	}
	return n
}

// Validate reports the first segment in the tree whose dimensions are
// negative or not finite. The error wraps ErrInvalidSegment and names the
// offending field by its path from the root, e.g. "successors[1].baseA".
//
// Detect does not call Validate; malformed segments there simply produce
// degenerate geometry.
func (s *Segment) Validate() error {
	if s == nil {
		return nil
	}
	return s.validate("")
}

func (s *Segment) validate(prefix string) error {
	fields := []struct {
		name     string
		value    float64
		mayBeNeg bool
	}{
		{"height", s.Height, false},
		{"baseA", s.BaseA, false},
		{"baseB", s.BaseB, false},
		{"baseBHorizontalOffset", s.BaseBHorizontalOffset, true},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s%s is not finite", ErrInvalidSegment, prefix, f.name)
		}
		if !f.mayBeNeg && f.value < 0 {
			return fmt.Errorf("%w: %s%s is negative (%g)", ErrInvalidSegment, prefix, f.name, f.value)
		}
	}
	for i, c := range s.Successors {
		if c == nil {
			return fmt.Errorf("%w: %ssuccessors[%d] is nil", ErrInvalidSegment, prefix, i)
		}
		if err := c.validate(fmt.Sprintf("%ssuccessors[%d].", prefix, i)); err != nil {
			return err
		}
	}
	return nil
}

package digitize

import (
	"fmt"
	"math"
)

// Range is the finite-value range of a sample buffer together with counts
// of the samples that were excluded from it.
type Range struct {
	Min float64
	Max float64

	Finite int // samples contributing to Min and Max
	NaN    int
	PosInf int
	NegInf int
}

// Degenerate reports whether the range collapses to a single value.
func (r Range) Degenerate() bool { return r.Min == r.Max }

// Contains reports whether d lies in [Min, Max]. It is false for NaN.
func (r Range) Contains(d float64) bool {
	return d >= r.Min && d <= r.Max
}

func (r Range) validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) || r.Min > r.Max {
		return fmt.Errorf("%w: data bounds [%g, %g]", ErrInvalidRange, r.Min, r.Max)
	}

	return nil
}

// Bounds returns the range of the finite samples in x, skipping NaN and
// infinities. It returns [ErrEmptyInput] if x has no finite sample.
func Bounds(x []float64) (Range, error) {
	var s BoundsScanner

	s.Update(x)

	return s.Result()
}

// BoundsScanner accumulates the finite range over successive blocks of
// samples. Its result is identical to [Bounds] over the concatenated blocks.
// The zero value is ready to use.
type BoundsScanner struct {
	r Range
}

// NewBoundsScanner creates an empty BoundsScanner.
func NewBoundsScanner() *BoundsScanner {
	return &BoundsScanner{}
}

// Update adds a block of samples.
func (s *BoundsScanner) Update(x []float64) {
	for _, v := range x {
		switch {
		case math.IsNaN(v):
			s.r.NaN++
		case math.IsInf(v, 1):
			s.r.PosInf++
		case math.IsInf(v, -1):
			s.r.NegInf++
		case s.r.Finite == 0:
			s.r.Min, s.r.Max = v, v
			s.r.Finite++
		default:
			if v < s.r.Min {
				s.r.Min = v
			}

			if v > s.r.Max {
				s.r.Max = v
			}

			s.r.Finite++
		}
	}
}

// Result returns the accumulated range, or the non-finite counts together
// with [ErrEmptyInput] if no finite sample has been seen.
func (s *BoundsScanner) Result() (Range, error) {
	if s.r.Finite == 0 {
		return s.r, ErrEmptyInput
	}

	return s.r, nil
}

// Reset clears all accumulated data.
func (s *BoundsScanner) Reset() {
	*s = BoundsScanner{}
}

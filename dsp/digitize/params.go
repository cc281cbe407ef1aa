package digitize

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Params holds the affine parameters derived for a data range, a code
// interval and a policy. A code k reconstructs to Alpha*k + Beta.
type Params struct {
	Alpha  float64
	Beta   float64
	Data   Range
	Codes  CodeRange
	Policy Policy
}

// Derive computes the affine parameters that map data onto codes with the
// smallest worst-case reconstruction error.
//
// Two degenerate inputs are valid and yield Alpha == 0: a single code level
// (Beta is the midpoint of data) and a single data value (Beta is that
// value). Otherwise Alpha = (dmax-dmin)/(kmax-kmin) and Beta follows policy.
// If Alpha overflows or underflows to zero the derivation fails with
// [ErrDegenerateRange].
func Derive(data Range, codes CodeRange, policy Policy) (Params, error) {
	if err := codes.validate(); err != nil {
		return Params{}, err
	}

	if !policy.Valid() {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidPolicy, policy)
	}

	if err := data.validate(); err != nil {
		return Params{}, err
	}

	p := Params{Data: data, Codes: codes, Policy: policy}

	switch {
	case codes.Single():
		p.Beta = midpoint(data.Min, data.Max)
		return p, nil
	case data.Degenerate():
		p.Beta = data.Min
		return p, nil
	}

	n := codes.Span()

	alpha := (data.Max - data.Min) / n
	if math.IsInf(alpha, 0) {
		// dmax-dmin overflowed; the quotient itself may still be finite.
		alpha = data.Max/n - data.Min/n
	}

	if alpha == 0 || math.IsInf(alpha, 0) {
		return Params{}, fmt.Errorf("%w: data [%g, %g] over codes %v gives alpha=%g",
			ErrDegenerateRange, data.Min, data.Max, codes, alpha)
	}

	kmin, kmax := float64(codes.Min), float64(codes.Max)

	gamma := (data.Min*kmax - data.Max*kmin) / (data.Max - data.Min)
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		gamma = data.Min/alpha - kmin
	}

	p.Alpha = alpha

	switch policy {
	case PreserveZero:
		p.Beta = alpha * Round(gamma)
	case PreserveBounds:
		p.Beta = alpha * gamma
	}

	return p, nil
}

func midpoint(a, b float64) float64 {
	m := (a + b) / 2
	if math.IsInf(m, 0) {
		return a/2 + b/2
	}

	return m
}

// Gamma returns Beta/Alpha, the offset in code units. It is NaN when
// Alpha is zero.
func (p Params) Gamma() float64 {
	if p.Alpha == 0 {
		return math.NaN()
	}

	return p.Beta / p.Alpha
}

// Value reconstructs the sample value of code k.
func (p Params) Value(k int) float64 {
	// The explicit conversion rounds the product and prevents fusing into
	// an FMA, so Value agrees with Reconstruct on every architecture.
	return float64(p.Alpha*float64(k)) + p.Beta
}

// Reconstruct writes Alpha*codes[i] + Beta to dst[i]. Sentinel codes are
// reconstructed like any other code; callers mask them as needed.
func (p Params) Reconstruct(dst []float64, codes []int) error {
	if len(dst) != len(codes) {
		return fmt.Errorf("%w: dst %d, codes %d", ErrLengthMismatch, len(dst), len(codes))
	}

	for i, k := range codes {
		dst[i] = float64(k)
	}

	vecmath.ScaleBlockInPlace(dst, p.Alpha)

	for i := range dst {
		dst[i] += p.Beta
	}

	return nil
}

// WorstCaseError returns the closed-form bound on |d - (Alpha*k + Beta)|
// over finite samples d in the data range.
func (p Params) WorstCaseError() float64 {
	switch {
	case p.Codes.Single():
		return (p.Data.Max - p.Data.Min) / 2
	case p.Alpha == 0:
		return 0
	default:
		return p.Alpha / 2
	}
}

package digitize

import (
	"fmt"
	"math"
)

// Digitizer maps samples to codes using fixed [Params] and sentinel codes.
// It holds no mutable state and is safe for concurrent use.
type Digitizer struct {
	params Params

	nanCode        int
	posInfCode     int
	negInfCode     int
	representative int

	// code interval as float64, compared against before the int conversion
	lo float64
	hi float64
}

// NewDigitizer creates a Digitizer for p. Without options it clips
// out-of-range samples to the interval ends.
func NewDigitizer(p Params, opts ...Option) (*Digitizer, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return newDigitizer(p, cfg)
}

func newDigitizer(p Params, cfg config) (*Digitizer, error) {
	codes := p.Codes
	if err := codes.validate(); err != nil {
		return nil, err
	}

	if codes.Min < cfg.storage.Min || codes.Max > cfg.storage.Max {
		return nil, fmt.Errorf("%w: codes %v exceed storage %v", ErrInvalidRange, codes, cfg.storage)
	}

	if p.Alpha < 0 || math.IsNaN(p.Alpha) || math.IsInf(p.Alpha, 0) {
		return nil, fmt.Errorf("%w: alpha must be >= 0 and finite: %g", ErrInvalidRange, p.Alpha)
	}

	dig := &Digitizer{
		params:         p,
		nanCode:        defaultNaNCode(codes, cfg.storage),
		posInfCode:     codes.Max,
		negInfCode:     codes.Min,
		representative: codes.Min,
		lo:             float64(codes.Min),
		hi:             float64(codes.Max),
	}

	if cfg.nanSet {
		dig.nanCode = cfg.nanCode
	}

	if cfg.posInfSet {
		dig.posInfCode = cfg.posInfCode
	}

	if cfg.negInfSet {
		dig.negInfCode = cfg.negInfCode
	}

	if cfg.repSet {
		if !codes.Contains(cfg.representative) {
			return nil, fmt.Errorf("%w: representative %d outside codes %v", ErrInvalidRange, cfg.representative, codes)
		}

		dig.representative = cfg.representative
	}

	return dig, nil
}

func defaultNaNCode(codes, storage CodeRange) int {
	switch {
	case codes.Min > storage.Min:
		return codes.Min - 1
	case codes.Max < storage.Max:
		return codes.Max + 1
	default:
		return codes.Min
	}
}

// Code digitizes a single sample.
func (d *Digitizer) Code(x float64) int {
	p := &d.params

	switch {
	case math.IsNaN(x):
		return d.nanCode
	case x > p.Data.Max:
		return d.posInfCode
	case x < p.Data.Min:
		return d.negInfCode
	case p.Alpha == 0:
		return d.representative
	case x == p.Data.Max:
		// With a PreserveZero offset dmax can sit exactly on the half step
		// below kmax, where rounding error in the quotient would lose it.
		return p.Codes.Max
	case x == p.Data.Min:
		return p.Codes.Min
	}

	k := Round((x - p.Beta) / p.Alpha)

	// Samples next to the bounds may still round one code outside. Compare
	// before converting: above 2^53 float64(kmax) may exceed kmax, and
	// float64(math.MaxInt) does not convert back to an int.
	switch {
	case k >= d.hi:
		return p.Codes.Max
	case k <= d.lo:
		return p.Codes.Min
	}

	return int(k)
}

// Process digitizes src into a newly allocated slice.
func (d *Digitizer) Process(src []float64) []int {
	dst := make([]int, len(src))
	for i, x := range src {
		dst[i] = d.Code(x)
	}

	return dst
}

// ProcessTo digitizes src into dst, which must have the same length.
func (d *Digitizer) ProcessTo(dst []int, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}

	for i, x := range src {
		dst[i] = d.Code(x)
	}

	return nil
}

// IsSentinel reports whether sample x is emitted as a sentinel code rather
// than a regular digitized value.
func (d *Digitizer) IsSentinel(x float64) bool {
	return !d.params.Data.Contains(x)
}

// Getters.

// Params returns the affine parameters.
func (d *Digitizer) Params() Params { return d.params }

// NaNCode returns the code emitted for NaN.
func (d *Digitizer) NaNCode() int { return d.nanCode }

// PosInfCode returns the code emitted for samples above dmax.
func (d *Digitizer) PosInfCode() int { return d.posInfCode }

// NegInfCode returns the code emitted for samples below dmin.
func (d *Digitizer) NegInfCode() int { return d.negInfCode }

// Representative returns the code emitted for in-range samples when Alpha is zero.
func (d *Digitizer) Representative() int { return d.representative }

package digitize

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Stats summarizes the reconstruction error of a digitized buffer.
type Stats struct {
	// MaxError is the largest |d - (Alpha*k + Beta)| over in-range samples.
	MaxError float64
	// InRange counts finite samples inside the data range.
	InRange int
	// Sentinel counts samples coded as NaN or out of range.
	Sentinel int
}

// Measure compares src with its codes under p. Samples outside the data
// range, and NaN, are counted as sentinels and excluded from MaxError.
func Measure(src []float64, codes []int, p Params) (Stats, error) {
	if len(src) != len(codes) {
		return Stats{}, fmt.Errorf("%w: src %d, codes %d", ErrLengthMismatch, len(src), len(codes))
	}

	samples := make([]float64, 0, len(src))
	kept := make([]int, 0, len(codes))

	for i, x := range src {
		if !p.Data.Contains(x) {
			continue
		}

		samples = append(samples, x)
		kept = append(kept, codes[i])
	}

	residual := make([]float64, len(kept))
	if err := p.Reconstruct(residual, kept); err != nil {
		return Stats{}, err
	}

	for i, x := range samples {
		residual[i] = x - residual[i]
	}

	return Stats{
		MaxError: vecmath.MaxAbs(residual),
		InRange:  len(samples),
		Sentinel: len(src) - len(samples),
	}, nil
}

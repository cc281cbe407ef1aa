package testutil

import (
	"math"
	"math/rand"
)

// Ramp returns n evenly spaced samples from lo to hi inclusive. The end
// points are exact.
func Ramp(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	if n == 1 {
		out[0] = lo
		return out
	}

	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}

	out[n-1] = hi

	return out
}

// DeterministicUniform returns n samples drawn uniformly from [lo, hi) with
// a fixed seed for reproducibility.
func DeterministicUniform(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}

	return out
}

// DC generates a constant-valued buffer.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// InjectNonFinite returns a copy of x where every stride-th sample, starting
// at index 0, is replaced by NaN, +Inf and -Inf in turn.
func InjectNonFinite(x []float64, stride int) []float64 {
	out := append([]float64(nil), x...)
	if stride <= 0 {
		return out
	}

	specials := [...]float64{math.NaN(), math.Inf(1), math.Inf(-1)}
	for i, j := 0, 0; i < len(out); i, j = i+stride, j+1 {
		out[i] = specials[j%len(specials)]
	}

	return out
}

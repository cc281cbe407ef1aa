package digitize

import "math"

// Round returns floor(u + 1/2), so ties resolve toward +Inf: Round(2.5) is 3
// and Round(-2.5) is -2. The sum is never formed in floating point, which
// would round 0.49999999999999994 up to 1; the result always satisfies
// u-1/2 < Round(u) <= u+1/2. NaN and infinities are returned unchanged.
func Round(u float64) float64 {
	f := math.Floor(u)
	// u-f is exact for every finite u.
	if u-f >= 0.5 {
		return f + 1
	}

	return f
}

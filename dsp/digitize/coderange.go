package digitize

import (
	"fmt"
	"math"
	"strconv"
)

// CodeRange is the closed integer interval [Min, Max] of regular codes.
type CodeRange struct {
	Min int
	Max int
}

// NewCodeRange returns the interval [kmin, kmax].
func NewCodeRange(kmin, kmax int) (CodeRange, error) {
	r := CodeRange{Min: kmin, Max: kmax}
	if err := r.validate(); err != nil {
		return CodeRange{}, err
	}

	return r, nil
}

// BitRange returns the full interval of a bits-wide integer type. Signed
// widths are two's complement. Widths that do not fit in an int are rejected.
func BitRange(bits int, signed bool) (CodeRange, error) {
	limit := strconv.IntSize - 1
	if signed {
		limit = strconv.IntSize
	}

	if bits < 1 || bits > limit {
		return CodeRange{}, fmt.Errorf("%w: %d-bit integers (signed=%t) need 1..%d bits", ErrInvalidRange, bits, signed, limit)
	}

	if signed {
		hi := math.MaxInt >> (strconv.IntSize - bits)
		return CodeRange{Min: -hi - 1, Max: hi}, nil
	}

	return CodeRange{Min: 0, Max: math.MaxInt >> (strconv.IntSize - 1 - bits)}, nil
}

// Single reports whether the interval holds exactly one code.
func (r CodeRange) Single() bool { return r.Min == r.Max }

// Span returns Max-Min as a float64. It does not overflow for wide intervals.
func (r CodeRange) Span() float64 {
	return float64(r.Max) - float64(r.Min)
}

// Contains reports whether k lies in [Min, Max].
func (r CodeRange) Contains(k int) bool {
	return k >= r.Min && k <= r.Max
}

func (r CodeRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

func (r CodeRange) validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: kmin %d > kmax %d", ErrInvalidRange, r.Min, r.Max)
	}

	return nil
}

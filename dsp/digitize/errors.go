package digitize

import "errors"

var (
	// ErrInvalidRange is returned for a code interval with kmin > kmax, an
	// unusable integer width, or data bounds that are not an ordered pair of
	// finite values.
	ErrInvalidRange = errors.New("digitize: invalid range")
	// ErrInvalidPolicy is returned for an unrecognized policy token.
	ErrInvalidPolicy = errors.New("digitize: invalid policy")
	// ErrEmptyInput is returned when a buffer has no finite samples.
	ErrEmptyInput = errors.New("digitize: no finite samples")
	// ErrDegenerateRange is returned when a non-degenerate data range cannot
	// be resolved over the code interval in double precision.
	ErrDegenerateRange = errors.New("digitize: degenerate range")
	// ErrLengthMismatch is returned when destination and source lengths differ.
	ErrLengthMismatch = errors.New("digitize: length mismatch")
)

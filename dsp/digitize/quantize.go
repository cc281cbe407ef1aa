package digitize

import (
	"errors"
	"fmt"
)

// Result is the output of [Quantize].
type Result struct {
	Params Params
	Codes  []int
}

// Quantize scans src for its finite range, derives the affine parameters for
// codes under policy, and digitizes every sample. Errors are checked in the
// order code interval, policy, options, input, derivation.
func Quantize(src []float64, codes CodeRange, policy Policy, opts ...Option) (Result, error) {
	if err := codes.validate(); err != nil {
		return Result{}, err
	}

	if !policy.Valid() {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidPolicy, policy)
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return Result{}, err
	}

	data, err := Bounds(src)
	if err != nil {
		if !errors.Is(err, ErrEmptyInput) || !cfg.allowNonFinite {
			return Result{}, err
		}

		// Zero-width range at 0: NaN and both infinities fall outside it.
		data.Min, data.Max = 0, 0
	}

	params, err := Derive(data, codes, policy)
	if err != nil {
		return Result{}, err
	}

	dig, err := newDigitizer(params, cfg)
	if err != nil {
		return Result{}, err
	}

	return Result{Params: params, Codes: dig.Process(src)}, nil
}

package digitize

import (
	"fmt"
	"math"
)

type config struct {
	nanCode    int
	posInfCode int
	negInfCode int
	nanSet     bool
	posInfSet  bool
	negInfSet  bool

	storage        CodeRange
	representative int
	repSet         bool

	allowNonFinite bool
}

func defaultConfig() config {
	return config{
		storage: CodeRange{Min: math.MinInt, Max: math.MaxInt},
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}

// Option configures a [Digitizer] or a [Quantize] call.
type Option func(*config) error

// WithNaNCode sets the code emitted for NaN samples. By default NaN is coded
// just below kmin, or just above kmax, if the storage range has room for it,
// and as kmin otherwise.
func WithNaNCode(k int) Option {
	return func(cfg *config) error {
		cfg.nanCode = k
		cfg.nanSet = true

		return nil
	}
}

// WithPosInfCode sets the code emitted for samples above dmax, including
// +Inf (default kmax, i.e. clipping).
func WithPosInfCode(k int) Option {
	return func(cfg *config) error {
		cfg.posInfCode = k
		cfg.posInfSet = true

		return nil
	}
}

// WithNegInfCode sets the code emitted for samples below dmin, including
// -Inf (default kmin, i.e. clipping).
func WithNegInfCode(k int) Option {
	return func(cfg *config) error {
		cfg.negInfCode = k
		cfg.negInfSet = true

		return nil
	}
}

// WithClipping restores the clipping defaults for out-of-range samples,
// overriding earlier [WithPosInfCode] and [WithNegInfCode] options.
func WithClipping() Option {
	return func(cfg *config) error {
		cfg.posInfSet = false
		cfg.negInfSet = false

		return nil
	}
}

// WithStorage declares the range of the integer type the codes are stored
// in. It must contain the code interval and decides whether the default NaN
// code fits outside of it.
func WithStorage(r CodeRange) Option {
	return func(cfg *config) error {
		if err := r.validate(); err != nil {
			return fmt.Errorf("storage: %w", err)
		}

		cfg.storage = r

		return nil
	}
}

// WithRepresentative sets the code emitted for in-range samples when the
// data range is degenerate (Alpha == 0). It must lie in the code interval;
// the default is kmin.
func WithRepresentative(k int) Option {
	return func(cfg *config) error {
		cfg.representative = k
		cfg.repSet = true

		return nil
	}
}

// WithAllowNonFinite lets [Quantize] accept a buffer without any finite
// sample. Every sample is then emitted as a sentinel code.
func WithAllowNonFinite() Option {
	return func(cfg *config) error {
		cfg.allowNonFinite = true
		return nil
	}
}

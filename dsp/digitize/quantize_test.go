package digitize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-digitize/internal/testutil"
)

func TestQuantizeScenarios(t *testing.T) {
	src := []float64{-2, -1, 0, 1, 2}

	tests := []struct {
		policy Policy
		gamma  float64
		want   []int
	}{
		{PreserveBounds, -127.5, []int{0, 64, 128, 191, 255}},
		{PreserveZero, -127, []int{0, 63, 127, 191, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			res, err := Quantize(src, uint8Codes, tt.policy)
			require.NoError(t, err)
			assert.Equal(t, 4.0/255, res.Params.Alpha)
			assert.Equal(t, res.Params.Alpha*tt.gamma, res.Params.Beta)
			assert.Equal(t, tt.want, res.Codes)
		})
	}
}

func TestQuantizeDegenerateData(t *testing.T) {
	res, err := Quantize([]float64{5, 5, 5}, CodeRange{Min: 0, Max: 10}, PreserveZero, WithRepresentative(5))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Params.Alpha)
	assert.Equal(t, 5.0, res.Params.Beta)
	assert.Equal(t, []int{5, 5, 5}, res.Codes)
}

func TestQuantizeSingleLevel(t *testing.T) {
	res, err := Quantize(testutil.Ramp(-4, 6, 11), CodeRange{Min: 2, Max: 2}, PreserveBounds)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Params.Alpha)
	assert.Equal(t, 1.0, res.Params.Beta)

	for _, k := range res.Codes {
		require.Equal(t, 2, k)
	}
}

func TestQuantizeNonFinite(t *testing.T) {
	src := []float64{math.NaN(), 1.0, math.Inf(1), -1.0}

	res, err := Quantize(src, CodeRange{Min: 0, Max: 10}, PreserveBounds)
	require.NoError(t, err)
	assert.Equal(t, -1.0, res.Params.Data.Min)
	assert.Equal(t, 1.0, res.Params.Data.Max)
	assert.Equal(t, []int{-1, 10, 10, 0}, res.Codes)

	res, err = Quantize(src, CodeRange{Min: 0, Max: 10}, PreserveBounds, WithNaNCode(99))
	require.NoError(t, err)
	assert.Equal(t, 99, res.Codes[0])
}

func TestQuantizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    []float64
		codes  CodeRange
		policy Policy
		opts   []Option
		want   error
	}{
		{"invalid range", []float64{1, 2}, CodeRange{Min: 3, Max: 1}, PreserveZero, nil, ErrInvalidRange},
		{"invalid policy", []float64{1, 2}, uint8Codes, Policy(5), nil, ErrInvalidPolicy},
		{"range before policy", []float64{1, 2}, CodeRange{Min: 3, Max: 1}, Policy(5), nil, ErrInvalidRange},
		{"policy before input", nil, uint8Codes, Policy(5), nil, ErrInvalidPolicy},
		{"empty", nil, uint8Codes, PreserveZero, nil, ErrEmptyInput},
		{"all non-finite", []float64{math.NaN(), math.Inf(1)}, uint8Codes, PreserveZero, nil, ErrEmptyInput},
		{"options before input", nil, uint8Codes, PreserveZero, []Option{WithStorage(CodeRange{Min: 1, Max: 0})}, ErrInvalidRange},
		{"bad storage", []float64{1, 2}, uint8Codes, PreserveZero, []Option{WithStorage(CodeRange{Min: 1, Max: 0})}, ErrInvalidRange},
		{"codes exceed storage", []float64{1, 2}, uint8Codes, PreserveZero, []Option{WithStorage(CodeRange{Min: 0, Max: 100})}, ErrInvalidRange},
		{"representative outside", []float64{1, 1}, uint8Codes, PreserveZero, []Option{WithRepresentative(256)}, ErrInvalidRange},
		{
			"degenerate",
			[]float64{0, math.SmallestNonzeroFloat64},
			CodeRange{Min: 0, Max: math.MaxUint32},
			PreserveBounds,
			nil,
			ErrDegenerateRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Quantize(tt.src, tt.codes, tt.policy, tt.opts...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestQuantizeAllowNonFinite(t *testing.T) {
	src := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}

	res, err := Quantize(src, uint8Codes, PreserveZero, WithAllowNonFinite(), WithNaNCode(-1))
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 255, 0}, res.Codes)
	assert.Equal(t, 0.0, res.Params.Alpha)
	assert.Equal(t, 1, res.Params.Data.NaN)

	res, err = Quantize(nil, uint8Codes, PreserveZero, WithAllowNonFinite())
	require.NoError(t, err)
	assert.Empty(t, res.Codes)
}

func TestQuantizePreservesOrderAndLength(t *testing.T) {
	src := testutil.InjectNonFinite(testutil.DeterministicUniform(21, -1, 1, 300), 17)

	res, err := Quantize(src, CodeRange{Min: -128, Max: 127}, PreserveZero, WithStorage(CodeRange{Min: -128, Max: 127}))
	require.NoError(t, err)
	require.Len(t, res.Codes, len(src))

	dig, err := NewDigitizer(res.Params, WithStorage(CodeRange{Min: -128, Max: 127}))
	require.NoError(t, err)

	for i, x := range src {
		require.Equalf(t, dig.Code(x), res.Codes[i], "sample %d", i)
	}

	testutil.RequireCodesInRange(t, res.Codes, -128, 127)
}

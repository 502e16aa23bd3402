package math

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddInt64(t *testing.T) {
	a0 := int64(stdmath.MaxInt64)
	a1 := int64(0)
	_, err := AddInt64(a0, a1)
	assert.NoError(t, err, "AddInt64 failed with arguments not causing an overflow")
	a1 = 1
	_, err = AddInt64(a0, a1)
	assert.ErrorIs(t, err, ErrOverflow, "AddInt64 did not fail with arguments causing an overflow")
	_, err = AddInt64(stdmath.MinInt64, -1)
	assert.ErrorIs(t, err, ErrOverflow)
	r, err := AddInt64(-5, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), r)
}

func TestSubInt64(t *testing.T) {
	for _, test := range []struct {
		a, b int64
		fail bool
		r    int64
	}{
		{10, 3, false, 7},
		{3, 10, false, -7},
		{-3, -10, false, 7},
		{0, stdmath.MaxInt64, false, -stdmath.MaxInt64},
		{stdmath.MinInt64, 1, true, 0},
		{stdmath.MaxInt64, -1, true, 0},
		{0, stdmath.MinInt64, true, 0},
	} {
		r, err := SubInt64(test.a, test.b)
		if test.fail {
			assert.ErrorIs(t, err, ErrOverflow)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.r, r)
	}
}

func TestMulInt64(t *testing.T) {
	for _, test := range []struct {
		a, b int64
		fail bool
		r    int64
	}{
		{6, 7, false, 42},
		{-6, 7, false, -42},
		{0, stdmath.MinInt64, false, 0},
		{stdmath.MinInt64, 1, false, stdmath.MinInt64},
		{stdmath.MinInt64, -1, true, 0},
		{-1, stdmath.MinInt64, true, 0},
		{stdmath.MaxInt64, 2, true, 0},
		{1 << 32, 1 << 32, true, 0},
	} {
		r, err := MulInt64(test.a, test.b)
		if test.fail {
			assert.ErrorIs(t, err, ErrOverflow)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.r, r)
	}
}

func TestDivModInt64(t *testing.T) {
	r, err := DivInt64(7, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), r)
	r, err = DivInt64(-7, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), r)
	_, err = DivInt64(7, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = DivInt64(stdmath.MinInt64, -1)
	assert.ErrorIs(t, err, ErrOverflow)

	r, err = ModInt64(7, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r)
	r, err = ModInt64(-7, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), r)
	r, err = ModInt64(stdmath.MinInt64, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), r)
	_, err = ModInt64(7, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPowInt64(t *testing.T) {
	for _, test := range []struct {
		base, exponent int64
		err            error
		r              int64
	}{
		{2, 10, nil, 1024},
		{2, 0, nil, 1},
		{0, 0, nil, 1},
		{0, 5, nil, 0},
		{-3, 3, nil, -27},
		{1, stdmath.MaxInt64, nil, 1},
		{-1, stdmath.MaxInt64, nil, -1},
		{-2, 63, nil, stdmath.MinInt64},
		{2, 62, nil, 1 << 62},
		{2, 63, ErrOverflow, 0},
		{10, 19, ErrOverflow, 0},
		{2, -1, ErrNegativeExponent, 0},
	} {
		r, err := PowInt64(test.base, test.exponent)
		if test.err != nil {
			assert.ErrorIs(t, err, test.err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.r, r)
	}
}

func TestPowFloat(t *testing.T) {
	for _, test := range []struct {
		base, exponent float64
		fail           bool
		r              float64
	}{
		{2, 10, false, 1024},
		{2.5, 2, false, 6.25},
		{2, 0.5, false, stdmath.Sqrt2},
		{2, -2, false, 0.25},
		{9, 0, false, 1},
		{-8, 1.0 / 3, true, 0},
		{0, -1, true, 0},
		{stdmath.NaN(), 2, true, 0},
		{stdmath.Inf(1), 2, true, 0},
		{10, 400, true, 0},
	} {
		r, err := PowFloat(test.base, test.exponent)
		if test.fail {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.InDelta(t, test.r, r, 1e-12)
	}
}

func TestFloatDivisionAndRemainder(t *testing.T) {
	r, err := DivFloat(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, r)
	_, err = DivFloat(3, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = DivFloat(stdmath.MaxFloat64, 0.5)
	assert.ErrorIs(t, err, ErrNotFinite)

	r, err = ModFloat(7.5, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, r)
	r, err = ModFloat(-7.5, 2)
	require.NoError(t, err)
	assert.Equal(t, -1.5, r)
	_, err = ModFloat(7.5, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

package math

import (
	stdmath "math"

	"github.com/ccoveille/go-safecast"
	"github.com/ericlagergren/decimal"
	"github.com/ericlagergren/decimal/math"
	"github.com/pkg/errors"
)

var (
	ErrOverflow         = errors.New("64-bit signed integer overflow")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNegativeExponent = errors.New("negative exponent of integer power")
	ErrNotFinite        = errors.New("result is NaN or Infinity")
)

var (
	zero = decimal.New(0, 0)
	one  = decimal.New(1, 0)
)

// Safe sum for int64.
func AddInt64(a, b int64) (int64, error) {
	c := a + b
	if (c > a) == (b > 0) {
		return c, nil
	}
	return 0, ErrOverflow
}

// Safe difference for int64.
func SubInt64(a, b int64) (int64, error) {
	c := a - b
	if (c < a) == (b > 0) {
		return c, nil
	}
	return 0, ErrOverflow
}

// Safe product for int64.
func MulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == stdmath.MinInt64) || (b == -1 && a == stdmath.MinInt64) {
		return 0, ErrOverflow
	}
	c := a * b
	if c/b != a {
		return 0, ErrOverflow
	}
	return c, nil
}

// DivInt64 is a truncated integer division.
func DivInt64(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == stdmath.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}
	return a / b, nil
}

// ModInt64 returns the truncated remainder, its sign follows the dividend.
func ModInt64(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if b == -1 {
		return 0, nil
	}
	return a % b, nil
}

// PowInt64 raises base to a non-negative exponent by squaring, failing on overflow.
func PowInt64(base, exponent int64) (int64, error) {
	e, err := safecast.ToUint64(exponent)
	if err != nil {
		return 0, ErrNegativeExponent
	}
	r := int64(1)
	b := base
	for e > 0 {
		if e&1 == 1 {
			r, err = MulInt64(r, b)
			if err != nil {
				return 0, err
			}
		}
		e >>= 1
		if e > 0 {
			b, err = MulInt64(b, b)
			if err != nil {
				return 0, err
			}
		}
	}
	return r, nil
}

func pow(base, exponent *decimal.Big) (*decimal.Big, error) {
	if base.IsInt() && exponent.Cmp(zero) == 0 {
		return one, nil
	}
	r := decimal.WithContext(decimal.Context128)
	r = math.Pow(r, base, exponent)
	if r.Context.Err() != nil {
		return nil, errors.New(r.Context.Conditions.Error())
	}
	if r.IsNaN(0) || r.IsInf(0) {
		return nil, ErrNotFinite
	}
	return r, nil
}

// PowFloat computes base^exponent with 128-bit decimal precision and rounds the result back to float64.
func PowFloat(base, exponent float64) (float64, error) {
	if _, err := CheckFinite(base); err != nil {
		return 0, err
	}
	if _, err := CheckFinite(exponent); err != nil {
		return 0, err
	}
	b := decimal.WithContext(decimal.Context128).SetFloat64(base)
	e := decimal.WithContext(decimal.Context128).SetFloat64(exponent)
	r, err := pow(b, e)
	if err != nil {
		return 0, errors.Wrapf(err, "pow(%v, %v)", base, exponent)
	}
	f, _ := r.Float64()
	return CheckFinite(f)
}

// ModFloat returns the truncated floating point remainder.
func ModFloat(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return CheckFinite(stdmath.Mod(a, b))
}

// DivFloat divides refusing zero divisors instead of producing an infinity.
func DivFloat(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return CheckFinite(a / b)
}

func CheckFinite(f float64) (float64, error) {
	if stdmath.IsNaN(f) || stdmath.IsInf(f, 0) {
		return 0, ErrNotFinite
	}
	return f, nil
}

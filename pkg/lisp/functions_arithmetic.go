package lisp

import (
	"github.com/pkg/errors"

	"github.com/wavesplatform/golisp/pkg/lisp/math"
)

type numberFunction func(a, b int64) (int64, error)

type decimalFunction func(a, b float64) (float64, error)

var numberFunctions = map[Operator]numberFunction{
	Plus:     math.AddInt64,
	Multiply: math.MulInt64,
	Subtract: math.SubInt64,
	Divide:   math.DivInt64,
	Power:    math.PowInt64,
	Modulus:  math.ModInt64,
}

var decimalFunctions = map[Operator]decimalFunction{
	Plus:     func(a, b float64) (float64, error) { return math.CheckFinite(a + b) },
	Multiply: func(a, b float64) (float64, error) { return math.CheckFinite(a * b) },
	Subtract: func(a, b float64) (float64, error) { return math.CheckFinite(a - b) },
	Divide:   math.DivFloat,
	Power:    math.PowFloat,
	Modulus:  math.ModFloat,
}

// arithmetic folds the arguments left to right, the running result is always the left operand.
func arithmetic(n *ArithmeticNode) (Value, error) {
	k, err := checkArithmetic(n)
	if err != nil {
		return nil, err
	}
	if k == KindNumber && n.Result == KindNumber {
		return foldNumbers(n)
	}
	return foldDecimals(n)
}

func foldNumbers(n *ArithmeticNode) (Value, error) {
	f, ok := numberFunctions[n.Op]
	if !ok {
		return nil, InvalidOperation.Errorf(n.Op, "no integer implementation")
	}
	acc := int64(n.Args[0].(Number))
	for i := 1; i < len(n.Args); i++ {
		r, err := f(acc, int64(n.Args[i].(Number)))
		if err != nil {
			return nil, arithmeticError(n.Op, err, i+1)
		}
		acc = r
	}
	return Number(acc), nil
}

func foldDecimals(n *ArithmeticNode) (Value, error) {
	f, ok := decimalFunctions[n.Op]
	if !ok {
		return nil, InvalidOperation.Errorf(n.Op, "no floating point implementation")
	}
	acc, err := math.CheckFinite(asFloat(n.Args[0]))
	if err != nil {
		return nil, arithmeticError(n.Op, err, 1)
	}
	for i := 1; i < len(n.Args); i++ {
		r, err := f(acc, asFloat(n.Args[i]))
		if err != nil {
			return nil, arithmeticError(n.Op, err, i+1)
		}
		acc = r
	}
	return Decimal(acc), nil
}

func asFloat(v Value) float64 {
	switch t := v.(type) {
	case Number:
		return float64(t)
	case Decimal:
		return float64(t)
	default:
		panic("not a numeric value")
	}
}

func arithmeticError(op Operator, err error, position int) error {
	if errors.Is(err, math.ErrDivisionByZero) {
		return DivisionByZero.Wrapf(op, err, "argument %d", position)
	}
	return InvalidOperation.Wrapf(op, err, "argument %d", position)
}

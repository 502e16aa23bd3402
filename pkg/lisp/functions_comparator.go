package lisp

import "cmp"

// compare holds only if every adjacent pair of arguments satisfies the relation.
func compare(n *ComparatorNode) (Value, error) {
	if _, err := checkComparator(n); err != nil {
		return nil, err
	}
	for i := 1; i < len(n.Args); i++ {
		if !pairHolds(n.Op, n.Args[i-1], n.Args[i]) {
			return booleanResult(n.Result, false), nil
		}
	}
	return booleanResult(n.Result, true), nil
}

func pairHolds(op Operator, a, b Value) bool {
	switch x := a.(type) {
	case Number:
		return holds(op, x, b.(Number))
	case Decimal:
		return holds(op, x, b.(Decimal))
	case Text:
		return holds(op, x, b.(Text))
	default:
		return false
	}
}

// NaN operands satisfy no relation.
func holds[T cmp.Ordered](op Operator, a, b T) bool {
	switch op {
	case Equals:
		return a == b
	case GreaterThan:
		return a > b
	case LessThan:
		return a < b
	case GreaterThanEquals:
		return a >= b
	case LessThanEquals:
		return a <= b
	default:
		return false
	}
}

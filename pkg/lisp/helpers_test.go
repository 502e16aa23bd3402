package lisp

func nums(vs ...int64) []Value {
	r := make([]Value, len(vs))
	for i, v := range vs {
		r[i] = Number(v)
	}
	return r
}

func decs(vs ...float64) []Value {
	r := make([]Value, len(vs))
	for i, v := range vs {
		r[i] = Decimal(v)
	}
	return r
}

func texts(vs ...string) []Value {
	r := make([]Value, len(vs))
	for i, v := range vs {
		r[i] = Text(v)
	}
	return r
}

func bools(vs ...bool) []Value {
	r := make([]Value, len(vs))
	for i, v := range vs {
		r[i] = Boolean(v)
	}
	return r
}

func kindsOf(args []Value) []Kind {
	r := make([]Kind, len(args))
	for i, a := range args {
		r[i] = a.Kind()
	}
	return r
}

func arith(op Operator, result Kind, args []Value) *ArithmeticNode {
	return NewArithmeticNode(op, result, kindsOf(args), args)
}

func cmpr(op Operator, args []Value) *ComparatorNode {
	return NewComparatorNode(op, KindBoolean, kindsOf(args), args)
}

func logic(op Operator, args []Value) *LogicalNode {
	return NewLogicalNode(op, KindBoolean, nil, args)
}

func ifLiteral(result Kind, condition bool, then, els Node) *IfNode {
	return NewIfNode(result, []Kind{result, result}, NewBooleanBranch(condition, then, els))
}

func ifExpression(result Kind, condition, then, els Node) *IfNode {
	return NewIfNode(result, []Kind{result, result}, NewExpressionBranch(condition, then, els))
}

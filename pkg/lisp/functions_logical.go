package lisp

func logical(n *LogicalNode) (Value, error) {
	if err := checkLogical(n); err != nil {
		return nil, err
	}
	switch n.Op {
	case Not:
		return booleanResult(n.Result, !bool(n.Args[0].(Boolean))), nil
	case And:
		for _, a := range n.Args {
			if !a.(Boolean) {
				return booleanResult(n.Result, false), nil
			}
		}
		return booleanResult(n.Result, true), nil
	case Or:
		for _, a := range n.Args {
			if a.(Boolean) {
				return booleanResult(n.Result, true), nil
			}
		}
		return booleanResult(n.Result, false), nil
	default:
		return nil, InvalidOperation.Errorf(n.Op, "not a logical operator")
	}
}

package lisp

// Node is one operator invocation. Trees are immutable and never share nodes.
type Node interface {
	node()
	Operator() Operator
	ResultKind() Kind
}

type ArithmeticNode struct {
	Op     Operator
	Result Kind
	Types  []Kind
	Args   []Value
}

func (*ArithmeticNode) node() {}

func (n *ArithmeticNode) Operator() Operator {
	return n.Op
}

func (n *ArithmeticNode) ResultKind() Kind {
	return n.Result
}

func NewArithmeticNode(op Operator, result Kind, types []Kind, args []Value) *ArithmeticNode {
	return &ArithmeticNode{
		Op:     op,
		Result: result,
		Types:  types,
		Args:   args,
	}
}

type ComparatorNode struct {
	Op     Operator
	Result Kind
	Types  []Kind
	Args   []Value
}

func (*ComparatorNode) node() {}

func (n *ComparatorNode) Operator() Operator {
	return n.Op
}

func (n *ComparatorNode) ResultKind() Kind {
	return n.Result
}

func NewComparatorNode(op Operator, result Kind, types []Kind, args []Value) *ComparatorNode {
	return &ComparatorNode{
		Op:     op,
		Result: result,
		Types:  types,
		Args:   args,
	}
}

// LogicalNode holds Boolean operands. Types may be omitted, otherwise it declares one Boolean per operand.
type LogicalNode struct {
	Op     Operator
	Result Kind
	Types  []Kind
	Args   []Value
}

func (*LogicalNode) node() {}

func (n *LogicalNode) Operator() Operator {
	return n.Op
}

func (n *LogicalNode) ResultKind() Kind {
	return n.Result
}

func NewLogicalNode(op Operator, result Kind, types []Kind, args []Value) *LogicalNode {
	return &LogicalNode{
		Op:     op,
		Result: result,
		Types:  types,
		Args:   args,
	}
}

// IfNode evaluates exactly one of its branches. Types declares the kinds of the then and else branches.
type IfNode struct {
	Result Kind
	Types  []Kind
	Branch ControlFlowArg
}

func (*IfNode) node() {}

func (*IfNode) Operator() Operator {
	return If
}

func (n *IfNode) ResultKind() Kind {
	return n.Result
}

func NewIfNode(result Kind, types []Kind, branch ControlFlowArg) *IfNode {
	return &IfNode{
		Result: result,
		Types:  types,
		Branch: branch,
	}
}

// ControlFlowArg is the payload of IfNode, either BooleanBranch or ExpressionBranch.
type ControlFlowArg interface {
	controlFlowArg()
	branches() (then, els Node)
}

type BooleanBranch struct {
	Condition bool
	Then      Node
	Else      Node
}

func (*BooleanBranch) controlFlowArg() {}

func (b *BooleanBranch) branches() (Node, Node) {
	return b.Then, b.Else
}

func NewBooleanBranch(condition bool, then, els Node) *BooleanBranch {
	return &BooleanBranch{
		Condition: condition,
		Then:      then,
		Else:      els,
	}
}

// ExpressionBranch takes its condition from evaluating the Condition sub-expression.
type ExpressionBranch struct {
	Condition Node
	Then      Node
	Else      Node
}

func (*ExpressionBranch) controlFlowArg() {}

func (b *ExpressionBranch) branches() (Node, Node) {
	return b.Then, b.Else
}

func NewExpressionBranch(condition, then, els Node) *ExpressionBranch {
	return &ExpressionBranch{
		Condition: condition,
		Then:      then,
		Else:      els,
	}
}

func isNil(n Node) bool {
	switch t := n.(type) {
	case nil:
		return true
	case *ArithmeticNode:
		return t == nil
	case *ComparatorNode:
		return t == nil
	case *LogicalNode:
		return t == nil
	case *IfNode:
		return t == nil
	default:
		return false
	}
}

func isNilBranch(b ControlFlowArg) bool {
	switch t := b.(type) {
	case nil:
		return true
	case *BooleanBranch:
		return t == nil
	case *ExpressionBranch:
		return t == nil
	default:
		return false
	}
}

func operatorOf(n Node) Operator {
	if isNil(n) {
		return 0
	}
	return n.Operator()
}

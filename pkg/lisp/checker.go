package lisp

// Check validates the declared kinds and argument shapes of the tree rooted at n without evaluating it.
//
// Conditional branches are validated lazily: with a literal condition only the chosen branch is checked
// in full, with a condition sub-expression both branches are checked for shape only and the evaluator
// validates the branch it takes. Unchosen branches may be ill-typed.
func Check(n Node) error {
	switch t := n.(type) {
	case *ArithmeticNode:
		if t == nil {
			return ArityMismatch.New(0, "empty arithmetic expression")
		}
		_, err := checkArithmetic(t)
		return err
	case *ComparatorNode:
		if t == nil {
			return ArityMismatch.New(0, "empty comparator expression")
		}
		_, err := checkComparator(t)
		return err
	case *LogicalNode:
		if t == nil {
			return ArityMismatch.New(0, "empty logical expression")
		}
		return checkLogical(t)
	case *IfNode:
		if t == nil {
			return ArityMismatch.New(If, "empty conditional expression")
		}
		return checkIf(t)
	case nil:
		return ArityMismatch.New(0, "empty expression")
	default:
		return InvalidOperation.Errorf(0, "unsupported type of node '%T'", n)
	}
}

func homogeneousKind(op Operator, types []Kind) (Kind, error) {
	k := types[0]
	for i := 1; i < len(types); i++ {
		if types[i] != k {
			return 0, KindMismatch.Errorf(op, "declared kind %d is '%s' but declared kind 1 is '%s'", i+1, types[i], k)
		}
	}
	return k, nil
}

func checkArguments(op Operator, k Kind, args []Value) error {
	for i, a := range args {
		if a == nil {
			return ArityMismatch.Errorf(op, "argument %d is empty", i+1)
		}
		if a.Kind() != k {
			return KindMismatch.Errorf(op, "argument %d is of kind '%s' but '%s' declared", i+1, a.Kind(), k)
		}
	}
	return nil
}

// arithmeticResultAllowed permits the argument kind itself or Decimal over Number arguments.
func arithmeticResultAllowed(argument, result Kind) bool {
	return result == argument || (argument == KindNumber && result == KindDecimal)
}

func checkArithmetic(n *ArithmeticNode) (Kind, error) {
	if n.Op.Family() != FamilyArithmetic {
		return 0, InvalidOperation.Errorf(n.Op, "not an arithmetic operator")
	}
	if len(n.Types) == 0 {
		return 0, EmptyArgumentList.New(n.Op, "no declared argument kinds")
	}
	k, err := homogeneousKind(n.Op, n.Types)
	if err != nil {
		return 0, err
	}
	if !k.IsNumeric() {
		return 0, KindMismatch.Errorf(n.Op, "argument kind '%s' is not numeric", k)
	}
	if !arithmeticResultAllowed(k, n.Result) {
		return 0, KindMismatch.Errorf(n.Op, "result kind '%s' is incompatible with argument kind '%s'", n.Result, k)
	}
	if len(n.Args) == 0 {
		return 0, EmptyArgumentList.New(n.Op, "no arguments")
	}
	if len(n.Args) != len(n.Types) {
		return 0, ArityMismatch.Errorf(n.Op, "%d declared kinds for %d arguments", len(n.Types), len(n.Args))
	}
	for i, a := range n.Args {
		if a == nil {
			return 0, ArityMismatch.Errorf(n.Op, "argument %d is empty", i+1)
		}
		if a.Kind() != n.Types[i] {
			return 0, KindMismatch.Errorf(n.Op, "argument %d is of kind '%s' but '%s' declared", i+1, a.Kind(), n.Types[i])
		}
	}
	return k, nil
}

func checkComparator(n *ComparatorNode) (Kind, error) {
	if n.Op.Family() != FamilyComparator {
		return 0, InvalidOperation.Errorf(n.Op, "not a comparison operator")
	}
	if n.Result != KindBoolean && n.Result != KindText {
		return 0, KindMismatch.Errorf(n.Op, "result kind '%s' is neither Boolean nor Text", n.Result)
	}
	if len(n.Types) == 0 {
		return 0, EmptyArgumentList.New(n.Op, "no declared argument kinds")
	}
	k, err := homogeneousKind(n.Op, n.Types)
	if err != nil {
		return 0, err
	}
	if !k.IsNumeric() && k != KindText {
		return 0, KindMismatch.Errorf(n.Op, "values of kind '%s' are not comparable", k)
	}
	switch len(n.Args) {
	case 0:
		return 0, EmptyArgumentList.New(n.Op, "no arguments")
	case 1:
		return 0, ArityMismatch.New(n.Op, "at least 2 arguments expected, got 1")
	}
	if err := checkArguments(n.Op, k, n.Args); err != nil {
		return 0, err
	}
	return k, nil
}

func checkLogical(n *LogicalNode) error {
	if n.Op.Family() != FamilyLogical {
		return InvalidOperation.Errorf(n.Op, "not a logical operator")
	}
	if n.Result != KindBoolean && n.Result != KindText {
		return KindMismatch.Errorf(n.Op, "result kind '%s' is neither Boolean nor Text", n.Result)
	}
	if n.Op == Not {
		if len(n.Args) != 1 {
			return ArityMismatch.Errorf(n.Op, "%d is invalid number of arguments, expected 1", len(n.Args))
		}
	} else {
		switch len(n.Args) {
		case 0:
			return EmptyArgumentList.New(n.Op, "no arguments")
		case 1:
			return ArityMismatch.New(n.Op, "at least 2 arguments expected, got 1")
		}
	}
	if len(n.Types) != 0 {
		if len(n.Types) != len(n.Args) {
			return ArityMismatch.Errorf(n.Op, "%d declared kinds for %d arguments", len(n.Types), len(n.Args))
		}
		for i, k := range n.Types {
			if k != KindBoolean {
				return KindMismatch.Errorf(n.Op, "declared kind %d is '%s', expected 'Boolean'", i+1, k)
			}
		}
	}
	return checkArguments(n.Op, KindBoolean, n.Args)
}

// checkIfShape validates the conditional itself and the declared kinds of its branches, never their contents.
func checkIfShape(n *IfNode) error {
	if !n.Result.Valid() {
		return KindMismatch.Errorf(If, "unsupported result kind '%s'", n.Result)
	}
	switch len(n.Types) {
	case 0:
		return EmptyArgumentList.New(If, "no declared branch kinds")
	case 2:
	default:
		return ArityMismatch.Errorf(If, "%d declared branch kinds, expected 2", len(n.Types))
	}
	for i, k := range n.Types {
		if k != n.Result {
			return KindMismatch.Errorf(If, "declared kind of %s branch is '%s' but result kind is '%s'", branchName(i == 0), k, n.Result)
		}
	}
	if isNilBranch(n.Branch) {
		return ArityMismatch.New(If, "no condition and branches")
	}
	if eb, ok := n.Branch.(*ExpressionBranch); ok {
		if isNil(eb.Condition) {
			return ArityMismatch.New(If, "no condition expression")
		}
		if k := eb.Condition.ResultKind(); k != KindBoolean {
			return KindMismatch.Errorf(If, "condition is of kind '%s', expected 'Boolean'", k)
		}
	}
	then, els := n.Branch.branches()
	if isNil(then) {
		return ArityMismatch.New(If, "no then branch")
	}
	if isNil(els) {
		return ArityMismatch.New(If, "no else branch")
	}
	if k := then.ResultKind(); k != n.Types[0] {
		return KindMismatch.Errorf(If, "then branch is of kind '%s' but '%s' declared", k, n.Types[0])
	}
	if k := els.ResultKind(); k != n.Types[1] {
		return KindMismatch.Errorf(If, "else branch is of kind '%s' but '%s' declared", k, n.Types[1])
	}
	return nil
}

func checkIf(n *IfNode) error {
	if err := checkIfShape(n); err != nil {
		return err
	}
	switch b := n.Branch.(type) {
	case *BooleanBranch:
		chosen := b.Else
		if b.Condition {
			chosen = b.Then
		}
		if err := Check(chosen); err != nil {
			return pushFrame(err, "If.%s", branchName(b.Condition))
		}
	case *ExpressionBranch:
		if err := Check(b.Condition); err != nil {
			return pushFrame(err, "If.condition")
		}
	default:
		return InvalidOperation.Errorf(If, "unsupported type of branch '%T'", n.Branch)
	}
	return nil
}

func branchName(condition bool) string {
	if condition {
		return "then"
	}
	return "else"
}

package lisp

import (
	"github.com/pkg/errors"
	"github.com/stoewer/go-strcase"
)

// Family groups operators that share a node shape.
type Family byte

const (
	FamilyArithmetic Family = iota + 1
	FamilyComparator
	FamilyLogical
	FamilyControlFlow
)

func (f Family) String() string {
	switch f {
	case FamilyArithmetic:
		return "Arithmetic"
	case FamilyComparator:
		return "Comparator"
	case FamilyLogical:
		return "Logical"
	case FamilyControlFlow:
		return "ControlFlow"
	default:
		return "Unknown"
	}
}

type Operator byte

const (
	Plus Operator = iota + 1
	Multiply
	Subtract
	Divide
	Power
	Modulus
	Equals
	GreaterThan
	LessThan
	GreaterThanEquals
	LessThanEquals
	And
	Or
	Not
	If
)

var operatorNames = [...]string{
	Plus:              "Plus",
	Multiply:          "Multiply",
	Subtract:          "Subtract",
	Divide:            "Divide",
	Power:             "Power",
	Modulus:           "Modulus",
	Equals:            "Equals",
	GreaterThan:       "GreaterThan",
	LessThan:          "LessThan",
	GreaterThanEquals: "GreaterThanEquals",
	LessThanEquals:    "LessThanEquals",
	And:               "And",
	Or:                "Or",
	Not:               "Not",
	If:                "If",
}

// Operators lists the whole vocabulary in declaration order.
var Operators = []Operator{
	Plus, Multiply, Subtract, Divide, Power, Modulus,
	Equals, GreaterThan, LessThan, GreaterThanEquals, LessThanEquals,
	And, Or, Not,
	If,
}

var operatorsBySnakeName = func() map[string]Operator {
	m := make(map[string]Operator, len(Operators))
	for _, op := range Operators {
		m[strcase.SnakeCase(op.String())] = op
	}
	return m
}()

func NewOperator(b byte) (Operator, error) {
	op := Operator(b)
	if op.Family() == 0 {
		return 0, errors.Errorf("unsupported operator '%d'", b)
	}
	return op, nil
}

// ParseOperator maps an operator name in snake, kebab or camel case to the operator.
func ParseOperator(name string) (Operator, error) {
	if op, ok := operatorsBySnakeName[strcase.SnakeCase(name)]; ok {
		return op, nil
	}
	return 0, errors.Errorf("unknown operator '%s'", name)
}

func (o Operator) Family() Family {
	switch o {
	case Plus, Multiply, Subtract, Divide, Power, Modulus:
		return FamilyArithmetic
	case Equals, GreaterThan, LessThan, GreaterThanEquals, LessThanEquals:
		return FamilyComparator
	case And, Or, Not:
		return FamilyLogical
	case If:
		return FamilyControlFlow
	default:
		return 0
	}
}

func (o Operator) String() string {
	if o.Family() == 0 {
		return "Undefined"
	}
	return operatorNames[o]
}

package lisp

import (
	"github.com/pkg/errors"
	"github.com/stoewer/go-strcase"
)

// Kind is a type tag of a value or of a declared argument or result.
type Kind byte

const (
	KindNumber Kind = iota + 1
	KindDecimal
	KindBoolean
	KindText
)

var kindNames = map[string]Kind{
	"number":  KindNumber,
	"decimal": KindDecimal,
	"boolean": KindBoolean,
	"text":    KindText,
}

func NewKind(b byte) (Kind, error) {
	k := Kind(b)
	switch k {
	case KindNumber, KindDecimal, KindBoolean, KindText:
		return k, nil
	default:
		return 0, errors.Errorf("unsupported kind '%d'", b)
	}
}

// ParseKind accepts kind names in any case style, e.g. "Decimal" or "decimal".
func ParseKind(name string) (Kind, error) {
	if k, ok := kindNames[strcase.SnakeCase(name)]; ok {
		return k, nil
	}
	return 0, errors.Errorf("unknown kind '%s'", name)
}

func (k Kind) Valid() bool {
	return k >= KindNumber && k <= KindText
}

func (k Kind) IsNumeric() bool {
	return k == KindNumber || k == KindDecimal
}

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindDecimal:
		return "Decimal"
	case KindBoolean:
		return "Boolean"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

package lisp

import (
	"fmt"
	"strconv"
)

// Value is a tagged runtime value. Exactly one of Number, Decimal, Boolean or Text.
type Value interface {
	Kind() Kind
	Equal(other Value) bool
	fmt.Stringer
	value()
}

type Number int64

func (Number) Kind() Kind {
	return KindNumber
}

func (n Number) Equal(other Value) bool {
	if o, ok := other.(Number); ok {
		return n == o
	}
	return false
}

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (Number) value() {}

type Decimal float64

func (Decimal) Kind() Kind {
	return KindDecimal
}

func (d Decimal) Equal(other Value) bool {
	if o, ok := other.(Decimal); ok {
		return d == o
	}
	return false
}

func (d Decimal) String() string {
	return strconv.FormatFloat(float64(d), 'g', -1, 64)
}

func (Decimal) value() {}

type Boolean bool

func (Boolean) Kind() Kind {
	return KindBoolean
}

func (b Boolean) Equal(other Value) bool {
	if o, ok := other.(Boolean); ok {
		return b == o
	}
	return false
}

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

func (Boolean) value() {}

type Text string

func (Text) Kind() Kind {
	return KindText
}

func (t Text) Equal(other Value) bool {
	if o, ok := other.(Text); ok {
		return t == o
	}
	return false
}

func (t Text) String() string {
	return string(t)
}

func (Text) value() {}

// booleanResult renders b as the declared result kind, Text results are stringified.
func booleanResult(kind Kind, b bool) Value {
	if kind == KindText {
		return Text(strconv.FormatBool(b))
	}
	return Boolean(b)
}

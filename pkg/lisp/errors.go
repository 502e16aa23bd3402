package lisp

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/stoewer/go-strcase"
)

const (
	Undefined = ErrorType(iota)
	ArityMismatch
	KindMismatch
	EmptyArgumentList
	DivisionByZero
	InvalidOperation
)

// ErrorType names the invariant a failed check or evaluation violated.
type ErrorType uint

func (e ErrorType) String() string {
	switch e {
	case ArityMismatch:
		return "ArityMismatch"
	case KindMismatch:
		return "KindMismatch"
	case EmptyArgumentList:
		return "EmptyArgumentList"
	case DivisionByZero:
		return "DivisionByZero"
	case InvalidOperation:
		return "InvalidOperation"
	default:
		return "Undefined"
	}
}

func (e ErrorType) label() string {
	return strcase.SnakeCase(e.String())
}

type evaluationError struct {
	errorType     ErrorType
	operator      Operator
	originalError error
	path          []string
}

func (e evaluationError) Error() string {
	return e.originalError.Error()
}

func (e evaluationError) Unwrap() error {
	return e.originalError
}

func (e ErrorType) New(op Operator, msg string) error {
	return evaluationError{
		errorType:     e,
		operator:      op,
		originalError: errors.Errorf("%s: %s", op, msg),
		path:          []string{op.String()},
	}
}

func (e ErrorType) Errorf(op Operator, msg string, args ...interface{}) error {
	return e.New(op, fmt.Sprintf(msg, args...))
}

func (e ErrorType) Wrap(op Operator, err error, msg string) error {
	return e.Wrapf(op, err, "%s", msg)
}

func (e ErrorType) Wrapf(op Operator, err error, msg string, args ...interface{}) error {
	return evaluationError{
		errorType:     e,
		operator:      op,
		originalError: errors.Wrapf(err, "%s: %s", op, fmt.Sprintf(msg, args...)),
		path:          []string{op.String()},
	}
}

func asEvaluationError(err error) (evaluationError, bool) {
	var ee evaluationError
	if errors.As(err, &ee) {
		return ee, true
	}
	return evaluationError{}, false
}

// GetErrorType returns the class of err or Undefined for errors produced outside the package.
func GetErrorType(err error) ErrorType {
	if ee, ok := asEvaluationError(err); ok {
		return ee.errorType
	}
	return Undefined
}

// ErrorOperator returns the operator of the node that failed.
func ErrorOperator(err error) (Operator, bool) {
	if ee, ok := asEvaluationError(err); ok {
		return ee.operator, true
	}
	return 0, false
}

// ErrorPath returns the frames from the root of the tree down to the failed node, e.g. ["If.then", "Divide"].
func ErrorPath(err error) []string {
	if ee, ok := asEvaluationError(err); ok {
		return ee.path
	}
	return nil
}

func pushFrame(err error, format string, args ...interface{}) error {
	if ee, ok := err.(evaluationError); ok {
		path := make([]string, 0, len(ee.path)+1)
		path = append(path, fmt.Sprintf(format, args...))
		ee.path = append(path, ee.path...)
		return ee
	}
	return errors.Wrapf(err, format, args...)
}

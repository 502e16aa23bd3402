package logging

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	CheckerNamespace   = "checker"
	EvaluatorNamespace = "evaluator"
)

// NewLogger creates a logger writing to stdout with the specified parameters.
func NewLogger(params Parameters) *zap.Logger {
	return newLogger(params, zapcore.Lock(os.Stdout))
}

func newLogger(params Parameters, w zapcore.WriteSyncer) *zap.Logger {
	al := zap.NewAtomicLevelAt(params.Level)
	var enc zapcore.Encoder
	switch params.Type {
	case LoggerJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(enc, w, al))
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

type errorMarshaler struct {
	err   error
	trace bool
}

func (e errorMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	const (
		msgKey   = "message"
		traceKey = "trace"
	)
	enc.AddString(msgKey, e.err.Error())
	if !e.trace {
		return nil
	}
	var st stackTracer
	if errors.As(e.err, &st) {
		enc.AddString(traceKey, fmt.Sprintf("%+v", st.StackTrace()))
	}
	return nil
}

const errorKey = "error"

// Error returns a field holding the error message.
func Error(err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.Object(errorKey, errorMarshaler{err: err})
}

// ErrorTrace is like Error but adds the stack trace recorded by github.com/pkg/errors if there is one.
func ErrorTrace(err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.Object(errorKey, errorMarshaler{err: err, trace: true})
}

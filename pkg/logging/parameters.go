package logging

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

type Parameters struct {
	Level zapcore.Level
	Type  LoggerType
}

// ParseParameters parses textual level and type, e.g. "debug" and "json". Empty values select info and console.
func ParseParameters(level, loggerType string) (Parameters, error) {
	var p Parameters
	if level != "" {
		if err := p.Level.UnmarshalText([]byte(level)); err != nil {
			return Parameters{}, errors.Wrap(err, "failed to parse logger parameters")
		}
	}
	if err := p.Type.UnmarshalText([]byte(loggerType)); err != nil {
		return Parameters{}, errors.Wrap(err, "failed to parse logger parameters")
	}
	return p, nil
}

func (p Parameters) String() string {
	return fmt.Sprintf("{Level: %s, Type: %s}", p.Level, p.Type)
}

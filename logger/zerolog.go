package logger

import (
	"github.com/rs/zerolog"
)

type zerologAdapter struct {
	log zerolog.Logger
}

var _ Logger = &zerologAdapter{}

// NewZerolog wraps a zerolog.Logger so it can be used anywhere
// the client expects a Logger. Level filtering stays with zerolog:
// whatever level the provided logger is configured with applies here too.
func NewZerolog(log zerolog.Logger) Logger {
	return &zerologAdapter{log: log}
}

func (z *zerologAdapter) Debugf(format string, args ...any) {
	z.log.Debug().Msgf(format, args...)
}

func (z *zerologAdapter) Infof(format string, args ...any) {
	z.log.Info().Msgf(format, args...)
}

func (z *zerologAdapter) Warnf(format string, args ...any) {
	z.log.Warn().Msgf(format, args...)
}

func (z *zerologAdapter) Errorf(format string, args ...any) {
	z.log.Error().Msgf(format, args...)
}

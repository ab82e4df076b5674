package renderer

import (
	"go.uber.org/zap"

	"github.com/kjhorne/pathtracer/pkg/core"
)

// ZapLogger adapts a zap.SugaredLogger to the core.Logger seam the
// integrator and renderer are injected with.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a production zap logger wrapped as a core.Logger.
func NewZapLogger() (*ZapLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: logger.Sugar()}, nil
}

// Printf logs at info level.
func (z *ZapLogger) Printf(format string, args ...interface{}) {
	z.sugar.Infof(format, args...)
}

// Warnf logs at warn level.
func (z *ZapLogger) Warnf(format string, args ...interface{}) {
	z.sugar.Warnf(format, args...)
}

// Sync flushes any buffered log entries. Call before process exit.
func (z *ZapLogger) Sync() error {
	return z.sugar.Sync()
}

var _ core.Logger = (*ZapLogger)(nil)

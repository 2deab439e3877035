// Package log builds the loggers used while exporting a schema.
package log

import (
	"context"
	"runtime"

	"github.com/jensneuse/abstractlogger"
	"go.uber.org/zap"
)

// New returns a zap development logger behind the abstractlogger facade.
func New(level abstractlogger.Level) (abstractlogger.Logger, error) {
	logger, err := zap.NewDevelopmentConfig().Build()
	if err != nil {
		return nil, err
	}
	return abstractlogger.NewZapLogger(logger, level), nil
}

// PanicLogger reports panics recovered during query execution. It satisfies
// the log.Logger interface of github.com/graph-gophers/graphql-go.
type PanicLogger struct {
	Logger abstractlogger.Logger
}

// LogPanic logs the recovered value together with the panicking goroutine's stack.
func (l *PanicLogger) LogPanic(ctx context.Context, value interface{}) {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]

	logger := l.Logger
	if logger == nil {
		logger = abstractlogger.NoopLogger
	}
	logger.Error("graphql: panic occurred",
		abstractlogger.Any("panic", value),
		abstractlogger.String("stack", string(buf)),
	)
}

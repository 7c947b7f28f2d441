package stripe

import (
	"context"
	"fmt"
	"log/slog"
)

// slogLeveledLogger adapts slog to the SDK's LeveledLoggerInterface.
// SDK debug and info lines are both logged at debug.
type slogLeveledLogger struct {
	logger *slog.Logger
}

func (l *slogLeveledLogger) Debugf(format string, v ...any) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *slogLeveledLogger) Infof(format string, v ...any) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *slogLeveledLogger) Warnf(format string, v ...any) {
	l.log(slog.LevelWarn, format, v...)
}

func (l *slogLeveledLogger) Errorf(format string, v ...any) {
	l.log(slog.LevelError, format, v...)
}

func (l *slogLeveledLogger) log(level slog.Level, format string, v ...any) {
	if l.logger == nil {
		return
	}

	l.logger.Log(context.Background(), level, "Stripe SDK", slog.String("message", fmt.Sprintf(format, v...)))
}

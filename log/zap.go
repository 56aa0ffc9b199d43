package log

import "go.uber.org/zap"

// zapLogger adapts a zap logger to Logger using the sugared key/value API.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps a zap logger. A nil logger yields a no-op Logger.
func NewZapLogger(logger *zap.Logger) Logger {
	if logger == nil {
		return noopLogger{}
	}

	return &zapLogger{sugar: logger.Sugar()}
}

func (l *zapLogger) Debug(msg string, keysAndValues ...any) { l.sugar.Debugw(msg, keysAndValues...) }
func (l *zapLogger) Info(msg string, keysAndValues ...any)  { l.sugar.Infow(msg, keysAndValues...) }
func (l *zapLogger) Error(msg string, keysAndValues ...any) { l.sugar.Errorw(msg, keysAndValues...) }
func (l *zapLogger) Warn(msg string, keysAndValues ...any)  { l.sugar.Warnw(msg, keysAndValues...) }

// With returns a Logger that adds the given pairs to every line.
func With(logger Logger, keysAndValues ...any) Logger {
	if logger == nil {
		return noopLogger{}
	}
	if z, ok := logger.(*zapLogger); ok {
		return &zapLogger{sugar: z.sugar.With(keysAndValues...)}
	}

	return &boundLogger{next: logger, fields: keysAndValues}
}

type boundLogger struct {
	next   Logger
	fields []any
}

func (l *boundLogger) merge(keysAndValues []any) []any {
	merged := make([]any, 0, len(l.fields)+len(keysAndValues))
	merged = append(merged, l.fields...)
	return append(merged, keysAndValues...)
}

func (l *boundLogger) Debug(msg string, keysAndValues ...any) {
	l.next.Debug(msg, l.merge(keysAndValues)...)
}

func (l *boundLogger) Info(msg string, keysAndValues ...any) {
	l.next.Info(msg, l.merge(keysAndValues)...)
}

func (l *boundLogger) Error(msg string, keysAndValues ...any) {
	l.next.Error(msg, l.merge(keysAndValues)...)
}

func (l *boundLogger) Warn(msg string, keysAndValues ...any) {
	l.next.Warn(msg, l.merge(keysAndValues)...)
}

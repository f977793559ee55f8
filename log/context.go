package log

import "context"

// loggerKey is the context key for the Logger in context.
type loggerKey struct{}

// ToContext returns a copy of ctx carrying logger.
func ToContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the Logger carried by ctx, or a no-op Logger if
// none was attached with ToContext.
func FromContext(ctx context.Context) Logger {
	logger, ok := ctx.Value(loggerKey{}).(Logger)
	if !ok || logger == nil {
		return noopLogger{}
	}

	return logger
}

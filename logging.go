package tftparse

// Logger receives diagnostics from accessors that can degrade without failing
// the caller, such as a game version the patch number cannot be read from.
// A *slog.Logger satisfies it. Nil disables logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// logDebug logs a debug message if a logger is configured
func logDebug(l Logger, msg string, args ...any) {
	if l != nil {
		l.Debug(msg, args...)
	}
}

// logWarn logs a warning message if a logger is configured
func logWarn(l Logger, msg string, args ...any) {
	if l != nil {
		l.Warn(msg, args...)
	}
}

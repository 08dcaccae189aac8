package logger

import "sync/atomic"

type defaultHolder struct {
	Logger
}

var defLogger atomic.Pointer[defaultHolder]

func init() {
	defLogger.Store(&defaultHolder{NewSlog(InfoLevel, false)})
}

// Debug logs a message at DebugLevel with the default logger.
func Debug(msg string, keysAndValues ...any) {
	GetLogger().Debug(msg, keysAndValues...)
}

// Error logs a message at ErrorLevel with the default logger.
func Error(msg string, keysAndValues ...any) {
	GetLogger().Error(msg, keysAndValues...)
}

// SetDefault replaces the default logger. A nil logger is ignored.
func SetDefault(l Logger) {
	if l != nil {
		defLogger.Store(&defaultHolder{l})
	}
}

// GetLogger returns the default logger, a JSON logger on stdout at InfoLevel
// unless replaced with SetDefault.
func GetLogger() Logger {
	return defLogger.Load().Logger
}

package logging

import "go.uber.org/zap"

// ZapAdapter wraps a *zap.SugaredLogger to implement the Logger interface.
// Key/value arguments map onto zap's loosely typed "w" methods.
type ZapAdapter struct {
	sugar *zap.SugaredLogger
}

// NewZapAdapter creates a Logger from *zap.Logger.
func NewZapAdapter(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapAdapter{sugar: logger.Sugar()}
}

// Debug logs a debug message.
func (z *ZapAdapter) Debug(msg string, args ...any) { z.sugar.Debugw(msg, args...) }

// Info logs an informational message.
func (z *ZapAdapter) Info(msg string, args ...any) { z.sugar.Infow(msg, args...) }

// Warn logs a warning message.
func (z *ZapAdapter) Warn(msg string, args ...any) { z.sugar.Warnw(msg, args...) }

// Error logs an error message.
func (z *ZapAdapter) Error(msg string, args ...any) { z.sugar.Errorw(msg, args...) }

// Sync flushes buffered log entries.
func (z *ZapAdapter) Sync() error { return z.sugar.Sync() }

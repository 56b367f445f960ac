// Package logging provides a tiny abstraction over slog so the fakes can
// depend on a minimal interface (Logger) while allowing tests to plug any
// structured logger. It also offers a richer TestLogger with contextual
// helpers (component, correlation id, test name) and a helper for logging
// fake service operations.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the minimal logging interface used by every fake.
// Arguments after msg are alternating key/value pairs, as with slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// TestLogger wraps slog.Logger adding contextual cloning helpers. It should
// be cheap to copy via With* methods.
type TestLogger struct {
	logger        *slog.Logger
	level         LogLevel
	context       map[string]any
	component     string
	correlationID string
	testName      string
}

// LoggerConfig configures construction of a TestLogger.
type LoggerConfig struct {
	Level         LogLevel
	Format        string // json or text
	Output        io.Writer
	AddSource     bool
	Component     string
	CorrelationID string
	TestName      string
	CustomAttrs   map[string]any
}

// DefaultLoggerConfig returns a baseline text info level configuration
// writing to stderr, which is where `go test -v` interleaves it with test output.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: "text", Output: os.Stderr, CustomAttrs: map[string]any{}}
}

// NewLogger builds a TestLogger from a config (or defaults if nil).
func NewLogger(cfg *LoggerConfig) *TestLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	ctx := make(map[string]any, len(cfg.CustomAttrs))
	for k, v := range cfg.CustomAttrs {
		ctx[k] = v
	}
	return &TestLogger{
		logger:        slog.New(handler),
		level:         cfg.Level,
		context:       ctx,
		component:     cfg.Component,
		correlationID: cfg.CorrelationID,
		testName:      cfg.TestName,
	}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *TestLogger) clone() *TestLogger {
	nl := *l
	nl.context = make(map[string]any, len(l.context))
	for k, v := range l.context {
		nl.context[k] = v
	}
	return &nl
}

// WithContext adds a key/value attribute that will be attached to every log entry.
func (l *TestLogger) WithContext(key string, value any) *TestLogger {
	nl := l.clone()
	nl.context[key] = value
	return nl
}

// WithComponent sets the logical component (organization, tracing, provider, ...).
func (l *TestLogger) WithComponent(c string) *TestLogger {
	nl := l.clone()
	nl.component = c
	return nl
}

// WithCorrelation attaches the execution context correlation id.
func (l *TestLogger) WithCorrelation(id string) *TestLogger {
	nl := l.clone()
	nl.correlationID = id
	return nl
}

// WithTest attaches the running test name (usually t.Name()).
func (l *TestLogger) WithTest(name string) *TestLogger {
	nl := l.clone()
	nl.testName = name
	return nl
}

func (l *TestLogger) buildAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, len(l.context)+3)
	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}
	if l.correlationID != "" {
		attrs = append(attrs, slog.String("correlation_id", l.correlationID))
	}
	if l.testName != "" {
		attrs = append(attrs, slog.String("test", l.testName))
	}
	for k, v := range l.context {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}

func (l *TestLogger) log(level slog.Level, allowed bool, msg string, args ...any) {
	if !allowed {
		return
	}
	attrs := append(l.buildAttrs(), argsToAttrs(args)...)
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// argsToAttrs converts alternating key/value pairs; a dangling value is
// reported under "!BADKEY" the same way slog does.
func argsToAttrs(args []any) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(args)/2+1)
	for len(args) > 0 {
		switch k := args[0].(type) {
		case slog.Attr:
			attrs = append(attrs, k)
			args = args[1:]
		case string:
			if len(args) == 1 {
				attrs = append(attrs, slog.String("!BADKEY", k))
				args = nil
				continue
			}
			attrs = append(attrs, slog.Any(k, args[1]))
			args = args[2:]
		default:
			attrs = append(attrs, slog.Any("!BADKEY", k))
			args = args[1:]
		}
	}
	return attrs
}

// Debug logs at debug level.
func (l *TestLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, l.level <= LogLevelDebug, msg, args...)
}

// Info logs at info level.
func (l *TestLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, l.level <= LogLevelInfo, msg, args...)
}

// Warn logs at warn level.
func (l *TestLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, l.level <= LogLevelWarn, msg, args...)
}

// Error logs at error level.
func (l *TestLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, l.level <= LogLevelError, msg, args...)
}

// LogOperation records the outcome of one fake service operation.
func (l *TestLogger) LogOperation(op string, dur time.Duration, success bool, err error) {
	attrs := l.buildAttrs()
	attrs = append(attrs, slog.String("operation", op), slog.Duration("duration", dur), slog.Bool("success", success))
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	level := slog.LevelDebug
	msg := "Operation completed"
	if !success {
		level = slog.LevelWarn
		msg = "Operation failed"
	}
	if level < slogLevel(l.level) {
		return
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// StartTimer returns a closure that logs the elapsed duration when invoked.
func (l *TestLogger) StartTimer(op string) func() {
	start := time.Now()
	return func() { l.Debug("Operation timed", "operation", op, "duration", time.Since(start)) }
}

// NoOpLogger discards all log messages. It is the default for every fake.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

// NewSlogLogger creates a new TestLogger with the specified configuration.
func NewSlogLogger(level LogLevel, format string, addSource bool) *TestLogger {
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	if format != "" {
		cfg.Format = format
	}
	cfg.AddSource = addSource
	return NewLogger(cfg)
}

// OrNoOp returns l, or a NoOpLogger when l is nil.
func OrNoOp(l Logger) Logger {
	if l == nil {
		return NoOpLogger{}
	}
	return l
}

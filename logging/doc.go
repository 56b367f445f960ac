// Package logging provides a minimal logging interface and adapters for the
// xrmtesting fakes.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that every fake uses to report the operations plugin code performed. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter and TestLogger wrapping Go's structured logging
//   - ZapAdapter for suites already logging through zap
//   - NoOpLogger for silent operation (the default)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "text", false).WithTest(t.Name())
//	svc := organization.NewFakeService(func(o *organization.Options) { o.Logger = logger })
//
// The design keeps the interface minimal so any structured logger fits.
package logging

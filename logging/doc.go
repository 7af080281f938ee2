// Package logging provides a minimal logging interface and adapters for the
// variable store.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that stores and backends use for observability. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - NewFileLogger for an append-only file sink
//   - a settable package default picked up by stores with no Logger option
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	db, err := variabledb.New("vars", env, func(o *variabledb.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging

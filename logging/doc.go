// Package logging provides a minimal logging interface and adapters for ZOF.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the solver engine and both front ends use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, library embedding)
//   - ZofLogger with contextual helpers (component, solve ID) and a
//     domain-specific LogSolve summary helper
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	engine := solver.New(func(o *solver.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging

// Package log provides the application loggers, built on top of the
// standard slog package.
//
// This package extends slog to provide:
//   - Rounding of float attributes to a fixed precision
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	logger.Debug("normalized",
//	    "person", "Harry",
//	    "gene0", 0.53513402826811, // logged as 0.5351
//	)
//
//	slog.SetDefault(logger)
package log

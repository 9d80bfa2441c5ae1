// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a development (debug)
// and a production flavour, console or JSON encoding, and an optional file sink.
//
// # Run Awareness
//
// Every sync run gets a run identifier. The WithRunID helper attaches it to the
// logger so all lines written during a run can be correlated, including the ones
// that end up in the debug log file.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//   - File: extra output path (app.log when --debug is set)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, runID)
//	log.Info("Sync started")
package logger

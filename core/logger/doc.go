// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a human friendly console
// encoding for interactive use and a JSON encoding for scripted runs.
//
// # Batch Awareness
//
// Imports tag every entry with a batch id. The WithBatch helper attaches it so
// that all log lines produced while importing one file can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Import finished")
//
//	l := logger.WithBatch(log, batchID)
//	l.Warn("Row rejected", zap.Error(err))
package logger

// Package observability provides the observational side channel for
// context resolution: structured logging, metrics, and tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// Nothing here affects resolution outcomes.
package observability

import (
	"log/slog"
	"time"
)

// LogResolved logs an explicit-precision resolution.
func LogResolved(logger *slog.Logger, owner string, precision int, mode string) {
	if logger == nil {
		return
	}
	logger.Info("using custom math context",
		slog.String("owner", owner),
		slog.Int("precision", precision),
		slog.String("rounding_mode", mode),
	)
}

// LogPreset logs a named-preset resolution.
func LogPreset(logger *slog.Logger, owner, preset string) {
	if logger == nil {
		return
	}
	logger.Info("using math context preset",
		slog.String("owner", owner),
		slog.String("preset", preset),
	)
}

// LogPresetDefault logs the silent DECIMAL64 default on the preset
// path, noting the name that was configured (empty when absent).
func LogPresetDefault(logger *slog.Logger, owner, configured string) {
	if logger == nil {
		return
	}
	logger.Info("using default math context DECIMAL64",
		slog.String("owner", owner),
		slog.String("configured", configured),
	)
}

// LogFallback logs a resolution failure and the forced DECIMAL64
// fallback.
func LogFallback(logger *slog.Logger, owner string, err error) {
	if logger == nil {
		return
	}
	logger.Error("error evaluating default math context, using DECIMAL64",
		slog.String("owner", owner),
		slog.String("error", err.Error()),
	)
}

// LogAuditError logs an audit store failure (non-fatal).
func LogAuditError(logger *slog.Logger, owner string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("audit record failed",
		slog.String("owner", owner),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

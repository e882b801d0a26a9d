package moneta

import "errors"

// Sentinel errors for context resolution. None of these escape
// Resolve; they are observable through logs, metrics, and the
// audit trail.
var (
	// ErrNilProvider indicates the resolver was built without a provider.
	ErrNilProvider = errors.New("configuration provider is nil")

	// ErrInvalidPrecision indicates the precision value is not an integer.
	ErrInvalidPrecision = errors.New("precision is not a valid integer")

	// ErrNegativePrecision indicates a precision below zero.
	ErrNegativePrecision = errors.New("precision cannot be negative")

	// ErrUnknownRoundingMode indicates an unrecognized rounding-mode name.
	ErrUnknownRoundingMode = errors.New("unknown rounding mode")
)

// Package audit provides persistent recording of context resolutions.
//
// Each Resolve call can append one Record describing which path was
// taken and what the resulting context was. Audit storage is purely
// observational: store failures never affect resolution.
package audit

import (
	"errors"
	"time"
)

// Resolution paths recorded per Record.
const (
	// PathExplicit marks a resolution from an explicit precision key.
	PathExplicit = "explicit"
	// PathPreset marks a resolution from a named preset (or its default).
	PathPreset = "preset"
	// PathFallback marks a forced DECIMAL64 fallback after an error.
	PathFallback = "fallback"
)

// Record describes one context resolution.
type Record struct {
	// ID uniquely identifies the resolution.
	ID string
	// Owner is the value type tag the context is scoped to.
	Owner string
	// Path is one of PathExplicit, PathPreset, PathFallback.
	Path string
	// Precision is the resolved precision (0 = unlimited).
	Precision int
	// Mode is the canonical rounding-mode name.
	Mode string
	// Reason holds the error text on the fallback path, empty otherwise.
	Reason string
	// Timestamp is when the resolution completed, in UTC.
	Timestamp time.Time
}

// Store persists resolution records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append stores a record. Records are never overwritten.
	Append(rec Record) error

	// List returns all records for an owner, oldest first.
	// Returns empty slice (not error) if the owner has no records.
	List(owner string) ([]Record, error)

	// Purge removes all records for an owner.
	// Returns nil if the owner has no records.
	Purge(owner string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for audit operations.
var (
	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("audit store closed")
)

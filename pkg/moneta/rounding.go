package moneta

import (
	"fmt"
	"strings"
)

// RoundingMode selects how a result is rounded to the context's
// precision. The names and semantics follow the conventional
// decimal rounding modes.
type RoundingMode int

const (
	// Up rounds away from zero.
	Up RoundingMode = iota
	// Down rounds toward zero (truncation).
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
	// HalfUp rounds to nearest; ties round away from zero.
	HalfUp
	// HalfDown rounds to nearest; ties round toward zero.
	HalfDown
	// HalfEven rounds to nearest; ties round to the even neighbor.
	HalfEven
	// Unnecessary asserts the result is already exact.
	Unnecessary
)

// roundingNames maps each mode to its canonical configuration name.
var roundingNames = map[RoundingMode]string{
	Up:          "UP",
	Down:        "DOWN",
	Ceiling:     "CEILING",
	Floor:       "FLOOR",
	HalfUp:      "HALF_UP",
	HalfDown:    "HALF_DOWN",
	HalfEven:    "HALF_EVEN",
	Unnecessary: "UNNECESSARY",
}

// roundingByName is the inverse of roundingNames, keyed by upper-case name.
var roundingByName = func() map[string]RoundingMode {
	m := make(map[string]RoundingMode, len(roundingNames))
	for mode, name := range roundingNames {
		m[name] = mode
	}
	return m
}()

// String returns the canonical configuration name (e.g. "HALF_UP").
func (m RoundingMode) String() string {
	if name, ok := roundingNames[m]; ok {
		return name
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// ParseRoundingMode maps a configuration value onto a RoundingMode.
// Matching is case-insensitive. Unknown names return
// ErrUnknownRoundingMode.
func ParseRoundingMode(name string) (RoundingMode, error) {
	mode, ok := roundingByName[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRoundingMode, name)
	}
	return mode, nil
}
